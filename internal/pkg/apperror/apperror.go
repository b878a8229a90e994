package apperror

import "errors"

// Kind is a stable error classification that survives wrapping and is the
// single source of truth for HTTP status mapping at the request boundary.
type Kind string

const (
	KindUnauthenticated    Kind = "UNAUTHENTICATED"
	KindInvalidCredentials Kind = "INVALID_CREDENTIALS"
	KindConflict           Kind = "CONFLICT"
	KindNotFound           Kind = "NOT_FOUND"
	KindInvalidInput       Kind = "INVALID_INPUT"
	KindUnsupportedFormat  Kind = "UNSUPPORTED_FORMAT"
	KindExtractionError    Kind = "EXTRACTION_ERROR"
	KindBackendUnavailable Kind = "BACKEND_UNAVAILABLE"
	KindBackendError       Kind = "BACKEND_ERROR"
	KindMalformedResponse  Kind = "MALFORMED_RESPONSE"
	KindPersistenceError   Kind = "PERSISTENCE_ERROR"
	KindInternal           Kind = "INTERNAL"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf extracts the Kind from an error chain. Unclassified errors are
// treated as internal.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func Is(err error, kind Kind) bool {
	return KindOf(err) == kind
}
