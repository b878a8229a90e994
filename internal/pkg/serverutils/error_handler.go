package serverutils

import (
	"errors"

	"ai-study-notebook-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware translates the error taxonomy into HTTP statuses
// and the standard response envelope. Resource absence and ownership
// failure both arrive here as NotFound, so existence is never leaked.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		var fiberErr *fiber.Error
		if errors.As(err, &fiberErr) {
			return ctx.Status(fiberErr.Code).JSON(ErrorResponse(fiberErr.Code, fiberErr.Message))
		}

		status := httpStatus(apperror.KindOf(err))
		message := err.Error()
		if status >= fiber.StatusInternalServerError {
			// Server-side failures keep their classified message but never
			// the wrapped cause, so driver and transport internals stay
			// out of responses.
			var appErr *apperror.Error
			if errors.As(err, &appErr) {
				message = appErr.Message
			} else {
				message = "internal server error"
			}
		}
		return ctx.Status(status).JSON(ErrorResponse(status, message))
	}
}

func httpStatus(kind apperror.Kind) int {
	switch kind {
	case apperror.KindUnauthenticated:
		return fiber.StatusUnauthorized
	case apperror.KindInvalidCredentials, apperror.KindConflict,
		apperror.KindInvalidInput, apperror.KindUnsupportedFormat:
		return fiber.StatusBadRequest
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindBackendUnavailable, apperror.KindBackendError,
		apperror.KindMalformedResponse:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}
