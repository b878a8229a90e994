package serverutils

import (
	"time"

	"ai-study-notebook-be/internal/pkg/apperror"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// IssueToken signs a time-bounded HS256 token binding the user identity.
func IssueToken(userId uuid.UUID, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userId.String(),
		"exp":     time.Now().Add(ttl).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", apperror.Wrap(apperror.KindInternal, "failed to sign token", err)
	}
	return signed, nil
}

// ResolveToken maps a bearer token back to a user id. Invalid signature,
// expiry and malformed claims all resolve to the same Unauthenticated kind.
func ResolveToken(tokenStr, secret string) (uuid.UUID, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, apperror.New(apperror.KindUnauthenticated, "unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, apperror.New(apperror.KindUnauthenticated, "invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return uuid.Nil, apperror.New(apperror.KindUnauthenticated, "invalid claims")
	}
	userIdStr, ok := claims["user_id"].(string)
	if !ok {
		return uuid.Nil, apperror.New(apperror.KindUnauthenticated, "invalid claims")
	}
	userId, err := uuid.Parse(userIdStr)
	if err != nil {
		return uuid.Nil, apperror.New(apperror.KindUnauthenticated, "invalid claims")
	}
	return userId, nil
}

// NewJwtMiddleware guards notebook-scoped routes. The resolved identity is
// stored in ctx.Locals("user_id"); ownership is still checked per operation.
func NewJwtMiddleware(secret string) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		authHeader := ctx.Get("Authorization")
		if len(authHeader) < 7 || authHeader[:7] != "Bearer " {
			return apperror.New(apperror.KindUnauthenticated, "missing token")
		}

		userId, err := ResolveToken(authHeader[7:], secret)
		if err != nil {
			return err
		}

		ctx.Locals("user_id", userId.String())
		return ctx.Next()
	}
}
