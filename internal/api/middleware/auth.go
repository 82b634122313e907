package middleware

import (
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"github.com/roadworthy/pti-system/internal/core/domain"
	"github.com/roadworthy/pti-system/internal/core/ports"
)

// userContextKey is where the resolved caller is stored on the echo context.
const userContextKey = "user"

// Auth validates the bearer token and resolves its subject against the
// user store. The resolved *domain.User is injected into the context so
// handlers operate on a fresh read of the caller's record.
//
// Failure kinds stay distinct: a missing/malformed token, an expired
// token, and a subject that no longer resolves to a stored user each
// surface their own error.
func Auth(jwtSecret string, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return domain.ErrTokenInvalid
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return domain.ErrTokenInvalid
			}

			claims := jwt.MapClaims{}
			tkn, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
				if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
					return nil, jwt.ErrTokenSignatureInvalid
				}
				return []byte(jwtSecret), nil
			})
			if err != nil {
				if errors.Is(err, jwt.ErrTokenExpired) {
					return domain.ErrTokenExpired
				}
				return domain.ErrTokenInvalid
			}
			if !tkn.Valid {
				return domain.ErrTokenInvalid
			}

			subject, err := claims.GetSubject()
			if err != nil || subject == "" {
				return domain.ErrTokenInvalid
			}

			user, err := users.FindByID(c.Request().Context(), subject)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					return domain.ErrUnknownSubject
				}
				return err
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}
