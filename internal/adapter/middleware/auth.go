package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"loanapi/internal/domain/user"
	"loanapi/internal/usecase/auth"
)

const actorContextKey = "actor"

// JWTAuth validates the bearer token and places the resolved Actor on the
// request context. Downstream authorization (role/ownership) happens in the
// usecases; this middleware only establishes identity.
func JWTAuth(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := strings.TrimSpace(c.Request().Header.Get("Authorization"))
			if !strings.HasPrefix(raw, "Bearer ") {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

			claims := &auth.Claims{}
			token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return secret, nil
			})
			if err != nil || !token.Valid {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}

			userID, err := strconv.ParseUint(claims.Subject, 10, 64)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token subject"})
			}

			c.Set(actorContextKey, user.Actor{UserID: userID, Role: user.Role(claims.Role)})
			return next(c)
		}
	}
}

// ActorFrom retrieves the Actor resolved by JWTAuth.
func ActorFrom(c echo.Context) (user.Actor, bool) {
	a, ok := c.Get(actorContextKey).(user.Actor)
	return a, ok
}

// SetActor is a test hook for handler tests that bypass JWTAuth.
func SetActor(c echo.Context, a user.Actor) { c.Set(actorContextKey, a) }
