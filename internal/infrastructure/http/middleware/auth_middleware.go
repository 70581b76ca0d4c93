package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	pkgjwt "github.com/kimdohyun-dev/actionlog/pkg/jwt"
)

// principalContextKey is the echo context key for the authenticated principal
const principalContextKey = "principal"

// Authenticate returns an Echo middleware that runs once per request before
// routing logic. A valid bearer token attaches the principal (the login id
// carried as the token subject) to the context; an absent or invalid token
// leaves the request unauthenticated without rejecting it. Endpoint-level
// guards decide whether an identity is required.
func Authenticate(tokens *pkgjwt.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token := extractBearer(c)
			if token != "" {
				if principal, err := tokens.PrincipalOf(token); err == nil {
					c.Set(principalContextKey, principal)
				}
				// Validation failures never reject here; downstream
				// authorization answers with 401 when identity is required.
			}
			return next(c)
		}
	}
}

// PrincipalFrom retrieves the authenticated principal from the context
func PrincipalFrom(c echo.Context) (string, bool) {
	principal, ok := c.Get(principalContextKey).(string)
	if !ok || principal == "" {
		return "", false
	}
	return principal, true
}

// extractBearer pulls the token out of the standard authorization header
func extractBearer(c echo.Context) string {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}
	// Expected format: "Bearer <token>"
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
