package middleware

import (
	"strings"

	deliverycontext "bookshelf/internal/delivery/context"
	"bookshelf/internal/delivery/http/response"
	"bookshelf/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for bearer-token authentication and
// resource-ownership checks.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token against the identity provider and
// attaches the verified principal to the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHENTICATED", "unauthorized access")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return response.Unauthorized(c, "UNAUTHENTICATED", "unauthorized access")
		}

		principal, err := m.verifier.Verify(c.Request().Context(), tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "unauthorized access")
		}

		deliverycontext.SetPrincipal(c, principal)

		return next(c)
	}
}

// RequireOwnEmail rejects requests whose `email` query parameter does not
// match the verified principal's email. It must be used AFTER the
// Authenticate middleware.
func (m *AuthMiddleware) RequireOwnEmail(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		principal := deliverycontext.GetPrincipal(c)
		if principal == nil {
			return response.Forbidden(c, "FORBIDDEN", "forbidden access")
		}

		if c.QueryParam("email") != principal.Email {
			return response.Forbidden(c, "FORBIDDEN", "forbidden access")
		}

		return next(c)
	}
}
