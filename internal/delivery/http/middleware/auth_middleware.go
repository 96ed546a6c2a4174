package middleware

import (
	"net/http"
	"strings"

	"vouch/internal/domain/entity"
	"vouch/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// Context keys for the authenticated caller.
const (
	// KeyActor holds the *entity.Capabilities computed from the access token.
	KeyActor = "actor"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the JWT access
// token and places the caller's capability set on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Authorization header is missing"})
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid token format, must be Bearer token"})
		}

		claims, err := m.tokenSvc.ValidateToken(tokenString)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired token"})
		}

		// Compute the capability set once; handlers and usecases pass it along
		// instead of re-reading the token.
		actor := &entity.Capabilities{
			UserID:  claims.UserID,
			Roles:   claims.Roles,
			IsAdmin: claims.IsStaff || hasRole(claims.Roles, entity.RoleAdmin),
		}
		c.Set(KeyActor, actor)

		return next(c)
	}
}

// RequireAdmin rejects callers without the admin capability.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		actor, ok := c.Get(KeyActor).(*entity.Capabilities)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: capability information missing"})
		}

		if !actor.IsAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: admin role required"})
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, ok := c.Get(KeyActor).(*entity.Capabilities)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: capability information missing"})
			}

			if !actor.HasRole(requiredRole) {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: require '" + requiredRole + "' role"})
			}

			return next(c)
		}
	}
}

// GetActor extracts the authenticated caller's capability set from the
// request context. The boolean is false on unauthenticated routes.
func GetActor(c echo.Context) (*entity.Capabilities, bool) {
	actor, ok := c.Get(KeyActor).(*entity.Capabilities)

	return actor, ok
}

func hasRole(roles []string, name string) bool {
	for _, r := range roles {
		if r == name {
			return true
		}
	}

	return false
}
