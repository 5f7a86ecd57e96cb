package middleware

import (
	"strings"

	"bizease/internal/delivery/api/response"
	deliverycontext "bizease/internal/delivery/context"
	"bizease/internal/domain/entity"
	"bizease/internal/domain/service"
	"bizease/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware validates access tokens and enforces roles.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate requires a valid bearer token and records the caller on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return response.Unauthorized(c, "UNAUTHORIZED", "Authorization header is missing")
		}
		if !strings.HasPrefix(authHeader, bearerPrefix) {
			return response.Unauthorized(c, "UNAUTHORIZED", "Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.ValidateToken(strings.TrimPrefix(authHeader, bearerPrefix))
		if err != nil {
			return response.Unauthorized(c, "INVALID_TOKEN", "Invalid or expired token")
		}

		deliverycontext.SetIdentity(c, claims.UserID, entity.RolesFromStrings(claims.Roles))

		return next(c)
	}
}

// RequireRole must run after Authenticate.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			_, roles, ok := deliverycontext.GetIdentity(c)
			if !ok {
				return response.Unauthorized(c, "UNAUTHORIZED", "Authentication required")
			}
			if !roles.Contains(role) {
				return response.Forbidden(c, "FORBIDDEN", "Permission denied: require '"+role.String()+"' role")
			}

			return next(c)
		}
	}
}

// GetRequester returns the authenticated caller as the usecase layer expects it.
func GetRequester(c echo.Context) (usecase.Requester, bool) {
	userID, roles, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return usecase.Requester{}, false
	}

	return usecase.Requester{UserID: userID, Roles: roles}, true
}
