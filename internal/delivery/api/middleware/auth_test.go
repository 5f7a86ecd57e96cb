package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"bizease/internal/domain/entity"
	"bizease/internal/domain/service"
	mockSvc "bizease/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	userID := uuid.New()

	tests := []struct {
		name       string
		header     string
		setup      func(m *mockSvc.MockTokenService)
		wantStatus int
	}{
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer token",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "expired token",
			header: "Bearer expired",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: "Bearer good",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: userID, Roles: []string{"business"}}, nil)
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			err := m.Authenticate(func(c echo.Context) error {
				r, ok := GetRequester(c)
				require.True(t, ok)
				assert.Equal(t, userID, r.UserID)
				assert.False(t, r.IsAdmin())

				return c.NoContent(http.StatusOK)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	tests := []struct {
		name       string
		roles      []string
		wantStatus int
	}{
		{name: "admin passes", roles: []string{"admin"}, wantStatus: http.StatusNoContent},
		{name: "business is forbidden", roles: []string{"business"}, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			tokenSvc.EXPECT().ValidateToken("tok").Return(&service.Claims{UserID: uuid.New(), Roles: tt.roles}, nil)
			m := NewAuthMiddleware(tokenSvc)

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/reminders/sweep", nil)
			req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
			rec := httptest.NewRecorder()
			c := e.NewContext(req, rec)

			h := m.Authenticate(m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			}))

			require.NoError(t, h(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestAuthMiddleware_RequireRole_WithoutAuthenticate(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	require.NoError(t, m.RequireRole(entity.RoleAdmin)(func(c echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
