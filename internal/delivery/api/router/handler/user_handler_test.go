package handler

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	mockUsecase "bizease/internal/mocks/usecase"
	"bizease/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserHandler(t *testing.T) (*UserHandler, *mockUsecase.MockUserUsecase) {
	uc := mockUsecase.NewMockUserUsecase(t)

	return NewUserHandler(UserHandlerParams{UserUC: uc, Logger: discardLogger()}), uc
}

func TestUserHandler_Register(t *testing.T) {
	t.Run("created without password hash", func(t *testing.T) {
		h, uc := newUserHandler(t)
		uc.EXPECT().Register(mock.Anything, &usecase.RegisterInput{
			Name:     "Asha",
			Email:    "asha@acme.test",
			Password: "correct-horse",
		}).Return(&entity.User{
			ID:           testUserID,
			Email:        "asha@acme.test",
			Name:         "Asha",
			PasswordHash: "$2a$10$secret",
			Role:         entity.RoleBusiness,
		}, nil)

		call := jsonCall(http.MethodPost, "/auth/register", `{"name":"Asha","email":"asha@acme.test","password":"correct-horse"}`)
		call.anonymous = true
		rec := serve(t, h.Register, call)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.NotContains(t, rec.Body.String(), "secret")
		var user UserResponse
		require.NoError(t, json.Unmarshal(decode(t, rec).Data, &user))
		assert.Equal(t, "business", user.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		h, uc := newUserHandler(t)
		uc.EXPECT().Register(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrUserAlreadyExists)

		call := jsonCall(http.MethodPost, "/auth/register", `{"name":"Asha","email":"asha@acme.test","password":"correct-horse"}`)
		call.anonymous = true
		rec := serve(t, h.Register, call)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", decode(t, rec).Error.Code)
	})

	t.Run("validation", func(t *testing.T) {
		h, _ := newUserHandler(t)

		call := jsonCall(http.MethodPost, "/auth/register", `{"name":"Asha","email":"asha","password":"short"}`)
		call.anonymous = true
		rec := serve(t, h.Register, call)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decode(t, rec)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
		assert.Equal(t, "email: email, password: min=8", env.Error.Details)
	})

	t.Run("malformed body", func(t *testing.T) {
		h, _ := newUserHandler(t)

		call := jsonCall(http.MethodPost, "/auth/register", `{"name":`)
		call.anonymous = true
		rec := serve(t, h.Register, call)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUserHandler_Login(t *testing.T) {
	h, uc := newUserHandler(t)
	uc.EXPECT().Login(mock.Anything, &usecase.LoginInput{Email: "asha@acme.test", Password: "correct-horse"}).
		Return(&usecase.LoginOutput{
			AccessToken: "token-value",
			ExpiresIn:   24 * time.Hour,
			User:        &entity.User{ID: testUserID, Email: "asha@acme.test", Role: entity.RoleBusiness},
		}, nil)

	call := jsonCall(http.MethodPost, "/auth/login", `{"email":"asha@acme.test","password":"correct-horse"}`)
	call.anonymous = true
	rec := serve(t, h.Login, call)

	require.Equal(t, http.StatusOK, rec.Code)
	var out LoginResponse
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, &out))
	assert.Equal(t, "token-value", out.AccessToken)
	assert.Equal(t, "Bearer", out.TokenType)
	assert.Equal(t, int64(86400), out.ExpiresIn)
}

func TestUserHandler_Login_InvalidCredentials(t *testing.T) {
	h, uc := newUserHandler(t)
	uc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrInvalidCredentials)

	call := jsonCall(http.MethodPost, "/auth/login", `{"email":"asha@acme.test","password":"wrong"}`)
	call.anonymous = true
	rec := serve(t, h.Login, call)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, decode(t, rec).Error.Details)
}

func TestUserHandler_Me_RequiresIdentity(t *testing.T) {
	h, _ := newUserHandler(t)

	rec := serve(t, h.Me, testCall{method: http.MethodGet, target: "/api/v1/me", anonymous: true})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
