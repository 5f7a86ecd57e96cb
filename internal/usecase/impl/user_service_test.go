package impl

import (
	"context"
	"testing"
	"time"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	mockRepo "bizease/internal/mocks/repository"
	mockSvc "bizease/internal/mocks/service"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service      usecase.UserUsecase
	userRepo     *mockRepo.MockUserRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return userServiceFixtures{
		service:      service,
		userRepo:     userRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestUserService_Register_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	input := &usecase.RegisterInput{
		Name:     " Test Owner ",
		Email:    " Owner@Example.com ",
		Password: "Password123!",
	}

	fx.hasher.EXPECT().Hash("Password123!").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
		}).
		Return(nil)

	user, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.Equal(t, "owner@example.com", user.Email)
	assert.Equal(t, "Test Owner", user.Name)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.RoleBusiness, user.Role)
}

func TestUserService_Register_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    *usecase.RegisterInput
		setup    func(fx userServiceFixtures)
		expected error
	}{
		{
			name:     "short password",
			input:    &usecase.RegisterInput{Email: "a@b.test", Password: "short"},
			expected: domainerrors.ErrValidationFailed,
		},
		{
			name:     "missing email",
			input:    &usecase.RegisterInput{Email: "  ", Password: "Password123!"},
			expected: domainerrors.ErrValidationFailed,
		},
		{
			name:  "email taken",
			input: &usecase.RegisterInput{Email: "a@b.test", Password: "Password123!"},
			setup: func(fx userServiceFixtures) {
				fx.hasher.EXPECT().Hash(mock.Anything).Return("hashed", nil)
				fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrUserEmailTaken)
			},
			expected: domainerrors.ErrUserAlreadyExists,
		},
		{
			name:  "hash failure",
			input: &usecase.RegisterInput{Email: "a@b.test", Password: "Password123!"},
			setup: func(fx userServiceFixtures) {
				fx.hasher.EXPECT().Hash(mock.Anything).Return("", errors.New("entropy"))
			},
			expected: domainerrors.ErrPasswordHashFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestUserService(t)
			if tt.setup != nil {
				tt.setup(fx)
			}

			_, err := fx.service.Register(context.Background(), tt.input)

			assert.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestUserService_Login_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@example.com", PasswordHash: "hashed", Role: entity.RoleAdmin}

	fx.userRepo.EXPECT().FindByEmail(ctx, "owner@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("Password123!", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateAccessToken(user.ID, []string{"admin"}).Return("token", nil)
	fx.tokenService.EXPECT().AccessTokenTTL().Return(24 * time.Hour)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "OWNER@example.com", Password: "Password123!"})

	require.NoError(t, err)
	assert.Equal(t, "token", out.AccessToken)
	assert.Equal(t, 24*time.Hour, out.ExpiresIn)
	assert.Equal(t, user, out.User)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "nobody@example.com", Password: "x"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		user := &entity.User{ID: uuid.New(), PasswordHash: "hashed"}
		fx.userRepo.EXPECT().FindByEmail(mock.Anything, "owner@example.com").Return(user, nil)
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Email: "owner@example.com", Password: "wrong"})

		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	fx := createTestUserService(t)
	id := uuid.New()
	fx.userRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.GetUser(context.Background(), id)

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}
