package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"bizease/config"
	"bizease/internal/domain/entity"
	"bizease/internal/domain/repository"
	mockRepo "bizease/internal/mocks/repository"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2026, 3, 2, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time {
	return fixedNow
}

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	config.ApplyDefaults(cfg)

	return cfg
}

func businessRequester() (usecase.Requester, *entity.BusinessProfile) {
	userID := uuid.New()
	profile := &entity.BusinessProfile{
		ID:           uuid.New(),
		UserID:       userID,
		BusinessName: "Acme Traders",
		BusinessType: entity.BusinessTypeRetail,
		Email:        "contact@acme.test",
	}

	return usecase.Requester{UserID: userID, Roles: entity.Roles{entity.RoleBusiness}}, profile
}

func adminRequester() usecase.Requester {
	return usecase.Requester{UserID: uuid.New(), Roles: entity.Roles{entity.RoleAdmin}}
}

// expectTx makes the transaction manager run the callback against factory.
func expectTx(txManager *mockRepo.MockTransactionManager, factory repository.RepositoryFactory) {
	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		}).
		Once()
}
