package impl

import (
	"context"
	"log/slog"
	"time"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	"bizease/internal/domain/service"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// clock is swapped in tests.
type clock func() time.Time

func utcNow() time.Time {
	return time.Now().UTC()
}

// requireProfile loads the business profile of the requester.
func requireProfile(ctx context.Context, repo repository.BusinessRepository, req usecase.Requester) (*entity.BusinessProfile, error) {
	profile, err := repo.FindByUserID(ctx, req.UserID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrProfileRequired
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load business profile")
	}

	return profile, nil
}

func requireAdmin(req usecase.Requester) error {
	if !req.IsAdmin() {
		return domainerrors.ErrForbidden.WrapMessage("administrator role required")
	}

	return nil
}

// ownedApplication loads an application and checks it belongs to profile.
// A record of another business is reported exactly like a missing one.
func ownedApplication(ctx context.Context, repo repository.ApplicationRepository, profile *entity.BusinessProfile, id uuid.UUID) (*entity.ApprovalApplication, error) {
	app, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrApplicationNotFound) {
		return nil, domainerrors.ErrApplicationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load application")
	}
	if app.BusinessID != profile.ID {
		return nil, domainerrors.ErrApplicationNotFound
	}

	return app, nil
}

// discardStored removes a blob whose record could not be written.
func discardStored(ctx context.Context, storage service.FileStorage, logger *slog.Logger, ref string) {
	if err := storage.Delete(context.WithoutCancel(ctx), ref); err != nil {
		logger.Warn("Failed to delete orphaned file", slog.String("ref", ref), slog.Any("error", err))
	}
}
