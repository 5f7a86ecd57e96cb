package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "bizease/internal/delivery/context"
	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	"bizease/internal/usecase"

	"github.com/pkg/errors"
)

type profileService struct {
	businessRepo repository.BusinessRepository
	logger       *slog.Logger
}

// NewProfileService creates a new profile service
func NewProfileService(businessRepo repository.BusinessRepository, logger *slog.Logger) usecase.ProfileUsecase {
	return &profileService{
		businessRepo: businessRepo,
		logger:       logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *profileService) GetProfile(ctx context.Context, req usecase.Requester) (*entity.BusinessProfile, error) {
	profile, err := srv.businessRepo.FindByUserID(ctx, req.UserID)
	if errors.Is(err, repository.ErrBusinessNotFound) {
		return nil, domainerrors.ErrProfileNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load business profile")
	}

	return profile, nil
}

func (srv *profileService) UpsertProfile(ctx context.Context, req usecase.Requester, input *usecase.ProfileInput) (*entity.BusinessProfile, bool, error) {
	businessType, err := validateProfileInput(input)
	if err != nil {
		return nil, false, err
	}

	profile, err := srv.businessRepo.FindByUserID(ctx, req.UserID)
	created := errors.Is(err, repository.ErrBusinessNotFound)
	if err != nil && !created {
		return nil, false, errors.Wrap(err, "failed to load business profile")
	}
	if created {
		profile = &entity.BusinessProfile{UserID: req.UserID}
	}

	profile.BusinessName = strings.TrimSpace(input.BusinessName)
	profile.BusinessType = businessType
	profile.RegistrationNumber = strings.TrimSpace(input.RegistrationNumber)
	profile.Address = input.Address
	profile.ContactPerson = input.ContactPerson
	profile.ContactNumber = input.ContactNumber
	profile.Email = input.Email
	profile.DateEstablished = entity.Today(input.DateEstablished)

	if created {
		err = srv.businessRepo.Create(ctx, profile)
	} else {
		err = srv.businessRepo.Update(ctx, profile)
	}
	if err != nil {
		return nil, false, mapProfileWriteError(err)
	}

	srv.log(ctx).Info("Business profile saved",
		slog.String("businessID", profile.ID.String()),
		slog.Bool("created", created),
	)

	return profile, created, nil
}

func validateProfileInput(input *usecase.ProfileInput) (entity.BusinessType, error) {
	if strings.TrimSpace(input.BusinessName) == "" || strings.TrimSpace(input.RegistrationNumber) == "" {
		return "", domainerrors.ErrValidationFailed.WrapMessage("business name and registration number are required")
	}
	if input.DateEstablished.IsZero() {
		return "", domainerrors.ErrValidationFailed.WrapMessage("date established is required")
	}
	if len(input.ContactNumber) > 15 {
		return "", domainerrors.ErrValidationFailed.WrapMessage("contact number must be at most 15 characters")
	}

	businessType, err := entity.ParseBusinessType(input.BusinessType)
	if err != nil {
		return "", domainerrors.ErrInvalidBusinessType
	}

	return businessType, nil
}

func mapProfileWriteError(err error) error {
	switch {
	case errors.Is(err, repository.ErrRegistrationNumberConflict):
		return domainerrors.ErrRegistrationNumberTaken
	case errors.Is(err, repository.ErrBusinessAlreadyExists):
		return domainerrors.ErrConflict.WrapMessage("business profile already exists")
	case errors.Is(err, repository.ErrBusinessNotFound):
		return domainerrors.ErrProfileNotFound
	default:
		return errors.Wrap(err, "failed to save business profile")
	}
}
