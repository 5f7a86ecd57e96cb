package repository

import (
	"context"
	"errors"

	"bizease/internal/domain/entity"

	"github.com/google/uuid"
)

var (
	ErrBusinessNotFound           = errors.New("business profile not found")
	ErrRegistrationNumberConflict = errors.New("registration number already exists")
	// ErrBusinessAlreadyExists is returned when the account already owns a profile.
	ErrBusinessAlreadyExists = errors.New("business profile already exists for user")
)

// BusinessRepository persists business profiles. Each account owns at most one.
type BusinessRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.BusinessProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.BusinessProfile, error)
	Create(ctx context.Context, profile *entity.BusinessProfile) error
	Update(ctx context.Context, profile *entity.BusinessProfile) error
}
