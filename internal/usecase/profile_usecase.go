package usecase

import (
	"context"
	"time"

	"bizease/internal/domain/entity"
)

// ProfileInput carries the editable fields of a business profile.
type ProfileInput struct {
	BusinessName       string
	BusinessType       string
	RegistrationNumber string
	Address            string
	ContactPerson      string
	ContactNumber      string
	Email              string
	DateEstablished    time.Time
}

// ProfileUsecase manages the single business profile owned by a user.
type ProfileUsecase interface {
	GetProfile(ctx context.Context, req Requester) (*entity.BusinessProfile, error)

	// UpsertProfile creates the profile on the first call and updates it afterwards.
	// created reports which of the two happened.
	UpsertProfile(ctx context.Context, req Requester, input *ProfileInput) (profile *entity.BusinessProfile, created bool, err error)
}
