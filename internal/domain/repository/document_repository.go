package repository

import (
	"context"
	"errors"

	"bizease/internal/domain/entity"

	"github.com/google/uuid"
)

var ErrDocumentNotFound = errors.New("document not found")

// DocumentRepository persists application documents.
type DocumentRepository interface {
	Create(ctx context.Context, doc *entity.ApplicationDocument) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.ApplicationDocument, error)
	ListByApplication(ctx context.Context, applicationID uuid.UUID) ([]*entity.ApplicationDocument, error)
	CountByApplication(ctx context.Context, applicationID uuid.UUID) (int64, error)

	// MarkVerified sets is_verified and overwrites the verification notes.
	MarkVerified(ctx context.Context, id uuid.UUID, notes string) error
}

// SignatureRepository persists digital signatures.
type SignatureRepository interface {
	Create(ctx context.Context, sig *entity.DigitalSignature) error
	ListByDocument(ctx context.Context, documentID uuid.UUID) ([]*entity.DigitalSignature, error)
}
