package usecase

import (
	"context"
	"io"

	"bizease/internal/domain/entity"

	"github.com/google/uuid"
)

// DocumentFile is a stored document opened for download.
type DocumentFile struct {
	Document    *entity.ApplicationDocument
	ContentType string
	Body        io.ReadCloser
}

// DocumentUsecase handles supporting documents and their signatures.
type DocumentUsecase interface {
	Upload(ctx context.Context, req Requester, applicationID uuid.UUID, documentType string, file *FileUpload) (*entity.ApplicationDocument, error)

	// Open returns the stored file. The caller closes Body.
	Open(ctx context.Context, req Requester, documentID uuid.UUID) (*DocumentFile, error)

	// Sign records a signature image and marks the document verified.
	Sign(ctx context.Context, req Requester, documentID uuid.UUID, image *FileUpload) (*entity.DigitalSignature, error)
}
