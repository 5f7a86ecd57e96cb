package usecase

import (
	"io"

	"bizease/internal/domain/entity"

	"github.com/google/uuid"
)

// Requester is the authenticated caller of a workflow operation.
// The delivery layer builds it from the access token and passes it explicitly.
type Requester struct {
	UserID uuid.UUID
	Roles  entity.Roles
}

// IsAdmin reports whether the requester may use administrative operations.
func (r Requester) IsAdmin() bool {
	return r.Roles.Contains(entity.RoleAdmin)
}

// FileUpload is an uploaded file as received from a multipart form.
type FileUpload struct {
	Filename    string
	ContentType string
	Size        int64
	Content     io.Reader
}
