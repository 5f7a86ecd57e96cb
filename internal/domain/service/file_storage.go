package service

import (
	"context"
	"io"

	"github.com/pkg/errors"
)

// ErrFileNotFound is returned when a reference names no stored blob.
var ErrFileNotFound = errors.New("stored file not found")

// StoredFile describes a blob written by FileStorage.
type StoredFile struct {
	Ref       string // Stable reference, e.g. application_documents/<uuid>.pdf
	Checksum  string // Hex encoded sha256 of the content
	SizeBytes int64
}

// FileStorage stores uploaded blobs and returns stable references to them.
type FileStorage interface {
	// Save writes r under prefix with a generated name keeping ext, and returns its reference.
	Save(ctx context.Context, prefix, ext, contentType string, r io.Reader) (*StoredFile, error)

	// Open streams a stored blob. The caller closes the reader.
	Open(ctx context.Context, ref string) (io.ReadCloser, string, error)

	// Delete removes a stored blob. Deleting a missing reference is not an error.
	Delete(ctx context.Context, ref string) error
}
