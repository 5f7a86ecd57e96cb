package entity

import "github.com/pkg/errors"

// Validation failures reported by the pure validators of this package.
var (
	ErrInvalidBusinessType     = errors.New("invalid business type")
	ErrInvalidDocumentType     = errors.New("invalid document type")
	ErrInvalidStatus           = errors.New("invalid application status")
	ErrInvalidTransition       = errors.New("invalid application status transition")
	ErrFileTypeNotAllowed      = errors.New("file type not allowed")
	ErrInvalidApplicationNo    = errors.New("invalid application number")
	ErrRejectionReasonRequired = errors.New("rejection reason is required")
)
