package entity

import (
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DocumentType classifies an uploaded supporting document.
type DocumentType string

const (
	DocumentTypePAN          DocumentType = "pan"
	DocumentTypeAddress      DocumentType = "address"
	DocumentTypeRegistration DocumentType = "registration"
	DocumentTypeID           DocumentType = "id"
	DocumentTypeOther        DocumentType = "other"
)

// ParseDocumentType accepts the stored value case-insensitively.
func ParseDocumentType(s string) (DocumentType, error) {
	dt := DocumentType(strings.ToLower(strings.TrimSpace(s)))
	switch dt {
	case DocumentTypePAN, DocumentTypeAddress, DocumentTypeRegistration, DocumentTypeID, DocumentTypeOther:
		return dt, nil
	default:
		return "", ErrInvalidDocumentType
	}
}

// Verification notes written when is_verified flips to true.
const (
	NoteAutoVerifiedPDF = "Automatically verified as PDF"
	NoteSignedByUser    = "Document signed by user"
)

var (
	documentExtensions  = []string{"pdf", "doc", "docx", "jpg", "jpeg", "png"}
	signatureExtensions = []string{"png", "jpg", "jpeg"}
)

// FileExtension returns the lower-cased extension of name without the dot.
func FileExtension(name string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(name), "."))
}

func allowedExtension(name string, allowed []string) (string, error) {
	ext := FileExtension(name)
	for _, a := range allowed {
		if ext == a {
			return ext, nil
		}
	}

	return "", ErrFileTypeNotAllowed
}

// DocumentExtension validates an uploaded document name against the document allow-list.
func DocumentExtension(name string) (string, error) {
	return allowedExtension(name, documentExtensions)
}

// SignatureExtension validates a signature image name against the image allow-list.
func SignatureExtension(name string) (string, error) {
	return allowedExtension(name, signatureExtensions)
}

// ImageExtension validates an uploaded picture such as a news image.
func ImageExtension(name string) (string, error) {
	return allowedExtension(name, signatureExtensions)
}

// ApplicationDocument is a file attached to an approval application.
type ApplicationDocument struct {
	ID                uuid.UUID    `json:"id"`
	ApplicationID     uuid.UUID    `json:"application_id"`
	DocumentType      DocumentType `json:"document_type"`
	FileRef           string       `json:"file_ref"`
	OriginalName      string       `json:"original_name"`
	Checksum          string       `json:"checksum"`
	SizeBytes         int64        `json:"size_bytes"`
	IsVerified        bool         `json:"is_verified"`
	VerificationNotes string       `json:"verification_notes,omitempty"`
	UploadedAt        time.Time    `json:"uploaded_at"`
}

// AutoVerify marks the document verified when the stored file is a PDF.
func (d *ApplicationDocument) AutoVerify() {
	if strings.HasSuffix(strings.ToLower(d.FileRef), ".pdf") {
		d.IsVerified = true
		d.VerificationNotes = NoteAutoVerifiedPDF
	}
}

// DigitalSignature records that a user signed a document.
type DigitalSignature struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user_id"`
	DocumentID   uuid.UUID `json:"document_id"`
	SignatureRef string    `json:"signature_ref"`
	SignedAt     time.Time `json:"signed_at"`
	IsValid      bool      `json:"is_valid"`
}
