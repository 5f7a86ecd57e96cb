package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentExtension(t *testing.T) {
	tests := []struct {
		name    string
		want    string
		wantErr bool
	}{
		{"licence.pdf", "pdf", false},
		{"scan.PDF", "pdf", false},
		{"form.Docx", "docx", false},
		{"photo.jpeg", "jpeg", false},
		{"archive.zip", "", true},
		{"noext", "", true},
		{"script.pdf.exe", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DocumentExtension(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSignatureExtension(t *testing.T) {
	_, err := SignatureExtension("sig.PNG")
	assert.NoError(t, err)
	_, err = SignatureExtension("sig.pdf")
	assert.ErrorIs(t, err, ErrFileTypeNotAllowed)
}

func TestApplicationDocument_AutoVerify(t *testing.T) {
	pdf := &ApplicationDocument{FileRef: "application_documents/a.PDF"}
	pdf.AutoVerify()
	assert.True(t, pdf.IsVerified)
	assert.Equal(t, NoteAutoVerifiedPDF, pdf.VerificationNotes)

	jpg := &ApplicationDocument{FileRef: "application_documents/a.jpg"}
	jpg.AutoVerify()
	assert.False(t, jpg.IsVerified)
	assert.Empty(t, jpg.VerificationNotes)
}

func TestParseDocumentType(t *testing.T) {
	dt, err := ParseDocumentType(" PAN ")
	require.NoError(t, err)
	assert.Equal(t, DocumentTypePAN, dt)

	_, err = ParseDocumentType("passport")
	assert.ErrorIs(t, err, ErrInvalidDocumentType)
}
