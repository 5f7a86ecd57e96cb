package handler

import (
	"bytes"
	"context"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	mockUsecase "bizease/internal/mocks/usecase"
	"bizease/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func multipartCall(t *testing.T, target string, fields map[string]string, fileField, fileName string, content []byte) testCall {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileField != "" {
		part, err := w.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return testCall{
		method: http.MethodPost,
		target: target,
		body:   &buf,
		header: http.Header{echo.HeaderContentType: []string{w.FormDataContentType()}},
	}
}

func newDocumentHandler(t *testing.T) (*DocumentHandler, *mockUsecase.MockDocumentUsecase) {
	uc := mockUsecase.NewMockDocumentUsecase(t)

	return NewDocumentHandler(DocumentHandlerParams{DocumentUC: uc, Logger: discardLogger()}), uc
}

func TestDocumentHandler_Upload(t *testing.T) {
	applicationID := uuid.New()
	target := "/api/v1/applications/" + applicationID.String() + "/documents"

	t.Run("stored", func(t *testing.T) {
		h, uc := newDocumentHandler(t)
		uc.EXPECT().
			Upload(mock.Anything, businessCaller(), applicationID, "pan", mock.AnythingOfType("*usecase.FileUpload")).
			RunAndReturn(func(_ context.Context, _ usecase.Requester, _ uuid.UUID, _ string, f *usecase.FileUpload) (*entity.ApplicationDocument, error) {
				body, err := io.ReadAll(f.Content)
				require.NoError(t, err)
				assert.Equal(t, "pan.pdf", f.Filename)
				assert.Equal(t, int64(len("%PDF-1.7")), f.Size)
				assert.Equal(t, "%PDF-1.7", string(body))

				return &entity.ApplicationDocument{
					ID:                uuid.New(),
					ApplicationID:     applicationID,
					DocumentType:      entity.DocumentTypePAN,
					IsVerified:        true,
					VerificationNotes: entity.NoteAutoVerifiedPDF,
				}, nil
			})

		call := multipartCall(t, target, map[string]string{"document_type": "pan"}, "document", "pan.pdf", []byte("%PDF-1.7"))
		call.params = map[string]string{"id": applicationID.String()}

		rec := serve(t, h.Upload, call)

		require.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), `"is_verified":true`)
	})

	t.Run("missing file", func(t *testing.T) {
		h, _ := newDocumentHandler(t)
		call := multipartCall(t, target, map[string]string{"document_type": "pan"}, "", "", nil)
		call.params = map[string]string{"id": applicationID.String()}

		rec := serve(t, h.Upload, call)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "document file is required", decode(t, rec).Error.Details)
	})

	t.Run("missing document type", func(t *testing.T) {
		h, _ := newDocumentHandler(t)
		call := multipartCall(t, target, nil, "document", "pan.pdf", []byte("%PDF"))
		call.params = map[string]string{"id": applicationID.String()}

		rec := serve(t, h.Upload, call)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "document_type is required", decode(t, rec).Error.Details)
	})

	t.Run("rejected extension", func(t *testing.T) {
		h, uc := newDocumentHandler(t)
		uc.EXPECT().
			Upload(mock.Anything, businessCaller(), applicationID, "pan", mock.Anything).
			Return(nil, domainerrors.ErrFileTypeNotAllowed)

		call := multipartCall(t, target, map[string]string{"document_type": "pan"}, "document", "setup.exe", []byte("MZ"))
		call.params = map[string]string{"id": applicationID.String()}

		rec := serve(t, h.Upload, call)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "FILE_TYPE_NOT_ALLOWED", decode(t, rec).Error.Code)
	})
}

func TestDocumentHandler_OpenFile(t *testing.T) {
	h, uc := newDocumentHandler(t)
	documentID := uuid.New()
	uc.EXPECT().Open(mock.Anything, businessCaller(), documentID).Return(&usecase.DocumentFile{
		Document:    &entity.ApplicationDocument{ID: documentID, OriginalName: "pan card.pdf"},
		ContentType: "application/pdf",
		Body:        io.NopCloser(strings.NewReader("%PDF-1.7")),
	}, nil)

	rec := serve(t, h.OpenFile, testCall{
		method: http.MethodGet,
		target: "/api/v1/documents/" + documentID.String() + "/file",
		params: map[string]string{"id": documentID.String()},
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/pdf", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, `inline; filename="pan card.pdf"`, rec.Header().Get(echo.HeaderContentDisposition))
	assert.Equal(t, "%PDF-1.7", rec.Body.String())
}

func TestDocumentHandler_Sign(t *testing.T) {
	h, uc := newDocumentHandler(t)
	documentID := uuid.New()
	uc.EXPECT().
		Sign(mock.Anything, businessCaller(), documentID, mock.MatchedBy(func(f *usecase.FileUpload) bool {
			return f.Filename == "sig.png"
		})).
		Return(&entity.DigitalSignature{ID: uuid.New(), DocumentID: documentID, UserID: testUserID}, nil)

	call := multipartCall(t, "/api/v1/documents/"+documentID.String()+"/signatures", nil, "signature_image", "sig.png", []byte{0x89, 'P', 'N', 'G'})
	call.params = map[string]string{"id": documentID.String()}

	rec := serve(t, h.Sign, call)

	assert.Equal(t, http.StatusCreated, rec.Code)
}
