package impl

import (
	"context"
	"log/slog"

	"bizease/config"
	deliverycontext "bizease/internal/delivery/context"
	"bizease/internal/domain/entity"
	domainerrors "bizease/internal/domain/errors"
	"bizease/internal/domain/repository"
	"bizease/internal/domain/service"
	"bizease/internal/usecase"
	"bizease/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Storage prefixes of uploaded files.
const (
	documentPrefix  = "application_documents"
	signaturePrefix = "digital_signatures"
)

type documentService struct {
	txManager       repository.TransactionManager
	businessRepo    repository.BusinessRepository
	applicationRepo repository.ApplicationRepository
	documentRepo    repository.DocumentRepository
	storage         service.FileStorage
	metrics         service.WorkflowMetrics
	maxSize         int64
	now             clock
	logger          *slog.Logger
}

// DocumentServiceParams holds dependencies for DocumentService, injected by Fx.
type DocumentServiceParams struct {
	fx.In

	TxManager       repository.TransactionManager
	BusinessRepo    repository.BusinessRepository
	ApplicationRepo repository.ApplicationRepository
	DocumentRepo    repository.DocumentRepository
	Storage         service.FileStorage
	Metrics         service.WorkflowMetrics
	Config          *config.Config
	Logger          *slog.Logger
}

// NewDocumentService is the constructor for documentService.
func NewDocumentService(params DocumentServiceParams) usecase.DocumentUsecase {
	var maxSize int64
	if params.Config != nil && params.Config.Upload != nil {
		maxSize = params.Config.Upload.MaxDocumentSize
	}

	return &documentService{
		txManager:       params.TxManager,
		businessRepo:    params.BusinessRepo,
		applicationRepo: params.ApplicationRepo,
		documentRepo:    params.DocumentRepo,
		storage:         params.Storage,
		metrics:         params.Metrics,
		maxSize:         maxSize,
		now:             utcNow,
		logger:          params.Logger,
	}
}

func (srv *documentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Upload stores a supporting document. PDFs are verified on arrival.
func (srv *documentService) Upload(
	ctx context.Context,
	req usecase.Requester,
	applicationID uuid.UUID,
	documentType string,
	file *usecase.FileUpload,
) (*entity.ApplicationDocument, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	app, err := ownedApplication(ctx, srv.applicationRepo, profile, applicationID)
	if err != nil {
		return nil, err
	}

	docType, err := entity.ParseDocumentType(documentType)
	if err != nil {
		return nil, domainerrors.ErrInvalidDocumentType
	}
	ext, err := entity.DocumentExtension(file.Filename)
	if err != nil {
		return nil, domainerrors.ErrFileTypeNotAllowed
	}
	if srv.maxSize > 0 && file.Size > srv.maxSize {
		return nil, domainerrors.ErrFileTooLarge.WrapMessage("limit is " + util.FormatBytes(srv.maxSize))
	}

	stored, err := srv.storage.Save(ctx, documentPrefix, ext, file.ContentType, file.Content)
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	doc := &entity.ApplicationDocument{
		ApplicationID: app.ID,
		DocumentType:  docType,
		FileRef:       stored.Ref,
		OriginalName:  file.Filename,
		Checksum:      stored.Checksum,
		SizeBytes:     stored.SizeBytes,
		UploadedAt:    srv.now(),
	}
	doc.AutoVerify()

	if err := srv.documentRepo.Create(ctx, doc); err != nil {
		discardStored(ctx, srv.storage, srv.log(ctx), stored.Ref)

		return nil, errors.Wrap(err, "failed to create document")
	}

	srv.metrics.DocumentUploaded(doc.IsVerified)
	srv.log(ctx).Info("Document uploaded",
		slog.String("applicationID", app.ID.String()),
		slog.String("documentID", doc.ID.String()),
		slog.Bool("verified", doc.IsVerified),
	)

	return doc, nil
}

// ownedDocument resolves a document and its application, checking the requester's ownership.
// Documents of another business are reported as missing.
func (srv *documentService) ownedDocument(ctx context.Context, req usecase.Requester, documentID uuid.UUID) (*entity.ApplicationDocument, error) {
	profile, err := requireProfile(ctx, srv.businessRepo, req)
	if err != nil {
		return nil, err
	}

	doc, err := srv.documentRepo.FindByID(ctx, documentID)
	if errors.Is(err, repository.ErrDocumentNotFound) {
		return nil, domainerrors.ErrDocumentNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load document")
	}

	_, err = ownedApplication(ctx, srv.applicationRepo, profile, doc.ApplicationID)
	if errors.Is(err, domainerrors.ErrApplicationNotFound) {
		return nil, domainerrors.ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}

	return doc, nil
}

func (srv *documentService) Open(ctx context.Context, req usecase.Requester, documentID uuid.UUID) (*usecase.DocumentFile, error) {
	doc, err := srv.ownedDocument(ctx, req, documentID)
	if err != nil {
		return nil, err
	}

	body, contentType, err := srv.storage.Open(ctx, doc.FileRef)
	if errors.Is(err, service.ErrFileNotFound) {
		srv.log(ctx).Warn("Document file is missing from storage",
			slog.String("documentID", doc.ID.String()),
			slog.String("ref", doc.FileRef),
		)

		return nil, domainerrors.ErrDocumentNotFound
	}
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	return &usecase.DocumentFile{Document: doc, ContentType: contentType, Body: body}, nil
}

// Sign stores the signature image, then records the signature and verifies the document in one transaction.
func (srv *documentService) Sign(ctx context.Context, req usecase.Requester, documentID uuid.UUID, image *usecase.FileUpload) (*entity.DigitalSignature, error) {
	doc, err := srv.ownedDocument(ctx, req, documentID)
	if err != nil {
		return nil, err
	}

	ext, err := entity.SignatureExtension(image.Filename)
	if err != nil {
		return nil, domainerrors.ErrFileTypeNotAllowed
	}

	stored, err := srv.storage.Save(ctx, signaturePrefix, ext, image.ContentType, image.Content)
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	signature := &entity.DigitalSignature{
		UserID:       req.UserID,
		DocumentID:   doc.ID,
		SignatureRef: stored.Ref,
		SignedAt:     srv.now(),
		IsValid:      true,
	}
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewSignatureRepository().Create(ctx, signature); err != nil {
			return errors.Wrap(err, "failed to create signature")
		}

		return repoFactory.NewDocumentRepository().MarkVerified(ctx, doc.ID, entity.NoteSignedByUser)
	})
	if err != nil {
		discardStored(ctx, srv.storage, srv.log(ctx), stored.Ref)

		return nil, err
	}

	srv.metrics.SignatureAdded()
	srv.log(ctx).Info("Document signed",
		slog.String("documentID", doc.ID.String()),
		slog.String("signatureID", signature.ID.String()),
	)

	return signature, nil
}
