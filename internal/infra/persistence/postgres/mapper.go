package postgres

import (
	"bizease/internal/domain/entity"
	"bizease/internal/infra/persistence/model"
)

// --- Mapper Functions ---
// These helpers convert between domain entities and persistence models.

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         entity.Role(data.Role),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func fromUserDomain(data *entity.User) *model.UserModel {
	return &model.UserModel{
		ID:           data.ID,
		Email:        data.Email,
		Name:         data.Name,
		PasswordHash: data.PasswordHash,
		Role:         data.Role.String(),
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}

func toBusinessDomain(data *model.BusinessProfileModel) *entity.BusinessProfile {
	if data == nil {
		return nil
	}

	return &entity.BusinessProfile{
		ID:                 data.ID,
		UserID:             data.UserID,
		BusinessName:       data.BusinessName,
		BusinessType:       entity.BusinessType(data.BusinessType),
		RegistrationNumber: data.RegistrationNumber,
		Address:            data.Address,
		ContactPerson:      data.ContactPerson,
		ContactNumber:      data.ContactNumber,
		Email:              data.Email,
		DateEstablished:    data.DateEstablished,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func fromBusinessDomain(data *entity.BusinessProfile) *model.BusinessProfileModel {
	return &model.BusinessProfileModel{
		ID:                 data.ID,
		UserID:             data.UserID,
		BusinessName:       data.BusinessName,
		BusinessType:       string(data.BusinessType),
		RegistrationNumber: data.RegistrationNumber,
		Address:            data.Address,
		ContactPerson:      data.ContactPerson,
		ContactNumber:      data.ContactNumber,
		Email:              data.Email,
		DateEstablished:    data.DateEstablished,
		CreatedAt:          data.CreatedAt,
		UpdatedAt:          data.UpdatedAt,
	}
}

func toApprovalTypeDomain(data *model.ApprovalTypeModel) *entity.ApprovalType {
	if data == nil {
		return nil
	}

	return &entity.ApprovalType{
		ID:                data.ID,
		Name:              data.Name,
		Description:       data.Description,
		Department:        data.Department,
		ProcessingTime:    data.ProcessingTime,
		Fees:              data.Fees,
		RequiredDocuments: data.RequiredDocuments,
		IsActive:          data.IsActive,
	}
}

func fromApprovalTypeDomain(data *entity.ApprovalType) *model.ApprovalTypeModel {
	return &model.ApprovalTypeModel{
		ID:                data.ID,
		Name:              data.Name,
		Description:       data.Description,
		Department:        data.Department,
		ProcessingTime:    data.ProcessingTime,
		Fees:              data.Fees,
		RequiredDocuments: data.RequiredDocuments,
		IsActive:          data.IsActive,
	}
}

func toSchemeDomain(data *model.GovernmentSchemeModel) *entity.GovernmentScheme {
	return &entity.GovernmentScheme{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		Eligibility:        data.Eligibility,
		Benefits:           data.Benefits,
		ApplicationProcess: data.ApplicationProcess,
		WebsiteLink:        data.WebsiteLink,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
	}
}

func fromSchemeDomain(data *entity.GovernmentScheme) *model.GovernmentSchemeModel {
	return &model.GovernmentSchemeModel{
		ID:                 data.ID,
		Name:               data.Name,
		Description:        data.Description,
		Eligibility:        data.Eligibility,
		Benefits:           data.Benefits,
		ApplicationProcess: data.ApplicationProcess,
		WebsiteLink:        data.WebsiteLink,
		StartDate:          data.StartDate,
		EndDate:            data.EndDate,
		IsActive:           data.IsActive,
		CreatedAt:          data.CreatedAt,
	}
}

func toNewsDomain(data *model.NewsArticleModel) *entity.NewsArticle {
	return &entity.NewsArticle{
		ID:          data.ID,
		Title:       data.Title,
		Content:     data.Content,
		PublishDate: data.PublishDate,
		IsActive:    data.IsActive,
		ImageRef:    data.ImageRef,
		Source:      data.Source,
		SourceURL:   data.SourceURL,
		CreatedAt:   data.CreatedAt,
	}
}

func fromNewsDomain(data *entity.NewsArticle) *model.NewsArticleModel {
	return &model.NewsArticleModel{
		ID:          data.ID,
		Title:       data.Title,
		Content:     data.Content,
		PublishDate: data.PublishDate,
		IsActive:    data.IsActive,
		ImageRef:    data.ImageRef,
		Source:      data.Source,
		SourceURL:   data.SourceURL,
		CreatedAt:   data.CreatedAt,
	}
}

func toApplicationDomain(data *model.ApprovalApplicationModel) *entity.ApprovalApplication {
	return &entity.ApprovalApplication{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		ApprovalTypeID:    data.ApprovalTypeID,
		ApplicationNumber: data.ApplicationNumber,
		Status:            entity.ApplicationStatus(data.Status),
		SubmissionDate:    data.SubmissionDate,
		ApprovalDate:      data.ApprovalDate,
		RejectionReason:   data.RejectionReason,
		Notes:             data.Notes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
		ApprovalType:      toApprovalTypeDomain(data.ApprovalType),
	}
}

func fromApplicationDomain(data *entity.ApprovalApplication) *model.ApprovalApplicationModel {
	return &model.ApprovalApplicationModel{
		ID:                data.ID,
		BusinessID:        data.BusinessID,
		ApprovalTypeID:    data.ApprovalTypeID,
		ApplicationNumber: data.ApplicationNumber,
		Status:            string(data.Status),
		SubmissionDate:    data.SubmissionDate,
		ApprovalDate:      data.ApprovalDate,
		RejectionReason:   data.RejectionReason,
		Notes:             data.Notes,
		CreatedAt:         data.CreatedAt,
		UpdatedAt:         data.UpdatedAt,
	}
}

func toDocumentDomain(data *model.ApplicationDocumentModel) *entity.ApplicationDocument {
	return &entity.ApplicationDocument{
		ID:                data.ID,
		ApplicationID:     data.ApplicationID,
		DocumentType:      entity.DocumentType(data.DocumentType),
		FileRef:           data.FileRef,
		OriginalName:      data.OriginalName,
		Checksum:          data.Checksum,
		SizeBytes:         data.SizeBytes,
		IsVerified:        data.IsVerified,
		VerificationNotes: data.VerificationNotes,
		UploadedAt:        data.UploadedAt,
	}
}

func fromDocumentDomain(data *entity.ApplicationDocument) *model.ApplicationDocumentModel {
	return &model.ApplicationDocumentModel{
		ID:                data.ID,
		ApplicationID:     data.ApplicationID,
		DocumentType:      string(data.DocumentType),
		FileRef:           data.FileRef,
		OriginalName:      data.OriginalName,
		Checksum:          data.Checksum,
		SizeBytes:         data.SizeBytes,
		IsVerified:        data.IsVerified,
		VerificationNotes: data.VerificationNotes,
		UploadedAt:        data.UploadedAt,
	}
}

func toSignatureDomain(data *model.DigitalSignatureModel) *entity.DigitalSignature {
	return &entity.DigitalSignature{
		ID:           data.ID,
		UserID:       data.UserID,
		DocumentID:   data.DocumentID,
		SignatureRef: data.SignatureRef,
		SignedAt:     data.SignedAt,
		IsValid:      data.IsValid,
	}
}

func fromSignatureDomain(data *entity.DigitalSignature) *model.DigitalSignatureModel {
	return &model.DigitalSignatureModel{
		ID:           data.ID,
		UserID:       data.UserID,
		DocumentID:   data.DocumentID,
		SignatureRef: data.SignatureRef,
		SignedAt:     data.SignedAt,
		IsValid:      data.IsValid,
	}
}

func toComplianceDomain(data *model.ComplianceModel) *entity.Compliance {
	return &entity.Compliance{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		Title:         data.Title,
		Description:   data.Description,
		DueDate:       data.DueDate,
		IsCompleted:   data.IsCompleted,
		CompletedDate: data.CompletedDate,
		ReminderSent:  data.ReminderSent,
		CreatedAt:     data.CreatedAt,
	}
}

func fromComplianceDomain(data *entity.Compliance) *model.ComplianceModel {
	return &model.ComplianceModel{
		ID:            data.ID,
		BusinessID:    data.BusinessID,
		Title:         data.Title,
		Description:   data.Description,
		DueDate:       data.DueDate,
		IsCompleted:   data.IsCompleted,
		CompletedDate: data.CompletedDate,
		ReminderSent:  data.ReminderSent,
		CreatedAt:     data.CreatedAt,
	}
}

// mapSlice converts a slice of persistence models with fn.
func mapSlice[M any, E any](models []M, fn func(*M) *E) []*E {
	out := make([]*E, 0, len(models))
	for i := range models {
		out = append(out, fn(&models[i]))
	}

	return out
}
