package model

import (
	"time"

	"github.com/google/uuid"
)

// ApprovalApplicationModel mirrors the 'approval_applications' table.
type ApprovalApplicationModel struct {
	ID                uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BusinessID        uuid.UUID  `gorm:"type:uuid;not null;index"`
	ApprovalTypeID    uuid.UUID  `gorm:"type:uuid;not null"`
	ApplicationNumber string     `gorm:"type:varchar(50);unique;not null"`
	Status            string     `gorm:"type:varchar(30);not null"`
	SubmissionDate    *time.Time
	ApprovalDate      *time.Time
	RejectionReason   string     `gorm:"type:text"`
	Notes             string     `gorm:"type:text"`
	CreatedAt         time.Time
	UpdatedAt         time.Time

	ApprovalType *ApprovalTypeModel `gorm:"foreignKey:ApprovalTypeID"`
}

// TableName explicitly sets the table name for GORM.
func (ApprovalApplicationModel) TableName() string {
	return "approval_applications"
}

// ApplicationDocumentModel mirrors the 'application_documents' table.
type ApplicationDocumentModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	ApplicationID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DocumentType      string    `gorm:"type:varchar(20);not null"`
	FileRef           string    `gorm:"type:varchar(255);not null"`
	OriginalName      string    `gorm:"type:varchar(255)"`
	Checksum          string    `gorm:"type:char(64)"`
	SizeBytes         int64
	IsVerified        bool
	VerificationNotes string `gorm:"type:text"`
	UploadedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApplicationDocumentModel) TableName() string {
	return "application_documents"
}

// DigitalSignatureModel mirrors the 'digital_signatures' table.
type DigitalSignatureModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;not null"`
	DocumentID   uuid.UUID `gorm:"type:uuid;not null;index"`
	SignatureRef string    `gorm:"type:varchar(255);not null"`
	SignedAt     time.Time
	IsValid      bool
}

// TableName explicitly sets the table name for GORM.
func (DigitalSignatureModel) TableName() string {
	return "digital_signatures"
}

// ComplianceModel mirrors the 'compliances' table.
type ComplianceModel struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey"`
	BusinessID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	Title         string     `gorm:"type:varchar(200);not null"`
	Description   string     `gorm:"type:text"`
	DueDate       time.Time  `gorm:"type:date"`
	IsCompleted   bool
	CompletedDate *time.Time `gorm:"type:date"`
	ReminderSent  bool
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (ComplianceModel) TableName() string {
	return "compliances"
}
