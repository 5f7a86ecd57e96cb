package entity

import (
	"time"

	"github.com/google/uuid"
)

// GovernmentScheme is a published support programme with a validity window.
type GovernmentScheme struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description"`
	Eligibility        string     `json:"eligibility"`
	Benefits           string     `json:"benefits"`
	ApplicationProcess string     `json:"application_process"`
	WebsiteLink        string     `json:"website_link"`
	StartDate          time.Time  `json:"start_date"`
	EndDate            *time.Time `json:"end_date"`
	IsActive           bool       `json:"is_active"`
	CreatedAt          time.Time  `json:"created_at"`
}

// ApprovalType describes a license or registration category businesses can apply for.
type ApprovalType struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	Department        string    `json:"department"`
	ProcessingTime    string    `json:"processing_time"`
	Fees              string    `json:"fees"` // decimal(10,2) kept as text to avoid float rounding
	RequiredDocuments string    `json:"required_documents"`
	IsActive          bool      `json:"is_active"`
}

// NewsArticle is a published announcement, independent of any business.
type NewsArticle struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishDate time.Time `json:"publish_date"`
	IsActive    bool      `json:"is_active"`
	ImageRef    string    `json:"image_ref,omitempty"`
	Source      string    `json:"source"`
	SourceURL   string    `json:"source_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}
