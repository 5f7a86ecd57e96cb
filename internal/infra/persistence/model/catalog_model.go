package model

import (
	"time"

	"github.com/google/uuid"
)

// GovernmentSchemeModel mirrors the 'government_schemes' table.
type GovernmentSchemeModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name               string     `gorm:"type:varchar(200);not null"`
	Description        string     `gorm:"type:text"`
	Eligibility        string     `gorm:"type:text"`
	Benefits           string     `gorm:"type:text"`
	ApplicationProcess string     `gorm:"type:text"`
	WebsiteLink        string     `gorm:"type:varchar(255)"`
	StartDate          time.Time  `gorm:"type:date"`
	EndDate            *time.Time `gorm:"type:date"`
	IsActive           bool
	CreatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (GovernmentSchemeModel) TableName() string {
	return "government_schemes"
}

// ApprovalTypeModel mirrors the 'approval_types' table.
type ApprovalTypeModel struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name              string    `gorm:"type:varchar(100);not null"`
	Description       string    `gorm:"type:text"`
	Department        string    `gorm:"type:varchar(100)"`
	ProcessingTime    string    `gorm:"type:varchar(50)"`
	Fees              string    `gorm:"type:numeric(10,2)"`
	RequiredDocuments string    `gorm:"type:text"`
	IsActive          bool
}

// TableName explicitly sets the table name for GORM.
func (ApprovalTypeModel) TableName() string {
	return "approval_types"
}

// NewsArticleModel mirrors the 'news_articles' table.
type NewsArticleModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Title       string    `gorm:"type:varchar(200);not null"`
	Content     string    `gorm:"type:text"`
	PublishDate time.Time
	IsActive    bool
	ImageRef    string `gorm:"type:varchar(255)"`
	Source      string `gorm:"type:varchar(100)"`
	SourceURL   string `gorm:"column:source_url;type:varchar(255)"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (NewsArticleModel) TableName() string {
	return "news_articles"
}
