package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BusinessType classifies a registered business.
type BusinessType string

const (
	BusinessTypeRetail        BusinessType = "retail"
	BusinessTypeManufacturing BusinessType = "manufacturing"
	BusinessTypeService       BusinessType = "service"
	BusinessTypeIT            BusinessType = "it"
	BusinessTypeHospitality   BusinessType = "hospitality"
	BusinessTypeOther         BusinessType = "other"
)

var businessTypeLabels = map[BusinessType]string{
	BusinessTypeRetail:        "Retail",
	BusinessTypeManufacturing: "Manufacturing",
	BusinessTypeService:       "Service",
	BusinessTypeIT:            "Information Technology",
	BusinessTypeHospitality:   "Hospitality",
	BusinessTypeOther:         "Other",
}

// ParseBusinessType accepts the stored value case-insensitively.
func ParseBusinessType(s string) (BusinessType, error) {
	bt := BusinessType(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := businessTypeLabels[bt]; !ok {
		return "", ErrInvalidBusinessType
	}

	return bt, nil
}

// Label returns the human-readable name.
func (bt BusinessType) Label() string {
	return businessTypeLabels[bt]
}

// BusinessProfile is the one-per-account record describing a registered business.
type BusinessProfile struct {
	ID                 uuid.UUID    `json:"id"`
	UserID             uuid.UUID    `json:"user_id"`
	BusinessName       string       `json:"business_name"`
	BusinessType       BusinessType `json:"business_type"`
	RegistrationNumber string       `json:"registration_number"` // Globally unique.
	Address            string       `json:"address"`
	ContactPerson      string       `json:"contact_person"`
	ContactNumber      string       `json:"contact_number"`
	Email              string       `json:"email"`
	DateEstablished    time.Time    `json:"date_established"`
	CreatedAt          time.Time    `json:"created_at"`
	UpdatedAt          time.Time    `json:"updated_at"`
}

// OwnedBy reports whether the given account owns this business.
func (b *BusinessProfile) OwnedBy(userID uuid.UUID) bool {
	return b != nil && b.UserID == userID
}
