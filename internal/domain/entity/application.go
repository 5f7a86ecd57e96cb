package entity

import (
	"crypto/rand"
	"regexp"
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the lifecycle state of an approval application.
type ApplicationStatus string

const (
	StatusDraft                  ApplicationStatus = "draft"
	StatusSubmitted              ApplicationStatus = "submitted"
	StatusUnderReview            ApplicationStatus = "under_review"
	StatusApproved               ApplicationStatus = "approved"
	StatusRejected               ApplicationStatus = "rejected"
	StatusAdditionalInfoRequired ApplicationStatus = "additional_info_required"
)

// IsValid checks if the status is one of the known values.
func (s ApplicationStatus) IsValid() bool {
	switch s {
	case StatusDraft, StatusSubmitted, StatusUnderReview, StatusApproved,
		StatusRejected, StatusAdditionalInfoRequired:
		return true
	default:
		return false
	}
}

// ParseApplicationStatus converts a raw value into a status.
func ParseApplicationStatus(s string) (ApplicationStatus, error) {
	status := ApplicationStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}

	return status, nil
}

// reviewable lists the states an administrator may move an application out of.
var reviewable = map[ApplicationStatus]bool{
	StatusSubmitted:              true,
	StatusUnderReview:            true,
	StatusAdditionalInfoRequired: true,
}

// reviewOutcomes lists the states an administrator may move an application into.
var reviewOutcomes = map[ApplicationStatus]bool{
	StatusUnderReview:            true,
	StatusApproved:               true,
	StatusRejected:               true,
	StatusAdditionalInfoRequired: true,
}

// CanTransition reports whether from -> to is an edge of the application state machine.
func CanTransition(from, to ApplicationStatus) bool {
	if from == StatusDraft {
		return to == StatusSubmitted
	}

	return reviewable[from] && reviewOutcomes[to]
}

// ApprovalApplication is a request by a business for a specific approval type.
type ApprovalApplication struct {
	ID                uuid.UUID         `json:"id"`
	BusinessID        uuid.UUID         `json:"business_id"`
	ApprovalTypeID    uuid.UUID         `json:"approval_type_id"`
	ApplicationNumber string            `json:"application_number"`
	Status            ApplicationStatus `json:"status"`
	SubmissionDate    *time.Time        `json:"submission_date"`
	ApprovalDate      *time.Time        `json:"approval_date"`
	RejectionReason   string            `json:"rejection_reason,omitempty"`
	Notes             string            `json:"notes,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`

	// ApprovalType is populated by reads that join the catalog entry.
	ApprovalType *ApprovalType `json:"approval_type,omitempty"`
}

// Review applies an administrative decision. approval_date is kept only for approved applications.
func (a *ApprovalApplication) Review(to ApplicationStatus, rejectionReason string, now time.Time) error {
	if !CanTransition(a.Status, to) || to == StatusSubmitted {
		return ErrInvalidTransition
	}
	if to == StatusRejected && rejectionReason == "" {
		return ErrRejectionReasonRequired
	}

	a.Status = to
	a.ApprovalDate = nil
	if to == StatusApproved {
		approved := now
		a.ApprovalDate = &approved
	}
	if to == StatusRejected {
		a.RejectionReason = rejectionReason
	}
	a.UpdatedAt = now

	return nil
}

const (
	applicationNumberPrefix = "APP-"
	applicationCodeLength   = 8
	applicationCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var applicationNumberPattern = regexp.MustCompile(`^APP-[A-Z0-9]{8}$`)

// NewApplicationNumber returns a random public tracking number such as APP-7K2Q9ZTA.
func NewApplicationNumber() (string, error) {
	buf := make([]byte, applicationCodeLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}

	code := make([]byte, applicationCodeLength)
	for i, b := range buf {
		// 256 % 36 leaves a slight bias toward the first 4 symbols; irrelevant for tracking numbers.
		code[i] = applicationCodeAlphabet[int(b)%len(applicationCodeAlphabet)]
	}

	return applicationNumberPrefix + string(code), nil
}

// ValidateApplicationNumber checks the public tracking number format.
func ValidateApplicationNumber(number string) error {
	if !applicationNumberPattern.MatchString(number) {
		return ErrInvalidApplicationNo
	}

	return nil
}
