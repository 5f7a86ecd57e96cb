package entity

import (
	"time"

	"github.com/google/uuid"
)

// Compliance is a due-dated obligation owed by a business.
type Compliance struct {
	ID            uuid.UUID  `json:"id"`
	BusinessID    uuid.UUID  `json:"business_id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	DueDate       time.Time  `json:"due_date"`
	IsCompleted   bool       `json:"is_completed"`
	CompletedDate *time.Time `json:"completed_date"`
	ReminderSent  bool       `json:"reminder_sent"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Today truncates t to midnight UTC, the resolution of due and completion dates.
func Today(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ReminderCutoff is the latest due date that qualifies for a reminder today.
func ReminderCutoff(now time.Time, windowDays int) time.Time {
	return Today(now).AddDate(0, 0, windowDays)
}

// NeedsReminder reports whether the sweep should notify about this record.
func (c *Compliance) NeedsReminder(now time.Time, windowDays int) bool {
	return !c.IsCompleted && !c.ReminderSent && !c.DueDate.After(ReminderCutoff(now, windowDays))
}
