package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from ApplicationStatus
		to   ApplicationStatus
		want bool
	}{
		{StatusDraft, StatusSubmitted, true},
		{StatusDraft, StatusApproved, false},
		{StatusSubmitted, StatusSubmitted, false},
		{StatusSubmitted, StatusUnderReview, true},
		{StatusUnderReview, StatusApproved, true},
		{StatusAdditionalInfoRequired, StatusRejected, true},
		{StatusApproved, StatusRejected, false},
		{StatusRejected, StatusUnderReview, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.from)+"->"+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.want, CanTransition(tt.from, tt.to))
		})
	}
}

func TestApprovalApplication_Review(t *testing.T) {
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	t.Run("approved sets approval date", func(t *testing.T) {
		app := &ApprovalApplication{Status: StatusSubmitted}
		require.NoError(t, app.Review(StatusApproved, "", now))
		assert.Equal(t, StatusApproved, app.Status)
		require.NotNil(t, app.ApprovalDate)
		assert.Equal(t, now, *app.ApprovalDate)
	})

	t.Run("non approval clears approval date", func(t *testing.T) {
		earlier := now.Add(-time.Hour)
		app := &ApprovalApplication{Status: StatusUnderReview, ApprovalDate: &earlier}
		require.NoError(t, app.Review(StatusAdditionalInfoRequired, "", now))
		assert.Nil(t, app.ApprovalDate)
	})

	t.Run("rejection needs a reason", func(t *testing.T) {
		app := &ApprovalApplication{Status: StatusSubmitted}
		assert.ErrorIs(t, app.Review(StatusRejected, "", now), ErrRejectionReasonRequired)
		assert.Equal(t, StatusSubmitted, app.Status)

		require.NoError(t, app.Review(StatusRejected, "incomplete paperwork", now))
		assert.Equal(t, "incomplete paperwork", app.RejectionReason)
	})

	t.Run("draft cannot be reviewed", func(t *testing.T) {
		app := &ApprovalApplication{Status: StatusDraft}
		assert.ErrorIs(t, app.Review(StatusApproved, "", now), ErrInvalidTransition)
		assert.ErrorIs(t, app.Review(StatusSubmitted, "", now), ErrInvalidTransition)
	})
}

func TestNewApplicationNumber(t *testing.T) {
	seen := make(map[string]struct{}, 200)
	for range 200 {
		number, err := NewApplicationNumber()
		require.NoError(t, err)
		assert.NoError(t, ValidateApplicationNumber(number))
		seen[number] = struct{}{}
	}
	// 36^8 codes; 200 draws colliding would indicate a broken generator.
	assert.Len(t, seen, 200)
}

func TestValidateApplicationNumber(t *testing.T) {
	assert.NoError(t, ValidateApplicationNumber("APP-AB12CD34"))
	for _, bad := range []string{"", "APP-ab12cd34", "APP-AB12CD3", "XYZ-AB12CD34", "APP-AB12CD345"} {
		assert.ErrorIs(t, ValidateApplicationNumber(bad), ErrInvalidApplicationNo, bad)
	}
}

func TestParseApplicationStatus(t *testing.T) {
	s, err := ParseApplicationStatus("under_review")
	require.NoError(t, err)
	assert.Equal(t, StatusUnderReview, s)

	_, err = ParseApplicationStatus("archived")
	assert.ErrorIs(t, err, ErrInvalidStatus)
}
