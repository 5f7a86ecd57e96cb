package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{1023, "1023 B"},
		{1536, "1.5 KB"},
		{10 << 20, "10.0 MB"},
		{5 << 30, "5.0 GB"},
		{3 << 50, "3072.0 TB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatBytes(tt.bytes), tt.bytes)
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{400 * time.Millisecond, "0s"},
		{45 * time.Second, "45s"},
		{59*time.Second + 500*time.Millisecond, "1m0s"},
		{2*time.Minute + 30*time.Second, "2m30s"},
		{time.Hour + 30*time.Minute + 10*time.Second, "1h30m"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.duration), tt.duration.String())
	}
}
