package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"secretKey": map[string]any{
			"access": "",
		},
		"reminder": map[string]any{
			"sweepOnDashboard": true,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "SECRETKEY_ACCESS", want: "secretKey.access"},
		{envKey: "REMINDER_SWEEPONDASHBOARD", want: "reminder.sweepOnDashboard"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_FillsOptionalSections(t *testing.T) {
	cfg := &Config{}
	ApplyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultAccessTokenTTL, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "log", cfg.Mail.Provider)
	assert.Equal(t, defaultMailFromAddress, cfg.Mail.FromAddress)
	assert.NotEmpty(t, cfg.Storage.BucketURL)
	assert.Equal(t, int64(defaultMaxDocumentSize), cfg.Upload.MaxDocumentSize)
	assert.Equal(t, 7, cfg.Reminder.WindowDays)
	assert.True(t, cfg.Reminder.SweepOnDashboard)
	assert.Equal(t, defaultReminderSchedule, cfg.Reminder.Schedule)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestApplyDefaults_KeepsConfiguredValues(t *testing.T) {
	cfg := &Config{
		Auth:     &AuthConfig{AccessTokenTTL: time.Hour},
		Mail:     &MailConfig{Provider: "ses", FromAddress: "portal@gov.example"},
		Reminder: &ReminderConfig{WindowDays: 3, SweepOnDashboard: false, Schedule: "0 6 * * *"},
	}
	ApplyDefaults(cfg)

	assert.Equal(t, time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, "ses", cfg.Mail.Provider)
	assert.Equal(t, "portal@gov.example", cfg.Mail.FromAddress)
	assert.Equal(t, 3, cfg.Reminder.WindowDays)
	assert.False(t, cfg.Reminder.SweepOnDashboard)
	assert.Equal(t, "0 6 * * *", cfg.Reminder.Schedule)
}
