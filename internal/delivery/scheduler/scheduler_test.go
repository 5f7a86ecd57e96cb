package scheduler

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bizease/config"
	mockUsecase "bizease/internal/mocks/usecase"
	"bizease/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestScheduler(t *testing.T, reminder *config.ReminderConfig) (*reminderScheduler, *mockUsecase.MockComplianceUsecase, *fxtest.Lifecycle) {
	uc := mockUsecase.NewMockComplianceUsecase(t)
	lc := fxtest.NewLifecycle(t)

	d, err := NewScheduler(SchedulerParams{
		Lc:           lc,
		Cfg:          &config.Config{Reminder: reminder},
		Logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
		ComplianceUC: uc,
	})
	require.NoError(t, err)

	return d.(*reminderScheduler), uc, lc
}

func TestScheduler_Disabled(t *testing.T) {
	s, _, lc := newTestScheduler(t, &config.ReminderConfig{ScheduleEnabled: false, Schedule: "@every 1s"})

	require.NoError(t, s.Serve(context.Background()))
	assert.Empty(t, s.cron.Entries())
	lc.RequireStart().RequireStop()
}

func TestScheduler_InvalidSchedule(t *testing.T) {
	s, _, _ := newTestScheduler(t, &config.ReminderConfig{ScheduleEnabled: true, Schedule: "every tuesday"})

	assert.Error(t, s.Serve(context.Background()))
}

func TestScheduler_RunsSweep(t *testing.T) {
	s, uc, lc := newTestScheduler(t, &config.ReminderConfig{ScheduleEnabled: true, Schedule: "@every 1s"})

	ran := make(chan struct{}, 1)
	uc.EXPECT().SweepAllReminders(mock.Anything).
		RunAndReturn(func(ctx context.Context) (*usecase.SweepResult, error) {
			select {
			case ran <- struct{}{}:
			default:
			}

			return &usecase.SweepResult{Candidates: 1, Sent: 1}, nil
		}).Maybe()

	lc.RequireStart()
	require.NoError(t, s.Serve(context.Background()))
	require.Len(t, s.cron.Entries(), 1)

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("sweep did not run")
	}

	lc.RequireStop()
}

func TestScheduler_SweepErrorIsLogged(t *testing.T) {
	s, uc, _ := newTestScheduler(t, &config.ReminderConfig{})
	uc.EXPECT().SweepAllReminders(mock.Anything).Return(nil, errors.New("database down")).Once()

	assert.NotPanics(t, func() { s.runSweep(context.Background()) })
}
