// Package scheduler runs the periodic compliance reminder sweep.
package scheduler

import (
	"context"
	"log/slog"
	"time"

	"bizease/config"
	"bizease/internal/delivery"
	deliverycontext "bizease/internal/delivery/context"
	"bizease/internal/domain/lifecycle"
	"bizease/internal/usecase"
	"bizease/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

type reminderScheduler struct {
	cfg          *config.ReminderConfig
	logger       *slog.Logger
	complianceUC usecase.ComplianceUsecase
	cron         *cron.Cron
}

// SchedulerParams holds dependencies for the reminder scheduler, injected by Fx.
type SchedulerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	ComplianceUC usecase.ComplianceUsecase
}

// NewScheduler builds the scheduler. Sweeps never overlap: a tick that fires while
// the previous sweep is still running is skipped.
func NewScheduler(params SchedulerParams) (delivery.Delivery, error) {
	logger := params.Logger.With(slog.String("component", "reminder_scheduler"))
	cronLogger := &slogCronLogger{logger: logger}

	s := &reminderScheduler{
		cfg:          params.Cfg.Reminder,
		logger:       logger,
		complianceUC: params.ComplianceUC,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
	}

	params.Lc.Append(fx.Hook{
		OnStop: s.stop,
	})

	return s, nil
}

// Serve registers the sweep job and starts the cron loop. It returns immediately.
func (s *reminderScheduler) Serve(ctx context.Context) error {
	if !s.cfg.ScheduleEnabled {
		s.logger.Info("Reminder schedule disabled")

		return nil
	}

	if _, err := s.cron.AddFunc(s.cfg.Schedule, func() { s.runSweep(ctx) }); err != nil {
		return errors.Wrapf(err, "invalid reminder schedule %q", s.cfg.Schedule)
	}

	s.logger.Info("Starting reminder scheduler", slog.String("schedule", s.cfg.Schedule))
	s.cron.Start()

	return nil
}

func (s *reminderScheduler) runSweep(ctx context.Context) {
	requestID := uuid.NewString()
	logger := s.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, logger)

	start := time.Now()
	result, err := s.complianceUC.SweepAllReminders(ctx)
	if err != nil {
		logger.Error("Scheduled reminder sweep failed", slog.Any("error", err))

		return
	}

	logger.Info("Scheduled reminder sweep finished",
		slog.Int("candidates", result.Candidates),
		slog.Int("sent", result.Sent),
		slog.Int("skipped", result.Skipped),
		slog.Int("failed", result.Failed),
		slog.String("elapsed", util.FormatDuration(time.Since(start))),
	)
}

// stop waits for a running sweep, bounded by the shutdown timeout.
func (s *reminderScheduler) stop(ctx context.Context) error {
	s.logger.Info("Stopping reminder scheduler")

	done := s.cron.Stop()
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	select {
	case <-done.Done():
		return nil
	case <-shutdownCtx.Done():
		return errors.Wrap(shutdownCtx.Err(), "reminder sweep still running at shutdown")
	}
}

// slogCronLogger adapts slog to cron.Logger.
type slogCronLogger struct {
	logger *slog.Logger
}

func (l *slogCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l *slogCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("cron: "+msg, append([]any{slog.Any("error", err)}, keysAndValues...)...)
}
