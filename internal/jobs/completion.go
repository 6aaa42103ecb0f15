package jobs

import (
	"context"
	"log/slog"
	"time"

	"carseat-rental/internal/pkg/config"
	"carseat-rental/internal/pkg/errs"
	"carseat-rental/internal/usecase"

	"github.com/robfig/cron/v3"
)

const completionTimeout = time.Minute

// CompletionJob marks active bookings whose return date has passed as completed.
type CompletionJob struct {
	bookings usecase.BookingUseCase
}

func NewCompletionJob(bookings usecase.BookingUseCase) *CompletionJob {
	return &CompletionJob{bookings: bookings}
}

func (j *CompletionJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), completionTimeout)
	defer cancel()

	n, err := j.bookings.CompleteDue(ctx)
	if err != nil {
		slog.Error("Booking completion job failed", "error", err)
		return
	}
	slog.Info("Booking completion job finished", "completed", n)
}

// Scheduler runs the background jobs on their cron schedules in UTC.
type Scheduler struct {
	cron *cron.Cron
}

func NewScheduler(cfg config.Config, completion *CompletionJob) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	if _, err := c.AddJob(cfg.Jobs.CompletionSchedule, completion); err != nil {
		return nil, errs.Wrapf(err, "register completion job with schedule %q", cfg.Jobs.CompletionSchedule)
	}

	return &Scheduler{cron: c}, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	slog.Info("Cron scheduler started", "jobs", len(s.cron.Entries()))
}

// Stop waits for running jobs to finish or ctx to expire.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		slog.Info("Cron scheduler stopped")
	case <-ctx.Done():
		slog.Warn("Cron scheduler stop timed out", "error", ctx.Err())
	}
}
