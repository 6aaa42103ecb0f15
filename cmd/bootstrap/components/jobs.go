package components

import (
	"context"

	"carseat-rental/internal/jobs"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		jobs.NewCompletionJob,
		jobs.NewScheduler,
	),
	fx.Invoke(registerScheduler),
)

func registerScheduler(lc fx.Lifecycle, s *jobs.Scheduler) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			s.Stop(ctx)
			return nil
		},
	})
}
