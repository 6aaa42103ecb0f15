package bootstrap

import (
	"fmt"
	"log/slog"

	"carseat-rental/internal/handler/middleware"
	"carseat-rental/internal/pkg/config"
	"carseat-rental/internal/pkg/jwt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// ConfigModule is swapped for a fixed config in e2e runs.
var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		NewLogger,
	),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(
		NewJWTService,
	),
)

// FxLogger routes the container's own lifecycle events through the app logger.
var FxLogger = fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
	return &fxevent.SlogLogger{Logger: logger}
})

// NewLogger also installs the logger as the slog default.
func NewLogger(cfg config.Config) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log)
	logger.Info("Logger initialized",
		"level", cfg.Log.Level,
		"submitter", cfg.Booking.Submitter,
		"submit_timeout", cfg.Booking.SubmitTimeout,
	)
	return logger
}

// NewJWTService signs the client tokens. The duration bounds how long an anonymous
// browser keeps its drafts, so it may not be shorter than a draft's lifetime.
func NewJWTService(cfg config.Config) (*jwt.Service, error) {
	if cfg.JWT.Duration <= 0 {
		return nil, fmt.Errorf("invalid JWT_DURATION %s: must be positive", cfg.JWT.Duration)
	}
	if cfg.JWT.Duration < cfg.Session.DraftTTL {
		return nil, fmt.Errorf("JWT_DURATION %s is shorter than DRAFT_TTL %s", cfg.JWT.Duration, cfg.Session.DraftTTL)
	}
	return jwt.NewService(cfg.JWT.Secret, cfg.JWT.Duration), nil
}
