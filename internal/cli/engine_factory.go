package cli

import (
	"fmt"
	"log/slog"

	"github.com/aretw0/cipherkit"
	"github.com/aretw0/cipherkit/internal/config"
	"github.com/aretw0/cipherkit/internal/logging"
	"github.com/aretw0/cipherkit/pkg/domain"
	"github.com/aretw0/cipherkit/pkg/observability"
)

// Env is everything a command needs after setup.
type Env struct {
	Config  config.Config
	Logger  *slog.Logger
	Engine  *cipherkit.Engine
	Metrics *observability.Metrics // nil when disabled
}

// Setup loads configuration and builds the engine with standard CLI conventions.
func Setup(configPath string, debug bool) (*Env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	logger, err := createLogger(debug, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	env := &Env{Config: cfg, Logger: logger}

	hooks := domain.LifecycleHooks{}
	if cfg.Metrics.Enabled {
		env.Metrics, err = observability.New(cfg.Metrics.Namespace)
		if err != nil {
			return nil, fmt.Errorf("error initializing metrics: %w", err)
		}
		hooks = env.Metrics.Hooks()
	}
	if debug {
		hooks = hooks.Merge(createDebugHooks(logger))
	}

	env.Engine = cipherkit.New(
		cipherkit.WithLogger(logger),
		cipherkit.WithLifecycleHooks(hooks),
	)
	logger.Debug("Engine Ready", "config", configPath, "metrics", cfg.Metrics.Enabled)
	return env, nil
}

// createLogger configures the application logger.
// --debug wins over the configured level.
func createLogger(debug bool, level string) (*slog.Logger, error) {
	if debug {
		return logging.New(slog.LevelDebug), nil
	}
	lvl, err := logging.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return logging.New(lvl), nil
}

func createDebugHooks(logger *slog.Logger) domain.LifecycleHooks {
	return domain.LifecycleHooks{
		OnTransform: func(e *domain.TransformEvent) {
			if e.Failed() {
				logger.Debug("Transform (Error)", "method", e.Method, "mode", e.Mode, "kind", e.Kind, "duration", e.Duration)
				return
			}
			logger.Debug("Transform (Success)", "method", e.Method, "mode", e.Mode, "in_bytes", e.InputBytes, "out_bytes", e.OutputBytes, "duration", e.Duration)
		},
		OnHistoryAppend: func(e *domain.HistoryEvent) {
			logger.Debug("History Append", "id", e.Entry.ID, "method", e.Entry.Method)
		},
		OnHistoryEvict: func(e *domain.HistoryEvent) {
			logger.Debug("History Evict", "id", e.Entry.ID)
		},
	}
}
