package cli

import (
	"context"

	"github.com/ocluk/caolan/internal/app"
	"github.com/ocluk/caolan/internal/config"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	appKey    contextKey = "app"
	configKey contextKey = "config"
)

// WithApp returns a context carrying an already open App.
// Commands run with it use that App instead of opening the database.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return context.WithValue(ctx, appKey, a)
}

// WithConfig returns a context carrying the loaded configuration
func WithConfig(ctx context.Context, cfg *config.Config) context.Context {
	return context.WithValue(ctx, configKey, cfg)
}

// ConfigFromContext returns the configuration stored by WithConfig, or nil
func ConfigFromContext(ctx context.Context) *config.Config {
	cfg, _ := ctx.Value(configKey).(*config.Config)
	return cfg
}

// GetCLIFromContext returns a CLI for the command context.
// An App injected with WithApp is reused; otherwise the database named by the
// configuration is opened.
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if a, ok := ctx.Value(appKey).(*app.App); ok && a != nil {
		return &CLI{App: a}, nil
	}

	cfg := ConfigFromContext(ctx)
	if cfg == nil {
		loaded, err := config.Load()
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	return NewCLI(ctx, cfg.DatabasePath)
}
