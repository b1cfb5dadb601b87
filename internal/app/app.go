package app

import (
	"io"
	"log/slog"

	"github.com/vk/worldreg/internal/config"
	"github.com/vk/worldreg/internal/registry"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
	worlds registry.Shared
}

// NewApp is the constructor for the main application. Reports are written to
// outW and logs to logW. The returned App owns its own logger and registry.
func NewApp(outW, logW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logW:   logW,
		logger: logger,
		config: appConfig,
		loader: loader,
	}
}

// Registry returns the application's registry, constructing it on first use.
func (a *App) Registry() *registry.Registry {
	return a.worlds.Instance()
}

// Close tears down the application's registry. A later call to Registry or
// Run starts from an empty one.
func (a *App) Close() {
	a.logger.Debug("Tearing down world registry.")
	a.worlds.Delete()
}
