package app

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/vk/worldreg/internal/config"
	"github.com/vk/worldreg/internal/ctxlog"
	"github.com/vk/worldreg/internal/registry"
)

// Run loads the configured worlds, resolves every map query, and writes a
// report. Descriptors that fail to load are listed in the report rather than
// failing the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	model := config.NewModel()
	if a.config.ProjectPath != "" {
		project, err := a.loader.Load(ctx, a.config.ProjectPath)
		if err != nil {
			return fmt.Errorf("failed to load project: %w", err)
		}
		model.Merge(project)
		ctx = a.applyProjectLogging(ctx, model)
		a.logger.Debug("Project loaded.", "worlds", len(model.Worlds), "search_paths", len(model.SearchPaths))
	}

	paths := model.WorldPaths()
	for _, p := range a.config.WorldPaths {
		paths = append(paths, absPath(p))
	}

	reg := a.Registry()
	report := &Report{}

	if err := reg.LoadAll(ctx, paths...); err != nil {
		var batch *registry.BatchError
		if !errors.As(err, &batch) {
			return fmt.Errorf("failed to load worlds: %w", err)
		}
		for _, f := range batch.Failures {
			report.Failures = append(report.Failures, LoadFailure{Path: f.Path, Error: f.Err.Error()})
		}
	}

	for _, w := range reg.Worlds() {
		report.Worlds = append(report.Worlds, summarizeWorld(w))
	}

	for _, q := range a.config.MapQueries {
		lookup := Lookup{Map: absPath(q)}
		if w := reg.WorldForMap(lookup.Map); w != nil {
			lookup.World = w.FileName
			lookup.Found = true
		}
		a.logger.Debug("Resolved map query.", "map", lookup.Map, "world", lookup.World, "found", lookup.Found)
		report.Lookups = append(report.Lookups, lookup)
	}

	if err := report.Write(a.outW, a.config.OutputFormat); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// applyProjectLogging rebuilds the logger when the project sets logging
// options the command line left unset.
func (a *App) applyProjectLogging(ctx context.Context, model *config.Model) context.Context {
	level, format := a.config.LogLevel, a.config.LogFormat
	if level == "" {
		level = model.LogLevel
	}
	if format == "" {
		format = model.LogFormat
	}
	if level == a.config.LogLevel && format == a.config.LogFormat {
		return ctx
	}

	a.logger = newLogger(level, format, a.logW)
	a.logger.Debug("Logger reconfigured from project.", "level", level, "format", format)
	return ctxlog.WithLogger(ctx, a.logger)
}

// absPath makes p absolute so it compares equal to paths resolved from
// descriptors. It falls back to the cleaned input if the working directory
// is unavailable.
func absPath(p string) string {
	abs, err := filepath.Abs(p)
	if err != nil {
		return filepath.Clean(p)
	}
	return abs
}
