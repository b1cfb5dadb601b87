package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/vk/worldreg/internal/ctxlog"
	"github.com/vk/worldreg/internal/fsutil"
	"github.com/vk/worldreg/internal/world"
)

// WorldExtension is the file extension searched for when a directory is
// passed to LoadAll.
const WorldExtension = ".world"

// LoadError records a descriptor that failed to load during LoadAll.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// BatchError is returned by LoadAll when one or more descriptors failed.
type BatchError struct {
	Failures []*LoadError
	Total    int
}

func (e *BatchError) Error() string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, f.Error())
	}
	return fmt.Sprintf("failed to load %d of %d worlds:\n- %s", len(e.Failures), e.Total, strings.Join(msgs, "\n- "))
}

// Unwrap exposes every failure to errors.Is and errors.As.
func (e *BatchError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures))
	for _, f := range e.Failures {
		errs = append(errs, f)
	}
	return errs
}

// Load (re)loads the world descriptor at fileName. Any world already loaded
// from fileName is unloaded first, so on failure the key is left empty. The
// returned error wraps world.ErrUnreadable or world.ErrMalformed.
func (r *Registry) Load(ctx context.Context, fileName string) error {
	k := key(fileName)
	logger := ctxlog.FromContext(ctx).With("path", k)

	r.Unload(k)

	w, err := world.Load(ctx, k)
	if err != nil {
		logger.Debug("World load failed.", "error", err)
		return err
	}

	r.insert(k, w)
	logger.Debug("World loaded.", "maps", len(w.Maps), "patterns", len(w.Patterns))
	return nil
}

// LoadAll loads every descriptor named by paths. Directories are searched
// recursively for files with WorldExtension. A failing descriptor does not
// stop the others from loading; if any fail, the returned error is a
// *BatchError listing them.
func (r *Registry) LoadAll(ctx context.Context, paths ...string) error {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Registry loading worlds...", "paths", paths)

	files, err := fsutil.ExpandPaths(WorldExtension, paths...)
	if err != nil {
		logger.Error("Failed to search for world descriptors.", "paths", paths, "error", err)
		return err
	}

	if len(files) == 0 {
		logger.Warn("No world descriptors found.", "paths", paths)
		return nil
	}

	var failures []*LoadError
	for _, file := range files {
		if err := r.Load(ctx, file); err != nil {
			logger.Warn("Failed to load world.", "path", file, "error", err)
			failures = append(failures, &LoadError{Path: key(file), Err: err})
		}
	}

	logger.Info("Registry loaded worlds.", "loaded", len(files)-len(failures), "failed", len(failures))
	if len(failures) > 0 {
		return &BatchError{Failures: failures, Total: len(files)}
	}
	return nil
}
