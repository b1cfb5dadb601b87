package hcl

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/vk/worldreg/internal/config"
	"github.com/vk/worldreg/internal/ctxlog"
	"github.com/vk/worldreg/internal/fsutil"
)

// ProjectExtension is the file extension searched for when a directory is
// passed to the loader.
const ProjectExtension = ".hcl"

// Loader is the HCL-specific implementation of the config.Loader interface.
type Loader struct{}

// NewLoader creates a new HCL configuration loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load parses every project file named by paths, descending into directories,
// and merges them into a single model in file order.
func (l *Loader) Load(ctx context.Context, paths ...string) (*config.Model, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("HCL loader started.", "path_count", len(paths))

	files, err := fsutil.ExpandPaths(ProjectExtension, paths...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Discovered HCL files.", "count", len(files))

	model := config.NewModel()
	names := make(map[string]string)
	parser := hclparse.NewParser()

	for _, file := range files {
		fileModel, err := l.loadFile(parser, file)
		if err != nil {
			return nil, err
		}
		for _, w := range fileModel.Worlds {
			if prev, dup := names[w.Name]; dup {
				return nil, fmt.Errorf("world %q in %s is already declared in %s", w.Name, file, prev)
			}
			names[w.Name] = file
		}
		model.Merge(fileModel)
		logger.Debug("Successfully loaded project file.", "file", file, "worlds", len(fileModel.Worlds))
	}

	logger.Debug("HCL loading complete.", "worlds", len(model.Worlds), "search_paths", len(model.SearchPaths))
	return model, nil
}

// loadFile parses and decodes a single project file.
func (l *Loader) loadFile(parser *hclparse.Parser, file string) (*config.Model, error) {
	hclFile, diags := parser.ParseHCLFile(file)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", file, diags)
	}

	dir, err := filepath.Abs(filepath.Dir(file))
	if err != nil {
		return nil, fmt.Errorf("failed to resolve directory of %s: %w", file, err)
	}

	var root projectFile
	diags = gohcl.DecodeBody(hclFile.Body, newEvalContext(dir), &root)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", file, diags)
	}

	return translateProject(&root, dir), nil
}

// translateProject converts the HCL-specific schema into the agnostic model.
func translateProject(p *projectFile, dir string) *config.Model {
	m := &config.Model{
		LogLevel:  p.LogLevel,
		LogFormat: p.LogFormat,
	}
	for _, w := range p.Worlds {
		m.Worlds = append(m.Worlds, &config.WorldSource{
			Name: w.Name,
			Path: resolvePath(dir, w.Path),
		})
	}
	for _, sp := range p.SearchPaths {
		m.SearchPaths = append(m.SearchPaths, resolvePath(dir, sp))
	}
	return m
}

// resolvePath joins a relative path to dir. Absolute paths are only cleaned.
func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}
