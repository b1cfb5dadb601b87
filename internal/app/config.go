package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ProjectPath string   // hcl project file or directory
	WorldPaths  []string // world descriptors or directories of them
	MapQueries  []string // map files to resolve to their owning world

	LogFormat    string
	LogLevel     string
	OutputFormat string
}

// Output formats accepted by Config.OutputFormat.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

func NewConfig(cfg Config) (*Config, error) {
	if cfg.ProjectPath == "" && len(cfg.WorldPaths) == 0 {
		return nil, errors.New("a project path or at least one world path is required")
	}

	switch cfg.OutputFormat {
	case "":
		cfg.OutputFormat = OutputText
	case OutputText, OutputJSON, OutputYAML:
	default:
		return nil, errors.New("output format must be 'text', 'json' or 'yaml'")
	}

	return &cfg, nil
}
