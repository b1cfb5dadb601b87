package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/vk/worldreg/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// stringList is a repeatable string flag.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(v string) error {
	*s = append(*s, v)
	return nil
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("worldreg", flag.ContinueOnError)
	flagSet.SetOutput(output)

	// Custom usage/help text function
	flagSet.Usage = func() {
		fmt.Fprint(output, `
worldreg - Load tilemap world descriptors and find which world owns a map.

Usage:
  worldreg [options] [WORLD_PATH...]

Arguments:
  WORLD_PATH
    Path to a world descriptor, or a directory searched for .world files.

Options:
`)
		flagSet.PrintDefaults()
	}

	var maps stringList
	projectFlag := flagSet.String("project", "", "Path to an HCL project file or a directory of them.")
	pFlag := flagSet.String("p", "", "Path to an HCL project file or directory (shorthand).")
	flagSet.Var(&maps, "map", "Map file to resolve to its owning world. May be repeated.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format. Options: 'text' or 'json'. Defaults to the project setting, then 'text'.")
	logLevelFlag := flagSet.String("log-level", "", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Defaults to the project setting, then 'info'.")
	outputFlag := flagSet.String("output", app.OutputText, "Report format. Options: 'text', 'json', 'yaml'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	project := *projectFlag
	if project == "" {
		project = *pFlag
	}
	worldPaths := flagSet.Args()
	slog.Debug("Inputs determined.", "project", project, "worlds", worldPaths, "maps", []string(maps))

	if project == "" && len(worldPaths) == 0 {
		slog.Debug("No project or world path provided, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}

	logFormat := strings.ToLower(*logFormatFlag)
	switch logFormat {
	case "", "text", "json":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "", "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		ProjectPath:  project,
		WorldPaths:   worldPaths,
		MapQueries:   maps,
		LogFormat:    logFormat,
		LogLevel:     logLevel,
		OutputFormat: strings.ToLower(*outputFlag),
	})

	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}
