package world

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"

	"github.com/vk/worldreg/internal/ctxlog"
)

var (
	// ErrUnreadable is returned when the descriptor file cannot be read.
	ErrUnreadable = errors.New("world descriptor is unreadable")
	// ErrMalformed is returned when the descriptor contents are not valid JSON.
	ErrMalformed = errors.New("world descriptor is not valid JSON")
)

// patternCaptures is the number of capture groups a pattern must expose: one
// for the x index and one for the y index.
const patternCaptures = 2

// Load reads the descriptor at fileName and builds a World from it.
func Load(ctx context.Context, fileName string) (*World, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Reading world descriptor.", "path", fileName)

	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnreadable, fileName, err)
	}
	return Decode(ctx, data, fileName)
}

// Decode builds a World from descriptor contents. fileName is the path the
// contents were read from; relative map paths are resolved against its
// directory.
func Decode(ctx context.Context, data []byte, fileName string) (*World, error) {
	_, logger := ctxlog.With(ctx, "world", fileName)

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrMalformed, fileName, err)
	}

	// A valid document whose root is not an object simply has no entries.
	root, _ := doc.(map[string]any)

	w := &World{FileName: filepath.Clean(fileName)}
	dir := filepath.Dir(w.FileName)

	for i, value := range arrayValue(root, "maps") {
		entry, ok := decodeMapEntry(logger, i, value, dir)
		if ok {
			w.Maps = append(w.Maps, entry)
		}
	}

	for i, value := range arrayValue(root, "patterns") {
		pattern, ok := decodePattern(logger, i, value)
		if ok {
			w.Patterns = append(w.Patterns, pattern)
		}
	}

	logger.Debug("World descriptor decoded.", "maps", len(w.Maps), "patterns", len(w.Patterns))
	return w, nil
}

func decodeMapEntry(logger *slog.Logger, index int, value any, dir string) (MapEntry, bool) {
	obj, ok := value.(map[string]any)
	if !ok {
		logger.Warn("Skipping map entry that is not an object.", "index", index)
		return MapEntry{}, false
	}

	name, ok := obj["fileName"].(string)
	if !ok || name == "" {
		logger.Warn("Skipping map entry without a fileName.", "index", index)
		return MapEntry{}, false
	}

	return MapEntry{
		FileName: resolvePath(dir, name),
		Position: Point{
			X: intValue(obj["x"], 0),
			Y: intValue(obj["y"], 0),
		},
		Size: Size{
			Width:  intValue(obj["width"], 0),
			Height: intValue(obj["height"], 0),
		},
	}, true
}

func decodePattern(logger *slog.Logger, index int, value any) (Pattern, bool) {
	obj, _ := value.(map[string]any)

	expr, ok := obj["regexp"].(string)
	if !ok {
		logger.Warn("Skipping pattern without a regexp.", "index", index)
		return Pattern{}, false
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		logger.Warn("Invalid pattern regexp.", "index", index, "regexp", expr, "error", err)
		return Pattern{}, false
	}

	multiplier := intValue(obj["multiplier"], 1)

	switch {
	case re.NumSubexp() != patternCaptures:
		logger.Warn("Invalid number of captures in pattern.", "index", index, "regexp", expr, "captures", re.NumSubexp())
		return Pattern{}, false
	case multiplier <= 0:
		logger.Warn("Invalid pattern multiplier.", "index", index, "regexp", expr, "multiplier", multiplier)
		return Pattern{}, false
	}

	return Pattern{Regexp: re, Multiplier: multiplier}, true
}

// resolvePath joins a descriptor-relative path to dir and cleans the result.
// Absolute paths are only cleaned.
func resolvePath(dir, name string) string {
	if filepath.IsAbs(name) {
		return filepath.Clean(name)
	}
	return filepath.Join(dir, name)
}

// arrayValue returns root[key] if it is a JSON array, and nil otherwise.
func arrayValue(root map[string]any, key string) []any {
	arr, _ := root[key].([]any)
	return arr
}

// intValue converts a decoded JSON number to an int. Anything that is not a
// number with an integral value in the 32-bit range yields def.
func intValue(v any, def int) int {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) || f < math.MinInt32 || f > math.MaxInt32 {
		return def
	}
	return int(f)
}
