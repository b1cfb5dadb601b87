package app

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/vk/worldreg/internal/world"
)

// Report is the result of a run: the loaded worlds, the descriptors that
// failed, and the answer to every map query.
type Report struct {
	Worlds   []WorldSummary `json:"worlds" yaml:"worlds"`
	Failures []LoadFailure  `json:"failures,omitempty" yaml:"failures,omitempty"`
	Lookups  []Lookup       `json:"lookups,omitempty" yaml:"lookups,omitempty"`
}

// WorldSummary describes one loaded world.
type WorldSummary struct {
	FileName string           `json:"fileName" yaml:"fileName"`
	Maps     []MapSummary     `json:"maps" yaml:"maps"`
	Patterns []PatternSummary `json:"patterns" yaml:"patterns"`
}

// MapSummary describes one explicit map of a world.
type MapSummary struct {
	FileName string `json:"fileName" yaml:"fileName"`
	X        int    `json:"x" yaml:"x"`
	Y        int    `json:"y" yaml:"y"`
	Width    int    `json:"width" yaml:"width"`
	Height   int    `json:"height" yaml:"height"`
}

// PatternSummary describes one accepted pattern of a world.
type PatternSummary struct {
	Regexp     string `json:"regexp" yaml:"regexp"`
	Multiplier int    `json:"multiplier" yaml:"multiplier"`
}

// LoadFailure names a descriptor that could not be loaded.
type LoadFailure struct {
	Path  string `json:"path" yaml:"path"`
	Error string `json:"error" yaml:"error"`
}

// Lookup is the answer to a single map ownership query.
type Lookup struct {
	Map   string `json:"map" yaml:"map"`
	World string `json:"world,omitempty" yaml:"world,omitempty"`
	Found bool   `json:"found" yaml:"found"`
}

func summarizeWorld(w *world.World) WorldSummary {
	s := WorldSummary{
		FileName: w.FileName,
		Maps:     make([]MapSummary, 0, len(w.Maps)),
		Patterns: make([]PatternSummary, 0, len(w.Patterns)),
	}
	for _, m := range w.Maps {
		s.Maps = append(s.Maps, MapSummary{
			FileName: m.FileName,
			X:        m.Position.X,
			Y:        m.Position.Y,
			Width:    m.Size.Width,
			Height:   m.Size.Height,
		})
	}
	for _, p := range w.Patterns {
		s.Patterns = append(s.Patterns, PatternSummary{Regexp: p.String(), Multiplier: p.Multiplier})
	}
	return s
}

// Write renders the report to w in the given output format.
func (r *Report) Write(w io.Writer, format string) error {
	switch format {
	case OutputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case OutputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case OutputText, "":
		return r.writeText(w)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

func (r *Report) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	for _, ws := range r.Worlds {
		fmt.Fprintf(tw, "world\t%s\t%d maps, %d patterns\n", ws.FileName, len(ws.Maps), len(ws.Patterns))
		for _, m := range ws.Maps {
			fmt.Fprintf(tw, "  map\t%s\t(%d,%d) %dx%d\n", m.FileName, m.X, m.Y, m.Width, m.Height)
		}
		for _, p := range ws.Patterns {
			fmt.Fprintf(tw, "  pattern\t%s\tx%d\n", p.Regexp, p.Multiplier)
		}
	}
	for _, f := range r.Failures {
		fmt.Fprintf(tw, "failed\t%s\t%s\n", f.Path, f.Error)
	}
	for _, l := range r.Lookups {
		owner := "(none)"
		if l.Found {
			owner = l.World
		}
		fmt.Fprintf(tw, "lookup\t%s\t%s\n", l.Map, owner)
	}

	return tw.Flush()
}
