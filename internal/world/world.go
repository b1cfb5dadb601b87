package world

import (
	"fmt"
	"path/filepath"
	"regexp"
)

// Point is an integer grid coordinate.
type Point struct {
	X, Y int
}

// Size is an integer extent.
type Size struct {
	Width, Height int
}

// MapEntry binds one map file to a position within a world.
type MapEntry struct {
	FileName string
	Position Point
	Size     Size
}

// Pattern associates map files whose names match Regexp with a world. The two
// capture groups of Regexp hold the x and y grid indices, which are scaled by
// Multiplier to obtain the map position.
type Pattern struct {
	Regexp     *regexp.Regexp
	Multiplier int
}

// String returns the source text of the pattern's expression.
func (p Pattern) String() string {
	if p.Regexp == nil {
		return ""
	}
	return p.Regexp.String()
}

// World is the set of maps and patterns defined by a single descriptor file.
type World struct {
	// FileName is the cleaned path of the descriptor the world was loaded from.
	FileName string
	Maps     []MapEntry
	Patterns []Pattern
}

// ContainsMap reports whether fileName is listed explicitly in the world's
// maps. Both sides are compared in their cleaned form. Patterns are not
// consulted.
func (w *World) ContainsMap(fileName string) bool {
	fileName = filepath.Clean(fileName)
	for _, m := range w.Maps {
		if m.FileName == fileName {
			return true
		}
	}
	return false
}

// MapFileNames returns the paths of all explicit maps, in descriptor order.
func (w *World) MapFileNames() []string {
	names := make([]string, 0, len(w.Maps))
	for _, m := range w.Maps {
		names = append(names, m.FileName)
	}
	return names
}

func (w *World) String() string {
	return fmt.Sprintf("world %s (%d maps, %d patterns)", w.FileName, len(w.Maps), len(w.Patterns))
}
