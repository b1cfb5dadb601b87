// Package world provides the in-memory model of a world descriptor and the
// parser that builds it.
//
// A world descriptor is a JSON document that binds a set of map files to grid
// positions and declares regular-expression patterns intended to associate
// further, unlisted map files with the same world:
//
//	{
//	  "maps": [
//	    { "fileName": "../maps/m1.tmx", "x": 0, "y": 0, "width": 640, "height": 480 }
//	  ],
//	  "patterns": [
//	    { "regexp": "map_(\\d+)_(\\d+)\\.tmx", "multiplier": 640 }
//	  ]
//	}
//
// Map paths are resolved against the directory of the descriptor and cleaned
// lexically, so every MapEntry carries a normalized path that can be compared
// directly with other normalized paths.
//
// Parsing is lenient at the entry level. A whole load fails only when the file
// cannot be read (ErrUnreadable) or is not JSON (ErrMalformed); individual map
// or pattern entries that do not make sense are skipped with a warning on the
// logger carried by the context.
package world
