package config

// Model is the unified, format-agnostic representation of a project's
// configuration.
type Model struct {
	// LogLevel and LogFormat are empty when the project does not set them.
	LogLevel  string
	LogFormat string

	// Worlds lists the descriptors named explicitly by the project.
	Worlds []*WorldSource
	// SearchPaths lists directories scanned for world descriptors.
	SearchPaths []string
}

// WorldSource is a named reference to a world descriptor file.
type WorldSource struct {
	Name string
	// Path is resolved against the directory of the file that declared it.
	Path string
}

// NewModel returns an empty Model.
func NewModel() *Model {
	return &Model{}
}

// WorldPaths returns the descriptor paths of all named worlds followed by
// the search paths, in declaration order.
func (m *Model) WorldPaths() []string {
	paths := make([]string, 0, len(m.Worlds)+len(m.SearchPaths))
	for _, w := range m.Worlds {
		paths = append(paths, w.Path)
	}
	return append(paths, m.SearchPaths...)
}

// Merge folds other into m. Scalar settings in other win when set; lists are
// appended.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	if other.LogLevel != "" {
		m.LogLevel = other.LogLevel
	}
	if other.LogFormat != "" {
		m.LogFormat = other.LogFormat
	}
	m.Worlds = append(m.Worlds, other.Worlds...)
	m.SearchPaths = append(m.SearchPaths, other.SearchPaths...)
}
