package hcl

// projectFile is the decoding target for the top level of a project file.
type projectFile struct {
	LogLevel    string        `hcl:"log_level,optional"`
	LogFormat   string        `hcl:"log_format,optional"`
	SearchPaths []string      `hcl:"search_paths,optional"`
	Worlds      []*worldBlock `hcl:"world,block"`
}

// worldBlock is the decoding target for a `world "<name>" { ... }` block.
type worldBlock struct {
	Name string `hcl:"name,label"`
	Path string `hcl:"path"`
}
