// Package hcl provides the concrete HCL implementation of the configuration
// Loader interface defined in the `config` package. It is responsible for
// project file discovery, parsing, expression evaluation, and HCL-to-model
// translation.
//
// A project file looks like:
//
//	log_level    = "debug"
//	search_paths = ["${project_dir}/worlds"]
//
//	world "overworld" {
//	  path = "maps/overworld.world"
//	}
//
// Expressions may reference `env.NAME` for process environment variables and
// `project_dir` for the directory of the file being decoded. Relative paths
// are resolved against that same directory.
package hcl
