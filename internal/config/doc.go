// Package config defines the format-agnostic host configuration model, along
// with the Loader interface for reading it from project files.
//
// The `config.Model` is the single source of truth for the `app` package.
// Concrete implementations of the Loader interface, such as for HCL, are
// provided in separate packages.
package config
