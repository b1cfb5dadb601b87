// Package app hosts the world registry for a single command invocation. It
// owns the registry's lifecycle, reads the optional HCL project, loads world
// descriptors, resolves map queries and renders the resulting report.
package app
