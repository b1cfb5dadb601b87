// Package registry keeps track of the worlds loaded by the application and
// answers which world, if any, owns a given map file.
//
// Worlds are keyed by the cleaned path of the descriptor they were loaded
// from, and each key holds at most one World. Loading a key that is already
// present first drops the existing World; if the new load fails the key stays
// empty rather than falling back to the previous contents.
//
// Ownership queries only consider the maps a descriptor lists explicitly.
// Patterns are parsed and validated on load but are not matched against file
// names yet.
//
// The Shared type provides a lazily constructed registry with an explicit
// teardown, for hosts that want one registry per application instance without
// a package-level global.
package registry
