package registry

import (
	"path/filepath"
	"slices"
	"sync"

	"github.com/vk/worldreg/internal/world"
)

// Registry holds the worlds loaded by a single application instance.
type Registry struct {
	mu     sync.RWMutex
	worlds map[string]*world.World
	order  []string // keys in insertion order
}

// New creates and initializes a new, empty Registry.
func New() *Registry {
	return &Registry{
		worlds: make(map[string]*world.World),
	}
}

// key normalizes a descriptor path into a registry key.
func key(fileName string) string {
	return filepath.Clean(fileName)
}

// insert stores w under k as the most recently loaded world.
func (r *Registry) insert(k string, w *world.World) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.worlds[k]; ok {
		// A concurrent Load of the same key won the race.
		r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == k })
	}
	r.worlds[k] = w
	r.order = append(r.order, k)
}

// Unload removes the world loaded from fileName. It is a no-op if no such
// world is loaded.
func (r *Registry) Unload(fileName string) {
	k := key(fileName)

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.worlds[k]; !ok {
		return
	}
	delete(r.worlds, k)
	r.order = slices.DeleteFunc(r.order, func(s string) bool { return s == k })
}

// World returns the world loaded from fileName, or nil.
func (r *Registry) World(fileName string) *world.World {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.worlds[key(fileName)]
}

// WorldForMap returns the first loaded world, in load order, that lists
// fileName among its maps. It returns nil when no world claims the file.
//
// Only explicit map entries are compared; world patterns are not consulted.
func (r *Registry) WorldForMap(fileName string) *world.World {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, k := range r.order {
		if w := r.worlds[k]; w.ContainsMap(fileName) {
			return w
		}
	}
	return nil
}

// FileNames returns the keys of all loaded worlds in load order.
func (r *Registry) FileNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Worlds returns all loaded worlds in load order.
func (r *Registry) Worlds() []*world.World {
	r.mu.RLock()
	defer r.mu.RUnlock()

	worlds := make([]*world.World, 0, len(r.order))
	for _, k := range r.order {
		worlds = append(worlds, r.worlds[k])
	}
	return worlds
}

// Len returns the number of loaded worlds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.worlds)
}

// Close drops every loaded world. The registry remains usable afterwards.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	clear(r.worlds)
	r.order = nil
}
