package registry

import "sync"

// Shared owns a single Registry that is constructed on first use and can be
// torn down explicitly. After Delete, the next Instance call constructs a
// fresh, empty Registry.
//
// The zero value is ready to use.
type Shared struct {
	mu  sync.Mutex
	reg *Registry
}

// Instance returns the shared Registry, constructing it if needed.
func (s *Shared) Instance() *Registry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reg == nil {
		s.reg = New()
	}
	return s.reg
}

// Delete tears down the shared Registry, dropping all of its worlds.
func (s *Shared) Delete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reg != nil {
		s.reg.Close()
		s.reg = nil
	}
}
