package tesseract4d

import (
	"fmt"
	"sort"
	"sync"
)

// Registry tracks which objects are tesseracts and owns their parameter stores.
type Registry struct {
	mu     sync.RWMutex
	stores map[string]*Store
}

func NewRegistry() *Registry {
	return &Registry{stores: make(map[string]*Store)}
}

// Register turns object id into a tesseract: it gets a fresh store with default parameters
// and its sink receives the initial projection. Registering an id again starts over.
func (r *Registry) Register(id string, sink Sink) (*Store, error) {
	s := NewStore(id, sink)
	if err := s.Reset(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	r.stores[id] = s
	r.mu.Unlock()
	DebugLog("Registered tesseract %q", id)
	return s, nil
}

// Unregister removes the tag; it reports whether id was registered.
func (r *Registry) Unregister(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.stores[id]
	delete(r.stores, id)
	return ok
}

// IsTesseract is the panel visibility predicate.
func (r *Registry) IsTesseract(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.stores[id]
	return ok
}

// Store returns the parameter store of id.
func (r *Registry) Store(id string) (*Store, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.stores[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownObject, id)
	}
	return s, nil
}

// IDs returns the registered object ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.stores))
	for id := range r.stores {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
