package market

import (
	"fmt"
	"sync"
)

// Registry owns every instrument for the process lifetime. The key set is
// fixed at load; the simulator is the only writer afterwards and everything
// else reads value snapshots. Version increments once per applied tick so
// observers can cheaply detect movement.
type Registry struct {
	mu      sync.RWMutex
	order   []string
	items   map[string]*Instrument
	version uint64
	live    bool
}

// NewRegistry validates the seed set and builds the registry. Insertion order
// defines the default display order.
func NewRegistry(seed []Instrument) (*Registry, error) {
	r := &Registry{items: make(map[string]*Instrument, len(seed))}
	for _, inst := range seed {
		inst := inst
		if inst.Key == "" {
			return nil, fmt.Errorf("instrument %q has no key", inst.Name)
		}
		if _, dup := r.items[inst.Key]; dup {
			return nil, fmt.Errorf("duplicate instrument key %q", inst.Key)
		}
		if inst.Price <= 0 {
			return nil, fmt.Errorf("instrument %q has non-positive price %.2f", inst.Key, inst.Price)
		}
		if inst.Sentiment < 0 || inst.Sentiment > 100 {
			return nil, fmt.Errorf("instrument %q sentiment %d out of range", inst.Key, inst.Sentiment)
		}
		r.order = append(r.order, inst.Key)
		r.items[inst.Key] = &inst
	}
	if len(r.order) == 0 {
		return nil, fmt.Errorf("empty instrument seed")
	}
	return r, nil
}

// Keys returns the instrument keys in display order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, len(r.order))
	copy(keys, r.order)
	return keys
}

// Get returns a snapshot of one instrument.
func (r *Registry) Get(key string) (Instrument, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inst, ok := r.items[key]
	if !ok {
		return Instrument{}, false
	}
	return *inst, true
}

// Snapshot returns value copies of every instrument in display order.
func (r *Registry) Snapshot() []Instrument {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Instrument, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, *r.items[key])
	}
	return out
}

// Version is a monotonic counter of applied ticks.
func (r *Registry) Version() uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.version
}

// Live reports whether at least one simulator tick has been applied. Once true
// it stays true for the process lifetime.
func (r *Registry) Live() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.live
}
