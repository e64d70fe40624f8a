package typedemit

import "sync"

// registry maps event identifiers to ordered registration lists.
// It is thread-safe for concurrent access.
type registry struct {
	mu     sync.RWMutex
	events map[string][]*Registration
	byID   map[string]*Registration
}

// newRegistry creates an empty registry.
func newRegistry() *registry {
	return &registry{
		events: make(map[string][]*Registration),
		byID:   make(map[string]*Registration),
	}
}

// add appends a registration to its event's list.
// Registration order is preserved and defines invocation order.
func (r *registry) add(reg *Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.events[reg.event] = append(r.events[reg.event], reg)
	r.byID[reg.id] = reg
}

// remove removes a registration by ID. Returns true if a registration
// was actually removed. An event whose list empties is deleted from
// the registry entirely - an identifier is never mapped to an empty
// list.
func (r *registry) remove(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, exists := r.byID[id]
	if !exists {
		return false
	}

	regs := r.events[reg.event]
	for i, candidate := range regs {
		if candidate.id == id {
			r.events[reg.event] = append(regs[:i], regs[i+1:]...)
			break
		}
	}

	if len(r.events[reg.event]) == 0 {
		delete(r.events, reg.event)
	}

	delete(r.byID, id)
	reg.cancel()

	return true
}

// snapshot returns an ordered copy of an event's registrations.
// Returns nil when the event has none. Emission iterates the copy so
// that registry mutation during delivery cannot affect the in-flight
// emission.
func (r *registry) snapshot(event string) []*Registration {
	r.mu.RLock()
	defer r.mu.RUnlock()

	regs := r.events[event]
	if len(regs) == 0 {
		return nil
	}

	result := make([]*Registration, len(regs))
	copy(result, regs)
	return result
}

// count returns the number of registrations for an event.
func (r *registry) count(event string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.events[event])
}

// size returns the total number of registrations.
func (r *registry) size() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byID)
}

// clear removes every registration for an event in one step.
func (r *registry) clear(event string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, reg := range r.events[event] {
		reg.cancel()
		delete(r.byID, reg.id)
	}
	delete(r.events, event)
}

// reset discards the entire registry.
func (r *registry) reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, reg := range r.byID {
		reg.cancel()
	}
	r.events = make(map[string][]*Registration)
	r.byID = make(map[string]*Registration)
}

// names returns all event identifiers with live registrations.
func (r *registry) names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.events) == 0 {
		return nil
	}

	names := make([]string, 0, len(r.events))
	for event := range r.events {
		names = append(names, event)
	}
	return names
}
