package relation

import (
	"fmt"
	"maps"
	"sync"

	"relation-factory/internal/common"
	"relation-factory/internal/naming"
)

// overrides maps irregular relation names to explicit type identifiers.
// It is checked before the naming convention.
var overrides = map[string]string{
	"snippets":   "ProjectSnippet",
	"ci_commits": "ci.Commit",
	"statuses":   "CommitStatus",
}

// Overrides returns a copy of the override table.
func Overrides() map[string]string {
	return maps.Clone(overrides)
}

// Registry maps type identifiers to descriptors.
type Registry struct {
	mu    sync.RWMutex
	types map[string]*Descriptor
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		types: make(map[string]*Descriptor),
	}
}

// Register adds a type under id. Registering the same id twice is an error.
func (r *Registry) Register(id string, construct Constructor, opts ...Option) (*Descriptor, error) {
	d, err := newDescriptor(id, construct, opts...)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.types[id]; exists {
		return nil, fmt.Errorf("type %q already registered", id)
	}

	r.types[id] = d

	return d, nil
}

// MustRegister is like Register but panics on error. Meant for startup wiring.
func (r *Registry) MustRegister(id string, construct Constructor, opts ...Option) *Descriptor {
	d, err := r.Register(id, construct, opts...)
	if err != nil {
		panic(err)
	}

	return d
}

// Add registers T under id with a constructor returning new(T).
func Add[T any](r *Registry, id string, opts ...Option) *Descriptor {
	return r.MustRegister(id, func() any { return new(T) }, opts...)
}

// Get returns the descriptor registered under id, or nil.
func (r *Registry) Get(id string) *Descriptor {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.types[id]
}

// IDs returns all registered type identifiers in ascending order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return common.SortedKeys(r.types)
}

// TypeID returns the type identifier a relation name maps to, without
// checking that it is registered.
func TypeID(relation string) string {
	if id, ok := overrides[relation]; ok {
		return id
	}

	return naming.Classify(relation)
}

// suggestThreshold is the minimum similarity for a "did you mean" hint.
const suggestThreshold = 0.75

// Resolve maps a relation name to its descriptor.
func (r *Registry) Resolve(relation string) (*Descriptor, error) {
	id := TypeID(relation)

	var d *Descriptor
	if id != "" {
		d = r.Get(id)
	}

	if d == nil {
		return nil, &UnknownTypeError{
			Relation:   relation,
			TypeID:     id,
			Suggestion: r.Suggest(relation),
		}
	}

	return d, nil
}

// Suggest returns the registered relation name closest to relation, or ""
// when none is similar enough.
func (r *Registry) Suggest(relation string) string {
	ids := r.IDs()

	names := make([]string, 0, len(ids))
	for _, id := range ids {
		names = append(names, RelationName(id))
	}

	name, _ := naming.Closest(relation, names, suggestThreshold)

	return name
}

// RelationName returns the relation name that resolves to the type id: the
// override key when one points at it, the convention otherwise.
func RelationName(id string) string {
	for _, name := range common.SortedKeys(overrides) {
		if overrides[name] == id {
			return name
		}
	}

	return naming.Tableize(id)
}
