// Package registry maintains the process-wide table mapping type identities
// to validators, replacing dynamic type lookup with explicit registration.
package registry

import (
	"slices"
	"strings"
	"sync"

	"github.com/samber/lo"

	"github.com/polymodel/go-polymodel/attr"
	"github.com/polymodel/go-polymodel/model"
)

// Validator constructs a concrete model value from a tree of its fields.
// The tree never contains the reserved metadata keys.
type Validator func(fields attr.Tree) (model.Model, error)

// Registry maps type identities to validators.
// Registration is expected during startup; lookups are safe under arbitrary
// concurrent callers.
type Registry struct {
	mu      sync.RWMutex
	entries map[model.Identity]Validator
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{
		mu:      sync.RWMutex{},
		entries: make(map[model.Identity]Validator),
	}
}

// Register binds an identity to a validator.
// Registering the same identity twice fails, so a typo in a namespace cannot
// silently shadow another type.
func (r *Registry) Register(id model.Identity, validate Validator) error {
	switch {
	case id.IsZero():
		return ErrEmptyIdentity
	case validate == nil:
		return ErrNilValidator
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.entries[id]; ok {
		return AlreadyRegisteredError{ID: id}
	}

	r.entries[id] = validate

	return nil
}

// Lookup returns the validator registered for the identity.
func (r *Registry) Lookup(id model.Identity) (Validator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	validate, ok := r.entries[id]
	if !ok {
		return nil, NotRegisteredError{ID: id}
	}

	return validate, nil
}

// Identities returns every registered identity in stable order.
func (r *Registry) Identities() []model.Identity {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := lo.Keys(r.entries)
	slices.SortFunc(ids, func(a, b model.Identity) int {
		if c := strings.Compare(a.Namespace, b.Namespace); c != 0 {
			return c
		}

		return strings.Compare(a.Name, b.Name)
	})

	return ids
}

// global is the default process-wide registry used by package-level helpers.
//
//nolint:gochecknoglobals
var global = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return global
}

// Register binds an identity to a validator in the default registry.
func Register(id model.Identity, validate Validator) error {
	return global.Register(id, validate)
}

// Lookup returns the validator registered for the identity in the default registry.
func Lookup(id model.Identity) (Validator, error) {
	return global.Lookup(id)
}

// Identities returns every identity registered in the default registry.
func Identities() []model.Identity {
	return global.Identities()
}

// Add registers a typed validator, deriving the identity from the type's
// zero value.
func Add[T model.Model](r *Registry, validate func(fields attr.Tree) (T, error)) error {
	var zero T

	return r.Register(zero.Identity(), func(fields attr.Tree) (model.Model, error) {
		return validate(fields)
	})
}

// MustAdd is like Add but panics on failure.
// Intended for registration from init functions.
func MustAdd[T model.Model](r *Registry, validate func(fields attr.Tree) (T, error)) {
	if err := Add(r, validate); err != nil {
		panic(err)
	}
}
