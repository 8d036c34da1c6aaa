// Package store persists model values through the polymorphic codec: values
// cross the driver boundary as self-describing JSON, so reading a name back
// recovers the concrete model type from data alone.
package store

import (
	"context"
	"fmt"
	"strings"

	polymodel "github.com/polymodel/go-polymodel"
	"github.com/polymodel/go-polymodel/model"
	"github.com/polymodel/go-polymodel/store/driver"
)

// Entry is a named model value read back from storage.
type Entry struct {
	// Name is the name the value is stored under.
	Name string
	// Model is the decoded value, of its original concrete type.
	Model model.Model
	// ModRevision is the backend's revision of the last modification,
	// zero when the backend tracks none.
	ModRevision int64
}

// Store persists model values in a storage backend.
type Store struct {
	drv   driver.Driver
	codec *polymodel.Codec
}

// Option is a function that configures a Store.
type Option func(*Store)

// WithCodec overrides the codec used to encode and resolve values.
func WithCodec(codec *polymodel.Codec) Option {
	return func(s *Store) {
		s.codec = codec
	}
}

// New creates a Store on top of the given driver.
// By default values resolve against the process-wide registry.
func New(drv driver.Driver, opts ...Option) *Store {
	store := &Store{
		drv:   drv,
		codec: polymodel.Default(),
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func checkName(name string) bool {
	switch {
	case len(name) == 0:
		return false
	case strings.HasPrefix(name, "/") || strings.HasSuffix(name, "/"):
		return false
	default:
		return true
	}
}

// Put stores a model value under the given name.
func (s *Store) Put(ctx context.Context, name string, m model.Model) error {
	if !checkName(name) {
		return ErrInvalidName
	}

	data, err := s.codec.ToBytes(m)
	if err != nil {
		return fmt.Errorf("failed to encode model: %w", err)
	}

	if err := s.drv.Put(ctx, []byte(name), data); err != nil {
		return fmt.Errorf("failed to store model: %w", err)
	}

	return nil
}

// Get retrieves the model value stored under the given name.
// The result has the concrete type the value was stored with.
func (s *Store) Get(ctx context.Context, name string) (model.Model, error) {
	if !checkName(name) {
		return nil, ErrInvalidName
	}

	entry, ok, err := s.drv.Get(ctx, []byte(name))

	switch {
	case err != nil:
		return nil, fmt.Errorf("failed to fetch model: %w", err)
	case !ok:
		return nil, ErrNotFound
	}

	resolved, err := s.codec.FromBytes(entry.Value)
	if err != nil {
		return nil, fmt.Errorf("failed to decode stored value: %w", err)
	}

	return resolved, nil
}

// Delete removes the model value stored under the given name.
// Returns ErrNotFound when nothing is stored under it.
func (s *Store) Delete(ctx context.Context, name string) error {
	if !checkName(name) {
		return ErrInvalidName
	}

	ok, err := s.drv.Delete(ctx, []byte(name))

	switch {
	case err != nil:
		return fmt.Errorf("failed to delete model: %w", err)
	case !ok:
		return ErrNotFound
	}

	return nil
}

// rangeOptions contains configuration options for range queries.
type rangeOptions struct {
	Limit int // Maximum number of results to return.
}

// RangeOption is a function that configures range query options.
type RangeOption func(*rangeOptions)

// WithLimit configures a range query to limit the number of results returned.
func WithLimit(limit int) RangeOption {
	return func(opts *rangeOptions) {
		opts.Limit = limit
	}
}

// Range retrieves every model value stored under names with the given
// prefix, in name order. An empty prefix matches every name.
func (s *Store) Range(ctx context.Context, prefix string, opts ...RangeOption) ([]Entry, error) {
	var rOpts rangeOptions
	for _, opt := range opts {
		opt(&rOpts)
	}

	raw, err := s.drv.Range(ctx, []byte(prefix), rOpts.Limit)
	if err != nil {
		return nil, fmt.Errorf("failed to range over prefix: %w", err)
	}

	entries := make([]Entry, 0, len(raw))

	for _, item := range raw {
		resolved, err := s.codec.FromBytes(item.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to decode stored value for %q: %w", item.Key, err)
		}

		entries = append(entries, Entry{
			Name:        string(item.Key),
			Model:       resolved,
			ModRevision: item.ModRevision,
		})
	}

	return entries, nil
}
