// Package memory provides an in-memory implementation of the storage driver
// interface for demonstration and tests.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/polymodel/go-polymodel/store/driver"
)

// Driver is a thread-safe in-memory storage backend.
type Driver struct {
	mu          sync.RWMutex
	entries     map[string]driver.Entry
	modRevision int64
}

var _ driver.Driver = &Driver{}

// New creates an empty in-memory driver.
func New() *Driver {
	return &Driver{
		mu:          sync.RWMutex{},
		entries:     make(map[string]driver.Entry),
		modRevision: 0,
	}
}

// Get implements the driver interface.
func (d *Driver) Get(_ context.Context, key []byte) (driver.Entry, bool, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	entry, ok := d.entries[string(key)]

	return entry, ok, nil
}

// Put implements the driver interface.
func (d *Driver) Put(_ context.Context, key []byte, value []byte) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.modRevision++
	d.entries[string(key)] = driver.Entry{
		Key:         []byte(string(key)),
		Value:       value,
		ModRevision: d.modRevision,
	}

	return nil
}

// Delete implements the driver interface.
func (d *Driver) Delete(_ context.Context, key []byte) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	_, ok := d.entries[string(key)]
	delete(d.entries, string(key))

	return ok, nil
}

// Range implements the driver interface.
func (d *Driver) Range(_ context.Context, prefix []byte, limit int) ([]driver.Entry, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	keys := make([]string, 0, len(d.entries))

	for key := range d.entries {
		if strings.HasPrefix(key, string(prefix)) {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	if limit > 0 && len(keys) > limit {
		keys = keys[:limit]
	}

	entries := make([]driver.Entry, 0, len(keys))
	for _, key := range keys {
		entries = append(entries, d.entries[key])
	}

	return entries, nil
}
