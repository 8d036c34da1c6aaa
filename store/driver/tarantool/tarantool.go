// Package tarantool provides a Tarantool implementation of the storage
// driver interface. Entries live in a space keyed by string with the
// encoded value as the second field.
package tarantool

import (
	"context"
	"fmt"
	"strings"

	"github.com/tarantool/go-tarantool/v2"

	"github.com/polymodel/go-polymodel/store/driver"
)

// DefaultSpace is the space used when no override is configured.
const DefaultSpace = "polymodel"

// Driver is a Tarantool implementation of the storage driver interface.
type Driver struct {
	conn  tarantool.Doer
	space string
}

var _ driver.Driver = &Driver{}

// Option configures the driver.
type Option func(*Driver)

// WithSpace overrides the space entries are stored in.
func WithSpace(space string) Option {
	return func(d *Driver) {
		d.space = space
	}
}

// New creates a driver on top of an established Tarantool connection.
// tarantool.Connection and pool.ConnectionAdapter both satisfy Doer.
func New(conn tarantool.Doer, opts ...Option) *Driver {
	drv := &Driver{
		conn:  conn,
		space: DefaultSpace,
	}

	for _, opt := range opts {
		opt(drv)
	}

	return drv
}

// Get implements the driver interface.
func (d *Driver) Get(ctx context.Context, key []byte) (driver.Entry, bool, error) {
	req := tarantool.NewSelectRequest(d.space).
		Iterator(tarantool.IterEq).
		Key([]any{string(key)}).
		Context(ctx)

	var tuples []entryTuple

	if err := d.conn.Do(req).GetTyped(&tuples); err != nil {
		return driver.Entry{}, false, fmt.Errorf("failed to select key: %w", err)
	}

	if len(tuples) == 0 {
		return driver.Entry{}, false, nil
	}

	return tuples[0].asEntry(), true, nil
}

// Put implements the driver interface.
func (d *Driver) Put(ctx context.Context, key []byte, value []byte) error {
	req := tarantool.NewReplaceRequest(d.space).
		Tuple(entryTuple{key: string(key), value: string(value)}).
		Context(ctx)

	var tuples []entryTuple

	if err := d.conn.Do(req).GetTyped(&tuples); err != nil {
		return fmt.Errorf("failed to replace tuple: %w", err)
	}

	return nil
}

// Delete implements the driver interface.
func (d *Driver) Delete(ctx context.Context, key []byte) (bool, error) {
	req := tarantool.NewDeleteRequest(d.space).
		Key([]any{string(key)}).
		Context(ctx)

	var tuples []entryTuple

	if err := d.conn.Do(req).GetTyped(&tuples); err != nil {
		return false, fmt.Errorf("failed to delete tuple: %w", err)
	}

	return len(tuples) > 0, nil
}

// Range implements the driver interface.
// Keys sharing a prefix form a contiguous range in the primary index, so a
// GE select starting at the prefix yields every match first.
func (d *Driver) Range(ctx context.Context, prefix []byte, limit int) ([]driver.Entry, error) {
	req := tarantool.NewSelectRequest(d.space).
		Iterator(tarantool.IterGe).
		Key([]any{string(prefix)}).
		Context(ctx)

	if limit > 0 {
		req = req.Limit(uint32(limit))
	}

	var tuples []entryTuple

	if err := d.conn.Do(req).GetTyped(&tuples); err != nil {
		return nil, fmt.Errorf("failed to select range: %w", err)
	}

	entries := make([]driver.Entry, 0, len(tuples))

	for _, tuple := range tuples {
		if !strings.HasPrefix(tuple.key, string(prefix)) {
			break
		}

		entries = append(entries, tuple.asEntry())
	}

	return entries, nil
}
