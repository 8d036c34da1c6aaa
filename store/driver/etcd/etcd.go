// Package etcd provides an etcd implementation of the storage driver
// interface. It enables using etcd as a distributed backend for encoded
// model values.
package etcd

import (
	"context"
	"fmt"

	etcd "go.etcd.io/etcd/client/v3"

	"github.com/polymodel/go-polymodel/store/driver"
)

// Client defines the minimal etcd surface needed by the driver.
// *etcd.Client satisfies it directly; tests substitute fakes.
type Client interface {
	Get(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.GetResponse, error)
	Put(ctx context.Context, key string, val string, opts ...etcd.OpOption) (*etcd.PutResponse, error)
	Delete(ctx context.Context, key string, opts ...etcd.OpOption) (*etcd.DeleteResponse, error)
}

// Driver is an etcd implementation of the storage driver interface.
type Driver struct {
	client Client
}

var _ driver.Driver = &Driver{}

// New creates a driver backed by the given etcd client.
func New(client Client) *Driver {
	return &Driver{client: client}
}

// Get implements the driver interface.
func (d *Driver) Get(ctx context.Context, key []byte) (driver.Entry, bool, error) {
	resp, err := d.client.Get(ctx, string(key))
	if err != nil {
		return driver.Entry{}, false, fmt.Errorf("failed to get key: %w", err)
	}

	if len(resp.Kvs) == 0 {
		return driver.Entry{}, false, nil
	}

	keyValue := resp.Kvs[0]

	return driver.Entry{
		Key:         keyValue.Key,
		Value:       keyValue.Value,
		ModRevision: keyValue.ModRevision,
	}, true, nil
}

// Put implements the driver interface.
func (d *Driver) Put(ctx context.Context, key []byte, value []byte) error {
	if _, err := d.client.Put(ctx, string(key), string(value)); err != nil {
		return fmt.Errorf("failed to put key: %w", err)
	}

	return nil
}

// Delete implements the driver interface.
func (d *Driver) Delete(ctx context.Context, key []byte) (bool, error) {
	resp, err := d.client.Delete(ctx, string(key))
	if err != nil {
		return false, fmt.Errorf("failed to delete key: %w", err)
	}

	return resp.Deleted > 0, nil
}

// Range implements the driver interface.
func (d *Driver) Range(ctx context.Context, prefix []byte, limit int) ([]driver.Entry, error) {
	opts := []etcd.OpOption{
		etcd.WithPrefix(),
		etcd.WithSort(etcd.SortByKey, etcd.SortAscend),
	}
	if limit > 0 {
		opts = append(opts, etcd.WithLimit(int64(limit)))
	}

	resp, err := d.client.Get(ctx, string(prefix), opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to range over prefix: %w", err)
	}

	entries := make([]driver.Entry, 0, len(resp.Kvs))
	for _, keyValue := range resp.Kvs {
		entries = append(entries, driver.Entry{
			Key:         keyValue.Key,
			Value:       keyValue.Value,
			ModRevision: keyValue.ModRevision,
		})
	}

	return entries, nil
}
