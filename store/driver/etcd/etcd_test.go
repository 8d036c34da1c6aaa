package etcd_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/etcd/api/v3/mvccpb"
	clientv3 "go.etcd.io/etcd/client/v3"

	"github.com/polymodel/go-polymodel/store/driver/etcd"
)

// fakeClient returns canned responses and records the keys it was called with.
type fakeClient struct {
	getResp    *clientv3.GetResponse
	putResp    *clientv3.PutResponse
	deleteResp *clientv3.DeleteResponse
	err        error

	getKeys    []string
	putKeys    []string
	deleteKeys []string
}

func (f *fakeClient) Get(_ context.Context, key string, _ ...clientv3.OpOption) (*clientv3.GetResponse, error) {
	f.getKeys = append(f.getKeys, key)
	return f.getResp, f.err
}

func (f *fakeClient) Put(_ context.Context, key string, _ string, _ ...clientv3.OpOption) (*clientv3.PutResponse, error) {
	f.putKeys = append(f.putKeys, key)
	return f.putResp, f.err
}

func (f *fakeClient) Delete(_ context.Context, key string, _ ...clientv3.OpOption) (*clientv3.DeleteResponse, error) {
	f.deleteKeys = append(f.deleteKeys, key)
	return f.deleteResp, f.err
}

func TestDriver_Get(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		getResp: &clientv3.GetResponse{
			Kvs: []*mvccpb.KeyValue{
				{Key: []byte("people/john"), Value: []byte(`{}`), ModRevision: 7},
			},
		},
	}
	drv := etcd.New(client)

	entry, ok, err := drv.Get(context.Background(), []byte("people/john"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("people/john"), entry.Key)
	assert.Equal(t, []byte(`{}`), entry.Value)
	assert.Equal(t, int64(7), entry.ModRevision)
	assert.Equal(t, []string{"people/john"}, client.getKeys)
}

func TestDriver_Get_Missing(t *testing.T) {
	t.Parallel()

	drv := etcd.New(&fakeClient{getResp: &clientv3.GetResponse{}})

	_, ok, err := drv.Get(context.Background(), []byte("missing"))
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestDriver_Get_Error(t *testing.T) {
	t.Parallel()

	clientErr := errors.New("etcd unavailable")
	drv := etcd.New(&fakeClient{err: clientErr})

	_, _, err := drv.Get(context.Background(), []byte("people/john"))
	require.ErrorIs(t, err, clientErr)
}

func TestDriver_Put(t *testing.T) {
	t.Parallel()

	client := &fakeClient{putResp: &clientv3.PutResponse{}}
	drv := etcd.New(client)

	require.NoError(t, drv.Put(context.Background(), []byte("people/john"), []byte(`{}`)))
	assert.Equal(t, []string{"people/john"}, client.putKeys)
}

func TestDriver_Delete(t *testing.T) {
	t.Parallel()

	t.Run("deleted", func(t *testing.T) {
		t.Parallel()

		drv := etcd.New(&fakeClient{deleteResp: &clientv3.DeleteResponse{Deleted: 1}})

		ok, err := drv.Delete(context.Background(), []byte("people/john"))
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("absent", func(t *testing.T) {
		t.Parallel()

		drv := etcd.New(&fakeClient{deleteResp: &clientv3.DeleteResponse{Deleted: 0}})

		ok, err := drv.Delete(context.Background(), []byte("people/john"))
		require.NoError(t, err)
		assert.False(t, ok)
	})
}

func TestDriver_Range(t *testing.T) {
	t.Parallel()

	client := &fakeClient{
		getResp: &clientv3.GetResponse{
			Kvs: []*mvccpb.KeyValue{
				{Key: []byte("people/alice"), Value: []byte("1"), ModRevision: 2},
				{Key: []byte("people/bob"), Value: []byte("2"), ModRevision: 3},
			},
		},
	}
	drv := etcd.New(client)

	entries, err := drv.Range(context.Background(), []byte("people/"), 10)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, []byte("people/alice"), entries[0].Key)
	assert.Equal(t, int64(3), entries[1].ModRevision)
	assert.Equal(t, []string{"people/"}, client.getKeys)
}
