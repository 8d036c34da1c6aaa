package tarantool_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gotarantool "github.com/tarantool/go-tarantool/v2"

	"github.com/polymodel/go-polymodel/store/driver/tarantool"
)

// createIntegrationDriver connects to a real Tarantool instance.
// It skips the test if no instance is available.
//
// The instance is expected to have a space named "polymodel" with a string
// primary index on the first field.
func createIntegrationDriver(t *testing.T) *tarantool.Driver {
	t.Helper()

	addr := os.Getenv("TARANTOOL_ADDR")
	if addr == "" {
		t.Skip("Skipping test: TARANTOOL_ADDR environment variable not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	conn, err := gotarantool.Connect(ctx, &gotarantool.NetDialer{
		Address:  addr,
		User:     os.Getenv("TARANTOOL_USER"),
		Password: os.Getenv("TARANTOOL_PASSWORD"),
	}, gotarantool.Opts{})
	require.NoError(t, err, "Failed to connect to Tarantool")

	t.Cleanup(func() { _ = conn.Close() })

	return tarantool.New(conn)
}

func TestIntegration_PutGetDelete(t *testing.T) {
	t.Parallel()

	drv := createIntegrationDriver(t)
	ctx := context.Background()
	key := []byte("polymodel-test/integration/alpha")

	defer func() { _, _ = drv.Delete(ctx, key) }()

	require.NoError(t, drv.Put(ctx, key, []byte("payload")))

	entry, ok, err := drv.Get(ctx, key)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, []byte("payload"), entry.Value)

	ok, err = drv.Delete(ctx, key)
	require.NoError(t, err)
	assert.True(t, ok)

	_, ok, err = drv.Get(ctx, key)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestIntegration_Range(t *testing.T) {
	t.Parallel()

	drv := createIntegrationDriver(t)
	ctx := context.Background()

	keys := [][]byte{
		[]byte("polymodel-test/range/a"),
		[]byte("polymodel-test/range/b"),
		[]byte("polymodel-test/range/c"),
	}

	defer func() {
		for _, key := range keys {
			_, _ = drv.Delete(ctx, key)
		}
	}()

	for i, key := range keys {
		require.NoError(t, drv.Put(ctx, key, []byte{byte('0' + i)}))
	}

	entries, err := drv.Range(ctx, []byte("polymodel-test/range/"), 0)
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, keys[0], entries[0].Key)
	assert.Equal(t, keys[2], entries[2].Key)
}
