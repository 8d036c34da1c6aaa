package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	polymodel "github.com/polymodel/go-polymodel"
	"github.com/polymodel/go-polymodel/models"
	"github.com/polymodel/go-polymodel/registry"
	"github.com/polymodel/go-polymodel/store"
	"github.com/polymodel/go-polymodel/store/driver/memory"
)

func johnDoe() models.User {
	return models.User{
		Name:        "John Doe",
		DateOfBirth: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Height:      1.75,
	}
}

func centralPark(t *testing.T) models.Location {
	t.Helper()

	latitude, err := decimal.NewFromString("40.785091")
	require.NoError(t, err)

	longitude, err := decimal.NewFromString("-73.968285")
	require.NoError(t, err)

	return models.Location{
		Name:      "Central Park",
		Latitude:  latitude,
		Longitude: longitude,
	}
}

func TestStore_PutGet_MixedTypes(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.New(memory.New())

	user := johnDoe()
	location := centralPark(t)

	require.NoError(t, st.Put(ctx, "people/john", user))
	require.NoError(t, st.Put(ctx, "places/central-park", location))

	gotUser, err := st.Get(ctx, "people/john")
	require.NoError(t, err)
	require.Equal(t, user, gotUser)

	gotLocation, err := st.Get(ctx, "places/central-park")
	require.NoError(t, err)
	require.Equal(t, location, gotLocation)
}

func TestStore_Get_NotFound(t *testing.T) {
	t.Parallel()

	st := store.New(memory.New())

	_, err := st.Get(context.Background(), "people/nobody")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestStore_InvalidNames(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.New(memory.New())

	for _, name := range []string{"", "/leading", "trailing/"} {
		require.ErrorIs(t, st.Put(ctx, name, johnDoe()), store.ErrInvalidName)

		_, err := st.Get(ctx, name)
		require.ErrorIs(t, err, store.ErrInvalidName)

		require.ErrorIs(t, st.Delete(ctx, name), store.ErrInvalidName)
	}
}

func TestStore_Delete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.New(memory.New())

	require.NoError(t, st.Put(ctx, "people/john", johnDoe()))
	require.NoError(t, st.Delete(ctx, "people/john"))

	_, err := st.Get(ctx, "people/john")
	require.ErrorIs(t, err, store.ErrNotFound)

	require.ErrorIs(t, st.Delete(ctx, "people/john"), store.ErrNotFound)
}

func TestStore_Range(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	st := store.New(memory.New())

	require.NoError(t, st.Put(ctx, "people/alice", models.Address{Street: "A", City: "X"}))
	require.NoError(t, st.Put(ctx, "people/bob", models.Address{Street: "B", City: "Y"}))
	require.NoError(t, st.Put(ctx, "places/central-park", centralPark(t)))

	t.Run("prefix", func(t *testing.T) {
		t.Parallel()

		entries, err := st.Range(ctx, "people/")
		require.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, "people/alice", entries[0].Name)
		assert.Equal(t, "people/bob", entries[1].Name)
	})

	t.Run("limit", func(t *testing.T) {
		t.Parallel()

		entries, err := st.Range(ctx, "people/", store.WithLimit(1))
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "people/alice", entries[0].Name)
	})

	t.Run("all", func(t *testing.T) {
		t.Parallel()

		entries, err := st.Range(ctx, "")
		require.NoError(t, err)
		require.Len(t, entries, 3)

		// Each entry resolves to its original concrete type.
		assert.IsType(t, models.Address{}, entries[0].Model)
		assert.IsType(t, models.Location{}, entries[2].Model)
	})
}

func TestStore_Get_CorruptValue(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	drv := memory.New()
	st := store.New(drv)

	require.NoError(t, drv.Put(ctx, []byte("people/john"), []byte(`{"no":"metadata"}`)))

	_, err := st.Get(ctx, "people/john")
	require.Error(t, err)

	var metaErr polymodel.MissingMetadataError
	require.ErrorAs(t, err, &metaErr)
}

func TestStore_WithCodec(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	reg := registry.New()
	registry.MustAdd(reg, models.ValidateAddress)

	st := store.New(memory.New(), store.WithCodec(polymodel.NewCodec(reg)))

	address := models.Address{Street: "Baker Street", City: "London"}
	require.NoError(t, st.Put(ctx, "places/home", address))

	got, err := st.Get(ctx, "places/home")
	require.NoError(t, err)
	require.Equal(t, address, got)

	// A type missing from the bound registry cannot be read back.
	require.NoError(t, st.Put(ctx, "people/john", johnDoe()))

	_, err = st.Get(ctx, "people/john")

	var unknownErr polymodel.UnknownTypeError
	require.ErrorAs(t, err, &unknownErr)
}
