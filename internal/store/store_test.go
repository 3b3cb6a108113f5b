package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "nested", "runcals.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func TestGetMissingKey(t *testing.T) {
	s := openTestStore(t)
	_, err := s.Get(context.Background(), "theme")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSetOverwritesValue(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, "theme", []byte("light")))
	require.NoError(t, s.Set(ctx, "theme", []byte("dark")))

	got, err := s.Get(ctx, "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark", string(got))

	entries, err := s.Keys(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "theme", entries[0].Key)
	assert.Equal(t, 4, entries[0].Size)
	assert.False(t, entries[0].UpdatedAt.IsZero())
}

func TestDelete(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	require.NoError(t, s.Set(ctx, "raceEvents", []byte("[]")))
	require.NoError(t, s.Delete(ctx, "raceEvents"))
	require.NoError(t, s.Delete(ctx, "raceEvents"))

	_, err := s.Get(ctx, "raceEvents")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReopenKeepsData(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "runcals.db")

	s, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "language", []byte("zh")))
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	got, err := s.Get(ctx, "language")
	require.NoError(t, err)
	assert.Equal(t, "zh", string(got))
}

func TestKeysSorted(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)

	for _, key := range []string{"trackCalculatorHistory", "ephCalculatorHistory", "language"} {
		require.NoError(t, s.Set(ctx, key, []byte("x")))
	}
	entries, err := s.Keys(ctx)
	require.NoError(t, err)

	var keys []string
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	assert.Equal(t, []string{"ephCalculatorHistory", "language", "trackCalculatorHistory"}, keys)
}
