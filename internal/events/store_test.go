package events

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/verte-zerg/runcals/internal/model"
	"github.com/verte-zerg/runcals/internal/store"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	kv, err := store.Open(filepath.Join(t.TempDir(), "runcals.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kv.Close() })
	s := NewStore(kv, nil)
	s.now = func() time.Time { return time.Date(2024, 6, 15, 8, 30, 0, 123_000_000, time.FixedZone("CST", 8*3600)) }
	return s
}

func TestCreateAssignsIDAndPrepends(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)

	first, err := s.Create(ctx, validDraft())
	require.NoError(t, err)
	_, err = uuid.Parse(first.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15T00:30:00.123Z", first.CreatedAt)

	d := validDraft()
	d.EventName = "  Long run "
	d.Type = model.EventTypeTraining
	d.Distance = model.EventDistanceOther
	d.CustomDistance = "32K"
	second, err := s.Create(ctx, d)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, "Long run", second.EventName)
	assert.Equal(t, "32K", second.CustomDistance)

	all := s.LoadAll(ctx)
	assert.Equal(t, []string{second.ID, first.ID}, ids(all))
}

func TestCreateDropsCustomDistanceWhenNotNeeded(t *testing.T) {
	d := validDraft()
	d.CustomDistance = "42.2"
	got, err := openStore(t).Create(context.Background(), d)
	require.NoError(t, err)
	assert.Empty(t, got.CustomDistance)
}

func TestCreateRejectsInvalidDraft(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	d := validDraft()
	d.Date = "tomorrow"
	_, err := s.Create(ctx, d)
	assert.ErrorIs(t, err, ErrInvalidEvent)
	assert.Empty(t, s.LoadAll(ctx))
}

func TestDeleteByIDAndClear(t *testing.T) {
	ctx := context.Background()
	s := openStore(t)
	a, err := s.Create(ctx, validDraft())
	require.NoError(t, err)
	b, err := s.Create(ctx, validDraft())
	require.NoError(t, err)

	require.NoError(t, s.DeleteByID(ctx, "missing"))
	assert.Len(t, s.LoadAll(ctx), 2)

	require.NoError(t, s.DeleteByID(ctx, a.ID))
	assert.Equal(t, []string{b.ID}, ids(s.LoadAll(ctx)))

	require.NoError(t, s.Clear(ctx))
	assert.Empty(t, s.LoadAll(ctx))
}

func TestLoadAllCorrupt(t *testing.T) {
	ctx := context.Background()
	kv, err := store.Open(filepath.Join(t.TempDir(), "runcals.db"))
	require.NoError(t, err)
	defer func() { _ = kv.Close() }()
	require.NoError(t, kv.Set(ctx, Key, []byte(`{"id":`)))

	s := NewStore(kv, nil)
	assert.Empty(t, s.LoadAll(ctx))
}

func TestConcurrentCreates(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	kv := newMemKV()
	s := NewStore(kv, nil)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			d := validDraft()
			d.EventName = fmt.Sprintf("run %d", i)
			_, err := s.Create(ctx, d)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()
	assert.Len(t, s.LoadAll(ctx), 20)
}

type memKV struct {
	mu   sync.Mutex
	data map[string][]byte
}

func newMemKV() *memKV {
	return &memKV{data: map[string][]byte{}}
}

func (m *memKV) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	if !ok {
		return nil, store.ErrNotFound
	}
	return v, nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}
