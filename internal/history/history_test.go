package history

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/verte-zerg/runcals/internal/model"
	"github.com/verte-zerg/runcals/internal/store"
)

type memKV struct {
	mu       sync.Mutex
	data     map[string][]byte
	writeErr error
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
	return append([]byte(nil), v...), nil
}

func (m *memKV) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	m.data[key] = append([]byte(nil), value...)
	return nil
}

func (m *memKV) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.writeErr != nil {
		return m.writeErr
	}
	delete(m.data, key)
	return nil
}

func openSQLite(t *testing.T) *store.Store {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "runcals.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func ephRecord(i int) model.EphRecord {
	return model.EphRecord{
		Mode:      model.EphModeEph,
		Distance:  fmt.Sprint(i),
		Elevation: "0",
		Time:      "1:00:00",
		Result:    fmt.Sprintf("EpH = %d.00", i),
		Timestamp: "2024-06-15 08:00:00",
	}
}

func TestAppendKeepsNewestWithinCapacity(t *testing.T) {
	ctx := context.Background()
	h := New[model.EphRecord](openSQLite(t), EphKey, 0, nil)
	require.Equal(t, DefaultCapacity, h.Capacity())

	for i := 1; i <= 25; i++ {
		require.NoError(t, h.Append(ctx, ephRecord(i)))
	}

	records := h.LoadAll(ctx)
	require.Len(t, records, 20)
	assert.Equal(t, "25", records[0].Distance)
	assert.Equal(t, "6", records[19].Distance)
	assert.Equal(t, 20, h.Len(ctx))
}

func TestLoadAllMissingKey(t *testing.T) {
	h := New[model.TrackRecord](newMemKV(), TrackKey, 5, zap.NewNop())
	records := h.LoadAll(context.Background())
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLoadAllCorruptDataLogsAndReturnsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	require.NoError(t, kv.Set(ctx, TrackKey, []byte("{not json")))

	core, logs := observer.New(zapcore.WarnLevel)
	h := New[model.TrackRecord](kv, TrackKey, 5, zap.New(core))

	assert.Empty(t, h.LoadAll(ctx))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "history data is corrupt", logs.All()[0].Message)

	// A corrupt list is replaced on the next append.
	require.NoError(t, h.Append(ctx, model.TrackRecord{Pace: "4:30"}))
	records := h.LoadAll(ctx)
	require.Len(t, records, 1)
	assert.Equal(t, "4:30", records[0].Pace)
}

func TestDeleteAt(t *testing.T) {
	ctx := context.Background()
	h := New[model.EphRecord](openSQLite(t), EphKey, 10, nil)
	for i := 1; i <= 3; i++ {
		require.NoError(t, h.Append(ctx, ephRecord(i)))
	}

	require.NoError(t, h.DeleteAt(ctx, 1))
	records := h.LoadAll(ctx)
	require.Len(t, records, 2)
	assert.Equal(t, "3", records[0].Distance)
	assert.Equal(t, "1", records[1].Distance)

	require.NoError(t, h.DeleteAt(ctx, -1))
	require.NoError(t, h.DeleteAt(ctx, 2))
	assert.Len(t, h.LoadAll(ctx), 2)
}

func TestClearAll(t *testing.T) {
	ctx := context.Background()
	kv := openSQLite(t)
	eph := New[model.EphRecord](kv, EphKey, 10, nil)
	track := New[model.TrackRecord](kv, TrackKey, 10, nil)
	require.NoError(t, eph.Append(ctx, ephRecord(1)))
	require.NoError(t, track.Append(ctx, model.TrackRecord{Pace: "5:00"}))

	require.NoError(t, eph.ClearAll(ctx))
	assert.Empty(t, eph.LoadAll(ctx))
	assert.Len(t, track.LoadAll(ctx), 1)
}

func TestWriteFailureIsReturned(t *testing.T) {
	ctx := context.Background()
	kv := newMemKV()
	h := New[model.EphRecord](kv, EphKey, 10, nil)
	require.NoError(t, h.Append(ctx, ephRecord(1)))

	boom := errors.New("disk full")
	kv.writeErr = boom
	assert.ErrorIs(t, h.Append(ctx, ephRecord(2)), boom)
	assert.ErrorIs(t, h.DeleteAt(ctx, 0), boom)
	assert.ErrorIs(t, h.ClearAll(ctx), boom)

	kv.writeErr = nil
	assert.Len(t, h.LoadAll(ctx), 1)
}

func TestConcurrentAppendsAreSerialized(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx := context.Background()
	h := New[model.EphRecord](newMemKV(), EphKey, 100, nil)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			assert.NoError(t, h.Append(ctx, ephRecord(i)))
		}(i)
	}
	wg.Wait()

	assert.Len(t, h.LoadAll(ctx), 50)
}
