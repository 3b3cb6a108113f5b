// Package history keeps bounded, newest-first calculator history lists.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/verte-zerg/runcals/internal/store"
)

// DefaultCapacity is the number of records kept per calculator.
const DefaultCapacity = 20

// Storage keys for the two calculators.
const (
	EphKey   = "ephCalculatorHistory"
	TrackKey = "trackCalculatorHistory"
)

// Store is a capped list of records persisted as one JSON array under a
// single key. Index 0 is the most recent record.
type Store[T any] struct {
	kv       store.KV
	key      string
	capacity int
	logger   *zap.Logger
	mu       sync.Mutex
}

// New returns a history store over kv. A non-positive capacity selects
// DefaultCapacity.
func New[T any](kv store.KV, key string, capacity int, logger *zap.Logger) *Store[T] {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store[T]{kv: kv, key: key, capacity: capacity, logger: logger}
}

// Capacity reports the maximum number of retained records.
func (s *Store[T]) Capacity() int {
	return s.capacity
}

// Append adds record at the front and drops records beyond capacity.
func (s *Store[T]) Append(ctx context.Context, record T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load(ctx)
	next := make([]T, 0, min(len(records)+1, s.capacity))
	next = append(next, record)
	next = append(next, records...)
	if len(next) > s.capacity {
		next = next[:s.capacity]
	}
	return s.save(ctx, next)
}

// LoadAll returns all records, newest first. Missing or unreadable data
// yields an empty slice.
func (s *Store[T]) LoadAll(ctx context.Context) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Len returns the number of stored records.
func (s *Store[T]) Len(ctx context.Context) int {
	return len(s.LoadAll(ctx))
}

// ClearAll removes every record.
func (s *Store[T]) ClearAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("failed to clear history: %w", err)
	}
	return nil
}

// DeleteAt removes the record at index. Indices outside the list are ignored.
func (s *Store[T]) DeleteAt(ctx context.Context, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	records := s.load(ctx)
	if index < 0 || index >= len(records) {
		return nil
	}
	records = append(records[:index], records[index+1:]...)
	return s.save(ctx, records)
}

func (s *Store[T]) load(ctx context.Context) []T {
	data, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, store.ErrNotFound) {
		return []T{}
	}
	if err != nil {
		s.logger.Warn("history read failed", zap.String("key", s.key), zap.Error(err))
		return []T{}
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		s.logger.Warn("history data is corrupt", zap.String("key", s.key), zap.Error(err))
		return []T{}
	}
	if records == nil {
		records = []T{}
	}
	return records
}

func (s *Store[T]) save(ctx context.Context, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode history: %w", err)
	}
	if err := s.kv.Set(ctx, s.key, data); err != nil {
		return fmt.Errorf("failed to save history: %w", err)
	}
	s.logger.Debug("history saved", zap.String("key", s.key), zap.Int("records", len(records)))
	return nil
}
