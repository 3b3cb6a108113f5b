package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/verte-zerg/runcals/internal/model"
	"github.com/verte-zerg/runcals/internal/store"
)

// Key is the storage key of the event list.
const Key = "raceEvents"

// Store keeps events as one JSON array, newest created first.
type Store struct {
	kv     store.KV
	logger *zap.Logger
	now    func() time.Time
	newID  func() (string, error)
	mu     sync.Mutex
}

// NewStore returns an event store over kv.
func NewStore(kv store.KV, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{kv: kv, logger: logger, now: time.Now, newID: newEventID}
}

func newEventID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Create validates d, assigns its id and creation time and stores it first.
func (s *Store) Create(ctx context.Context, d Draft) (model.RaceEvent, error) {
	if err := Validate(d); err != nil {
		return model.RaceEvent{}, err
	}
	id, err := s.newID()
	if err != nil {
		return model.RaceEvent{}, fmt.Errorf("failed to generate event id: %w", err)
	}
	ev := model.RaceEvent{
		ID:         id,
		EventName:  strings.TrimSpace(d.EventName),
		Date:       strings.TrimSpace(d.Date),
		Type:       d.Type,
		Distance:   d.Distance,
		EventNotes: strings.TrimSpace(d.EventNotes),
		CreatedAt:  s.now().UTC().Format("2006-01-02T15:04:05.000Z07:00"),
	}
	if NeedsCustomDistance(d.Type, d.Distance) {
		ev.CustomDistance = strings.TrimSpace(d.CustomDistance)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.load(ctx)
	next := make([]model.RaceEvent, 0, len(events)+1)
	next = append(next, ev)
	next = append(next, events...)
	if err := s.save(ctx, next); err != nil {
		return model.RaceEvent{}, err
	}
	return ev, nil
}

// LoadAll returns every stored event. Missing or unreadable data yields an
// empty slice.
func (s *Store) LoadAll(ctx context.Context) []model.RaceEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// DeleteByID removes the event with id. Unknown ids are ignored.
func (s *Store) DeleteByID(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.load(ctx)
	kept := events[:0]
	for _, ev := range events {
		if ev.ID != id {
			kept = append(kept, ev)
		}
	}
	if len(kept) == len(events) {
		return nil
	}
	return s.save(ctx, kept)
}

// Clear removes every event.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("failed to clear events: %w", err)
	}
	return nil
}

func (s *Store) load(ctx context.Context) []model.RaceEvent {
	data, err := s.kv.Get(ctx, Key)
	if errors.Is(err, store.ErrNotFound) {
		return []model.RaceEvent{}
	}
	if err != nil {
		s.logger.Warn("events read failed", zap.String("key", Key), zap.Error(err))
		return []model.RaceEvent{}
	}
	var events []model.RaceEvent
	if err := json.Unmarshal(data, &events); err != nil {
		s.logger.Warn("events data is corrupt", zap.String("key", Key), zap.Error(err))
		return []model.RaceEvent{}
	}
	if events == nil {
		events = []model.RaceEvent{}
	}
	return events
}

func (s *Store) save(ctx context.Context, events []model.RaceEvent) error {
	data, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("failed to encode events: %w", err)
	}
	if err := s.kv.Set(ctx, Key, data); err != nil {
		return fmt.Errorf("failed to save events: %w", err)
	}
	return nil
}
