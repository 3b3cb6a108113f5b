package settings

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"github.com/verte-zerg/runcals/internal/store"
)

// State is the shared, observable preference set. Changes are saved
// before subscribers hear about them.
type State struct {
	kv store.KV
	// writeMu orders setters so the saved value and current agree.
	writeMu sync.Mutex
	mu      sync.Mutex
	current Settings
	subs    map[int]func(Settings)
	nextSub int
}

// NewState loads the saved preferences from kv.
func NewState(ctx context.Context, kv store.KV, logger *zap.Logger) *State {
	return &State{
		kv:      kv,
		current: Load(ctx, kv, logger),
		subs:    map[int]func(Settings){},
	}
}

// Current returns a snapshot of the preferences.
func (s *State) Current() Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// SetLanguage saves and publishes a new language.
func (s *State) SetLanguage(ctx context.Context, l Language) error {
	return s.set(func() error { return SaveLanguage(ctx, s.kv, l) },
		func(cur *Settings) { cur.Language = l })
}

// SetTheme saves and publishes a new theme.
func (s *State) SetTheme(ctx context.Context, t Theme) error {
	return s.set(func() error { return SaveTheme(ctx, s.kv, t) },
		func(cur *Settings) { cur.Theme = t })
}

// set persists and applies one change while holding writeMu. Subscribers
// run after the lock is released.
func (s *State) set(save func() error, apply func(*Settings)) error {
	s.writeMu.Lock()
	if err := save(); err != nil {
		s.writeMu.Unlock()
		return err
	}
	snapshot, fns := s.update(apply)
	s.writeMu.Unlock()

	for _, fn := range fns {
		fn(snapshot)
	}
	return nil
}

// Subscribe registers fn for every later change. The returned function
// removes the subscription.
func (s *State) Subscribe(fn func(Settings)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.subs, id)
			s.mu.Unlock()
		})
	}
}

func (s *State) update(apply func(*Settings)) (Settings, []func(Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apply(&s.current)
	fns := make([]func(Settings), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	return s.current, fns
}
