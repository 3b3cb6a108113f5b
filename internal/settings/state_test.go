package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/runcals/internal/store"
)

func TestStateNotifiesSubscribers(t *testing.T) {
	ctx := context.Background()
	kv := openKV(t)
	state := NewState(ctx, kv, nil)
	assert.Equal(t, Default(), state.Current())

	var seen []Settings
	unsubscribe := state.Subscribe(func(s Settings) { seen = append(seen, s) })

	require.NoError(t, state.SetLanguage(ctx, English))
	require.NoError(t, state.SetTheme(ctx, ThemeLight))
	require.Len(t, seen, 2)
	assert.Equal(t, Settings{Language: English, Theme: ThemeAutomatic}, seen[0])
	assert.Equal(t, Settings{Language: English, Theme: ThemeLight}, seen[1])

	unsubscribe()
	unsubscribe()
	require.NoError(t, state.SetTheme(ctx, ThemeDark))
	assert.Len(t, seen, 2)
	assert.Equal(t, ThemeDark, state.Current().Theme)

	reloaded := NewState(ctx, kv, nil)
	assert.Equal(t, Settings{Language: English, Theme: ThemeDark}, reloaded.Current())
}

func TestStateRejectsInvalidWithoutNotifying(t *testing.T) {
	ctx := context.Background()
	state := NewState(ctx, openKV(t), nil)
	called := false
	state.Subscribe(func(Settings) { called = true })

	assert.ErrorIs(t, state.SetLanguage(ctx, "xx"), ErrInvalidLanguage)
	assert.False(t, called)
	assert.Equal(t, Default(), state.Current())
}

// slowKV stalls right after writing English so a second setter can race it.
type slowKV struct {
	store.KV
	written chan struct{}
	other   chan struct{}
}

func (k *slowKV) Set(ctx context.Context, key string, value []byte) error {
	if err := k.KV.Set(ctx, key, value); err != nil {
		return err
	}
	if key == LanguageKey && string(value) == string(English) {
		close(k.written)
		select {
		case <-k.other:
		case <-time.After(100 * time.Millisecond):
		}
	}
	return nil
}

func TestStateConcurrentSettersMatchStorage(t *testing.T) {
	ctx := context.Background()
	kv := &slowKV{KV: openKV(t), written: make(chan struct{}), other: make(chan struct{})}
	state := NewState(ctx, kv, nil)

	first := make(chan error, 1)
	go func() { first <- state.SetLanguage(ctx, English) }()
	<-kv.written

	second := make(chan error, 1)
	go func() {
		err := state.SetLanguage(ctx, Chinese)
		close(kv.other)
		second <- err
	}()

	require.NoError(t, <-first)
	require.NoError(t, <-second)

	saved := Load(ctx, kv, nil)
	assert.Equal(t, saved.Language, state.Current().Language)
	assert.Equal(t, Chinese, state.Current().Language)
}
