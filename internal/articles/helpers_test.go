package articles

import (
	"context"
	"sync"

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
	delete(m.data, key)
	return nil
}

func article(title, createdAt string) model.Article {
	a := model.Article{Title: title, Content: title + " body"}
	if createdAt != "" {
		a.CreatedAt = &createdAt
	}
	return a
}

func titles(articles []model.Article) []string {
	out := make([]string, 0, len(articles))
	for _, a := range articles {
		out = append(out, a.Title)
	}
	return out
}
