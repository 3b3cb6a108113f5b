package articles

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/verte-zerg/runcals/internal/model"
	"github.com/verte-zerg/runcals/internal/store"
)

// CacheKey is the storage key of the article cache.
const CacheKey = "runningArticles"

type cachePayload struct {
	Articles           []model.Article `json:"articles"`
	LastFetchTimestamp int64           `json:"lastFetchTimestamp"`
	LastArticleID      string          `json:"lastArticleId,omitempty"`
}

// Cache persists the merged article list with its fetch time.
type Cache struct {
	kv     store.KV
	logger *zap.Logger
	now    func() time.Time
}

// NewCache returns a cache over kv.
func NewCache(kv store.KV, logger *zap.Logger) *Cache {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Cache{kv: kv, logger: logger, now: time.Now}
}

// Save replaces the cached articles and stamps the fetch time.
func (c *Cache) Save(ctx context.Context, articles []model.Article) error {
	payload := cachePayload{
		Articles:           articles,
		LastFetchTimestamp: c.now().UnixMilli(),
	}
	if payload.Articles == nil {
		payload.Articles = []model.Article{}
	}
	if len(articles) > 0 && articles[0].CreatedAt != nil {
		payload.LastArticleID = *articles[0].CreatedAt
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to encode article cache: %w", err)
	}
	if err := c.kv.Set(ctx, CacheKey, data); err != nil {
		return fmt.Errorf("failed to save article cache: %w", err)
	}
	return nil
}

// Load returns the cached articles, or an empty slice.
func (c *Cache) Load(ctx context.Context) []model.Article {
	payload, ok := c.read(ctx)
	if !ok || payload.Articles == nil {
		return []model.Article{}
	}
	return payload.Articles
}

// LastFetch returns when the cache was last written, or the zero time.
func (c *Cache) LastFetch(ctx context.Context) time.Time {
	payload, ok := c.read(ctx)
	if !ok || payload.LastFetchTimestamp == 0 {
		return time.Time{}
	}
	return time.UnixMilli(payload.LastFetchTimestamp)
}

// LastArticleID returns the created_at of the newest cached article.
func (c *Cache) LastArticleID(ctx context.Context) string {
	payload, _ := c.read(ctx)
	return payload.LastArticleID
}

// Clear drops the cache.
func (c *Cache) Clear(ctx context.Context) error {
	if err := c.kv.Delete(ctx, CacheKey); err != nil {
		return fmt.Errorf("failed to clear article cache: %w", err)
	}
	return nil
}

func (c *Cache) read(ctx context.Context) (cachePayload, bool) {
	data, err := c.kv.Get(ctx, CacheKey)
	if errors.Is(err, store.ErrNotFound) {
		return cachePayload{}, false
	}
	if err != nil {
		c.logger.Warn("article cache read failed", zap.String("key", CacheKey), zap.Error(err))
		return cachePayload{}, false
	}
	var payload cachePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		c.logger.Warn("article cache is corrupt", zap.String("key", CacheKey), zap.Error(err))
		return cachePayload{}, false
	}
	return payload, true
}
