package articles

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/verte-zerg/runcals/internal/model"
)

// Result is what the feed served and how it got it.
type Result struct {
	Articles  []model.Article
	FromCache bool
	Fetched   bool
	NewCount  int
	LastFetch time.Time
	// FetchErr holds a fetch failure that was absorbed by serving the cache.
	FetchErr error
}

// Feed serves articles from the cache and refreshes it when stale.
type Feed struct {
	cache      *Cache
	fetcher    Fetcher
	staleAfter time.Duration
	logger     *zap.Logger
	now        func() time.Time
	group      singleflight.Group
}

// NewFeed returns a feed. A non-positive staleAfter selects DefaultStaleAfter.
func NewFeed(cache *Cache, fetcher Fetcher, staleAfter time.Duration, logger *zap.Logger) *Feed {
	if staleAfter <= 0 {
		staleAfter = DefaultStaleAfter
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Feed{
		cache:      cache,
		fetcher:    fetcher,
		staleAfter: staleAfter,
		logger:     logger,
		now:        time.Now,
	}
}

// Articles returns the article list. Unless force is set, a fresh non-empty
// cache is returned without a request. A failed fetch falls back to the
// cache when it has anything to show. Concurrent refreshes share one fetch.
func (f *Feed) Articles(ctx context.Context, force bool) (Result, error) {
	cached := f.cache.Load(ctx)
	lastFetch := f.cache.LastFetch(ctx)
	if !force && len(cached) > 0 && !IsStale(lastFetch, f.now(), f.staleAfter) {
		return Result{Articles: cached, FromCache: true, LastFetch: lastFetch}, nil
	}

	// The shared refresh outlives any one caller; each caller still stops
	// waiting when its own context ends.
	ch := f.group.DoChan("refresh", func() (interface{}, error) {
		return f.refresh(context.WithoutCancel(ctx))
	})
	select {
	case r := <-ch:
		res, _ := r.Val.(Result)
		return res, r.Err
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}

func (f *Feed) refresh(ctx context.Context) (Result, error) {
	cached := f.cache.Load(ctx)
	lastFetch := f.cache.LastFetch(ctx)

	incoming, err := f.fetcher.Fetch(ctx)
	if err != nil {
		if len(cached) > 0 {
			f.logger.Warn("article fetch failed, serving cache", zap.Int("cached", len(cached)), zap.Error(err))
			return Result{Articles: cached, FromCache: true, LastFetch: lastFetch, FetchErr: err}, nil
		}
		if !errors.Is(err, ErrFetch) {
			err = errors.Join(ErrFetch, err)
		}
		return Result{Articles: []model.Article{}}, err
	}

	merged := Merge(cached, incoming)
	res := Result{
		Articles:  merged,
		Fetched:   true,
		NewCount:  countNew(cached, incoming),
		LastFetch: f.now(),
	}
	f.logger.Debug("articles fetched",
		zap.Int("incoming", len(incoming)),
		zap.Int("new", res.NewCount),
		zap.Int("total", len(merged)))
	if err := f.cache.Save(ctx, merged); err != nil {
		return res, err
	}
	return res, nil
}
