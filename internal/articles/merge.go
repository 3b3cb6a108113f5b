// Package articles fetches, caches and merges the running article feed.
package articles

import (
	"cmp"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/verte-zerg/runcals/internal/model"
)

// DefaultStaleAfter is how long a cached feed is served before refetching.
const DefaultStaleAfter = time.Hour

var shortOffset = regexp.MustCompile(`[+-]\d{2}$`)

var createdAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	time.DateOnly,
}

// ParseCreatedAt parses an article timestamp. It accepts RFC 3339, the
// same with a space instead of T, bare ±HH offsets and plain dates. Values
// without an offset are read as UTC.
func ParseCreatedAt(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	s = strings.Replace(s, " ", "T", 1)
	if strings.Contains(s, "T") && shortOffset.MatchString(s) {
		s += ":00"
	}
	for _, layout := range createdAtLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func sortKey(a model.Article) int64 {
	if a.CreatedAt == nil {
		return 0
	}
	t, ok := ParseCreatedAt(*a.CreatedAt)
	if !ok {
		return 0
	}
	return t.UnixMilli()
}

// Merge unions cached and incoming articles by identity key. On a key
// collision the incoming article replaces the cached one in place. The
// result is sorted newest first; ties keep first-seen order. Articles with
// neither created_at nor title are dropped.
func Merge(cached, incoming []model.Article) []model.Article {
	index := make(map[string]int, len(cached)+len(incoming))
	merged := make([]model.Article, 0, len(cached)+len(incoming))
	add := func(a model.Article) {
		key := a.Key()
		if key == "" {
			return
		}
		if i, ok := index[key]; ok {
			merged[i] = a
			return
		}
		index[key] = len(merged)
		merged = append(merged, a)
	}
	for _, a := range cached {
		add(a)
	}
	for _, a := range incoming {
		add(a)
	}
	slices.SortStableFunc(merged, func(a, b model.Article) int {
		return cmp.Compare(sortKey(b), sortKey(a))
	})
	return merged
}

// countNew reports how many distinct incoming keys are absent from cached.
func countNew(cached, incoming []model.Article) int {
	seen := make(map[string]struct{}, len(cached))
	for _, a := range cached {
		seen[a.Key()] = struct{}{}
	}
	n := 0
	for _, a := range incoming {
		key := a.Key()
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		n++
	}
	return n
}

// IsStale reports whether a feed fetched at lastFetch must be refreshed.
func IsStale(lastFetch, now time.Time, threshold time.Duration) bool {
	if lastFetch.IsZero() {
		return true
	}
	return now.Sub(lastFetch) > threshold
}
