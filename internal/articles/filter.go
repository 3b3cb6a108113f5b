package articles

import (
	"slices"
	"strings"

	"github.com/verte-zerg/runcals/internal/model"
)

// DateTitle pairs a UTC date with the headline of its first article.
type DateTitle struct {
	Date  string `json:"date" yaml:"date"`
	Title string `json:"title" yaml:"title"`
}

// DateKey returns the UTC YYYY-MM-DD of the article's created_at.
func DateKey(a model.Article) (string, bool) {
	if a.CreatedAt == nil {
		return "", false
	}
	t, ok := ParseCreatedAt(*a.CreatedAt)
	if !ok {
		return "", false
	}
	return t.UTC().Format("2006-01-02"), true
}

// FilterByDate keeps the articles published on the given UTC date.
func FilterByDate(articles []model.Article, dateKey string) []model.Article {
	out := []model.Article{}
	for _, a := range articles {
		if key, ok := DateKey(a); ok && key == dateKey {
			out = append(out, a)
		}
	}
	return out
}

// AvailableDates lists every date other than todayKey that has an article,
// newest first, labelled with the first titled article of that date.
func AvailableDates(articles []model.Article, todayKey string) []DateTitle {
	titles := map[string]string{}
	for _, a := range articles {
		key, ok := DateKey(a)
		if !ok || key == todayKey || a.Title == "" {
			continue
		}
		if _, seen := titles[key]; seen {
			continue
		}
		titles[key] = headline(a.Title)
	}
	out := make([]DateTitle, 0, len(titles))
	for date, title := range titles {
		out = append(out, DateTitle{Date: date, Title: title})
	}
	slices.SortFunc(out, func(a, b DateTitle) int {
		return strings.Compare(b.Date, a.Date)
	})
	return out
}

// headline cuts a title at its first full-width colon. A title that opens
// with one falls back to the text before its first ASCII colon.
func headline(title string) string {
	if before, _, _ := strings.Cut(title, "："); strings.TrimSpace(before) != "" {
		return strings.TrimSpace(before)
	}
	if before, _, _ := strings.Cut(title, ":"); strings.TrimSpace(before) != "" {
		return strings.TrimSpace(before)
	}
	return strings.TrimSpace(title)
}
