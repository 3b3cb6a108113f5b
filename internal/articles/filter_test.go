package articles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/runcals/internal/model"
)

func TestDateKeyUsesUTC(t *testing.T) {
	key, ok := DateKey(article("late", "2024-06-15 01:00:00+08"))
	require.True(t, ok)
	assert.Equal(t, "2024-06-14", key)

	_, ok = DateKey(article("undated", ""))
	assert.False(t, ok)
}

func TestFilterByDate(t *testing.T) {
	list := []model.Article{
		article("a", "2024-06-15T08:00:00Z"),
		article("b", "2024-06-14T23:00:00Z"),
		article("c", "2024-06-15T01:00:00+02"),
		article("d", ""),
	}
	assert.Equal(t, []string{"a"}, titles(FilterByDate(list, "2024-06-15")))
	assert.Equal(t, []string{"b", "c"}, titles(FilterByDate(list, "2024-06-14")))
	assert.Empty(t, FilterByDate(list, "2020-01-01"))
}

func TestAvailableDates(t *testing.T) {
	list := []model.Article{
		article("Today: tempo", "2024-06-15T08:00:00Z"),
		article("週跑量：第一週", "2024-06-14T09:00:00Z"),
		article("Second of the day", "2024-06-14T07:00:00Z"),
		article("Intervals: 400s", "2024-06-12T07:00:00Z"),
		{Content: "untitled", CreatedAt: ptr("2024-06-11T07:00:00Z")},
		article("Recovery", "2024-06-13T07:00:00Z"),
	}
	got := AvailableDates(list, "2024-06-15")
	assert.Equal(t, []DateTitle{
		{Date: "2024-06-14", Title: "週跑量"},
		{Date: "2024-06-13", Title: "Recovery"},
		{Date: "2024-06-12", Title: "Intervals: 400s"},
	}, got)
}

func TestHeadline(t *testing.T) {
	assert.Equal(t, "Easy run", headline("Easy run：notes: more"))
	assert.Equal(t, "Easy run : notes", headline(" Easy run : notes"))
	assert.Equal(t, "5K Tips: pacing", headline("5K Tips: pacing"))
	assert.Equal(t, "Tempo: 20 min", headline("Tempo: 20 min：hard"))
	assert.Equal(t, "：lead", headline("：lead"))
	assert.Equal(t, "：lead", headline("：lead: more"))
	assert.Equal(t, "Plain", headline("Plain"))
}

func ptr(s string) *string { return &s }
