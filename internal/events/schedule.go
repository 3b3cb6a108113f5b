package events

import (
	"slices"
	"time"

	"github.com/verte-zerg/runcals/internal/model"
)

// Partitioned splits events around a day.
type Partitioned struct {
	Upcoming []model.RaceEvent `json:"upcoming" yaml:"upcoming"`
	Past     []model.RaceEvent `json:"past" yaml:"past"`
}

type dated struct {
	ev  model.RaceEvent
	day time.Time
}

// calendarDay returns the local calendar date of t as a UTC midnight.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Partition splits events into those on or after today's date, soonest
// first, and those before it, latest first. Events with an unparseable
// date are left out of both.
func Partition(events []model.RaceEvent, today time.Time) Partitioned {
	day := calendarDay(today)
	var upcoming, past []dated
	for _, ev := range events {
		d, err := ParseDate(ev.Date)
		if err != nil {
			continue
		}
		if d.Before(day) {
			past = append(past, dated{ev: ev, day: d})
		} else {
			upcoming = append(upcoming, dated{ev: ev, day: d})
		}
	}
	slices.SortStableFunc(upcoming, func(a, b dated) int { return a.day.Compare(b.day) })
	slices.SortStableFunc(past, func(a, b dated) int { return b.day.Compare(a.day) })
	return Partitioned{Upcoming: unwrap(upcoming), Past: unwrap(past)}
}

func unwrap(list []dated) []model.RaceEvent {
	out := make([]model.RaceEvent, 0, len(list))
	for _, d := range list {
		out = append(out, d.ev)
	}
	return out
}

// Next returns the soonest event on or after today.
func Next(events []model.RaceEvent, today time.Time) (model.RaceEvent, bool) {
	p := Partition(events, today)
	if len(p.Upcoming) == 0 {
		return model.RaceEvent{}, false
	}
	return p.Upcoming[0], true
}

// DaysUntil returns the number of calendar days from today to date. Zero
// means the event is today; negative values are in the past.
func DaysUntil(date string, today time.Time) (int, bool) {
	d, err := ParseDate(date)
	if err != nil {
		return 0, false
	}
	return int(d.Sub(calendarDay(today)) / (24 * time.Hour)), true
}

// FormatDate renders a YYYY-MM-DD date as "DD Mon YY". Unparseable input is
// returned unchanged.
func FormatDate(date string) string {
	d, err := ParseDate(date)
	if err != nil {
		return date
	}
	return d.Format("02 Jan 06")
}
