package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/runcals/internal/articles"
	"github.com/verte-zerg/runcals/internal/calc"
	"github.com/verte-zerg/runcals/internal/events"
	"github.com/verte-zerg/runcals/internal/model"
	"github.com/verte-zerg/runcals/internal/settings"
)

const trendWindow = 3

// Printer writes localized, styled output.
type Printer struct {
	W      io.Writer
	Styles Styles
	Labels Labels
}

func (p Printer) println(a ...any) error {
	_, err := fmt.Fprintln(p.W, a...)
	return err
}

func (p Printer) title(s string) error {
	return p.println(p.Styles.Title.Render(s))
}

func (p Printer) table(headers []string, rows [][]string, right map[int]bool) error {
	return WriteTable(p.W, p.Styles, headers, rows, right)
}

// EphResultText is the one-line result of an EpH calculation.
func EphResultText(l Labels, res calc.EphResult) string {
	if res.Mode == model.EphModeTime {
		return fmt.Sprintf(l.EstimatedTime, res.Clock)
	}
	return fmt.Sprintf(l.EphResult, res.Value)
}

// EphResult prints an EpH calculation.
func (p Printer) EphResult(res calc.EphResult) error {
	return p.println(p.Styles.Value.Render(EphResultText(p.Labels, res)))
}

// TrackResult prints the 400 m breakdown and race projections for a pace.
func (p Printer) TrackResult(res calc.TrackResult) error {
	l := p.Labels
	s := res.Splits
	if err := p.title(l.TrackTitle); err != nil {
		return err
	}
	rows := [][]string{}
	if res.Mode == model.TrackModeTimeToPace {
		rows = append(rows, []string{l.CompletedTime, res.CompletedTime + " (" + l.raceName(res.Distance) + ")"})
	}
	rows = append(rows,
		[]string{l.Pace, res.Pace + " " + l.PacePerKm},
		[]string{l.TotalTime400, s.TotalTime()},
	)
	if err := p.table(nil, rows, nil); err != nil {
		return err
	}

	if err := p.println(p.Styles.Label.Render(l.SplitTimes)); err != nil {
		return err
	}
	splits := [][]string{
		{"100m", calc.FormatSecondsShort(s.Split100m)},
		{"200m", calc.FormatSecondsShort(s.Split200m)},
		{"300m", calc.FormatSecondsShort(s.Split300m)},
		{"400m", calc.FormatSecondsShort(s.Split400m)},
	}
	if err := p.table(nil, indent(splits), map[int]bool{1: true}); err != nil {
		return err
	}

	if err := p.println(p.Styles.Label.Render(l.Projections)); err != nil {
		return err
	}
	projections := [][]string{
		{l.Race10K, calc.FormatSecondsLong(s.Time10km)},
		{l.HalfMarathon, calc.FormatSecondsLong(s.TimeHalfMarathon)},
		{l.Marathon, calc.FormatSecondsLong(s.TimeMarathon)},
	}
	return p.table(nil, indent(projections), map[int]bool{1: true})
}

func indent(rows [][]string) [][]string {
	for i := range rows {
		rows[i][0] = "  " + rows[i][0]
	}
	return rows
}

func (l Labels) raceName(d model.RaceDistance) string {
	switch d {
	case model.Distance10K:
		return l.Race10K
	case model.DistanceHalfMarathon:
		return l.HalfMarathon
	case model.DistanceMarathon:
		return l.Marathon
	default:
		return string(d)
	}
}

// EphHistory prints EpH history newest first with an EpH trend line.
func (p Printer) EphHistory(records []model.EphRecord) error {
	l := p.Labels
	if err := p.title(l.EphTitle + " · " + l.History); err != nil {
		return err
	}
	if len(records) == 0 {
		return p.println(p.Styles.Muted.Render(l.NoHistory))
	}
	headers := []string{l.Index, l.Mode, l.Distance, l.Elevation, l.Input, l.Result, l.Timestamp}
	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		mode, input := l.ModeEph, rec.Time
		if rec.Mode == model.EphModeTime {
			mode, input = l.ModeTime, rec.Eph
		}
		rows = append(rows, []string{strconv.Itoa(i), mode, rec.Distance, rec.Elevation, input, rec.Result, rec.Timestamp})
	}
	if err := p.table(headers, rows, map[int]bool{0: true, 2: true, 3: true}); err != nil {
		return err
	}
	if trend := EphTrend(records); trend != "" {
		return p.println(p.Styles.Muted.Render(l.Trend+": ") + p.Styles.Accent.Render(trend))
	}
	return nil
}

// EphTrend renders a sparkline of the EpH values in records, oldest first,
// smoothed over a short window. Records in time mode are skipped.
func EphTrend(records []model.EphRecord) string {
	values := EphSeries(records)
	if len(values) < 2 {
		return ""
	}
	return Sparkline(MovingAverage(values, trendWindow))
}

// TrackHistory prints track history newest first.
func (p Printer) TrackHistory(records []model.TrackRecord) error {
	l := p.Labels
	if err := p.title(l.TrackTitle + " · " + l.History); err != nil {
		return err
	}
	if len(records) == 0 {
		return p.println(p.Styles.Muted.Render(l.NoHistory))
	}
	headers := []string{l.Index, l.Mode, l.Input, l.Pace, "400m", "100m", "200m", "300m", l.Timestamp}
	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		mode, input := l.ModePaceToTime, rec.Pace
		if rec.Mode == model.TrackModeTimeToPace {
			mode, input = l.ModeTimeToPace, rec.CompletedTime+" "+l.raceName(rec.Distance)
		}
		rows = append(rows, []string{
			strconv.Itoa(i), mode, input, rec.Pace, rec.TotalTime,
			calc.FormatSecondsShort(rec.Split100m),
			calc.FormatSecondsShort(rec.Split200m),
			calc.FormatSecondsShort(rec.Split300m),
			rec.Timestamp,
		})
	}
	return p.table(headers, rows, map[int]bool{0: true, 3: true, 4: true, 5: true, 6: true, 7: true})
}

// Events prints upcoming or past events.
func (p Printer) Events(list []model.RaceEvent, today time.Time, past bool) error {
	l := p.Labels
	heading, empty := l.UpcomingEvents, l.NoEvents
	if past {
		heading, empty = l.PastEvents, l.NoPastEvents
	}
	if err := p.title(heading); err != nil {
		return err
	}
	if len(list) == 0 {
		return p.println(p.Styles.Muted.Render(empty))
	}
	headers := []string{l.Date, l.EventName, l.Type, l.Distance, "", l.ID}
	rows := make([][]string, 0, len(list))
	for _, ev := range list {
		extra := ev.EventNotes
		if !past {
			extra = p.countdown(ev, today)
		}
		rows = append(rows, []string{
			events.FormatDate(ev.Date),
			ev.EventName,
			l.EventTypes[ev.Type],
			l.EventDistance(ev),
			extra,
			ev.ID,
		})
	}
	return p.table(headers, rows, nil)
}

func (p Printer) countdown(ev model.RaceEvent, today time.Time) string {
	days, ok := events.DaysUntil(ev.Date, today)
	switch {
	case !ok:
		return ""
	case days == 0:
		return p.Labels.Today
	case days > 0:
		return fmt.Sprintf(p.Labels.DaysUntil, days)
	default:
		return ""
	}
}

// NextEvent prints the soonest upcoming event.
func (p Printer) NextEvent(ev model.RaceEvent, ok bool, today time.Time) error {
	l := p.Labels
	if !ok {
		return p.println(p.Styles.Muted.Render(l.NoEvents))
	}
	line := fmt.Sprintf("%s: %s · %s · %s",
		l.NextEvent, ev.EventName, events.FormatDate(ev.Date), l.EventDistance(ev))
	if err := p.println(p.Styles.Title.Render(line)); err != nil {
		return err
	}
	if c := p.countdown(ev, today); c != "" {
		return p.println(p.Styles.Accent.Render(c))
	}
	return nil
}

// ArticleFeed prints articles with their content wrapped to width.
func (p Printer) ArticleFeed(list []model.Article, res articles.Result, width int) error {
	l := p.Labels
	heading := l.RunningTips
	switch {
	case res.FromCache:
		heading += " (" + l.FromCache + ")"
	case res.Fetched:
		heading += " (" + fmt.Sprintf(l.NewArticles, res.NewCount) + ")"
	}
	if err := p.title(heading); err != nil {
		return err
	}
	if res.FetchErr != nil {
		if err := p.println(p.Styles.Error.Render(l.FetchFailed)); err != nil {
			return err
		}
	}
	if len(list) == 0 {
		return p.println(p.Styles.Muted.Render(l.NoArticles))
	}
	body := lipgloss.NewStyle().Width(max(width, 20))
	for i, a := range list {
		if i > 0 {
			if err := p.println(); err != nil {
				return err
			}
		}
		if err := p.println(p.Styles.Value.Render(a.Title)); err != nil {
			return err
		}
		if a.CreatedAt != nil && *a.CreatedAt != "" {
			if err := p.println(p.Styles.Muted.Render(*a.CreatedAt)); err != nil {
				return err
			}
		}
		if content := strings.TrimSpace(a.Content); content != "" {
			wrapped := strings.TrimRight(body.Render(content), " \n")
			if err := p.println(wrapped); err != nil {
				return err
			}
		}
	}
	return nil
}

// Dates prints the dates that can be used as an article filter.
func (p Printer) Dates(dates []articles.DateTitle) error {
	if err := p.title(p.Labels.AvailableDates); err != nil {
		return err
	}
	if len(dates) == 0 {
		return p.println(p.Styles.Muted.Render(p.Labels.NoArticles))
	}
	rows := make([][]string, 0, len(dates))
	for _, d := range dates {
		rows = append(rows, []string{d.Date, d.Title})
	}
	return p.table(nil, rows, nil)
}

// Settings prints the current preferences.
func (p Printer) Settings(s settings.Settings) error {
	l := p.Labels
	return p.table(nil, [][]string{
		{l.Language, string(s.Language)},
		{l.Theme, l.ThemeName(s.Theme)},
	}, nil)
}
