package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/runcals/internal/calc"
	"github.com/verte-zerg/runcals/internal/model"
)

const (
	defaultChartHeight = 8
	minChartWidth      = 10
	chartAxisSep       = " │ "
)

// Chart is a braille line chart of one series, oldest value first.
type Chart struct {
	Title  string
	Values []float64
	// Label formats the axis values. Nil prints two decimals.
	Label func(float64) string
	// Width and Height are in terminal cells. Zero picks a size that fits
	// the terminal.
	Width  int
	Height int
}

// ChartWidthFor returns the plot width that fits totalWidth next to an axis
// of axisWidth cells.
func ChartWidthFor(totalWidth, axisWidth int) int {
	return max(totalWidth-axisWidth-runewidth.StringWidth(chartAxisSep), minChartWidth)
}

// Lines renders the chart without a title.
func (c Chart) Lines() []string {
	if len(c.Values) == 0 {
		return nil
	}
	label := c.Label
	if label == nil {
		label = func(v float64) string { return fmt.Sprintf("%.2f", v) }
	}
	height := c.Height
	if height <= 0 {
		height = defaultChartHeight
	}

	lo, hi := bounds(c.Values)
	axis := make([]string, height)
	axis[0] = label(hi)
	if height > 2 {
		axis[height/2] = label((lo + hi) / 2)
	}
	if height > 1 {
		axis[height-1] = label(lo)
	}
	axisWidth := 0
	for _, a := range axis {
		axisWidth = max(axisWidth, runewidth.StringWidth(a))
	}

	width := c.Width
	if width <= 0 {
		width = ChartWidthFor(TerminalWidth(), axisWidth)
	}
	cells := plotCells(resample(c.Values, width), lo, hi, width, height)

	lines := make([]string, 0, height)
	for y, row := range cells {
		var b strings.Builder
		b.WriteString(runewidth.FillLeft(axis[y], axisWidth))
		b.WriteString(chartAxisSep)
		for _, mask := range row {
			b.WriteRune(rune(0x2800 + int(mask)))
		}
		lines = append(lines, b.String())
	}
	return lines
}

// bounds returns the value range, widened when the series is flat.
func bounds(values []float64) (float64, float64) {
	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if hi-lo < 1e-9 {
		lo--
		hi++
	}
	return lo, hi
}

// resample stretches or averages values to exactly n points.
func resample(values []float64, n int) []float64 {
	out := make([]float64, n)
	switch {
	case len(values) == n:
		copy(out, values)
	case len(values) == 1 || n == 1:
		for i := range out {
			out[i] = values[0]
		}
	case len(values) > n:
		for i := range out {
			start := i * len(values) / n
			end := max((i+1)*len(values)/n, start+1)
			var sum float64
			for _, v := range values[start:end] {
				sum += v
			}
			out[i] = sum / float64(end-start)
		}
	default:
		last := len(values) - 1
		for i := range out {
			pos := float64(i) * float64(last) / float64(n-1)
			idx := min(int(pos), last-1)
			frac := pos - float64(idx)
			out[i] = values[idx]*(1-frac) + values[idx+1]*frac
		}
	}
	return out
}

// plotCells draws the line into braille masks. Each cell holds a 2x4 dot
// grid; samples sit on the left dot column and are joined with straight
// segments.
func plotCells(values []float64, lo, hi float64, width, height int) [][]uint8 {
	cells := make([][]uint8, height)
	for y := range cells {
		cells[y] = make([]uint8, width)
	}
	dots := height * 4
	prevX, prevY := -1, -1
	for x, v := range values {
		pos := (v - lo) / (hi - lo)
		y := int(math.Round((1 - pos) * float64(dots-1)))
		y = max(0, min(y, dots-1))
		px := x * 2
		if prevX < 0 {
			setDot(cells, px, y)
		} else {
			line(prevX, prevY, px, y, func(dx, dy int) { setDot(cells, dx, dy) })
		}
		prevX, prevY = px, y
	}
	return cells
}

// line walks a Bresenham segment from (x0, y0) to (x1, y1).
func line(x0, y0, x1, y1 int, plot func(x, y int)) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// brailleDots maps a dot position inside a cell to its bit, indexed by
// [row][column].
var brailleDots = [4][2]uint8{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func setDot(cells [][]uint8, x, y int) {
	cy, cx := y/4, x/2
	if x < 0 || y < 0 || cy >= len(cells) || cx >= len(cells[cy]) {
		return
	}
	cells[cy][cx] |= brailleDots[y%4][x%2]
}

// EphSeries returns the EpH of every eph-mode record, oldest first.
// Records that no longer compute are skipped.
func EphSeries(records []model.EphRecord) []float64 {
	var values []float64
	for i := len(records) - 1; i >= 0; i-- {
		if records[i].Mode != model.EphModeEph {
			continue
		}
		res, err := calc.RecomputeEph(records[i])
		if err != nil {
			continue
		}
		values = append(values, res.Value)
	}
	return values
}

// PaceSeries returns the pace in seconds per km of every record, oldest
// first.
func PaceSeries(records []model.TrackRecord) []float64 {
	var values []float64
	for i := len(records) - 1; i >= 0; i-- {
		res, err := calc.RecomputeTrack(records[i])
		if err != nil {
			continue
		}
		values = append(values, float64(res.PaceSeconds))
	}
	return values
}

func (p Printer) chart(title string, c Chart) error {
	if err := p.title(title); err != nil {
		return err
	}
	if len(c.Values) < 2 {
		return p.println(p.Styles.Muted.Render(p.Labels.NotEnoughData))
	}
	for _, l := range c.Lines() {
		if err := p.println(p.Styles.Accent.Render(l)); err != nil {
			return err
		}
	}
	return nil
}

// EphChart plots EpH across the history.
func (p Printer) EphChart(records []model.EphRecord, width int) error {
	return p.chart(p.Labels.EphChart, Chart{
		Values: EphSeries(records),
		Label:  func(v float64) string { return fmt.Sprintf("%.1f", v) },
		Width:  width,
	})
}

// PaceChart plots the pace of every track calculation.
func (p Printer) PaceChart(records []model.TrackRecord, width int) error {
	return p.chart(p.Labels.PaceChart, Chart{
		Values: PaceSeries(records),
		Label:  func(v float64) string { return calc.FormatPace(int(math.Round(v))) },
		Width:  width,
	})
}
