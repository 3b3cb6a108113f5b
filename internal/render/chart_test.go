package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/runcals/internal/model"
	"github.com/verte-zerg/runcals/internal/settings"
)

const blankCell = '⠀'

func chartCells(t *testing.T, line string) []rune {
	t.Helper()
	_, plot, ok := strings.Cut(line, chartAxisSep)
	require.True(t, ok, "line %q has no axis", line)
	return []rune(plot)
}

func TestChartLines(t *testing.T) {
	lines := Chart{Values: []float64{1, 2, 3}, Width: 3, Height: 2}.Lines()
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], "3.00"+chartAxisSep))
	assert.True(t, strings.HasPrefix(lines[1], "1.00"+chartAxisSep))

	top, bottom := chartCells(t, lines[0]), chartCells(t, lines[1])
	require.Len(t, top, 3)
	require.Len(t, bottom, 3)
	assert.NotEqual(t, blankCell, bottom[0], "first value sits at the bottom")
	assert.NotEqual(t, blankCell, top[2], "last value sits at the top")
	assert.Equal(t, blankCell, top[0])
}

func TestChartAxisPadding(t *testing.T) {
	lines := Chart{
		Values: []float64{9, 12},
		Label:  func(v float64) string { return strings.Repeat("x", int(v)-8) },
		Width:  4,
		Height: 3,
	}.Lines()
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "xxxx"+chartAxisSep))
	assert.True(t, strings.HasPrefix(lines[1], "  xx"+chartAxisSep))
	assert.True(t, strings.HasPrefix(lines[2], "   x"+chartAxisSep))
}

func TestChartEmpty(t *testing.T) {
	assert.Nil(t, Chart{}.Lines())
}

func TestResample(t *testing.T) {
	assert.Equal(t, []float64{0, 5, 10}, resample([]float64{0, 10}, 3))
	assert.Equal(t, []float64{1.5, 3.5}, resample([]float64{1, 2, 3, 4}, 2))
	assert.Equal(t, []float64{7, 7, 7}, resample([]float64{7}, 3))
	assert.Equal(t, []float64{1, 2}, resample([]float64{1, 2}, 2))
}

func TestBoundsWidensFlatSeries(t *testing.T) {
	lo, hi := bounds([]float64{5, 5})
	assert.Equal(t, 4.0, lo)
	assert.Equal(t, 6.0, hi)
}

func TestChartWidthFor(t *testing.T) {
	assert.Equal(t, 73, ChartWidthFor(80, 4))
	assert.Equal(t, minChartWidth, ChartWidthFor(5, 4))
}

func TestSeries(t *testing.T) {
	eph := []model.EphRecord{
		{Mode: model.EphModeEph, Distance: "20", Elevation: "0", Time: "2"},
		{Mode: model.EphModeTime, Distance: "10", Elevation: "0", Eph: "10"},
		{Mode: model.EphModeEph, Distance: "bad", Time: "1"},
		{Mode: model.EphModeEph, Distance: "10", Elevation: "500", Time: "1"},
	}
	assert.Equal(t, []float64{15, 10}, EphSeries(eph))

	track := []model.TrackRecord{
		{Pace: "5:00"},
		{Mode: model.TrackModeTimeToPace, Distance: model.Distance10K, CompletedTime: "0:45:00"},
	}
	assert.Equal(t, []float64{270, 300}, PaceSeries(track))
}

func TestPrinterCharts(t *testing.T) {
	p, buf := newPrinter(settings.English)
	require.NoError(t, p.EphChart([]model.EphRecord{{Mode: model.EphModeEph, Distance: "10", Time: "1"}}, 20))
	assert.Contains(t, buf.String(), "EpH over time")
	assert.Contains(t, buf.String(), "Not enough entries to chart")

	buf.Reset()
	require.NoError(t, p.PaceChart([]model.TrackRecord{{Pace: "5:00"}, {Pace: "4:00"}}, 20))
	out := buf.String()
	assert.Contains(t, out, "Pace over time (min/km)")
	assert.Contains(t, out, "5:00"+chartAxisSep)
	assert.Contains(t, out, "4:00"+chartAxisSep)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 1+defaultChartHeight)
}
