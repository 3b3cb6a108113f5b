package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSparkline(t *testing.T) {
	assert.Equal(t, "", Sparkline(nil))
	assert.Equal(t, "+++", Sparkline([]float64{4, 4, 4}))
	assert.Equal(t, " @", Sparkline([]float64{1, 2}))
	assert.Equal(t, " *@", Sparkline([]float64{0, 6, 9}))
}

func TestMovingAverage(t *testing.T) {
	assert.Equal(t, []float64{1, 1.5, 2, 3}, MovingAverage([]float64{1, 2, 3, 4}, 3))
	assert.Equal(t, []float64{5, 6}, MovingAverage([]float64{5, 6}, 1))
	assert.Empty(t, MovingAverage(nil, 3))
}
