package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/runcals/internal/model"
)

const maxPaceMinutes = 60

// ParsePace converts "M:SS" or "M" into seconds per kilometre.
func ParsePace(text string) (int, error) {
	text = strings.TrimSpace(text)
	minutesText, secondsText, hasSeconds := strings.Cut(text, ":")
	if hasSeconds && strings.Contains(secondsText, ":") {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPaceFormat, text)
	}
	minutes, err := strconv.Atoi(minutesText)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPaceFormat, text)
	}
	if minutes < 0 {
		return 0, fmt.Errorf("%w: minutes cannot be negative", ErrInvalidPaceFormat)
	}
	if minutes > maxPaceMinutes {
		return 0, fmt.Errorf("%w: minutes cannot exceed %d", ErrInvalidPaceFormat, maxPaceMinutes)
	}
	if !hasSeconds {
		return minutes * 60, nil
	}
	seconds, err := strconv.Atoi(secondsText)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPaceFormat, text)
	}
	if seconds < 0 || seconds > 59 {
		return 0, fmt.Errorf("%w: seconds must be between 0 and 59", ErrInvalidPaceFormat)
	}
	return minutes*60 + seconds, nil
}

// FormatPace renders seconds per kilometre as M:SS.
func FormatPace(seconds int) string {
	return FormatMinSec(seconds/60, seconds%60)
}

// PaceFromTime returns the even pace, in seconds per kilometre, that covers
// distanceKm in the given clock time.
func PaceFromTime(completedTime string, distanceKm float64) (int, error) {
	if !(distanceKm > 0) {
		return 0, fmt.Errorf("%w: distance must be greater than 0", ErrInvalidDistance)
	}
	total, err := parseClockSeconds(completedTime)
	if err != nil {
		return 0, err
	}
	if total <= 0 {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidTime, completedTime)
	}
	return int(math.Round(float64(total) / distanceKm)), nil
}

// RaceDistanceKm maps a race distance to kilometres.
func RaceDistanceKm(d model.RaceDistance) (float64, error) {
	switch d {
	case model.Distance10K:
		return 10, nil
	case model.DistanceHalfMarathon:
		return halfMarathonKm, nil
	case model.DistanceMarathon:
		return marathonKm, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidDistance, d)
	}
}
