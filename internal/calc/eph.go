package calc

import "fmt"

// EffortPoints combines distance and climb: 1 km is one point, 100 m of
// elevation gain is one point.
func EffortPoints(distanceKm, elevationM float64) float64 {
	return distanceKm + elevationM/100
}

// EpH returns effort points per hour for a finished effort.
func EpH(distanceKm, elevationM float64, durationText string) (float64, error) {
	hours, err := ParseDuration(durationText)
	if err != nil {
		return 0, err
	}
	if !(hours > 0) {
		return 0, fmt.Errorf("%w: got %q", ErrInvalidTime, durationText)
	}
	return EffortPoints(distanceKm, elevationM) / hours, nil
}

// EstimatedTime returns the HH:MM:SS needed to cover the effort at eph.
func EstimatedTime(distanceKm, elevationM, eph float64) (string, error) {
	if !(eph > 0) {
		return "", fmt.Errorf("%w: got %v", ErrInvalidEph, eph)
	}
	return FormatClock(EffortPoints(distanceKm, elevationM) / eph), nil
}
