package calc

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/verte-zerg/runcals/internal/model"
)

// EphResult is the outcome of an EpH calculation. Value is set in eph mode,
// Clock in time mode.
type EphResult struct {
	Mode  model.EphMode
	Value float64
	Clock string
}

// TrackResult is the outcome of a track calculation in either direction.
type TrackResult struct {
	Mode          model.TrackMode
	PaceSeconds   int
	Pace          string
	Distance      model.RaceDistance
	CompletedTime string
	Splits        Splits
}

// ParseAmount parses a non-negative decimal such as a distance or an
// elevation gain.
func ParseAmount(text string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidNumber, text)
	}
	if v < 0 {
		return 0, fmt.Errorf("%w: %q is negative", ErrInvalidNumber, text)
	}
	return v, nil
}

// SolveEph runs the EpH calculator in the given mode. input is the duration
// text in eph mode and the EpH value text in time mode.
func SolveEph(mode model.EphMode, distanceKm, elevationM float64, input string) (EphResult, error) {
	switch mode {
	case model.EphModeEph:
		v, err := EpH(distanceKm, elevationM, input)
		if err != nil {
			return EphResult{}, err
		}
		return EphResult{Mode: mode, Value: v}, nil
	case model.EphModeTime:
		eph, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
		if err != nil {
			return EphResult{}, fmt.Errorf("%w: EpH %q is not a number", ErrInvalidNumber, input)
		}
		clock, err := EstimatedTime(distanceKm, elevationM, eph)
		if err != nil {
			return EphResult{}, err
		}
		return EphResult{Mode: mode, Clock: clock}, nil
	default:
		return EphResult{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

// RecomputeEph re-runs the calculation a history record was created from.
func RecomputeEph(rec model.EphRecord) (EphResult, error) {
	distance, err := ParseAmount(rec.Distance)
	if err != nil {
		return EphResult{}, err
	}
	elevation, err := ParseAmount(rec.Elevation)
	if err != nil {
		return EphResult{}, err
	}
	switch rec.Mode {
	case model.EphModeEph:
		return SolveEph(rec.Mode, distance, elevation, rec.Time)
	case model.EphModeTime:
		return SolveEph(rec.Mode, distance, elevation, rec.Eph)
	default:
		return EphResult{}, fmt.Errorf("%w: %q", ErrInvalidMode, rec.Mode)
	}
}

// PaceToTime computes the track result for a pace string.
func PaceToTime(pace string) (TrackResult, error) {
	seconds, err := ParsePace(pace)
	if err != nil {
		return TrackResult{}, err
	}
	return TrackResult{
		Mode:        model.TrackModePaceToTime,
		PaceSeconds: seconds,
		Pace:        FormatPace(seconds),
		Splits:      TrackSplits(seconds),
	}, nil
}

// TimeToPace computes the even pace for finishing distance in completedTime
// and the track result for that pace.
func TimeToPace(completedTime string, distance model.RaceDistance) (TrackResult, error) {
	km, err := RaceDistanceKm(distance)
	if err != nil {
		return TrackResult{}, err
	}
	seconds, err := PaceFromTime(completedTime, km)
	if err != nil {
		return TrackResult{}, err
	}
	return TrackResult{
		Mode:          model.TrackModeTimeToPace,
		PaceSeconds:   seconds,
		Pace:          FormatPace(seconds),
		Distance:      distance,
		CompletedTime: strings.TrimSpace(completedTime),
		Splits:        TrackSplits(seconds),
	}, nil
}

// RecomputeTrack re-runs the calculation a track history record was created
// from. Records without a mode predate time to pace and are pace to time.
func RecomputeTrack(rec model.TrackRecord) (TrackResult, error) {
	switch rec.Mode {
	case "", model.TrackModePaceToTime:
		return PaceToTime(rec.Pace)
	case model.TrackModeTimeToPace:
		return TimeToPace(rec.CompletedTime, rec.Distance)
	default:
		return TrackResult{}, fmt.Errorf("%w: %q", ErrInvalidMode, rec.Mode)
	}
}

// Record builds the history entry for a track result.
func (r TrackResult) Record(input, timestamp string) model.TrackRecord {
	rec := model.TrackRecord{
		Pace:         strings.TrimSpace(input),
		TotalTime:    r.Splits.TotalTime(),
		TotalSeconds: r.Splits.TotalSeconds,
		Split100m:    r.Splits.Split100m,
		Split200m:    r.Splits.Split200m,
		Split300m:    r.Splits.Split300m,
		Split400m:    r.Splits.Split400m,
		Timestamp:    timestamp,
	}
	if r.Mode == model.TrackModeTimeToPace {
		rec.Pace = r.Pace
		rec.Mode = r.Mode
		rec.Distance = r.Distance
		rec.CompletedTime = r.CompletedTime
	}
	return rec
}
