// Package events stores planned races and training sessions and orders
// them around the current date.
package events

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/verte-zerg/runcals/internal/model"
)

// ErrInvalidEvent reports a draft that cannot be saved.
var ErrInvalidEvent = errors.New("invalid event")

// Draft is an event before an id and creation time are assigned.
type Draft struct {
	EventName      string
	Date           string
	Type           model.EventType
	Distance       model.EventDistance
	CustomDistance string
	EventNotes     string
}

// ParseDate parses a YYYY-MM-DD event date as a UTC calendar day.
func ParseDate(date string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, strings.TrimSpace(date))
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse event date %q: %w", date, err)
	}
	return t, nil
}

func knownType(t model.EventType) bool {
	switch t {
	case model.EventTypeRace, model.EventTypeTraining, model.EventTypeEvent:
		return true
	}
	return false
}

func knownDistance(d model.EventDistance) bool {
	switch d {
	case model.EventDistance5K, model.EventDistance10K, model.EventDistanceHalfMarathon,
		model.EventDistanceMarathon, model.EventDistanceTrailRun, model.EventDistanceOther:
		return true
	}
	return false
}

// NeedsCustomDistance reports whether a draft must carry a free-form distance.
func NeedsCustomDistance(t model.EventType, d model.EventDistance) bool {
	if t == model.EventTypeEvent {
		return false
	}
	return d == model.EventDistanceTrailRun || d == model.EventDistanceOther
}

// Validate checks a draft before it is stored.
func Validate(d Draft) error {
	if strings.TrimSpace(d.EventName) == "" {
		return fmt.Errorf("%w: event name is required", ErrInvalidEvent)
	}
	if _, err := ParseDate(d.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidEvent)
	}
	if !knownType(d.Type) {
		return fmt.Errorf("%w: unknown type %q", ErrInvalidEvent, d.Type)
	}
	if !knownDistance(d.Distance) {
		return fmt.Errorf("%w: unknown distance %q", ErrInvalidEvent, d.Distance)
	}
	if NeedsCustomDistance(d.Type, d.Distance) && strings.TrimSpace(d.CustomDistance) == "" {
		return fmt.Errorf("%w: %s needs a custom distance", ErrInvalidEvent, d.Distance)
	}
	return nil
}
