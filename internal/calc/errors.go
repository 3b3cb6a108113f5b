// Package calc implements the pace, time and EpH arithmetic.
package calc

import "errors"

var (
	// ErrInvalidFormat reports a duration string that does not match H, H:MM or H:MM:SS.
	ErrInvalidFormat = errors.New("invalid time format, use hh:mm:ss or hh:mm")
	// ErrInvalidTime reports a duration that is not greater than zero.
	ErrInvalidTime = errors.New("time must be greater than 0")
	// ErrInvalidEph reports an EpH divisor that is not greater than zero.
	ErrInvalidEph = errors.New("EpH must be greater than 0")
	// ErrInvalidPaceFormat reports a pace string that is malformed or out of range.
	ErrInvalidPaceFormat = errors.New("invalid pace format, use M:SS (e.g. 4:30) or M (e.g. 7)")
	// ErrInvalidDistance reports an unknown race distance or a non-positive distance.
	ErrInvalidDistance = errors.New("invalid distance")
	// ErrInvalidMode reports a history record with an unknown calculation mode.
	ErrInvalidMode = errors.New("invalid calculation mode")
	// ErrInvalidNumber reports a numeric field that could not be parsed.
	ErrInvalidNumber = errors.New("please enter valid values")
)
