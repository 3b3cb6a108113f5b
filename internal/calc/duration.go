package calc

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// maxClockHours keeps the total seconds of a clock string within int.
const maxClockHours = (math.MaxInt - 3599) / 3600

var clockPattern = regexp.MustCompile(`^(\d+)(?::(\d{1,2}))?(?::(\d{1,2}))?$`)

// ParseDuration converts H, H:MM or H:MM:SS into decimal hours.
func ParseDuration(text string) (float64, error) {
	total, err := parseClockSeconds(text)
	if err != nil {
		return 0, err
	}
	return float64(total) / 3600, nil
}

// parseClockSeconds returns the whole seconds encoded by a clock string.
func parseClockSeconds(text string) (int, error) {
	match := clockPattern.FindStringSubmatch(strings.TrimSpace(text))
	if match == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, text)
	}
	hours, err := strconv.Atoi(match[1])
	if err != nil || hours > maxClockHours {
		return 0, fmt.Errorf("%w: hours out of range", ErrInvalidFormat)
	}
	minutes, err := clockComponent(match[2], "minutes")
	if err != nil {
		return 0, err
	}
	seconds, err := clockComponent(match[3], "seconds")
	if err != nil {
		return 0, err
	}
	return hours*3600 + minutes*60 + seconds, nil
}

func clockComponent(value, name string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidFormat, name, value)
	}
	if n > 59 {
		return 0, fmt.Errorf("%w: %s must be between 0 and 59", ErrInvalidFormat, name)
	}
	return n, nil
}

// FormatClock renders decimal hours as zero-padded HH:MM:SS, rounding to
// the nearest second.
func FormatClock(hours float64) string {
	total := int(math.Round(hours * 3600))
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}
