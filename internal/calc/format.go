package calc

import "fmt"

// FormatMinSec renders minutes and seconds as M:SS.
func FormatMinSec(minutes, seconds int) string {
	return fmt.Sprintf("%d:%02d", minutes, seconds)
}

// FormatSecondsShort renders "Ns" below a minute and M:SS otherwise.
func FormatSecondsShort(seconds int) string {
	if seconds < 60 {
		return fmt.Sprintf("%ds", seconds)
	}
	return FormatMinSec(seconds/60, seconds%60)
}

// FormatSecondsLong renders H:MM:SS from an hour upward and M:SS below.
func FormatSecondsLong(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
	}
	return FormatMinSec(seconds/60, seconds%60)
}
