package services

import (
	"fmt"
	"strings"
)

const metersPerMile = 1609.34

// FormatDistance renders a raw metric distance for display in the requested
// unit system. Any unit string starting with "mi" (case-insensitive) selects
// imperial; everything else renders kilometers. Negative input is undefined.
func FormatDistance(meters float64, unit string) string {
	if strings.HasPrefix(strings.ToLower(unit), "mi") {
		return fmt.Sprintf("%.2f mi", meters/metersPerMile)
	}
	return fmt.Sprintf("%.2f km", meters/1000)
}

// FormatDuration renders a millisecond duration as the coarsest non-zero
// decomposition of hours, minutes and seconds. Milliseconds are truncated,
// not rounded. A zero duration renders as "0s".
func FormatDuration(milliseconds int64) string {
	totalSeconds := milliseconds / 1000
	hours := totalSeconds / 3600
	minutes := (totalSeconds % 3600) / 60
	seconds := totalSeconds % 60

	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm %ds", hours, minutes, seconds)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, seconds)
	default:
		return fmt.Sprintf("%ds", seconds)
	}
}
