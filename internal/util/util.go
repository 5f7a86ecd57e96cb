// Package util formats sizes and durations for messages and logs.
package util

import (
	"fmt"
	"time"
)

var sizeUnits = []string{"KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count with binary units, e.g. 10485760 -> "10.0 MB".
func FormatBytes(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%d B", n)
	}

	value := float64(n) / 1024
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	return fmt.Sprintf("%.1f %s", value, sizeUnits[unit])
}

// FormatDuration renders d rounded to the second with at most two units: "45s", "2m30s", "1h30m".
func FormatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d / time.Hour)
	m := int(d % time.Hour / time.Minute)
	s := int(d % time.Minute / time.Second)

	switch {
	case h > 0:
		return fmt.Sprintf("%dh%dm", h, m)
	case m > 0:
		return fmt.Sprintf("%dm%ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}
