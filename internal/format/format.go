// Package format provides display formatting helpers shared by the screen
// controllers and terminal renderers.
package format

import (
	"fmt"
	"time"
)

// Duration renders a practice duration in seconds as "Xm Ys" (or "Ys" under
// a minute). A nil or zero duration renders as "N/A": the backend omits the
// field entirely when no timer ran, and a zero-second practice is not a
// meaningful measurement.
func Duration(seconds *int) string {
	if seconds == nil || *seconds == 0 {
		return "N/A"
	}
	s := *seconds
	if s < 60 {
		return fmt.Sprintf("%ds", s)
	}
	return fmt.Sprintf("%dm %ds", s/60, s%60)
}

// RelativeTime renders how long ago t was relative to now: minutes under an
// hour, hours under a day, days under a week, then an absolute date.
func RelativeTime(t, now time.Time) string {
	elapsed := now.Sub(t)
	switch {
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	default:
		return t.Format("Jan 2, 2006")
	}
}
