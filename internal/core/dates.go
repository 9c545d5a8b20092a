package core

import (
	"fmt"
	"math"
	"time"
)

const (
	ShortDateLayout = "Jan 2"
	LongDateLayout  = "Jan 2, 2006"

	// relativeWindow is the number of days rendered as "N days ago".
	relativeWindow = 7
)

// RelativeDate describes t relative to now by calendar day in now's
// location: "Today", "Yesterday", "N days ago" for up to six days, otherwise
// the short date. Future instants render as the short date.
func RelativeDate(t, now time.Time) string {
	local := t.In(now.Location())
	days := calendarDays(local, now)

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days > 1 && days < relativeWindow:
		return fmt.Sprintf("%d days ago", days)
	default:
		return FormatShortDate(local)
	}
}

// TimeUntil describes the remaining time to deadline in the coarsest
// calendar unit. Deadlines at or before now are "Due today".
//
//	now+2y3m -> "2y 3m left"
//	now+5m   -> "5 months left"
//	now+36h  -> "2 days left"
func TimeUntil(deadline, now time.Time) string {
	deadline = deadline.In(now.Location())
	if !deadline.After(now) {
		return "Due today"
	}

	months := monthsBetween(now, deadline)
	switch {
	case months >= 12:
		return fmt.Sprintf("%dy %dm left", months/12, months%12)
	case months > 1:
		return fmt.Sprintf("%d months left", months)
	case months == 1:
		return "1 month left"
	}

	days := int(math.Ceil(deadline.Sub(now).Hours() / 24))
	if days == 1 {
		return "1 day left"
	}
	return fmt.Sprintf("%d days left", days)
}

func FormatShortDate(t time.Time) string { return t.Format(ShortDateLayout) }
func FormatLongDate(t time.Time) string  { return t.Format(LongDateLayout) }

// calendarDays counts whole calendar days from t to now. Dates are rebuilt
// in UTC so DST shifts do not produce 23 or 25 hour days.
func calendarDays(t, now time.Time) int {
	ty, tm, td := t.Date()
	ny, nm, nd := now.Date()
	a := time.Date(ty, tm, td, 0, 0, 0, 0, time.UTC)
	b := time.Date(ny, nm, nd, 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

// monthsBetween returns the number of whole calendar months from a to b.
func monthsBetween(a, b time.Time) int {
	months := (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
	if months > 0 && addMonths(a, months).After(b) {
		months--
	}
	if months < 0 {
		return 0
	}
	return months
}

// addMonths adds n months clamping the day to the target month's length,
// so Jan 31 + 1 month is Feb 28/29 rather than Mar 3.
func addMonths(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(n), 1, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
	last := first.AddDate(0, 1, -1).Day()
	if d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}
