package core

import (
	"testing"
	"time"
)

var refNow = time.Date(2023, 11, 21, 16, 0, 0, 0, time.UTC)

func TestRelativeDate(t *testing.T) {
	cases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"same day", time.Date(2023, 11, 21, 8, 0, 0, 0, time.UTC), "Today"},
		{"yesterday late", time.Date(2023, 11, 20, 23, 59, 0, 0, time.UTC), "Yesterday"},
		{"six days", time.Date(2023, 11, 15, 8, 20, 0, 0, time.UTC), "6 days ago"},
		{"seven days", time.Date(2023, 11, 14, 12, 0, 0, 0, time.UTC), "Nov 14"},
		{"long ago", time.Date(2023, 11, 1, 0, 0, 0, 0, time.UTC), "Nov 1"},
		{"future", time.Date(2023, 11, 25, 0, 0, 0, 0, time.UTC), "Nov 25"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := RelativeDate(tc.t, refNow); got != tc.want {
				t.Errorf("RelativeDate = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRelativeDateUsesNowLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*3600)
	now := time.Date(2023, 11, 21, 10, 0, 0, 0, est)
	// 02:00 UTC on the 21st is 21:00 on the 20th in EST.
	ts := time.Date(2023, 11, 21, 2, 0, 0, 0, time.UTC)
	if got := RelativeDate(ts, now); got != "Yesterday" {
		t.Fatalf("RelativeDate = %q, want Yesterday", got)
	}
}

func TestTimeUntil(t *testing.T) {
	cases := []struct {
		name     string
		deadline time.Time
		want     string
	}{
		{"years and months", refNow.AddDate(2, 3, 0), "2y 3m left"},
		{"exact year", refNow.AddDate(1, 0, 0), "1y 0m left"},
		{"months", refNow.AddDate(0, 5, 0), "5 months left"},
		{"one month", refNow.AddDate(0, 1, 0), "1 month left"},
		{"just under a month", time.Date(2023, 12, 20, 16, 0, 0, 0, time.UTC), "29 days left"},
		{"days rounded up", refNow.Add(36 * time.Hour), "2 days left"},
		{"hours", refNow.Add(2 * time.Hour), "1 day left"},
		{"now", refNow, "Due today"},
		{"past", refNow.AddDate(0, 0, -1), "Due today"},
		{"long past", refNow.AddDate(-3, 0, 0), "Due today"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TimeUntil(tc.deadline, refNow); got != tc.want {
				t.Errorf("TimeUntil = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestTimeUntilEndOfMonth(t *testing.T) {
	now := time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC)
	deadline := time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC)
	if got := TimeUntil(deadline, now); got != "1 month left" {
		t.Fatalf("TimeUntil = %q, want 1 month left", got)
	}
}

func TestFormatDates(t *testing.T) {
	d := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	if got := FormatShortDate(d); got != "Jun 1" {
		t.Errorf("FormatShortDate = %q", got)
	}
	if got := FormatLongDate(d); got != "Jun 1, 2025" {
		t.Errorf("FormatLongDate = %q", got)
	}
}
