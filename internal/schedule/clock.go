package schedule

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// clockPattern accepts 12-hour wall-clock strings such as "6:00 AM" or
// "11:30pm". The hour range is validated separately so "25:00 AM" falls
// through to zero like every other malformed value.
var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})\s*([AaPp][Mm])$`)

// ClockMinutes converts a 12-hour time string to minutes since midnight.
// Malformed input parses to 0 rather than an error: a bad content-store
// value must degrade the view, never fail a page render.
func ClockMinutes(raw string) int {
	m := clockPattern.FindStringSubmatch(strings.TrimSpace(raw))
	if m == nil {
		return 0
	}

	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	if hour < 1 || hour > 12 || minute > 59 {
		return 0
	}

	period := strings.ToUpper(m[3])
	if period == "PM" && hour != 12 {
		hour += 12
	}
	if period == "AM" && hour == 12 {
		hour = 0
	}

	return hour*60 + minute
}

// FormatClock renders minutes since midnight back to a 12-hour display
// string. Values past midnight wrap on the 24-hour day.
func FormatClock(mins int) string {
	hour := (mins / 60) % 24
	minute := mins % 60

	period := "AM"
	if hour >= 12 {
		period = "PM"
	}

	display := hour % 12
	if display == 0 {
		display = 12
	}

	return fmt.Sprintf("%d:%02d %s", display, minute, period)
}

// DurationMinutes extracts the leading minute count from a free-text
// duration such as "60 min". Strings without a leading integer default
// to 60 minutes.
func DurationMinutes(raw string) int {
	t := strings.TrimSpace(raw)
	i := 0
	for i < len(t) && t[i] >= '0' && t[i] <= '9' {
		i++
	}
	if i == 0 {
		return 60
	}

	n, err := strconv.Atoi(t[:i])
	if err != nil {
		return 60
	}
	return n
}
