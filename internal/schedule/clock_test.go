package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClockMinutes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"morning", "6:00 AM", 360},
		{"evening", "5:30 PM", 1050},
		{"noon", "12:00 PM", 720},
		{"midnight", "12:00 AM", 0},
		{"lowercase no space", "11:30pm", 1410},
		{"leading whitespace", "  7:15 AM", 435},
		{"empty", "", 0},
		{"garbage", "soon", 0},
		{"hour out of range", "25:00 AM", 0},
		{"hour zero", "0:30 AM", 0},
		{"minute out of range", "9:75 AM", 0},
		{"missing period", "9:00", 0},
		{"trailing text", "9:00 AM sharp", 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ClockMinutes(tc.in))
		})
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		name string
		in   int
		want string
	}{
		{"morning", 360, "6:00 AM"},
		{"evening", 1050, "5:30 PM"},
		{"noon", 720, "12:00 PM"},
		{"midnight", 0, "12:00 AM"},
		{"single digit minute pads", 605, "10:05 AM"},
		{"wraps past midnight", 1500, "1:00 AM"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, FormatClock(tc.in))
		})
	}
}

func TestFormatClockRoundTrips(t *testing.T) {
	for mins := 0; mins < 1440; mins += 5 {
		assert.Equal(t, mins, ClockMinutes(FormatClock(mins)), "minutes %d", mins)
	}
}

func TestDurationMinutes(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want int
	}{
		{"plain", "60 min", 60},
		{"no suffix", "45", 45},
		{"zero is respected", "0 min", 0},
		{"free text default", "an hour", 60},
		{"empty default", "", 60},
		{"leading whitespace", "  90 minutes", 90},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DurationMinutes(tc.in))
		})
	}
}
