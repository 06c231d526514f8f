// Package timecode converts between clock-like notation strings and
// integer seconds.
//
// Two distinct quantities share the same surface syntax:
//   - Durations: ":40", "1:30", "1:05:00", or a bare integer. Elapsed seconds.
//   - Clocks: "6:00", "14:30", optionally with ":SS". Seconds from midnight.
//
// Parsing is fail-soft by construction: a malformed duration reports
// "not present" rather than an error, and a malformed clock degrades to
// midnight. Practice authors type these tokens live, so every caller must
// get a usable number on every keystroke.
package timecode

import (
	"fmt"
	"strconv"
	"strings"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400
)

// DefaultStartClock is the wall-clock start assumed when a practice does
// not specify one. Morning swim practice, naturally.
const DefaultStartClock = "06:00"

// ParseDuration converts a duration token to seconds.
//
// Accepted forms: ":SS" (seconds only), "MM:SS", "HH:MM:SS", or a bare
// non-negative integer (seconds). The second return value is false for
// anything else - callers treat that as "no interval present", never as
// an error.
func ParseDuration(token string) (int, bool) {
	token = strings.TrimSpace(token)
	if token == "" {
		return 0, false
	}

	// Bare integer: plain seconds.
	if n, err := strconv.Atoi(token); err == nil {
		if n < 0 {
			return 0, false
		}
		return n, true
	}

	// ":SS" - seconds with an empty minutes field.
	if strings.HasPrefix(token, ":") {
		n, ok := parseField(token[1:])
		if !ok {
			return 0, false
		}
		return n, true
	}

	parts := strings.Split(token, ":")
	switch len(parts) {
	case 2:
		m, okM := parseField(parts[0])
		s, okS := parseField(parts[1])
		if !okM || !okS {
			return 0, false
		}
		return m*secondsPerMinute + s, true
	case 3:
		h, okH := parseField(parts[0])
		m, okM := parseField(parts[1])
		s, okS := parseField(parts[2])
		if !okH || !okM || !okS {
			return 0, false
		}
		return h*secondsPerHour + m*secondsPerMinute + s, true
	}
	return 0, false
}

// ParseClock converts a 24-hour clock token to seconds from midnight.
//
// Accepted forms: "H:MM", "HH:MM", optionally with a ":SS" tail. The hour
// is clamped to [0,23] and minute/second to [0,59]. Malformed input yields
// 0 (midnight) - this never fails.
func ParseClock(token string) int {
	parts := strings.Split(strings.TrimSpace(token), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0
	}

	h, okH := parseField(parts[0])
	m, okM := parseField(parts[1])
	if !okH || !okM {
		return 0
	}
	s := 0
	if len(parts) == 3 {
		var okS bool
		s, okS = parseField(parts[2])
		if !okS {
			return 0
		}
	}

	return clamp(h, 0, 23)*secondsPerHour +
		clamp(m, 0, 59)*secondsPerMinute +
		clamp(s, 0, 59)
}

// ParseClockDefault is ParseClock with DefaultStartClock substituted for
// the empty string.
func ParseClockDefault(token string) int {
	if strings.TrimSpace(token) == "" {
		return ParseClock(DefaultStartClock)
	}
	return ParseClock(token)
}

// FormatDuration renders seconds as "M:SS", or "H:MM:SS" at one hour and
// beyond. Negative input renders as zero.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	if seconds >= secondsPerHour {
		return fmt.Sprintf("%d:%02d:%02d",
			seconds/secondsPerHour,
			seconds%secondsPerHour/secondsPerMinute,
			seconds%secondsPerMinute)
	}
	return fmt.Sprintf("%d:%02d", seconds/secondsPerMinute, seconds%secondsPerMinute)
}

// FormatClock12 renders seconds-from-midnight as a 12-hour clock string,
// "H:MM AM" or "H:MM:SS AM" when showSeconds is set. Values outside one
// day wrap modulo 86400, so a simulation that runs past midnight still
// displays a sane clock.
func FormatClock12(secondsFromMidnight int, showSeconds bool) string {
	sec := ((secondsFromMidnight % secondsPerDay) + secondsPerDay) % secondsPerDay

	h := sec / secondsPerHour
	m := sec % secondsPerHour / secondsPerMinute
	s := sec % secondsPerMinute

	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	h12 := h % 12
	if h12 == 0 {
		h12 = 12
	}

	if showSeconds {
		return fmt.Sprintf("%d:%02d:%02d %s", h12, m, s, period)
	}
	return fmt.Sprintf("%d:%02d %s", h12, m, period)
}

// CeilToMinute rounds seconds up to the next whole minute unless already
// exact. Display only: the simulator's accumulating cursor never passes
// through here, so rounding cannot compound across sections.
func CeilToMinute(seconds int) int {
	if seconds <= 0 {
		return 0
	}
	if seconds%secondsPerMinute == 0 {
		return seconds
	}
	return (seconds/secondsPerMinute + 1) * secondsPerMinute
}

// parseField parses one non-negative numeric clock field ("05", "130").
func parseField(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
