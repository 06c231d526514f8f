package engine

import "github.com/tcoates/lanesync/internal/timecode"

// Cursor tracks one timeline's wall-clock position in exact seconds from
// midnight.
//
// The exact value is what all arithmetic runs on; the display
// projections (DisplayClock, Clock12) round up to the minute at the
// presentation edge only. Because rounding never feeds back into
// Advance, it cannot compound across sections, and the sequence of exact
// values is non-decreasing for any practice (durations are never
// negative).
type Cursor struct {
	seconds int
}

// NewCursor creates a cursor at the given seconds-from-midnight start.
func NewCursor(startSeconds int) *Cursor {
	return &Cursor{seconds: startSeconds}
}

// Advance moves the cursor forward. Negative deltas are ignored - no
// section can make a clock run backward.
func (c *Cursor) Advance(seconds int) {
	if seconds > 0 {
		c.seconds += seconds
	}
}

// SyncTo raises the cursor to at least target and returns the idle gap
// that was skipped (zero when already at or past target). Used at
// barrier points where a group waits for the slowest group.
func (c *Cursor) SyncTo(target int) int {
	if target <= c.seconds {
		return 0
	}
	gap := target - c.seconds
	c.seconds = target
	return gap
}

// Seconds returns the exact cursor position.
func (c *Cursor) Seconds() int {
	return c.seconds
}

// DisplayClock returns the cursor rounded up to the next whole minute,
// the value surfaced as a section's end clock.
func (c *Cursor) DisplayClock() int {
	return timecode.CeilToMinute(c.seconds)
}

// Clock12 renders the cursor as a 12-hour clock string. At minute
// granularity the cursor rounds up to the next whole minute, the same
// projection DisplayClock uses; with seconds shown it stays exact.
func (c *Cursor) Clock12(showSeconds bool) string {
	if showSeconds {
		return timecode.FormatClock12(c.seconds, true)
	}
	return timecode.FormatClock12(timecode.CeilToMinute(c.seconds), false)
}
