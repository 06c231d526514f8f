package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tcoates/lanesync/internal/acronyms"
)

// TestAggregateSwim_IntervalFirst tests interval-first duration:
// 3x100 Free @ 1:30 is 300 yards over 3x90 seconds.
func TestAggregateSwim_IntervalFirst(t *testing.T) {
	e := New(acronyms.Default())

	sum := e.aggregateSwim("3x100 Free @ 1:30")
	assert.Equal(t, 300, sum.yardage)
	assert.Equal(t, 270, sum.duration)
}

// TestAggregateSwim_FallbackPace tests the no-interval estimate:
// 400 Free at the assumed 1:30/100 pace is 360 seconds.
func TestAggregateSwim_FallbackPace(t *testing.T) {
	e := New(acronyms.Default())

	sum := e.aggregateSwim("400 Free")
	assert.Equal(t, 400, sum.yardage)
	assert.Equal(t, 360, sum.duration)
}

// TestAggregateSwim_FallbackPaceRoundsUp tests the ceiling on the
// pace estimate.
func TestAggregateSwim_FallbackPaceRoundsUp(t *testing.T) {
	e := New(acronyms.Default())

	// 75 * 90 / 100 = 67.5, rounded up.
	sum := e.aggregateSwim("75 Free")
	assert.Equal(t, 68, sum.duration)
}

// TestAggregateSwim_FallbackPaceOverride tests WithFallbackPace.
func TestAggregateSwim_FallbackPaceOverride(t *testing.T) {
	e := New(acronyms.Default(), WithFallbackPace(60))
	assert.Equal(t, 60, e.FallbackPace())

	sum := e.aggregateSwim("400 Free")
	assert.Equal(t, 240, sum.duration)
}

// TestAggregateSwim_BreakLineExcluded tests that a break-marker line
// inside a swim body contributes neither yardage nor duration.
func TestAggregateSwim_BreakLineExcluded(t *testing.T) {
	e := New(acronyms.Default())

	sum := e.aggregateSwim("200 Free @ 3:00\nBreak 10 seconds\n200 Free @ 3:00")
	assert.Equal(t, 400, sum.yardage)
	assert.Equal(t, 360, sum.duration)
}

// TestAggregateSwim_ExpandedBlocks tests aggregation across a repeat
// block.
func TestAggregateSwim_ExpandedBlocks(t *testing.T) {
	e := New(acronyms.Default())

	sum := e.aggregateSwim("2 x {\n100 Free @ 1:30\n50 kick @ 1:00\n}")
	assert.Equal(t, 300, sum.yardage)
	assert.Equal(t, 300, sum.duration)
}

// TestAggregateSwim_Empty tests degraded inputs.
func TestAggregateSwim_Empty(t *testing.T) {
	e := New(acronyms.Default())

	sum := e.aggregateSwim("")
	assert.Zero(t, sum.yardage)
	assert.Zero(t, sum.duration)

	// A dangling multiplier artifact is not an error and costs nothing.
	sum = e.aggregateSwim("4 x")
	assert.Zero(t, sum.yardage)
	assert.Zero(t, sum.duration)
}

// TestAggregateBreak tests break-section durations.
func TestAggregateBreak(t *testing.T) {
	e := New(acronyms.Default())

	assert.Equal(t, 120, e.aggregateBreak("2:00"))
	assert.Equal(t, 30, e.aggregateBreak(":30"))
	assert.Equal(t, 45, e.aggregateBreak("45"))
	assert.Equal(t, 0, e.aggregateBreak("soon"))
	assert.Equal(t, 0, e.aggregateBreak(""))
}
