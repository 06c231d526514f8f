package engine

import (
	"github.com/tcoates/lanesync/internal/notation"
	"github.com/tcoates/lanesync/internal/timecode"
)

// sectionSum is the aggregate of one swim section's expanded lines.
type sectionSum struct {
	yardage  int
	duration int
	lines    []notation.Line
}

// aggregateSwim expands a swim section's text and sums yardage and
// duration per the interval-first policy: a line with a send-off costs
// reps x interval; without one it costs the fallback-pace estimate.
// Break-marker lines contribute to neither but are kept for stats
// consumers to skip consistently.
func (e *Engine) aggregateSwim(rawText string) sectionSum {
	var sum sectionSum
	for _, text := range notation.Expand(rawText) {
		line := notation.Interpret(text, e.table)
		sum.lines = append(sum.lines, line)
		if line.IsBreak {
			continue
		}

		yardage := line.Yardage()
		sum.yardage += yardage
		if line.HasInterval {
			sum.duration += line.Reps * line.Interval
		} else {
			sum.duration += fallbackDuration(yardage, e.fallbackPace)
		}
	}
	return sum
}

// aggregateBreak reads a break section's duration from its text; a
// malformed token degrades to zero.
func (e *Engine) aggregateBreak(rawText string) int {
	seconds, ok := timecode.ParseDuration(rawText)
	if !ok {
		return 0
	}
	return seconds
}

// fallbackDuration estimates swim time at pacePer100 seconds per 100
// units, rounded up to a whole second.
func fallbackDuration(yardage, pacePer100 int) int {
	if yardage <= 0 {
		return 0
	}
	return (yardage*pacePer100 + 99) / 100
}
