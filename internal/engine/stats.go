package engine

import (
	"github.com/tcoates/lanesync/internal/notation"
	"github.com/tcoates/lanesync/internal/practice"
)

// addLines folds a section's interpreted lines into a stats accumulator.
func addLines(stats *practice.Stats, lines []notation.Line) {
	if stats == nil {
		return
	}
	for _, line := range lines {
		addLine(stats, line)
	}
}

// addLine apportions one line's yardage across its matched categories:
// the stroke map and the style map each receive the full yardage, split
// evenly per matched occurrence. A category matched twice on one line
// (combined tokens like "K/S/D/S") accumulates two shares. Even
// splitting is a deliberate simplifying policy, not a measurement.
func addLine(stats *practice.Stats, line notation.Line) {
	if line.IsBreak {
		return
	}
	yardage := float64(line.Yardage())
	if yardage == 0 {
		return
	}
	apportion(stats.Strokes, line.Strokes, yardage)
	apportion(stats.Styles, line.Styles, yardage)
}

// cloneStats copies an accumulator so additions to the copy never leak
// back into the source.
func cloneStats(src *practice.Stats) *practice.Stats {
	dst := practice.NewStats()
	for name, yd := range src.Strokes {
		dst.Strokes[name] = yd
	}
	for name, yd := range src.Styles {
		dst.Styles[name] = yd
	}
	return dst
}

func apportion(into map[string]float64, categories []string, yardage float64) {
	if len(categories) == 0 {
		return
	}
	share := yardage / float64(len(categories))
	for _, name := range categories {
		into[name] += share
	}
}
