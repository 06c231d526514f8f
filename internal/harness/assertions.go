package harness

import (
	"fmt"
	"math"

	"github.com/tcoates/lanesync/internal/practice"
	"github.com/tcoates/lanesync/internal/timecode"
)

// statTolerance absorbs float accumulation in apportioned yardage.
const statTolerance = 1e-6

// Check evaluates a scenario's expectations against a computed result
// and returns one error per failed assertion. An empty slice means the
// scenario passed.
func Check(sc *Scenario, res *practice.Result) []error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	exp := sc.Expect

	if exp.TotalYardage != nil {
		if res.Totals == nil {
			fail("total_yardage expected but practice has group totals")
		} else if res.Totals.Yardage != *exp.TotalYardage {
			fail("total yardage: got %d, want %d", res.Totals.Yardage, *exp.TotalYardage)
		}
	}
	if exp.TotalSeconds != nil {
		if res.Totals == nil {
			fail("total_seconds expected but practice has group totals")
		} else if res.Totals.TimeSeconds != *exp.TotalSeconds {
			fail("total seconds: got %d, want %d", res.Totals.TimeSeconds, *exp.TotalSeconds)
		}
	}
	if exp.ElapsedSeconds != nil && res.ElapsedSeconds != *exp.ElapsedSeconds {
		fail("elapsed seconds: got %d, want %d", res.ElapsedSeconds, *exp.ElapsedSeconds)
	}

	if len(exp.EndClocks) > 0 {
		if len(exp.EndClocks) != len(res.Sections) {
			fail("end_clocks: %d entries for %d sections", len(exp.EndClocks), len(res.Sections))
		} else {
			for i, want := range exp.EndClocks {
				got := timecode.FormatClock12(res.Sections[i].EndClock, false)
				if got != want {
					fail("section %d end clock: got %s, want %s", i, got, want)
				}
			}
		}
	}

	for name, ge := range exp.Groups {
		totals, ok := res.GroupTotals[practice.GroupID(name)]
		if !ok {
			fail("group %q not present in result", name)
			continue
		}
		if ge.Yardage != nil && totals.Yardage != *ge.Yardage {
			fail("group %q yardage: got %d, want %d", name, totals.Yardage, *ge.Yardage)
		}
		if ge.TimeSeconds != nil && totals.TimeSeconds != *ge.TimeSeconds {
			fail("group %q time: got %d, want %d", name, totals.TimeSeconds, *ge.TimeSeconds)
		}
		if ge.ActualSwimSeconds != nil && totals.ActualSwimSeconds != *ge.ActualSwimSeconds {
			fail("group %q actual swim: got %d, want %d", name, totals.ActualSwimSeconds, *ge.ActualSwimSeconds)
		}
	}

	if exp.PacingGroup != nil || exp.DivergenceSeconds != nil {
		split := firstSplit(res)
		if split == nil {
			fail("pacing/divergence expected but practice has no group split")
		} else {
			if exp.PacingGroup != nil && split.PacingGroup != *exp.PacingGroup {
				fail("pacing group: got %q, want %q", split.PacingGroup, *exp.PacingGroup)
			}
			if exp.DivergenceSeconds != nil && split.DivergenceSeconds != *exp.DivergenceSeconds {
				fail("divergence: got %d, want %d", split.DivergenceSeconds, *exp.DivergenceSeconds)
			}
		}
	}

	checkStats(fail, "stroke", exp.Strokes, res.Stats.Strokes)
	checkStats(fail, "style", exp.Styles, res.Stats.Styles)

	return errs
}

func checkStats(fail func(string, ...any), kind string, want, got map[string]float64) {
	for name, wantYardage := range want {
		gotYardage := got[name]
		if math.Abs(gotYardage-wantYardage) > statTolerance {
			fail("%s %q yardage: got %v, want %v", kind, name, gotYardage, wantYardage)
		}
	}
}

func firstSplit(res *practice.Result) *practice.Section {
	for i := range res.Sections {
		if res.Sections[i].Kind == practice.KindGroupSplit {
			return &res.Sections[i]
		}
	}
	return nil
}
