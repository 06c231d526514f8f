package cli

import (
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/tcoates/lanesync/internal/practice"
	"github.com/tcoates/lanesync/internal/timecode"
)

// renderTimeline writes the human-readable schedule: one line per
// section with its end clock, then totals.
func renderTimeline(w io.Writer, title string, res *practice.Result) {
	if title != "" {
		fmt.Fprintf(w, "%s\n", title)
	}
	fmt.Fprintf(w, "Start %s\n\n", timecode.FormatClock12(res.StartClockSeconds, false))

	for i := range res.Sections {
		sec := &res.Sections[i]
		end := timecode.FormatClock12(sec.EndClock, false)

		if sec.Sync != nil {
			fmt.Fprintf(w, "          %s wait until %s\n",
				strings.Join(sec.Sync.GroupsWaiting, ", "),
				timecode.FormatClock12(sec.Sync.SyncedFromClock, false))
		}

		switch sec.Kind {
		case practice.KindBreak:
			fmt.Fprintf(w, "%-9s %-24s break %s\n",
				end, sec.Title, timecode.FormatDuration(sec.DurationSeconds))
		case practice.KindGroupSplit:
			fmt.Fprintf(w, "%-9s %-24s split, pacing %s (divergence %s)\n",
				end, sec.Title, sec.PacingGroup, timecode.FormatDuration(sec.DivergenceSeconds))
			for gi := range sec.Groups {
				g := &sec.Groups[gi]
				fmt.Fprintf(w, "            %s: %d yd in %s, done %s\n",
					g.Name, g.TotalYardage,
					timecode.FormatDuration(g.TotalDurationSeconds), g.ClockTime)
			}
		default:
			fmt.Fprintf(w, "%-9s %-24s %d yd  %s\n",
				end, sec.Title, sec.Yardage, timecode.FormatDuration(sec.DurationSeconds))
		}
	}

	fmt.Fprintln(w)
	if res.Totals != nil {
		fmt.Fprintf(w, "Total: %d yd in %s\n",
			res.Totals.Yardage, timecode.FormatDuration(res.Totals.TimeSeconds))
	}
	for _, gid := range sortedGroupIDs(res.GroupTotals) {
		gt := res.GroupTotals[gid]
		fmt.Fprintf(w, "Group %s: %d yd, %s total (%s swimming)\n",
			gid, gt.Yardage,
			timecode.FormatDuration(gt.TimeSeconds),
			timecode.FormatDuration(gt.ActualSwimSeconds))
	}
	fmt.Fprintf(w, "Elapsed: %s\n", timecode.FormatDuration(res.ElapsedSeconds))
}

// renderStats writes stroke and style yardage breakdowns, largest first.
func renderStats(w io.Writer, label string, stats *practice.Stats) {
	if label != "" {
		fmt.Fprintf(w, "%s\n", label)
	}
	renderStatMap(w, "Strokes", stats.Strokes)
	renderStatMap(w, "Styles", stats.Styles)
}

func renderStatMap(w io.Writer, header string, yards map[string]float64) {
	fmt.Fprintf(w, "%s:\n", header)
	names := make([]string, 0, len(yards))
	for name := range yards {
		names = append(names, name)
	}
	// Largest yardage first; ties alphabetical.
	sort.Slice(names, func(i, j int) bool {
		if yards[names[i]] != yards[names[j]] {
			return yards[names[i]] > yards[names[j]]
		}
		return names[i] < names[j]
	})
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %s yd\n", name, formatYards(yards[name]))
	}
}

// formatYards renders apportioned yardage: whole numbers plain, the rest
// with two decimals.
func formatYards(f float64) string {
	if f == math.Trunc(f) {
		return strconv.Itoa(int(f))
	}
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func sortedGroupIDs(totals map[practice.GroupID]practice.GroupTotals) []practice.GroupID {
	ids := make([]practice.GroupID, 0, len(totals))
	for gid := range totals {
		ids = append(ids, gid)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
