package engine

import (
	"sort"

	"github.com/tcoates/lanesync/internal/practice"
	"github.com/tcoates/lanesync/internal/timecode"
)

// Compute runs the full pipeline over a practice document and returns a
// fresh result with every derived field filled. The input document is
// not modified.
func (e *Engine) Compute(doc practice.Document) *practice.Result {
	startClock := doc.StartClock
	if e.startClock != "" {
		startClock = e.startClock
	}
	start := timecode.ParseClockDefault(startClock)
	sections := cloneSections(doc.Sections)

	sim := &simulation{
		engine:      e,
		shared:      NewCursor(start),
		cursors:     make(map[practice.GroupID]*Cursor),
		totals:      practice.Totals{},
		stats:       practice.NewStats(),
		sharedStats: practice.NewStats(),
	}

	for i := range sections {
		sec := &sections[i]
		switch sec.Kind {
		case practice.KindGroupSplit:
			sim.processSplit(sec)
		default:
			// Swim, break, and any unknown kind (degrades to an empty
			// swim set) are shared sections.
			sim.processShared(sec)
		}
	}

	res := &practice.Result{
		Sections:          sections,
		StartClockSeconds: start,
		Stats:             sim.stats,
	}
	if sim.split() {
		res.GroupTotals = sim.groupTotals
		res.GroupStats = sim.groupStats
		res.ElapsedSeconds = sim.maxCursor() - start
	} else {
		totals := sim.totals
		res.Totals = &totals
		res.ElapsedSeconds = sim.shared.Seconds() - start
	}
	return res
}

// simulation carries the clock-simulator state across one pass: the
// shared cursor, and after the first split one cursor and totals entry
// per group, in encounter order.
type simulation struct {
	engine *Engine

	shared     *Cursor
	groupOrder []practice.GroupID
	cursors    map[practice.GroupID]*Cursor

	totals      practice.Totals
	groupTotals map[practice.GroupID]practice.GroupTotals

	stats      *practice.Stats
	groupStats map[practice.GroupID]*practice.Stats

	// Running sum of every shared section seen so far. A group created
	// mid-practice is seeded from these so shared work counts for every
	// group regardless of when its first split appears. Barrier idle
	// time is group-specific and deliberately excluded.
	sharedTotals practice.GroupTotals
	sharedStats  *practice.Stats

	// prevWasSplit arms the barrier sync for the next shared section.
	prevWasSplit bool
}

func (s *simulation) split() bool {
	return len(s.groupOrder) > 0
}

// processShared applies a swim or break section that every group (or the
// single timeline) performs together.
func (s *simulation) processShared(sec *practice.Section) {
	var sum sectionSum
	switch sec.Kind {
	case practice.KindBreak:
		sum.duration = s.engine.aggregateBreak(sec.RawText)
	default:
		sum = s.engine.aggregateSwim(sec.RawText)
	}
	sec.Yardage = sum.yardage
	sec.DurationSeconds = sum.duration

	s.sharedTotals.Yardage += sum.yardage
	s.sharedTotals.TimeSeconds += sum.duration
	s.sharedTotals.ActualSwimSeconds += sum.duration
	addLines(s.sharedStats, sum.lines)

	if s.split() {
		if s.prevWasSplit {
			s.barrierSync(sec)
		}
		for _, gid := range s.groupOrder {
			s.cursors[gid].Advance(sum.duration)
			gt := s.groupTotals[gid]
			gt.Yardage += sum.yardage
			gt.TimeSeconds += sum.duration
			gt.ActualSwimSeconds += sum.duration
			s.groupTotals[gid] = gt
			addLines(s.groupStats[gid], sum.lines)
		}
		// Post-barrier every group cursor is equal; mirror it on the
		// shared cursor for bookkeeping.
		s.shared.SyncTo(s.maxCursor())
	} else {
		s.shared.Advance(sum.duration)
		s.totals.Yardage += sum.yardage
		s.totals.TimeSeconds += sum.duration
	}

	addLines(s.stats, sum.lines)
	sec.EndCursorSeconds = s.shared.Seconds()
	sec.EndClock = s.shared.DisplayClock()
	s.prevWasSplit = false
}

// barrierSync waits every group up to the slowest cursor. The idle gap
// counts toward a waiting group's total time but not its actual swim
// time, and the waiters are recorded on the section.
func (s *simulation) barrierSync(sec *practice.Section) {
	slowest := s.maxCursor()

	var waiting []string
	for _, gid := range s.groupOrder {
		gap := s.cursors[gid].SyncTo(slowest)
		if gap > 0 {
			waiting = append(waiting, string(gid))
			gt := s.groupTotals[gid]
			gt.TimeSeconds += gap
			s.groupTotals[gid] = gt
		}
	}

	if len(waiting) > 0 {
		sort.Strings(waiting)
		sec.Sync = &practice.SyncInfo{
			SyncedFromClock: slowest,
			GroupsWaiting:   waiting,
		}
	}
}

// processSplit runs each group's own sub-sections on its own cursor and
// derives the split's pacing group and divergence.
func (s *simulation) processSplit(sec *practice.Section) {
	// Cursor value new groups start from: the shared cursor, which after
	// a previous split already sits at the slowest group.
	base := s.shared.Seconds()

	first := true
	var maxDur, minDur int
	pacing := ""

	for gi := range sec.Groups {
		group := &sec.Groups[gi]
		gid := practice.GroupID(group.Name)
		s.ensureGroup(gid, base)

		groupYardage, groupDuration := 0, 0
		for si := range group.Sections {
			sub := &group.Sections[si]
			// Group sub-sections are swim-only; anything else degrades
			// to a zero contribution rather than misreading its body.
			var sum sectionSum
			if sub.Kind == practice.KindSwim {
				sum = s.engine.aggregateSwim(sub.RawText)
			}
			sub.Yardage = sum.yardage
			sub.DurationSeconds = sum.duration
			groupYardage += sum.yardage
			groupDuration += sum.duration
			addLines(s.stats, sum.lines)
			addLines(s.groupStats[gid], sum.lines)
		}

		group.TotalYardage = groupYardage
		group.TotalDurationSeconds = groupDuration

		cursor := s.cursors[gid]
		cursor.Advance(groupDuration)
		group.CursorSeconds = cursor.Seconds()
		group.ClockTime = cursor.Clock12(false)

		gt := s.groupTotals[gid]
		gt.Yardage += groupYardage
		gt.TimeSeconds += groupDuration
		gt.ActualSwimSeconds += groupDuration
		s.groupTotals[gid] = gt

		// Ties break by encounter order: first group reaching the max.
		if first || groupDuration > maxDur {
			maxDur = groupDuration
			pacing = group.Name
		}
		if first || groupDuration < minDur {
			minDur = groupDuration
		}
		first = false
	}

	sec.PacingGroup = pacing
	sec.DivergenceSeconds = maxDur - minDur
	sec.LongestTimeSeconds = maxDur
	sec.DurationSeconds = maxDur

	// The shared cursor follows the slowest group so later bookkeeping
	// (and any group first appearing in a later split) starts there.
	s.shared.SyncTo(s.maxCursor())
	sec.EndCursorSeconds = s.shared.Seconds()
	sec.EndClock = s.shared.DisplayClock()
	s.prevWasSplit = true
}

// ensureGroup lazily initializes a group's cursor, totals, and stats the
// first time its name is seen. Totals and stats start from the shared
// sections already performed, so a warmup before the first split counts
// for every group exactly as a shared section after it would.
func (s *simulation) ensureGroup(gid practice.GroupID, startSeconds int) {
	if _, ok := s.cursors[gid]; ok {
		return
	}
	if s.groupTotals == nil {
		s.groupTotals = make(map[practice.GroupID]practice.GroupTotals)
		s.groupStats = make(map[practice.GroupID]*practice.Stats)
	}
	s.groupOrder = append(s.groupOrder, gid)
	s.cursors[gid] = NewCursor(startSeconds)
	s.groupTotals[gid] = s.sharedTotals
	s.groupStats[gid] = cloneStats(s.sharedStats)
}

// maxCursor returns the furthest cursor across all groups, or the shared
// cursor when no split has occurred.
func (s *simulation) maxCursor() int {
	max := s.shared.Seconds()
	for _, gid := range s.groupOrder {
		if c := s.cursors[gid].Seconds(); c > max {
			max = c
		}
	}
	return max
}

// cloneSections deep-copies the authored tree so Compute never mutates
// its input.
func cloneSections(sections []practice.Section) []practice.Section {
	out := make([]practice.Section, len(sections))
	copy(out, sections)
	for i := range out {
		if len(out[i].Groups) == 0 {
			continue
		}
		groups := make([]practice.Group, len(out[i].Groups))
		copy(groups, out[i].Groups)
		for gi := range groups {
			subs := make([]practice.Section, len(groups[gi].Sections))
			copy(subs, groups[gi].Sections)
			groups[gi].Sections = subs
		}
		out[i].Groups = groups
	}
	return out
}
