package practice

// CanonicalJSON serializes the result through MarshalCanonical. Identical
// inputs produce byte-identical output.
func (r *Result) CanonicalJSON() ([]byte, error) {
	return MarshalCanonical(r.canonicalMap())
}

func (r *Result) canonicalMap() map[string]any {
	sections := make([]any, len(r.Sections))
	for i := range r.Sections {
		sections[i] = sectionMap(&r.Sections[i])
	}

	m := map[string]any{
		"start_clock_seconds": r.StartClockSeconds,
		"elapsed_seconds":     r.ElapsedSeconds,
		"sections":            sections,
	}

	if r.Totals != nil {
		m["totals"] = map[string]any{
			"yardage":      r.Totals.Yardage,
			"time_seconds": r.Totals.TimeSeconds,
		}
	}
	if len(r.GroupTotals) > 0 {
		gt := make(map[string]any, len(r.GroupTotals))
		for gid, totals := range r.GroupTotals {
			gt[string(gid)] = map[string]any{
				"yardage":             totals.Yardage,
				"time_seconds":        totals.TimeSeconds,
				"actual_swim_seconds": totals.ActualSwimSeconds,
			}
		}
		m["group_totals"] = gt
	}

	if r.Stats != nil {
		m["stats"] = statsMap(r.Stats)
	}
	if len(r.GroupStats) > 0 {
		gs := make(map[string]any, len(r.GroupStats))
		for gid, stats := range r.GroupStats {
			gs[string(gid)] = statsMap(stats)
		}
		m["group_stats"] = gs
	}

	return m
}

func sectionMap(s *Section) map[string]any {
	m := map[string]any{
		"kind":             string(s.Kind),
		"title":            s.Title,
		"yardage":          s.Yardage,
		"duration_seconds": s.DurationSeconds,
		"end_clock":        s.EndClock,
	}

	if s.Kind == KindGroupSplit {
		groups := make([]any, len(s.Groups))
		for i := range s.Groups {
			groups[i] = groupMap(&s.Groups[i])
		}
		m["groups"] = groups
		m["pacing_group"] = s.PacingGroup
		m["divergence_seconds"] = s.DivergenceSeconds
		m["longest_time_seconds"] = s.LongestTimeSeconds
	}

	if s.Sync != nil {
		m["sync"] = map[string]any{
			"synced_from_clock": s.Sync.SyncedFromClock,
			"groups_waiting":    s.Sync.GroupsWaiting,
		}
	}

	return m
}

func groupMap(g *Group) map[string]any {
	sections := make([]any, len(g.Sections))
	for i := range g.Sections {
		sub := &g.Sections[i]
		sections[i] = map[string]any{
			"title":            sub.Title,
			"yardage":          sub.Yardage,
			"duration_seconds": sub.DurationSeconds,
		}
	}
	return map[string]any{
		"name":                   g.Name,
		"sections":               sections,
		"total_yardage":          g.TotalYardage,
		"total_duration_seconds": g.TotalDurationSeconds,
		"clock_time":             g.ClockTime,
	}
}

func statsMap(s *Stats) map[string]any {
	strokes := make(map[string]any, len(s.Strokes))
	for name, yardage := range s.Strokes {
		strokes[name] = yardage
	}
	styles := make(map[string]any, len(s.Styles))
	for name, yardage := range s.Styles {
		styles[name] = yardage
	}
	return map[string]any{"strokes": strokes, "styles": styles}
}
