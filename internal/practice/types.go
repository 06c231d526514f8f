package practice

// SectionKind tags the Section union.
type SectionKind string

const (
	// KindSwim is an authored swim set with notation text.
	KindSwim SectionKind = "swim"
	// KindBreak is a timed pause; its text is a duration token.
	KindBreak SectionKind = "break"
	// KindGroupSplit runs independently-timed content per training group.
	KindGroupSplit SectionKind = "group-split"
)

// GroupID keys per-group accumulator maps. A distinct type so group-name
// strings cannot be confused with other string keys.
type GroupID string

// Section is one ordered unit of a practice. Kind selects the variant:
// swim and break sections carry RawText, group-split sections carry
// Groups. All remaining fields are derived by the engine.
type Section struct {
	Kind    SectionKind `yaml:"kind" json:"kind"`
	Title   string      `yaml:"title" json:"title"`
	RawText string      `yaml:"text,omitempty" json:"text,omitempty"`
	Groups  []Group     `yaml:"groups,omitempty" json:"groups,omitempty"`

	// Derived for swim/break sections. A group-split section gets its
	// DurationSeconds from the slowest group; its Yardage stays zero
	// because the per-group yardages do not sum to one number.
	Yardage         int `yaml:"-" json:"yardage"`
	DurationSeconds int `yaml:"-" json:"duration_seconds"`

	// EndClock is the display clock after this section, rounded up to the
	// minute. EndCursorSeconds is the exact value the simulation carried
	// forward; it is what the monotonicity invariant is stated over.
	EndClock         int `yaml:"-" json:"end_clock"`
	EndCursorSeconds int `yaml:"-" json:"-"`

	// Derived for group-split sections only.
	PacingGroup        string `yaml:"-" json:"pacing_group,omitempty"`
	DivergenceSeconds  int    `yaml:"-" json:"divergence_seconds,omitempty"`
	LongestTimeSeconds int    `yaml:"-" json:"longest_time_seconds,omitempty"`

	// Sync is attached to the first shared section after a group split
	// when at least one group had to idle at the barrier.
	Sync *SyncInfo `yaml:"-" json:"sync,omitempty"`
}

// Group is a named parallel lane inside a group-split section. Its
// sections are restricted to swim kind.
type Group struct {
	Name     string    `yaml:"name" json:"name"`
	Sections []Section `yaml:"sections" json:"sections"`

	TotalYardage         int    `yaml:"-" json:"total_yardage"`
	TotalDurationSeconds int    `yaml:"-" json:"total_duration_seconds"`
	ClockTime            string `yaml:"-" json:"clock_time,omitempty"`
	CursorSeconds        int    `yaml:"-" json:"-"`
}

// SyncInfo records a barrier sync: which groups idled and until what
// wall-clock time, so wait time can be folded into totals and surfaced
// to the author.
type SyncInfo struct {
	SyncedFromClock int      `json:"synced_from_clock"`
	GroupsWaiting   []string `json:"groups_waiting"` // sorted for determinism
}

// Totals is the single running total for a practice without group splits.
type Totals struct {
	Yardage     int `json:"yardage"`
	TimeSeconds int `json:"time_seconds"`
}

// GroupTotals is one group's running total. ActualSwimSeconds excludes
// idle time spent waiting at barriers; TimeSeconds includes it.
type GroupTotals struct {
	Yardage           int `json:"yardage"`
	TimeSeconds       int `json:"time_seconds"`
	ActualSwimSeconds int `json:"actual_swim_seconds"`
}

// Stats accumulates yardage per stroke and style category. Values are
// fractional because a line's yardage is split evenly across every
// matched tag occurrence.
type Stats struct {
	Strokes map[string]float64 `json:"strokes"`
	Styles  map[string]float64 `json:"styles"`
}

// NewStats returns an empty Stats with both maps allocated.
func NewStats() *Stats {
	return &Stats{
		Strokes: make(map[string]float64),
		Styles:  make(map[string]float64),
	}
}

// Document is the authored input: the section tree plus a 24-hour start
// clock ("HH:MM", optionally ":SS"; empty means the 06:00 default).
type Document struct {
	Title      string    `yaml:"title" json:"title"`
	StartClock string    `yaml:"start" json:"start"`
	Sections   []Section `yaml:"sections" json:"sections"`
}

// Result is what every caller receives: the section list with derived
// fields filled, totals (single or per-group, never both), and stroke and
// style statistics.
type Result struct {
	Sections          []Section
	StartClockSeconds int
	ElapsedSeconds    int

	// Totals is set when the practice has no group splits; GroupTotals
	// when it has at least one.
	Totals      *Totals
	GroupTotals map[GroupID]GroupTotals

	// Stats counts every line exactly once. GroupStats is additionally
	// populated when splits exist: shared sections count into every
	// group, split sub-sections only into their own.
	Stats      *Stats
	GroupStats map[GroupID]*Stats
}
