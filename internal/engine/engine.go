package engine

import (
	"github.com/tcoates/lanesync/internal/acronyms"
)

// DefaultFallbackPacePer100 is the assumed pace, in seconds per 100
// units, used to estimate a line's duration when the author omitted an
// interval. 1:30 per 100 is a policy choice inherited from deck
// convention, not a derived number - override it with WithFallbackPace.
const DefaultFallbackPacePer100 = 90

// Engine computes derived practice facts against one acronym table
// snapshot. It holds no mutable state: a single Engine may serve
// concurrent Compute calls.
type Engine struct {
	table        acronyms.Table
	fallbackPace int
	startClock   string
}

// Option configures an Engine.
type Option func(*Engine)

// WithFallbackPace overrides the assumed seconds-per-100 pace used when
// a line has no interval.
func WithFallbackPace(secondsPer100 int) Option {
	return func(e *Engine) {
		if secondsPer100 > 0 {
			e.fallbackPace = secondsPer100
		}
	}
}

// WithStartClock overrides the practice document's start clock
// ("HH:MM", optional ":SS"). Useful when the same written practice runs
// at a different pool time.
func WithStartClock(clock string) Option {
	return func(e *Engine) {
		e.startClock = clock
	}
}

// New creates an Engine over the given acronym table. The table is
// treated as a read-only snapshot; callers must not mutate it while a
// computation is in flight.
func New(table acronyms.Table, opts ...Option) *Engine {
	e := &Engine{
		table:        table,
		fallbackPace: DefaultFallbackPacePer100,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// FallbackPace returns the configured seconds-per-100 fallback pace.
func (e *Engine) FallbackPace() int {
	return e.fallbackPace
}
