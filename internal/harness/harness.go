package harness

import (
	"github.com/tcoates/lanesync/internal/acronyms"
	"github.com/tcoates/lanesync/internal/engine"
	"github.com/tcoates/lanesync/internal/practice"
)

// Run computes a scenario's practice and returns the result. The engine
// is built fresh per run - scenarios share nothing.
func Run(sc *Scenario) *practice.Result {
	table := acronyms.Default()
	if sc.Acronyms != nil {
		table = *sc.Acronyms
	}

	e := engine.New(table)
	return e.Compute(practice.Document{
		Title:      sc.Name,
		StartClock: sc.StartClock,
		Sections:   sc.Sections,
	})
}
