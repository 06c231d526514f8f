package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/tcoates/lanesync/internal/acronyms"
	"github.com/tcoates/lanesync/internal/practice"
)

// Scenario defines one conformance scenario: a practice document plus
// expectations over the computed result.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// StartClock is the 24-hour practice start ("HH:MM"); empty means
	// the 06:00 default.
	StartClock string `yaml:"start_clock,omitempty"`

	// Acronyms optionally inlines a table; nil uses the built-in
	// default so scenarios stay self-contained and deterministic.
	Acronyms *acronyms.Table `yaml:"acronyms,omitempty"`

	// Sections is the authored practice tree.
	Sections []practice.Section `yaml:"sections"`

	// Expect holds the assertions evaluated against the result.
	Expect Expectations `yaml:"expect"`
}

// Expectations are subset assertions: only specified fields are checked.
type Expectations struct {
	TotalYardage *int `yaml:"total_yardage,omitempty"`
	TotalSeconds *int `yaml:"total_seconds,omitempty"`

	// ElapsedSeconds checks the overall elapsed time, meaningful with
	// or without group splits.
	ElapsedSeconds *int `yaml:"elapsed_seconds,omitempty"`

	// EndClocks checks each section's display end clock, formatted
	// 12-hour ("6:06 AM"). Length must equal the section count.
	EndClocks []string `yaml:"end_clocks,omitempty"`

	// Groups checks per-group totals by name.
	Groups map[string]GroupExpect `yaml:"groups,omitempty"`

	// PacingGroup and DivergenceSeconds check the first group-split
	// section in the practice.
	PacingGroup       *string `yaml:"pacing_group,omitempty"`
	DivergenceSeconds *int    `yaml:"divergence_seconds,omitempty"`

	// Strokes and Styles check individual stat map entries.
	Strokes map[string]float64 `yaml:"strokes,omitempty"`
	Styles  map[string]float64 `yaml:"styles,omitempty"`
}

// GroupExpect checks one group's totals; nil fields are skipped.
type GroupExpect struct {
	Yardage           *int `yaml:"yardage,omitempty"`
	TimeSeconds       *int `yaml:"time_seconds,omitempty"`
	ActualSwimSeconds *int `yaml:"actual_swim_seconds,omitempty"`
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario %s: %w", path, err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario %s: %w", path, err)
	}

	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	if len(sc.Sections) == 0 {
		return nil, fmt.Errorf("scenario %s: no sections", path)
	}
	return &sc, nil
}

// LoadScenarios reads every *.yaml scenario under dir, sorted by file
// name for deterministic test order.
func LoadScenarios(dir string) ([]*Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading scenario dir %s: %w", dir, err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(paths)

	scenarios := make([]*Scenario, 0, len(paths))
	for _, path := range paths {
		sc, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, sc)
	}
	return scenarios, nil
}
