// Package acronyms models the stroke/style acronym table: an externally
// configured mapping from category names ("Freestyle", "Kick") to the
// text tokens that identify them in practice notation ("free", "fr", "k").
//
// The engine consumes the table as a read-only snapshot for the duration
// of one computation. An empty or partially specified table is valid -
// lines that match nothing fall back to the synthetic Choice stroke and
// Swim style.
package acronyms

import (
	"regexp"
	"sort"
	"strings"
)

// Synthetic categories assigned when a line matches no configured token.
const (
	StrokeChoice = "Choice"
	StyleSwim    = "Swim"
)

// Table maps stroke and style category names to their recognized tokens.
// Token matching is case-insensitive and whole-word. Callers must treat
// a Table as immutable once handed to the engine.
type Table struct {
	Strokes map[string][]string `yaml:"strokes" json:"strokes"`
	Styles  map[string][]string `yaml:"styles" json:"styles"`
}

// Default returns the built-in table used when no configuration is
// supplied. Covers the four competitive strokes plus the usual training
// styles and their single-letter shorthands.
func Default() Table {
	return Table{
		Strokes: map[string][]string{
			"Freestyle":    {"free", "fr", "freestyle"},
			"Backstroke":   {"back", "bk", "backstroke"},
			"Breaststroke": {"breast", "br", "breaststroke"},
			"Butterfly":    {"fly", "butterfly"},
			"IM":           {"im", "medley"},
		},
		Styles: map[string][]string{
			"Kick":  {"kick", "k"},
			"Drill": {"drill", "d"},
			"Pull":  {"pull", "p"},
			"Swim":  {"swim", "s"},
			"Scull": {"scull", "sc"},
		},
	}
}

// wordRe extracts the alphabetic words of a line for whole-word matching.
var wordRe = regexp.MustCompile(`[A-Za-z]+`)

// StrokesIn returns the stroke categories whose tokens appear as whole
// words in line, sorted by category name. Each category appears at most
// once regardless of how many of its tokens match.
func (t Table) StrokesIn(line string) []string {
	return matchCategories(t.Strokes, line)
}

// StylesIn returns the style categories whose tokens appear as whole
// words in line, sorted by category name.
func (t Table) StylesIn(line string) []string {
	return matchCategories(t.Styles, line)
}

// StyleForLetter resolves one letter of a combined-style token ("K/S/D/S")
// against the style table. Categories are consulted in name order so the
// result is deterministic when two categories claim the same letter.
func (t Table) StyleForLetter(letter string) (string, bool) {
	letter = strings.ToLower(letter)
	for _, name := range sortedKeys(t.Styles) {
		for _, token := range t.Styles[name] {
			if strings.ToLower(token) == letter {
				return name, true
			}
		}
	}
	return "", false
}

func matchCategories(categories map[string][]string, line string) []string {
	words := make(map[string]bool)
	for _, w := range wordRe.FindAllString(line, -1) {
		words[strings.ToLower(w)] = true
	}

	var matched []string
	for _, name := range sortedKeys(categories) {
		for _, token := range categories[name] {
			if words[strings.ToLower(token)] {
				matched = append(matched, name)
				break
			}
		}
	}
	return matched
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
