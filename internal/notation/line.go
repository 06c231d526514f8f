package notation

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tcoates/lanesync/internal/acronyms"
	"github.com/tcoates/lanesync/internal/timecode"
)

// Line is the typed fact extracted from one expanded notation line.
// Downstream components consume this and never look at the text again.
type Line struct {
	// Reps and Distance come from the leading "N x M" pattern; a bare
	// leading integer is a distance with one rep. A dangling multiplier
	// ("4 x" with nothing after) leaves both zero - an artifact, not an
	// error.
	Reps     int
	Distance int

	// Interval is the per-rep send-off in seconds, present only when
	// HasInterval is set.
	Interval    int
	HasInterval bool

	// IsBreak marks a line starting with the word "break"; it is
	// informational and contributes neither yardage nor duration.
	IsBreak bool

	// Strokes and Styles are the matched tag occurrences, with the
	// synthetic Choice/Swim defaults applied when nothing matched. A
	// combined-style token like "K/S/D/S" yields one occurrence per
	// letter, duplicates included.
	Strokes []string
	Styles  []string
}

// Yardage is the line's total distance contribution.
func (l Line) Yardage() int {
	return l.Reps * l.Distance
}

var (
	breakRe    = regexp.MustCompile(`(?i)^break\b`)
	repsDistRe = regexp.MustCompile(`^(\d+)\s*[xX×]\s*(\d+)`)
	leadIntRe  = regexp.MustCompile(`^(\d+)\s*(.*)$`)
	multTailRe = regexp.MustCompile(`^[xX×](\s|$)`)

	// intervalRe captures the token after "@" or the word "on", cut at
	// the next slash or whitespace ("@ :40/:45" yields ":40").
	intervalRe = regexp.MustCompile(`(?i)(?:@|\bon\b)\s*([^\s/]+)`)

	// combinedRe matches a compact combined-style token: single letters
	// joined by "/", "-", or a space.
	combinedRe = regexp.MustCompile(`\b[A-Za-z](?:[ /-][A-Za-z])+\b`)
)

// Interpret classifies one expanded, trimmed line against the acronym
// table. It never fails: unparseable pieces degrade to zero values.
func Interpret(line string, table acronyms.Table) Line {
	out := Line{}

	if breakRe.MatchString(line) {
		out.IsBreak = true
		return out
	}

	switch {
	case repsDistRe.MatchString(line):
		m := repsDistRe.FindStringSubmatch(line)
		out.Reps, _ = strconv.Atoi(m[1])
		out.Distance, _ = strconv.Atoi(m[2])
	default:
		if m := leadIntRe.FindStringSubmatch(line); m != nil && !multTailRe.MatchString(m[2]) {
			// Bare leading integer: a distance swum once.
			out.Reps = 1
			out.Distance, _ = strconv.Atoi(m[1])
		}
		// Otherwise a dangling multiplier artifact: zero yardage.
	}

	if m := intervalRe.FindStringSubmatch(line); m != nil {
		if seconds, ok := timecode.ParseDuration(m[1]); ok {
			out.Interval = seconds
			out.HasInterval = true
		}
	}

	out.Strokes, out.Styles = matchTags(line, table)
	return out
}

// matchTags resolves stroke/style occurrences. Combined tokens are
// consumed letter-by-letter against the style table first; the rest of
// the line is scanned whole-word against both tables.
func matchTags(line string, table acronyms.Table) (strokes, styles []string) {
	scan := line
	for _, match := range combinedRe.FindAllString(line, -1) {
		matchedAny := false
		for _, letter := range splitCombined(match) {
			if category, ok := table.StyleForLetter(letter); ok {
				styles = append(styles, category)
				matchedAny = true
			}
		}
		if matchedAny {
			scan = strings.Replace(scan, match, " ", 1)
		}
	}

	strokes = append(strokes, table.StrokesIn(scan)...)
	styles = append(styles, table.StylesIn(scan)...)

	if len(strokes) == 0 {
		strokes = []string{acronyms.StrokeChoice}
	}
	if len(styles) == 0 {
		styles = []string{acronyms.StyleSwim}
	}
	return strokes, styles
}

// splitCombined breaks "K/S/D/S" into its letters.
func splitCombined(token string) []string {
	return strings.FieldsFunc(token, func(r rune) bool {
		return r == '/' || r == '-' || r == ' '
	})
}
