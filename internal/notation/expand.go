package notation

import (
	"regexp"
	"strconv"
	"strings"
)

// MaxExpandPasses bounds the brace-expansion loop. Each pass inlines one
// nesting level innermost-first, so well-formed input of depth N needs N
// passes; anything still matching after the ceiling is left as literal
// text. This bound is the termination guarantee for the whole engine.
const MaxExpandPasses = 10

// braceRe matches an innermost repeat block: a multiplier followed by a
// braced body containing no nested braces.
var braceRe = regexp.MustCompile(`(\d+)\s*[xX×]\s*\{([^{}]*)\}`)

// multiplierOnlyRe matches a line that is nothing but "N x", the header
// of an indentation-form repeat block.
var multiplierOnlyRe = regexp.MustCompile(`^(\s*)(\d+)\s*[xX×]\s*$`)

// Expand rewrites all repeat notation in raw into a flat, ordered list
// of trimmed, non-empty lines.
func Expand(raw string) []string {
	text := expandBraces(raw)
	lines := expandIndent(strings.Split(text, "\n"))

	out := make([]string, 0, len(lines))
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		out = append(out, trimmed)
	}
	return out
}

// expandBraces inlines brace-form repeat blocks, innermost-first, for at
// most MaxExpandPasses passes.
func expandBraces(text string) string {
	for pass := 0; pass < MaxExpandPasses; pass++ {
		replaced := false
		text = braceRe.ReplaceAllStringFunc(text, func(match string) string {
			replaced = true
			sub := braceRe.FindStringSubmatch(match)
			count, err := strconv.Atoi(sub[1])
			if err != nil || count < 0 {
				return ""
			}
			inner := strings.TrimSpace(sub[2])
			copies := make([]string, count)
			for i := range copies {
				copies[i] = inner
			}
			return strings.Join(copies, "\n")
		})
		if !replaced {
			break
		}
	}
	return text
}

// expandIndent applies the indentation-form rule: a multiplier-only line
// claims every following line indented strictly deeper than itself,
// repeats that block N times, and drops itself. Blocks are expanded
// recursively so nested multipliers inside a block resolve too. A
// multiplier with no indented followers is dropped with no effect.
func expandIndent(lines []string) []string {
	out := make([]string, 0, len(lines))

	for i := 0; i < len(lines); i++ {
		m := multiplierOnlyRe.FindStringSubmatch(lines[i])
		if m == nil {
			out = append(out, lines[i])
			continue
		}

		depth := len(m[1])
		count, _ := strconv.Atoi(m[2])

		var block []string
		j := i + 1
		for ; j < len(lines); j++ {
			if strings.TrimSpace(lines[j]) == "" {
				break
			}
			if indentOf(lines[j]) <= depth {
				break
			}
			block = append(block, lines[j])
		}

		if len(block) > 0 {
			block = expandIndent(block)
			for r := 0; r < count; r++ {
				out = append(out, block...)
			}
		}
		i = j - 1
	}

	return out
}

// indentOf counts leading whitespace characters. Tabs count as single
// columns; mixed indentation compares by raw prefix length.
func indentOf(line string) int {
	for i, r := range line {
		if r != ' ' && r != '\t' {
			return i
		}
	}
	return len(line)
}
