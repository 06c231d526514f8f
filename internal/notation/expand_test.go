package notation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpand_Plain tests passthrough of plain lines with trimming.
func TestExpand_Plain(t *testing.T) {
	got := Expand("  4x100 Free @ 1:30  \n\n200 easy\n")
	assert.Equal(t, []string{"4x100 Free @ 1:30", "200 easy"}, got)
}

// TestExpand_BraceForm tests N x { ... } inlining.
func TestExpand_BraceForm(t *testing.T) {
	got := Expand("3 x {\n100 Free @ 1:30\n50 kick\n}")
	assert.Equal(t, []string{
		"100 Free @ 1:30", "50 kick",
		"100 Free @ 1:30", "50 kick",
		"100 Free @ 1:30", "50 kick",
	}, got)
}

// TestExpand_BraceForm_CaseAndSymbol tests X and the multiplication sign.
func TestExpand_BraceForm_CaseAndSymbol(t *testing.T) {
	assert.Len(t, Expand("2 X { 50 fly }"), 2)
	assert.Len(t, Expand("2 × { 50 fly }"), 2)
	assert.Len(t, Expand("2x{ 50 fly }"), 2)
}

// TestExpand_NestedBraces tests innermost-first nesting.
func TestExpand_NestedBraces(t *testing.T) {
	got := Expand("2 x {\n3 x {\n50 Free\n}\n100 easy\n}")
	require.Len(t, got, 8)
	assert.Equal(t, "50 Free", got[0])
	assert.Equal(t, "100 easy", got[3])
	assert.Equal(t, "50 Free", got[4])
	assert.Equal(t, "100 easy", got[7])
}

// TestExpand_PathologicalNesting tests the bounded pass count: deeply
// nested and unbalanced input terminates and keeps leftovers literal.
func TestExpand_PathologicalNesting(t *testing.T) {
	// Well-formed but deeper than MaxExpandPasses.
	deep := strings.Repeat("2 x {\n", 15) + "25 Free\n" + strings.Repeat("}\n", 15)
	got := Expand(deep)
	assert.NotEmpty(t, got)

	// Unbalanced braces never match and never hang.
	got = Expand("10 x { 10 x { 10 x {")
	assert.Equal(t, []string{"10 x { 10 x { 10 x {"}, got)
}

// TestExpand_IndentForm tests the multiplier-line form.
func TestExpand_IndentForm(t *testing.T) {
	got := Expand("4 x\n  100 Free @ 1:30\n  50 kick\n200 easy")
	require.Len(t, got, 9)
	assert.Equal(t, "100 Free @ 1:30", got[0])
	assert.Equal(t, "50 kick", got[1])
	assert.Equal(t, "100 Free @ 1:30", got[6])
	assert.Equal(t, "200 easy", got[8])
}

// TestExpand_IndentForm_Nested tests a multiplier inside a deeper block.
func TestExpand_IndentForm_Nested(t *testing.T) {
	got := Expand("2 x\n  2 x\n    50 Free\n  100 easy")
	// Inner block doubles to two 50s, outer doubles (2x50 + 100) twice.
	assert.Equal(t, []string{
		"50 Free", "50 Free", "100 easy",
		"50 Free", "50 Free", "100 easy",
	}, got)
}

// TestExpand_DanglingMultiplier tests that a multiplier with no indented
// followers disappears with no effect.
func TestExpand_DanglingMultiplier(t *testing.T) {
	got := Expand("4 x\n200 easy")
	assert.Equal(t, []string{"200 easy"}, got)

	got = Expand("4 x")
	assert.Empty(t, got)
}

// TestExpand_BlankLineEndsBlock tests that a blank line terminates an
// indentation block.
func TestExpand_BlankLineEndsBlock(t *testing.T) {
	got := Expand("2 x\n  50 Free\n\n  100 easy")
	assert.Equal(t, []string{"50 Free", "50 Free", "100 easy"}, got)
}

// TestExpand_ZeroCount tests a zero multiplier erases its block.
func TestExpand_ZeroCount(t *testing.T) {
	assert.Empty(t, Expand("0 x { 100 Free }"))
	assert.Empty(t, Expand("0 x\n  100 Free"))
}
