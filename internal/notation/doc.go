// Package notation compiles free-form practice text into typed line
// facts. It is the only place that touches the raw grammar; everything
// downstream consumes the typed Line and never re-parses text.
//
// Two stages:
//
// Expand rewrites repeat-block notation into a flat line sequence. The
// brace form "4 x { ... }" is inlined innermost-first; the indentation
// form (a bare "4 x" line followed by deeper-indented lines) repeats its
// block in place. Expansion is bounded to MaxExpandPasses so malformed or
// self-referential input terminates with leftover text kept literal -
// the engine must never hang on author keystrokes.
//
// Interpret classifies one expanded line: reps, distance, interval,
// break marker, and stroke/style tags resolved against the acronym
// table. Everything fails soft; an unreadable line is simply a line that
// contributes nothing.
package notation
