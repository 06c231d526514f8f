// Package harness executes practice scenarios: YAML files describing an
// authored practice (sections, start clock, optional inline acronym
// table) plus expectations over the computed timeline. Scenarios double
// as conformance tests and as documentation of the engine's semantics.
//
// Golden comparison serializes the full result through the canonical
// JSON form and diffs it against testdata/golden/<name>.golden via
// goldie, so any change to computed numbers or output shape shows up as
// a reviewable diff.
package harness
