// Package engine computes the numeric facts of a practice: yardage,
// durations, wall-clock timestamps, and stroke/style statistics. It is
// the single shared semantics behind live preview, document export, and
// saved-record statistics - all three call Compute and nothing else.
//
// ARCHITECTURE:
//
// Pure single pass:
// Compute walks the ordered section list once, carrying a shared
// wall-clock cursor and, after the first group split, one cursor per
// group plus per-group running totals. There is no I/O, no shared
// mutable state between invocations, and no randomness - identical
// inputs produce identical results, and concurrent calls are safe
// because each operates on its own copy.
//
// Exact vs display time:
// Every cursor used for further arithmetic is the exact unrounded value.
// Only values surfaced for display (EndClock, ClockTime) pass through
// the minute ceiling, so rounding error cannot compound across sections.
//
// Barrier synchronization:
// A shared section immediately after a group split first syncs every
// group to the slowest cursor. Idle gaps count toward a group's total
// time but not its actual swim time, and the groups that waited are
// recorded on the section's SyncInfo.
//
// Fail-soft:
// Malformed durations and clocks degrade to zero or defaults, dangling
// multipliers degrade to no effect, and a split with no groups produces
// zero-duration output. The engine always returns a complete, internally
// consistent timeline - the consuming UI must render something on every
// keystroke. Termination is guaranteed by the bounded expansion pass
// count in the notation package, not by any timeout.
package engine
