// Package practice defines the data model shared by every caller of the
// engine: the authored section tree (swim sets, breaks, group splits) and
// the derived numeric facts the engine fills in (yardage, durations, wall
// clocks, barrier-sync records, stroke/style statistics).
//
// DESIGN:
//
// Authored vs derived:
// Only Kind/Title/RawText/Groups are authored; everything else is derived
// and recomputed fresh on every engine call. There is no persisted derived
// state - recomputing from identical inputs is idempotent and
// deterministic, which the canonical JSON serialization makes checkable
// byte for byte.
//
// Section is a tagged union:
// Kind selects the variant (swim, break, group-split) and each variant
// carries only its relevant fields. The engine switches exhaustively on
// Kind - there is no stringly-typed dispatch beyond that single tag.
//
// Exact vs display time:
// Cursor values used for further arithmetic are exact seconds and live in
// unexported-style *Seconds fields; EndClock and ClockTime are the
// display-rounded projections. Rounding never feeds back into arithmetic.
package practice
