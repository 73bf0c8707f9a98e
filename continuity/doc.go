// Package continuity checks an already-intervaled batch for numeric
// validity and exact end-to-start contiguity, reporting every defect class
// in one pass.
//
// What:
//
//   - Validate scans records carrying explicit start/end fields and returns
//     human-readable violation strings — it never returns an error and never
//     panics; an empty result means the batch is sound.
//   - Checks, in order, all performed even when earlier ones found defects:
//  1. every start and end field coerces to a finite number
//     (offenders cited by index, field and raw value);
//  2. the batch is viewed sorted ascending by start (stable);
//  3. any record with start > end is an inverted interval;
//  4. any adjacent pair with prev.end != next.start — compared by exact
//     numeric equality, never proximity — is a discontinuity (gap or
//     overlap alike).
//
// Why:
//
//   - Interval data often arrives from third parties; before downstream
//     calculations trust it, every defect should surface at once rather
//     than one per round-trip. The caller decides whether any non-empty
//     result is fatal.
//
// Determinism:
//
//	Records whose start does not coerce sort as -Inf, keeping the scan
//	order reproducible; such records are excluded from the checks that
//	need the missing value but never stop the pass.
//
// Complexity:
//
//   - Time:   O(n log n) (sort dominates)
//   - Memory: O(n) for the sorted view plus O(v) violations
//
// Options:
//
//   - DefaultOptions(): depthStart/depthEnd field keys.
//   - WithStartKey(k): read interval start from field k.
//   - WithEndKey(k):   read interval end from field k.
//
// Violation wording (shown to end users verbatim):
//
//	sample 2 depthStart field [abc] is not a valid number
//	start 8 of sample 1 exceeds end 5
//	end 5 of sample 0 does not equal start 10 of sample 1
package continuity
