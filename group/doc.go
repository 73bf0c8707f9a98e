// Package group partitions depth-sorted sample batches into caller-given
// target depth ranges with a depleting-pool scan.
//
// What:
//
//   - ByRanges validates a sample batch and a sequence of target ranges,
//     then claims samples into ranges: a sample belongs to a range when its
//     depth lies in [start, end], inclusive on both ends.
//   - ByRange accepts a single target range and behaves as a one-element
//     sequence.
//   - Target ranges are never resorted: their given order is both the
//     processing order and the output order. One group record is returned
//     per target range, a clone of the range with the matched samples
//     attached under the group key — an empty list when nothing matched.
//   - Claimed samples leave the pool immediately, so a sample on a shared
//     boundary belongs to whichever range the caller listed first, and no
//     sample ever appears in two groups.
//   - Samples outside every target range are silently dropped; ranges need
//     not be exhaustive, and gaps between ranges are legal.
//
// Why:
//
//   - Downstream calculations group samples by stratum; strata are handed
//     in as depth ranges, and the pool scan keeps the partition disjoint
//     without rescanning samples already passed.
//
// Validation pipeline (ordered; each stage accumulates its failures and
// aborts atomically before any grouping work):
//
//  1. samples non-empty; every target range a non-empty record;
//  2. every sample depth coerces to a finite number;
//  3. samples stable-sorted ascending by depth (on a fresh slice);
//  4. sorted depths strictly increase (record.CheckAscending);
//  5. a single range is normalized to a one-element sequence (ByRange);
//  6. every range start and end coerces to a finite number;
//  7. every range satisfies start ≤ end;
//  8. in the given order, no range's start precedes the previous range's
//     end (gaps allowed, implied overlap is not).
//
// Complexity:
//
//   - Time:   O(n log n + n·m) worst case over n samples and m ranges; the
//     stop-on-exceeding-end short circuit keeps roughly depth-ordered range
//     lists close to O(n log n + n + m).
//   - Memory: O(n) pool clone plus O(m) group records.
//
// Options:
//
//   - DefaultOptions(): depth/depthStart/depthEnd/rows field keys.
//   - WithDepthKey(k): read sample depth from field k.
//   - WithStartKey(k): read range start from field k.
//   - WithEndKey(k):   read range end from field k.
//   - WithGroupKey(k): attach matched samples under field k.
//
// Errors:
//
//   - ErrEmptySamples:    the sample batch is empty or nil.
//   - ErrEmptyRanges:     the target-range sequence is empty or nil.
//   - ErrBadRange:        a target range is not a non-empty record.
//   - ErrInvalidDepth:    sample depth fields that do not coerce (combined
//     ValidationError, every offender cited).
//   - ErrUnsortedDepths:  duplicate or non-increasing sorted sample depths.
//   - ErrInvalidRange:    range boundary fields that do not coerce.
//   - ErrInvertedRange:   ranges with start > end.
//   - ErrRangeOrder:      given range order implies an overlap.
//   - ErrOptionViolation: an option carried an empty field key.
package group
