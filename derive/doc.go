// Package derive converts center-depth sample batches into contiguous
// [start, end] depth intervals via midpoint bisection.
//
// What:
//
//   - Derive validates a batch of samples, sorts it ascending by center
//     depth, and attaches start/end fields computed so that every interior
//     boundary is the exact midpoint of its two neighboring depths.
//   - Boundary rules (sorted position i, last index n-1):
//   - start(0) = min(0, depth(0)) — extends upward only when the
//     shallowest sample sits below zero.
//   - start(i) = (depth(i-1) + depth(i)) / 2 for interior i.
//   - end(i)   = (depth(i) + depth(i+1)) / 2 for interior i.
//   - end(n-1) = depth(n-1) itself, not a midpoint.
//   - Adjacent intervals share one computed value, so end(i) == start(i+1)
//     exactly — no floating rounding divergence.
//
// Why:
//
//   - Downstream stress/liquefaction calculations need every sample tagged
//     with the depth span it represents; bisection reconstructs spans from
//     the center depths boreholes actually log.
//
// Determinism:
//
//	The sort is stable and the derivation is pure: inputs are never
//	mutated, output records are fresh clones in sorted order, and repeated
//	calls over the same batch yield bit-identical start/end values.
//
// Complexity:
//
//   - Time:   O(n log n) (sort dominates; derivation itself is O(n))
//   - Memory: O(n) for the cloned output batch
//
// Options:
//
//   - DefaultOptions(): depth/depthStart/depthEnd field keys.
//   - WithDepthKey(k):  read center depth from field k.
//   - WithStartKey(k):  write interval start to field k.
//   - WithEndKey(k):    write interval end to field k.
//
// Errors:
//
//   - ErrEmptyInput:      the batch has no samples.
//   - ErrInvalidDepth:    one or more depth fields do not coerce to a finite
//     number; every offender is reported in one combined ValidationError.
//   - ErrUnsortedDepths:  after sorting, adjacent depths are not strictly
//     increasing (duplicates or inversions); all pairs reported at once.
//   - ErrOptionViolation: an option carried an empty field key.
package derive
