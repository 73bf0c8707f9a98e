package derive

import (
	"fmt"
	"math"

	"github.com/katalvlaran/strata/record"
)

// Derive — center depths → contiguous depth intervals.
//
// Description:
//
//	Each borehole sample logs one center depth. Derive reconstructs the
//	depth span each sample represents by bisecting the distance to its
//	sorted neighbors, producing intervals that tile [start(0), end(n-1)]
//	with no gap and no overlap.
//
// Algorithm Outline:
//  1. Reject an empty batch (ErrEmptyInput).
//  2. Coerce every sample's depth field; accumulate every failure and, if
//     any, abort atomically with a single combined ValidationError
//     (ErrInvalidDepth). No partial output accompanies an error.
//  3. Stable-sort the batch ascending by depth.
//  4. Re-scan adjacent pairs; any prev ≥ next (duplicate or inversion) is
//     accumulated and aborts with ErrUnsortedDepths.
//  5. For each sorted position i, clone the sample and attach
//     start(i)/end(i) per the midpoint rules documented in doc.go.
//
// The returned batch is in sorted order and newly allocated throughout;
// the caller's slice and records are never touched.
func Derive(samples []record.Record, opts ...Option) ([]record.Record, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if len(samples) == 0 {
		return nil, ErrEmptyInput
	}

	// Stage 2: every depth must coerce; collect all offenders before failing.
	var issues []record.Issue
	for i, s := range samples {
		if !record.IsNumeric(s[o.KeyDepth]) {
			issues = append(issues, record.NotNumericIssue(i, o.KeyDepth, s[o.KeyDepth]))
		}
	}
	if len(issues) > 0 {
		return nil, record.NewValidationError(ErrInvalidDepth, issues)
	}

	// Stage 3: sorted view over the caller's records (records shared, slice fresh).
	sorted := record.SortByField(samples, o.KeyDepth)
	n := len(sorted)
	depths := make([]float64, n)
	for i, s := range sorted {
		depths[i], _ = record.Float(s[o.KeyDepth])
	}

	// Stage 4: strict ascent; duplicates are a hard error, never tie-broken.
	for i := 1; i < n; i++ {
		if depths[i-1] >= depths[i] {
			issues = append(issues, record.Issue{
				Index: i,
				Field: o.KeyDepth,
				Value: depths[i],
				Msg: fmt.Sprintf("%s %v of sample %d is not greater than %s %v of sample %d",
					o.KeyDepth, depths[i], i, o.KeyDepth, depths[i-1], i-1),
			})
		}
	}
	if len(issues) > 0 {
		return nil, record.NewValidationError(ErrUnsortedDepths, issues)
	}

	// Stage 5: midpoint bisection onto fresh clones. Interior boundaries are
	// computed once per pair, so end(i) == start(i+1) holds exactly.
	out := make([]record.Record, n)
	for i, s := range sorted {
		r := record.Clone(s)

		var start float64
		if i == 0 {
			start = math.Min(0, depths[0])
		} else {
			start = (depths[i-1] + depths[i]) / 2
		}

		var end float64
		if i == n-1 {
			end = depths[i]
		} else {
			end = (depths[i] + depths[i+1]) / 2
		}

		r[o.KeyStart] = start
		r[o.KeyEnd] = end
		out[i] = r
	}

	return out, nil
}
