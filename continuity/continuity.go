package continuity

import (
	"fmt"

	"github.com/katalvlaran/strata/record"
)

// span is one record's coerced boundary pair; ok flags mark which of the
// two fields actually coerced.
type span struct {
	start, end     float64
	okStart, okEnd bool
}

// Validate checks rows for numeric validity, inverted intervals and exact
// end-to-start contiguity. It returns every violation found, as strings for
// the caller to inspect or escalate, and never returns an error itself.
//
// Unparsable fields are cited by the record's position in the caller's
// order; inversion and discontinuity violations cite positions in the
// start-sorted order they are detected in. The input is never mutated.
func Validate(rows []record.Record, opts ...Option) []string {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	violations := make([]string, 0)

	// Step 1: numeric validity, caller order. Defects do not stop the pass.
	for i, r := range rows {
		for _, key := range [2]string{o.KeyStart, o.KeyEnd} {
			if !record.IsNumeric(r[key]) {
				violations = append(violations, fmt.Sprintf(
					"sample %d %s field [%v] is not a valid number", i, key, r[key]))
			}
		}
	}

	// Step 2: sorted view by start; unparsable starts order as -Inf.
	sorted := record.SortByField(rows, o.KeyStart)
	spans := make([]span, len(sorted))
	for i, r := range sorted {
		var sp span
		sp.start, sp.okStart = coerce(r[o.KeyStart])
		sp.end, sp.okEnd = coerce(r[o.KeyEnd])
		spans[i] = sp
	}

	// Step 3: inverted intervals.
	for i, sp := range spans {
		if sp.okStart && sp.okEnd && sp.start > sp.end {
			violations = append(violations, fmt.Sprintf(
				"start %v of sample %d exceeds end %v", sp.start, i, sp.end))
		}
	}

	// Step 4: exact boundary equality between adjacent pairs; both gaps and
	// overlaps violate, and proximity never counts as equality.
	for i := 1; i < len(spans); i++ {
		prev, next := spans[i-1], spans[i]
		if !prev.okEnd || !next.okStart {
			continue
		}
		if prev.end != next.start {
			violations = append(violations, fmt.Sprintf(
				"end %v of sample %d does not equal start %v of sample %d",
				prev.end, i-1, next.start, i))
		}
	}

	return violations
}

func coerce(v any) (float64, bool) {
	f, err := record.Float(v)

	return f, err == nil
}
