package group

import (
	"fmt"

	"github.com/katalvlaran/strata/record"
)

// poolItem pairs a pooled sample with its coerced depth so the scan never
// re-coerces a field.
type poolItem struct {
	depth float64
	rec   record.Record
}

// bounds is one target range's coerced boundary pair.
type bounds struct {
	lo, hi float64
}

// grouper encapsulates the mutable grouping state: the validated target
// ranges and the depleting pool of depth-sorted samples.
type grouper struct {
	opts   Options
	ranges []record.Record
	bounds []bounds
	pool   []poolItem
}

// ByRange groups samples against a single target range; it behaves exactly
// like ByRanges with a one-element sequence.
func ByRange(samples []record.Record, r record.Record, opts ...Option) ([]record.Record, error) {
	return ByRanges(samples, []record.Record{r}, opts...)
}

// ByRanges — partition depth-sorted samples into caller-given ranges.
//
// Description:
//
//	Validates the batch and the target ranges through the staged pipeline
//	documented in doc.go, then claims samples into ranges in the caller's
//	given order. Membership is inclusive on both boundaries; a claimed
//	sample leaves the pool immediately and irreversibly, so the first
//	enclosing range wins on shared boundaries.
//
// Output: one record per target range, in the given order — a clone of the
// range with the matched samples attached under the group key. Sample
// records are attached as-is (never mutated); range records are cloned
// before the group field is added. Samples outside every range are dropped.
//
// Any validation failure aborts atomically with no grouping performed, and
// each failing stage reports every offender it found in one combined error.
func ByRanges(samples, ranges []record.Record, opts ...Option) ([]record.Record, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g := &grouper{opts: o, ranges: ranges}
	if err := g.validate(samples); err != nil {
		return nil, err
	}

	return g.run(), nil
}

// validate walks the staged pipeline over samples and g.ranges, filling
// g.pool and g.bounds on success. Each stage accumulates its own failures
// and aborts before the next stage runs.
func (g *grouper) validate(samples []record.Record) error {
	o := g.opts

	// Stage 1: structural shape, raised immediately with no partial work.
	if len(samples) == 0 {
		return ErrEmptySamples
	}
	if len(g.ranges) == 0 {
		return ErrEmptyRanges
	}
	for i, r := range g.ranges {
		if !record.IsRecord(r) {
			return fmt.Errorf("%w: range %d", ErrBadRange, i)
		}
	}

	// Stage 2: every sample depth coerces; all offenders reported at once.
	var issues []record.Issue
	for i, s := range samples {
		if !record.IsNumeric(s[o.KeyDepth]) {
			issues = append(issues, record.NotNumericIssue(i, o.KeyDepth, s[o.KeyDepth]))
		}
	}
	if len(issues) > 0 {
		return record.NewValidationError(ErrInvalidDepth, issues)
	}

	// Stage 3: sorted view; stage 4: strict ascent via the shared checker.
	sorted := record.SortByField(samples, o.KeyDepth)
	if violations := record.CheckAscending(sorted, o.KeyDepth); len(violations) > 0 {
		for i, v := range violations {
			issues = append(issues, record.Issue{Index: i, Field: o.KeyDepth, Msg: v})
		}

		return record.NewValidationError(ErrUnsortedDepths, issues)
	}

	// Stage 6: every range boundary coerces.
	for i, r := range g.ranges {
		for _, key := range [2]string{o.KeyStart, o.KeyEnd} {
			if !record.IsNumeric(r[key]) {
				issues = append(issues, record.Issue{
					Index: i,
					Field: key,
					Value: r[key],
					Msg:   fmt.Sprintf("range %d %s field [%v] is not a valid number", i, key, r[key]),
				})
			}
		}
	}
	if len(issues) > 0 {
		return record.NewValidationError(ErrInvalidRange, issues)
	}

	g.bounds = make([]bounds, len(g.ranges))
	for i, r := range g.ranges {
		lo, _ := record.Float(r[o.KeyStart])
		hi, _ := record.Float(r[o.KeyEnd])
		g.bounds[i] = bounds{lo: lo, hi: hi}
	}

	// Stage 7: start ≤ end per range.
	for i, b := range g.bounds {
		if b.lo > b.hi {
			issues = append(issues, record.Issue{
				Index: i,
				Field: o.KeyStart,
				Value: b.lo,
				Msg:   fmt.Sprintf("range %d start %v exceeds end %v", i, b.lo, b.hi),
			})
		}
	}
	if len(issues) > 0 {
		return record.NewValidationError(ErrInvertedRange, issues)
	}

	// Stage 8: the given order must not imply overlap. Ranges are never
	// resorted; gaps between consecutive ranges are fine, shared boundaries
	// are fine (the tie-break resolves them), prev.end > next.start is not.
	for i := 1; i < len(g.bounds); i++ {
		if g.bounds[i-1].hi > g.bounds[i].lo {
			issues = append(issues, record.Issue{
				Index: i,
				Field: o.KeyStart,
				Value: g.bounds[i].lo,
				Msg: fmt.Sprintf("range %d start %v precedes range %d end %v",
					i, g.bounds[i].lo, i-1, g.bounds[i-1].hi),
			})
		}
	}
	if len(issues) > 0 {
		return record.NewValidationError(ErrRangeOrder, issues)
	}

	// Pool: a private working copy of the sorted batch, depleted as ranges
	// claim samples. Sample records themselves are shared, never mutated.
	g.pool = make([]poolItem, len(sorted))
	for i, s := range sorted {
		d, _ := record.Float(s[o.KeyDepth])
		g.pool[i] = poolItem{depth: d, rec: s}
	}

	return nil
}

// run claims pool samples into ranges, in the caller's given order, and
// assembles the output groups.
func (g *grouper) run() []record.Record {
	out := make([]record.Record, len(g.ranges))
	for i, r := range g.ranges {
		matched := g.claim(g.bounds[i])

		grp := record.Clone(r)
		grp[g.opts.KeyGroup] = matched
		out[i] = grp
	}

	return out
}

// claim scans the pool in its current order for samples with depth in
// [b.lo, b.hi], stopping as soon as a depth exceeds b.hi — the pool stays
// depth-sorted, so no later element can match. Matched samples are removed
// from the pool; passed-over shallower samples remain, though no
// well-ordered later range can reach back to them.
func (g *grouper) claim(b bounds) []record.Record {
	matched := make([]record.Record, 0)
	var rest []poolItem
	stop := len(g.pool)

	for i, it := range g.pool {
		if it.depth > b.hi {
			stop = i

			break
		}
		if it.depth >= b.lo {
			matched = append(matched, it.rec)
		} else {
			rest = append(rest, it)
		}
	}

	g.pool = append(rest, g.pool[stop:]...)

	return matched
}
