package continuity_test

import (
	"testing"

	"github.com/katalvlaran/strata/continuity"
	"github.com/katalvlaran/strata/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// intervalsOf builds one record per [start, end] pair under default keys.
func intervalsOf(pairs ...[2]float64) []record.Record {
	out := make([]record.Record, len(pairs))
	for i, p := range pairs {
		out[i] = record.Record{"depthStart": p[0], "depthEnd": p[1]}
	}

	return out
}

// TestValidate_ContiguousBatch verifies that an exactly contiguous batch
// yields no violations.
func TestValidate_ContiguousBatch(t *testing.T) {
	got := continuity.Validate(intervalsOf([2]float64{0, 5}, [2]float64{5, 10}, [2]float64{10, 20}))
	assert.Empty(t, got)
}

// TestValidate_GapBetweenIntervals covers [[0,5],[10,20]] and expects the
// canonical discontinuity message.
func TestValidate_GapBetweenIntervals(t *testing.T) {
	got := continuity.Validate(intervalsOf([2]float64{0, 5}, [2]float64{10, 20}))
	require.Len(t, got, 1)
	assert.Equal(t, "end 5 of sample 0 does not equal start 10 of sample 1", got[0])
}

// TestValidate_OverlapIsDiscontinuity ensures overlap violates exactly like
// a gap does — boundary equality must be exact, in either direction.
func TestValidate_OverlapIsDiscontinuity(t *testing.T) {
	got := continuity.Validate(intervalsOf([2]float64{0, 6}, [2]float64{5, 10}))
	require.Len(t, got, 1)
	assert.Equal(t, "end 6 of sample 0 does not equal start 5 of sample 1", got[0])
}

// TestValidate_NearEqualityStillViolates confirms proximity never counts:
// boundaries differing by one ulp-scale epsilon are a discontinuity.
func TestValidate_NearEqualityStillViolates(t *testing.T) {
	got := continuity.Validate(intervalsOf([2]float64{0, 5}, [2]float64{5.0000000001, 10}))
	assert.Len(t, got, 1)
}

// TestValidate_SortsByStart verifies records are viewed sorted ascending by
// start before adjacency checks: a shuffled but contiguous batch is clean,
// and violation indices refer to sorted positions.
func TestValidate_SortsByStart(t *testing.T) {
	shuffled := intervalsOf([2]float64{10, 20}, [2]float64{0, 5}, [2]float64{5, 10})
	assert.Empty(t, continuity.Validate(shuffled), "contiguity holds in sorted order")

	gapped := continuity.Validate(intervalsOf([2]float64{10, 20}, [2]float64{0, 4}))
	require.Len(t, gapped, 1)
	assert.Equal(t, "end 4 of sample 0 does not equal start 10 of sample 1", gapped[0])
}

// TestValidate_InvertedInterval ensures start > end is reported per record.
func TestValidate_InvertedInterval(t *testing.T) {
	got := continuity.Validate(intervalsOf([2]float64{8, 5}))
	require.Len(t, got, 1)
	assert.Equal(t, "start 8 of sample 0 exceeds end 5", got[0])
}

// TestValidate_SurfacesEveryDefectClass feeds a batch with an unparsable
// field, an inverted interval and two broken boundaries, and expects every
// defect class surfaced in one pass rather than stopping early.
func TestValidate_SurfacesEveryDefectClass(t *testing.T) {
	rows := []record.Record{
		{"depthStart": "abc", "depthEnd": 5.0},
		{"depthStart": 9.0, "depthEnd": 7.0},
		{"depthStart": 20.0, "depthEnd": 30.0},
	}
	got := continuity.Validate(rows)

	require.Len(t, got, 4)
	assert.Contains(t, got, "sample 0 depthStart field [abc] is not a valid number")
	assert.Contains(t, got, "start 9 of sample 1 exceeds end 7")
	assert.Contains(t, got, "end 5 of sample 0 does not equal start 9 of sample 1")
	assert.Contains(t, got, "end 7 of sample 1 does not equal start 20 of sample 2")
}

// TestValidate_RenamedKeys re-checks contiguity under caller-chosen keys.
func TestValidate_RenamedKeys(t *testing.T) {
	rows := []record.Record{
		{"from": 0.0, "to": 5.0},
		{"from": 5.0, "to": 10.0},
	}
	got := continuity.Validate(rows, continuity.WithStartKey("from"), continuity.WithEndKey("to"))
	assert.Empty(t, got)
}

// TestValidate_NeverMutatesInput ensures the scan leaves the caller's slice
// order and records untouched.
func TestValidate_NeverMutatesInput(t *testing.T) {
	rows := intervalsOf([2]float64{10, 20}, [2]float64{0, 5})
	_ = continuity.Validate(rows)

	assert.Equal(t, 10.0, rows[0]["depthStart"], "caller order must be preserved")
	assert.Len(t, rows[0], 2, "no fields may be added")
}

// TestValidate_EmptyBatch returns no violations for nothing to check.
func TestValidate_EmptyBatch(t *testing.T) {
	assert.Empty(t, continuity.Validate(nil))
}
