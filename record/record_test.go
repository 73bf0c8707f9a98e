package record_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/strata/record"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestFloat_NumericInputs verifies coercion of the value shapes upstream
// data sources actually produce: floats, ints and numeric strings.
func TestFloat_NumericInputs(t *testing.T) {
	for _, tc := range []struct {
		in   any
		want float64
	}{
		{3.5, 3.5},
		{-2, -2.0},
		{int64(7), 7.0},
		{"12.25", 12.25},
		{"-0.5", -0.5},
	} {
		got, err := record.Float(tc.in)
		require.NoError(t, err, "coercing %v", tc.in)
		assert.Equal(t, tc.want, got, "coercing %v", tc.in)
	}
}

// TestFloat_RejectsNonNumeric ensures non-numeric values fail with
// ErrNotNumeric.
func TestFloat_RejectsNonNumeric(t *testing.T) {
	for _, in := range []any{nil, "abc", []int{1}, map[string]any{"x": 1}} {
		_, err := record.Float(in)
		assert.ErrorIs(t, err, record.ErrNotNumeric, "value %v must not coerce", in)
	}
}

// TestFloat_RejectsNonFinite ensures NaN and ±Inf fail with ErrNotFinite,
// including when smuggled in as strings.
func TestFloat_RejectsNonFinite(t *testing.T) {
	for _, in := range []any{math.NaN(), math.Inf(1), math.Inf(-1), "NaN", "+Inf"} {
		_, err := record.Float(in)
		assert.ErrorIs(t, err, record.ErrNotFinite, "value %v must be rejected as non-finite", in)
	}
}

// TestPredicates covers IsNumeric, IsNonEmptyString and IsRecord over the
// shapes validation relies on.
func TestPredicates(t *testing.T) {
	assert.True(t, record.IsNumeric(4.2))
	assert.True(t, record.IsNumeric("8"))
	assert.False(t, record.IsNumeric("soil"))
	assert.False(t, record.IsNumeric(nil))

	assert.True(t, record.IsNonEmptyString("clay"))
	assert.False(t, record.IsNonEmptyString(""))
	assert.False(t, record.IsNonEmptyString(7))

	assert.True(t, record.IsRecord(record.Record{"depth": 1}))
	assert.False(t, record.IsRecord(record.Record{}))
	assert.False(t, record.IsRecord("not a record"))
}

// TestClone_IsolatesAddedFields verifies that writing to a clone never
// touches the original record.
func TestClone_IsolatesAddedFields(t *testing.T) {
	orig := record.Record{"depth": 4.0, "soil": "sand"}
	cp := record.Clone(orig)
	cp["depthStart"] = 0.0
	cp["soil"] = "clay"

	assert.Equal(t, record.Record{"depth": 4.0, "soil": "sand"}, orig, "original must stay untouched")
	assert.Equal(t, 0.0, cp["depthStart"])
}

// TestSortByField_StableAscendingOnFreshSlice checks ordering, stability of
// the returned slice and that the input slice keeps its order.
func TestSortByField_StableAscendingOnFreshSlice(t *testing.T) {
	in := []record.Record{
		{"depth": 20.0, "tag": "c"},
		{"depth": 0.0, "tag": "a"},
		{"depth": "6", "tag": "b"},
	}
	out := record.SortByField(in, "depth")

	require.Len(t, out, 3)
	assert.Equal(t, "a", out[0]["tag"])
	assert.Equal(t, "b", out[1]["tag"])
	assert.Equal(t, "c", out[2]["tag"])
	assert.Equal(t, 20.0, in[0]["depth"], "input order must be preserved")
}

// TestCheckAscending_FlagsDuplicatesAndInversions verifies one violation
// per offending adjacent pair and none for a strictly ascending batch.
func TestCheckAscending_FlagsDuplicatesAndInversions(t *testing.T) {
	ok := []record.Record{{"depth": 0.0}, {"depth": 6.0}, {"depth": 20.0}}
	assert.Empty(t, record.CheckAscending(ok, "depth"))

	bad := []record.Record{{"depth": 0.0}, {"depth": 0.0}, {"depth": 5.0}, {"depth": 5.0}}
	violations := record.CheckAscending(bad, "depth")
	require.Len(t, violations, 2, "one violation per non-increasing pair")
	assert.Contains(t, violations[0], "sample 1")
	assert.Contains(t, violations[1], "sample 3")
}

// TestValidationError_JoinsAllIssues ensures the combined message cites
// every accumulated issue and unwraps to the operation sentinel.
func TestValidationError_JoinsAllIssues(t *testing.T) {
	sentinel := errors.New("op: invalid values")
	issues := []record.Issue{
		record.NotNumericIssue(0, "depth", "abc"),
		record.NotNumericIssue(2, "depth", nil),
	}
	err := record.NewValidationError(sentinel, issues)

	assert.ErrorIs(t, err, sentinel, "must unwrap to the sentinel")
	assert.Contains(t, err.Error(), "sample 0 depth field [abc] is not a valid number")
	assert.Contains(t, err.Error(), "sample 2 depth field [<nil>] is not a valid number")
	assert.Len(t, err.Issues(), 2)
}
