// Package record provides the map-based record model, numeric coercion and
// accumulated validation shared by derive, continuity and group.
package record

import "sort"

// Record is one sample or interval: a numeric depth (or start/end) field
// under a caller-chosen key, plus arbitrary caller-defined fields.
type Record = map[string]any

// Default field keys, shared by every operation's options.
const (
	// DefaultDepthKey names the center-depth field of a sample.
	DefaultDepthKey = "depth"
	// DefaultStartKey names the interval start field.
	DefaultStartKey = "depthStart"
	// DefaultEndKey names the interval end field.
	DefaultEndKey = "depthEnd"
	// DefaultGroupKey names the field under which a group's matched
	// samples are attached.
	DefaultGroupKey = "rows"
)

// Clone returns a shallow copy of r. Field values are shared; adding or
// replacing fields on the copy never touches the original.
func Clone(r Record) Record {
	out := make(Record, len(r)+2)
	for k, v := range r {
		out[k] = v
	}

	return out
}

// CloneAll returns a new slice of shallow copies of every record in rs.
func CloneAll(rs []Record) []Record {
	out := make([]Record, len(rs))
	for i, r := range rs {
		out[i] = Clone(r)
	}

	return out
}

// SortByField returns a new slice holding the records of rs ordered
// ascending by the coerced numeric value of key. The sort is stable and the
// input slice is left untouched; the records themselves are shared, not
// copied. Values that do not coerce sort as -Inf, keeping the order
// deterministic when callers sort before (or without) numeric validation.
func SortByField(rs []Record, key string) []Record {
	out := make([]Record, len(rs))
	copy(out, rs)
	sort.SliceStable(out, func(i, j int) bool {
		return floatOrMin(out[i][key]) < floatOrMin(out[j][key])
	})

	return out
}
