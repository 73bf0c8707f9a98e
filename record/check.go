package record

import "fmt"

// CheckAscending is the depth gap/duplicate checker: given records already
// sorted ascending by key, it returns one violation string per adjacent pair
// whose depths do not strictly increase (exact duplicates and inversions
// alike). An empty result means the sequence is strictly ascending.
//
// The caller is expected to have validated that every key field coerces;
// fields that do not coerce are compared as -Inf and will typically surface
// here as non-increasing pairs.
func CheckAscending(rs []Record, key string) []string {
	var violations []string
	for i := 1; i < len(rs); i++ {
		prev, next := floatOrMin(rs[i-1][key]), floatOrMin(rs[i][key])
		if prev >= next {
			violations = append(violations, fmt.Sprintf(
				"%s %v of sample %d is not greater than %s %v of sample %d",
				key, next, i, key, prev, i-1))
		}
	}

	return violations
}
