package record

import (
	"errors"
	"fmt"
	"math"

	"github.com/spf13/cast"
)

var (
	// ErrNotNumeric indicates a value that cannot be coerced to float64.
	ErrNotNumeric = errors.New("record: value is not numeric")
	// ErrNotFinite indicates a value that coerces to NaN or ±Inf.
	ErrNotFinite = errors.New("record: value is not finite")
)

// Float coerces v to a finite float64. Numeric types, numeric strings and
// booleans coerce (the usual cast rules); anything else, and anything that
// lands on NaN or ±Inf, fails with a sentinel-wrapped error.
func Float(v any) (float64, error) {
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, fmt.Errorf("%w: [%v]", ErrNotNumeric, v)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: [%v]", ErrNotFinite, v)
	}

	return f, nil
}

// IsNumeric reports whether v coerces to a finite float64.
func IsNumeric(v any) bool {
	_, err := Float(v)

	return err == nil
}

// IsNonEmptyString reports whether v is a string with at least one byte.
func IsNonEmptyString(v any) bool {
	s, ok := v.(string)

	return ok && s != ""
}

// IsRecord reports whether v is a non-empty Record.
func IsRecord(v any) bool {
	r, ok := v.(Record)

	return ok && len(r) > 0
}

// floatOrMin coerces v, substituting -Inf on failure. Used only for
// deterministic ordering of not-yet-validated batches.
func floatOrMin(v any) float64 {
	f, err := Float(v)
	if err != nil {
		return math.Inf(-1)
	}

	return f
}
