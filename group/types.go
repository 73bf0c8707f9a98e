// Package group defines options and error sentinels for depth-range
// grouping of sample batches.
package group

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strata/record"
)

// Sentinel errors for range grouping.
var (
	// ErrEmptySamples is returned when the sample batch is empty or nil.
	ErrEmptySamples = errors.New("group: input samples must be non-empty")

	// ErrEmptyRanges is returned when no target range is given.
	ErrEmptyRanges = errors.New("group: target ranges must be non-empty")

	// ErrBadRange is returned when a target range is not a non-empty record.
	ErrBadRange = errors.New("group: target range is not a record")

	// ErrInvalidDepth tags the combined ValidationError reporting every
	// sample whose depth field does not coerce to a finite number.
	ErrInvalidDepth = errors.New("group: invalid depth values")

	// ErrUnsortedDepths is returned when sorted sample depths do not
	// strictly increase (duplicates or inversions).
	ErrUnsortedDepths = errors.New("group: depths must be strictly increasing")

	// ErrInvalidRange tags the combined ValidationError reporting every
	// range boundary that does not coerce to a finite number.
	ErrInvalidRange = errors.New("group: invalid range boundaries")

	// ErrInvertedRange tags the combined ValidationError reporting every
	// range whose start exceeds its end.
	ErrInvertedRange = errors.New("group: range start exceeds end")

	// ErrRangeOrder tags the combined ValidationError reporting adjacent
	// ranges whose given order implies an overlap.
	ErrRangeOrder = errors.New("group: ranges overlap in given order")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("group: invalid option supplied")
)

// Option configures grouping via functional arguments. An invalid Option
// (empty field key) is recorded internally and surfaced as
// ErrOptionViolation when ByRanges is invoked.
type Option func(*Options)

// Options holds the field-key configuration for one grouping call.
type Options struct {
	// KeyDepth names the center-depth field read from each sample.
	KeyDepth string

	// KeyStart names the start field read from each target range.
	KeyStart string

	// KeyEnd names the end field read from each target range.
	KeyEnd string

	// KeyGroup names the field under which matched samples are attached
	// to each output group.
	KeyGroup string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the canonical field keys:
// depth / depthStart / depthEnd / rows.
func DefaultOptions() Options {
	return Options{
		KeyDepth: record.DefaultDepthKey,
		KeyStart: record.DefaultStartKey,
		KeyEnd:   record.DefaultEndKey,
		KeyGroup: record.DefaultGroupKey,
		err:      nil,
	}
}

// WithDepthKey reads the sample depth from field k. Empty k is invalid.
func WithDepthKey(k string) Option {
	return func(o *Options) {
		if k == "" {
			o.err = fmt.Errorf("%w: depth key must be non-empty", ErrOptionViolation)

			return
		}
		o.KeyDepth = k
	}
}

// WithStartKey reads the range start from field k. Empty k is invalid.
func WithStartKey(k string) Option {
	return func(o *Options) {
		if k == "" {
			o.err = fmt.Errorf("%w: start key must be non-empty", ErrOptionViolation)

			return
		}
		o.KeyStart = k
	}
}

// WithEndKey reads the range end from field k. Empty k is invalid.
func WithEndKey(k string) Option {
	return func(o *Options) {
		if k == "" {
			o.err = fmt.Errorf("%w: end key must be non-empty", ErrOptionViolation)

			return
		}
		o.KeyEnd = k
	}
}

// WithGroupKey attaches matched samples under field k. Empty k is invalid.
func WithGroupKey(k string) Option {
	return func(o *Options) {
		if k == "" {
			o.err = fmt.Errorf("%w: group key must be non-empty", ErrOptionViolation)

			return
		}
		o.KeyGroup = k
	}
}
