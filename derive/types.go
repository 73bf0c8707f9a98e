// Package derive defines options and error sentinels for depth-interval
// derivation over sample batches.
package derive

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/strata/record"
)

// Sentinel errors for interval derivation.
var (
	// ErrEmptyInput is returned when the sample batch is empty or nil.
	ErrEmptyInput = errors.New("derive: input samples must be non-empty")

	// ErrInvalidDepth tags the combined ValidationError reporting every
	// sample whose depth field does not coerce to a finite number.
	ErrInvalidDepth = errors.New("derive: invalid depth values")

	// ErrUnsortedDepths tags the combined ValidationError reporting every
	// adjacent pair whose depths do not strictly increase after sorting.
	ErrUnsortedDepths = errors.New("derive: depths must be strictly increasing")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("derive: invalid option supplied")
)

// Option configures derivation via functional arguments. An invalid Option
// (empty field key) is recorded internally and surfaced as
// ErrOptionViolation when Derive is invoked.
type Option func(*Options)

// Options holds the field-key configuration for one Derive call.
type Options struct {
	// KeyDepth names the center-depth field read from each sample.
	KeyDepth string

	// KeyStart names the interval-start field written to each output record.
	KeyStart string

	// KeyEnd names the interval-end field written to each output record.
	KeyEnd string

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with the canonical field keys:
// depth / depthStart / depthEnd.
func DefaultOptions() Options {
	return Options{
		KeyDepth: record.DefaultDepthKey,
		KeyStart: record.DefaultStartKey,
		KeyEnd:   record.DefaultEndKey,
		err:      nil,
	}
}

// WithDepthKey reads the center depth from field k. Empty k is invalid.
func WithDepthKey(k string) Option {
	return func(o *Options) {
		if k == "" {
			o.err = fmt.Errorf("%w: depth key must be non-empty", ErrOptionViolation)

			return
		}
		o.KeyDepth = k
	}
}

// WithStartKey writes the interval start to field k. Empty k is invalid.
func WithStartKey(k string) Option {
	return func(o *Options) {
		if k == "" {
			o.err = fmt.Errorf("%w: start key must be non-empty", ErrOptionViolation)

			return
		}
		o.KeyStart = k
	}
}

// WithEndKey writes the interval end to field k. Empty k is invalid.
func WithEndKey(k string) Option {
	return func(o *Options) {
		if k == "" {
			o.err = fmt.Errorf("%w: end key must be non-empty", ErrOptionViolation)

			return
		}
		o.KeyEnd = k
	}
}
