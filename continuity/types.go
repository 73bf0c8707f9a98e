// Package continuity defines options for interval contiguity validation.
package continuity

import "github.com/katalvlaran/strata/record"

// Option configures validation via functional arguments. Validate never
// fails, so an empty key is simply ignored and the default key kept.
type Option func(*Options)

// Options holds the field-key configuration for one Validate call.
type Options struct {
	// KeyStart names the interval-start field read from each record.
	KeyStart string

	// KeyEnd names the interval-end field read from each record.
	KeyEnd string
}

// DefaultOptions returns Options with the canonical field keys:
// depthStart / depthEnd.
func DefaultOptions() Options {
	return Options{
		KeyStart: record.DefaultStartKey,
		KeyEnd:   record.DefaultEndKey,
	}
}

// WithStartKey reads the interval start from field k.
func WithStartKey(k string) Option {
	return func(o *Options) {
		if k != "" {
			o.KeyStart = k
		}
	}
}

// WithEndKey reads the interval end from field k.
func WithEndKey(k string) Option {
	return func(o *Options) {
		if k != "" {
			o.KeyEnd = k
		}
	}
}
