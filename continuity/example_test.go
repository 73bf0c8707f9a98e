package continuity_test

import (
	"fmt"

	"github.com/katalvlaran/strata/continuity"
	"github.com/katalvlaran/strata/record"
)

// ExampleValidate demonstrates checking third-party interval data before a
// downstream calculation trusts it: the gap between 5 and 10 is reported,
// the caller decides whether that's fatal.
func ExampleValidate() {
	rows := []record.Record{
		{"depthStart": 0.0, "depthEnd": 5.0},
		{"depthStart": 10.0, "depthEnd": 20.0},
	}

	for _, v := range continuity.Validate(rows) {
		fmt.Println(v)
	}
	// Output:
	// end 5 of sample 0 does not equal start 10 of sample 1
}
