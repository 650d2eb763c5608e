package geometry

import (
	"fmt"
	"runtime"
)

// Options configures the comparisons and parallelism of the bounding box
// search and line intersection
type Options struct {
	// Tolerance relaxes exact floating-point comparisons. MinBoundingBox
	// accepts a new minimum only when it is smaller by more than Tolerance,
	// and IntersectLines treats |det| <= Tolerance as parallel.
	// Zero keeps exact comparisons; negative values fail Validate
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`

	// Workers is the number of goroutines MinBoundingBox spreads the edge
	// scan over. Values below 2 scan serially; negative values use one
	// worker per CPU
	Workers int `json:"workers" yaml:"workers"`
}

// DefaultOptions returns exact comparisons and a serial scan
func DefaultOptions() Options {
	return Options{
		Tolerance: 0,
		Workers:   1,
	}
}

// Validate reports whether o can be used. Tolerance must be zero or positive
func (o Options) Validate() error {
	if !(o.Tolerance >= 0) {
		return fmt.Errorf("invalid tolerance %g: must not be negative", o.Tolerance)
	}
	return nil
}

func (o Options) workers() int {
	if o.Workers < 0 {
		return runtime.NumCPU()
	}
	return o.Workers
}

// smaller reports whether area should replace best as the running minimum
func (o Options) smaller(area, best float64) bool {
	return area < best-o.tolerance()
}

// tolerance is Tolerance with negative and NaN values read as exact
func (o Options) tolerance() float64 {
	if o.Tolerance > 0 {
		return o.Tolerance
	}
	return 0
}
