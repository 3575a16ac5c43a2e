// Package segment computes the trailing analysis window of a bar table
// and splits it into two adjacent index ranges.
package segment

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrWindowSize means the window does not fit the table: want 0 < window <= len(table).
	ErrWindowSize = errors.New("segment: window size out of range")
	// ErrSplitRatio means the split ratio is outside the open interval (0, 1).
	ErrSplitRatio = errors.New("segment: split ratio out of range")
)

// Range is a contiguous, inclusive index range [Start, End] of a table.
type Range struct {
	Start int
	End   int
}

// Len returns the number of positions covered by the range.
func (r Range) Len() int { return r.End - r.Start + 1 }

// Split carves the trailing window of a table with n bars into two
// disjoint adjacent ranges: "in" takes round(window*ratio) positions,
// "out" the remainder. Pure function, no side effects.
func Split(n, window int, ratio float64) (in, out Range, err error) {
	if window <= 0 || window > n {
		return Range{}, Range{}, fmt.Errorf("%w: window=%d, bars=%d", ErrWindowSize, window, n)
	}
	if ratio <= 0 || ratio >= 1 {
		return Range{}, Range{}, fmt.Errorf("%w: ratio=%v", ErrSplitRatio, ratio)
	}

	windowStart := n - window
	windowEnd := n - 1
	lenIn := int(math.Round(float64(window) * ratio))

	in = Range{Start: windowStart, End: windowStart + lenIn - 1}
	out = Range{Start: in.End + 1, End: windowEnd}
	return in, out, nil
}
