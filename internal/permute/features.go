// Package permute decomposes OHLC bars into log-space relative moves and
// rebuilds statistically-equivalent synthetic bar sequences from shuffled
// orderings of those moves (López de Prado 2018 style bar permutation).
package permute

import (
	"errors"
	"fmt"
	"math"

	"mcpt-data/internal/model"
	"mcpt-data/internal/segment"
)

// ErrNonPositivePrice means a price field needed for the log decomposition
// is zero or negative.
var ErrNonPositivePrice = errors.New("permute: non-positive price field")

// Features holds one segment's per-bar relative moves in log space.
// GapOpen[k] is log(open) minus log(close) of the preceding bar;
// RelHigh/RelLow/RelClose are each log-field minus log(open) of the same bar.
type Features struct {
	GapOpen  []float64
	RelHigh  []float64
	RelLow   []float64
	RelClose []float64

	// AnchorLogClose is the log-close the reconstruction chains from: the
	// bar just before the segment, or the segment's own first bar when the
	// segment starts at table position 0 (the original engine's behavior,
	// kept as-is).
	AnchorLogClose float64
}

// Len returns the segment length the features were extracted for.
func (f *Features) Len() int { return len(f.GapOpen) }

// Extract computes Features for seg against the full table. It takes the
// whole table, not just the segment, because the first bar's gap needs the
// bar immediately before the segment. Fails if any O/H/L/C it touches is
// non-positive (log undefined).
func Extract(bars []model.Bar, seg segment.Range) (*Features, error) {
	if seg.Start < 0 || seg.End >= len(bars) || seg.Start > seg.End {
		return nil, fmt.Errorf("permute: segment [%d, %d] out of table bounds (%d bars)", seg.Start, seg.End, len(bars))
	}

	anchorIdx := seg.Start - 1
	if seg.Start == 0 {
		anchorIdx = seg.Start
	}
	if bars[anchorIdx].Close <= 0 {
		return nil, fmt.Errorf("%w: close=%v at position %d", ErrNonPositivePrice, bars[anchorIdx].Close, anchorIdx)
	}

	n := seg.Len()
	f := &Features{
		GapOpen:        make([]float64, n),
		RelHigh:        make([]float64, n),
		RelLow:         make([]float64, n),
		RelClose:       make([]float64, n),
		AnchorLogClose: math.Log(bars[anchorIdx].Close),
	}

	priorLogClose := f.AnchorLogClose
	if seg.Start > 0 {
		// The gap of bar p chains off bar p-1, which inside the segment is
		// a segment bar itself; only the first gap uses the anchor.
		priorLogClose = math.Log(bars[seg.Start-1].Close)
	}
	for k := 0; k < n; k++ {
		b := bars[seg.Start+k]
		if b.Open <= 0 || b.High <= 0 || b.Low <= 0 || b.Close <= 0 {
			return nil, fmt.Errorf("%w: o=%v h=%v l=%v c=%v at position %d",
				ErrNonPositivePrice, b.Open, b.High, b.Low, b.Close, seg.Start+k)
		}
		logOpen := math.Log(b.Open)
		logClose := math.Log(b.Close)

		f.GapOpen[k] = logOpen - priorLogClose
		f.RelHigh[k] = math.Log(b.High) - logOpen
		f.RelLow[k] = math.Log(b.Low) - logOpen
		f.RelClose[k] = logClose - logOpen
		priorLogClose = logClose
	}
	return f, nil
}
