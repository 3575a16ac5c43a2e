package permute

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpt-data/internal/model"
	"mcpt-data/internal/segment"
)

func TestExtractRelativeMoves(t *testing.T) {
	bars := []model.Bar{
		{Timestamp: 1, Open: 100, High: 110, Low: 95, Close: 105},
		{Timestamp: 2, Open: 106, High: 112, Low: 104, Close: 108},
		{Timestamp: 3, Open: 107, High: 109, Low: 100, Close: 101},
	}

	f, err := Extract(bars, segment.Range{Start: 1, End: 2})
	require.NoError(t, err)
	require.Equal(t, 2, f.Len())

	assert.InDelta(t, math.Log(105), f.AnchorLogClose, 1e-12)
	assert.InDelta(t, math.Log(106)-math.Log(105), f.GapOpen[0], 1e-12)
	assert.InDelta(t, math.Log(107)-math.Log(108), f.GapOpen[1], 1e-12)
	assert.InDelta(t, math.Log(112)-math.Log(106), f.RelHigh[0], 1e-12)
	assert.InDelta(t, math.Log(104)-math.Log(106), f.RelLow[0], 1e-12)
	assert.InDelta(t, math.Log(108)-math.Log(106), f.RelClose[0], 1e-12)
	assert.InDelta(t, math.Log(101)-math.Log(107), f.RelClose[1], 1e-12)
}

func TestExtractAnchorsOnOwnCloseAtTableStart(t *testing.T) {
	bars := []model.Bar{
		{Timestamp: 1, Open: 100, High: 110, Low: 95, Close: 105},
		{Timestamp: 2, Open: 106, High: 112, Low: 104, Close: 108},
	}

	f, err := Extract(bars, segment.Range{Start: 0, End: 1})
	require.NoError(t, err)

	// No bar before position 0: the segment chains off its own first close.
	assert.InDelta(t, math.Log(105), f.AnchorLogClose, 1e-12)
	assert.InDelta(t, math.Log(100)-math.Log(105), f.GapOpen[0], 1e-12)
	assert.False(t, math.IsNaN(f.GapOpen[0]))
}

func TestExtractRejectsNonPositivePrices(t *testing.T) {
	bars := []model.Bar{
		{Timestamp: 1, Open: 100, High: 110, Low: 95, Close: 105},
		{Timestamp: 2, Open: 106, High: 112, Low: -1, Close: 108},
	}
	_, err := Extract(bars, segment.Range{Start: 1, End: 1})
	assert.ErrorIs(t, err, ErrNonPositivePrice)

	// Anchor close counts too, even though it sits outside the segment.
	bars[0].Close = 0
	bars[1].Low = 104
	_, err = Extract(bars, segment.Range{Start: 1, End: 1})
	assert.ErrorIs(t, err, ErrNonPositivePrice)
}

func TestExtractRejectsSegmentOutOfBounds(t *testing.T) {
	bars := []model.Bar{{Timestamp: 1, Open: 1, High: 1, Low: 1, Close: 1}}

	_, err := Extract(bars, segment.Range{Start: 0, End: 1})
	assert.Error(t, err)

	_, err = Extract(bars, segment.Range{Start: -1, End: 0})
	assert.Error(t, err)
}
