package permute

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mcpt-data/internal/model"
	"mcpt-data/internal/segment"
)

// walkBars builds a positive random-walk table with valid per-bar OHLC
// ordering (high >= open/close, low <= open/close).
func walkBars(n int, seed int64) []model.Bar {
	rng := rand.New(rand.NewSource(seed))
	bars := make([]model.Bar, n)
	close := 100.0
	for i := range bars {
		open := close * math.Exp(rng.NormFloat64()*0.002)
		cl := open * math.Exp(rng.NormFloat64()*0.01)
		hi := math.Max(open, cl) * math.Exp(math.Abs(rng.NormFloat64())*0.005)
		lo := math.Min(open, cl) * math.Exp(-math.Abs(rng.NormFloat64())*0.005)
		bars[i] = model.Bar{
			Timestamp: int64(i) * 86_400_000,
			Open:      open, High: hi, Low: lo, Close: cl,
			Volume: float64(rng.Intn(10_000)),
		}
		close = cl
	}
	return bars
}

func TestDeriveSeedsReproducible(t *testing.T) {
	a := DeriveSeeds(42, 16)
	b := DeriveSeeds(42, 16)
	require.Equal(t, a, b)

	c := DeriveSeeds(43, 16)
	assert.NotEqual(t, a, c)

	assert.Empty(t, DeriveSeeds(42, 0))

	// Child seeds are a prefix-stable stream: asking for more must not
	// change the ones already derived.
	long := DeriveSeeds(42, 32)
	assert.Equal(t, a, long[:16])
}

func TestGenerateDeterministic(t *testing.T) {
	bars := walkBars(300, 7)
	seg := segment.Range{Start: 50, End: 249}
	f, err := Extract(bars, seg)
	require.NoError(t, err)

	src := bars[seg.Start : seg.End+1]
	v1 := Generate(f, src, 12345)
	v2 := Generate(f, src, 12345)
	assert.Equal(t, v1, v2)

	v3 := Generate(f, src, 54321)
	assert.NotEqual(t, v1, v3)
}

func TestGeneratePreservesTimestampsAndVolume(t *testing.T) {
	bars := walkBars(100, 3)
	seg := segment.Range{Start: 20, End: 99}
	f, err := Extract(bars, seg)
	require.NoError(t, err)

	src := bars[seg.Start : seg.End+1]
	variant := Generate(f, src, 1)
	require.Len(t, variant, len(src))
	for i := range variant {
		assert.Equal(t, src[i].Timestamp, variant[i].Timestamp)
		assert.Equal(t, src[i].Volume, variant[i].Volume)
	}
}

func TestGeneratePreservesMoveMultisets(t *testing.T) {
	bars := walkBars(200, 11)
	seg := segment.Range{Start: 40, End: 199}
	f, err := Extract(bars, seg)
	require.NoError(t, err)

	src := bars[seg.Start : seg.End+1]
	variant := Generate(f, src, 99)

	// Re-derive the variant's moves against the same anchor.
	gaps := make([]float64, len(variant))
	triples := make([][3]float64, len(variant))
	prior := f.AnchorLogClose
	for i, b := range variant {
		lo := math.Log(b.Open)
		gaps[i] = lo - prior
		triples[i] = [3]float64{math.Log(b.High) - lo, math.Log(b.Low) - lo, math.Log(b.Close) - lo}
		prior = math.Log(b.Close)
	}

	origGaps := append([]float64(nil), f.GapOpen...)
	origTriples := make([][3]float64, f.Len())
	for i := range origTriples {
		origTriples[i] = [3]float64{f.RelHigh[i], f.RelLow[i], f.RelClose[i]}
	}

	sort.Float64s(gaps)
	sort.Float64s(origGaps)
	for i := range gaps {
		assert.InDelta(t, origGaps[i], gaps[i], 1e-9)
	}

	less := func(s [][3]float64) func(i, j int) bool {
		return func(i, j int) bool {
			if s[i][0] != s[j][0] {
				return s[i][0] < s[j][0]
			}
			if s[i][1] != s[j][1] {
				return s[i][1] < s[j][1]
			}
			return s[i][2] < s[j][2]
		}
	}
	sort.Slice(triples, less(triples))
	sort.Slice(origTriples, less(origTriples))
	for i := range triples {
		for k := 0; k < 3; k++ {
			assert.InDelta(t, origTriples[i][k], triples[i][k], 1e-9, "triple %d component %d", i, k)
		}
	}
}

func TestGeneratePreservesBarConsistency(t *testing.T) {
	bars := walkBars(500, 23)
	seg := segment.Range{Start: 0, End: 499}
	f, err := Extract(bars, seg)
	require.NoError(t, err)

	src := bars[seg.Start : seg.End+1]
	for _, seed := range DeriveSeeds(42, 5) {
		for i, b := range Generate(f, src, seed) {
			assert.GreaterOrEqual(t, b.High, b.Open, "bar %d", i)
			assert.GreaterOrEqual(t, b.High, b.Close, "bar %d", i)
			assert.LessOrEqual(t, b.Low, b.Open, "bar %d", i)
			assert.LessOrEqual(t, b.Low, b.Close, "bar %d", i)
			assert.False(t, math.IsNaN(b.Open) || math.IsInf(b.Open, 0), "bar %d", i)
		}
	}
}

func TestGenerateFiniteWhenSegmentStartsAtZero(t *testing.T) {
	bars := walkBars(50, 31)
	f, err := Extract(bars, segment.Range{Start: 0, End: 49})
	require.NoError(t, err)

	variant := Generate(f, bars, 77)
	first := variant[0]
	for _, v := range []float64{first.Open, first.High, first.Low, first.Close} {
		assert.False(t, math.IsNaN(v), "first reconstructed bar must be finite")
		assert.False(t, math.IsInf(v, 0))
		assert.Greater(t, v, 0.0)
	}
}
