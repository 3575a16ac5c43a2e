package permute

import (
	"math"
	"math/rand"

	"mcpt-data/internal/model"
)

// DeriveSeeds expands one master seed into n child seeds, one per variant.
// The master stream is consumed up front so each variant owns a fixed seed
// and generation order (or parallelism) cannot change the output. Never
// uses the global rand source.
func DeriveSeeds(seed int64, n int) []int64 {
	master := rand.New(rand.NewSource(seed))
	seeds := make([]int64, n)
	for i := range seeds {
		seeds[i] = master.Int63()
	}
	return seeds
}

// Generate builds one synthetic variant of the segment from its Features
// and a child seed. src supplies the segment's original bars: timestamps
// and volume are copied by position, only O/H/L/C are replaced. The body
// triple (rel high/low/close) of one source bar always lands together, so
// per-bar OHLC ordering survives the shuffle; gaps are drawn from an
// independent ordering, decorrelating the jump process from bar shape.
func Generate(f *Features, src []model.Bar, seed int64) []model.Bar {
	rng := rand.New(rand.NewSource(seed))
	orderBody := rng.Perm(f.Len())
	orderGap := rng.Perm(f.Len())
	return reconstruct(f, src, orderBody, orderGap)
}

// reconstruct replays the shuffled moves sequentially, chaining each bar's
// open off the previous synthetic close in log space, starting from the
// anchor close. Pure function of its inputs. The chain is a true data
// dependency and cannot be split up.
func reconstruct(f *Features, src []model.Bar, orderBody, orderGap []int) []model.Bar {
	out := make([]model.Bar, len(src))
	priorClose := f.AnchorLogClose
	for k := range out {
		logOpen := priorClose + f.GapOpen[orderGap[k]]
		logClose := logOpen + f.RelClose[orderBody[k]]

		out[k] = model.Bar{
			Timestamp: src[k].Timestamp,
			Open:      math.Exp(logOpen),
			High:      math.Exp(logOpen + f.RelHigh[orderBody[k]]),
			Low:       math.Exp(logOpen + f.RelLow[orderBody[k]]),
			Close:     math.Exp(logClose),
			Volume:    src[k].Volume,
		}
		priorClose = logClose
	}
	return out
}
