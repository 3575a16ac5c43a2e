package app

import (
	"fmt"
	"log/slog"
	"time"

	"mcpt-data/internal/loader"
	"mcpt-data/internal/materialize"
	"mcpt-data/internal/model"
	"mcpt-data/internal/permute"
	"mcpt-data/internal/run"
	"mcpt-data/internal/saver"
	"mcpt-data/internal/segment"
)

// segmentSpec is one unit of work: a segment range, its tag and output dir,
// and the master seed its variants are derived from.
type segmentSpec struct {
	Tag  string
	Dir  string
	Rng  segment.Range
	Seed int64
}

// RunFlow executes one batch: load the table, split the trailing window,
// then permute and materialize each segment in turn. The two segments are
// independent units of work; a failure in the second leaves the first's
// committed files alone.
func RunFlow(cfg *Config, ld loader.TableLoader, ps saver.PacketSaver) error {
	bars, err := ld.Load(cfg.SourceFile)
	if err != nil {
		return fmt.Errorf("loading %s: %w", cfg.SourceFile, err)
	}
	if err := checkAscending(bars); err != nil {
		return err
	}
	slog.Info("table loaded", "source", cfg.SourceFile, "bars", len(bars))

	segIn, segOut, err := segment.Split(len(bars), cfg.WindowBars, cfg.PermuteRatio)
	if err != nil {
		return err
	}

	seedIn, seedOut := masterSeeds(cfg.Seed)
	slog.Info("window split",
		"window", cfg.WindowBars, "ratio", cfg.PermuteRatio,
		"in_start", segIn.Start, "in_len", segIn.Len(),
		"out_start", segOut.Start, "out_len", segOut.Len())

	specs := []segmentSpec{
		{Tag: "in", Dir: cfg.InOutputDir, Rng: segIn, Seed: seedIn},
		{Tag: "out", Dir: cfg.OutOutputDir, Rng: segOut, Seed: seedOut},
	}
	for _, spec := range specs {
		if err := runSegment(cfg, ps, bars, spec); err != nil {
			return fmt.Errorf("segment %s: %w", spec.Tag, err)
		}
	}
	return nil
}

// runSegment permutes one segment and commits its output set. All
// computation finishes before the first file is written, so a failing
// segment leaves no partial output.
func runSegment(cfg *Config, ps saver.PacketSaver, bars []model.Bar, spec segmentSpec) error {
	features, err := permute.Extract(bars, spec.Rng)
	if err != nil {
		return err
	}

	src := bars[spec.Rng.Start : spec.Rng.End+1]
	seeds := permute.DeriveSeeds(spec.Seed, cfg.NPerm)
	variants := run.GenerateAll(features, src, seeds, cfg.Workers)

	w := materialize.Writer{Saver: ps, Dir: spec.Dir, Base: cfg.BaseName(), Tag: spec.Tag}
	written, err := w.Write(src, variants)
	if err != nil {
		return err
	}

	if _, err := run.WriteReport(spec.Dir, run.Report{
		Base:     cfg.BaseName(),
		Tag:      spec.Tag,
		Seed:     spec.Seed,
		Variants: len(variants),
		Written:  written,
	}); err != nil {
		slog.Warn("could not write run report", "tag", spec.Tag, "error", err)
	}

	slog.Info("segment done", "tag", spec.Tag, "bars", spec.Rng.Len(), "variants", len(variants), "files", len(written), "dir", spec.Dir)
	return nil
}

// masterSeeds fixes the per-segment master seeds before any generation.
// With an explicit seed the "out" segment uses seed+1, keeping the two
// segments' draws distinct but jointly reproducible.
func masterSeeds(seed *int64) (in, out int64) {
	if seed != nil {
		return *seed, *seed + 1
	}
	now := time.Now().UnixNano()
	return now, now + 1
}

func checkAscending(bars []model.Bar) error {
	if len(bars) == 0 {
		return fmt.Errorf("source table is empty")
	}
	for i := 1; i < len(bars); i++ {
		if bars[i].Timestamp <= bars[i-1].Timestamp {
			return fmt.Errorf("timestamps not strictly ascending at position %d (%d after %d)",
				i, bars[i].Timestamp, bars[i-1].Timestamp)
		}
	}
	return nil
}
