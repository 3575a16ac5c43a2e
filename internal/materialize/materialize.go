// Package materialize lays out a segment's variant set on disk: one file
// per variant, variant 0 being the untouched original segment.
package materialize

import (
	"fmt"
	"os"
	"path/filepath"

	"mcpt-data/internal/model"
	"mcpt-data/internal/saver"
)

// Writer persists one segment's output set under Dir, naming files by
// base name, segment tag and variant index.
type Writer struct {
	Saver saver.PacketSaver
	Dir   string
	Base  string
	Tag   string
}

// VariantPath returns the target path for variant i.
func (w Writer) VariantPath(i int) string {
	return filepath.Join(w.Dir, fmt.Sprintf("%s_%s_perm%03d.%s", w.Base, w.Tag, i, w.Saver.Extension()))
}

// Write persists the output set and returns the written paths in creation
// order. Variant 0 (original, may be nil to skip) is written only when its
// file does not exist yet, so the baseline survives reruns untouched.
// Variants 1..N are rewritten unconditionally on every run.
func (w Writer) Write(original []model.Bar, variants [][]model.Bar) ([]string, error) {
	if err := os.MkdirAll(w.Dir, 0755); err != nil {
		return nil, fmt.Errorf("materialize: creating %s: %w", w.Dir, err)
	}

	var written []string
	if original != nil {
		p := w.VariantPath(0)
		if _, err := os.Stat(p); os.IsNotExist(err) {
			if err := w.Saver.Save(original, p); err != nil {
				return written, fmt.Errorf("materialize: writing original %s: %w", p, err)
			}
		}
		written = append(written, p)
	}

	for i, bars := range variants {
		p := w.VariantPath(i + 1)
		if err := w.Saver.Save(bars, p); err != nil {
			return written, fmt.Errorf("materialize: writing variant %s: %w", p, err)
		}
		written = append(written, p)
	}
	return written, nil
}
