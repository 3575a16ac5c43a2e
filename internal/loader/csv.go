package loader

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"mcpt-data/internal/model"
)

// CSVLoader reads a CSV table. The header row is required; columns are
// matched by name so both the short saver names (t,o,h,l,c,v) and the
// long exchange-export names (timestamp,open,high,low,close,volume) work.
// UTF-16 exports (BOM-prefixed) are transparently decoded.
type CSVLoader struct{}

func (CSVLoader) Extension() string { return "csv" }

var csvColumns = map[string]string{
	"t": "t", "time": "t", "timestamp": "t", "date": "t",
	"o": "o", "open": "o",
	"h": "h", "high": "h",
	"l": "l", "low": "l",
	"c": "c", "close": "c",
	"v": "v", "volume": "v",
}

func (CSVLoader) Load(path string) ([]model.Bar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	br := bufio.NewReader(f)
	// Detect UTF-16 BOM; if present, decode to UTF-8.
	if b, _ := br.Peek(2); len(b) >= 2 && ((b[0] == 0xFF && b[1] == 0xFE) || (b[0] == 0xFE && b[1] == 0xFF)) {
		if _, err := f.Seek(0, 0); err != nil {
			return nil, err
		}
		tr := transform.NewReader(f, unicode.UTF16(unicode.LittleEndian, unicode.ExpectBOM).NewDecoder())
		br = bufio.NewReader(tr)
	}

	r := csv.NewReader(br)
	r.FieldsPerRecord = -1
	r.LazyQuotes = true

	header, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("loader: reading csv header: %w", err)
	}
	idx := map[string]int{}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if col, ok := csvColumns[name]; ok {
			idx[col] = i
		}
	}
	for _, col := range []string{"t", "o", "h", "l", "c"} {
		if _, ok := idx[col]; !ok {
			return nil, fmt.Errorf("loader: csv missing required column %q in %s", col, path)
		}
	}

	var bars []model.Bar
	for line := 2; ; line++ {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("loader: csv line %d: %w", line, err)
		}
		if idx["t"] >= len(rec) {
			return nil, fmt.Errorf("loader: csv line %d: missing timestamp column", line)
		}
		var b model.Bar
		if b.Timestamp, err = strconv.ParseInt(strings.TrimSpace(rec[idx["t"]]), 10, 64); err != nil {
			return nil, fmt.Errorf("loader: csv line %d timestamp: %w", line, err)
		}
		if b.Open, err = parseFloat(rec, idx, "o", line); err != nil {
			return nil, err
		}
		if b.High, err = parseFloat(rec, idx, "h", line); err != nil {
			return nil, err
		}
		if b.Low, err = parseFloat(rec, idx, "l", line); err != nil {
			return nil, err
		}
		if b.Close, err = parseFloat(rec, idx, "c", line); err != nil {
			return nil, err
		}
		if i, ok := idx["v"]; ok && i < len(rec) && strings.TrimSpace(rec[i]) != "" {
			if b.Volume, err = strconv.ParseFloat(strings.TrimSpace(rec[i]), 64); err != nil {
				return nil, fmt.Errorf("loader: csv line %d volume: %w", line, err)
			}
		}
		bars = append(bars, b)
	}
	return bars, nil
}

func parseFloat(rec []string, idx map[string]int, col string, line int) (float64, error) {
	i := idx[col]
	if i >= len(rec) {
		return 0, fmt.Errorf("loader: csv line %d: missing column %q", line, col)
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(rec[i]), 64)
	if err != nil {
		return 0, fmt.Errorf("loader: csv line %d column %q: %w", line, col, err)
	}
	return v, nil
}
