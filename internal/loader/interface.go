package loader

import (
	"fmt"
	"path/filepath"
	"strings"

	"mcpt-data/internal/model"
)

// TableLoader reads one table of bars from disk. Mirror of saver.PacketSaver.
type TableLoader interface {
	Load(path string) ([]model.Bar, error)
	Extension() string
}

// ForPath picks a loader by the file's extension (csv, parquet, json).
func ForPath(path string) (TableLoader, error) {
	switch strings.ToLower(strings.TrimPrefix(filepath.Ext(path), ".")) {
	case "csv":
		return CSVLoader{}, nil
	case "parquet":
		return ParquetLoader{}, nil
	case "json":
		return JSONLoader{}, nil
	default:
		return nil, fmt.Errorf("loader: unsupported source extension %q (use: csv, parquet, json)", filepath.Ext(path))
	}
}
