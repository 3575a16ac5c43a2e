package saver

import (
	"strings"

	"mcpt-data/internal/model"
)

// PacketSaver is the abstraction for writing one table of bars to disk.
// High-level code injects the implementation; the materializer only
// depends on the interface.
type PacketSaver interface {
	Save(bars []model.Bar, path string) error
	Extension() string
}

// NewPacketSaver creates an implementation by format (csv, parquet, json).
// Returns nil if the format is not supported.
func NewPacketSaver(format string) PacketSaver {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "csv":
		return CSVSaver{}
	case "parquet":
		return ParquetSaver{}
	case "json":
		return JSONSaver{}
	default:
		return nil
	}
}
