package saver

import (
	"github.com/parquet-go/parquet-go"

	"mcpt-data/internal/model"
)

// ParquetSaver writes a table as Parquet.
type ParquetSaver struct{}

func (ParquetSaver) Extension() string { return "parquet" }

func (ParquetSaver) Save(bars []model.Bar, path string) error {
	return parquet.WriteFile(path, bars)
}
