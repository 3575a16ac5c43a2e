package loader

import (
	"github.com/parquet-go/parquet-go"

	"mcpt-data/internal/model"
)

// ParquetLoader reads a Parquet table.
type ParquetLoader struct{}

func (ParquetLoader) Extension() string { return "parquet" }

func (ParquetLoader) Load(path string) ([]model.Bar, error) {
	return parquet.ReadFile[model.Bar](path)
}
