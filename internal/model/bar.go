package model

// Bar represents one OHLC bar (daily/minute etc.).
// Shared by loader, saver, permutation engine and serialization (json, parquet).
type Bar struct {
	Timestamp int64   `json:"t" parquet:"t"` // Unix timestamp in milliseconds
	Open      float64 `json:"o" parquet:"o"`
	High      float64 `json:"h" parquet:"h"`
	Low       float64 `json:"l" parquet:"l"`
	Close     float64 `json:"c" parquet:"c"`
	Volume    float64 `json:"v,omitempty" parquet:"v,optional"` // carried through, never permuted
}
