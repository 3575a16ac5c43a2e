package app

import (
	"fmt"

	"mcpt-data/internal/loader"
	"mcpt-data/internal/saver"
)

// ProvideConfig loads and validates config from environment (for Wire).
func ProvideConfig() (*Config, error) {
	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ProvidePacketSaver creates PacketSaver from config (for Wire).
// Returns error if SaveFormat is not supported.
func ProvidePacketSaver(cfg *Config) (saver.PacketSaver, error) {
	ps := saver.NewPacketSaver(cfg.SaveFormat)
	if ps == nil {
		return nil, fmt.Errorf("unsupported SAVE_FORMAT %q (use: csv, parquet, json)", cfg.SaveFormat)
	}
	return ps, nil
}

// ProvideTableLoader picks the loader matching the source file's extension (for Wire).
func ProvideTableLoader(cfg *Config) (loader.TableLoader, error) {
	return loader.ForPath(cfg.SourceFile)
}
