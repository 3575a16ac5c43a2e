package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"mcpt-data/internal/app"
	"mcpt-data/internal/loader"
	"mcpt-data/internal/saver"
	"mcpt-data/internal/slogx"
)

// App holds application dependencies built by Wire.
type App struct {
	Config *app.Config
	Loader loader.TableLoader
	Saver  saver.PacketSaver
}

func init() {
	slog.SetDefault(slogx.NewDefault("info"))
}

func main() {
	_ = godotenv.Load()

	a, err := InitializeApp()
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		os.Exit(1)
	}

	cfg := a.Config
	slog.SetDefault(slogx.NewDefault(cfg.LogLevel))
	slog.Info("permutation run",
		"source", cfg.SourceFile, "format", cfg.SaveFormat,
		"n_perm", cfg.NPerm, "window", cfg.WindowBars, "ratio", cfg.PermuteRatio,
		"seeded", cfg.Seed != nil)

	if err := app.RunFlow(cfg, a.Loader, a.Saver); err != nil {
		slog.Error("run failed", "error", err)
		os.Exit(1)
	}
	slog.Info("done", "in_dir", cfg.InOutputDir, "out_dir", cfg.OutOutputDir)
}
