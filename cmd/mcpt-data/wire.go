//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"mcpt-data/internal/app"
)

// InitializeApp builds App (Config + Loader + Saver) via Wire.
func InitializeApp() (*App, error) {
	wire.Build(
		app.ProvideConfig,
		app.ProvideTableLoader,
		app.ProvidePacketSaver,
		wire.Struct(new(App), "Config", "Loader", "Saver"),
	)
	return nil, nil
}
