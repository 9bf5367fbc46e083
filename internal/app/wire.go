//go:build wireinject
// +build wireinject

package app

import (
	"log/slog"

	"github.com/google/wire"

	"speech2text/internal/api/server"
	"speech2text/internal/config"
)

// InitializeApp assembles the server and its dependencies from configuration.
func InitializeApp(cfg *config.Config, logger *slog.Logger) (*App, error) {
	wire.Build(
		provideDAO,
		provideTranscriber,
		provideClassifier,
		provideTranscriptService,
		provideServerConfig,
		server.NewServer,
		NewApp,
	)
	return &App{}, nil
}
