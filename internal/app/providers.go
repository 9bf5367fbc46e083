package app

import (
	"log/slog"
	"time"

	"speech2text/internal/api/server"
	"speech2text/internal/api/v1/services"
	"speech2text/internal/app/repository"
	"speech2text/internal/app/repository/pg"
	"speech2text/internal/app/repository/sqlite"
	"speech2text/internal/app/sentiment"
	"speech2text/internal/app/stt"
	"speech2text/internal/app/stt/assemblyai"
	"speech2text/internal/app/stt/whisper"
	"speech2text/internal/config"
)

// App bundles the pieces the serve command needs to run and shut down.
type App struct {
	Server *server.Server
	DAO    repository.TranscriptDAO
}

// NewApp creates the application bundle.
func NewApp(srv *server.Server, dao repository.TranscriptDAO) *App {
	return &App{Server: srv, DAO: dao}
}

// provideDAO selects the store implementation from the DATABASE_URL scheme.
func provideDAO(cfg *config.Config) (repository.TranscriptDAO, error) {
	if cfg.IsPostgres() {
		return pg.New(cfg.DatabaseURL)
	}
	return sqlite.New(cfg.DatabaseURL)
}

// provideTranscriber selects the transcription backend. Config validation
// already rejected unknown providers and missing keys.
func provideTranscriber(cfg *config.Config) stt.Transcriber {
	if cfg.Provider == config.ProviderWhisper {
		return whisper.New(cfg.OpenAIAPIKey)
	}
	return assemblyai.New(cfg.AssemblyAIAPIKey)
}

func provideClassifier() sentiment.Classifier {
	return sentiment.NewVADERClassifier()
}

func provideTranscriptService(
	cfg *config.Config,
	dao repository.TranscriptDAO,
	transcriber stt.Transcriber,
	classifier sentiment.Classifier,
	logger *slog.Logger,
) services.TranscriptService {
	return services.NewTranscriptService(dao, transcriber, classifier, cfg.TempDir, cfg.Language, logger)
}

func provideServerConfig(cfg *config.Config) server.Config {
	return server.Config{
		Host:        cfg.Host,
		Port:        cfg.Port,
		ReadTimeout: 30 * time.Second,
		// The transcription round-trip blocks for the provider's full
		// processing time, so responses carry no write deadline.
		WriteTimeout: 0,
		IdleTimeout:  60 * time.Second,
		Environment:  cfg.Environment,
	}
}
