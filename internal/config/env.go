package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Transcription provider identifiers accepted in STT_PROVIDER.
const (
	ProviderAssemblyAI = "assemblyai"
	ProviderWhisper    = "openai/whisper"
)

// Config is the process-wide configuration, loaded once at startup and
// passed down explicitly.
type Config struct {
	// Provider selects the transcription backend.
	Provider string
	// AssemblyAIAPIKey authenticates the assemblyai backend.
	AssemblyAIAPIKey string
	// OpenAIAPIKey authenticates the openai/whisper backend.
	OpenAIAPIKey string
	// DatabaseURL is a postgres DSN or a sqlite file path.
	DatabaseURL string
	// Language is the transcription language config sent to the provider.
	Language string
	// TempDir holds uploads while the provider call is in flight.
	TempDir string

	Host        string
	Port        string
	Environment string
}

// LoadEnv loads environment variables from a .env file if one exists.
// Missing files are not an error; variables may be set system-wide.
func LoadEnv() error {
	envPaths := []string{
		".env",
		".env.local",
	}

	for _, envPath := range envPaths {
		if _, err := os.Stat(envPath); err == nil {
			if err := godotenv.Load(envPath); err != nil {
				return fmt.Errorf("error loading %s file: %w", envPath, err)
			}
			break
		}
	}

	return nil
}

// Load reads and validates configuration from the environment. It fails
// fast: a missing database URL or a missing API key for the selected
// provider prevents startup.
func Load() (*Config, error) {
	cfg := &Config{
		Provider:         getEnvOrDefault("STT_PROVIDER", ProviderAssemblyAI),
		AssemblyAIAPIKey: strings.TrimSpace(os.Getenv("ASSEMBLYAI_API_KEY")),
		OpenAIAPIKey:     strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		DatabaseURL:      strings.TrimSpace(os.Getenv("DATABASE_URL")),
		Language:         getEnvOrDefault("STT_LANGUAGE", "en_us"),
		TempDir:          getEnvOrDefault("TEMP_DIR", os.TempDir()),
		Host:             getEnvOrDefault("HOST", "0.0.0.0"),
		Port:             getEnvOrDefault("PORT", "8000"),
		Environment:      getEnvOrDefault("ENVIRONMENT", "development"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable not set. Please check your .env file")
	}

	switch cfg.Provider {
	case ProviderAssemblyAI:
		if cfg.AssemblyAIAPIKey == "" {
			return nil, fmt.Errorf("ASSEMBLYAI_API_KEY environment variable not set. Please check your .env file")
		}
	case ProviderWhisper:
		if cfg.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set. Please check your .env file")
		}
	default:
		return nil, fmt.Errorf("unknown transcription provider %q (supported: %s, %s)",
			cfg.Provider, ProviderAssemblyAI, ProviderWhisper)
	}

	return cfg, nil
}

// IsPostgres reports whether DatabaseURL points at a postgres server rather
// than a local sqlite file.
func (c *Config) IsPostgres() bool {
	return strings.HasPrefix(c.DatabaseURL, "postgres://") ||
		strings.HasPrefix(c.DatabaseURL, "postgresql://")
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
