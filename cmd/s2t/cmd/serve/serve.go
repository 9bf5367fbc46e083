package serve

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"speech2text/internal/app"
	"speech2text/internal/config"
)

// Cmd represents the serve command
var Cmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the speech-to-text HTTP server",
	Long: `Starts the HTTP server: POST /transcribe/ accepts audio uploads,
GET /transcripts/ and GET /transcripts/{id} read back persisted transcripts.`,
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	application, err := app.InitializeApp(cfg, logger)
	if err != nil {
		return err
	}
	defer application.DAO.Close()

	// Table creation failures are logged but do not halt startup; the
	// service runs and surfaces store errors per request.
	if err := application.DAO.InitSchema(cmd.Context()); err != nil {
		logger.Error("Failed to create/verify transcripts table", "error", err)
	}

	if err := application.Server.Start(); err != nil {
		return err
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return application.Server.Shutdown(ctx)
}
