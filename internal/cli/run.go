package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/DjordjeVuckovic/irprep/pkg/config/env"
)

const (
	EnvStopWordFile      = "IRPREP_STOP_WORD_FILE"
	EnvBertTokenizerFile = "IRPREP_BERT_TOKENIZER_FILE"
	EnvReportQty         = "IRPREP_REPORT_QTY"
	EnvLogLevel          = "LOG_LEVEL"
)

// LoadEnv reads the .env files of a tool and sets up logging.
func LoadEnv(tool string) {
	if err := env.LoadDotEnv(os.Getenv("ENV"), filepath.Join("cmd", tool, ".env"), ".env"); err != nil {
		slog.Info("Skipping .env environment variables...", "error", err)
	}
	NewLogger(tool, env.String(EnvLogLevel, "info"))
}

// Execute runs the command until it finishes or the process is interrupted
// and exits with status 1 on failure.
func Execute(cmd *cobra.Command) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		slog.Error("Command failed", "command", cmd.Name(), "error", err)
		stop()
		os.Exit(1)
	}
}
