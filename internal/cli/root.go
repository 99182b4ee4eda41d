package cli

import (
	"context"

	"careerpro/internal/config"
	"careerpro/internal/errors"
	"careerpro/internal/resume"
	"careerpro/internal/session"
	"careerpro/internal/storage"

	"github.com/spf13/cobra"
)

// Define custom private types for context keys.
type configKeyType struct{}
type loggerKeyType struct{}

// Use variables of these types as the keys.
var configKey = configKeyType{}
var loggerKey = loggerKeyType{}

var rootCmd = &cobra.Command{
	Use:   "careerpro",
	Short: "A CLI resume builder with AI-assisted polishing",
	Long: `CareerPro is a command-line resume builder. It keeps a single working
resume as a local JSON snapshot, renders it through plain-text templates,
and uses AI to rewrite summaries, optimize experience bullets and score
the resume against applicant tracking systems.`,
}

func Execute(ctx context.Context, cfg *config.Config, logger *errors.Logger) error {
	// Attach the config and logger to the context, making them available to all subcommands
	ctx = context.WithValue(ctx, configKey, cfg)
	ctx = context.WithValue(ctx, loggerKey, logger)
	rootCmd.SetContext(ctx)
	return rootCmd.Execute()
}

// getConfigFromContext is a helper function to get config from context
func getConfigFromContext(ctx context.Context) *config.Config {
	if cfg, ok := ctx.Value(configKey).(*config.Config); ok {
		return cfg
	}
	panic("config not found in context") // Should not happen if properly initialized
}

// getLoggerFromContext is a helper function to get logger from context
func getLoggerFromContext(ctx context.Context) *errors.Logger {
	if logger, ok := ctx.Value(loggerKey).(*errors.Logger); ok {
		return logger
	}
	panic("logger not found in context") // Should not happen if properly initialized
}

// openStore builds the snapshot store from the configured data dir.
func openStore(cfg *config.Config, logger *errors.Logger) *storage.FileStore {
	return storage.NewFileStore(cfg.SnapshotPath(), logger)
}

// loadSession loads the persisted snapshot into a fresh session. A missing
// or corrupt snapshot yields an empty document, matching first-run behavior.
func loadSession(cfg *config.Config, logger *errors.Logger) (*session.Session, *storage.FileStore, error) {
	store := openStore(cfg, logger)
	doc, _, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return session.New(doc, resume.UUIDGenerator{}, logger), store, nil
}

func init() {
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(polishCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
}
