package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"careerpro/internal/common"
	"careerpro/internal/render"
	"careerpro/internal/storage"

	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the current resume to plain text",
	Long: `Render the current resume snapshot through one of the built-in
plain-text templates. With --watch the command keeps running and re-renders
whenever the snapshot file changes on disk, for example while an edit
session is open in another terminal.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := getConfigFromContext(cmd.Context())
		// Apply default template if not specified
		if previewConfig.Template == "" {
			previewConfig.Template = cfg.App.DefaultTemplate
		}
		return common.ValidateTemplate(previewConfig.Template, cfg.App.SupportedTemplates)
	},
	RunE: runPreview,
}

var previewConfig common.CommandConfig
var previewWatch bool

func init() {
	previewCmd.Flags().StringVarP(&previewConfig.OutputFile, "output", "o", "", "Output file path (default: stdout)")
	previewCmd.Flags().StringVarP(&previewConfig.Template, "template", "t", "", "Template: classic, modern, or minimal")
	previewCmd.Flags().BoolVarP(&previewWatch, "watch", "w", false, "Re-render whenever the snapshot changes")

	// Add completion for template flag
	_ = previewCmd.RegisterFlagCompletionFunc("template", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		cfg := getConfigFromContext(cmd.Context())
		return common.GetSupportedTemplates(cfg.App.SupportedTemplates), cobra.ShellCompDirectiveNoFileComp
	})
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	renderOnce := func() error {
		store := openStore(cfg, logger)
		doc, _, err := store.Load()
		if err != nil {
			return err
		}
		if doc == nil {
			return fmt.Errorf("no resume snapshot found, run 'careerpro edit' first")
		}
		output, err := render.GlobalRegistry.Render(doc, previewConfig.Template)
		if err != nil {
			return err
		}
		outputHandler := common.NewOutputHandler(logger)
		return outputHandler.HandleOutput(output, previewConfig)
	}

	if err := renderOnce(); err != nil {
		return err
	}
	if !previewWatch {
		return nil
	}

	watcher := storage.NewSnapshotWatcher(cfg.SnapshotPath(), cfg.Storage.WatchDebounce, func() {
		if err := renderOnce(); err != nil {
			logger.LogError(err, "Preview re-render failed")
		}
	}, logger)
	if err := watcher.Start(); err != nil {
		return err
	}
	defer watcher.Stop()

	logger.Info("Watching snapshot for changes",
		"path", cfg.SnapshotPath(),
		"template", previewConfig.Template)

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	select {
	case <-cmd.Context().Done():
	case <-sig:
	}
	return nil
}
