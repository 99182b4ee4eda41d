package cli

import (
	"careerpro/internal/storage"
	"careerpro/internal/tui"

	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the resume interactively",
	Long: `Open the interactive resume editor. The editor walks through five
steps (basics, experience, education, skills and projects), autosaves every
change to the local snapshot after a short debounce, and offers AI polishing
and ATS scoring from within the form.`,
	RunE: runEdit,
}

func runEdit(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	sess, store, err := loadSession(cfg, logger)
	if err != nil {
		return err
	}

	autosaver := storage.NewAutosaver(store, cfg.Storage.AutosaveDebounce, logger)
	defer autosaver.Close()

	return tui.Run(cmd.Context(), cfg, logger, sess, autosaver)
}
