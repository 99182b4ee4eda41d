package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Discard the current resume and start over",
	Long: `Discard the current resume snapshot and any ATS analysis, returning
to an empty document. The operation requires --yes to run; without it the
command refuses and leaves the snapshot untouched.`,
	RunE: runReset,
}

var resetConfirmed bool

func init() {
	resetCmd.Flags().BoolVarP(&resetConfirmed, "yes", "y", false, "Confirm the reset")
}

func runReset(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	sess, store, err := loadSession(cfg, logger)
	if err != nil {
		return err
	}
	if err := sess.Reset(resetConfirmed); err != nil {
		return err
	}
	if err := store.Clear(); err != nil {
		return fmt.Errorf("failed to remove snapshot: %w", err)
	}

	logger.Info("Resume reset", "snapshot", cfg.SnapshotPath())
	fmt.Println("Resume reset to an empty document.")
	return nil
}
