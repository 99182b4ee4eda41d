package cli

import (
	"fmt"

	"careerpro/internal/storage"
	"careerpro/internal/utils"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [resume-file]",
	Short: "Import a resume from a JSON file",
	Long: `Import a resume from a previously exported JSON file. The imported
document replaces the current snapshot wholesale, including any ATS
feedback it carries. Files that do not decode into a resume document are
rejected and the current snapshot is left untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	path := args[0]
	if err := utils.ValidateInputFile(path); err != nil {
		return err
	}
	if !utils.IsJSONFile(path) {
		logger.Warn("Import file does not have a .json extension", "file", path)
	}

	doc, err := storage.Import(path)
	if err != nil {
		return fmt.Errorf("failed to import resume: %w", err)
	}

	store := openStore(cfg, logger)
	if err := store.Save(doc); err != nil {
		return fmt.Errorf("failed to persist imported resume: %w", err)
	}

	logger.Info("Resume imported",
		"source", path,
		"snapshot", cfg.SnapshotPath())
	fmt.Printf("Imported resume from %s\n", path)
	return nil
}
