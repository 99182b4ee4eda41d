package cli

import (
	"fmt"
	"os"

	"careerpro/internal/storage"
	"careerpro/internal/utils"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the current resume as a JSON file",
	Long: `Export the current resume snapshot as a pretty-printed JSON file.
The default file name is derived from the candidate name, for example
resume_jane_doe.json. Use --output to choose a different path.`,
	RunE: runExport,
}

var exportOutputFile string

func init() {
	exportCmd.Flags().StringVarP(&exportOutputFile, "output", "o", "", "Output file path (default: derived from the candidate name)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	store := openStore(cfg, logger)
	doc, _, err := store.Load()
	if err != nil {
		return err
	}
	if doc == nil {
		return fmt.Errorf("no resume snapshot found, run 'careerpro edit' first")
	}

	path, err := storage.Export(doc, exportOutputFile)
	if err != nil {
		return fmt.Errorf("failed to export resume: %w", err)
	}
	size := ""
	if info, err := os.Stat(path); err == nil {
		size = " (" + utils.FormatFileSize(info.Size()) + ")"
	}
	logger.Info("Resume exported", "path", path)
	fmt.Printf("Exported resume to %s%s\n", path, size)
	return nil
}
