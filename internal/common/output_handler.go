package common

import (
	"fmt"

	"careerpro/internal/errors"
)

// CommandConfig holds common configuration for rendering commands
type CommandConfig struct {
	OutputFile string
	Template   string
}

// OutputHandler handles writing rendered output
type OutputHandler struct {
	fileProcessor *FileProcessor
	logger        *errors.Logger
}

// NewOutputHandler creates a new output handler
func NewOutputHandler(logger *errors.Logger) *OutputHandler {
	return &OutputHandler{
		fileProcessor: NewFileProcessor(logger),
		logger:        logger,
	}
}

// HandleOutput writes the rendered text to the configured output file, or
// stdout when none is set.
func (oh *OutputHandler) HandleOutput(output string, config CommandConfig) error {
	if err := oh.fileProcessor.ValidateOutputFile(config.OutputFile); err != nil {
		return err
	}

	if config.OutputFile != "" {
		if err := oh.fileProcessor.WriteFile(config.OutputFile, output); err != nil {
			return err // Error already wrapped by WriteFile
		}

		oh.logger.Info("Output written successfully",
			"file", config.OutputFile, "template", config.Template)
	} else {
		fmt.Print(output)
	}

	return nil
}
