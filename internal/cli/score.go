package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"careerpro/internal/ai"
	"careerpro/internal/common"
	"careerpro/internal/resume"
	"careerpro/internal/session"

	"github.com/spf13/cobra"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score the current resume against applicant tracking systems",
	Long: `Score the current resume snapshot using AI. The result is an overall
score from 0 to 100 plus categorized feedback items covering formatting,
content and keywords. The analysis is kept alongside the snapshot so the
edit view can display it later.`,
	RunE: runScore,
}

var scoreJSON bool

func init() {
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the analysis as JSON")
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	sess, store, err := loadSession(cfg, logger)
	if err != nil {
		return err
	}
	if sess.Snapshot().IsEmpty() {
		return fmt.Errorf("no resume data to score, run 'careerpro edit' first")
	}

	// Create AI service for the ats operation
	atsConfig := cfg.GetAtsConfig()
	aiService, err := ai.NewService(&atsConfig, "ats", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	defer func() { _ = aiService.Close() }()

	logger.Info("Starting resume scoring", "model", atsConfig.Model)

	var analysis resume.AtsAnalysis
	scoreOperation := func(ctx context.Context, doc *resume.Document) (resume.AtsAnalysis, *ai.TokenUsage, error) {
		return aiService.Provider.ScoreResume(ctx, doc)
	}
	err = common.RunEnrichment(
		cmd.Context(),
		logger,
		sess,
		store,
		sess.BeginScore,
		scoreOperation,
		func(t session.Ticket, a resume.AtsAnalysis) error {
			analysis = a
			return sess.ApplyAnalysis(t, a)
		},
	)
	if err != nil {
		return fmt.Errorf("failed to score resume: %w", err)
	}

	if scoreJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}
	printAnalysis(analysis)
	return nil
}

func printAnalysis(a resume.AtsAnalysis) {
	fmt.Printf("ATS score: %d/100\n", a.Score)
	if len(a.Feedbacks) == 0 {
		return
	}
	fmt.Println()
	for _, fb := range a.Feedbacks {
		fmt.Printf("[%s/%s] %s\n", fb.Category, fb.Status, fb.Message)
		if fb.Suggestion != "" {
			fmt.Printf("  Suggestion: %s\n", fb.Suggestion)
		}
	}
}
