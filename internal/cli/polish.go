package cli

import (
	"context"
	"fmt"

	"careerpro/internal/ai"
	"careerpro/internal/common"
	"careerpro/internal/resume"
	"careerpro/internal/session"

	"github.com/spf13/cobra"
)

var polishCmd = &cobra.Command{
	Use:   "polish",
	Short: "Rewrite parts of the resume with AI",
	Long: `Rewrite parts of the current resume using AI. The summary subcommand
produces an ATS-optimized professional summary from the experience and
skills on file; the bullet subcommand rewrites one experience description
into achievement-oriented bullet points.`,
}

var polishSummaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Rewrite the professional summary",
	Long: `Rewrite the professional summary from the experience entries and
skills currently on file. The resume needs at least one experience entry
or one skill before a summary can be generated.`,
	RunE: runPolishSummary,
}

var polishBulletCmd = &cobra.Command{
	Use:   "bullet",
	Short: "Optimize one experience description",
	Long: `Rewrite the description of a single experience entry into concise,
achievement-oriented bullet points. The entry is selected with
--experience; list entry IDs with 'careerpro export' or the edit view.`,
	RunE: runPolishBullet,
}

var polishExperienceID string

func init() {
	polishBulletCmd.Flags().StringVar(&polishExperienceID, "experience", "", "ID of the experience entry to optimize")
	_ = polishBulletCmd.MarkFlagRequired("experience")

	polishCmd.AddCommand(polishSummaryCmd)
	polishCmd.AddCommand(polishBulletCmd)
}

func runPolishSummary(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	sess, store, err := loadSession(cfg, logger)
	if err != nil {
		return err
	}
	doc := sess.Snapshot()
	if len(doc.Experience) == 0 && len(doc.Skills) == 0 {
		return fmt.Errorf("add experience or skills before generating a summary")
	}

	summaryConfig := cfg.GetSummaryConfig()
	aiService, err := ai.NewService(&summaryConfig, "summary", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	defer func() { _ = aiService.Close() }()

	logger.Info("Starting summary rewrite", "model", summaryConfig.Model)

	var rewritten string
	err = common.RunEnrichment(
		cmd.Context(),
		logger,
		sess,
		store,
		sess.BeginSummaryRewrite,
		func(ctx context.Context, doc *resume.Document) (string, *ai.TokenUsage, error) {
			return aiService.Provider.RewriteSummary(ctx, doc)
		},
		func(t session.Ticket, text string) error {
			rewritten = text
			return sess.ApplySummary(t, text)
		},
	)
	if err != nil {
		return fmt.Errorf("failed to rewrite summary: %w", err)
	}

	fmt.Println(rewritten)
	return nil
}

func runPolishBullet(cmd *cobra.Command, args []string) error {
	cfg := getConfigFromContext(cmd.Context())
	logger := getLoggerFromContext(cmd.Context())

	sess, store, err := loadSession(cfg, logger)
	if err != nil {
		return err
	}
	entry := sess.Snapshot().ExperienceByID(polishExperienceID)
	if entry == nil {
		return fmt.Errorf("no experience entry with ID %q", polishExperienceID)
	}

	bulletConfig := cfg.GetBulletConfig()
	aiService, err := ai.NewService(&bulletConfig, "bullet", logger)
	if err != nil {
		return fmt.Errorf("failed to create AI service: %w", err)
	}
	defer func() { _ = aiService.Close() }()

	logger.Info("Starting bullet optimization",
		"experience_id", polishExperienceID,
		"model", bulletConfig.Model)

	var optimized string
	err = common.RunEnrichment(
		cmd.Context(),
		logger,
		sess,
		store,
		func() (session.Ticket, error) { return sess.BeginBulletRewrite(polishExperienceID) },
		func(ctx context.Context, doc *resume.Document) (string, *ai.TokenUsage, error) {
			e := doc.ExperienceByID(polishExperienceID)
			if e == nil {
				return "", nil, fmt.Errorf("experience entry %q missing from snapshot", polishExperienceID)
			}
			return aiService.Provider.OptimizeBullet(ctx, e.Description)
		},
		func(t session.Ticket, text string) error {
			optimized = text
			return sess.ApplyBullet(t, polishExperienceID, text)
		},
	)
	if err != nil {
		return fmt.Errorf("failed to optimize bullet: %w", err)
	}

	fmt.Println(optimized)
	return nil
}
