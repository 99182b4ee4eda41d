package ai

import (
	"context"

	"careerpro/internal/resume"
)

// Provider is the interface enrichment backends implement.
// All methods return token usage information - callers can ignore it if not needed
type Provider interface {
	RewriteSummary(ctx context.Context, doc *resume.Document) (string, *TokenUsage, error)
	OptimizeBullet(ctx context.Context, bullet string) (string, *TokenUsage, error)
	ScoreResume(ctx context.Context, doc *resume.Document) (resume.AtsAnalysis, *TokenUsage, error)
	GetModelInfo(ctx context.Context) *ModelInfo
	Close() error
}
