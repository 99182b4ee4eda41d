package ai

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"math/big"
	"net"
	"net/http"
	"strings"
	"time"

	"careerpro/internal/config"
	cperrors "careerpro/internal/errors"
	"careerpro/internal/resume"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"google.golang.org/api/googleapi"
	"google.golang.org/genai"
)

// GeminiProvider implements Provider for Google Gemini
type GeminiProvider struct {
	client         *genai.Client
	config         *config.OperationAIConfig
	circuitBreaker *AICircuitBreaker
	modelBreaker   *ModelCircuitBreaker
	logger         *cperrors.Logger
}

// Ensure GeminiProvider implements Provider
var _ Provider = (*GeminiProvider)(nil)

// NewGeminiProvider creates a new Gemini provider instance for a specific
// enrichment operation
func NewGeminiProvider(cfg *config.OperationAIConfig, operation string, logger *cperrors.Logger) (*GeminiProvider, error) {
	if cfg.APIKey == "" {
		return nil, cperrors.NewConfigError(cperrors.ErrCodeMissingAPIKey,
			"Gemini API key is not configured", nil)
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.APIKey,
	})
	if err != nil {
		return nil, cperrors.NewAIError(cperrors.ErrCodeAIServiceFailed,
			"Failed to create Gemini client", err)
	}

	return &GeminiProvider{
		client:         client,
		config:         cfg,
		circuitBreaker: NewAICircuitBreaker(operation, cfg, logger),
		modelBreaker:   NewModelCircuitBreaker(operation, cfg, logger),
		logger:         logger,
	}, nil
}

// ModelInfo represents information about the AI model
type ModelInfo struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName,omitempty"`
	Version     string `json:"version,omitempty"`
	Available   bool   `json:"available"`
	Error       string `json:"error,omitempty"`
}

// GetModelInfo checks the readiness and availability of the configured model
func (g *GeminiProvider) GetModelInfo(ctx context.Context) *ModelInfo {
	modelInfo := &ModelInfo{
		Name:      g.config.Model,
		Available: false,
	}

	checkCtx, cancel := context.WithTimeout(ctx, modelCheckTimeout)
	defer cancel()

	model, err := g.modelBreaker.ExecuteModel(func() (*genai.Model, error) {
		return g.client.Models.Get(checkCtx, g.config.Model, &genai.GetModelConfig{})
	})
	if err != nil {
		modelInfo.Error = fmt.Sprintf("Failed to get model info: %v", err)
		g.logger.Warn("Model availability check failed",
			"model", g.config.Model,
			"provider", g.config.Provider,
			"error", err.Error())
		return modelInfo
	}

	modelInfo.Available = true
	if model.DisplayName != "" {
		modelInfo.DisplayName = model.DisplayName
	}
	if model.Version != "" {
		modelInfo.Version = model.Version
	}

	g.logger.Debug("Model availability check successful",
		"model", g.config.Model,
		"provider", g.config.Provider,
		"display_name", modelInfo.DisplayName,
		"version", modelInfo.Version)

	return modelInfo
}

const modelCheckTimeout = 10 * time.Second

// executeWithRetry executes a generation call with retry logic and
// exponential backoff
func (g *GeminiProvider) executeWithRetry(ctx context.Context, operation string, fn func() (*genai.GenerateContentResponse, error)) (*genai.GenerateContentResponse, error) {
	var lastErr error

	for attempt := 0; attempt <= *g.config.MaxRetries; attempt++ {
		if attempt > 0 {
			g.logger.Warn("Retrying AI operation",
				"operation", operation,
				"attempt", attempt,
				"max_retries", *g.config.MaxRetries,
				"error", lastErr.Error())

			// Exponential backoff with jitter to prevent thundering herd
			baseDelay := time.Duration(math.Pow(2, float64(attempt-1))) * time.Second
			jitterMax := big.NewInt(int64(float64(baseDelay) * 0.1))
			jitterBig, _ := rand.Int(rand.Reader, jitterMax)
			jitter := time.Duration(jitterBig.Int64())
			backoff := min(baseDelay+jitter, 30*time.Second)

			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}

		result, err := fn()
		if err == nil {
			if attempt > 0 {
				g.logger.Info("AI operation succeeded after retry",
					"operation", operation,
					"successful_attempt", attempt+1)
			}
			return result, nil
		}

		lastErr = err

		// Don't retry on certain errors (auth, invalid input, etc.)
		if !g.isRetryableError(err) {
			g.logger.Debug("Error is not retryable, stopping retry attempts",
				"operation", operation,
				"error", err.Error())
			break
		}
	}

	g.logger.LogError(lastErr, "AI operation failed after all retry attempts",
		"operation", operation,
		"total_attempts", *g.config.MaxRetries+1)

	return nil, fmt.Errorf("operation '%s' failed after %d retries: %w", operation, *g.config.MaxRetries, lastErr)
}

// isRetryableError determines if an error should trigger a retry
func (g *GeminiProvider) isRetryableError(err error) bool {
	if err == nil {
		return false
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		// Timeouts and connection errors are worth another attempt
		return true
	}

	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case http.StatusTooManyRequests,
			http.StatusInternalServerError,
			http.StatusBadGateway,
			http.StatusServiceUnavailable,
			http.StatusGatewayTimeout:
			return true
		}
	}

	return false
}

// generate runs one generation call through the circuit breaker and retry
// stack, with common tracing attributes.
func (g *GeminiProvider) generate(
	ctx context.Context,
	operation string,
	userPrompt string,
	systemPrompt string,
	genaiConfig *genai.GenerateContentConfig,
	spanAttributes ...attribute.KeyValue,
) (*genai.GenerateContentResponse, *TokenUsage, error) {
	tracer := otel.Tracer("careerpro.ai.gemini")
	ctx, span := tracer.Start(ctx, "gemini."+operation)
	defer span.End()

	span.SetAttributes(
		attribute.String("ai.provider", "gemini"),
		attribute.String("ai.model", g.config.Model),
		attribute.Float64("ai.temperature", float64(*g.config.Temperature)),
	)
	span.SetAttributes(spanAttributes...)

	if genaiConfig == nil {
		genaiConfig = &genai.GenerateContentConfig{}
	}
	if *g.config.Temperature > 0 && genaiConfig.Temperature == nil {
		genaiConfig.Temperature = g.config.Temperature
	}
	if *g.config.UseSystemPrompts && systemPrompt != "" {
		genaiConfig.SystemInstruction = genai.NewContentFromText(systemPrompt, genai.RoleUser)
	}

	opCtx, cancel := context.WithTimeout(ctx, *g.config.Timeout)
	defer cancel()

	result, err := g.circuitBreaker.Execute(func() (*genai.GenerateContentResponse, error) {
		return g.executeWithRetry(opCtx, operation, func() (*genai.GenerateContentResponse, error) {
			return g.client.Models.GenerateContent(opCtx, g.config.Model, genai.Text(userPrompt), genaiConfig)
		})
	})
	if err != nil {
		span.RecordError(err)
		span.SetAttributes(attribute.Bool("success", false))
		return nil, nil, cperrors.NewAIError(cperrors.ErrCodeAIServiceFailed,
			"Failed to generate content for "+operation, err)
	}

	tokenUsage := extractTokenUsage(result)
	if tokenUsage != nil {
		span.SetAttributes(
			attribute.Int64("ai.tokens.input", tokenUsage.InputTokens),
			attribute.Int64("ai.tokens.output", tokenUsage.OutputTokens),
			attribute.Int64("ai.tokens.total", tokenUsage.TotalTokens),
		)
	}

	span.SetAttributes(attribute.Bool("success", true))
	return result, tokenUsage, nil
}

// RewriteSummary implements Provider for professional summary rewrites
func (g *GeminiProvider) RewriteSummary(ctx context.Context, doc *resume.Document) (string, *TokenUsage, error) {
	experience := make([]string, 0, len(doc.Experience))
	for _, exp := range doc.Experience {
		experience = append(experience, fmt.Sprintf("%s at %s", exp.Position, exp.Company))
	}
	skills := make([]string, 0, len(doc.Skills))
	for _, skill := range doc.Skills {
		skills = append(skills, skill.Name)
	}

	userPrompt := fmt.Sprintf(
		resolvePrompt(g.config.Prompts.User, DefaultUserPrompts.RewriteSummary),
		strings.Join(experience, ", "),
		strings.Join(skills, ", "),
	)
	systemPrompt := resolvePrompt(g.config.Prompts.System, DefaultSystemPrompts.RewriteSummary)

	result, tokenUsage, err := g.generate(ctx, "rewrite_summary", userPrompt, systemPrompt, nil,
		attribute.Int("input.experience_count", len(doc.Experience)),
		attribute.Int("input.skill_count", len(doc.Skills)),
	)
	if err != nil {
		return "", nil, err
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", tokenUsage, cperrors.NewAIError(cperrors.ErrCodeAIEmptyResponse,
			"Model returned an empty summary", nil)
	}
	return text, tokenUsage, nil
}

// OptimizeBullet implements Provider for experience bullet rewrites
func (g *GeminiProvider) OptimizeBullet(ctx context.Context, bullet string) (string, *TokenUsage, error) {
	userPrompt := fmt.Sprintf(
		resolvePrompt(g.config.Prompts.User, DefaultUserPrompts.OptimizeBullet),
		bullet,
	)
	systemPrompt := resolvePrompt(g.config.Prompts.System, DefaultSystemPrompts.OptimizeBullet)

	result, tokenUsage, err := g.generate(ctx, "optimize_bullet", userPrompt, systemPrompt, nil,
		attribute.Int("input.bullet_length", len(bullet)),
	)
	if err != nil {
		return "", nil, err
	}

	text := strings.TrimSpace(result.Text())
	if text == "" {
		return "", tokenUsage, cperrors.NewAIError(cperrors.ErrCodeAIEmptyResponse,
			"Model returned an empty bullet point", nil)
	}
	return text, tokenUsage, nil
}

// ScoreResume implements Provider for ATS compatibility analysis
func (g *GeminiProvider) ScoreResume(ctx context.Context, doc *resume.Document) (resume.AtsAnalysis, *TokenUsage, error) {
	docJSON, err := json.Marshal(doc)
	if err != nil {
		return resume.AtsAnalysis{}, nil, cperrors.NewInternalError(cperrors.ErrCodeAIServiceFailed,
			"Failed to encode resume for analysis", err)
	}

	candidate := doc.PersonalInfo.FullName
	if candidate == "" {
		candidate = "Professional"
	}

	userPrompt := fmt.Sprintf(
		resolvePrompt(g.config.Prompts.User, DefaultUserPrompts.ScoreResume),
		candidate,
		string(docJSON),
	)
	systemPrompt := resolvePrompt(g.config.Prompts.System, DefaultSystemPrompts.ScoreResume)

	result, tokenUsage, err := g.generate(ctx, "score_resume", userPrompt, systemPrompt, buildScoreSchema(),
		attribute.Int("input.resume_length", len(docJSON)),
	)
	if err != nil {
		return resume.AtsAnalysis{}, nil, err
	}

	var analysis resume.AtsAnalysis
	if err := json.Unmarshal([]byte(result.Text()), &analysis); err != nil {
		return resume.AtsAnalysis{}, tokenUsage, cperrors.NewAIError(cperrors.ErrCodeAIResponseParse,
			"Failed to parse ATS analysis response", err)
	}

	return SanitizeAnalysis(analysis), tokenUsage, nil
}

// buildScoreSchema creates the structured output schema for ATS analysis
func buildScoreSchema() *genai.GenerateContentConfig {
	return &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"score": {Type: genai.TypeInteger},
				"feedbacks": {
					Type: genai.TypeArray,
					Items: &genai.Schema{
						Type: genai.TypeObject,
						Properties: map[string]*genai.Schema{
							"category":   {Type: genai.TypeString},
							"message":    {Type: genai.TypeString},
							"status":     {Type: genai.TypeString},
							"suggestion": {Type: genai.TypeString},
						},
						Required: []string{"category", "message", "status", "suggestion"},
					},
				},
			},
			Required: []string{"score", "feedbacks"},
		},
	}
}

// GetCircuitBreakerStats returns circuit breaker statistics
func (g *GeminiProvider) GetCircuitBreakerStats() map[string]any {
	stats := map[string]any{
		"ai_operations":    g.circuitBreaker.GetStats(),
		"model_operations": g.modelBreaker.GetModelStats(),
	}

	aiHealthy := g.circuitBreaker.IsHealthy()
	modelHealthy := g.modelBreaker.IsModelHealthy()
	stats["overall_healthy"] = aiHealthy && modelHealthy

	return stats
}

// Close implements Provider
func (g *GeminiProvider) Close() error {
	// Gemini client doesn't have a Close method in current single-shot usage
	return nil
}

// TokenUsage represents token usage information from AI responses
type TokenUsage struct {
	InputTokens  int64
	OutputTokens int64
	TotalTokens  int64
}

// extractTokenUsage extracts token usage information from a Gemini response
func extractTokenUsage(result *genai.GenerateContentResponse) *TokenUsage {
	if result == nil || result.UsageMetadata == nil {
		return nil
	}

	usage := result.UsageMetadata
	return &TokenUsage{
		InputTokens:  int64(usage.PromptTokenCount),
		OutputTokens: int64(usage.CandidatesTokenCount),
		TotalTokens:  int64(usage.TotalTokenCount),
	}
}
