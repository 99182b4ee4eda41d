package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"careerpro/internal/ai"
	"careerpro/internal/observability"
	"careerpro/internal/resume"

	"go.opentelemetry.io/otel/attribute"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// writeJSONResponse encodes v as the JSON response body
func writeJSONResponse(w http.ResponseWriter, span oteltrace.Span, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		span.RecordError(err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// createSummaryHandler wraps the summary rewrite handler with observability
func (s *Server) createSummaryHandler(om *observability.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerpro.api")
		ctx, span := tracer.Start(ctx, "api.summary")
		defer span.End()

		var req SummaryRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if req.Document == nil {
			err := fmt.Errorf("missing document")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing document", "document field is required", http.StatusBadRequest)
			return
		}
		if len(req.Document.Experience) == 0 && len(req.Document.Skills) == 0 {
			err := fmt.Errorf("document has no experience or skills")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Insufficient content", "document must contain experience entries or skills to derive a summary", http.StatusBadRequest)
			return
		}

		req.Document.Normalize()
		span.SetAttributes(
			attribute.Int("request.experience_count", len(req.Document.Experience)),
			attribute.Int("request.skill_count", len(req.Document.Skills)),
			attribute.String("operation", "summary"),
		)

		summaryConfig := s.AppConfig.GetSummaryConfig()
		aiService, err := ai.NewService(&summaryConfig, "summary", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var summary string
		err = metrics.TrackAIOperation(ctx, "summary", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.RewriteSummary(ctx, req.Document)
			summary = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "summary_rewritten", false,
				attribute.String("error", err.Error()))
			writeErrorResponse(w, "Failed to rewrite summary", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "summary_rewritten", true,
			attribute.Int("output.summary_length", len(summary)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.summary_length", len(summary)),
		)

		writeJSONResponse(w, span, SummaryResponse{Summary: summary})
	}
}

// createBulletHandler wraps the bullet optimization handler with observability
func (s *Server) createBulletHandler(om *observability.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerpro.api")
		ctx, span := tracer.Start(ctx, "api.bullet")
		defer span.End()

		var req BulletRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if strings.TrimSpace(req.Bullet) == "" {
			err := fmt.Errorf("missing bullet text")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing bullet", "bullet field is required", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.bullet_length", len(req.Bullet)),
			attribute.String("operation", "bullet"),
		)

		bulletConfig := s.AppConfig.GetBulletConfig()
		aiService, err := ai.NewService(&bulletConfig, "bullet", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var bullet string
		err = metrics.TrackAIOperation(ctx, "bullet", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.OptimizeBullet(ctx, req.Bullet)
			bullet = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "bullet_optimized", false)
			writeErrorResponse(w, "Failed to optimize bullet", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "bullet_optimized", true,
			attribute.Int("output.bullet_length", len(bullet)))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("response.bullet_length", len(bullet)),
		)

		writeJSONResponse(w, span, BulletResponse{Bullet: bullet})
	}
}

// createAtsHandler wraps the ATS scoring handler with observability
func (s *Server) createAtsHandler(om *observability.Manager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		tracer := om.Tracer("careerpro.api")
		ctx, span := tracer.Start(ctx, "api.ats")
		defer span.End()

		var req AtsRequest
		if err := parseJSONRequest(r, &req); err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Invalid request body", err.Error(), http.StatusBadRequest)
			return
		}

		if req.Document == nil {
			err := fmt.Errorf("missing document")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Missing document", "document field is required", http.StatusBadRequest)
			return
		}

		req.Document.Normalize()
		if req.Document.IsEmpty() {
			err := fmt.Errorf("document is empty")
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "validation"))
			writeErrorResponse(w, "Empty document", "an empty resume cannot be scored", http.StatusBadRequest)
			return
		}

		span.SetAttributes(
			attribute.Int("request.experience_count", len(req.Document.Experience)),
			attribute.String("operation", "ats"),
		)

		atsConfig := s.AppConfig.GetAtsConfig()
		aiService, err := ai.NewService(&atsConfig, "ats", s.Logger)
		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "service_creation"))
			writeErrorResponse(w, "Failed to create AI service", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics := om.GetMetrics()
		var analysis resume.AtsAnalysis
		err = metrics.TrackAIOperation(ctx, "ats", func(ctx context.Context) *observability.AIOperationResult {
			output, tokenUsage, aiErr := aiService.Provider.ScoreResume(ctx, req.Document)
			analysis = output
			return &observability.AIOperationResult{
				Error:      aiErr,
				TokenUsage: (*observability.TokenUsage)(tokenUsage),
			}
		})

		if err != nil {
			span.RecordError(err)
			span.SetAttributes(attribute.String("error.type", "ai_processing"))
			metrics.RecordBusinessMetric(ctx, "resume_scored", false)
			writeErrorResponse(w, "Failed to score resume", err.Error(), http.StatusInternalServerError)
			return
		}

		metrics.RecordBusinessMetric(ctx, "resume_scored", true,
			attribute.Int("ats.score", analysis.Score))

		span.SetAttributes(
			attribute.Bool("success", true),
			attribute.Int("ats.score", analysis.Score),
			attribute.Int("ats.feedback_count", len(analysis.Feedbacks)),
		)

		writeJSONResponse(w, span, analysis)
	}
}

// healthHandler provides a health check endpoint including AI model status
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"status":  "healthy",
		"service": "careerpro",
		"version": s.Version,
	}

	aiStatus, breakerStats := s.checkAIModelsHealth()
	response["ai_models"] = aiStatus
	if len(breakerStats) > 0 {
		response["circuit_breakers"] = breakerStats
	}

	overallHealthy := true
	for _, modelStatus := range aiStatus {
		if modelInfo, ok := modelStatus.(*ai.ModelInfo); ok && !modelInfo.Available {
			overallHealthy = false
			break
		}
		if errInfo, ok := modelStatus.(map[string]any); ok {
			if avail, ok := errInfo["available"].(bool); ok && !avail {
				overallHealthy = false
				break
			}
		}
	}

	if !overallHealthy {
		response["status"] = "degraded"
		w.WriteHeader(http.StatusServiceUnavailable)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode health response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// checkAIModelsHealth checks the models behind the three enrichment
// operations and collects circuit breaker state per operation
func (s *Server) checkAIModelsHealth() (map[string]any, map[string]any) {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	aiStatus := make(map[string]any)
	breakerStats := make(map[string]any)

	checks := []struct {
		name string
		cfg  func() (svc *ai.Service, err error)
	}{
		{"summary", func() (*ai.Service, error) {
			cfg := s.AppConfig.GetSummaryConfig()
			return ai.NewService(&cfg, "summary", s.Logger)
		}},
		{"bullet", func() (*ai.Service, error) {
			cfg := s.AppConfig.GetBulletConfig()
			return ai.NewService(&cfg, "bullet", s.Logger)
		}},
		{"ats", func() (*ai.Service, error) {
			cfg := s.AppConfig.GetAtsConfig()
			return ai.NewService(&cfg, "ats", s.Logger)
		}},
	}

	for _, check := range checks {
		svc, err := check.cfg()
		if err != nil {
			aiStatus[check.name] = map[string]any{
				"available": false,
				"error":     fmt.Sprintf("Failed to create %s service: %v", check.name, err),
			}
			continue
		}
		aiStatus[check.name] = svc.GetModelInfo(ctx)
		if gp, ok := svc.Provider.(*ai.GeminiProvider); ok {
			breakerStats[check.name] = gp.GetCircuitBreakerStats()
		}
	}

	return aiStatus, breakerStats
}

// statsHandler provides server statistics including rate limiting info
func (s *Server) statsHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := map[string]any{
		"service": "careerpro",
		"version": s.Version,
		"server": map[string]any{
			"max_request_size_bytes": s.MaxRequestSize,
		},
	}

	if s.RateLimiter != nil {
		response["rate_limiting"] = s.RateLimiter.GetStats()
	} else {
		response["rate_limiting"] = map[string]any{
			"enabled": false,
		}
	}

	if s.RateLimit != nil {
		response["rate_limit_config"] = map[string]any{
			"enabled":          s.RateLimit.Enabled,
			"requests_per_min": s.RateLimit.RequestsPerMin,
			"burst_capacity":   s.RateLimit.BurstCapacity,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode stats response: %v", err)
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// parseJSONRequest parses JSON request body into the provided struct
func parseJSONRequest(r *http.Request, v any) error {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return fmt.Errorf("content-type must be application/json")
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return fmt.Errorf("request body too large (limit is %d bytes)", maxBytesErr.Limit)
		}
		return fmt.Errorf("failed to read request body: %w", err)
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			log.Printf("Failed to close request body: %v", err)
		}
	}()

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("failed to parse JSON: %w", err)
	}

	return nil
}

// writeErrorResponse writes a standardized error response
func writeErrorResponse(w http.ResponseWriter, error, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	response := ErrorResponse{
		Error:   error,
		Message: message,
	}

	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Printf("Failed to encode error response: %v", err)
		http.Error(w, "Failed to encode error response", http.StatusInternalServerError)
	}
}
