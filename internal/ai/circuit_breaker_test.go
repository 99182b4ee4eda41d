package ai

import (
	"testing"
	"time"

	"google.golang.org/genai"

	"careerpro/internal/config"
)

func TestIndependentCircuitBreakerConfigurations(t *testing.T) {
	// Each enrichment operation gets its own circuit breaker configuration.

	summaryConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      3,
			Interval:         60 * time.Second,
			Timeout:          60 * time.Second,
			MinRequests:      3,
			FailureThreshold: 0.6,
		},
	}

	bulletConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.5-flash",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      5,                // Different from summary
			Interval:         30 * time.Second, // Different from summary
			Timeout:          45 * time.Second, // Different from summary
			MinRequests:      2,                // Different from summary
			FailureThreshold: 0.7,              // Different from summary
		},
	}

	atsConfig := &config.OperationAIConfig{
		Provider: "gemini",
		Model:    "gemini-2.5-pro",
		CircuitBreaker: config.CircuitBreakerConfig{
			Enabled:          true,
			MaxRequests:      4,                // Different from others
			Interval:         90 * time.Second, // Different from others
			Timeout:          75 * time.Second, // Different from others
			MinRequests:      5,                // Different from others
			FailureThreshold: 0.5,              // Different from others
		},
	}

	summaryCB := NewAICircuitBreaker("Summary", summaryConfig, nil)
	bulletCB := NewAICircuitBreaker("Bullet", bulletConfig, nil)
	atsCB := NewAICircuitBreaker("Ats", atsConfig, nil)

	for name, cb := range map[string]*AICircuitBreaker{
		"AI-Summary": summaryCB,
		"AI-Bullet":  bulletCB,
		"AI-Ats":     atsCB,
	} {
		t.Run(name, func(t *testing.T) {
			if cb == nil {
				t.Fatal("Expected an enabled breaker")
			}
			stats := cb.GetStats()
			if stats["enabled"] != true {
				t.Error("Expected stats to report enabled")
			}
			if stats["name"] != name {
				t.Errorf("Breaker name = %v, expected %s", stats["name"], name)
			}
			if stats["state"] != "closed" {
				t.Errorf("Fresh breaker state = %v, expected closed", stats["state"])
			}
			if !cb.IsHealthy() {
				t.Error("Fresh breaker should be healthy")
			}
		})
	}
}

func TestDisabledCircuitBreakerIsNil(t *testing.T) {
	cfg := &config.OperationAIConfig{
		CircuitBreaker: config.CircuitBreakerConfig{Enabled: false},
	}

	if cb := NewAICircuitBreaker("Summary", cfg, nil); cb != nil {
		t.Error("Expected nil breaker when disabled")
	}
	if cb := NewModelCircuitBreaker("Summary", cfg, nil); cb != nil {
		t.Error("Expected nil model breaker when disabled")
	}
}

func TestNilCircuitBreakerExecutesDirectly(t *testing.T) {
	var cb *AICircuitBreaker

	called := false
	_, err := cb.Execute(func() (*genai.GenerateContentResponse, error) {
		called = true
		return nil, nil
	})
	if err != nil {
		t.Fatalf("Nil breaker Execute failed: %v", err)
	}
	if !called {
		t.Error("Nil breaker must pass the call through")
	}

	if !cb.IsHealthy() {
		t.Error("Nil breaker should report healthy")
	}
	if stats := cb.GetStats(); stats["enabled"] != false {
		t.Error("Nil breaker stats should report disabled")
	}
}
