package server

import (
	"time"

	"careerpro/internal/config"
	cperrors "careerpro/internal/errors"
	"careerpro/internal/resume"
)

// SummaryRequest is the request body for the summary rewrite endpoint
type SummaryRequest struct {
	Document *resume.Document `json:"document"`
}

// SummaryResponse carries the rewritten professional summary
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// BulletRequest is the request body for the bullet optimization endpoint
type BulletRequest struct {
	Bullet string `json:"bullet"`
}

// BulletResponse carries the rewritten bullet point
type BulletResponse struct {
	Bullet string `json:"bullet"`
}

// AtsRequest is the request body for the ATS scoring endpoint
type AtsRequest struct {
	Document *resume.Document `json:"document"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// Server holds configuration for the HTTP enrichment API
type Server struct {
	Host    string
	Port    string
	Version string

	// Full application configuration
	AppConfig *config.Config

	// TLS cert/key pair; TLS is disabled when either is empty
	TLSCertFile string
	TLSKeyFile  string

	// API Authentication
	APIKeys map[string]bool

	// Timeout configurations
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration

	// Request size limit
	MaxRequestSize int64

	// Rate limiting
	RateLimit   *config.RateLimitConfig
	RateLimiter *RateLimiter

	// Logger
	Logger *cperrors.Logger
}

// NewServer creates a new Server instance from the application configuration
func NewServer(appCfg *config.Config, version string, logger *cperrors.Logger) *Server {
	srvCfg := appCfg.Server

	// Convert API keys slice to map for O(1) lookup
	apiKeyMap := make(map[string]bool)
	for _, key := range srvCfg.APIKeys {
		if key != "" {
			apiKeyMap[key] = true
		}
	}

	var rateLimiter *RateLimiter
	if srvCfg.RateLimit.Enabled {
		rateLimiter = NewRateLimiter(
			srvCfg.RateLimit.RequestsPerMin,
			srvCfg.RateLimit.BurstCapacity,
			logger,
		)
	}

	return &Server{
		Host:           srvCfg.Host,
		Port:           srvCfg.Port,
		Version:        version,
		AppConfig:      appCfg,
		TLSCertFile:    srvCfg.TLSCertFile,
		TLSKeyFile:     srvCfg.TLSKeyFile,
		APIKeys:        apiKeyMap,
		ReadTimeout:    srvCfg.ReadTimeout,
		WriteTimeout:   srvCfg.WriteTimeout,
		IdleTimeout:    srvCfg.IdleTimeout,
		MaxRequestSize: srvCfg.MaxRequestSize,
		RateLimit:      &srvCfg.RateLimit,
		RateLimiter:    rateLimiter,
		Logger:         logger,
	}
}
