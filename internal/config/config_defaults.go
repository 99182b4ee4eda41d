package config

import (
	"time"

	"github.com/spf13/viper"
)

// setDefaults sets the default configuration values
func setDefaults(v *viper.Viper) {
	// AI Configuration - Global defaults
	v.SetDefault("ai.provider", "gemini")
	v.SetDefault("ai.model", "gemini-2.0-flash")
	v.SetDefault("ai.timeout", 60*time.Second)
	v.SetDefault("ai.apiKey", "")
	v.SetDefault("ai.maxRetries", 3)
	v.SetDefault("ai.temperature", 0.7)
	v.SetDefault("ai.useSystemPrompts", true)

	// AI Configuration - Summary rewrite defaults
	v.SetDefault("ai.summary.provider", "gemini")
	v.SetDefault("ai.summary.model", "")
	v.SetDefault("ai.summary.timeout", 45*time.Second)
	v.SetDefault("ai.summary.apiKey", "")
	v.SetDefault("ai.summary.maxRetries", 2)
	v.SetDefault("ai.summary.temperature", 0.7) // Creative rewriting
	v.SetDefault("ai.summary.useSystemPrompts", true)

	// AI Configuration - Bullet rewrite defaults
	v.SetDefault("ai.bullet.provider", "gemini")
	v.SetDefault("ai.bullet.model", "")
	v.SetDefault("ai.bullet.timeout", 30*time.Second) // Short input, short output
	v.SetDefault("ai.bullet.apiKey", "")
	v.SetDefault("ai.bullet.maxRetries", 2)
	v.SetDefault("ai.bullet.temperature", 0.7)
	v.SetDefault("ai.bullet.useSystemPrompts", true)

	// AI Configuration - ATS scoring defaults
	v.SetDefault("ai.ats.provider", "gemini")
	v.SetDefault("ai.ats.model", "")
	v.SetDefault("ai.ats.timeout", 75*time.Second) // Whole document goes out
	v.SetDefault("ai.ats.apiKey", "")
	v.SetDefault("ai.ats.maxRetries", 2)
	v.SetDefault("ai.ats.temperature", 0.2) // Low temperature for consistent scoring
	v.SetDefault("ai.ats.useSystemPrompts", true)

	// Circuit Breaker Configuration defaults for all operations
	for _, op := range []string{"summary", "bullet", "ats"} {
		v.SetDefault("ai."+op+".circuitBreaker.enabled", true)
		v.SetDefault("ai."+op+".circuitBreaker.maxRequests", 3)
		v.SetDefault("ai."+op+".circuitBreaker.interval", 60*time.Second)
		v.SetDefault("ai."+op+".circuitBreaker.timeout", 60*time.Second)
		v.SetDefault("ai."+op+".circuitBreaker.minRequests", 3)
		v.SetDefault("ai."+op+".circuitBreaker.failureThreshold", 0.6)
	}

	// Storage Configuration
	v.SetDefault("storage.dataDir", "")
	v.SetDefault("storage.snapshotFile", "resume.json")
	v.SetDefault("storage.autosaveDebounce", time.Second)
	v.SetDefault("storage.watchDebounce", time.Second)

	// App Configuration
	v.SetDefault("app.logLevel", "info")
	v.SetDefault("app.defaultTemplate", "modern")
	v.SetDefault("app.supportedTemplates", []string{"modern", "classic", "minimal"})

	// Server Configuration
	v.SetDefault("server.host", "localhost")
	v.SetDefault("server.port", "8080")
	v.SetDefault("server.readTimeout", 30*time.Second)
	v.SetDefault("server.writeTimeout", 90*time.Second) // Enrichment calls are slow
	v.SetDefault("server.idleTimeout", 120*time.Second)
	v.SetDefault("server.tlsCertFile", "")
	v.SetDefault("server.tlsKeyFile", "")
	v.SetDefault("server.apiKeys", []string{})
	v.SetDefault("server.maxRequestSize", int64(1024*1024)) // 1 MB
	v.SetDefault("server.rateLimit.enabled", false)
	v.SetDefault("server.rateLimit.requestsPerMin", 60)
	v.SetDefault("server.rateLimit.burstCapacity", 10)

	// Vault Configuration
	v.SetDefault("vault.enabled", false)
	v.SetDefault("vault.address", "")
	v.SetDefault("vault.token", "")
	v.SetDefault("vault.tokenFile", "")
	v.SetDefault("vault.namespace", "")
	v.SetDefault("vault.secrets.geminiKey", "")
	v.SetDefault("vault.secrets.apiKeys", "")

	// Observability Configuration
	v.SetDefault("observability.enabled", true)
	v.SetDefault("observability.serviceName", "careerpro")
	v.SetDefault("observability.serviceVersion", "")
	v.SetDefault("observability.serviceInstance", "")
	v.SetDefault("observability.consoleOutput", false)
	v.SetDefault("observability.tracing.enabled", true)
	v.SetDefault("observability.tracing.sampleRate", 1.0)
	v.SetDefault("observability.metrics.enabled", true)
	v.SetDefault("observability.metrics.collectionInterval", 15*time.Second)
	v.SetDefault("observability.prometheus.enabled", true)
	v.SetDefault("observability.prometheus.endpoint", "/metrics")
	v.SetDefault("observability.prometheus.port", "9090")
	v.SetDefault("observability.otlp.enabled", false)
	v.SetDefault("observability.otlp.endpoint", "http://localhost:4318")
	v.SetDefault("observability.otlp.insecure", true)
	v.SetDefault("observability.otlp.headers", map[string]string{})
}
