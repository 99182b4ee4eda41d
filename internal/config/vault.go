package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/hashicorp/vault/api"

	"careerpro/internal/errors"
)

// VaultClient wraps the HashiCorp Vault API client for secret retrieval
type VaultClient struct {
	client *api.Client
	config VaultConfig
	logger *errors.Logger
}

// NewVaultClient creates a new Vault client from configuration. Returns
// (nil, nil) when Vault integration is disabled.
func NewVaultClient(config VaultConfig, logger *errors.Logger) (*VaultClient, error) {
	if !config.Enabled {
		if logger != nil {
			logger.Debug("Vault integration disabled")
		}
		return nil, nil
	}

	vaultConfig := api.DefaultConfig()
	if config.Address != "" {
		vaultConfig.Address = config.Address
	}

	client, err := api.NewClient(vaultConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to create vault client: %w", err)
	}
	if config.Namespace != "" {
		client.SetNamespace(config.Namespace)
	}

	token, err := resolveVaultToken(config)
	if err != nil {
		return nil, err
	}
	client.SetToken(token)

	if logger != nil {
		logger.Debug("Vault client initialized",
			"address", vaultConfig.Address,
			"namespace", config.Namespace)
	}

	return &VaultClient{
		client: client,
		config: config,
		logger: logger,
	}, nil
}

// resolveVaultToken resolves the Vault token from config or token file
func resolveVaultToken(config VaultConfig) (string, error) {
	token := config.Token
	if token == "" && config.TokenFile != "" {
		tokenBytes, err := os.ReadFile(config.TokenFile)
		if err != nil {
			return "", fmt.Errorf("failed to read vault token file: %w", err)
		}
		token = strings.TrimSpace(string(tokenBytes))
	}
	if token == "" {
		return "", fmt.Errorf("vault token is required when vault is enabled")
	}
	return token, nil
}

// GetStringSecret reads a single string value from a KVv2 secret
func (vc *VaultClient) GetStringSecret(path, key string) (string, error) {
	data, err := vc.readKVv2(path)
	if err != nil {
		return "", err
	}
	value, ok := data[key]
	if !ok {
		return "", fmt.Errorf("key %s not found in secret at %s", key, path)
	}
	str, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("key %s in secret at %s is not a string", key, path)
	}
	return str, nil
}

// GetStringSliceSecret reads a comma-separated string value from a KVv2
// secret and splits it into a slice
func (vc *VaultClient) GetStringSliceSecret(path, key string) ([]string, error) {
	raw, err := vc.GetStringSecret(path, key)
	if err != nil {
		return nil, err
	}
	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result, nil
}

func (vc *VaultClient) readKVv2(path string) (map[string]any, error) {
	secret, err := vc.client.Logical().Read(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read secret at %s: %w", path, err)
	}
	if secret == nil || secret.Data == nil {
		return nil, fmt.Errorf("no secret found at %s", path)
	}
	data, ok := secret.Data["data"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("secret at %s is not in KVv2 format (missing 'data' field)", path)
	}
	return data, nil
}

// loadVaultSecrets pulls the Gemini API key and server API keys from Vault
// when enabled. Secrets already set via config or environment win.
func (c *Config) loadVaultSecrets() error {
	logger := errors.NewLogger(slog.LevelInfo)

	client, err := NewVaultClient(c.Vault, logger)
	if err != nil {
		return fmt.Errorf("vault initialization failed: %w", err)
	}
	if client == nil {
		return nil
	}

	if c.AI.APIKey == "" && c.Vault.Secrets.GeminiKey != "" {
		key, err := client.GetStringSecret(c.Vault.Secrets.GeminiKey, "api_key")
		if err != nil {
			return fmt.Errorf("failed to load gemini key from vault: %w", err)
		}
		c.AI.APIKey = key
		logger.Debug("Loaded Gemini API key from Vault", "path", c.Vault.Secrets.GeminiKey)
	}

	if len(c.Server.APIKeys) == 0 && c.Vault.Secrets.APIKeys != "" {
		keys, err := client.GetStringSliceSecret(c.Vault.Secrets.APIKeys, "keys")
		if err != nil {
			return fmt.Errorf("failed to load server api keys from vault: %w", err)
		}
		c.Server.APIKeys = keys
		logger.Debug("Loaded server API keys from Vault",
			"path", c.Vault.Secrets.APIKeys,
			"count", len(keys))
	}

	return nil
}
