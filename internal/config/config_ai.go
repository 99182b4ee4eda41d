package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// applyOperationDefaults applies global defaults to operation-specific configuration
func (c *Config) applyOperationDefaults(opCfg *OperationAIConfig) {
	if opCfg.Provider == "" {
		opCfg.Provider = c.AI.Provider
	}
	if opCfg.Model == "" {
		opCfg.Model = c.AI.Model
	}
	if opCfg.Timeout == nil {
		opCfg.Timeout = &c.AI.Timeout
	}
	if opCfg.APIKey == "" {
		opCfg.APIKey = c.AI.APIKey
	}
	if opCfg.MaxRetries == nil {
		opCfg.MaxRetries = &c.AI.MaxRetries
	}
	if opCfg.Temperature == nil {
		opCfg.Temperature = &c.AI.Temperature
	}
	if opCfg.UseSystemPrompts == nil {
		opCfg.UseSystemPrompts = &c.AI.UseSystemPrompts
	}
}

// GetSummaryConfig returns the AI configuration for summary rewrites with
// fallback to global config
func (c *Config) GetSummaryConfig() OperationAIConfig {
	config := c.AI.Summary
	c.applyOperationDefaults(&config)
	return config
}

// GetBulletConfig returns the AI configuration for bullet rewrites with
// fallback to global config
func (c *Config) GetBulletConfig() OperationAIConfig {
	config := c.AI.Bullet
	c.applyOperationDefaults(&config)
	return config
}

// GetAtsConfig returns the AI configuration for ATS scoring with fallback
// to global config
func (c *Config) GetAtsConfig() OperationAIConfig {
	config := c.AI.Ats
	c.applyOperationDefaults(&config)
	return config
}

// applyFallbacks applies environment variable fallbacks and derived values
func (c *Config) applyFallbacks() {
	// Legacy key support, same variable the original web app consumed.
	if c.AI.APIKey == "" {
		c.AI.APIKey = os.Getenv("GEMINI_API_KEY")
	}

	if len(c.Server.APIKeys) == 0 {
		if apiKeysEnv := os.Getenv("CAREERPRO_SERVER_APIKEYS"); apiKeysEnv != "" {
			c.Server.APIKeys = strings.Split(apiKeysEnv, ",")
			for i, key := range c.Server.APIKeys {
				c.Server.APIKeys[i] = strings.TrimSpace(key)
			}
		}
	}

	if c.Storage.DataDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			c.Storage.DataDir = filepath.Join(home, ".careerpro")
		} else {
			c.Storage.DataDir = "."
		}
	}

	if c.Observability.ServiceInstance == "" {
		if hostname, err := os.Hostname(); err == nil {
			c.Observability.ServiceInstance = fmt.Sprintf("%s-%s", c.Observability.ServiceName, hostname)
		} else {
			c.Observability.ServiceInstance = fmt.Sprintf("%s-1", c.Observability.ServiceName)
		}
	}
}

// SnapshotPath returns the full path of the persisted snapshot.
func (c *Config) SnapshotPath() string {
	return filepath.Join(c.Storage.DataDir, c.Storage.SnapshotFile)
}

// loadPromptFiles reads any configured prompt files into the inline prompt
// fields. File content wins over inline config strings.
func (c *Config) loadPromptFiles() error {
	ops := map[string]*OperationAIConfig{
		"summary": &c.AI.Summary,
		"bullet":  &c.AI.Bullet,
		"ats":     &c.AI.Ats,
	}
	for name, op := range ops {
		if err := loadPromptFile(op.Prompts.SystemFile, &op.Prompts.System, name, "system"); err != nil {
			return err
		}
		if err := loadPromptFile(op.Prompts.UserFile, &op.Prompts.User, name, "user"); err != nil {
			return err
		}
	}
	return nil
}

func loadPromptFile(path string, target *string, operation, kind string) error {
	if path == "" {
		return nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s %s prompt file %s: %w", operation, kind, path, err)
	}
	text := strings.TrimSpace(string(content))
	if text == "" {
		return fmt.Errorf("%s %s prompt file %s is empty", operation, kind, path)
	}
	*target = text
	return nil
}
