package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	EnvGatewayToken      = "STEVEDORE_GATEWAY_TOKEN"
	EnvGatewayBaseURL    = "STEVEDORE_GATEWAY_BASE_URL"
	EnvGatewayModel      = "STEVEDORE_GATEWAY_MODEL"
	EnvGatewayAuditModel = "STEVEDORE_GATEWAY_AUDIT_MODEL"
	EnvGatewayMaxTokens  = "STEVEDORE_GATEWAY_MAX_TOKENS"
)

// GatewayConfig holds analysis gateway (LLM provider) settings. Token
// has no file default and is expected via environment in deployed
// configurations.
type GatewayConfig struct {
	Token      string `toml:"token"`
	BaseURL    string `toml:"base_url"`
	Model      string `toml:"model"`
	AuditModel string `toml:"audit_model"`
	MaxTokens  int    `toml:"max_tokens"`
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *GatewayConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *GatewayConfig) Merge(overlay *GatewayConfig) {
	if overlay.Token != "" {
		c.Token = overlay.Token
	}
	if overlay.BaseURL != "" {
		c.BaseURL = overlay.BaseURL
	}
	if overlay.Model != "" {
		c.Model = overlay.Model
	}
	if overlay.AuditModel != "" {
		c.AuditModel = overlay.AuditModel
	}
	if overlay.MaxTokens != 0 {
		c.MaxTokens = overlay.MaxTokens
	}
}

func (c *GatewayConfig) loadDefaults() {
	if c.Model == "" {
		c.Model = "gpt-5-mini"
	}
	if c.AuditModel == "" {
		c.AuditModel = c.Model
	}
	if c.MaxTokens == 0 {
		c.MaxTokens = 2048
	}
}

func (c *GatewayConfig) loadEnv() {
	if v := os.Getenv(EnvGatewayToken); v != "" {
		c.Token = v
	}
	if v := os.Getenv(EnvGatewayBaseURL); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv(EnvGatewayModel); v != "" {
		c.Model = v
	}
	if v := os.Getenv(EnvGatewayAuditModel); v != "" {
		c.AuditModel = v
	}
	if v := os.Getenv(EnvGatewayMaxTokens); v != "" {
		if tokens, err := strconv.Atoi(v); err == nil {
			c.MaxTokens = tokens
		}
	}
}

func (c *GatewayConfig) validate() error {
	if c.Token == "" {
		return fmt.Errorf("token required")
	}
	if c.MaxTokens < 1 {
		return fmt.Errorf("invalid max_tokens: %d", c.MaxTokens)
	}
	return nil
}
