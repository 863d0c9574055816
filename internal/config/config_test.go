package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jmcandrew/stevedore/internal/config"
)

// setRequiredEnv satisfies the fields with no defaults so finalize passes.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("STEVEDORE_ENV", "")
	t.Setenv("STEVEDORE_DB_NAME", "stevedore")
	t.Setenv("STEVEDORE_DB_USER", "stevedore")
	t.Setenv("STEVEDORE_STORAGE_CONNECTION_STRING", "UseDevelopmentStorage=true")
	t.Setenv("STEVEDORE_GATEWAY_TOKEN", "test-token")
}

func writeConfig(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)
	t.Chdir(t.TempDir())

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if got := cfg.Server.Addr(); got != "0.0.0.0:8080" {
		t.Errorf("Server.Addr() = %q, want default listen address", got)
	}
	if cfg.ShutdownTimeoutDuration() != 30*time.Second {
		t.Errorf("ShutdownTimeout = %v, want 30s", cfg.ShutdownTimeoutDuration())
	}
	if cfg.API.BasePath != "/api" {
		t.Errorf("API.BasePath = %q, want /api", cfg.API.BasePath)
	}
	if cfg.Feed.IntervalDuration() != 3500*time.Millisecond {
		t.Errorf("Feed.Interval = %v, want 3.5s", cfg.Feed.IntervalDuration())
	}
	if cfg.Feed.Capacity != 50 {
		t.Errorf("Feed.Capacity = %d, want 50", cfg.Feed.Capacity)
	}
	if cfg.Gateway.Model != "gpt-5-mini" {
		t.Errorf("Gateway.Model = %q, want default model", cfg.Gateway.Model)
	}
	if cfg.Gateway.AuditModel != cfg.Gateway.Model {
		t.Errorf("Gateway.AuditModel = %q, want inherited from Model", cfg.Gateway.AuditModel)
	}
	if cfg.Env() != "local" {
		t.Errorf("Env() = %q, want local", cfg.Env())
	}
}

func TestLoadBaseFile(t *testing.T) {
	setRequiredEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)

	writeConfig(t, dir, config.BaseConfigFile, `
version = "1.2.3"

[server]
port = 9090

[feed]
interval = "1s"
`)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Version != "1.2.3" {
		t.Errorf("Version = %q, want 1.2.3", cfg.Version)
	}
	if cfg.Server.Port != 9090 {
		t.Errorf("Server.Port = %d, want 9090", cfg.Server.Port)
	}
	if cfg.Feed.IntervalDuration() != time.Second {
		t.Errorf("Feed.Interval = %v, want 1s", cfg.Feed.IntervalDuration())
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want default alongside file values", cfg.Server.Host)
	}
}

func TestLoadOverlay(t *testing.T) {
	setRequiredEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("STEVEDORE_ENV", "staging")

	writeConfig(t, dir, config.BaseConfigFile, `
version = "1.0.0"

[server]
port = 9090
host = "127.0.0.1"
`)
	writeConfig(t, dir, "config.staging.toml", `
[server]
port = 9999
`)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want overlay value 9999", cfg.Server.Port)
	}
	if cfg.Server.Host != "127.0.0.1" {
		t.Errorf("Server.Host = %q, want base value retained", cfg.Server.Host)
	}
	if cfg.Version != "1.0.0" {
		t.Errorf("Version = %q, want base value retained", cfg.Version)
	}
	if cfg.Env() != "staging" {
		t.Errorf("Env() = %q, want staging", cfg.Env())
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	setRequiredEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("STEVEDORE_SERVER_PORT", "7070")
	t.Setenv("STEVEDORE_SHUTDOWN_TIMEOUT", "45s")

	writeConfig(t, dir, config.BaseConfigFile, `
shutdown_timeout = "10s"

[server]
port = 9090
`)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 7070 {
		t.Errorf("Server.Port = %d, want env override 7070", cfg.Server.Port)
	}
	if cfg.ShutdownTimeout != "45s" {
		t.Errorf("ShutdownTimeout = %q, want env override 45s", cfg.ShutdownTimeout)
	}
}

func TestLoadRejectsMissingGatewayToken(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("STEVEDORE_GATEWAY_TOKEN", "")
	t.Chdir(t.TempDir())

	if _, err := config.Load(); err == nil {
		t.Error("Load succeeded without a gateway token")
	}
}

func TestLoadRejectsInvalidShutdownTimeout(t *testing.T) {
	setRequiredEnv(t)
	dir := t.TempDir()
	t.Chdir(dir)
	writeConfig(t, dir, config.BaseConfigFile, `shutdown_timeout = "forever"`)

	_, err := config.Load()
	if err == nil {
		t.Fatal("Load succeeded with an unparseable shutdown_timeout")
	}
	if !strings.Contains(err.Error(), "shutdown_timeout") {
		t.Errorf("err = %v, want shutdown_timeout mentioned", err)
	}
}

func TestServerConfigValidate(t *testing.T) {
	t.Setenv("STEVEDORE_SERVER_PORT", "")

	t.Run("defaults", func(t *testing.T) {
		cfg := &config.ServerConfig{}
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}
		if cfg.ReadTimeoutDuration() != time.Minute {
			t.Errorf("ReadTimeout = %v, want 1m", cfg.ReadTimeoutDuration())
		}
		if cfg.WriteTimeoutDuration() != 5*time.Minute {
			t.Errorf("WriteTimeout = %v, want 5m", cfg.WriteTimeoutDuration())
		}
	})

	t.Run("invalid port", func(t *testing.T) {
		cfg := &config.ServerConfig{Port: 70000}
		if err := cfg.Finalize(); err == nil {
			t.Error("Finalize accepted port 70000")
		}
	})

	t.Run("invalid timeout", func(t *testing.T) {
		cfg := &config.ServerConfig{ReadTimeout: "soon"}
		if err := cfg.Finalize(); err == nil {
			t.Error("Finalize accepted unparseable read_timeout")
		}
	})
}

func TestGatewayConfigFinalize(t *testing.T) {
	t.Setenv("STEVEDORE_GATEWAY_TOKEN", "")
	t.Setenv("STEVEDORE_GATEWAY_AUDIT_MODEL", "")

	t.Run("audit model inherits", func(t *testing.T) {
		cfg := &config.GatewayConfig{Token: "tok", Model: "gpt-5"}
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}
		if cfg.AuditModel != "gpt-5" {
			t.Errorf("AuditModel = %q, want inherited gpt-5", cfg.AuditModel)
		}
		if cfg.MaxTokens != 2048 {
			t.Errorf("MaxTokens = %d, want default 2048", cfg.MaxTokens)
		}
	})

	t.Run("token required", func(t *testing.T) {
		cfg := &config.GatewayConfig{}
		if err := cfg.Finalize(); err == nil {
			t.Error("Finalize succeeded without a token")
		}
	})
}

func TestFeedConfigFinalize(t *testing.T) {
	t.Setenv("STEVEDORE_FEED_INTERVAL", "")
	t.Setenv("STEVEDORE_FEED_CAPACITY", "")

	t.Run("defaults", func(t *testing.T) {
		cfg := &config.FeedConfig{}
		if err := cfg.Finalize(); err != nil {
			t.Fatalf("Finalize failed: %v", err)
		}
		if cfg.Interval != "3500ms" || cfg.Capacity != 50 {
			t.Errorf("got interval %q capacity %d, want 3500ms and 50", cfg.Interval, cfg.Capacity)
		}
	})

	t.Run("invalid interval", func(t *testing.T) {
		cfg := &config.FeedConfig{Interval: "sometimes"}
		if err := cfg.Finalize(); err == nil {
			t.Error("Finalize accepted unparseable interval")
		}
	})

	t.Run("invalid capacity", func(t *testing.T) {
		cfg := &config.FeedConfig{Capacity: -1}
		if err := cfg.Finalize(); err == nil {
			t.Error("Finalize accepted negative capacity")
		}
	})
}

func TestAPIConfigMaxUploadSizeBytes(t *testing.T) {
	cfg := &config.APIConfig{MaxUploadSize: "10MB"}
	if got := cfg.MaxUploadSizeBytes(); got != 10*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 10MB", got)
	}

	cfg.MaxUploadSize = "not-a-size"
	if got := cfg.MaxUploadSizeBytes(); got != 50*1024*1024 {
		t.Errorf("MaxUploadSizeBytes() = %d, want 50MB fallback", got)
	}
}
