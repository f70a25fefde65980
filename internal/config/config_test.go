package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jackzampolin/pdf2latex/internal/providers"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test-123")
	t.Setenv("ANTHROPIC_MODEL", "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "sk-test-123" {
		t.Errorf("api key: got %q", cfg.APIKey)
	}
	if cfg.Model != providers.DefaultModel {
		t.Errorf("model: got %q, want default %q", cfg.Model, providers.DefaultModel)
	}
}

func TestLoadModelOverride(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-test-123")
	t.Setenv("ANTHROPIC_MODEL", "claude-3-opus-20240229")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Model != "claude-3-opus-20240229" {
		t.Errorf("model: got %q", cfg.Model)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := Load("")
	if !errors.Is(err, ErrMissingAPIKey) {
		t.Fatalf("error: got %v, want ErrMissingAPIKey", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")
	t.Setenv("ANTHROPIC_MODEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "api_key: sk-from-file\nmodel: claude-3-haiku-20240307\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "sk-from-file" {
		t.Errorf("api key: got %q", cfg.APIKey)
	}
	if cfg.Model != "claude-3-haiku-20240307" {
		t.Errorf("model: got %q", cfg.Model)
	}
}

// Environment wins over the config file.
func TestLoadEnvPrecedence(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "sk-from-env")
	t.Setenv("ANTHROPIC_MODEL", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: sk-from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.APIKey != "sk-from-env" {
		t.Errorf("api key: got %q, want env value", cfg.APIKey)
	}
}
