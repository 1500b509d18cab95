// ABOUTME: Tests for configuration resolution
// ABOUTME: Validates flag/env precedence and XDG token path
package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/adrg/xdg"
)

func TestLoadFlagWins(t *testing.T) {
	t.Setenv("TRAILTRACK_API_URL", "http://env.example")

	cfg := Load("http://flag.example/")
	if cfg.APIURL != "http://flag.example" {
		t.Errorf("expected flag URL (trailing slash trimmed), got %s", cfg.APIURL)
	}
}

func TestLoadEnvFallback(t *testing.T) {
	t.Setenv("TRAILTRACK_API_URL", "http://env.example")

	cfg := Load("")
	if cfg.APIURL != "http://env.example" {
		t.Errorf("expected env URL, got %s", cfg.APIURL)
	}
}

func TestLoadDefault(t *testing.T) {
	t.Setenv("TRAILTRACK_API_URL", "")

	cfg := Load("")
	if cfg.APIURL != DefaultAPIURL {
		t.Errorf("expected default URL, got %s", cfg.APIURL)
	}
}

func TestTokenPathXDG(t *testing.T) {
	cfg := Load("")

	expectedBase := filepath.Join(xdg.DataHome, AppName)
	if !strings.HasPrefix(cfg.TokenPath, expectedBase) {
		t.Errorf("expected token path under %s, got %s", expectedBase, cfg.TokenPath)
	}
	if filepath.Base(cfg.TokenPath) != TokenFileName {
		t.Errorf("expected filename %s, got %s", TokenFileName, filepath.Base(cfg.TokenPath))
	}
}
