// ABOUTME: Configuration for the TrailTrack API connection
// ABOUTME: Resolves base URL and token path from flags, env, and .env
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/joho/godotenv"
)

const (
	// DefaultAPIURL is the local development backend.
	DefaultAPIURL = "http://localhost:8001"

	// AppName is the directory name for TrailTrack state under XDG paths.
	AppName = "trailtrack"

	// TokenFileName holds the persisted bearer token.
	TokenFileName = "token"
)

// Config holds client connection settings.
type Config struct {
	// APIURL is the backend base URL, no trailing slash.
	APIURL string

	// TokenPath is where the bearer token is persisted.
	TokenPath string
}

// Load resolves configuration. Precedence: explicit flag value, then
// TRAILTRACK_API_URL from the environment (a .env file in the working
// directory is loaded first if present), then the default.
func Load(flagURL string) *Config {
	// Missing .env is the normal case, not an error.
	_ = godotenv.Load()

	url := flagURL
	if url == "" {
		url = os.Getenv("TRAILTRACK_API_URL")
	}
	if url == "" {
		url = DefaultAPIURL
	}

	return &Config{
		APIURL:    strings.TrimRight(url, "/"),
		TokenPath: filepath.Join(xdg.DataHome, AppName, TokenFileName),
	}
}
