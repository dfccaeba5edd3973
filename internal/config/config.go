package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Vapi     VapiConfig
	Unsplash UnsplashConfig
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int
}

// VapiConfig holds Vapi voice API credentials and endpoint
type VapiConfig struct {
	PrivateKey  string
	AssistantID string
	BaseURL     string
}

// UnsplashConfig holds Unsplash photo search credentials and endpoint
type UnsplashConfig struct {
	AccessKey string
	BaseURL   string
}

// Load reads environment variables into a Config.
//
// Provider credentials are deliberately not required here: the server starts
// without them and reports their absence via /health and /config, failing the
// affected operation only when it is invoked.
func Load() (*Config, error) {
	// Load env.local in non-production environments. The file is optional.
	if os.Getenv("GO_ENV") != "production" {
		_ = godotenv.Load("env.local")
	}

	cfg := &Config{}

	cfg.Vapi.PrivateKey = os.Getenv("VAPI_PRIVATE_KEY")
	cfg.Vapi.AssistantID = os.Getenv("VAPI_ASSISTANT_ID")
	cfg.Vapi.BaseURL = getEnvWithDefault("VAPI_BASE_URL", "https://api.vapi.ai")

	cfg.Unsplash.AccessKey = os.Getenv("UNSPLASH_ACCESS_KEY")
	cfg.Unsplash.BaseURL = getEnvWithDefault("UNSPLASH_BASE_URL", "https://api.unsplash.com")

	serverPort := getEnvWithDefault("SERVER_PORT", "8080")
	var err error
	cfg.Server.Port, err = strconv.Atoi(serverPort)
	if err != nil {
		return nil, fmt.Errorf("failed to parse SERVER_PORT: %w", err)
	}

	return cfg, nil
}

// VapiConfigured reports whether both Vapi credentials are present.
func (c *Config) VapiConfigured() bool {
	return c.Vapi.PrivateKey != "" && c.Vapi.AssistantID != ""
}

// UnsplashConfigured reports whether the Unsplash access key is present.
func (c *Config) UnsplashConfigured() bool {
	return c.Unsplash.AccessKey != ""
}

// getEnvWithDefault retrieves an environment variable or returns a default value
func getEnvWithDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
