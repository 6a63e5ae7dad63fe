package kkclient

import (
	"fmt"
	"os"
	"strings"

	"github.com/ahgraber/karakeep-client/internal/client"
	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

// apiBasePath is the versioned API root, appended to the configured base
// URL.
const apiBasePath = "/api/v1"

// New creates a new Karakeep API client. The base URL may be given with
// or without a scheme ("https://" is assumed) and with or without the
// "/api/v1" suffix; New normalizes it either way.
func New(config *karakeep.Config) (karakeep.Client, error) {
	if config == nil {
		return nil, karakeep.ErrConfigRequired
	}

	if config.APIKey == "" {
		return nil, karakeep.ErrAPIKeyRequired
	}

	if config.BaseURL == "" {
		return nil, karakeep.ErrBaseURLRequired
	}

	// Normalize a copy so the caller's config is left untouched.
	resolved := *config
	resolved.BaseURL = normalizeBaseURL(resolved.BaseURL)

	if resolved.Timeout == 0 {
		resolved.Timeout = karakeep.DefaultTimeout
	}

	apiClient, err := client.New(&resolved)
	if err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	return apiClient, nil
}

// NewWithAPIKey creates a client from a base URL and API key with default
// settings.
func NewWithAPIKey(baseURL, apiKey string) (karakeep.Client, error) {
	return New(&karakeep.Config{
		APIKey:  apiKey,
		BaseURL: baseURL,
	})
}

// NewFromEnv creates a client from the KARAKEEP_API_KEY and
// KARAKEEP_BASEURL environment variables.
func NewFromEnv() (karakeep.Client, error) {
	apiKey := os.Getenv(karakeep.EnvAPIKey)
	if apiKey == "" {
		return nil, karakeep.ErrAPIKeyRequired
	}

	baseURL := os.Getenv(karakeep.EnvBaseURL)
	if baseURL == "" {
		return nil, karakeep.ErrBaseURLRequired
	}

	return NewWithAPIKey(baseURL, apiKey)
}

// normalizeBaseURL produces the versioned API root from a service URL.
func normalizeBaseURL(baseURL string) string {
	baseURL = strings.TrimSuffix(strings.TrimSpace(baseURL), "/")

	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	if !strings.HasSuffix(baseURL, apiBasePath) {
		baseURL += apiBasePath
	}

	return baseURL
}
