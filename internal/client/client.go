// Package client implements the karakeep.Client interface on top of the
// internal HTTP transport, one file per API resource.
package client

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/ahgraber/karakeep-client/internal/http"
	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

var validate = validator.New()

// Client implements the karakeep.Client interface.
type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     karakeep.Logger

	// Resource clients
	bookmarks  karakeep.BookmarksClient
	tags       karakeep.TagsClient
	assets     karakeep.AssetsClient
	highlights karakeep.HighlightsClient
	lists      karakeep.ListsClient
}

// New creates a new API client. The config must carry an API key and a
// base URL; the base URL is expected to already point at the versioned
// API root.
func New(config *karakeep.Config) (*Client, error) {
	if config == nil {
		return nil, karakeep.ErrConfigRequired
	}

	err := validate.Struct(config)
	if err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	httpClient := http.NewClient(config.BaseURL, config.APIKey, createHTTPClientOptions(config)...)

	client := &Client{
		httpClient: httpClient,
		baseURL:    config.BaseURL,
		logger:     config.Logger,
	}

	client.initializeResourceClients()

	return client, nil
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *karakeep.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(&loggerAdapter{logger: config.Logger}))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	}

	if config.Timeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.Timeout))
	}

	// HTTPClient last so a caller-supplied client wins over Timeout.
	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	return httpOpts
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.tags = NewTagsClient(c.httpClient)
	c.assets = NewAssetsClient(c.httpClient)
	c.highlights = NewHighlightsClient(c.httpClient)
	c.lists = NewListsClient(c.httpClient)
	c.bookmarks = NewBookmarksClient(c.httpClient)
}

// Bookmarks implements karakeep.Client.Bookmarks.
func (c *Client) Bookmarks() karakeep.BookmarksClient {
	return c.bookmarks
}

// Tags implements karakeep.Client.Tags.
func (c *Client) Tags() karakeep.TagsClient {
	return c.tags
}

// Assets implements karakeep.Client.Assets.
func (c *Client) Assets() karakeep.AssetsClient {
	return c.assets
}

// Highlights implements karakeep.Client.Highlights.
func (c *Client) Highlights() karakeep.HighlightsClient {
	return c.highlights
}

// Lists implements karakeep.Client.Lists.
func (c *Client) Lists() karakeep.ListsClient {
	return c.lists
}

// loggerAdapter adapts karakeep.Logger to http.Logger.
type loggerAdapter struct {
	logger karakeep.Logger
}

func (l *loggerAdapter) Debug(msg string, fields map[string]interface{}) {
	l.logger.Debug(msg, fields)
}

func (l *loggerAdapter) Info(msg string, fields map[string]interface{}) {
	l.logger.Info(msg, fields)
}

func (l *loggerAdapter) Warn(msg string, fields map[string]interface{}) {
	l.logger.Warn(msg, fields)
}

func (l *loggerAdapter) Error(msg string, fields map[string]interface{}) {
	l.logger.Error(msg, fields)
}
