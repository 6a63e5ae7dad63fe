package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahgraber/karakeep-client/internal/http"
	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

// HighlightsClient implements karakeep.HighlightsClient.
type HighlightsClient struct {
	httpClient *http.Client
}

// NewHighlightsClient creates a new highlights client.
func NewHighlightsClient(httpClient *http.Client) *HighlightsClient {
	return &HighlightsClient{
		httpClient: httpClient,
	}
}

// List implements karakeep.HighlightsClient.List.
func (c *HighlightsClient) List(ctx context.Context, opts *karakeep.ListHighlightsOptions) (*karakeep.PaginatedHighlights, error) {
	if opts == nil {
		opts = &karakeep.ListHighlightsOptions{}
	}

	if opts.Limit > karakeep.MaxPageSize {
		return nil, fmt.Errorf("%w, got %d", karakeep.ErrLimitExceeded, opts.Limit)
	}

	resp, err := c.httpClient.Get(ctx, "/highlights", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing highlights: %w", err)
	}

	var page karakeep.PaginatedHighlights

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "paginated highlights", Err: err}
	}

	return &page, nil
}

// Get implements karakeep.HighlightsClient.Get.
func (c *HighlightsClient) Get(ctx context.Context, highlightID string) (*karakeep.Highlight, error) {
	resp, err := c.httpClient.Get(ctx, "/highlights/"+highlightID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting highlight: %w", err)
	}

	var highlight karakeep.Highlight

	err = json.Unmarshal(resp.Body, &highlight)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "highlight", Err: err}
	}

	return &highlight, nil
}

// Create implements karakeep.HighlightsClient.Create.
func (c *HighlightsClient) Create(ctx context.Context, request *karakeep.CreateHighlightRequest) (*karakeep.Highlight, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/highlights", request)
	if err != nil {
		return nil, fmt.Errorf("creating highlight: %w", err)
	}

	var highlight karakeep.Highlight

	err = json.Unmarshal(resp.Body, &highlight)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "highlight", Err: err}
	}

	return &highlight, nil
}

// Update implements karakeep.HighlightsClient.Update.
func (c *HighlightsClient) Update(ctx context.Context, highlightID string, request *karakeep.UpdateHighlightRequest) (*karakeep.Highlight, error) {
	resp, err := c.httpClient.Patch(ctx, "/highlights/"+highlightID, request)
	if err != nil {
		return nil, fmt.Errorf("updating highlight: %w", err)
	}

	var highlight karakeep.Highlight

	err = json.Unmarshal(resp.Body, &highlight)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "highlight", Err: err}
	}

	return &highlight, nil
}

// Delete implements karakeep.HighlightsClient.Delete. The endpoint
// returns the deleted highlight rather than an empty body.
func (c *HighlightsClient) Delete(ctx context.Context, highlightID string) (*karakeep.Highlight, error) {
	resp, err := c.httpClient.Delete(ctx, "/highlights/"+highlightID, nil)
	if err != nil {
		return nil, fmt.Errorf("deleting highlight: %w", err)
	}

	var highlight karakeep.Highlight

	err = json.Unmarshal(resp.Body, &highlight)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "highlight", Err: err}
	}

	return &highlight, nil
}
