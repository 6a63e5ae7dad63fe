package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ahgraber/karakeep-client/internal/http"
	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

// TagsClient implements karakeep.TagsClient.
type TagsClient struct {
	httpClient *http.Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(httpClient *http.Client) *TagsClient {
	return &TagsClient{
		httpClient: httpClient,
	}
}

// List implements karakeep.TagsClient.List. The endpoint is not
// paginated; the full tag set comes back in one response.
func (c *TagsClient) List(ctx context.Context) ([]karakeep.Tag, error) {
	resp, err := c.httpClient.Get(ctx, "/tags", nil)
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	var envelope struct {
		Tags []karakeep.Tag `json:"tags"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "tags list", Err: err}
	}

	return envelope.Tags, nil
}

// Get implements karakeep.TagsClient.Get.
func (c *TagsClient) Get(ctx context.Context, tagID string) (*karakeep.Tag, error) {
	resp, err := c.httpClient.Get(ctx, "/tags/"+tagID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting tag: %w", err)
	}

	var tag karakeep.Tag

	err = json.Unmarshal(resp.Body, &tag)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "tag", Err: err}
	}

	return &tag, nil
}

// Update implements karakeep.TagsClient.Update. Renaming is the only
// mutation the endpoint supports.
func (c *TagsClient) Update(ctx context.Context, tagID, name string) (*karakeep.Tag, error) {
	if strings.TrimSpace(name) == "" {
		return nil, karakeep.ErrNameRequired
	}

	resp, err := c.httpClient.Patch(ctx, "/tags/"+tagID, map[string]string{"name": name})
	if err != nil {
		return nil, fmt.Errorf("updating tag: %w", err)
	}

	var tag karakeep.Tag

	err = json.Unmarshal(resp.Body, &tag)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "tag", Err: err}
	}

	return &tag, nil
}

// Delete implements karakeep.TagsClient.Delete.
func (c *TagsClient) Delete(ctx context.Context, tagID string) error {
	_, err := c.httpClient.Delete(ctx, "/tags/"+tagID, nil)
	if err != nil {
		return fmt.Errorf("deleting tag: %w", err)
	}

	return nil
}
