package client

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ahgraber/karakeep-client/internal/http"
	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

// ListsClient implements karakeep.ListsClient.
type ListsClient struct {
	httpClient *http.Client
}

// NewListsClient creates a new lists client.
func NewListsClient(httpClient *http.Client) *ListsClient {
	return &ListsClient{
		httpClient: httpClient,
	}
}

// List implements karakeep.ListsClient.List. The endpoint is not
// paginated.
func (c *ListsClient) List(ctx context.Context) ([]karakeep.BookmarkList, error) {
	resp, err := c.httpClient.Get(ctx, "/lists", nil)
	if err != nil {
		return nil, fmt.Errorf("listing lists: %w", err)
	}

	var envelope struct {
		Lists []karakeep.BookmarkList `json:"lists"`
	}

	err = json.Unmarshal(resp.Body, &envelope)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "lists", Err: err}
	}

	return envelope.Lists, nil
}

// Get implements karakeep.ListsClient.Get.
func (c *ListsClient) Get(ctx context.Context, listID string) (*karakeep.BookmarkList, error) {
	resp, err := c.httpClient.Get(ctx, "/lists/"+listID, nil)
	if err != nil {
		return nil, fmt.Errorf("getting list: %w", err)
	}

	var list karakeep.BookmarkList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "list", Err: err}
	}

	return &list, nil
}

// Create implements karakeep.ListsClient.Create.
func (c *ListsClient) Create(ctx context.Context, request *karakeep.CreateListRequest) (*karakeep.BookmarkList, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/lists", request)
	if err != nil {
		return nil, fmt.Errorf("creating list: %w", err)
	}

	var list karakeep.BookmarkList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "list", Err: err}
	}

	return &list, nil
}

// Update implements karakeep.ListsClient.Update.
func (c *ListsClient) Update(ctx context.Context, listID string, request *karakeep.UpdateListRequest) (*karakeep.BookmarkList, error) {
	resp, err := c.httpClient.Patch(ctx, "/lists/"+listID, request)
	if err != nil {
		return nil, fmt.Errorf("updating list: %w", err)
	}

	var list karakeep.BookmarkList

	err = json.Unmarshal(resp.Body, &list)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "list", Err: err}
	}

	return &list, nil
}

// Delete implements karakeep.ListsClient.Delete.
func (c *ListsClient) Delete(ctx context.Context, listID string) error {
	_, err := c.httpClient.Delete(ctx, "/lists/"+listID, nil)
	if err != nil {
		return fmt.Errorf("deleting list: %w", err)
	}

	return nil
}

// AddBookmark implements karakeep.ListsClient.AddBookmark.
func (c *ListsClient) AddBookmark(ctx context.Context, listID, bookmarkID string) error {
	_, err := c.httpClient.Put(ctx, "/lists/"+listID+"/bookmarks/"+bookmarkID, nil)
	if err != nil {
		return fmt.Errorf("adding bookmark to list: %w", err)
	}

	return nil
}

// RemoveBookmark implements karakeep.ListsClient.RemoveBookmark.
func (c *ListsClient) RemoveBookmark(ctx context.Context, listID, bookmarkID string) error {
	_, err := c.httpClient.Delete(ctx, "/lists/"+listID+"/bookmarks/"+bookmarkID, nil)
	if err != nil {
		return fmt.Errorf("removing bookmark from list: %w", err)
	}

	return nil
}
