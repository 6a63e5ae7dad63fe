package client

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/ahgraber/karakeep-client/internal/http"
	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

// BookmarksClient implements karakeep.BookmarksClient.
type BookmarksClient struct {
	httpClient *http.Client
}

// NewBookmarksClient creates a new bookmarks client.
func NewBookmarksClient(httpClient *http.Client) *BookmarksClient {
	return &BookmarksClient{
		httpClient: httpClient,
	}
}

// List implements karakeep.BookmarksClient.List.
func (c *BookmarksClient) List(ctx context.Context, opts *karakeep.ListBookmarksOptions) (*karakeep.PaginatedBookmarks, error) {
	if opts == nil {
		opts = karakeep.NewListBookmarksOptions()
	}

	if opts.Limit > karakeep.MaxPageSize {
		return nil, fmt.Errorf("%w, got %d", karakeep.ErrLimitExceeded, opts.Limit)
	}

	resp, err := c.httpClient.Get(ctx, "/bookmarks", opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("listing bookmarks: %w", err)
	}

	var page karakeep.PaginatedBookmarks

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "paginated bookmarks", Err: err}
	}

	return &page, nil
}

// Get implements karakeep.BookmarksClient.Get.
func (c *BookmarksClient) Get(ctx context.Context, bookmarkID string, opts *karakeep.GetBookmarkOptions) (*karakeep.Bookmark, error) {
	if opts == nil {
		opts = karakeep.NewGetBookmarkOptions()
	}

	resp, err := c.httpClient.Get(ctx, "/bookmarks/"+bookmarkID, opts.ToValues())
	if err != nil {
		return nil, fmt.Errorf("getting bookmark: %w", err)
	}

	var bookmark karakeep.Bookmark

	err = json.Unmarshal(resp.Body, &bookmark)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "bookmark", Err: err}
	}

	return &bookmark, nil
}

// Search implements karakeep.BookmarksClient.Search.
func (c *BookmarksClient) Search(ctx context.Context, query string, opts *karakeep.SearchBookmarksOptions) (*karakeep.PaginatedBookmarks, error) {
	if strings.TrimSpace(query) == "" {
		return nil, karakeep.ErrQueryRequired
	}

	if opts == nil {
		opts = karakeep.NewSearchBookmarksOptions()
	}

	if opts.Limit > karakeep.MaxPageSize {
		return nil, fmt.Errorf("%w, got %d", karakeep.ErrLimitExceeded, opts.Limit)
	}

	queryParams := opts.ToValues()
	queryParams.Set("q", query)

	resp, err := c.httpClient.Get(ctx, "/bookmarks/search", queryParams)
	if err != nil {
		return nil, fmt.Errorf("searching bookmarks: %w", err)
	}

	var page karakeep.PaginatedBookmarks

	err = json.Unmarshal(resp.Body, &page)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "paginated bookmarks", Err: err}
	}

	return &page, nil
}

// Create implements karakeep.BookmarksClient.Create.
func (c *BookmarksClient) Create(ctx context.Context, request *karakeep.CreateBookmarkRequest) (*karakeep.Bookmark, error) {
	err := request.Validate()
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/bookmarks", request)
	if err != nil {
		return nil, fmt.Errorf("creating bookmark: %w", err)
	}

	var bookmark karakeep.Bookmark

	err = json.Unmarshal(resp.Body, &bookmark)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "bookmark", Err: err}
	}

	return &bookmark, nil
}

// Update implements karakeep.BookmarksClient.Update. The endpoint returns
// only the fields it touched, so the response stays an untyped map.
func (c *BookmarksClient) Update(ctx context.Context, bookmarkID string, updates map[string]interface{}) (map[string]interface{}, error) {
	if len(updates) == 0 {
		return nil, karakeep.ErrEmptyUpdate
	}

	resp, err := c.httpClient.Patch(ctx, "/bookmarks/"+bookmarkID, updates)
	if err != nil {
		return nil, fmt.Errorf("updating bookmark: %w", err)
	}

	var updated map[string]interface{}

	err = json.Unmarshal(resp.Body, &updated)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "bookmark update", Err: err}
	}

	return updated, nil
}

// Delete implements karakeep.BookmarksClient.Delete.
func (c *BookmarksClient) Delete(ctx context.Context, bookmarkID string) error {
	_, err := c.httpClient.Delete(ctx, "/bookmarks/"+bookmarkID, nil)
	if err != nil {
		return fmt.Errorf("deleting bookmark: %w", err)
	}

	return nil
}

// tagRef addresses a tag by id or by name in attach/detach payloads.
type tagRef struct {
	TagID   *string `json:"tagId,omitempty"`
	TagName *string `json:"tagName,omitempty"`
}

// buildTagRefs validates and merges id and name references. Blank
// entries are rejected rather than silently dropped.
func buildTagRefs(tagIDs, tagNames []string) ([]tagRef, error) {
	if len(tagIDs) == 0 && len(tagNames) == 0 {
		return nil, karakeep.ErrNoTagsProvided
	}

	refs := make([]tagRef, 0, len(tagIDs)+len(tagNames))

	for _, id := range tagIDs {
		if strings.TrimSpace(id) == "" {
			return nil, karakeep.ErrBlankTag
		}

		refs = append(refs, tagRef{TagID: &id})
	}

	for _, name := range tagNames {
		if strings.TrimSpace(name) == "" {
			return nil, karakeep.ErrBlankTag
		}

		refs = append(refs, tagRef{TagName: &name})
	}

	return refs, nil
}

// AttachTags implements karakeep.BookmarksClient.AttachTags.
func (c *BookmarksClient) AttachTags(ctx context.Context, bookmarkID string, tagIDs, tagNames []string) (*karakeep.TagAttachment, error) {
	refs, err := buildTagRefs(tagIDs, tagNames)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Post(ctx, "/bookmarks/"+bookmarkID+"/tags", map[string]interface{}{"tags": refs})
	if err != nil {
		return nil, fmt.Errorf("attaching tags: %w", err)
	}

	var attachment karakeep.TagAttachment

	err = json.Unmarshal(resp.Body, &attachment)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "tag attachment", Err: err}
	}

	return &attachment, nil
}

// DetachTags implements karakeep.BookmarksClient.DetachTags.
func (c *BookmarksClient) DetachTags(ctx context.Context, bookmarkID string, tagIDs, tagNames []string) (*karakeep.TagDetachment, error) {
	refs, err := buildTagRefs(tagIDs, tagNames)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Delete(ctx, "/bookmarks/"+bookmarkID+"/tags", map[string]interface{}{"tags": refs})
	if err != nil {
		return nil, fmt.Errorf("detaching tags: %w", err)
	}

	var detachment karakeep.TagDetachment

	err = json.Unmarshal(resp.Body, &detachment)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "tag detachment", Err: err}
	}

	return &detachment, nil
}

// AttachAsset implements karakeep.BookmarksClient.AttachAsset.
func (c *BookmarksClient) AttachAsset(ctx context.Context, bookmarkID, assetID string, assetType karakeep.BookmarkAssetType) (*karakeep.BookmarkAsset, error) {
	body := karakeep.BookmarkAsset{ID: assetID, AssetType: assetType}

	resp, err := c.httpClient.Post(ctx, "/bookmarks/"+bookmarkID+"/assets", body)
	if err != nil {
		return nil, fmt.Errorf("attaching asset: %w", err)
	}

	var asset karakeep.BookmarkAsset

	err = json.Unmarshal(resp.Body, &asset)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "bookmark asset", Err: err}
	}

	return &asset, nil
}

// ReplaceAsset implements karakeep.BookmarksClient.ReplaceAsset.
func (c *BookmarksClient) ReplaceAsset(ctx context.Context, bookmarkID, assetID, newAssetID string) error {
	path := "/bookmarks/" + bookmarkID + "/assets/" + assetID
	body := map[string]string{"assetId": newAssetID}

	_, err := c.httpClient.Put(ctx, path, body)
	if err != nil {
		return fmt.Errorf("replacing asset: %w", err)
	}

	return nil
}

// DetachAsset implements karakeep.BookmarksClient.DetachAsset.
func (c *BookmarksClient) DetachAsset(ctx context.Context, bookmarkID, assetID string) error {
	_, err := c.httpClient.Delete(ctx, "/bookmarks/"+bookmarkID+"/assets/"+assetID, nil)
	if err != nil {
		return fmt.Errorf("detaching asset: %w", err)
	}

	return nil
}

// AllURLs implements karakeep.BookmarksClient.AllURLs. Pages are fetched
// at the maximum size without content to keep the drain cheap.
func (c *BookmarksClient) AllURLs(ctx context.Context) (map[string]struct{}, error) {
	urls := make(map[string]struct{})
	cursor := ""

	for {
		opts := karakeep.NewListBookmarksOptions().WithLimit(karakeep.MaxPageSize)
		if cursor != "" {
			opts = opts.WithCursor(cursor)
		}

		page, err := c.List(ctx, opts)
		if err != nil {
			return urls, fmt.Errorf("collecting bookmark URLs: %w", err)
		}

		for _, bookmark := range page.Bookmarks {
			if sourceURL := bookmark.Content.SourceURL(); sourceURL != "" {
				urls[sourceURL] = struct{}{}
			}
		}

		if page.NextCursor == nil {
			return urls, nil
		}

		cursor = *page.NextCursor
	}
}

// FindIDByURL implements karakeep.BookmarksClient.FindIDByURL. The URL is
// normalized and matched against one search page; trailing-slash
// variants count as equal.
func (c *BookmarksClient) FindIDByURL(ctx context.Context, rawURL string) (string, error) {
	normalized, err := karakeep.ValidateURL(rawURL)
	if err != nil {
		return "", err
	}

	opts := karakeep.NewSearchBookmarksOptions().WithLimit(karakeep.MaxPageSize)

	page, err := c.Search(ctx, normalized, opts)
	if err != nil {
		return "", fmt.Errorf("finding bookmark by URL: %w", err)
	}

	for _, bookmark := range page.Bookmarks {
		candidate, err := karakeep.ValidateURL(bookmark.Content.SourceURL())
		if err != nil {
			continue
		}

		if karakeep.URLsEqual(normalized, candidate) {
			return bookmark.ID, nil
		}
	}

	return "", nil
}
