package client

import (
	"context"
	"encoding/json"
	"fmt"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/ahgraber/karakeep-client/internal/http"
	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

// minAssetIDLength guards against obviously truncated ids; real asset
// ids are long opaque identifiers.
const minAssetIDLength = 5

// AssetsClient implements karakeep.AssetsClient.
type AssetsClient struct {
	httpClient *http.Client
}

// NewAssetsClient creates a new assets client.
func NewAssetsClient(httpClient *http.Client) *AssetsClient {
	return &AssetsClient{
		httpClient: httpClient,
	}
}

// Upload implements karakeep.AssetsClient.Upload. The MIME type is
// derived from the file extension, falling back to a generic binary
// type when the extension is unknown.
func (c *AssetsClient) Upload(ctx context.Context, filePath string) (*karakeep.Asset, error) {
	file, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("opening asset file: %w", err)
	}

	defer func() { _ = file.Close() }()

	contentType := mime.TypeByExtension(filepath.Ext(filePath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	resp, err := c.httpClient.PostMultipart(ctx, "/assets", &http.Upload{
		Field:       "file",
		FileName:    filepath.Base(filePath),
		ContentType: contentType,
		Reader:      file,
	})
	if err != nil {
		return nil, fmt.Errorf("uploading asset: %w", err)
	}

	var asset karakeep.Asset

	err = json.Unmarshal(resp.Body, &asset)
	if err != nil {
		return nil, &karakeep.SchemaError{Entity: "asset", Err: err}
	}

	return &asset, nil
}

// Fetch implements karakeep.AssetsClient.Fetch. The body comes back
// verbatim; the caller decides what to do with the bytes.
func (c *AssetsClient) Fetch(ctx context.Context, assetID string) ([]byte, error) {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return nil, karakeep.ErrAssetIDRequired
	}

	if len(assetID) < minAssetIDLength {
		return nil, fmt.Errorf("%w: %q", karakeep.ErrInvalidAssetID, assetID)
	}

	resp, err := c.httpClient.GetRaw(ctx, "/assets/"+assetID)
	if err != nil {
		return nil, fmt.Errorf("fetching asset: %w", err)
	}

	return resp.Body, nil
}
