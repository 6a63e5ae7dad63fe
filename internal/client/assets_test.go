package client

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/ahgraber/karakeep-client/internal/http"
	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

func TestAssetsClient_Upload(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "report.pdf")
	require.NoError(t, os.WriteFile(filePath, []byte("pdf bytes"), 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assets", r.URL.Path)
		assert.Equal(t, "POST", r.Method)
		assert.Contains(t, r.Header.Get("Content-Type"), "multipart/form-data")

		file, header, err := r.FormFile("file")
		require.NoError(t, err)

		defer func() { _ = file.Close() }()

		assert.Equal(t, "report.pdf", header.Filename)
		assert.Equal(t, "application/pdf", header.Header.Get("Content-Type"))

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "pdf bytes", string(content))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(karakeep.Asset{
			AssetID:     "asset-1",
			ContentType: "application/pdf",
			Size:        9,
			FileName:    "report.pdf",
		})
	}))
	defer server.Close()

	assets := NewAssetsClient(internalhttp.NewClient(server.URL, "test-key"))

	asset, err := assets.Upload(context.Background(), filePath)
	require.NoError(t, err)
	assert.Equal(t, "asset-1", asset.AssetID)
	assert.Equal(t, "application/pdf", asset.ContentType)
}

func TestAssetsClient_Upload_UnknownExtension(t *testing.T) {
	dir := t.TempDir()
	filePath := filepath.Join(dir, "blob.zzz9")
	require.NoError(t, os.WriteFile(filePath, []byte("raw"), 0o600))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, header, err := r.FormFile("file")
		require.NoError(t, err)
		assert.Equal(t, "application/octet-stream", header.Header.Get("Content-Type"))

		_ = json.NewEncoder(w).Encode(karakeep.Asset{AssetID: "asset-2", FileName: "blob.zzz9"})
	}))
	defer server.Close()

	assets := NewAssetsClient(internalhttp.NewClient(server.URL, "test-key"))

	asset, err := assets.Upload(context.Background(), filePath)
	require.NoError(t, err)
	assert.Equal(t, "asset-2", asset.AssetID)
}

func TestAssetsClient_Upload_MissingFile(t *testing.T) {
	assets := NewAssetsClient(internalhttp.NewClient("http://localhost", "test-key"))

	_, err := assets.Upload(context.Background(), filepath.Join(t.TempDir(), "absent.pdf"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestAssetsClient_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assets/asset-12345", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "*/*", r.Header.Get("Accept"))

		w.Header().Set("Content-Type", "image/png")
		_, _ = w.Write([]byte{0x89, 'P', 'N', 'G'})
	}))
	defer server.Close()

	assets := NewAssetsClient(internalhttp.NewClient(server.URL, "test-key"))

	content, err := assets.Fetch(context.Background(), "asset-12345")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, content)
}

func TestAssetsClient_Fetch_InvalidID(t *testing.T) {
	assets := NewAssetsClient(internalhttp.NewClient("http://localhost", "test-key"))

	_, err := assets.Fetch(context.Background(), "   ")
	require.ErrorIs(t, err, karakeep.ErrAssetIDRequired)

	_, err = assets.Fetch(context.Background(), "ab")
	require.ErrorIs(t, err, karakeep.ErrInvalidAssetID)
}
