package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	internalhttp "github.com/ahgraber/karakeep-client/internal/http"
	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

func linkBookmark(id, url string) karakeep.Bookmark {
	return karakeep.Bookmark{
		ID:        id,
		CreatedAt: "2024-01-01T00:00:00Z",
		Content: karakeep.BookmarkContent{
			Type: karakeep.ContentTypeLink,
			Link: &karakeep.LinkContent{URL: url},
		},
	}
}

func TestBookmarksClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "true", r.URL.Query().Get("archived"))
		assert.Equal(t, "25", r.URL.Query().Get("limit"))
		assert.Equal(t, "false", r.URL.Query().Get("includeContent"))
		assert.Empty(t, r.URL.Query().Get("favourited"))

		cursor := "next-page"
		response := karakeep.PaginatedBookmarks{
			Bookmarks:  []karakeep.Bookmark{linkBookmark("bm1", "https://example.com/a")},
			NextCursor: &cursor,
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	opts := karakeep.NewListBookmarksOptions().WithArchived(true).WithLimit(25)

	page, err := bookmarks.List(context.Background(), opts)
	require.NoError(t, err)
	require.Len(t, page.Bookmarks, 1)
	assert.Equal(t, "bm1", page.Bookmarks[0].ID)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "next-page", *page.NextCursor)
}

func TestBookmarksClient_List_LimitExceeded(t *testing.T) {
	bookmarks := NewBookmarksClient(internalhttp.NewClient("http://localhost", "test-key"))

	opts := karakeep.NewListBookmarksOptions().WithLimit(101)

	_, err := bookmarks.List(context.Background(), opts)
	require.ErrorIs(t, err, karakeep.ErrLimitExceeded)
}

func TestBookmarksClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/bm1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "true", r.URL.Query().Get("includeContent"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(linkBookmark("bm1", "https://example.com/a"))
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	bookmark, err := bookmarks.Get(context.Background(), "bm1", nil)
	require.NoError(t, err)
	assert.Equal(t, "bm1", bookmark.ID)
	assert.Equal(t, "https://example.com/a", bookmark.Content.SourceURL())
}

func TestBookmarksClient_Get_SchemaError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": 42}`))
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	_, err := bookmarks.Get(context.Background(), "bm1", nil)
	require.Error(t, err)
	assert.True(t, karakeep.IsSchema(err))
}

func TestBookmarksClient_Search(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/search", r.URL.Path)
		assert.Equal(t, "golang", r.URL.Query().Get("q"))
		assert.Equal(t, "true", r.URL.Query().Get("includeContent"))

		response := karakeep.PaginatedBookmarks{
			Bookmarks: []karakeep.Bookmark{linkBookmark("bm2", "https://go.dev/")},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	page, err := bookmarks.Search(context.Background(), "golang", nil)
	require.NoError(t, err)
	require.Len(t, page.Bookmarks, 1)
	assert.Equal(t, "bm2", page.Bookmarks[0].ID)
	assert.Nil(t, page.NextCursor)
}

func TestBookmarksClient_Search_LimitExceeded(t *testing.T) {
	bookmarks := NewBookmarksClient(internalhttp.NewClient("http://localhost", "test-key"))

	opts := karakeep.NewSearchBookmarksOptions().WithLimit(101)

	_, err := bookmarks.Search(context.Background(), "golang", opts)
	require.ErrorIs(t, err, karakeep.ErrLimitExceeded)
}

func TestBookmarksClient_Search_QueryRequired(t *testing.T) {
	bookmarks := NewBookmarksClient(internalhttp.NewClient("http://localhost", "test-key"))

	_, err := bookmarks.Search(context.Background(), "   ", nil)
	require.ErrorIs(t, err, karakeep.ErrQueryRequired)
}

func TestBookmarksClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "link", body["type"])
		assert.Equal(t, "https://example.com/a", body["url"])
		assert.NotContains(t, body, "text")

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(linkBookmark("bm3", "https://example.com/a"))
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	request := &karakeep.CreateBookmarkRequest{
		Type: karakeep.BookmarkTypeLink,
		URL:  "https://example.com/a",
	}

	bookmark, err := bookmarks.Create(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "bm3", bookmark.ID)
}

func TestBookmarksClient_Create_Invalid(t *testing.T) {
	bookmarks := NewBookmarksClient(internalhttp.NewClient("http://localhost", "test-key"))

	request := &karakeep.CreateBookmarkRequest{Type: karakeep.BookmarkTypeLink}

	_, err := bookmarks.Create(context.Background(), request)
	require.ErrorIs(t, err, karakeep.ErrURLRequired)
}

func TestBookmarksClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/bm1", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, true, body["archived"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{"id": "bm1", "archived": true})
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	updated, err := bookmarks.Update(context.Background(), "bm1", map[string]interface{}{"archived": true})
	require.NoError(t, err)
	assert.Equal(t, "bm1", updated["id"])
	assert.Equal(t, true, updated["archived"])
}

func TestBookmarksClient_Update_Empty(t *testing.T) {
	bookmarks := NewBookmarksClient(internalhttp.NewClient("http://localhost", "test-key"))

	_, err := bookmarks.Update(context.Background(), "bm1", map[string]interface{}{})
	require.ErrorIs(t, err, karakeep.ErrEmptyUpdate)
}

func TestBookmarksClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/bm1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	err := bookmarks.Delete(context.Background(), "bm1")
	require.NoError(t, err)
}

func TestBookmarksClient_AttachTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/bm1/tags", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body struct {
			Tags []map[string]string `json:"tags"`
		}

		_ = json.NewDecoder(r.Body).Decode(&body)
		require.Len(t, body.Tags, 2)
		assert.Equal(t, "tag-1", body.Tags[0]["tagId"])
		assert.NotContains(t, body.Tags[0], "tagName")
		assert.Equal(t, "reading", body.Tags[1]["tagName"])

		_ = json.NewEncoder(w).Encode(karakeep.TagAttachment{Attached: []string{"tag-1", "tag-2"}})
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	attachment, err := bookmarks.AttachTags(context.Background(), "bm1", []string{"tag-1"}, []string{"reading"})
	require.NoError(t, err)
	assert.Equal(t, []string{"tag-1", "tag-2"}, attachment.Attached)
}

func TestBookmarksClient_AttachTags_Validation(t *testing.T) {
	bookmarks := NewBookmarksClient(internalhttp.NewClient("http://localhost", "test-key"))

	_, err := bookmarks.AttachTags(context.Background(), "bm1", nil, nil)
	require.ErrorIs(t, err, karakeep.ErrNoTagsProvided)

	_, err = bookmarks.AttachTags(context.Background(), "bm1", []string{"  "}, nil)
	require.ErrorIs(t, err, karakeep.ErrBlankTag)
}

func TestBookmarksClient_DetachTags(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/bm1/tags", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		var body struct {
			Tags []map[string]string `json:"tags"`
		}

		_ = json.NewDecoder(r.Body).Decode(&body)
		require.Len(t, body.Tags, 1)
		assert.Equal(t, "tag-1", body.Tags[0]["tagId"])

		_ = json.NewEncoder(w).Encode(karakeep.TagDetachment{Detached: []string{"tag-1"}})
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	detachment, err := bookmarks.DetachTags(context.Background(), "bm1", []string{"tag-1"}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"tag-1"}, detachment.Detached)
}

func TestBookmarksClient_AttachAsset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/bm1/assets", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]string

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "asset-1", body["id"])
		assert.Equal(t, "screenshot", body["assetType"])

		_ = json.NewEncoder(w).Encode(karakeep.BookmarkAsset{
			ID:        "asset-1",
			AssetType: karakeep.BookmarkAssetTypeScreenshot,
		})
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	asset, err := bookmarks.AttachAsset(context.Background(), "bm1", "asset-1", karakeep.BookmarkAssetTypeScreenshot)
	require.NoError(t, err)
	assert.Equal(t, "asset-1", asset.ID)
	assert.Equal(t, karakeep.BookmarkAssetTypeScreenshot, asset.AssetType)
}

func TestBookmarksClient_ReplaceAsset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/bm1/assets/asset-1", r.URL.Path)
		assert.Equal(t, "PUT", r.Method)

		var body map[string]string

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "asset-2", body["assetId"])

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	err := bookmarks.ReplaceAsset(context.Background(), "bm1", "asset-1", "asset-2")
	require.NoError(t, err)
}

func TestBookmarksClient_DetachAsset(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/bm1/assets/asset-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	err := bookmarks.DetachAsset(context.Background(), "bm1", "asset-1")
	require.NoError(t, err)
}

func TestBookmarksClient_AllURLs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))

		var response karakeep.PaginatedBookmarks

		switch r.URL.Query().Get("cursor") {
		case "":
			cursor := "page-2"
			response = karakeep.PaginatedBookmarks{
				Bookmarks: []karakeep.Bookmark{
					linkBookmark("bm1", "https://example.com/a"),
					linkBookmark("bm2", "https://example.com/b"),
				},
				NextCursor: &cursor,
			}
		case "page-2":
			noteURL := "https://example.com/note"
			response = karakeep.PaginatedBookmarks{
				Bookmarks: []karakeep.Bookmark{
					// Duplicate URL collapses into the set.
					linkBookmark("bm3", "https://example.com/a"),
					{ID: "bm4", Content: karakeep.BookmarkContent{
						Type: karakeep.ContentTypeText,
						Text: &karakeep.TextContent{Type: karakeep.ContentTypeText, Text: "note", SourceURL: &noteURL},
					}},
					{ID: "bm5", Content: karakeep.BookmarkContent{Type: karakeep.ContentTypeUnknown}},
				},
			}
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	urls, err := bookmarks.AllURLs(context.Background())
	require.NoError(t, err)
	assert.Len(t, urls, 3)
	assert.Contains(t, urls, "https://example.com/a")
	assert.Contains(t, urls, "https://example.com/b")
	assert.Contains(t, urls, "https://example.com/note")
}

func TestBookmarksClient_AllURLs_PartialOnError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("cursor") == "" {
			cursor := "page-2"
			_ = json.NewEncoder(w).Encode(karakeep.PaginatedBookmarks{
				Bookmarks:  []karakeep.Bookmark{linkBookmark("bm1", "https://example.com/a")},
				NextCursor: &cursor,
			})

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	urls, err := bookmarks.AllURLs(context.Background())
	require.Error(t, err)
	assert.Contains(t, urls, "https://example.com/a")
}

func TestBookmarksClient_FindIDByURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookmarks/search", r.URL.Path)
		assert.Equal(t, "https://example.com/article", r.URL.Query().Get("q"))

		response := karakeep.PaginatedBookmarks{
			Bookmarks: []karakeep.Bookmark{
				linkBookmark("bm1", "https://example.com/other"),
				// Trailing slash still counts as an exact match.
				linkBookmark("bm2", "https://example.com/article/"),
			},
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	id, err := bookmarks.FindIDByURL(context.Background(), "https://example.com/article")
	require.NoError(t, err)
	assert.Equal(t, "bm2", id)
}

func TestBookmarksClient_FindIDByURL_NoMatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(karakeep.PaginatedBookmarks{})
	}))
	defer server.Close()

	bookmarks := NewBookmarksClient(internalhttp.NewClient(server.URL, "test-key"))

	id, err := bookmarks.FindIDByURL(context.Background(), "https://example.com/missing")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestBookmarksClient_FindIDByURL_InvalidURL(t *testing.T) {
	bookmarks := NewBookmarksClient(internalhttp.NewClient("http://localhost", "test-key"))

	_, err := bookmarks.FindIDByURL(context.Background(), "not a url")
	require.ErrorIs(t, err, karakeep.ErrInvalidURL)
}
