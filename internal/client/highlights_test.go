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

func TestHighlightsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/highlights", r.URL.Path)
		assert.Equal(t, "GET", r.Method)
		assert.Equal(t, "10", r.URL.Query().Get("limit"))

		cursor := "next"
		response := karakeep.PaginatedHighlights{
			Highlights: []karakeep.Highlight{
				{ID: "hl-1", BookmarkID: "bm1", StartOffset: 0, EndOffset: 10, Color: karakeep.HighlightColorRed},
			},
			NextCursor: &cursor,
		}

		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	highlights := NewHighlightsClient(internalhttp.NewClient(server.URL, "test-key"))

	page, err := highlights.List(context.Background(), &karakeep.ListHighlightsOptions{Limit: 10})
	require.NoError(t, err)
	require.Len(t, page.Highlights, 1)
	assert.Equal(t, karakeep.HighlightColorRed, page.Highlights[0].Color)
	require.NotNil(t, page.NextCursor)
	assert.Equal(t, "next", *page.NextCursor)
}

func TestHighlightsClient_List_LimitExceeded(t *testing.T) {
	highlights := NewHighlightsClient(internalhttp.NewClient("http://localhost", "test-key"))

	_, err := highlights.List(context.Background(), &karakeep.ListHighlightsOptions{Limit: 500})
	require.ErrorIs(t, err, karakeep.ErrLimitExceeded)
}

func TestHighlightsClient_Get_DefaultColor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/highlights/hl-1", r.URL.Path)

		// Color omitted by the service falls back to yellow.
		_, _ = w.Write([]byte(`{"id": "hl-1", "bookmarkId": "bm1", "startOffset": 5, "endOffset": 9}`))
	}))
	defer server.Close()

	highlights := NewHighlightsClient(internalhttp.NewClient(server.URL, "test-key"))

	highlight, err := highlights.Get(context.Background(), "hl-1")
	require.NoError(t, err)
	assert.Equal(t, karakeep.HighlightColorYellow, highlight.Color)
}

func TestHighlightsClient_Create(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/highlights", r.URL.Path)
		assert.Equal(t, "POST", r.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "bm1", body["bookmarkId"])
		assert.InEpsilon(t, 12.0, body["startOffset"], 0.001)

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(karakeep.Highlight{
			ID:          "hl-2",
			BookmarkID:  "bm1",
			StartOffset: 12,
			EndOffset:   40,
			Color:       karakeep.HighlightColorYellow,
		})
	}))
	defer server.Close()

	highlights := NewHighlightsClient(internalhttp.NewClient(server.URL, "test-key"))

	request := &karakeep.CreateHighlightRequest{
		BookmarkID:  "bm1",
		StartOffset: 12,
		EndOffset:   40,
	}

	highlight, err := highlights.Create(context.Background(), request)
	require.NoError(t, err)
	assert.Equal(t, "hl-2", highlight.ID)
}

func TestHighlightsClient_Create_Invalid(t *testing.T) {
	highlights := NewHighlightsClient(internalhttp.NewClient("http://localhost", "test-key"))

	_, err := highlights.Create(context.Background(), &karakeep.CreateHighlightRequest{})
	require.ErrorIs(t, err, karakeep.ErrBookmarkIDRequired)
}

func TestHighlightsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/highlights/hl-1", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body map[string]interface{}

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "blue", body["color"])

		_ = json.NewEncoder(w).Encode(karakeep.Highlight{ID: "hl-1", BookmarkID: "bm1", Color: karakeep.HighlightColorBlue})
	}))
	defer server.Close()

	highlights := NewHighlightsClient(internalhttp.NewClient(server.URL, "test-key"))

	color := karakeep.HighlightColorBlue
	highlight, err := highlights.Update(context.Background(), "hl-1", &karakeep.UpdateHighlightRequest{Color: &color})
	require.NoError(t, err)
	assert.Equal(t, karakeep.HighlightColorBlue, highlight.Color)
}

func TestHighlightsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/highlights/hl-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)

		_ = json.NewEncoder(w).Encode(karakeep.Highlight{ID: "hl-1", BookmarkID: "bm1", Color: karakeep.HighlightColorYellow})
	}))
	defer server.Close()

	highlights := NewHighlightsClient(internalhttp.NewClient(server.URL, "test-key"))

	deleted, err := highlights.Delete(context.Background(), "hl-1")
	require.NoError(t, err)
	assert.Equal(t, "hl-1", deleted.ID)
}
