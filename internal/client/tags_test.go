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

func TestTagsClient_List(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tags", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		ai := 2.0
		response := map[string][]karakeep.Tag{
			"tags": {
				{
					ID:                         "tag-1",
					Name:                       "reading",
					NumBookmarks:               3,
					NumBookmarksByAttachedType: karakeep.TagCounts{AI: &ai},
				},
			},
		}

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	tags := NewTagsClient(internalhttp.NewClient(server.URL, "test-key"))

	result, err := tags.List(context.Background())
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, "reading", result[0].Name)
	require.NotNil(t, result[0].NumBookmarksByAttachedType.AI)
	assert.InEpsilon(t, 2.0, *result[0].NumBookmarksByAttachedType.AI, 0.001)
}

func TestTagsClient_Get(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tags/tag-1", r.URL.Path)
		assert.Equal(t, "GET", r.Method)

		_ = json.NewEncoder(w).Encode(karakeep.Tag{ID: "tag-1", Name: "reading"})
	}))
	defer server.Close()

	tags := NewTagsClient(internalhttp.NewClient(server.URL, "test-key"))

	tag, err := tags.Get(context.Background(), "tag-1")
	require.NoError(t, err)
	assert.Equal(t, "tag-1", tag.ID)
}

func TestTagsClient_Update(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tags/tag-1", r.URL.Path)
		assert.Equal(t, "PATCH", r.Method)

		var body map[string]string

		_ = json.NewDecoder(r.Body).Decode(&body)
		assert.Equal(t, "renamed", body["name"])

		_ = json.NewEncoder(w).Encode(karakeep.Tag{ID: "tag-1", Name: "renamed"})
	}))
	defer server.Close()

	tags := NewTagsClient(internalhttp.NewClient(server.URL, "test-key"))

	tag, err := tags.Update(context.Background(), "tag-1", "renamed")
	require.NoError(t, err)
	assert.Equal(t, "renamed", tag.Name)
}

func TestTagsClient_Update_NameRequired(t *testing.T) {
	tags := NewTagsClient(internalhttp.NewClient("http://localhost", "test-key"))

	_, err := tags.Update(context.Background(), "tag-1", "  ")
	require.ErrorIs(t, err, karakeep.ErrNameRequired)
}

func TestTagsClient_Delete(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tags/tag-1", r.URL.Path)
		assert.Equal(t, "DELETE", r.Method)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	tags := NewTagsClient(internalhttp.NewClient(server.URL, "test-key"))

	err := tags.Delete(context.Background(), "tag-1")
	require.NoError(t, err)
}
