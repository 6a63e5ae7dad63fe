package karakeep

import (
	"context"
	"net/http"
	"time"
)

// Environment variables consulted by kkclient.NewFromEnv.
const (
	EnvAPIKey  = "KARAKEEP_API_KEY"
	EnvBaseURL = "KARAKEEP_BASEURL"
)

const (
	// DefaultTimeout is the per-request timeout applied when Config.Timeout
	// is zero.
	DefaultTimeout = 30 * time.Second

	// MaxPageSize is the largest page size the service accepts. Listing and
	// search operations reject larger limits locally, before any call.
	MaxPageSize = 100
)

// Client provides access to all resource-specific clients.
type Client interface {
	Bookmarks() BookmarksClient
	Tags() TagsClient
	Assets() AssetsClient
	Highlights() HighlightsClient
	Lists() ListsClient
}

// BookmarksClient operates on bookmarks, their tags, and their attached
// assets.
type BookmarksClient interface {
	List(ctx context.Context, opts *ListBookmarksOptions) (*PaginatedBookmarks, error)
	Get(ctx context.Context, bookmarkID string, opts *GetBookmarkOptions) (*Bookmark, error)
	Search(ctx context.Context, query string, opts *SearchBookmarksOptions) (*PaginatedBookmarks, error)
	Create(ctx context.Context, request *CreateBookmarkRequest) (*Bookmark, error)

	// Update applies a partial update and returns the service's partial
	// response unvalidated, matching the endpoint's response shape.
	Update(ctx context.Context, bookmarkID string, updates map[string]interface{}) (map[string]interface{}, error)
	Delete(ctx context.Context, bookmarkID string) error

	AttachTags(ctx context.Context, bookmarkID string, tagIDs, tagNames []string) (*TagAttachment, error)
	DetachTags(ctx context.Context, bookmarkID string, tagIDs, tagNames []string) (*TagDetachment, error)

	AttachAsset(ctx context.Context, bookmarkID, assetID string, assetType BookmarkAssetType) (*BookmarkAsset, error)
	ReplaceAsset(ctx context.Context, bookmarkID, assetID, newAssetID string) error
	DetachAsset(ctx context.Context, bookmarkID, assetID string) error

	// AllURLs drains every page of the bookmark listing and collects the
	// de-duplicated set of source URLs. On a page error it stops and
	// returns the partial set together with that error; callers wanting
	// best-effort semantics may ignore the error.
	AllURLs(ctx context.Context) (map[string]struct{}, error)

	// FindIDByURL looks a bookmark up by exact normalized-URL match over a
	// single search page. It returns "" with a nil error when nothing
	// matches.
	FindIDByURL(ctx context.Context, rawURL string) (string, error)
}

// TagsClient operates on tags.
type TagsClient interface {
	List(ctx context.Context) ([]Tag, error)
	Get(ctx context.Context, tagID string) (*Tag, error)
	Update(ctx context.Context, tagID, name string) (*Tag, error)
	Delete(ctx context.Context, tagID string) error
}

// AssetsClient uploads and fetches stored binaries.
type AssetsClient interface {
	Upload(ctx context.Context, filePath string) (*Asset, error)
	Fetch(ctx context.Context, assetID string) ([]byte, error)
}

// HighlightsClient operates on highlights.
type HighlightsClient interface {
	List(ctx context.Context, opts *ListHighlightsOptions) (*PaginatedHighlights, error)
	Get(ctx context.Context, highlightID string) (*Highlight, error)
	Create(ctx context.Context, request *CreateHighlightRequest) (*Highlight, error)
	Update(ctx context.Context, highlightID string, request *UpdateHighlightRequest) (*Highlight, error)
	Delete(ctx context.Context, highlightID string) (*Highlight, error)
}

// ListsClient operates on bookmark lists and their membership.
type ListsClient interface {
	List(ctx context.Context) ([]BookmarkList, error)
	Get(ctx context.Context, listID string) (*BookmarkList, error)
	Create(ctx context.Context, request *CreateListRequest) (*BookmarkList, error)
	Update(ctx context.Context, listID string, request *UpdateListRequest) (*BookmarkList, error)
	Delete(ctx context.Context, listID string) error
	AddBookmark(ctx context.Context, listID, bookmarkID string) error
	RemoveBookmark(ctx context.Context, listID, bookmarkID string) error
}

// Logger is the minimal structured logging interface the client emits
// through. The zap-backed implementation lives in the CLI; any logger can
// satisfy it.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config carries the connection configuration for building a Client. The
// library holds no state between calls beyond these values.
type Config struct {
	// APIKey authenticates every request as a Bearer token.
	APIKey string `validate:"required"`

	// BaseURL is the service root (e.g. "https://keep.example.com"); the
	// "/api/v1/" base path is appended by the client. kkclient.New trims a
	// trailing slash and prepends "https://" when no scheme is present.
	BaseURL string `validate:"required"`

	// Timeout bounds each request. Zero means DefaultTimeout.
	Timeout time.Duration

	// Debug enables request/response logging through Logger.
	Debug bool

	// Logger receives diagnostics when set.
	Logger Logger

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// HTTPClient overrides the underlying HTTP client. Timeout is ignored
	// when set.
	HTTPClient *http.Client
}
