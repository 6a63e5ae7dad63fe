package karakeep

import (
	"encoding/json"
	"fmt"
)

// ProcessingStatus reports the state of a background pipeline (tagging,
// summarization) for a bookmark.
type ProcessingStatus string

const (
	ProcessingStatusSuccess ProcessingStatus = "success"
	ProcessingStatusFailure ProcessingStatus = "failure"
	ProcessingStatusPending ProcessingStatus = "pending"
)

func (s *ProcessingStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding processing status: %w", err)
	}

	switch ProcessingStatus(raw) {
	case ProcessingStatusSuccess, ProcessingStatusFailure, ProcessingStatusPending:
		*s = ProcessingStatus(raw)

		return nil
	}

	return fmt.Errorf("%w: processing status %q", ErrUnknownEnumValue, raw)
}

// AttachedBy records whether a tag was attached by the tagging pipeline
// or by a person.
type AttachedBy string

const (
	AttachedByAI    AttachedBy = "ai"
	AttachedByHuman AttachedBy = "human"
)

func (a *AttachedBy) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding attachedBy: %w", err)
	}

	switch AttachedBy(raw) {
	case AttachedByAI, AttachedByHuman:
		*a = AttachedBy(raw)

		return nil
	}

	return fmt.Errorf("%w: attachedBy %q", ErrUnknownEnumValue, raw)
}

// ContentType discriminates the bookmark content union.
type ContentType string

const (
	ContentTypeLink    ContentType = "link"
	ContentTypeText    ContentType = "text"
	ContentTypeAsset   ContentType = "asset"
	ContentTypeUnknown ContentType = "unknown"
)

// AssetContentType is the closed set of asset-backed bookmark content
// kinds.
type AssetContentType string

const (
	AssetContentTypeImage AssetContentType = "image"
	AssetContentTypePDF   AssetContentType = "pdf"
)

func (t *AssetContentType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding assetType: %w", err)
	}

	switch AssetContentType(raw) {
	case AssetContentTypeImage, AssetContentTypePDF:
		*t = AssetContentType(raw)

		return nil
	}

	return fmt.Errorf("%w: asset content type %q", ErrUnknownEnumValue, raw)
}

// BookmarkAssetType is the closed set of asset kinds attachable to a
// bookmark. The service contract enumerates these explicitly, including a
// literal "unknown" member; wire values outside the set fail validation.
type BookmarkAssetType string

const (
	BookmarkAssetTypeLinkHTMLContent   BookmarkAssetType = "linkHtmlContent"
	BookmarkAssetTypeScreenshot        BookmarkAssetType = "screenshot"
	BookmarkAssetTypeAssetScreenshot   BookmarkAssetType = "assetScreenshot"
	BookmarkAssetTypeBannerImage       BookmarkAssetType = "bannerImage"
	BookmarkAssetTypeFullPageArchive   BookmarkAssetType = "fullPageArchive"
	BookmarkAssetTypeVideo             BookmarkAssetType = "video"
	BookmarkAssetTypeBookmarkAsset     BookmarkAssetType = "bookmarkAsset"
	BookmarkAssetTypePrecrawledArchive BookmarkAssetType = "precrawledArchive"
	BookmarkAssetTypePDF               BookmarkAssetType = "pdf"
	BookmarkAssetTypeUserUploaded      BookmarkAssetType = "userUploaded"
	BookmarkAssetTypeAvatar            BookmarkAssetType = "avatar"
	BookmarkAssetTypeUnknown           BookmarkAssetType = "unknown"
)

func (t *BookmarkAssetType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding bookmark asset type: %w", err)
	}

	switch BookmarkAssetType(raw) {
	case BookmarkAssetTypeLinkHTMLContent, BookmarkAssetTypeScreenshot,
		BookmarkAssetTypeAssetScreenshot, BookmarkAssetTypeBannerImage,
		BookmarkAssetTypeFullPageArchive, BookmarkAssetTypeVideo,
		BookmarkAssetTypeBookmarkAsset, BookmarkAssetTypePrecrawledArchive,
		BookmarkAssetTypePDF, BookmarkAssetTypeUserUploaded,
		BookmarkAssetTypeAvatar, BookmarkAssetTypeUnknown:
		*t = BookmarkAssetType(raw)

		return nil
	}

	return fmt.Errorf("%w: bookmark asset type %q", ErrUnknownEnumValue, raw)
}

// HighlightColor is the closed set of highlight colors.
type HighlightColor string

const (
	HighlightColorYellow HighlightColor = "yellow"
	HighlightColorRed    HighlightColor = "red"
	HighlightColorGreen  HighlightColor = "green"
	HighlightColorBlue   HighlightColor = "blue"
)

func (c *HighlightColor) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding highlight color: %w", err)
	}

	switch HighlightColor(raw) {
	case HighlightColorYellow, HighlightColorRed, HighlightColorGreen, HighlightColorBlue:
		*c = HighlightColor(raw)

		return nil
	}

	return fmt.Errorf("%w: highlight color %q", ErrUnknownEnumValue, raw)
}

// ListType discriminates manual lists from smart (query-driven) lists.
type ListType string

const (
	ListTypeManual ListType = "manual"
	ListTypeSmart  ListType = "smart"
)

func (t *ListType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decoding list type: %w", err)
	}

	switch ListType(raw) {
	case ListTypeManual, ListTypeSmart:
		*t = ListType(raw)

		return nil
	}

	return fmt.Errorf("%w: list type %q", ErrUnknownEnumValue, raw)
}

// LinkContent is the content payload of a link bookmark. Everything past
// URL is crawl metadata filled in by the service.
type LinkContent struct {
	Type                     ContentType `json:"type"                               yaml:"type"`
	URL                      string      `json:"url"                                yaml:"url"`
	Title                    *string     `json:"title,omitempty"                    yaml:"title,omitempty"`
	Description              *string     `json:"description,omitempty"              yaml:"description,omitempty"`
	ImageURL                 *string     `json:"imageUrl,omitempty"                 yaml:"image_url,omitempty"`
	ImageAssetID             *string     `json:"imageAssetId,omitempty"             yaml:"image_asset_id,omitempty"`
	ScreenshotAssetID        *string     `json:"screenshotAssetId,omitempty"        yaml:"screenshot_asset_id,omitempty"`
	FullPageArchiveAssetID   *string     `json:"fullPageArchiveAssetId,omitempty"   yaml:"full_page_archive_asset_id,omitempty"`
	PrecrawledArchiveAssetID *string     `json:"precrawledArchiveAssetId,omitempty" yaml:"precrawled_archive_asset_id,omitempty"`
	VideoAssetID             *string     `json:"videoAssetId,omitempty"             yaml:"video_asset_id,omitempty"`
	Favicon                  *string     `json:"favicon,omitempty"                  yaml:"favicon,omitempty"`
	HTMLContent              *string     `json:"htmlContent,omitempty"              yaml:"html_content,omitempty"`
	ContentAssetID           *string     `json:"contentAssetId,omitempty"           yaml:"content_asset_id,omitempty"`
	CrawledAt                *string     `json:"crawledAt,omitempty"                yaml:"crawled_at,omitempty"`
	Author                   *string     `json:"author,omitempty"                   yaml:"author,omitempty"`
	Publisher                *string     `json:"publisher,omitempty"                yaml:"publisher,omitempty"`
	DatePublished            *string     `json:"datePublished,omitempty"            yaml:"date_published,omitempty"`
	DateModified             *string     `json:"dateModified,omitempty"             yaml:"date_modified,omitempty"`
}

// TextContent is the content payload of a text bookmark.
type TextContent struct {
	Type      ContentType `json:"type"                yaml:"type"`
	Text      string      `json:"text"                yaml:"text"`
	SourceURL *string     `json:"sourceUrl,omitempty" yaml:"source_url,omitempty"`
}

// AssetContent is the content payload of an asset bookmark (an uploaded
// image or PDF).
type AssetContent struct {
	Type      ContentType      `json:"type"                yaml:"type"`
	AssetType AssetContentType `json:"assetType"           yaml:"asset_type"`
	AssetID   string           `json:"assetId"             yaml:"asset_id"`
	FileName  *string          `json:"fileName,omitempty"  yaml:"file_name,omitempty"`
	SourceURL *string          `json:"sourceUrl,omitempty" yaml:"source_url,omitempty"`
	Size      *float64         `json:"size,omitempty"      yaml:"size,omitempty"`
	Content   *string          `json:"content,omitempty"   yaml:"content,omitempty"`
}

// BookmarkContent is the tagged union of bookmark content shapes. Exactly
// one variant is populated, selected by Type. Dispatch is strictly on the
// wire "type" discriminator; an unrecognized discriminator resolves to
// ContentTypeUnknown rather than failing, so responses from newer service
// versions still decode. Closed enums inside a recognized variant (such
// as AssetContent.AssetType) remain strict.
type BookmarkContent struct {
	Type  ContentType   `yaml:"type"`
	Link  *LinkContent  `yaml:"link,omitempty"`
	Text  *TextContent  `yaml:"text,omitempty"`
	Asset *AssetContent `yaml:"asset,omitempty"`
}

func (c *BookmarkContent) UnmarshalJSON(data []byte) error {
	var probe struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(data, &probe); err != nil {
		return fmt.Errorf("decoding content discriminator: %w", err)
	}

	switch ContentType(probe.Type) {
	case ContentTypeLink:
		var link LinkContent
		if err := json.Unmarshal(data, &link); err != nil {
			return fmt.Errorf("decoding link content: %w", err)
		}

		*c = BookmarkContent{Type: ContentTypeLink, Link: &link}
	case ContentTypeText:
		var text TextContent
		if err := json.Unmarshal(data, &text); err != nil {
			return fmt.Errorf("decoding text content: %w", err)
		}

		*c = BookmarkContent{Type: ContentTypeText, Text: &text}
	case ContentTypeAsset:
		var asset AssetContent
		if err := json.Unmarshal(data, &asset); err != nil {
			return fmt.Errorf("decoding asset content: %w", err)
		}

		*c = BookmarkContent{Type: ContentTypeAsset, Asset: &asset}
	default:
		*c = BookmarkContent{Type: ContentTypeUnknown}
	}

	return nil
}

func (c BookmarkContent) MarshalJSON() ([]byte, error) {
	switch c.Type {
	case ContentTypeLink:
		if c.Link != nil {
			c.Link.Type = ContentTypeLink

			return json.Marshal(c.Link)
		}
	case ContentTypeText:
		if c.Text != nil {
			c.Text.Type = ContentTypeText

			return json.Marshal(c.Text)
		}
	case ContentTypeAsset:
		if c.Asset != nil {
			c.Asset.Type = ContentTypeAsset

			return json.Marshal(c.Asset)
		}
	case ContentTypeUnknown:
	}

	return json.Marshal(struct {
		Type ContentType `json:"type"`
	}{Type: ContentTypeUnknown})
}

// SourceURL returns the URL a bookmark's content points back to: the link
// URL for link content, the source URL for text and asset content, and ""
// otherwise.
func (c BookmarkContent) SourceURL() string {
	switch c.Type {
	case ContentTypeLink:
		if c.Link != nil {
			return c.Link.URL
		}
	case ContentTypeText:
		if c.Text != nil && c.Text.SourceURL != nil {
			return *c.Text.SourceURL
		}
	case ContentTypeAsset:
		if c.Asset != nil && c.Asset.SourceURL != nil {
			return *c.Asset.SourceURL
		}
	case ContentTypeUnknown:
	}

	return ""
}

// TagShort is the tag projection embedded in bookmark responses.
type TagShort struct {
	ID         string     `json:"id"         yaml:"id"`
	Name       string     `json:"name"       yaml:"name"`
	AttachedBy AttachedBy `json:"attachedBy" yaml:"attached_by"`
}

// TagCounts breaks a tag's bookmark count down by attacher.
type TagCounts struct {
	AI    *float64 `json:"ai,omitempty"    yaml:"ai,omitempty"`
	Human *float64 `json:"human,omitempty" yaml:"human,omitempty"`
}

// Tag is the full tag resource with aggregate counters.
type Tag struct {
	ID                         string    `json:"id"                         yaml:"id"`
	Name                       string    `json:"name"                       yaml:"name"`
	NumBookmarks               float64   `json:"numBookmarks"               yaml:"num_bookmarks"`
	NumBookmarksByAttachedType TagCounts `json:"numBookmarksByAttachedType" yaml:"num_bookmarks_by_attached_type"`
}

// BookmarkAsset references a stored binary attached to a bookmark.
type BookmarkAsset struct {
	ID        string            `json:"id"        yaml:"id"`
	AssetType BookmarkAssetType `json:"assetType" yaml:"asset_type"`
}

// Asset describes an uploaded file, as returned by the upload endpoint.
type Asset struct {
	AssetID     string  `json:"assetId"     yaml:"asset_id"`
	ContentType string  `json:"contentType" yaml:"content_type"`
	Size        float64 `json:"size"        yaml:"size"`
	FileName    string  `json:"fileName"    yaml:"file_name"`
}

// Bookmark is a saved reference to content with metadata and tags.
// Timestamps are opaque ISO-8601 strings; the client does not parse them.
type Bookmark struct {
	ID                  string            `json:"id"                            yaml:"id"`
	CreatedAt           string            `json:"createdAt"                     yaml:"created_at"`
	ModifiedAt          *string           `json:"modifiedAt"                    yaml:"modified_at"`
	Title               *string           `json:"title,omitempty"               yaml:"title,omitempty"`
	Archived            bool              `json:"archived"                      yaml:"archived"`
	Favourited          bool              `json:"favourited"                    yaml:"favourited"`
	TaggingStatus       *ProcessingStatus `json:"taggingStatus"                 yaml:"tagging_status"`
	SummarizationStatus *ProcessingStatus `json:"summarizationStatus,omitempty" yaml:"summarization_status,omitempty"`
	Note                *string           `json:"note,omitempty"                yaml:"note,omitempty"`
	Summary             *string           `json:"summary,omitempty"             yaml:"summary,omitempty"`
	Tags                []TagShort        `json:"tags"                          yaml:"tags"`
	Content             BookmarkContent   `json:"content"                       yaml:"content"`
	Assets              []BookmarkAsset   `json:"assets"                        yaml:"assets"`
}

// PaginatedBookmarks is one page of a bookmark listing. A nil NextCursor
// means the last page.
type PaginatedBookmarks struct {
	Bookmarks  []Bookmark `json:"bookmarks"  yaml:"bookmarks"`
	NextCursor *string    `json:"nextCursor" yaml:"next_cursor"`
}

// Highlight is a text selection within a bookmark. Offsets are numeric
// and not necessarily integral.
type Highlight struct {
	ID          string         `json:"id"             yaml:"id"`
	BookmarkID  string         `json:"bookmarkId"     yaml:"bookmark_id"`
	StartOffset float64        `json:"startOffset"    yaml:"start_offset"`
	EndOffset   float64        `json:"endOffset"      yaml:"end_offset"`
	Color       HighlightColor `json:"color"          yaml:"color"`
	Text        *string        `json:"text,omitempty" yaml:"text,omitempty"`
	Note        *string        `json:"note,omitempty" yaml:"note,omitempty"`
	UserID      string         `json:"userId"         yaml:"user_id"`
	CreatedAt   string         `json:"createdAt"      yaml:"created_at"`
}

// UnmarshalJSON applies the service default color when the field is
// absent.
func (h *Highlight) UnmarshalJSON(data []byte) error {
	type alias Highlight

	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	if decoded.Color == "" {
		decoded.Color = HighlightColorYellow
	}

	*h = Highlight(decoded)

	return nil
}

// PaginatedHighlights is one page of a highlight listing.
type PaginatedHighlights struct {
	Highlights []Highlight `json:"highlights" yaml:"highlights"`
	NextCursor *string     `json:"nextCursor" yaml:"next_cursor"`
}

// BookmarkList is a named collection of bookmarks, either curated by hand
// or driven by a stored search query.
type BookmarkList struct {
	ID          string   `json:"id"                    yaml:"id"`
	Name        string   `json:"name"                  yaml:"name"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	Icon        string   `json:"icon"                  yaml:"icon"`
	ParentID    *string  `json:"parentId,omitempty"    yaml:"parent_id,omitempty"`
	Type        ListType `json:"type"                  yaml:"type"`
	Query       *string  `json:"query,omitempty"       yaml:"query,omitempty"`
	Public      bool     `json:"public"                yaml:"public"`
}

// UnmarshalJSON applies the service default list type when the field is
// absent.
func (l *BookmarkList) UnmarshalJSON(data []byte) error {
	type alias BookmarkList

	var decoded alias
	if err := json.Unmarshal(data, &decoded); err != nil {
		return err
	}

	if decoded.Type == "" {
		decoded.Type = ListTypeManual
	}

	*l = BookmarkList(decoded)

	return nil
}

// TagAttachment reports the tag ids attached by a tag attach call.
type TagAttachment struct {
	Attached []string `json:"attached" yaml:"attached"`
}

// TagDetachment reports the tag ids detached by a tag detach call.
type TagDetachment struct {
	Detached []string `json:"detached" yaml:"detached"`
}
