package karakeep

import (
	"encoding/json"
	"fmt"
)

// BookmarkType discriminates create requests; it is the caller-facing
// subset of ContentType (no unknown).
type BookmarkType string

const (
	BookmarkTypeLink  BookmarkType = "link"
	BookmarkTypeText  BookmarkType = "text"
	BookmarkTypeAsset BookmarkType = "asset"
)

// CreateBookmarkRequest carries the fields of a bookmark creation. Type
// selects which type-specific fields are required and serialized; common
// optional fields are serialized only when set.
type CreateBookmarkRequest struct {
	Type BookmarkType

	// Common optional fields.
	Title      *string
	Archived   *bool
	Favourited *bool
	Note       *string
	Summary    *string

	// CreatedAt optionally overrides the creation timestamp (ISO-8601
	// string, passed through opaquely).
	CreatedAt *string

	// Link type.
	URL                 string
	PrecrawledArchiveID *string

	// Text type. SourceURL is shared with the asset type.
	Text      string
	SourceURL *string

	// Asset type.
	AssetType AssetContentType
	AssetID   string
	FileName  *string
}

// Validate checks the type-specific required fields. It mirrors the
// service contract and runs before any network call.
func (r *CreateBookmarkRequest) Validate() error {
	switch r.Type {
	case BookmarkTypeLink:
		if r.URL == "" {
			return ErrURLRequired
		}
	case BookmarkTypeText:
		if r.Text == "" {
			return ErrTextRequired
		}
	case BookmarkTypeAsset:
		if r.AssetType == "" {
			return ErrAssetTypeRequired
		}

		if r.AssetID == "" {
			return ErrAssetIDRequired
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBookmarkType, r.Type)
	}

	return nil
}

// MarshalJSON emits the wire body for the selected bookmark type: the
// discriminator, any provided common fields, and only the fields
// belonging to that type.
func (r CreateBookmarkRequest) MarshalJSON() ([]byte, error) {
	body := map[string]interface{}{
		"type": r.Type,
	}

	if r.Title != nil {
		body["title"] = *r.Title
	}

	if r.Archived != nil {
		body["archived"] = *r.Archived
	}

	if r.Favourited != nil {
		body["favourited"] = *r.Favourited
	}

	if r.Note != nil {
		body["note"] = *r.Note
	}

	if r.Summary != nil {
		body["summary"] = *r.Summary
	}

	if r.CreatedAt != nil {
		body["createdAt"] = *r.CreatedAt
	}

	switch r.Type {
	case BookmarkTypeLink:
		body["url"] = r.URL
		if r.PrecrawledArchiveID != nil {
			body["precrawledArchiveId"] = *r.PrecrawledArchiveID
		}
	case BookmarkTypeText:
		body["text"] = r.Text
		if r.SourceURL != nil {
			body["sourceUrl"] = *r.SourceURL
		}
	case BookmarkTypeAsset:
		body["assetType"] = r.AssetType
		body["assetId"] = r.AssetID

		if r.FileName != nil {
			body["fileName"] = *r.FileName
		}

		if r.SourceURL != nil {
			body["sourceUrl"] = *r.SourceURL
		}
	}

	return json.Marshal(body)
}

// CreateHighlightRequest carries the fields of a highlight creation.
type CreateHighlightRequest struct {
	BookmarkID  string         `json:"bookmarkId"     yaml:"bookmark_id"`
	StartOffset float64        `json:"startOffset"    yaml:"start_offset"`
	EndOffset   float64        `json:"endOffset"      yaml:"end_offset"`
	Color       HighlightColor `json:"color"          yaml:"color"`
	Text        *string        `json:"text,omitempty" yaml:"text,omitempty"`
	Note        *string        `json:"note,omitempty" yaml:"note,omitempty"`
}

// Validate checks required fields locally. A zero EndOffset with a zero
// StartOffset is rejected as an empty selection.
func (r *CreateHighlightRequest) Validate() error {
	if r.BookmarkID == "" {
		return ErrBookmarkIDRequired
	}

	if r.StartOffset == 0 && r.EndOffset == 0 {
		return ErrOffsetsRequired
	}

	return nil
}

// UpdateHighlightRequest carries the mutable fields of a highlight. Nil
// fields are left untouched by the service.
type UpdateHighlightRequest struct {
	StartOffset *float64        `json:"startOffset,omitempty" yaml:"start_offset,omitempty"`
	EndOffset   *float64        `json:"endOffset,omitempty"   yaml:"end_offset,omitempty"`
	Color       *HighlightColor `json:"color,omitempty"       yaml:"color,omitempty"`
	Text        *string         `json:"text,omitempty"        yaml:"text,omitempty"`
	Note        *string         `json:"note,omitempty"        yaml:"note,omitempty"`
}

// CreateListRequest carries the fields of a list creation.
type CreateListRequest struct {
	Name        string   `json:"name"                  yaml:"name"`
	Icon        string   `json:"icon"                  yaml:"icon"`
	Description *string  `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    *string  `json:"parentId,omitempty"    yaml:"parent_id,omitempty"`
	Type        ListType `json:"type,omitempty"        yaml:"type,omitempty"`
	Query       *string  `json:"query,omitempty"       yaml:"query,omitempty"`
	Public      *bool    `json:"public,omitempty"      yaml:"public,omitempty"`
}

// Validate checks required fields locally.
func (r *CreateListRequest) Validate() error {
	if r.Name == "" {
		return ErrNameRequired
	}

	if r.Icon == "" {
		return ErrIconRequired
	}

	return nil
}

// UpdateListRequest carries the mutable fields of a list. Nil fields are
// left untouched by the service.
type UpdateListRequest struct {
	Name        *string `json:"name,omitempty"        yaml:"name,omitempty"`
	Icon        *string `json:"icon,omitempty"        yaml:"icon,omitempty"`
	Description *string `json:"description,omitempty" yaml:"description,omitempty"`
	ParentID    *string `json:"parentId,omitempty"    yaml:"parent_id,omitempty"`
	Query       *string `json:"query,omitempty"       yaml:"query,omitempty"`
	Public      *bool   `json:"public,omitempty"      yaml:"public,omitempty"`
}
