package karakeep

import (
	"errors"
	"fmt"
)

// Configuration errors, surfaced at construction time.
var (
	ErrConfigRequired  = errors.New("config is required")
	ErrAPIKeyRequired  = errors.New("API key must be provided or set in KARAKEEP_API_KEY")
	ErrBaseURLRequired = errors.New("base URL must be provided or set in KARAKEEP_BASEURL")
)

// Argument validation errors, surfaced locally before any network call.
var (
	ErrLimitExceeded       = errors.New("maximum limit is 100")
	ErrQueryRequired       = errors.New("search query is required")
	ErrURLRequired         = errors.New("url is required when bookmark type is link")
	ErrTextRequired        = errors.New("text is required when bookmark type is text")
	ErrAssetTypeRequired   = errors.New("asset type is required when bookmark type is asset")
	ErrAssetIDRequired     = errors.New("asset id is required when bookmark type is asset")
	ErrInvalidAssetID      = errors.New("asset id appears to be invalid")
	ErrNoTagsProvided      = errors.New("at least one of tag ids or tag names must be provided")
	ErrBlankTag            = errors.New("tags must be non-empty strings")
	ErrEmptyUpdate         = errors.New("update must contain at least one field")
	ErrNameRequired        = errors.New("name is required")
	ErrIconRequired        = errors.New("icon is required")
	ErrBookmarkIDRequired  = errors.New("bookmark id is required")
	ErrOffsetsRequired     = errors.New("start and end offsets are required")
	ErrUnknownBookmarkType = errors.New("unknown bookmark type")
)

// ErrUnknownEnumValue is wrapped by enum types when a wire value falls
// outside their closed set.
var ErrUnknownEnumValue = errors.New("value outside allowed set")

// URL validation errors.
var (
	ErrEmptyURL   = errors.New("URL cannot be empty")
	ErrInvalidURL = errors.New("URL does not match expected pattern")
)

// ErrNoMoreItems is returned by PageIterator.Next once iteration is
// exhausted.
var ErrNoMoreItems = errors.New("no more items")

// APIError represents a failed request: any non-2xx response other than
// 401, or a network-level failure (DNS, connect, timeout). For response
// errors StatusCode is set and Detail carries the decoded error body when
// the service returned one. For network failures StatusCode is zero and
// Err wraps the underlying cause.
type APIError struct {
	StatusCode int
	Method     string
	URL        string
	Detail     string
	Err        error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("request failed for %s %s: %v", e.Method, e.URL, e.Err)
	}

	if e.Detail != "" {
		return fmt.Sprintf("HTTP %d error for %s %s: %s", e.StatusCode, e.Method, e.URL, e.Detail)
	}

	return fmt.Sprintf("HTTP %d error for %s %s", e.StatusCode, e.Method, e.URL)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// AuthenticationError is the 401 case of APIError. It unwraps to its
// embedded APIError so errors.As with either type matches.
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication failed for %s %s - check API key", e.Method, e.URL)
}

func (e *AuthenticationError) Unwrap() error {
	return &e.APIError
}

// SchemaError indicates a response body that does not match the expected
// resource shape. The original decoding error is chained for diagnostics.
type SchemaError struct {
	Entity string
	Err    error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("response does not match %s schema: %v", e.Entity, e.Err)
}

func (e *SchemaError) Unwrap() error {
	return e.Err
}

// IsAuthentication reports whether err is (or wraps) an
// AuthenticationError.
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError

	return errors.As(err, &authErr)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == 404
	}

	return false
}

// IsSchema reports whether err is (or wraps) a SchemaError.
func IsSchema(err error) bool {
	var schemaErr *SchemaError

	return errors.As(err, &schemaErr)
}
