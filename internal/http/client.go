// Package http implements the single low-level request executor every
// resource client goes through: it attaches the Bearer API key,
// serializes bodies, strips absent query parameters, and classifies
// responses into success payloads or the typed errors of pkg/karakeep.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"
	"time"

	"github.com/ahgraber/karakeep-client/pkg/karakeep"
)

const defaultUserAgent = "karakeep-client/1.0"

// Logger is the logging interface used by the transport.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Upload describes a file part of a multipart request.
type Upload struct {
	// Field is the multipart form field name.
	Field string

	// FileName is the name reported for the part.
	FileName string

	// ContentType is the MIME type reported for the part.
	ContentType string

	// Reader supplies the part's content.
	Reader io.Reader
}

// Request describes a single API request.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Upload  *Upload
	Headers map[string]string

	// Raw requests accept any content type and return the body verbatim.
	Raw bool
}

// Response is the outcome of a successful request. Body holds the raw
// bytes; callers decode them against their expected resource shape.
type Response struct {
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// Client executes requests against the service. It holds only read-only
// configuration and is safe for concurrent use.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	userAgent  string
	logger     Logger
	debug      bool
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for diagnostics.
func WithLogger(logger Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithTimeout bounds each request. It is ignored when WithHTTPClient is
// also given.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a transport rooted at baseURL, authenticating with
// apiKey.
func NewClient(baseURL, apiKey string, opts ...Option) *Client {
	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: &http.Client{Timeout: karakeep.DefaultTimeout},
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Do executes the request and classifies the response. 401 surfaces as
// *karakeep.AuthenticationError, other non-2xx as *karakeep.APIError
// with the decoded error detail when the body parses as JSON, and
// network failures as *karakeep.APIError wrapping the cause. Nothing is
// retried.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	body, contentType, err := c.encodeBody(req)
	if err != nil {
		return nil, err
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	c.setHeaders(httpReq, req, contentType)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &karakeep.APIError{Method: req.Method, URL: fullURL, Err: err}
	}

	defer func() { _ = httpResp.Body.Close() }()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &karakeep.APIError{Method: req.Method, URL: fullURL, Err: err}
	}

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Response", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
			"status": httpResp.StatusCode,
			"bytes":  len(respBody),
		})
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       respBody,
	}

	switch {
	case httpResp.StatusCode == http.StatusUnauthorized:
		return resp, &karakeep.AuthenticationError{APIError: karakeep.APIError{
			StatusCode: httpResp.StatusCode,
			Method:     req.Method,
			URL:        fullURL,
		}}
	case httpResp.StatusCode == http.StatusNoContent:
		resp.Body = nil

		return resp, nil
	case httpResp.StatusCode < 200 || httpResp.StatusCode >= 300:
		return resp, &karakeep.APIError{
			StatusCode: httpResp.StatusCode,
			Method:     req.Method,
			URL:        fullURL,
			Detail:     errorDetail(respBody),
		}
	}

	return resp, nil
}

// encodeBody serializes the request body: multipart when an Upload is
// present, JSON otherwise. It returns the content type to send, "" when
// the multipart writer supplies its own.
func (c *Client) encodeBody(req *Request) (io.Reader, string, error) {
	if req.Upload != nil {
		var buf bytes.Buffer

		writer := multipart.NewWriter(&buf)

		part, err := writer.CreatePart(uploadPartHeaders(req.Upload))
		if err != nil {
			return nil, "", fmt.Errorf("creating multipart part: %w", err)
		}

		if _, err := io.Copy(part, req.Upload.Reader); err != nil {
			return nil, "", fmt.Errorf("writing multipart part: %w", err)
		}

		if err := writer.Close(); err != nil {
			return nil, "", fmt.Errorf("closing multipart writer: %w", err)
		}

		return &buf, writer.FormDataContentType(), nil
	}

	if req.Body == nil {
		return nil, "application/json", nil
	}

	encoded, err := json.Marshal(req.Body)
	if err != nil {
		return nil, "", fmt.Errorf("marshaling request body: %w", err)
	}

	return bytes.NewReader(encoded), "application/json", nil
}

// setHeaders applies the default header set, then merges caller headers
// over it.
func (c *Client) setHeaders(httpReq *http.Request, req *Request, contentType string) {
	httpReq.Header.Set("Content-Type", contentType)
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if req.Raw {
		httpReq.Header.Set("Accept", "*/*")
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}
}

// uploadPartHeaders builds the MIME headers for a file part. A part
// content type is required so the server can classify the asset.
func uploadPartHeaders(upload *Upload) textproto.MIMEHeader {
	headers := textproto.MIMEHeader{}
	headers.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`,
		upload.Field, upload.FileName))
	headers.Set("Content-Type", upload.ContentType)

	return headers
}

// errorDetail renders an error body: the compacted JSON when it parses,
// the raw text otherwise.
func errorDetail(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var decoded interface{}
	if err := json.Unmarshal(body, &decoded); err == nil {
		if compact, err := json.Marshal(decoded); err == nil {
			return string(compact)
		}
	}

	return strings.TrimSpace(string(body))
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Query: query})
}

// GetRaw issues a GET request accepting any content type; the body is
// returned verbatim.
func (c *Client) GetRaw(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodGet, Path: path, Raw: true})
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Body: body})
}

// PostMultipart issues a POST request with a multipart body.
func (c *Client) PostMultipart(ctx context.Context, path string, upload *Upload) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPost, Path: path, Upload: upload})
}

// Put issues a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPut, Path: path, Body: body})
}

// Patch issues a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodPatch, Path: path, Body: body})
}

// Delete issues a DELETE request, optionally with a JSON body (the tag
// detach endpoint requires one).
func (c *Client) Delete(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: http.MethodDelete, Path: path, Body: body})
}
