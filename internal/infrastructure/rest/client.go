// Package rest implements the gateway ports against the SmartSales365 REST
// API. Calls either return the decoded response body or the upstream error
// payload unmodified; there is no retry, backoff or circuit breaking.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/smartsales365/terminal/internal/core/domain"
	"github.com/smartsales365/terminal/internal/core/ports"
)

// Client carries the base URL, the token source and the shared http.Client.
// Gateway implementations embed it.
type Client struct {
	baseURL        string
	http           *http.Client
	tokens         ports.TokenSource
	onUnauthorized func()
	log            zerolog.Logger
}

func NewClient(baseURL string, tokens ports.TokenSource, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
		tokens:  tokens,
		log:     log,
	}
}

// SetTokenSource late-binds the token source. The session service both
// supplies tokens to this client and authenticates through it, so wiring
// happens in two steps.
func (c *Client) SetTokenSource(tokens ports.TokenSource) {
	c.tokens = tokens
}

// SetUnauthorizedHook registers the callback fired whenever an authenticated
// call comes back 401. The session uses it to clear the token and role.
func (c *Client) SetUnauthorizedHook(fn func()) {
	c.onUnauthorized = fn
}

// SetHTTPClient swaps the underlying http.Client. Used by tests.
func (c *Client) SetHTTPClient(h *http.Client) {
	c.http = h
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader, contentType string, authed bool) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if authed {
		token := ""
		if c.tokens != nil {
			token = c.tokens.Token()
		}
		if token == "" {
			// Missing token is a caller error; nothing is retried.
			return nil, domain.ErrNoSession
		}
		req.Header.Set("Authorization", "Token "+token)
	}
	return req, nil
}

// doJSON sends a JSON request and decodes a JSON response into out (which
// may be nil when the body is irrelevant).
func (c *Client) doJSON(ctx context.Context, method, path string, in, out any, authed bool) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(buf)
		contentType = "application/json"
	}
	req, err := c.newRequest(ctx, method, path, body, contentType, authed)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request %s %s: %w", req.Method, req.URL.Path, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response %s: %w", req.URL.Path, err)
	}
	if resp.StatusCode >= 400 {
		return c.fail(resp.StatusCode, data)
	}
	if out == nil || len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode response %s: %w", req.URL.Path, err)
	}
	return nil
}

// fail converts an error response into an *domain.APIError, preserving the
// raw payload, and fires the unauthorized hook on 401.
func (c *Client) fail(status int, body []byte) error {
	apiErr := decodeAPIError(status, body)
	if status == http.StatusUnauthorized && c.onUnauthorized != nil {
		c.onUnauthorized()
	}
	c.log.Debug().Int("status", status).Str("message", apiErr.Message).Msg("api error")
	return apiErr
}

// decodeAPIError extracts a message and field errors from a DRF-style error
// body. It attempts a JSON decode regardless of the declared content type:
// the report endpoint returns errors under a binary content type.
func decodeAPIError(status int, body []byte) *domain.APIError {
	apiErr := &domain.APIError{StatusCode: status, Raw: append([]byte(nil), body...)}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		apiErr.Message = http.StatusText(status)
		return apiErr
	}

	for _, key := range []string{"error", "detail"} {
		var msg string
		if raw, ok := payload[key]; ok && json.Unmarshal(raw, &msg) == nil {
			apiErr.Message = msg
		}
	}

	fields := make(map[string][]string)
	for key, raw := range payload {
		if key == "error" || key == "detail" {
			continue
		}
		var list []string
		if json.Unmarshal(raw, &list) == nil {
			fields[key] = list
			continue
		}
		var single string
		if json.Unmarshal(raw, &single) == nil {
			fields[key] = []string{single}
		}
	}
	if len(fields) > 0 {
		apiErr.Fields = fields
		if apiErr.Message == "" {
			for key, msgs := range fields {
				if len(msgs) > 0 {
					apiErr.Message = key + ": " + msgs[0]
					break
				}
			}
		}
	}
	if apiErr.Message == "" {
		apiErr.Message = http.StatusText(status)
	}
	return apiErr
}

func marshalJSON(v any) (io.Reader, error) {
	buf, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(buf), nil
}

// multipartBody assembles a multipart form from plain fields and file parts.
func multipartBody(fields map[string]string, files map[string]ports.FileUpload) (*bytes.Buffer, string, error) {
	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for key, value := range fields {
		if err := w.WriteField(key, value); err != nil {
			return nil, "", err
		}
	}
	for field, file := range files {
		part, err := w.CreateFormFile(field, file.Name)
		if err != nil {
			return nil, "", err
		}
		if _, err := io.Copy(part, file.Reader); err != nil {
			return nil, "", err
		}
	}
	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return buf, w.FormDataContentType(), nil
}
