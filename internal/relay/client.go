// Package relay forwards single requests to the core backend with the
// caller's bearer token attached. Each operation issues exactly one HTTP
// call, decodes the JSON response, and reports failures through the closed
// ErrorKind taxonomy. There is no retry and no backoff; the client timeout is
// the only safety net against a hung backend.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"hirehack/internal/session"
)

const defaultTimeout = 30 * time.Second

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *log.Logger
}

func NewClient(baseURL string, timeout time.Duration, logger *log.Logger) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(baseURL), "/"),
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// BaseURL returns the configured backend origin.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) doJSON(ctx context.Context, sc session.Context, method, path string, payload any, out any) *Error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return newError(KindUnknown, 0, "cannot encode request", err)
		}
		body = bytes.NewReader(b)
	}
	return c.do(ctx, sc, method, path, body, "application/json", out)
}

func (c *Client) doForm(ctx context.Context, sc session.Context, method, path string, fields map[string]string, out any) *Error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return newError(KindUnknown, 0, "cannot encode form", err)
		}
	}
	if err := w.Close(); err != nil {
		return newError(KindUnknown, 0, "cannot encode form", err)
	}
	return c.do(ctx, sc, method, path, &buf, w.FormDataContentType(), out)
}

func (c *Client) doFile(ctx context.Context, sc session.Context, path, fieldName, fileName string, file io.Reader, out any) *Error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile(fieldName, fileName)
	if err != nil {
		return newError(KindUnknown, 0, "cannot encode upload", err)
	}
	if _, err := io.Copy(part, file); err != nil {
		return newError(KindUnknown, 0, "cannot read upload", err)
	}
	if err := w.Close(); err != nil {
		return newError(KindUnknown, 0, "cannot encode upload", err)
	}
	return c.do(ctx, sc, http.MethodPost, path, &buf, w.FormDataContentType(), out)
}

func (c *Client) do(ctx context.Context, sc session.Context, method, path string, body io.Reader, contentType string, out any) *Error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return newError(KindUnknown, 0, "invalid request", err)
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if sc.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+sc.AccessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("relay | method=%s path=%s error=%v", method, path, err)
		return newError(KindNetwork, 0, "backend unreachable", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return newError(KindNetwork, 0, "backend response truncated", err)
	}

	if resp.StatusCode >= 400 {
		kind := kindForStatus(resp.StatusCode)
		msg := backendMessage(raw)
		if msg == "" {
			msg = http.StatusText(resp.StatusCode)
		}
		return newError(kind, resp.StatusCode, msg, nil)
	}

	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return newError(KindUpstream, 0, "unexpected response shape", err)
		}
	}
	return nil
}

func kindForStatus(status int) ErrorKind {
	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return KindUnauthorized
	case status >= 500:
		return KindUpstream
	case status >= 400:
		return KindValidation
	default:
		return KindUnknown
	}
}

// backendMessage pulls the error text out of the backend's usual failure
// shapes ("detail" first, then "message").
func backendMessage(raw []byte) string {
	var payload struct {
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		return ""
	}
	if payload.Detail != "" {
		return payload.Detail
	}
	return payload.Message
}
