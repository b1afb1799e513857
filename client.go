package jina

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/bitop-dev/jina/internal/httpx"
)

// BaseURL is the default endpoint for the embeddings and rerank APIs.
const BaseURL = "https://api.jina.ai"

// EnvAPIKey is the environment variable consulted when Config.APIKey
// is empty.
const EnvAPIKey = "JINA_API_KEY"

type Config struct {
	// APIKey authenticates every request. When empty, the JINA_API_KEY
	// environment variable is used instead.
	APIKey string

	// BaseURL overrides the vendor endpoint, e.g. to point at the
	// Reader host or a test server. Defaults to BaseURL.
	BaseURL string

	// HTTPClient sends the requests. Defaults to http.DefaultClient.
	// Request-level timeouts belong here or on the caller's context;
	// the client sets none of its own.
	HTTPClient *http.Client
}

// Client is a typed binding for the Jina embeddings, rerank and
// Reader endpoints. It holds no mutable state after New and may be
// used from multiple goroutines.
type Client struct {
	cfg Config
}

// New builds a Client. A missing API key (both Config.APIKey and the
// JINA_API_KEY environment variable empty) fails here, not on first
// call.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv(EnvAPIKey)
	}
	if cfg.APIKey == "" {
		return nil, &Error{Code: "config_error", Message: "API key is required: set Config.APIKey or " + EnvAPIKey}
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = BaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	return &Client{cfg: cfg}, nil
}

func (c *Client) Config() Config { return c.cfg }

func (c *Client) defaultHeaders() http.Header {
	h := make(http.Header)
	h.Set("Authorization", "Bearer "+c.cfg.APIKey)
	h.Set("Content-Type", "application/json")
	return h
}

// post serializes in, sends it to base URL + path with the default
// headers plus extra, and decodes a 2xx body into out. A non-2xx
// status becomes an *Error with code "http_error"; the response body
// is attached as Payload when it is valid JSON. A 2xx body that does
// not decode into out is a hard "decode_error".
func (c *Client) post(ctx context.Context, path string, extra http.Header, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return &Error{Code: "request_error", Message: err.Error(), Cause: err}
	}

	u, err := endpointURL(c.cfg.BaseURL, path)
	if err != nil {
		return &Error{Code: "request_error", Message: err.Error(), Cause: err}
	}

	h := c.defaultHeaders()
	for k, vs := range extra {
		for _, v := range vs {
			h.Add(k, v)
		}
	}

	resp, err := httpx.Do(ctx, c.cfg.HTTPClient, http.MethodPost, u, body, h)
	if err != nil {
		return &Error{Code: classifyNetworkErr(err), Message: err.Error(), Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
		e := &Error{
			Code:    "http_error",
			Status:  resp.StatusCode,
			Message: fmt.Sprintf("http status %d", resp.StatusCode),
		}
		if json.Valid(b) {
			e.Payload = json.RawMessage(b)
		} else if s := strings.TrimSpace(string(b)); s != "" {
			e.Message = s
		}
		return e
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return &Error{Code: "read_error", Message: err.Error(), Cause: err}
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return &Error{Code: "decode_error", Message: err.Error(), Cause: err}
	}
	return nil
}

func endpointURL(base, path string) (string, error) {
	u, err := url.Parse(strings.TrimRight(base, "/") + path)
	if err != nil {
		return "", err
	}
	return u.String(), nil
}
