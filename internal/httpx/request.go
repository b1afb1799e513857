package httpx

import (
	"bytes"
	"context"
	"net/http"
)

// Do sends an HTTP request with a buffered body. It performs exactly
// one attempt; callers must close the returned response body.
func Do(ctx context.Context, client *http.Client, method, url string, body []byte, headers http.Header) (*http.Response, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header = headers.Clone()

	return client.Do(req)
}
