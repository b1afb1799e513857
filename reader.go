package jina

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"golang.org/x/net/http/httpguts"
)

// ReaderBaseURL is the host the Reader service runs on. Point
// Config.BaseURL at it when using Client.Reader.
const ReaderBaseURL = "https://r.jina.ai"

// ReturnFormat selects the Reader extraction output.
type ReturnFormat string

const (
	ReturnFormatDefault    ReturnFormat = "default"
	ReturnFormatMarkdown   ReturnFormat = "markdown"
	ReturnFormatHTML       ReturnFormat = "html"
	ReturnFormatText       ReturnFormat = "text"
	ReturnFormatScreenshot ReturnFormat = "screenshot"
	ReturnFormatPageshot   ReturnFormat = "pageshot"
)

func (f ReturnFormat) Valid() bool {
	switch f {
	case ReturnFormatDefault, ReturnFormatMarkdown, ReturnFormatHTML,
		ReturnFormatText, ReturnFormatScreenshot, ReturnFormatPageshot:
		return true
	}
	return false
}

// ParseReturnFormat maps a case-insensitive name to a ReturnFormat.
func ParseReturnFormat(s string) (ReturnFormat, error) {
	f := ReturnFormat(strings.ToLower(s))
	if !f.Valid() {
		return "", &Error{Code: "invalid_request", Message: "invalid return format: " + s}
	}
	return f, nil
}

// ReaderRequest asks the Reader service to extract content from URL.
// Only URL travels in the JSON body; every other field that is set
// becomes one X-* request header.
type ReaderRequest struct {
	URL string

	ReturnFormat    ReturnFormat
	NoCache         *bool
	WaitForSelector string
	TargetSelector  string
	// Timeout is the page load budget in seconds, 0..65535.
	Timeout  *int
	ProxyURL string
	Locale   string
}

type ReaderResponse struct {
	Code   int64      `json:"code"`
	Status int64      `json:"status"`
	Data   ReaderData `json:"data"`
}

type ReaderData struct {
	Content     string      `json:"content"`
	Description string      `json:"description"`
	Title       string      `json:"title"`
	URL         string      `json:"url"`
	Usage       ReaderUsage `json:"usage"`
}

type ReaderUsage struct {
	Tokens int64 `json:"tokens"`
}

type readerBody struct {
	URL string `json:"url"`
}

// Reader fetches req.URL and extracts its content.
func (c *Client) Reader(ctx context.Context, req ReaderRequest) (*ReaderResponse, error) {
	if req.URL == "" {
		return nil, &Error{Code: "invalid_request", Message: "url is required"}
	}

	h := make(http.Header)
	h.Set("Accept", "application/json")

	if req.ReturnFormat != "" {
		if !req.ReturnFormat.Valid() {
			return nil, &Error{Code: "invalid_request", Message: "invalid return format: " + string(req.ReturnFormat)}
		}
		h.Set("X-Return-Format", string(req.ReturnFormat))
	}
	if req.TargetSelector != "" {
		if err := setHeader(h, "X-Target-Selector", req.TargetSelector); err != nil {
			return nil, err
		}
	}
	if req.Locale != "" {
		if err := setHeader(h, "X-Locale", req.Locale); err != nil {
			return nil, err
		}
	}
	if req.ProxyURL != "" {
		if err := setHeader(h, "X-Proxy-Url", req.ProxyURL); err != nil {
			return nil, err
		}
	}
	if req.Timeout != nil {
		if *req.Timeout < 0 || *req.Timeout > 65535 {
			return nil, &Error{Code: "invalid_request", Message: "timeout out of range: " + strconv.Itoa(*req.Timeout)}
		}
		h.Set("X-Timeout", strconv.Itoa(*req.Timeout))
	}
	if req.NoCache != nil {
		h.Set("X-No-Cache", strconv.FormatBool(*req.NoCache))
	}
	if req.WaitForSelector != "" {
		if err := setHeader(h, "X-Wait-For-Selector", req.WaitForSelector); err != nil {
			return nil, err
		}
	}

	var out ReaderResponse
	if err := c.post(ctx, "", h, readerBody{URL: req.URL}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// setHeader rejects free-form field values that are not legal header
// content, before any network I/O.
func setHeader(h http.Header, name, value string) error {
	if !httpguts.ValidHeaderFieldValue(value) {
		return &Error{Code: "invalid_request", Message: "invalid header value for " + name}
	}
	h.Set(name, value)
	return nil
}
