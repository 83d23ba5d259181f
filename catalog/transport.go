package catalog

import (
	"bytes"
	"context"
	"io"
	"net/http"
)

// Response is the raw transport response: status, headers, and body, with
// no interpretation applied.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Transport performs the HTTP POST for one operation call. The client
// issues exactly one Post per call and surfaces its error unmodified, so
// timeout and TLS behavior belong entirely to the implementation.
type Transport interface {
	Post(ctx context.Context, url string, header http.Header, body []byte) (*Response, error)
}

// HTTPTransport is the default Transport, backed by net/http.
type HTTPTransport struct {
	// Client is the HTTP client to use. When nil, http.DefaultClient is
	// used.
	Client *http.Client
}

// Post issues the request and reads the full response body.
func (t *HTTPTransport) Post(ctx context.Context, url string, header http.Header, body []byte) (*Response, error) {
	client := t.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header = header.Clone()

	// net/http takes the Host header from Request.Host, not the header
	// map.
	if host := header.Get("Host"); host != "" {
		req.Host = host
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	return &Response{
		Status: resp.StatusCode,
		Header: resp.Header,
		Body:   data,
	}, nil
}
