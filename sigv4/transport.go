package sigv4

import (
	"bytes"
	"io"
	"net/http"
)

// Transport is an http.RoundTripper that signs outgoing requests with
// Signature Version 4 before delegating to a base transport.
//
// Use NewTransport to create a Transport with a configured *http.Transport
// for proxy, TLS, and timeout settings.
type Transport struct {
	base   http.RoundTripper
	config SignConfig
}

// NewTransport creates a signing Transport that delegates to base after
// signing each request. When base is nil, a clone of http.DefaultTransport
// is used, giving an independent connection pool with default proxy, TLS,
// and timeout settings.
func NewTransport(base *http.Transport, cfg SignConfig) *Transport {
	var rt http.RoundTripper
	if base != nil {
		rt = base
	} else {
		rt = http.DefaultTransport.(*http.Transport).Clone()
	}

	return &Transport{
		base:   rt,
		config: cfg,
	}
}

// RoundTrip signs the request and then delegates to the base transport.
// The original request is cloned before signing to avoid mutation. The
// body is read once to compute the content hash; the clone receives a
// replayable copy.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())

	var body []byte
	switch {
	case req.GetBody != nil:
		rc, err := req.GetBody()
		if err != nil {
			return nil, err
		}

		body, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, err
		}
	case req.Body != nil:
		var err error
		body, err = io.ReadAll(req.Body)
		req.Body.Close()
		if err != nil {
			return nil, err
		}
	}

	if body != nil {
		clone.Body = io.NopCloser(bytes.NewReader(body))
		clone.ContentLength = int64(len(body))
	}

	signed, err := Sign(clone.Method, clone.URL.String(), clone.Header, body, t.config)
	if err != nil {
		return nil, err
	}

	clone.Header.Set("Authorization", signed.Authorization)
	clone.Header.Set("X-Amz-Content-Sha256", signed.ContentSHA256)
	clone.Header.Set("X-Amz-Date", signed.Date)

	return t.base.RoundTrip(clone)
}
