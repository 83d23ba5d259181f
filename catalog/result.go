package catalog

import (
	"encoding/json"
	"net/http"
)

// Result wraps the raw transport response for one executed operation. The
// client does not interpret non-success statuses; callers inspect Status
// and Body themselves.
type Result struct {
	// RequestID is a client-generated identifier for this call, for
	// caller-side correlation. It is never sent on the wire.
	RequestID string

	// Operation is the operation that produced this result.
	Operation Operation

	// Status is the HTTP status code returned by the remote service.
	Status int

	// Header holds the response headers.
	Header http.Header

	// Body is the raw response body.
	Body []byte
}

// OK reports whether the remote service returned a 2xx status.
func (r *Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

// Unmarshal decodes the response body as JSON into v.
func (r *Result) Unmarshal(v any) error {
	return json.Unmarshal(r.Body, v)
}
