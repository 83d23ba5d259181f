package sigv4

import "errors"

var (
	// ErrNoCredentials is returned when the access key or secret key is
	// empty.
	ErrNoCredentials = errors.New("sigv4: access key and secret key must not be empty")

	// ErrBadEndpoint is returned when the endpoint URL cannot be parsed
	// into a scheme and host.
	ErrBadEndpoint = errors.New("sigv4: endpoint must be an absolute URL with a host")
)
