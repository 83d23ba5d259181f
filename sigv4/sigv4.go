package sigv4

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// SigningAlgorithm is the identifier that prefixes the Authorization
	// header value.
	SigningAlgorithm = "AWS4-HMAC-SHA256"

	// TimeFormat is the timestamp layout for the X-Amz-Date header and the
	// string to sign.
	TimeFormat = "20060102T150405Z"

	// shortTimeFormat is the date-only layout used in the credential scope.
	shortTimeFormat = "20060102"

	// scopeTerminator is the fixed final component of the credential scope.
	scopeTerminator = "aws4_request"

	// EmptyBodySHA256 is the hex-encoded SHA-256 hash of an empty body.
	EmptyBodySHA256 = "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
)

// Credentials identifies the signing principal. The secret key never
// appears in any output of this package.
type Credentials struct {
	AccessKey string
	SecretKey string
}

func (c Credentials) valid() bool {
	return c.AccessKey != "" && c.SecretKey != ""
}

// SignConfig configures signature computation.
type SignConfig struct {
	// Credentials identifies the signing principal. Required.
	Credentials Credentials

	// Region is the region component of the credential scope. Required.
	Region string

	// Service is the service component of the credential scope.
	// Defaults to "ProductAdvertisingAPI".
	Service string

	// Time is the clock reading embedded in the signature and returned as
	// the Date header. When zero, time.Now() is used.
	Time time.Time
}

// SignedHeaders holds the header values a signed request must carry.
// They are valid only for the exact body bytes passed to Sign; any
// re-serialization of the body invalidates them.
type SignedHeaders struct {
	// Authorization is the Authorization header value.
	Authorization string

	// ContentSHA256 is the X-Amz-Content-Sha256 header value, the
	// hex-encoded SHA-256 hash of the body.
	ContentSHA256 string

	// Date is the X-Amz-Date header value, the same timestamp that is
	// embedded in the signature.
	Date string
}

// Sign computes the Signature Version 4 headers for a request. The header
// argument lists the headers to cover; host and x-amz-date are always
// covered and need not be present. Authorization and x-amzn-trace-id are
// never covered.
func Sign(method, endpoint string, header http.Header, body []byte, cfg SignConfig) (SignedHeaders, error) {
	if !cfg.Credentials.valid() {
		return SignedHeaders{}, ErrNoCredentials
	}

	u, err := url.Parse(endpoint)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return SignedHeaders{}, fmt.Errorf("%w: %q", ErrBadEndpoint, endpoint)
	}

	service := cfg.Service
	if service == "" {
		service = "ProductAdvertisingAPI"
	}

	t := cfg.Time
	if t.IsZero() {
		t = time.Now()
	}
	t = t.UTC()

	amzDate := t.Format(TimeFormat)
	shortDate := t.Format(shortTimeFormat)

	payloadHash := hashHex(body)

	canonicalHeaders, signedNames := buildCanonicalHeaders(header, u.Host, amzDate)

	canonical := strings.Join([]string{
		strings.ToUpper(method),
		canonicalPath(u),
		canonicalQuery(u),
		canonicalHeaders,
		signedNames,
		payloadHash,
	}, "\n")

	scope := strings.Join([]string{shortDate, cfg.Region, service, scopeTerminator}, "/")

	stringToSign := strings.Join([]string{
		SigningAlgorithm,
		amzDate,
		scope,
		hashHex([]byte(canonical)),
	}, "\n")

	key := deriveKey(cfg.Credentials.SecretKey, shortDate, cfg.Region, service)
	signature := hex.EncodeToString(hmacSHA256(key, []byte(stringToSign)))

	authorization := fmt.Sprintf("%s Credential=%s/%s, SignedHeaders=%s, Signature=%s",
		SigningAlgorithm, cfg.Credentials.AccessKey, scope, signedNames, signature)

	return SignedHeaders{
		Authorization: authorization,
		ContentSHA256: payloadHash,
		Date:          amzDate,
	}, nil
}

func hashHex(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
