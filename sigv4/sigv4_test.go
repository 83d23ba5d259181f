package sigv4

import (
	"net/http"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testConfig = SignConfig{
	Credentials: Credentials{AccessKey: "AKID", SecretKey: "SECRET"},
	Region:      "us-east-1",
	Time:        time.Unix(0, 0),
}

func testHeader() http.Header {
	h := http.Header{}
	h.Set("Content-Type", "application/json; charset=utf-8")
	h.Set("Content-Encoding", "amz-1.0")
	h.Set("X-Amz-Target", "com.amazon.paapi5.v1.ProductAdvertisingAPIv1.GetItems")

	return h
}

const testBody = `{"ItemIds":["B000123456"],"PartnerTag":"tag-01","PartnerType":"Associates","Marketplace":"www.amazon.com","Resources":["ItemInfo.Title"]}`

func TestSign(t *testing.T) {
	const endpoint = "https://webservices.amazon.com/paapi5/getitems"

	t.Run("known answer", func(t *testing.T) {
		signed, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), testConfig)
		require.NoError(t, err)

		assert.Equal(t, "19700101T000000Z", signed.Date)
		assert.Equal(t, "6581a5ee61bff21e822b9f496eb8942fb32cb37b88ddbf39701678b06146b6d5", signed.ContentSHA256)
		assert.Equal(t,
			"AWS4-HMAC-SHA256 Credential=AKID/19700101/us-east-1/ProductAdvertisingAPI/aws4_request, "+
				"SignedHeaders=content-encoding;content-type;host;x-amz-date;x-amz-target, "+
				"Signature=a440ba839a4fd8d14d85e678b63bfdc824c9627feec0e81e112906d45de696b3",
			signed.Authorization)
	})

	t.Run("deterministic", func(t *testing.T) {
		first, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), testConfig)
		require.NoError(t, err)

		second, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), testConfig)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("single byte change invalidates signature", func(t *testing.T) {
		original, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), testConfig)
		require.NoError(t, err)

		mutated := []byte(testBody)
		mutated[len(mutated)-2] ^= 1

		changed, err := Sign(http.MethodPost, endpoint, testHeader(), mutated, testConfig)
		require.NoError(t, err)

		assert.NotEqual(t, original.ContentSHA256, changed.ContentSHA256)
		assert.NotEqual(t, original.Authorization, changed.Authorization)
	})

	t.Run("empty body uses empty hash", func(t *testing.T) {
		signed, err := Sign(http.MethodPost, endpoint, http.Header{}, nil, testConfig)
		require.NoError(t, err)

		assert.Equal(t, EmptyBodySHA256, signed.ContentSHA256)
	})

	t.Run("empty credentials", func(t *testing.T) {
		for _, creds := range []Credentials{
			{},
			{AccessKey: "AKID"},
			{SecretKey: "SECRET"},
		} {
			cfg := testConfig
			cfg.Credentials = creds

			_, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), cfg)
			assert.ErrorIs(t, err, ErrNoCredentials)
		}
	})

	t.Run("bad endpoint", func(t *testing.T) {
		for _, endpoint := range []string{
			"",
			"/paapi5/getitems",
			"webservices.amazon.com/paapi5/getitems",
			"://bad",
		} {
			_, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), testConfig)
			assert.ErrorIs(t, err, ErrBadEndpoint, "endpoint %q", endpoint)
		}
	})

	t.Run("service defaults to ProductAdvertisingAPI", func(t *testing.T) {
		signed, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), testConfig)
		require.NoError(t, err)

		assert.Contains(t, signed.Authorization, "/ProductAdvertisingAPI/aws4_request")
	})

	t.Run("custom service in scope", func(t *testing.T) {
		cfg := testConfig
		cfg.Service = "execute-api"

		signed, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), cfg)
		require.NoError(t, err)

		assert.Contains(t, signed.Authorization, "/execute-api/aws4_request")
	})

	t.Run("zero time uses current clock", func(t *testing.T) {
		cfg := testConfig
		cfg.Time = time.Time{}

		before := time.Now().UTC().Add(-time.Second)

		signed, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), cfg)
		require.NoError(t, err)

		stamp, err := time.Parse(TimeFormat, signed.Date)
		require.NoError(t, err)

		assert.False(t, stamp.Before(before))
		assert.False(t, stamp.After(time.Now().UTC().Add(time.Second)))
	})

	t.Run("signature is lowercase hex", func(t *testing.T) {
		signed, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), testConfig)
		require.NoError(t, err)

		assert.Regexp(t, regexp.MustCompile(`Signature=[0-9a-f]{64}$`), signed.Authorization)
	})

	t.Run("secret key never appears in output", func(t *testing.T) {
		signed, err := Sign(http.MethodPost, endpoint, testHeader(), []byte(testBody), testConfig)
		require.NoError(t, err)

		assert.NotContains(t, signed.Authorization, "SECRET")
	})
}
