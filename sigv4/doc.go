// Package sigv4 implements AWS Signature Version 4 request signing.
//
// The signature covers a canonical form of the request (method, path,
// query, a sorted subset of headers, and the SHA-256 hash of the body),
// scoped to a date, region, and service. The signing key is derived from
// the secret key through an HMAC-SHA256 chain over the scope components.
//
// # Signing a Request
//
// Use Sign to compute the headers a signed request must carry:
//
//	signed, err := sigv4.Sign(http.MethodPost, "https://webservices.amazon.com/paapi5/getitems",
//	    header, body, sigv4.SignConfig{
//	        Credentials: sigv4.Credentials{AccessKey: "AKID", SecretKey: "SECRET"},
//	        Region:      "us-east-1",
//	    })
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	req.Header.Set("Authorization", signed.Authorization)
//	req.Header.Set("X-Amz-Content-Sha256", signed.ContentSHA256)
//	req.Header.Set("X-Amz-Date", signed.Date)
//
// Sign is a pure function of its inputs: given the same request, credentials,
// and SignConfig.Time, it always produces the same signature. The timestamp
// embedded in the credential scope and the returned Date header come from a
// single clock read, so the two can never disagree.
//
// # Client Transport
//
// NewTransport creates an http.RoundTripper that signs every outgoing
// request. Pass an *http.Transport to configure proxy, TLS, and timeout
// settings, or nil for defaults:
//
//	client := &http.Client{
//	    Transport: sigv4.NewTransport(nil, sigv4.SignConfig{
//	        Credentials: creds,
//	        Region:      "us-east-1",
//	    }),
//	}
package sigv4
