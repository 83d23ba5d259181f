package sigv4

import (
	"net/http"
	"net/url"
	"sort"
	"strings"
)

// buildCanonicalHeaders produces the canonical header block and the
// semicolon-delimited list of signed header names. Header names are
// lowercased and sorted; values are trimmed with runs of whitespace
// collapsed to a single space, multiple values joined by commas. The host
// and x-amz-date entries are always included; authorization and
// x-amzn-trace-id are always excluded.
func buildCanonicalHeaders(header http.Header, host, amzDate string) (string, string) {
	values := map[string]string{
		"host":       strings.TrimSpace(host),
		"x-amz-date": amzDate,
	}

	for name, vals := range header {
		lower := strings.ToLower(name)
		switch lower {
		case "host", "x-amz-date", "authorization", "x-amzn-trace-id":
			continue
		}

		trimmed := make([]string, 0, len(vals))
		for _, v := range vals {
			trimmed = append(trimmed, collapseSpaces(v))
		}

		values[lower] = strings.Join(trimmed, ",")
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	var block strings.Builder
	for _, name := range names {
		block.WriteString(name)
		block.WriteByte(':')
		block.WriteString(values[name])
		block.WriteByte('\n')
	}

	return block.String(), strings.Join(names, ";")
}

// canonicalPath returns the URI-encoded path component, or "/" when the
// path is empty.
func canonicalPath(u *url.URL) string {
	p := u.EscapedPath()
	if p == "" {
		return "/"
	}

	return p
}

// canonicalQuery returns the query component with keys and values
// percent-encoded, sorted by key and then by value.
func canonicalQuery(u *url.URL) string {
	query := u.Query()
	if len(query) == 0 {
		return ""
	}

	keys := make([]string, 0, len(query))
	for k := range query {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var pairs []string
	for _, k := range keys {
		vals := append([]string(nil), query[k]...)
		sort.Strings(vals)

		for _, v := range vals {
			pairs = append(pairs, escape(k)+"="+escape(v))
		}
	}

	return strings.Join(pairs, "&")
}

// escape percent-encodes a query key or value. Spaces become %20, not "+".
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// collapseSpaces trims leading and trailing whitespace and replaces every
// internal run of whitespace with a single space.
func collapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
