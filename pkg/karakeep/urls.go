package karakeep

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"golang.org/x/net/idna"
)

// urlPattern is a permissive syntactic check applied before parsing:
// http/https/ftp/ftps scheme, optional userinfo, a dot-separated host of
// valid labels ending in a letters-only TLD, and an optional path. It
// matches a prefix, so trailing ports or paths beyond the pattern do not
// reject the input. Bare scheme-only strings and dotless hosts fail.
var urlPattern = regexp.MustCompile(`^(?i:(?:http|ftp)s?)://` +
	`(?:\S+(?::\S*)?@)?` +
	`(?:[\p{L}\p{N}](?:[\p{L}\p{N}-]{0,61}[\p{L}\p{N}])?\.)+` +
	`\p{L}{2,}\.?` +
	`(?:[/?#]\S*)?`)

// defaultPorts maps schemes to the port elided during normalization.
var defaultPorts = map[string]string{
	"http":  "80",
	"https": "443",
	"ftp":   "21",
	"ftps":  "990",
}

// ValidateURL checks s syntactically and returns its canonical form:
// lowercased scheme and host, IDNA-ASCII host, default port stripped,
// percent-encoding re-rendered, and a "/" path added to bare hosts. The
// canonical form is what the exact-match lookup compares.
func ValidateURL(s string) (string, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", ErrEmptyURL
	}

	if !urlPattern.MatchString(trimmed) {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, trimmed)
	}

	parsed, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidURL, trimmed)
	}

	scheme := strings.ToLower(parsed.Scheme)

	host := strings.ToLower(parsed.Hostname())
	if ascii, idnaErr := idna.Lookup.ToASCII(host); idnaErr == nil {
		host = ascii
	}

	if port := parsed.Port(); port != "" && port != defaultPorts[scheme] {
		host = host + ":" + port
	}

	path := parsed.Path
	if path == "" {
		path = "/"
	}

	canonical := url.URL{
		Scheme:   scheme,
		User:     parsed.User,
		Host:     host,
		Path:     path,
		RawQuery: parsed.RawQuery,
		Fragment: parsed.Fragment,
	}

	return canonical.String(), nil
}

// URLsEqual compares two already-normalized URLs, tolerating exactly a
// single trailing-slash difference between them.
func URLsEqual(a, b string) bool {
	if a == b {
		return true
	}

	return a+"/" == b || a == b+"/"
}
