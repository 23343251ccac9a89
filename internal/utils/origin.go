package utils

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/idna"

	"github.com/quantmind-br/mcpcheck-go/internal/domain"
)

// NormalizeOrigin converts a free-form user string into a canonical
// origin (scheme://host[:port]). The input may carry surrounding
// whitespace, omit a scheme, or include a path/query, all of which are
// handled or discarded. Returns domain.ErrInvalidOrigin when the input
// cannot be parsed into an origin.
func NormalizeOrigin(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return "", fmt.Errorf("%w: empty input", domain.ErrInvalidOrigin)
	}

	lower := strings.ToLower(s)
	if !strings.HasPrefix(lower, "http://") && !strings.HasPrefix(lower, "https://") {
		s = "https://" + s
	}

	u, err := url.Parse(s)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrInvalidOrigin, err)
	}

	host := strings.ToLower(u.Hostname())
	if host == "" {
		return "", fmt.Errorf("%w: missing host", domain.ErrInvalidOrigin)
	}

	// Internationalized hostnames go on the wire in punycode form.
	// ASCII hosts (including IP literals) are left untouched.
	if !isASCII(host) {
		host, err = idna.Lookup.ToASCII(host)
		if err != nil {
			return "", fmt.Errorf("%w: %v", domain.ErrInvalidOrigin, err)
		}
	}

	// IPv6 literals need brackets when rebuilt into a URL
	if strings.Contains(host, ":") {
		host = "[" + host + "]"
	}

	if port := u.Port(); port != "" && !isDefaultPort(u.Scheme, port) {
		host = host + ":" + port
	}

	return u.Scheme + "://" + host, nil
}

func isDefaultPort(scheme, port string) bool {
	return (scheme == "http" && port == "80") ||
		(scheme == "https" && port == "443")
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
