package dispatch

import (
	"net"
	"path"
	"strings"

	"golang.org/x/net/idna"
)

// cleanPath returns the canonical path for p, eliminating . and ..
// elements. A trailing slash is kept.
func cleanPath(p string) string {
	if p == "" {
		return "/"
	}
	if p[0] != '/' {
		p = "/" + p
	}
	np := path.Clean(p)
	// path.Clean removes trailing slash except for root;
	// put the trailing slash back if necessary.
	if p[len(p)-1] == '/' && np != "/" {
		np += "/"
	}
	return np
}

// normalizeHost strips the port from a Host header value and converts
// internationalized names to their lowercase ASCII form. Hosts that are
// not valid IDNA names are only lowercased.
func normalizeHost(host string) string {
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")

	if ascii, err := idna.Lookup.ToASCII(host); err == nil {
		host = ascii
	}
	return strings.ToLower(host)
}
