package dispatch

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// Negotiator derives the accepted format of a request from its headers.
type Negotiator interface {
	Negotiate(r *http.Request) (string, bool)
}

// NegotiatorFunc adapts a function to Negotiator.
type NegotiatorFunc func(r *http.Request) (string, bool)

func (f NegotiatorFunc) Negotiate(r *http.Request) (string, bool) {
	return f(r)
}

// MediaTypes maps lowercase media types to format names. As a Negotiator
// it picks the format of the highest quality Accept entry it knows.
// Wildcard entries never select a format.
type MediaTypes map[string]string

// DefaultMediaTypes is the media type table used when no negotiator is
// configured.
var DefaultMediaTypes = MediaTypes{
	"application/json": "json",
	"application/xml":  "xml",
	"text/xml":         "xml",
	"text/html":        "html",
	"text/plain":       "txt",
	"text/csv":         "csv",
}

// acceptSpec is one entry of an Accept header.
type acceptSpec struct {
	value   string
	quality float64
}

// Negotiate implements Negotiator using the Accept header.
func (m MediaTypes) Negotiate(r *http.Request) (string, bool) {
	accept := r.Header.Get("Accept")
	if accept == "" {
		return "", false
	}

	for _, spec := range parseAccept(accept) {
		if format, ok := m[spec.value]; ok {
			return format, true
		}
	}
	return "", false
}

// parseAccept returns the entries of an Accept header with a positive
// quality, best first. Equal qualities keep header order.
func parseAccept(header string) []acceptSpec {
	parts := strings.Split(header, ",")
	specs := make([]acceptSpec, 0, len(parts))

	for _, part := range parts {
		value, params, _ := strings.Cut(part, ";")
		value = strings.ToLower(strings.TrimSpace(value))
		if value == "" {
			continue
		}

		spec := acceptSpec{value: value, quality: 1.0}
		for param := range strings.SplitSeq(params, ";") {
			k, v, ok := strings.Cut(strings.TrimSpace(param), "=")
			if !ok || strings.TrimSpace(k) != "q" {
				continue
			}
			if q, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
				spec.quality = q
			}
		}

		if spec.quality > 0 {
			specs = append(specs, spec)
		}
	}

	slices.SortStableFunc(specs, func(a, b acceptSpec) int {
		switch {
		case a.quality > b.quality:
			return -1
		case a.quality < b.quality:
			return 1
		default:
			return 0
		}
	})
	return specs
}
