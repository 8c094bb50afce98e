// Package router maps a request method and path onto one of the gateway's
// handlers. Paths are split on '/' with empty segments dropped, so
// "/search//shoes/" and "/search/shoes" are the same route.
package router

import (
	"net/http"
	"net/url"
	"strings"
)

// Kind identifies the handler a request is dispatched to
type Kind int

const (
	KindNotFound Kind = iota
	KindHead
	KindInfo
	KindSearch
	KindLookup
)

func (k Kind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindInfo:
		return "info"
	case KindSearch:
		return "search"
	case KindLookup:
		return "lookup"
	default:
		return "not_found"
	}
}

// Match is the routing decision for a single request
type Match struct {
	Kind     Kind
	Method   string
	Segments []string
	// Args holds the handler arguments: [query] for search, [seller, product] for lookup
	Args []string
}

// Route resolves method and an escaped path to a Match. Segments are split
// before unescaping so an encoded '/' stays inside its segment; Args are unescaped.
func Route(method, path string) Match {
	if method == http.MethodHead {
		return Match{Kind: KindHead, Method: method}
	}

	if method == http.MethodGet && path == "/" {
		return Match{Kind: KindInfo, Method: method}
	}

	segments := Segments(path)
	match := Match{Kind: KindNotFound, Method: method, Segments: segments}

	if len(segments) < 2 {
		return match
	}

	switch {
	case method == http.MethodGet && len(segments) == 2 && segments[0] == "search":
		match.Kind = KindSearch
		match.Args = []string{unescape(segments[1])}
	case method == http.MethodGet && len(segments) == 3 && segments[0] == "lookup":
		match.Kind = KindLookup
		match.Args = []string{unescape(segments[1]), unescape(segments[2])}
	}

	return match
}

// Segments splits a path on '/' and drops empty segments
func Segments(path string) []string {
	parts := strings.Split(path, "/")
	segments := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			segments = append(segments, p)
		}
	}
	return segments
}

func unescape(segment string) string {
	v, err := url.PathUnescape(segment)
	if err != nil {
		return segment
	}
	return v
}
