// Package negotiate picks a response representation from an Accept header.
//
// Preference is purely positional: the first media type listed by the client
// that the endpoint supports wins. Quality parameters are ignored.
package negotiate

import "strings"

// Representations produced by the gateway
const (
	TextHTML        = "text/html"
	ApplicationJSON = "application/json"
	TextPlain       = "text/plain"
)

// Preferences normalizes an Accept header into an ordered list of media types.
// Parameters (anything after ';') and structured syntax suffixes (anything
// after '+') are dropped and tokens are lowercased.
func Preferences(header string) []string {
	parts := strings.Split(header, ",")
	prefs := make([]string, 0, len(parts))

	for _, part := range parts {
		token := strings.TrimSpace(part)
		if idx := strings.Index(token, ";"); idx >= 0 {
			token = token[:idx]
		}
		if idx := strings.Index(token, "+"); idx >= 0 {
			token = token[:idx]
		}
		token = strings.ToLower(strings.TrimSpace(token))
		if token == "" {
			continue
		}
		prefs = append(prefs, token)
	}

	return prefs
}

// Negotiate returns the first client preference contained in supported.
// When the header is absent or nothing overlaps, fallback is returned.
func Negotiate(header string, present bool, supported []string, fallback string) string {
	if !present {
		return fallback
	}

	for _, pref := range Preferences(header) {
		for _, s := range supported {
			if pref == s {
				return s
			}
		}
	}

	return fallback
}
