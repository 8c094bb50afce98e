// Package jsonutil centralises JSON encoding so every response and upstream
// payload goes through the same sonic configuration.
package jsonutil

import (
	"github.com/bytedance/sonic"
)

// api matches encoding/json output (sorted map keys, validated strings) except
// that '<', '>' and '&' are written as-is rather than \u-escaped.
var api = sonic.Config{
	SortMapKeys:      true,
	CompactMarshaler: true,
	CopyString:       true,
	ValidateString:   true,
}.Froze()

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}
