package tokopedia

import (
	"fmt"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/tokoclient/backend/internal/domain"
)

// field is a located value inside a provider response. Every accessor returns
// an ErrUpstreamSchema naming the path when the value is absent or of the wrong kind.
type field struct {
	res  gjson.Result
	path string
}

// parseDocument validates raw as JSON and returns its first operation result.
// Batched calls answer with an array; a bare object is accepted as well.
func parseDocument(raw string) (field, error) {
	if !gjson.Valid(raw) {
		return field{}, fmt.Errorf("%w: response is not valid JSON", domain.ErrUpstreamSchema)
	}

	doc := gjson.Parse(raw)
	if doc.IsArray() {
		return field{res: doc.Get("0"), path: "$[0]"}, nil
	}
	return field{res: doc, path: "$"}, nil
}

func (f field) get(path string) field {
	return field{res: f.res.Get(path), path: f.path + "." + path}
}

func (f field) str() (string, error) {
	if f.res.Type != gjson.String {
		return "", f.kindError("string")
	}
	return f.res.Str, nil
}

func (f field) boolean() (bool, error) {
	if !f.res.IsBool() {
		return false, f.kindError("boolean")
	}
	return f.res.Bool(), nil
}

func (f field) uint() (uint64, error) {
	if f.res.Type != gjson.Number {
		return 0, f.kindError("number")
	}
	v, err := strconv.ParseUint(f.res.Raw, 10, 64)
	if err != nil {
		return 0, f.kindError("non-negative integer")
	}
	return v, nil
}

func (f field) array() ([]field, error) {
	if !f.res.IsArray() {
		return nil, f.kindError("array")
	}

	items := f.res.Array()
	out := make([]field, len(items))
	for i, item := range items {
		out[i] = field{res: item, path: fmt.Sprintf("%s.%d", f.path, i)}
	}
	return out, nil
}

func (f field) kindError(want string) error {
	if !f.res.Exists() {
		return fmt.Errorf("%w: missing %s at %s", domain.ErrUpstreamSchema, want, f.path)
	}
	return fmt.Errorf("%w: expected %s at %s, got %s", domain.ErrUpstreamSchema, want, f.path, f.res.Type)
}
