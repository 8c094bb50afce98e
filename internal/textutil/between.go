// Package textutil holds small string helpers used when normalizing provider data.
package textutil

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMarkerNotFound is returned when one of the markers does not occur in the input
	ErrMarkerNotFound = errors.New("marker not found")

	// ErrEmptyResult is returned when both markers exist but nothing lies between them
	ErrEmptyResult = errors.New("empty value between markers")
)

// Between returns the text after the first occurrence of start and before the
// first occurrence of end that follows it.
func Between(s, start, end string) (string, error) {
	_, rest, ok := strings.Cut(s, start)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, start)
	}

	value, _, ok := strings.Cut(rest, end)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrMarkerNotFound, end)
	}

	if value == "" {
		return "", ErrEmptyResult
	}

	return value, nil
}
