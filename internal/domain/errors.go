package domain

import "errors"

var (
	// ErrProductNotFound is returned when the provider reports that the shop or product does not exist
	ErrProductNotFound = errors.New("product not found")

	// ErrUpstreamTransport is returned when the provider cannot be reached or answers with a server error
	ErrUpstreamTransport = errors.New("upstream request failed")

	// ErrUpstreamSchema is returned when the provider body is not JSON or misses an expected field
	ErrUpstreamSchema = errors.New("unexpected upstream response")

	// ErrNumericParse is returned when a numeric-looking string field cannot be parsed
	ErrNumericParse = errors.New("invalid numeric value")
)
