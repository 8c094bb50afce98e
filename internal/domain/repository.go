package domain

import (
	"context"
)

// GraphQLRequest is one operation of a batched GraphQL call
type GraphQLRequest struct {
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
	Query         string         `json:"query"`
}

// ProviderClient sends a single GraphQL operation to the provider and returns
// the raw response body. Implementations must be safe for concurrent use.
type ProviderClient interface {
	Execute(ctx context.Context, request GraphQLRequest, headers map[string]string) (string, error)
}
