package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tokoclient/backend/internal/domain"
)

type timeoutError struct{}

func (timeoutError) Error() string   { return "i/o timeout" }
func (timeoutError) Timeout() bool   { return true }
func (timeoutError) Temporary() bool { return true }

func TestClassify(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantKind   ErrorKind
		wantStatus int
		wantReason string
	}{
		{
			name:       "product not found",
			err:        fmt.Errorf("lookup a/b: %w", domain.ErrProductNotFound),
			wantKind:   KindUpstreamNotFound,
			wantStatus: http.StatusOK,
			wantReason: "Product not found",
		},
		{
			name:       "schema error keeps its detail",
			err:        fmt.Errorf("%w: missing string at $[0].data.pdpGetLayout.basicInfo.shopName", domain.ErrUpstreamSchema),
			wantKind:   KindUpstreamSchema,
			wantStatus: http.StatusBadGateway,
			wantReason: "unexpected upstream response: missing string at $[0].data.pdpGetLayout.basicInfo.shopName",
		},
		{
			name:       "numeric parse",
			err:        fmt.Errorf("%w: stock %q", domain.ErrNumericParse, "many"),
			wantKind:   KindNumericParse,
			wantStatus: http.StatusBadGateway,
			wantReason: `invalid numeric value: stock "many"`,
		},
		{
			name:       "transport failure",
			err:        fmt.Errorf("%w: status 503", domain.ErrUpstreamTransport),
			wantKind:   KindUpstreamTransport,
			wantStatus: http.StatusBadGateway,
			wantReason: "Upstream request failed",
		},
		{
			name:       "transport deadline",
			err:        fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, context.DeadlineExceeded),
			wantKind:   KindUpstreamTransport,
			wantStatus: http.StatusGatewayTimeout,
			wantReason: "Upstream request timed out",
		},
		{
			name: "transport client timeout",
			err: fmt.Errorf("%w: %w", domain.ErrUpstreamTransport,
				&url.Error{Op: "Post", URL: "http://upstream", Err: timeoutError{}}),
			wantKind:   KindUpstreamTransport,
			wantStatus: http.StatusGatewayTimeout,
			wantReason: "Upstream request timed out",
		},
		{
			name:       "anything else",
			err:        errors.New("template missing"),
			wantKind:   KindInternal,
			wantStatus: http.StatusInternalServerError,
			wantReason: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.err)

			assert.Equal(t, tt.wantKind, got.Kind)
			assert.Equal(t, tt.wantStatus, got.Status)
			assert.Equal(t, tt.wantReason, got.Reason)
		})
	}
}

func TestClassificationFault(t *testing.T) {
	assert.False(t, Classify(domain.ErrProductNotFound).Fault())
	assert.False(t, Classify(fmt.Errorf("lookup a/b: %w", domain.ErrProductNotFound)).Fault())
	assert.True(t, Classify(domain.ErrUpstreamSchema).Fault())
	assert.True(t, Classify(errors.New("x")).Fault())
}
