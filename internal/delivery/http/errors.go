package http

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/tokoclient/backend/internal/domain"
)

// ErrorKind is the user-visible category of a failed request
type ErrorKind string

const (
	KindUpstreamNotFound  ErrorKind = "upstream_not_found"
	KindUpstreamTransport ErrorKind = "upstream_transport"
	KindUpstreamSchema    ErrorKind = "upstream_schema"
	KindNumericParse      ErrorKind = "numeric_parse"
	KindInternal          ErrorKind = "internal"
)

// ReasonProductNotFound is the business not-found reason returned by lookup
const ReasonProductNotFound = "Product not found"

// Classification is the response an error is rendered as
type Classification struct {
	Kind   ErrorKind
	Status int
	Reason string
}

// Fault reports whether the classification is a server-side failure
func (c Classification) Fault() bool {
	return c.Status >= http.StatusInternalServerError
}

// Classify maps a usecase error onto a kind, status code and reason.
// A provider miss is a successful response carrying success=false, since the
// route exists even though the product does not.
func Classify(err error) Classification {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return Classification{Kind: KindUpstreamNotFound, Status: http.StatusOK, Reason: ReasonProductNotFound}
	case errors.Is(err, domain.ErrNumericParse):
		return Classification{Kind: KindNumericParse, Status: http.StatusBadGateway, Reason: err.Error()}
	case errors.Is(err, domain.ErrUpstreamSchema):
		return Classification{Kind: KindUpstreamSchema, Status: http.StatusBadGateway, Reason: err.Error()}
	case errors.Is(err, domain.ErrUpstreamTransport):
		if isTimeout(err) {
			return Classification{Kind: KindUpstreamTransport, Status: http.StatusGatewayTimeout, Reason: "Upstream request timed out"}
		}
		return Classification{Kind: KindUpstreamTransport, Status: http.StatusBadGateway, Reason: "Upstream request failed"}
	default:
		return Classification{Kind: KindInternal, Status: http.StatusInternalServerError, Reason: "Internal server error"}
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
