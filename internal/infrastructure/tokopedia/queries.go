package tokopedia

import (
	_ "embed"
	"net/url"

	"github.com/tokoclient/backend/internal/domain"
)

// Operation names understood by the provider
const (
	OperationSearchProduct = "SearchProductQueryV4"
	OperationPDPGetLayout  = "PDPGetLayoutQuery"
)

//go:embed queries/search_product.graphql
var searchProductQuery string

//go:embed queries/pdp_get_layout.graphql
var pdpGetLayoutQuery string

// SearchProductRequest builds the keyword search operation. The keyword is
// escaped into the provider's single "params" query string.
func SearchProductRequest(keyword string) domain.GraphQLRequest {
	params := url.Values{}
	params.Set("device", "desktop")
	params.Set("navsource", "home")
	params.Set("ob", "23")
	params.Set("page", "1")
	params.Set("q", keyword)
	params.Set("related", "true")
	params.Set("rows", "20")
	params.Set("safe_search", "false")
	params.Set("scheme", "https")
	params.Set("shipping", "")
	params.Set("source", "universe")
	params.Set("st", "product")
	params.Set("start", "0")
	params.Set("topads_bucket", "true")

	return domain.GraphQLRequest{
		OperationName: OperationSearchProduct,
		Variables: map[string]any{
			"params": params.Encode(),
		},
		Query: searchProductQuery,
	}
}

// PDPLayoutRequest builds the product detail page operation for a shop domain
// and product key.
func PDPLayoutRequest(shopDomain, productKey string) domain.GraphQLRequest {
	return domain.GraphQLRequest{
		OperationName: OperationPDPGetLayout,
		Variables: map[string]any{
			"shopDomain": shopDomain,
			"productKey": productKey,
			"layoutID":   "",
			"apiVersion": 1,
		},
		Query: pdpGetLayoutQuery,
	}
}

// PDPLayoutHeaders returns the extra headers the provider's edge expects for
// the product detail operation.
func PDPLayoutHeaders() map[string]string {
	return map[string]string{"X-Tkpd-Akamai": "pdpGetLayout"}
}
