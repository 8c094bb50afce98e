package tokopedia

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tokoclient/backend/internal/domain"
	"github.com/tokoclient/backend/internal/textutil"
)

const (
	// StorefrontPrefix is stripped from a shop URL to obtain the shop domain
	StorefrontPrefix = "https://www.tokopedia.com/"

	// NotFoundMarker appears in the provider's body when a product lookup misses
	NotFoundMarker = "product: not found"

	// Component names inside a product detail page layout
	componentContent = "product_content"
	componentDetail  = "product_detail"

	// descriptionTitle marks the product_detail entry holding the description
	descriptionTitle = "Deskripsi"
)

// MapSearchResult converts a SearchProductQueryV4 response into a SearchResult.
// A single malformed product fails the whole result.
func MapSearchResult(raw string) (*domain.SearchResult, error) {
	doc, err := parseDocument(raw)
	if err != nil {
		return nil, err
	}

	data := doc.get("data.ace_search_product_v4.data")

	keyword, err := data.get("suggestion.currentKeyword").str()
	if err != nil {
		return nil, err
	}
	suggestion, err := data.get("suggestion.suggestion").str()
	if err != nil {
		return nil, err
	}

	items, err := data.get("products").array()
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(items))
	for _, item := range items {
		product, err := mapProduct(item)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}

	return &domain.SearchResult{
		Success:    true,
		Keyword:    keyword,
		Suggestion: suggestion,
		Results:    products,
	}, nil
}

func mapProduct(item field) (domain.Product, error) {
	seller, err := mapSeller(item.get("shop"))
	if err != nil {
		return domain.Product{}, err
	}

	var p domain.Product
	p.Seller = seller

	strFields := []struct {
		path string
		dst  *string
	}{
		{"name", &p.Name},
		{"url", &p.URL},
		{"price", &p.Price},
		{"imageUrl", &p.Thumbnail},
		{"categoryName", &p.Category},
	}
	for _, f := range strFields {
		if *f.dst, err = item.get(f.path).str(); err != nil {
			return domain.Product{}, err
		}
	}

	id, err := textutil.Between(p.URL, seller.ID+"/", "?")
	if err != nil {
		return domain.Product{}, fmt.Errorf("%w: product id from %s: %w", domain.ErrUpstreamSchema, item.path+".url", err)
	}
	p.ID = id

	return p, nil
}

func mapSeller(shop field) (domain.Seller, error) {
	var s domain.Seller
	var err error

	if s.Name, err = shop.get("name").str(); err != nil {
		return s, err
	}
	if s.URL, err = shop.get("url").str(); err != nil {
		return s, err
	}
	if s.City, err = shop.get("city").str(); err != nil {
		return s, err
	}
	if s.IsOfficial, err = shop.get("isOfficial").boolean(); err != nil {
		return s, err
	}
	if s.HasPowerBadge, err = shop.get("isPowerBadge").boolean(); err != nil {
		return s, err
	}

	s.ID = strings.TrimPrefix(s.URL, StorefrontPrefix)
	return s, nil
}

// MapProductDetail converts a PDPGetLayoutQuery response into a ProductDetail.
// A body carrying NotFoundMarker yields domain.ErrProductNotFound without being parsed.
func MapProductDetail(raw string) (*domain.ProductDetail, error) {
	if strings.Contains(raw, NotFoundMarker) {
		return nil, domain.ErrProductNotFound
	}

	doc, err := parseDocument(raw)
	if err != nil {
		return nil, err
	}

	layout := doc.get("data.pdpGetLayout")
	basic := layout.get("basicInfo")

	detail := &domain.ProductDetail{Success: true}
	if detail.StoreName, err = basic.get("shopName").str(); err != nil {
		return nil, err
	}
	if detail.OriginalURL, err = basic.get("url").str(); err != nil {
		return nil, err
	}
	if detail.CreatedAt, err = basic.get("createdAt").str(); err != nil {
		return nil, err
	}

	components, err := layout.get("components").array()
	if err != nil {
		return nil, err
	}

	stock := "0"
	for _, component := range components {
		name, err := component.get("name").str()
		if err != nil {
			return nil, err
		}

		switch name {
		case componentContent:
			data := component.get("data.0")
			if detail.Title, err = data.get("name").str(); err != nil {
				return nil, err
			}
			if detail.Price, err = data.get("price.value").uint(); err != nil {
				return nil, err
			}
			if stock, err = data.get("stock.value").str(); err != nil {
				return nil, err
			}
		case componentDetail:
			if detail.Description, err = findDescription(component.get("data.0.content")); err != nil {
				return nil, err
			}
		}
	}

	detail.Stock, err = strconv.ParseUint(stock, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: stock %q", domain.ErrNumericParse, stock)
	}

	return detail, nil
}

// findDescription returns the subtitle of the entry titled descriptionTitle.
// The last matching entry wins; no entry yields an empty description.
func findDescription(content field) (string, error) {
	entries, err := content.array()
	if err != nil {
		return "", err
	}

	description := ""
	for _, entry := range entries {
		title, err := entry.get("title").str()
		if err != nil {
			return "", err
		}
		if title != descriptionTitle {
			continue
		}
		if description, err = entry.get("subtitle").str(); err != nil {
			return "", err
		}
	}
	return description, nil
}
