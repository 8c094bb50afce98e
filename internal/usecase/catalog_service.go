package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tokoclient/backend/internal/domain"
	"github.com/tokoclient/backend/internal/infrastructure/tokopedia"
)

// CatalogService answers search and lookup requests with one provider call each
type CatalogService struct {
	client domain.ProviderClient
	log    zerolog.Logger
}

// NewCatalogService creates a new catalog service with dependencies
func NewCatalogService(client domain.ProviderClient, log zerolog.Logger) *CatalogService {
	return &CatalogService{
		client: client,
		log:    log.With().Str("component", "catalog").Logger(),
	}
}

// Search runs a keyword search and normalizes the hits.
// Flow: build operation -> call provider -> map response
func (s *CatalogService) Search(ctx context.Context, keyword string) (*domain.SearchResult, error) {
	raw, err := s.client.Execute(ctx, tokopedia.SearchProductRequest(keyword), nil)
	if err != nil {
		return nil, transportError(err)
	}

	result, err := tokopedia.MapSearchResult(raw)
	if err != nil {
		s.log.Debug().Err(err).Str("keyword", keyword).Msg("search response rejected")
		return nil, fmt.Errorf("search %q: %w", keyword, err)
	}

	return result, nil
}

// Lookup fetches a single product page. A provider miss is reported as
// domain.ErrProductNotFound.
func (s *CatalogService) Lookup(ctx context.Context, seller, product string) (*domain.ProductDetail, error) {
	raw, err := s.client.Execute(ctx, tokopedia.PDPLayoutRequest(seller, product), tokopedia.PDPLayoutHeaders())
	if err != nil {
		return nil, transportError(err)
	}

	detail, err := tokopedia.MapProductDetail(raw)
	if err != nil {
		if !errors.Is(err, domain.ErrProductNotFound) {
			s.log.Debug().Err(err).Str("seller", seller).Str("product", product).Msg("lookup response rejected")
		}
		return nil, fmt.Errorf("lookup %s/%s: %w", seller, product, err)
	}

	return detail, nil
}

// transportError makes sure client failures are classified as transport errors
func transportError(err error) error {
	if errors.Is(err, domain.ErrUpstreamTransport) {
		return err
	}
	return fmt.Errorf("%w: %w", domain.ErrUpstreamTransport, err)
}
