package usecase

import (
	"context"
	"log"

	"github.com/breadlens/backend/internal/domain"
)

// ProductServiceConfig holds configuration for the product service
type ProductServiceConfig struct {
	KnownBrands        []string
	EnableDebugLogging bool
}

// ProductService owns the session working set: it enriches incoming scraped
// records with derived fields and replaces the stored set wholesale.
type ProductService struct {
	store              domain.ProductStore
	knownBrands        []string
	enableDebugLogging bool
}

// NewProductService creates a new product service with dependencies
func NewProductService(store domain.ProductStore, config ProductServiceConfig) *ProductService {
	return &ProductService{
		store:              store,
		knownBrands:        config.KnownBrands,
		enableDebugLogging: config.EnableDebugLogging,
	}
}

// ReplaceAll enriches the incoming records and replaces the working set with
// them. Returns the number of records stored. An empty batch is valid and
// leaves the store empty.
func (s *ProductService) ReplaceAll(ctx context.Context, products []domain.Product) (int, error) {
	enriched := make([]domain.Product, len(products))
	for i, p := range products {
		enriched[i] = s.enrich(p)
	}

	if err := s.store.Replace(ctx, enriched); err != nil {
		return 0, err
	}

	if s.enableDebugLogging {
		log.Printf("[PRODUCTS] Replaced working set with %d records", len(enriched))
	}

	return len(enriched), nil
}

// Products returns a snapshot of the current working set
func (s *ProductService) Products(ctx context.Context) ([]domain.Product, error) {
	return s.store.Products(ctx)
}

// Count returns the size of the current working set
func (s *ProductService) Count(ctx context.Context) (int, error) {
	return s.store.Count(ctx)
}

// Clear empties the working set
func (s *ProductService) Clear(ctx context.Context) error {
	return s.store.Clear(ctx)
}

// enrich fills derived fields the scraper left empty: brand from the listing
// name, canonical weight from the raw weight, numeric price from the raw
// price text. Fields already populated by the scraper are kept as-is.
func (s *ProductService) enrich(p domain.Product) domain.Product {
	if p.Brand == "" {
		p.Brand = ExtractBrand(p.Name, s.knownBrands)
	}
	if p.WeightClean == "" {
		p.WeightClean = NormalizeWeight(p.Weight)
	}
	if p.PriceNumeric == 0 {
		p.PriceNumeric = CleanPrice(p.Price)
	}
	return p
}
