package repository

import (
	"context"

	"github.com/sangkips/promo-kiosk/internal/domain/entity"
)

// CatalogRepository defines the interface for reading the store catalog.
// Rows are returned in catalog order; the same product name may appear twice
// (a promotional row and a general row).
type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]*entity.Product, error)
	ListPromotions(ctx context.Context) ([]*entity.Promotion, error)
}

// CatalogSeeder is implemented by catalog stores that can be populated with rows
type CatalogSeeder interface {
	SeedProducts(ctx context.Context, products []entity.ProductRecord) error
	SeedPromotions(ctx context.Context, promotions []entity.PromotionRecord) error
}
