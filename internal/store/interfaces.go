package store

import (
	"context"

	"mini-shop-api/internal/catalog"
	"mini-shop-api/internal/domain"
)

// ProductStorer defines read access to the product catalog.
type ProductStorer interface {
	// ListProducts returns the products matching q in query order.
	ListProducts(ctx context.Context, q catalog.Query) ([]domain.Product, error)
}

// CategoryStorer defines read access to the aggregated category tree.
type CategoryStorer interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}
