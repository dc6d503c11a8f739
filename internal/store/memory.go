package store

import (
	"context"
	"fmt"

	"mini-shop-api/internal/catalog"
	"mini-shop-api/internal/domain"
)

// MemoryStore implements the CategoryStorer and ProductStorer interfaces
// over the immutable in-memory catalog. Enrichment and aggregation happen
// once at construction; every request reads the same slices without
// locking since nothing mutates them afterwards.
type MemoryStore struct {
	products   []domain.Product
	categories []domain.Category
}

// NewMemoryStore builds the enriched catalog and its category tree from
// the dataset. A duplicate product name is a configuration error and fails
// construction.
func NewMemoryStore(d catalog.Dataset) (*MemoryStore, error) {
	products, err := catalog.Build(d)
	if err != nil {
		return nil, fmt.Errorf("store: building catalog: %w", err)
	}
	return &MemoryStore{
		products:   products,
		categories: catalog.Aggregate(products, d),
	}, nil
}

// NewMemoryStoreFromProducts wraps an already-built product list, e.g. one
// whose image URLs have been through the liveness prober.
func NewMemoryStoreFromProducts(products []domain.Product, d catalog.Dataset) *MemoryStore {
	return &MemoryStore{
		products:   products,
		categories: catalog.Aggregate(products, d),
	}
}

// ProductCount reports the catalog size, for health reporting.
func (s *MemoryStore) ProductCount() int { return len(s.products) }

// ListProducts runs the filter/sort engine over the catalog. The context
// parameter exists for interface parity; the computation never blocks.
func (s *MemoryStore) ListProducts(_ context.Context, q catalog.Query) ([]domain.Product, error) {
	return catalog.Apply(s.products, q), nil
}

// ListCategories returns the precomputed category tree.
func (s *MemoryStore) ListCategories(_ context.Context) ([]domain.Category, error) {
	out := make([]domain.Category, len(s.categories))
	copy(out, s.categories)
	return out, nil
}
