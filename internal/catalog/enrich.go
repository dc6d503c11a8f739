package catalog

import (
	"fmt"
	"regexp"
	"strings"

	"mini-shop-api/internal/domain"
)

// Defaults applied when a product name has no entry in the lookup tables.
const (
	DefaultCategory    = "Uncategorized"
	DefaultSubcategory = "General"
)

var whitespaceRuns = regexp.MustCompile(`\s+`)

// ProductID derives the stable identifier for a product name: the
// lowercased name with whitespace runs collapsed to underscores, prefixed
// with "prod_". Two distinct names must not slug to the same id; Build
// treats that as a configuration error.
func ProductID(name string) string {
	return "prod_" + whitespaceRuns.ReplaceAllString(strings.ToLower(name), "_")
}

// Enrich derives the full product record for one raw entry. Each attribute
// is defaulted independently, so a name missing from one table still picks
// up its mapped values from the others. Pure function over the dataset's
// lookup tables.
func (d Dataset) Enrich(raw RawProduct) domain.Product {
	p := domain.Product{
		ID:          ProductID(raw.Name),
		Name:        raw.Name,
		Price:       raw.Price,
		Category:    DefaultCategory,
		Subcategory: DefaultSubcategory,
		ImageURL:    d.PlaceholderURL,
		Description: "A high-quality " + raw.Name,
	}
	if c, ok := d.ProductCategories[raw.Name]; ok {
		p.Category = c
	}
	if sc, ok := d.ProductSubcategories[raw.Name]; ok {
		p.Subcategory = sc
	}
	if img, ok := d.ProductImages[raw.Name]; ok {
		p.ImageURL = img
	}
	if desc, ok := d.ProductDescriptions[raw.Name]; ok {
		p.Description = desc
	}
	return p
}

// Build enriches the dataset's product list in input order. It fails on
// duplicate names: the derived ids would collide, and serving two products
// under one id corrupts the client's cart keying.
func Build(d Dataset) ([]domain.Product, error) {
	products := make([]domain.Product, 0, len(d.Products))
	seen := make(map[string]struct{}, len(d.Products))
	for _, raw := range d.Products {
		p := d.Enrich(raw)
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q for name %q", p.ID, raw.Name)
		}
		seen[p.ID] = struct{}{}
		products = append(products, p)
	}
	return products, nil
}
