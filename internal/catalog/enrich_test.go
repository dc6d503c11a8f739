package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_AllFieldsPopulated(t *testing.T) {
	products, err := Build(DefaultDataset())
	require.NoError(t, err)
	require.Len(t, products, 9)

	for _, p := range products {
		assert.NotEmpty(t, p.ID, "product %s", p.Name)
		assert.NotEmpty(t, p.Name)
		assert.Positive(t, p.Price, "product %s", p.Name)
		assert.NotEmpty(t, p.Category, "product %s", p.Name)
		assert.NotEmpty(t, p.Subcategory, "product %s", p.Name)
		assert.NotEmpty(t, p.ImageURL, "product %s", p.Name)
		assert.NotEmpty(t, p.Description, "product %s", p.Name)
	}
}

func TestBuild_IDsDeterministicAndUnique(t *testing.T) {
	products, err := Build(DefaultDataset())
	require.NoError(t, err)

	seen := make(map[string]struct{})
	for _, p := range products {
		assert.Equal(t, ProductID(p.Name), p.ID)
		_, dup := seen[p.ID]
		assert.False(t, dup, "duplicate id %s", p.ID)
		seen[p.ID] = struct{}{}
	}
}

func TestProductID_CollapsesWhitespaceRuns(t *testing.T) {
	assert.Equal(t, "prod_laptop", ProductID("Laptop"))
	assert.Equal(t, "prod_smart_watch", ProductID("Smart Watch"))
	assert.Equal(t, "prod_smart_watch", ProductID("Smart   Watch"))
}

func TestEnrich_DefaultsForUnmappedName(t *testing.T) {
	d := DefaultDataset()
	p := d.Enrich(RawProduct{Name: "Gizmo Pro", Price: 999})

	assert.Equal(t, "prod_gizmo_pro", p.ID)
	assert.Equal(t, DefaultCategory, p.Category)
	assert.Equal(t, DefaultSubcategory, p.Subcategory)
	assert.Equal(t, d.PlaceholderURL, p.ImageURL)
	assert.Equal(t, "A high-quality Gizmo Pro", p.Description)
}

func TestEnrich_DefaultsApplyIndependently(t *testing.T) {
	d := Dataset{
		ProductCategories: map[string]string{"Widget": "Tools"},
		PlaceholderURL:    "https://example.com/placeholder.png",
	}
	p := d.Enrich(RawProduct{Name: "Widget", Price: 100})

	// Only the category table knows the name; everything else defaults.
	assert.Equal(t, "Tools", p.Category)
	assert.Equal(t, DefaultSubcategory, p.Subcategory)
	assert.Equal(t, d.PlaceholderURL, p.ImageURL)
	assert.Equal(t, "A high-quality Widget", p.Description)
}

func TestBuild_DuplicateNameRejected(t *testing.T) {
	d := Dataset{
		Products: []RawProduct{
			{Name: "Laptop", Price: 1},
			{Name: "laptop", Price: 2}, // same slug after lowercasing
		},
	}
	_, err := Build(d)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate product id")
}
