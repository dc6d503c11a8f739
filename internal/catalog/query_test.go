package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mini-shop-api/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }

func queryFixture() []domain.Product {
	return []domain.Product{
		{ID: "prod_camera", Name: "Camera", Price: 2500, Category: "Electronics", Subcategory: "Photography"},
		{ID: "prod_laptop", Name: "Laptop", Price: 8000, Category: "Electronics", Subcategory: "Computers"},
		{ID: "prod_shoes", Name: "Shoes", Price: 500, Category: "Fashion", Subcategory: "Footwear"},
	}
}

func names(ps []domain.Product) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Name
	}
	return out
}

func TestApply_EmptyQueryReturnsAllInOrder(t *testing.T) {
	products := queryFixture()
	got := Apply(products, NewQuery())
	assert.Equal(t, []string{"Camera", "Laptop", "Shoes"}, names(got))
}

func TestApply_ShortTermMatchesExactOnly(t *testing.T) {
	products := queryFixture()

	q := NewQuery()
	q.SearchTerm = "ca"
	assert.Empty(t, Apply(products, q), `two-rune term "ca" must not substring-match Camera`)

	// A product literally named like the short term still matches.
	withExact := append(queryFixture(), domain.Product{ID: "prod_ca", Name: "Ca", Price: 1})
	got := Apply(withExact, q)
	require.Len(t, got, 1)
	assert.Equal(t, "Ca", got[0].Name)
}

func TestApply_ThreeRuneTermSubstringMatches(t *testing.T) {
	q := NewQuery()
	q.SearchTerm = "cam"
	got := Apply(queryFixture(), q)
	require.Len(t, got, 1)
	assert.Equal(t, "Camera", got[0].Name)
}

func TestApply_SearchTermTrimmedAndCaseInsensitive(t *testing.T) {
	q := NewQuery()
	q.SearchTerm = "  LAPTOP  "
	got := Apply(queryFixture(), q)
	require.Len(t, got, 1)
	assert.Equal(t, "Laptop", got[0].Name)
}

func TestApply_CategoryCaseInsensitive(t *testing.T) {
	q := NewQuery()
	q.Category = "electronics"
	got := Apply(queryFixture(), q)
	assert.Equal(t, []string{"Camera", "Laptop"}, names(got))
}

func TestApply_SubcategoryFilter(t *testing.T) {
	q := NewQuery()
	q.Subcategory = "Footwear"
	got := Apply(queryFixture(), q)
	assert.Equal(t, []string{"Shoes"}, names(got))
}

func TestApply_ZeroValueTaxonsMatchEverything(t *testing.T) {
	got := Apply(queryFixture(), Query{})
	assert.Len(t, got, 3)
}

func TestApply_PriceBand(t *testing.T) {
	// Prices in the fixture are 2500, 8000, 500.
	q := NewQuery()
	q.MinPrice = int64Ptr(1000)
	q.MaxPrice = int64Ptr(5000)
	got := Apply(queryFixture(), q)
	require.Len(t, got, 1)
	assert.Equal(t, int64(2500), got[0].Price)
}

func TestApply_OpenEndedBounds(t *testing.T) {
	q := NewQuery()
	q.MinPrice = int64Ptr(1000)
	assert.Equal(t, []string{"Camera", "Laptop"}, names(Apply(queryFixture(), q)))

	q = NewQuery()
	q.MaxPrice = int64Ptr(1000)
	assert.Equal(t, []string{"Shoes"}, names(Apply(queryFixture(), q)))
}

func TestApply_PredicatesCompose(t *testing.T) {
	q := NewQuery()
	q.SearchTerm = "cam"
	q.Category = "Fashion"
	assert.Empty(t, Apply(queryFixture(), q), "all predicates must hold")
}

func TestApply_SortPrice(t *testing.T) {
	q := NewQuery()
	q.SortKey = SortPriceAsc
	assert.Equal(t, []string{"Shoes", "Camera", "Laptop"}, names(Apply(queryFixture(), q)))

	q.SortKey = SortPriceDesc
	assert.Equal(t, []string{"Laptop", "Camera", "Shoes"}, names(Apply(queryFixture(), q)))
}

func TestApply_SortName(t *testing.T) {
	q := NewQuery()
	q.SortKey = SortNameAsc
	assert.Equal(t, []string{"Camera", "Laptop", "Shoes"}, names(Apply(queryFixture(), q)))

	q.SortKey = SortNameDesc
	assert.Equal(t, []string{"Shoes", "Laptop", "Camera"}, names(Apply(queryFixture(), q)))
}

func TestApply_SortStabilityOnTies(t *testing.T) {
	products := []domain.Product{
		{ID: "a", Name: "Alpha", Price: 100},
		{ID: "b", Name: "Beta", Price: 100},
		{ID: "c", Name: "Gamma", Price: 100},
	}
	q := NewQuery()
	q.SortKey = SortPriceAsc
	got := Apply(products, q)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(got))

	q.SortKey = SortPriceDesc
	got = Apply(products, q)
	assert.Equal(t, []string{"Alpha", "Beta", "Gamma"}, names(got))
}

func TestApply_UnknownSortKeyKeepsFilteredOrder(t *testing.T) {
	q := NewQuery()
	q.SortKey = "relevance"
	assert.Equal(t, []string{"Camera", "Laptop", "Shoes"}, names(Apply(queryFixture(), q)))
}

func TestApply_Idempotent(t *testing.T) {
	products := queryFixture()
	q := NewQuery()
	q.SearchTerm = "a"
	q.Category = "Electronics"
	q.SortKey = SortPriceDesc

	first := Apply(products, q)
	second := Apply(products, q)
	assert.Equal(t, first, second)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	products := queryFixture()
	q := NewQuery()
	q.SortKey = SortPriceAsc
	Apply(products, q)
	assert.Equal(t, []string{"Camera", "Laptop", "Shoes"}, names(products))
}
