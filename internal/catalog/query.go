package catalog

import (
	"sort"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"mini-shop-api/internal/domain"
)

// All is the sentinel category/subcategory value meaning "no constraint".
const All = "all"

// Sort keys accepted by Apply. Unknown keys behave like SortFeatured.
const (
	SortFeatured  = "featured" // preserve filtered order
	SortPriceAsc  = "price-asc"
	SortPriceDesc = "price-desc"
	SortNameAsc   = "name-asc"
	SortNameDesc  = "name-desc"
)

// Query is one filter/sort invocation over the catalog. The zero value of
// Category/Subcategory is treated like the All sentinel.
type Query struct {
	SearchTerm  string
	Category    string
	Subcategory string
	MinPrice    *int64 // nil bound is open-ended
	MaxPrice    *int64
	SortKey     string
}

// NewQuery returns a Query that matches the whole catalog in input order.
func NewQuery() Query {
	return Query{Category: All, Subcategory: All, SortKey: SortFeatured}
}

// Apply returns the ordered subset of products matching every predicate of
// q, sorted by its sort key. The result is always a fresh slice; the input
// is never mutated, and applying the same query twice yields the same
// output.
func Apply(products []domain.Product, q Query) []domain.Product {
	term := strings.ToLower(strings.TrimSpace(q.SearchTerm))
	matched := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if !matchesSearch(p.Name, term) {
			continue
		}
		if !matchesTaxon(q.Category, p.Category) {
			continue
		}
		if !matchesTaxon(q.Subcategory, p.Subcategory) {
			continue
		}
		if q.MinPrice != nil && p.Price < *q.MinPrice {
			continue
		}
		if q.MaxPrice != nil && p.Price > *q.MaxPrice {
			continue
		}
		matched = append(matched, p)
	}
	sortProducts(matched, q.SortKey)
	return matched
}

// matchesSearch expects term already trimmed and lowercased. Terms shorter
// than three runes match exactly only: substring matching on them would
// pull in most of the catalog.
func matchesSearch(name, term string) bool {
	if term == "" {
		return true
	}
	lower := strings.ToLower(name)
	if lower == term {
		return true
	}
	return utf8.RuneCountInString(term) >= 3 && strings.Contains(lower, term)
}

func matchesTaxon(want, have string) bool {
	return want == "" || want == All || strings.EqualFold(want, have)
}

// sortProducts sorts in place, stably: products tied on the sort key keep
// their relative filtered order. Name sorts compare with locale-aware
// collation rather than raw byte order.
func sortProducts(ps []domain.Product, key string) {
	switch key {
	case SortPriceAsc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price < ps[j].Price })
	case SortPriceDesc:
		sort.SliceStable(ps, func(i, j int) bool { return ps[i].Price > ps[j].Price })
	case SortNameAsc:
		// Collators buffer internally and are not safe to share across
		// goroutines; each sort builds its own.
		col := collate.New(language.English)
		sort.SliceStable(ps, func(i, j int) bool { return col.CompareString(ps[i].Name, ps[j].Name) < 0 })
	case SortNameDesc:
		col := collate.New(language.English)
		sort.SliceStable(ps, func(i, j int) bool { return col.CompareString(ps[i].Name, ps[j].Name) > 0 })
	}
}
