package catalog

import (
	"strings"

	"mini-shop-api/internal/domain"
)

// Aggregate derives the category tree with live product counts from an
// enriched product list. Categories appear in first-encountered order, as
// do each category's subcategories. Subcategory counts are scoped to the
// category they were encountered under, so a subcategory name reused
// across two categories produces two independent entries.
func Aggregate(products []domain.Product, d Dataset) []domain.Category {
	categories := make([]domain.Category, 0, len(d.CategoryDescriptions))
	catIndex := make(map[string]int)
	subIndex := make(map[string]map[string]int) // category name -> subcategory id -> position

	for _, p := range products {
		if p.Category == "" {
			continue
		}
		ci, ok := catIndex[p.Category]
		if !ok {
			desc, known := d.CategoryDescriptions[p.Category]
			if !known {
				desc = p.Category + " products"
			}
			ci = len(categories)
			catIndex[p.Category] = ci
			subIndex[p.Category] = make(map[string]int)
			categories = append(categories, domain.Category{
				ID:            strings.ToLower(p.Category),
				Name:          p.Category,
				Description:   desc,
				Subcategories: []domain.Subcategory{},
			})
		}
		categories[ci].ProductCount++

		if p.Subcategory == "" {
			continue
		}
		subID := strings.ToLower(p.Subcategory)
		si, ok := subIndex[p.Category][subID]
		if !ok {
			si = len(categories[ci].Subcategories)
			subIndex[p.Category][subID] = si
			categories[ci].Subcategories = append(categories[ci].Subcategories, domain.Subcategory{
				ID:   subID,
				Name: p.Subcategory,
			})
		}
		categories[ci].Subcategories[si].ProductCount++
	}

	for ci := range categories {
		categories[ci].Available = categories[ci].ProductCount > 0
		for si := range categories[ci].Subcategories {
			sub := &categories[ci].Subcategories[si]
			sub.Available = sub.ProductCount > 0
		}
	}
	return categories
}
