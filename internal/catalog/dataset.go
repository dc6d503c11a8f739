package catalog

// RawProduct is a catalog entry before enrichment: just a display name and
// a price in whole currency units.
type RawProduct struct {
	Name  string
	Price int64
}

// Dataset is the static configuration the catalog is built from: the raw
// product list plus the name-keyed lookup tables consulted during
// enrichment, and the category descriptions consulted during aggregation.
// It is constructed once and injected into the components that need it;
// nothing mutates it after process start.
type Dataset struct {
	Products []RawProduct

	// Lookup tables keyed by product name.
	ProductCategories    map[string]string
	ProductSubcategories map[string]string
	ProductImages        map[string]string
	ProductDescriptions  map[string]string

	// Category descriptions keyed by category name.
	CategoryDescriptions map[string]string

	// PlaceholderURL substitutes for unmapped or dead image URLs.
	PlaceholderURL string
}

// DefaultDataset returns the canonical Mini Shop catalog: nine products
// across the Electronics and Fashion categories.
func DefaultDataset() Dataset {
	return Dataset{
		Products: []RawProduct{
			{Name: "Laptop", Price: 60000},
			{Name: "Phone", Price: 20000},
			{Name: "Headphones", Price: 8000},
			{Name: "Shoes", Price: 2500},
			{Name: "Watch", Price: 4000},
			{Name: "Backpack", Price: 500},
			{Name: "Sunglasses", Price: 2000},
			{Name: "Camera", Price: 35000},
			{Name: "Tablet", Price: 25000},
		},
		ProductCategories: map[string]string{
			"Laptop":     "Electronics",
			"Phone":      "Electronics",
			"Headphones": "Electronics",
			"Tablet":     "Electronics",
			"Camera":     "Electronics",

			"Watch":      "Fashion",
			"Shoes":      "Fashion",
			"Sunglasses": "Fashion",
			"Backpack":   "Fashion",
		},
		ProductSubcategories: map[string]string{
			"Laptop":     "Computers",
			"Phone":      "Mobile",
			"Headphones": "Audio",
			"Tablet":     "Computers",
			"Camera":     "Photography",
			"Watch":      "Watches",
			"Shoes":      "Footwear",
			"Sunglasses": "Accessories",
			"Backpack":   "Bags",
		},
		ProductImages: map[string]string{
			"Laptop":     "https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=600&h=600&fit=crop&q=80",
			"Phone":      "https://images.unsplash.com/photo-1511707171634-5f897ff02aa9?w=600&h=600&fit=crop&q=80",
			"Headphones": "https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=600&h=600&fit=crop&q=80",
			"Shoes":      "https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=600&h=600&fit=crop&q=80",
			"Watch":      "https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=600&h=600&fit=crop&q=80",
			"Camera":     "https://images.unsplash.com/photo-1502920917128-1aa500764cbd?w=600&h=600&fit=crop&q=80",
			"Tablet":     "https://images.unsplash.com/photo-1542751110-97427bbecf20?w=600&h=600&fit=crop&q=80",
			"Backpack":   "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=600&h=600&fit=crop&q=80",
			"Sunglasses": "https://images.unsplash.com/photo-1577803645773-f96470509666?w=600&h=600&fit=crop&q=80",
		},
		ProductDescriptions: map[string]string{
			"Laptop":     "Powerful laptop with high-performance processor and long battery life. Perfect for work and entertainment on the go.",
			"Phone":      "Latest smartphone with advanced camera system, stunning display, and all-day battery life. Stay connected in style.",
			"Headphones": "Premium noise-cancelling headphones with crystal clear sound quality and comfortable over-ear design.",
			"Shoes":      "Comfortable and stylish shoes designed for all-day wear. Perfect for both casual outings and active lifestyles.",
			"Watch":      "Elegant timepiece with modern design, water resistance, and multiple smart features to keep you on schedule.",
			"Backpack":   "Durable backpack with multiple compartments, padded laptop sleeve, and ergonomic design for maximum comfort.",
			"Sunglasses": "UV-protected sunglasses with polarized lenses to reduce glare and protect your eyes in style.",
			"Camera":     "High-resolution camera with advanced features for professional photography and videography.",
			"Tablet":     "Portable tablet with high-definition display, powerful performance, and all-day battery life.",
		},
		CategoryDescriptions: map[string]string{
			"Electronics": "Gadgets and electronic devices",
			"Fashion":     "Clothing and accessories",
		},
		PlaceholderURL: "https://via.placeholder.com/300",
	}
}
