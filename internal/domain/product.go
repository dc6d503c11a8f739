package domain

// Product is one enriched catalog entry. Enrichment guarantees every field
// is populated; API consumers never see an empty string here.
// The json tags match the field names the web client expects.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       int64  `json:"price"` // whole currency units
	Category    string `json:"category"`
	Subcategory string `json:"subcategory"`
	ImageURL    string `json:"imageUrl"`
	Description string `json:"description"`
}

// Category is one node of the aggregated taxonomy tree, annotated with the
// number of catalog products it currently holds.
type Category struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Description   string        `json:"description"`
	ProductCount  int           `json:"productCount"`
	Available     bool          `json:"available"`
	Subcategories []Subcategory `json:"subcategories"`
}

// Subcategory is scoped to the parent category it was counted under; the
// same subcategory name under two different parents is two independent
// entries, never merged.
type Subcategory struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ProductCount int    `json:"productCount"`
	Available    bool   `json:"available"`
}

// CartLine is one product-plus-quantity entry of a submitted cart. The
// client owns the cart; the server only inspects it for acknowledgement.
type CartLine struct {
	ID       string `json:"id" validate:"required"`
	Name     string `json:"name"`
	Price    int64  `json:"price" validate:"gte=0"`
	ImageURL string `json:"imageUrl,omitempty"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}
