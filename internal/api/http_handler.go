package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"mini-shop-api/internal/catalog"
	"mini-shop-api/internal/domain"
	"mini-shop-api/internal/metrics"
	"mini-shop-api/internal/store"
)

// HTTPHandler holds dependencies for HTTP handlers.
type HTTPHandler struct {
	productStore  store.ProductStorer
	categoryStore store.CategoryStorer
	metrics       *metrics.Registry
	validate      *validator.Validate
}

// NewHTTPHandler creates a new HTTPHandler with dependencies.
func NewHTTPHandler(ps store.ProductStorer, cs store.CategoryStorer, m *metrics.Registry) *HTTPHandler {
	return &HTTPHandler{
		productStore:  ps,
		categoryStore: cs,
		metrics:       m,
		validate:      validator.New(),
	}
}

// --- Helpers ---

// ErrorResponse defines the structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, ErrorResponse{Error: message})
}

func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			log.Printf("ERROR: Failed to encode JSON response: %v", err)
			http.Error(w, `{"error": "Internal server error during JSON encoding"}`, http.StatusInternalServerError)
		}
	}
}

// --- Product Handlers ---

// ListProducts serves the catalog. Without query parameters it returns
// every product in catalog order; with them it runs the filter/sort
// engine server-side using the same contract the client applies locally.
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := parseProductQuery(r.URL.Query())

	products, err := h.productStore.ListProducts(r.Context(), q)
	if err != nil {
		log.Printf("ERROR: ListProducts store operation failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch products")
		return
	}
	if products == nil { // Ensure empty list instead of null
		products = []domain.Product{}
	}

	h.metrics.ProductQueries.Inc()
	respondWithJSON(w, http.StatusOK, products)
}

// parseProductQuery maps URL query parameters onto a catalog query.
// Malformed price bounds are treated as open-ended and unknown sort keys
// fall back to featured order; bad filter input must never reject the
// request or a product.
func parseProductQuery(vals url.Values) catalog.Query {
	q := catalog.NewQuery()
	q.SearchTerm = vals.Get("search")
	if c := vals.Get("category"); c != "" {
		q.Category = c
	}
	if sc := vals.Get("subcategory"); sc != "" {
		q.Subcategory = sc
	}
	if v := vals.Get("min_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.MinPrice = &n
		}
	}
	if v := vals.Get("max_price"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			q.MaxPrice = &n
		}
	}
	if s := vals.Get("sort"); s != "" {
		q.SortKey = s
	}
	return q
}

// --- Category Handler ---

func (h *HTTPHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryStore.ListCategories(r.Context())
	if err != nil {
		log.Printf("ERROR: ListCategories store operation failed: %v", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	if categories == nil {
		categories = []domain.Category{}
	}

	h.metrics.CategoryQueries.Inc()
	respondWithJSON(w, http.StatusOK, categories)
}

// --- Checkout Handler ---

// CheckoutInput defines the expected checkout payload. The cart is kept
// raw so a non-array value can be rejected with a cart-specific message
// instead of a generic decode error.
type CheckoutInput struct {
	Cart json.RawMessage `json:"cart"`
}

// CheckoutResponse acknowledges an accepted order.
type CheckoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID string `json:"orderId"`
}

var jsonNull = []byte("null")

// Checkout validates the submitted cart and fabricates an order id. There
// is no inventory, payment, or persistence behind it; uniqueness of the
// id across processes is not guaranteed and does not need to be.
func (h *HTTPHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var input CheckoutInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondWithError(w, http.StatusBadRequest, "Invalid request payload: "+err.Error())
		return
	}
	defer r.Body.Close()

	var lines []domain.CartLine
	if len(input.Cart) == 0 || bytes.Equal(input.Cart, jsonNull) || json.Unmarshal(input.Cart, &lines) != nil {
		h.metrics.OrdersRejected.Inc()
		respondWithError(w, http.StatusBadRequest, "Invalid cart data")
		return
	}
	for i, line := range lines {
		if err := h.validate.Struct(line); err != nil {
			h.metrics.OrdersRejected.Inc()
			respondWithError(w, http.StatusBadRequest, fmt.Sprintf("Invalid cart item %d: %v", i, err))
			return
		}
	}

	orderID := "ORD-" + uuid.NewString()
	log.Printf("INFO: order %s accepted with %d line(s)", orderID, len(lines))

	h.metrics.OrdersAccepted.Inc()
	respondWithJSON(w, http.StatusOK, CheckoutResponse{
		Success: true,
		Message: "Order placed successfully!",
		OrderID: orderID,
	})
}

// --- Route Registration ---

// RegisterRoutes sets up the HTTP routes for the service.
func (h *HTTPHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/products", h.ListProducts)     // GET /api/products
		r.Get("/categories", h.ListCategories) // GET /api/categories
		r.Post("/checkout", h.Checkout)        // POST /api/checkout
	})
}
