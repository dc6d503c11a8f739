package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry bundles the service's Prometheus collectors around a private
// registry so tests can construct isolated instances.
type Registry struct {
	reg *prometheus.Registry

	ProductQueries  prometheus.Counter
	CategoryQueries prometheus.Counter
	OrdersAccepted  prometheus.Counter
	OrdersRejected  prometheus.Counter
	ImageFallbacks  prometheus.Counter
}

func NewRegistry() *Registry {
	r := prometheus.NewRegistry()
	productQueries := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_product_queries_total"})
	categoryQueries := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_category_queries_total"})
	ordersAccepted := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_orders_accepted_total"})
	ordersRejected := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_orders_rejected_total"})
	imageFallbacks := prometheus.NewCounter(prometheus.CounterOpts{Name: "shop_image_fallbacks_total"})

	r.MustRegister(productQueries, categoryQueries, ordersAccepted, ordersRejected, imageFallbacks)
	return &Registry{
		reg:             r,
		ProductQueries:  productQueries,
		CategoryQueries: categoryQueries,
		OrdersAccepted:  ordersAccepted,
		OrdersRejected:  ordersRejected,
		ImageFallbacks:  imageFallbacks,
	}
}

func (r *Registry) Handler() http.Handler { return promhttp.HandlerFor(r.reg, promhttp.HandlerOpts{}) }
