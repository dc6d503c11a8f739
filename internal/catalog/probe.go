package catalog

import (
	"context"
	"log"
	"net/http"
	"sync"
	"sync/atomic"

	"mini-shop-api/internal/domain"
)

// ImageProber checks whether product image URLs are actually reachable.
// It runs once at catalog construction rather than per request, so a slow
// or flaky image host costs startup time, never request latency.
type ImageProber struct {
	client *http.Client
	logger *log.Logger
}

// NewImageProber returns a prober whose individual requests are bounded by
// the client timeout configured on it.
func NewImageProber(client *http.Client, logger *log.Logger) *ImageProber {
	return &ImageProber{client: client, logger: logger}
}

// Probe issues a HEAD request for every product's image URL concurrently
// and replaces any URL that fails, times out, or answers outside 2xx/3xx
// with fallbackURL. It returns the number of URLs replaced. Products are
// updated in place; call before the catalog is shared with handlers.
func (ip *ImageProber) Probe(ctx context.Context, products []domain.Product, fallbackURL string) int {
	var wg sync.WaitGroup
	var replaced int32
	for i := range products {
		wg.Add(1)
		go func(p *domain.Product) {
			defer wg.Done()
			if ip.alive(ctx, p.ImageURL) {
				return
			}
			ip.logger.Printf("WARN: image probe failed for %s, using fallback", p.Name)
			p.ImageURL = fallbackURL
			atomic.AddInt32(&replaced, 1)
		}(&products[i])
	}
	wg.Wait()
	return int(replaced)
}

func (ip *ImageProber) alive(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	res, err := ip.client.Do(req)
	if err != nil {
		return false
	}
	defer res.Body.Close()
	return res.StatusCode >= 200 && res.StatusCode < 400
}
