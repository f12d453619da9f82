// Package cache provides the L1 in-memory quote cache used by the pricing
// service. Quotes expire after a TTL so a long-running server doesn't keep
// serving yesterday's prices.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/dripfolio/dripfolio/internal/models"
)

// QuoteCache is a TTL cache keyed by normalized symbol.
type QuoteCache struct {
	store *gocache.Cache
}

// NewQuoteCache creates a quote cache with the given TTL. Expired entries
// are janitored at twice the TTL.
func NewQuoteCache(ttl time.Duration) *QuoteCache {
	return &QuoteCache{
		store: gocache.New(ttl, 2*ttl),
	}
}

// Get retrieves a cached quote if still fresh.
func (c *QuoteCache) Get(symbol string) (*models.Quote, bool) {
	v, found := c.store.Get(symbol)
	if !found {
		return nil, false
	}
	quote := v.(models.Quote)
	return &quote, true
}

// Set caches a quote under its symbol with the cache's default TTL.
func (c *QuoteCache) Set(quote models.Quote) {
	c.store.SetDefault(quote.Symbol, quote)
}

// Flush removes all cached quotes.
func (c *QuoteCache) Flush() {
	c.store.Flush()
}
