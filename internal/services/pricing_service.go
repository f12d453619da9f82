package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/dripfolio/dripfolio/internal/cache"
	"github.com/dripfolio/dripfolio/internal/models"
	"github.com/dripfolio/dripfolio/internal/repository"
	"github.com/dripfolio/dripfolio/internal/yahoo"
)

// venue is one exchange tried during quote lookup, identified by the Yahoo
// symbol suffix.
type venue struct {
	name   string
	suffix string
}

// Lookup order: NSE first, BSE as fallback. Most Indian symbols trade on
// both; NSE quotes are usually the more liquid ones.
var venues = []venue{
	{name: "NSE", suffix: ".NS"},
	{name: "BSE", suffix: ".BO"},
}

// PricingService resolves batches of normalized symbols to market prices.
// Lookup is layered: in-memory TTL cache, then the optional persistent
// cache, then Yahoo Finance venue by venue. The calculator needs one
// complete symbol->price map, so callers invoke GetPrices once per batch.
type PricingService struct {
	memCache    *cache.QuoteCache
	quoteRepo   *repository.QuoteCacheRepository // nil disables the persistent layer
	client      *yahoo.Client
	ttl         time.Duration
	concurrency int
}

// NewPricingService creates a new PricingService. quoteRepo may be nil when
// no database is configured.
func NewPricingService(memCache *cache.QuoteCache, quoteRepo *repository.QuoteCacheRepository, client *yahoo.Client, ttl time.Duration, concurrency int) *PricingService {
	if concurrency < 1 {
		concurrency = 1
	}
	return &PricingService{
		memCache:    memCache,
		quoteRepo:   quoteRepo,
		client:      client,
		ttl:         ttl,
		concurrency: concurrency,
	}
}

// BatchResult is the outcome of one batch price lookup.
type BatchResult struct {
	Prices    map[string]float64
	Exchanges map[string]string
	Meta      models.PriceFetchMeta
	Warnings  []models.Warning
}

// GetPrices resolves prices for a batch of symbols. Symbols that cannot be
// priced on any venue are absent from the result maps and reported as
// warnings; a failed venue lookup never fails the batch.
func (s *PricingService) GetPrices(ctx context.Context, symbols []string) *BatchResult {
	result := &BatchResult{
		Prices:    make(map[string]float64),
		Exchanges: make(map[string]string),
	}

	var toFetch []string
	seen := make(map[string]bool)
	for _, symbol := range symbols {
		if symbol == "" || seen[symbol] {
			continue
		}
		seen[symbol] = true
		result.Meta.Requested++

		if quote := s.cachedQuote(ctx, symbol); quote != nil {
			result.Prices[symbol] = quote.Price
			result.Exchanges[symbol] = quote.Exchange
			result.Meta.FromCache++
			continue
		}
		toFetch = append(toFetch, symbol)
	}

	result.Meta.Fetched = len(toFetch)

	missing := toFetch
	for _, v := range venues {
		if len(missing) == 0 {
			break
		}
		found := s.fetchVenue(ctx, missing, v)

		var still []string
		for _, symbol := range missing {
			quote, ok := found[symbol]
			if !ok {
				still = append(still, symbol)
				continue
			}
			result.Prices[symbol] = quote.Price
			result.Exchanges[symbol] = quote.Exchange
			s.storeQuote(ctx, quote)
		}
		missing = still
	}

	for _, symbol := range missing {
		result.Warnings = append(result.Warnings, models.Warning{
			Code:    models.WarnQuoteNotFound,
			Message: fmt.Sprintf("no quote found for %s on any venue", symbol),
		})
	}

	result.Meta.Found = len(result.Prices)
	return result
}

// cachedQuote checks the memory cache, then the persistent cache. A
// persistent hit is promoted into the memory cache.
func (s *PricingService) cachedQuote(ctx context.Context, symbol string) *models.Quote {
	if quote, found := s.memCache.Get(symbol); found {
		return quote
	}
	if s.quoteRepo == nil {
		return nil
	}

	quote, err := s.quoteRepo.GetCachedQuote(ctx, symbol, s.ttl)
	if err != nil {
		log.Warnf("persistent quote cache lookup failed for %s: %v", symbol, err)
		return nil
	}
	if quote == nil {
		return nil
	}
	s.memCache.Set(*quote)
	return quote
}

// storeQuote writes a freshly fetched quote to both cache layers. Cache
// write failures are logged, not propagated: the quote is already in hand.
func (s *PricingService) storeQuote(ctx context.Context, quote models.Quote) {
	s.memCache.Set(quote)
	if s.quoteRepo == nil {
		return
	}
	if err := s.quoteRepo.CacheQuote(ctx, quote); err != nil {
		log.Warnf("failed to persist quote for %s: %v", quote.Symbol, err)
	}
}

// fetchVenue looks up all symbols on one venue in parallel, bounded by the
// configured concurrency. Missing symbols are simply absent from the
// returned map; transport failures are logged and treated the same way.
func (s *PricingService) fetchVenue(ctx context.Context, symbols []string, v venue) map[string]models.Quote {
	var mu sync.Mutex
	found := make(map[string]models.Quote)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for _, symbol := range symbols {
		symbol := symbol
		g.Go(func() error {
			quote, err := s.client.GetQuote(ctx, symbol+v.suffix)
			if err != nil {
				if !errors.Is(err, yahoo.ErrQuoteNotFound) {
					log.Warnf("quote fetch failed for %s on %s: %v", symbol, v.name, err)
				}
				return nil
			}

			mu.Lock()
			found[symbol] = models.Quote{
				Symbol:    symbol,
				Price:     quote.Price,
				Exchange:  v.name,
				FetchedAt: time.Now(),
			}
			mu.Unlock()
			return nil
		})
	}

	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()
	return found
}
