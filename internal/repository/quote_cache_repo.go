// Package repository holds the PostgreSQL persistence layer. Only the quote
// cache lives here; parsed reports and recommendations are never persisted.
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dripfolio/dripfolio/internal/models"
)

// QuoteCacheRepository is the L2 quote cache: it survives restarts, unlike
// the in-memory cache in front of it.
//
// Schema:
//
//	CREATE TABLE fact_quote_cache (
//	    symbol     TEXT PRIMARY KEY,
//	    price      DOUBLE PRECISION NOT NULL,
//	    exchange   TEXT NOT NULL,
//	    fetched_at TIMESTAMPTZ NOT NULL
//	);
type QuoteCacheRepository struct {
	pool *pgxpool.Pool
}

// NewQuoteCacheRepository creates a new QuoteCacheRepository
func NewQuoteCacheRepository(pool *pgxpool.Pool) *QuoteCacheRepository {
	return &QuoteCacheRepository{pool: pool}
}

// GetCachedQuote returns the stored quote for a symbol if it was fetched
// within maxAge, or nil when absent or stale.
func (r *QuoteCacheRepository) GetCachedQuote(ctx context.Context, symbol string, maxAge time.Duration) (*models.Quote, error) {
	query := `
		SELECT symbol, price, exchange, fetched_at
		FROM fact_quote_cache
		WHERE symbol = $1 AND fetched_at > $2
	`
	row := r.pool.QueryRow(ctx, query, symbol, time.Now().Add(-maxAge))

	var q models.Quote
	if err := row.Scan(&q.Symbol, &q.Price, &q.Exchange, &q.FetchedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query quote cache: %w", err)
	}
	return &q, nil
}

// CacheQuote upserts a quote keyed by symbol.
func (r *QuoteCacheRepository) CacheQuote(ctx context.Context, quote models.Quote) error {
	query := `
		INSERT INTO fact_quote_cache (symbol, price, exchange, fetched_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (symbol) DO UPDATE
		SET price = EXCLUDED.price, exchange = EXCLUDED.exchange, fetched_at = EXCLUDED.fetched_at
	`
	if _, err := r.pool.Exec(ctx, query, quote.Symbol, quote.Price, quote.Exchange, quote.FetchedAt); err != nil {
		return fmt.Errorf("failed to cache quote: %w", err)
	}
	return nil
}

// PurgeStaleQuotes deletes quotes older than maxAge and reports how many
// rows went away.
func (r *QuoteCacheRepository) PurgeStaleQuotes(ctx context.Context, maxAge time.Duration) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM fact_quote_cache WHERE fetched_at <= $1`, time.Now().Add(-maxAge))
	if err != nil {
		return 0, fmt.Errorf("failed to purge quote cache: %w", err)
	}
	return tag.RowsAffected(), nil
}
