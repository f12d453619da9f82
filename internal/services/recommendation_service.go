package services

import (
	"context"

	"github.com/dripfolio/dripfolio/internal/dividend"
	"github.com/dripfolio/dripfolio/internal/models"
)

// RecommendationService wraps the pure calculator with price resolution:
// the calculator wants one finished symbol->price map, so the service
// fetches the whole batch up front when the caller didn't supply prices.
type RecommendationService struct {
	pricingSvc *PricingService
}

// NewRecommendationService creates a new RecommendationService
func NewRecommendationService(pricingSvc *PricingService) *RecommendationService {
	return &RecommendationService{pricingSvc: pricingSvc}
}

// Recommend computes the buy list for aggregated dividends. When prices is
// nil the pricing service resolves every symbol in one batch; a caller-
// supplied price map is used as-is and triggers no lookups.
func (s *RecommendationService) Recommend(ctx context.Context, aggregated map[string]models.AggregatedDividend, prices map[string]float64) *models.RecommendResponse {
	var exchanges map[string]string
	var warnings []models.Warning

	if prices == nil {
		symbols := make([]string, 0, len(aggregated))
		for symbol := range aggregated {
			symbols = append(symbols, symbol)
		}
		batch := s.pricingSvc.GetPrices(ctx, symbols)
		prices = batch.Prices
		exchanges = batch.Exchanges
		warnings = batch.Warnings
	}

	summary := dividend.Calculate(aggregated, prices)
	return &models.RecommendResponse{
		Summary:   summary,
		Excluded:  dividend.ExcludedSymbols(aggregated, summary),
		Exchanges: exchanges,
		Warnings:  warnings,
	}
}
