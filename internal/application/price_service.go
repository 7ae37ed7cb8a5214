package application

import (
	"context"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

type PriceService struct {
	catalog ports.ProductCatalog
	clock   ports.Clock
	log     zerolog.Logger
}

func NewPriceService(catalog ports.ProductCatalog, clock ports.Clock, logger zerolog.Logger) *PriceService {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &PriceService{
		catalog: catalog,
		clock:   clock,
		log:     logger.With().Str("service", "prices").Logger(),
	}
}

// MilkPrices returns the current per-liter prices. It never fails: any error
// yields the default price list.
func (s *PriceService) MilkPrices(ctx context.Context) domain.MilkPrices {
	cacheBust := strconv.FormatInt(s.clock.Now().UnixMilli(), 10)

	products, err := s.catalog.Products(ctx, cacheBust)
	if err != nil {
		s.log.Warn().Err(err).Msg("price fetch failed, using defaults")
		return domain.DefaultMilkPrices()
	}

	prices := domain.PricesFromProducts(products)
	s.log.Debug().Float64("buffalo", prices.Buffalo).Float64("cow", prices.Cow).Msg("prices loaded")
	return prices
}
