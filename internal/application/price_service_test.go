package application

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports/mocks"
)

func TestMilkPricesUsesCatalogWithCacheBust(t *testing.T) {
	t.Parallel()

	clock := mocks.NewFakeClock(time.UnixMilli(1767225600123))
	catalog := mocks.NewMockProductCatalog(t)
	catalog.EXPECT().Products(context.Background(), "1767225600123").Return([]domain.Product{
		{ID: 1, Type: "buffalo", PricePerLiter: 85},
		{ID: 2, Type: "cow", PricePerLiter: 68},
	}, nil).Once()

	prices := NewPriceService(catalog, clock, zerolog.Nop()).MilkPrices(context.Background())
	assert.Equal(t, domain.MilkPrices{Buffalo: 85, Cow: 68}, prices)
}

func TestMilkPricesFallsBack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		products []domain.Product
		err      error
		want     domain.MilkPrices
	}{
		{name: "fetch error", err: domain.ErrUnavailable, want: domain.MilkPrices{Buffalo: 80, Cow: 70}},
		{name: "missing cow", products: []domain.Product{{Type: "buffalo", PricePerLiter: 90}}, want: domain.MilkPrices{Buffalo: 90, Cow: 70}},
		{name: "zero price", products: []domain.Product{{Type: "buffalo"}, {Type: "cow", PricePerLiter: 72}}, want: domain.MilkPrices{Buffalo: 80, Cow: 72}},
		{name: "empty", want: domain.MilkPrices{Buffalo: 80, Cow: 70}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			catalog := mocks.NewMockProductCatalog(t)
			catalog.EXPECT().Products(context.Background(), "0").Return(tt.products, tt.err).Once()

			prices := NewPriceService(catalog, mocks.NewFakeClock(time.UnixMilli(0)), zerolog.Nop()).MilkPrices(context.Background())
			assert.Equal(t, tt.want, prices)
		})
	}
}
