package domain

import (
	"fmt"
	"strings"
)

const (
	MilkTypeBuffalo = "buffalo"
	MilkTypeCow     = "cow"

	DefaultBuffaloPrice = 80.0
	DefaultCowPrice     = 70.0
)

type TimeSlot string

const (
	TimeSlotMorning TimeSlot = "morning"
	TimeSlotEvening TimeSlot = "evening"
)

func ParseTimeSlot(raw string) (TimeSlot, error) {
	slot := TimeSlot(strings.ToLower(strings.TrimSpace(raw)))
	switch slot {
	case TimeSlotMorning, TimeSlotEvening:
		return slot, nil
	default:
		return "", fmt.Errorf("unsupported time slot %q", raw)
	}
}

type Product struct {
	ID            int     `json:"id"`
	Name          string  `json:"name"`
	Type          string  `json:"type"`
	PricePerLiter float64 `json:"price_per_liter"`
	Unit          string  `json:"unit,omitempty"`
	IsActive      bool    `json:"is_active"`
}

// SlotStock is the stock of one product for one delivery slot.
type SlotStock struct {
	TotalStock     float64 `json:"total_stock"`
	BookedStock    float64 `json:"booked_stock"`
	AvailableStock float64 `json:"available_stock"`
	Revenue        float64 `json:"revenue"`
}

type StockSummary struct {
	ProductID   int       `json:"product_id"`
	ProductName string    `json:"product_name"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Morning     SlotStock `json:"morning"`
	Evening     SlotStock `json:"evening"`
}

func (s StockSummary) Slot(slot TimeSlot) SlotStock {
	if slot == TimeSlotEvening {
		return s.Evening
	}
	return s.Morning
}

type AnalyticsSummary struct {
	TotalStock     float64        `json:"total_stock"`
	TotalBooked    float64        `json:"total_booked"`
	TotalAvailable float64        `json:"total_available"`
	DailyRevenue   float64        `json:"daily_revenue"`
	Products       []StockSummary `json:"products"`
}

type StockAdjustment struct {
	ProductID int      `json:"product_id"`
	TimeSlot  TimeSlot `json:"time_slot"`
	Quantity  float64  `json:"quantity"`
	Reason    string   `json:"reason"`
}

const (
	ReasonManualAdjustment        = "Manual adjustment"
	ReasonSubscriptionBooking     = "Subscription booking"
	ReasonSubscriptionCancelation = "Subscription cancellation"
)

type StockNotification struct {
	ID           int      `json:"id,omitempty"`
	CustomerName string   `json:"customer_name"`
	PhoneNumber  string   `json:"phone_number"`
	ProductID    int      `json:"product_id"`
	TimeSlot     TimeSlot `json:"time_slot"`
	Quantity     float64  `json:"quantity"`
	Status       string   `json:"status,omitempty"`
	CreatedAt    string   `json:"created_at,omitempty"`
}

type MilkPrices struct {
	Buffalo float64 `json:"buffalo"`
	Cow     float64 `json:"cow"`
}

func DefaultMilkPrices() MilkPrices {
	return MilkPrices{Buffalo: DefaultBuffaloPrice, Cow: DefaultCowPrice}
}

// PricesFromProducts takes the per-liter price of the first product of each milk
// type, keeping the default when the product is missing or unpriced.
func PricesFromProducts(products []Product) MilkPrices {
	prices := DefaultMilkPrices()
	if price := firstPrice(products, MilkTypeBuffalo); price > 0 {
		prices.Buffalo = price
	}
	if price := firstPrice(products, MilkTypeCow); price > 0 {
		prices.Cow = price
	}
	return prices
}

func firstPrice(products []Product, milkType string) float64 {
	for _, product := range products {
		if strings.EqualFold(product.Type, milkType) {
			return product.PricePerLiter
		}
	}
	return 0
}
