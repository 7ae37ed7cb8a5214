package ports

import (
	"context"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

type AuthAPI interface {
	Login(ctx context.Context, email, password string) (domain.LoginResult, error)
	RequestLoginOTP(ctx context.Context, email string) error
	VerifyLoginOTP(ctx context.Context, email, otp string) (domain.LoginResult, error)
}

type AddressAPI interface {
	ListAddresses(ctx context.Context) ([]domain.Address, error)
	CreateAddress(ctx context.Context, input domain.AddressInput) (domain.Address, error)
	UpdateAddress(ctx context.Context, id int, input domain.AddressInput) (domain.Address, error)
	DeleteAddress(ctx context.Context, id int) error
	SetDefaultAddress(ctx context.Context, id int) error
}

type DataAPI interface {
	ListSubscriptions(ctx context.Context) ([]domain.Subscription, error)
	CreateSubscription(ctx context.Context, sub domain.Subscription) (domain.Subscription, error)
	UpdateSubscription(ctx context.Context, id int, fields map[string]any) error
	DeleteSubscription(ctx context.Context, id int) error

	Preferences(ctx context.Context) (domain.Preferences, error)
	SetPreference(ctx context.Context, key, value string) error
	SetPreferences(ctx context.Context, prefs domain.Preferences) error
}

// ProductCatalog lists products. cacheBust is appended to the query so
// intermediaries never serve a stale price list.
type ProductCatalog interface {
	Products(ctx context.Context, cacheBust string) ([]domain.Product, error)
}

type InventoryAPI interface {
	ProductCatalog
	UpdateProductPrice(ctx context.Context, productID int, price float64) error
	Stock(ctx context.Context) ([]domain.StockSummary, error)
	UpdateStock(ctx context.Context, productID int, slot domain.TimeSlot, total float64) error
	AdjustStock(ctx context.Context, adj domain.StockAdjustment) (float64, error)
	AddBooking(ctx context.Context, booking domain.StockAdjustment) error
	RemoveBooking(ctx context.Context, booking domain.StockAdjustment) error
	Notifications(ctx context.Context, status string) ([]domain.StockNotification, error)
	CreateNotification(ctx context.Context, n domain.StockNotification) (domain.StockNotification, error)
	UpdateNotificationStatus(ctx context.Context, id int, status string) error
	DeleteNotification(ctx context.Context, id int) error
	AnalyticsSummary(ctx context.Context) (domain.AnalyticsSummary, error)
}
