package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
	"github.com/taaza-dairy/taaza-cli/internal/ports"
)

var _ ports.InventoryAPI = (*Client)(nil)

// Products lists products. A non-empty cacheBust becomes the bare query
// string ("/products?1718000000000").
func (c *Client) Products(ctx context.Context, cacheBust string) ([]domain.Product, error) {
	var envelope struct {
		Products []domain.Product `json:"products"`
	}
	if err := c.do(ctx, call{
		op:     "list products",
		method: http.MethodGet,
		path:   "/inventory/products",
		query:  url.QueryEscape(cacheBust),
		out:    &envelope,
	}); err != nil {
		return nil, err
	}
	return envelope.Products, nil
}

func (c *Client) UpdateProductPrice(ctx context.Context, productID int, price float64) error {
	return c.do(ctx, call{
		op:     "update product price",
		method: http.MethodPut,
		path:   idPath("/inventory/products/%s/price", productID),
		body:   map[string]float64{"price": price},
	})
}

func (c *Client) Stock(ctx context.Context) ([]domain.StockSummary, error) {
	var envelope struct {
		Stock []domain.StockSummary `json:"stock"`
	}
	if err := c.do(ctx, call{
		op:     "list stock",
		method: http.MethodGet,
		path:   "/inventory/stock",
		out:    &envelope,
	}); err != nil {
		return nil, err
	}
	return envelope.Stock, nil
}

func (c *Client) UpdateStock(ctx context.Context, productID int, slot domain.TimeSlot, total float64) error {
	return c.do(ctx, call{
		op:     "update stock",
		method: http.MethodPut,
		path:   idPath("/inventory/stock/%s/%s", productID, slot),
		body:   map[string]float64{"total_stock": total},
	})
}

// AdjustStock applies a signed delta and returns the new total.
func (c *Client) AdjustStock(ctx context.Context, adj domain.StockAdjustment) (float64, error) {
	var result struct {
		NewStock float64 `json:"new_stock"`
	}
	err := c.do(ctx, call{
		op:     "adjust stock",
		method: http.MethodPost,
		path:   idPath("/inventory/stock/%s/%s/adjust", adj.ProductID, adj.TimeSlot),
		body:   adj,
		out:    &result,
	})
	return result.NewStock, err
}

func (c *Client) AddBooking(ctx context.Context, booking domain.StockAdjustment) error {
	return c.do(ctx, call{
		op:     "add booking",
		method: http.MethodPost,
		path:   "/inventory/bookings",
		body:   booking,
	})
}

func (c *Client) RemoveBooking(ctx context.Context, booking domain.StockAdjustment) error {
	return c.do(ctx, call{
		op:     "remove booking",
		method: http.MethodDelete,
		path:   "/inventory/bookings",
		body:   booking,
	})
}

func (c *Client) Notifications(ctx context.Context, status string) ([]domain.StockNotification, error) {
	query := ""
	if status != "" {
		query = url.Values{"status": []string{status}}.Encode()
	}

	var envelope struct {
		Notifications []domain.StockNotification `json:"notifications"`
	}
	if err := c.do(ctx, call{
		op:     "list notifications",
		method: http.MethodGet,
		path:   "/inventory/notifications",
		query:  query,
		out:    &envelope,
	}); err != nil {
		return nil, err
	}
	return envelope.Notifications, nil
}

func (c *Client) CreateNotification(ctx context.Context, n domain.StockNotification) (domain.StockNotification, error) {
	var created struct {
		ID        int    `json:"id"`
		CreatedAt string `json:"created_at"`
	}
	if err := c.do(ctx, call{
		op:     "create notification",
		method: http.MethodPost,
		path:   "/inventory/notifications",
		body:   n,
		out:    &created,
	}); err != nil {
		return domain.StockNotification{}, err
	}
	n.ID = created.ID
	n.CreatedAt = created.CreatedAt
	return n, nil
}

func (c *Client) UpdateNotificationStatus(ctx context.Context, id int, status string) error {
	return c.do(ctx, call{
		op:     "update notification status",
		method: http.MethodPut,
		path:   idPath("/inventory/notifications/%s/status", id),
		body:   map[string]string{"status": status},
	})
}

func (c *Client) DeleteNotification(ctx context.Context, id int) error {
	return c.do(ctx, call{
		op:     "delete notification",
		method: http.MethodDelete,
		path:   idPath("/inventory/notifications/%s", id),
	})
}

func (c *Client) AnalyticsSummary(ctx context.Context) (domain.AnalyticsSummary, error) {
	var summary domain.AnalyticsSummary
	err := c.do(ctx, call{
		op:     "analytics summary",
		method: http.MethodGet,
		path:   "/inventory/analytics/summary",
		out:    &summary,
	})
	return summary, err
}
