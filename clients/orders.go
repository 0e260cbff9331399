package clients

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/imeshiperera12/FoodOrdering-sub000/entity"

	"github.com/rs/zerolog"
)

type OrdersClient struct{ c *Client }

func NewOrdersClient(baseURL string, timeout time.Duration, log zerolog.Logger) *OrdersClient {
	return &OrdersClient{c: newClient("order", baseURL, timeout, log)}
}

type CreateOrderIn struct {
	RestaurantID    string             `json:"restaurantId"`
	CustomerID      string             `json:"customerId"`
	Items           []entity.OrderItem `json:"items"`
	Subtotal        float64            `json:"subtotal"`
	DeliveryFee     float64            `json:"deliveryFee"`
	Tax             float64            `json:"tax"`
	TotalAmount     float64            `json:"totalAmount"`
	DeliveryAddress entity.Address     `json:"deliveryAddress"`
	PaymentMethod   string             `json:"paymentMethod"`
	OrderNotes      string             `json:"orderNotes,omitempty"`
	IdempotencyKey  string             `json:"idempotencyKey,omitempty"`
}

func (oc *OrdersClient) Create(ctx context.Context, token string, in *CreateOrderIn) (*entity.Order, error) {
	var out struct {
		Order entity.Order `json:"order"`
	}
	if err := oc.c.do(ctx, "POST", "/api/orders", token, in, &out); err != nil {
		return nil, err
	}
	return &out.Order, nil
}

func (oc *OrdersClient) Get(ctx context.Context, token, id string) (*entity.Order, error) {
	var out entity.Order
	if err := oc.c.do(ctx, "GET", "/api/orders/"+url.PathEscape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (oc *OrdersClient) ListForCustomer(ctx context.Context, token, customerID string) ([]entity.Order, error) {
	var out []entity.Order
	path := "/api/orders?customerId=" + url.QueryEscape(customerID)
	if err := oc.c.do(ctx, "GET", path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (oc *OrdersClient) ListForRestaurant(ctx context.Context, token, restaurantID string) ([]entity.Order, error) {
	var out []entity.Order
	path := "/api/orders?restaurantId=" + url.QueryEscape(restaurantID)
	if err := oc.c.do(ctx, "GET", path, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (oc *OrdersClient) UpdateStatus(ctx context.Context, token, id string, status entity.OrderStatus) error {
	body := map[string]string{"status": string(status)}
	return oc.c.do(ctx, "PUT", fmt.Sprintf("/api/orders/%s/status", url.PathEscape(id)), token, body, nil)
}

func (oc *OrdersClient) Rate(ctx context.Context, token, id string, rating int, review string) error {
	body := map[string]any{"rating": rating, "review": review}
	return oc.c.do(ctx, "POST", fmt.Sprintf("/api/orders/%s/rate", url.PathEscape(id)), token, body, nil)
}
