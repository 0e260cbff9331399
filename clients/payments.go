package clients

import (
	"context"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

type PaymentsClient struct{ c *Client }

func NewPaymentsClient(baseURL string, timeout time.Duration, log zerolog.Logger) *PaymentsClient {
	return &PaymentsClient{c: newClient("payment", baseURL, timeout, log)}
}

type PaymentRecord struct {
	ID            string    `json:"_id"`
	OrderID       string    `json:"orderId"`
	UserID        string    `json:"userId"`
	Amount        float64   `json:"amount"`
	PaymentMethod string    `json:"paymentMethod"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

type CreatePaymentIn struct {
	OrderID        string  `json:"orderId"`
	UserID         string  `json:"userId"`
	Amount         float64 `json:"amount"`
	PaymentMethod  string  `json:"paymentMethod"`
	IdempotencyKey string  `json:"idempotencyKey,omitempty"`
}

func (pc *PaymentsClient) Create(ctx context.Context, token string, in *CreatePaymentIn) (*PaymentRecord, error) {
	var out struct {
		Payment PaymentRecord `json:"payment"`
	}
	if err := pc.c.do(ctx, "POST", "/api/payments/create", token, in, &out); err != nil {
		return nil, err
	}
	return &out.Payment, nil
}

// Confirm ยืนยันการจ่าย คืนค่า status จาก payment service ("completed" เมื่อสำเร็จ)
func (pc *PaymentsClient) Confirm(ctx context.Context, token, paymentID string) (string, error) {
	var out struct {
		Status string `json:"status"`
	}
	if err := pc.c.do(ctx, "PUT", "/api/payments/confirm/"+url.PathEscape(paymentID), token, nil, &out); err != nil {
		return "", err
	}
	return out.Status, nil
}

func (pc *PaymentsClient) List(ctx context.Context, token string) ([]PaymentRecord, error) {
	var out []PaymentRecord
	if err := pc.c.do(ctx, "GET", "/api/payments", token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
