package services

import (
	"context"

	"github.com/imeshiperera12/FoodOrdering-sub000/clients"
	"github.com/imeshiperera12/FoodOrdering-sub000/entity"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/apperr"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/pricing"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type CheckoutService struct {
	Cart     *CartService
	Orders   *clients.OrdersClient
	Payments *clients.PaymentsClient
	Log      zerolog.Logger
}

func NewCheckoutService(cart *CartService, orders *clients.OrdersClient, payments *clients.PaymentsClient, log zerolog.Logger) *CheckoutService {
	return &CheckoutService{Cart: cart, Orders: orders, Payments: payments, Log: log.With().Str("svc", "checkout").Logger()}
}

var paymentMethods = map[string]bool{"card": true, "cash": true}

type CheckoutIn struct {
	DeliveryAddress entity.Address `json:"deliveryAddress"`
	PaymentMethod   string         `json:"paymentMethod" binding:"required"`
	CardNumber      string         `json:"cardNumber"`
	OrderNotes      string         `json:"orderNotes"`
}

type CheckoutOut struct {
	OrderID       string             `json:"orderId"`
	Status        entity.OrderStatus `json:"status"`
	PaymentID     string             `json:"paymentId,omitempty"`
	PaymentStatus string             `json:"paymentStatus,omitempty"`
	Summary       pricing.Summary    `json:"summary"`
}

// validate จับให้หมดก่อนยิง request แรก — ของพังฝั่งเราไม่ควรไปถึง upstream
func (in *CheckoutIn) validate() error {
	if !in.DeliveryAddress.Complete() {
		return apperr.E(apperr.Validation, "delivery address is incomplete")
	}
	if !paymentMethods[in.PaymentMethod] {
		return apperr.Ef(apperr.Validation, "unsupported payment method %q", in.PaymentMethod)
	}
	if in.PaymentMethod == "card" && !utils.ValidCardNumber(in.CardNumber) {
		return apperr.E(apperr.Validation, "invalid card number")
	}
	return nil
}

// PlaceOrder: snapshot ตะกร้า → สร้าง order → ล้างตะกร้า → สร้าง+ยืนยัน payment
// ตะกร้าถูกล้างทันทีที่ order service รับ order (นิยาม "successful order placement")
// จ่ายเงินพังหลังจากนั้น = คืน out ที่มี OrderID ไว้ retry พร้อม error
func (s *CheckoutService) PlaceOrder(ctx context.Context, token, userID string, in *CheckoutIn) (*CheckoutOut, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	c, summary, err := s.Cart.Get(userID)
	if err != nil {
		return nil, err
	}
	if c.Empty() {
		return nil, apperr.E(apperr.Validation, "cart is empty")
	}

	items := make([]entity.OrderItem, 0, len(c.Items))
	for _, it := range c.Items {
		items = append(items, entity.OrderItem{
			ItemID:    it.ItemID,
			Name:      it.Name,
			UnitPrice: it.UnitPrice,
			Qty:       it.Qty,
			Options:   it.Options,
		})
	}

	o, err := s.Orders.Create(ctx, token, &clients.CreateOrderIn{
		RestaurantID:    c.RestaurantID,
		CustomerID:      userID,
		Items:           items,
		Subtotal:        summary.Subtotal,
		DeliveryFee:     summary.DeliveryFee,
		Tax:             summary.Tax,
		TotalAmount:     summary.Total,
		DeliveryAddress: in.DeliveryAddress,
		PaymentMethod:   in.PaymentMethod,
		OrderNotes:      in.OrderNotes,
		IdempotencyKey:  uuid.NewString(),
	})
	if err != nil {
		return nil, err
	}

	out := &CheckoutOut{
		OrderID: o.ID,
		Status:  entity.ParseOrderStatus(o.Status),
		Summary: summary,
	}

	if err := s.Cart.Clear(userID); err != nil {
		// order สร้างแล้ว อย่า fail ทั้ง checkout เพราะล้างตะกร้าไม่ได้
		s.Log.Error().Err(err).Str("order_id", o.ID).Msg("clear cart after order placement failed")
	}

	if in.PaymentMethod == "cash" {
		return out, nil
	}

	payID, payStatus, err := s.pay(ctx, token, userID, o.ID, summary.Total, in.PaymentMethod)
	out.PaymentID = payID
	out.PaymentStatus = payStatus
	if err != nil {
		return out, err
	}
	return out, nil
}

// RetryPayment จ่ายซ้ำให้ order ที่สร้างแล้วแต่จ่ายไม่ผ่าน
func (s *CheckoutService) RetryPayment(ctx context.Context, token, userID, orderID string) (*CheckoutOut, error) {
	o, err := s.Orders.Get(ctx, token, orderID)
	if err != nil {
		return nil, err
	}
	if o.CustomerID != userID {
		return nil, apperr.E(apperr.Unauthorized, "not your order")
	}
	if o.DisplayStatus().Terminal() {
		return nil, apperr.E(apperr.Conflict, "order is already closed")
	}

	out := &CheckoutOut{OrderID: o.ID, Status: o.DisplayStatus()}
	payID, payStatus, err := s.pay(ctx, token, userID, o.ID, o.TotalAmount, o.PaymentMethod)
	out.PaymentID = payID
	out.PaymentStatus = payStatus
	if err != nil {
		return out, err
	}
	return out, nil
}

func (s *CheckoutService) pay(ctx context.Context, token, userID, orderID string, amount float64, method string) (string, string, error) {
	p, err := s.Payments.Create(ctx, token, &clients.CreatePaymentIn{
		OrderID:        orderID,
		UserID:         userID,
		Amount:         amount,
		PaymentMethod:  method,
		IdempotencyKey: uuid.NewString(),
	})
	if err != nil {
		return "", "failed", err
	}
	status, err := s.Payments.Confirm(ctx, token, p.ID)
	if err != nil {
		return p.ID, "failed", err
	}
	return p.ID, status, nil
}
