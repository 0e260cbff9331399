package services

import (
	"context"

	"github.com/imeshiperera12/FoodOrdering-sub000/clients"
	"github.com/imeshiperera12/FoodOrdering-sub000/entity"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/apperr"
)

type OrderService struct {
	Orders *clients.OrdersClient
}

func NewOrderService(orders *clients.OrdersClient) *OrderService {
	return &OrderService{Orders: orders}
}

func (s *OrderService) ListForMe(ctx context.Context, token, userID string) ([]entity.Order, error) {
	return s.Orders.ListForCustomer(ctx, token, userID)
}

func (s *OrderService) Detail(ctx context.Context, token, orderID string) (*entity.Order, error) {
	return s.Orders.Get(ctx, token, orderID)
}

// Rate ตรวจก่อนยิง: คะแนน 1-5, order ต้องเป็นของคนให้คะแนนและส่งถึงแล้ว
func (s *OrderService) Rate(ctx context.Context, token, userID, orderID string, rating int, review string) error {
	if rating < 1 || rating > 5 {
		return apperr.E(apperr.Validation, "rating must be between 1 and 5")
	}
	o, err := s.Orders.Get(ctx, token, orderID)
	if err != nil {
		return err
	}
	if o.CustomerID != userID {
		return apperr.E(apperr.Unauthorized, "not your order")
	}
	if o.DisplayStatus() != entity.StatusDelivered {
		return apperr.E(apperr.Validation, "order is not delivered yet")
	}
	return s.Orders.Rate(ctx, token, orderID, rating, review)
}
