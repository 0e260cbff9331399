package services

import (
	"context"

	"github.com/imeshiperera12/FoodOrdering-sub000/entity"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/apperr"
)

// ----- Owner actions -----
// แต่ละ action: อ่าน order ปัจจุบัน → เช็คว่าเป็นร้านของ owner → เช็ค transition
// ก่อนส่ง upstream (order service เป็นคนตัดสินจริง เราแค่กันคำขอที่เห็น ๆ ว่าผิด)

func (s *OrderService) ownerTransition(ctx context.Context, token, restaurantID, orderID string, to entity.OrderStatus) error {
	o, err := s.Orders.Get(ctx, token, orderID)
	if err != nil {
		return err
	}
	if o.RestaurantID != restaurantID {
		return apperr.E(apperr.Unauthorized, "order belongs to another restaurant")
	}
	from := o.DisplayStatus()
	if !entity.CanTransition(from, to) {
		return apperr.Ef(apperr.Conflict, "cannot move order from %s to %s", from, to)
	}
	return s.Orders.UpdateStatus(ctx, token, orderID, to)
}

func (s *OrderService) OwnerConfirm(ctx context.Context, token, restaurantID, orderID string) error {
	return s.ownerTransition(ctx, token, restaurantID, orderID, entity.StatusConfirmed)
}

func (s *OrderService) OwnerStartPreparing(ctx context.Context, token, restaurantID, orderID string) error {
	return s.ownerTransition(ctx, token, restaurantID, orderID, entity.StatusPreparing)
}

func (s *OrderService) OwnerReadyForPickup(ctx context.Context, token, restaurantID, orderID string) error {
	return s.ownerTransition(ctx, token, restaurantID, orderID, entity.StatusReadyForPickup)
}

func (s *OrderService) OwnerCancel(ctx context.Context, token, restaurantID, orderID string) error {
	return s.ownerTransition(ctx, token, restaurantID, orderID, entity.StatusCancelled)
}
