package entity

import (
	"gorm.io/gorm"
)

// Cart ตะกร้าของ user หนึ่งคน ล็อกร้านได้ทีละร้านเดียว
// RestaurantID ว่าง = ตะกร้าว่าง พร้อมรับร้านใหม่
type Cart struct {
	gorm.Model
	UserID         string `json:"userId" gorm:"uniqueIndex"`
	RestaurantID   string `json:"restaurantId"`
	RestaurantName string `json:"restaurantName"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// Subtotal = Σ price×qty; ตะกร้าว่างได้ 0 เสมอ ไม่มีทางเป็น NaN
func (c *Cart) Subtotal() float64 {
	var sum float64
	for _, it := range c.Items {
		sum += it.UnitPrice * float64(it.Qty)
	}
	return sum
}

func (c *Cart) Empty() bool { return len(c.Items) == 0 }
