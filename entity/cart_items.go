package entity

import (
	"gorm.io/gorm"
)

// CartItem หนึ่งบรรทัดในตะกร้า key ด้วย ItemID ของ menu service
// เพิ่มเมนูเดิมซ้ำ = รวม Qty ไม่สร้างบรรทัดใหม่
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	ItemID    string   `json:"id"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"price"`
	Qty       int      `json:"quantity"`
	Image     string   `json:"image,omitempty"`
	Options   []string `json:"options,omitempty" gorm:"serializer:json"`
}

func (i *CartItem) LineTotal() float64 { return i.UnitPrice * float64(i.Qty) }
