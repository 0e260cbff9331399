package entity

import "time"

// Order เป็น mirror ของ order service เราไม่แก้ field ของมันเอง
// นอกจากเอามาแสดงผล (optimistic UI เท่านั้น)
type Order struct {
	ID              string      `json:"_id"`
	CustomerID      string      `json:"customerId"`
	RestaurantID    string      `json:"restaurantId"`
	RestaurantName  string      `json:"restaurantName,omitempty"`
	Items           []OrderItem `json:"items"`
	Subtotal        float64     `json:"subtotal"`
	DeliveryFee     float64     `json:"deliveryFee"`
	Tax             float64     `json:"tax"`
	TotalAmount     float64     `json:"totalAmount"`
	DeliveryAddress Address     `json:"deliveryAddress"`
	PaymentMethod   string      `json:"paymentMethod"`
	OrderNotes      string      `json:"orderNotes,omitempty"`
	Status          string      `json:"status"`
	CreatedAt       time.Time   `json:"createdAt"`
}

// DisplayStatus ใช้ตอน render เท่านั้น จะไม่มีวันคืนค่าที่ไม่รู้จัก
func (o *Order) DisplayStatus() OrderStatus { return ParseOrderStatus(o.Status) }

type OrderItem struct {
	ItemID    string   `json:"id"`
	Name      string   `json:"name"`
	UnitPrice float64  `json:"price"`
	Qty       int      `json:"quantity"`
	Options   []string `json:"options,omitempty"`
}

type Address struct {
	Street   string `json:"street"`
	City     string `json:"city"`
	Postcode string `json:"postcode"`
	Phone    string `json:"phone"`
}

func (a Address) Complete() bool {
	return a.Street != "" && a.City != "" && a.Phone != ""
}
