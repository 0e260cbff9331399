package entity

import "time"

// DeliveryInfo snapshot จาก delivery service (อ่านอย่างเดียว)
type DeliveryInfo struct {
	ID               string  `json:"_id"`
	OrderID          string  `json:"orderId"`
	DeliveryPersonID string  `json:"deliveryPersonId"`
	Status           string  `json:"status"`
	DeliveryAddress  string  `json:"deliveryAddress"`
	DeliveryFee      float64 `json:"deliveryFee"`
}

// DriverLocation ตำแหน่งล่าสุดของ rider จาก location service
type DriverLocation struct {
	DriverID  string    `json:"agentId,omitempty"`
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TrackingSnapshot คือสิ่งที่หน้าติดตาม order เห็น รวม status + ตำแหน่ง rider
// last-write-wins: loop ไหนมาทีหลังก็ทับ slice ของตัวเอง
type TrackingSnapshot struct {
	OrderID   string          `json:"orderId"`
	Status    OrderStatus     `json:"status"`
	Delivery  *DeliveryInfo   `json:"delivery,omitempty"`
	Location  *DriverLocation `json:"location,omitempty"`
	OrderGone bool            `json:"orderGone,omitempty"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
