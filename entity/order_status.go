package entity

// OrderStatus คือ lifecycle ที่ order service เป็นเจ้าของ ฝั่งเราอ่านอย่างเดียว
type OrderStatus string

const (
	StatusPending        OrderStatus = "pending"
	StatusConfirmed      OrderStatus = "confirmed"
	StatusPreparing      OrderStatus = "preparing"
	StatusReadyForPickup OrderStatus = "ready_for_pickup"
	StatusPickedUp       OrderStatus = "picked_up"
	StatusDelivered      OrderStatus = "delivered"
	StatusCancelled      OrderStatus = "cancelled"
)

var statusRank = map[OrderStatus]int{
	StatusPending:        0,
	StatusConfirmed:      1,
	StatusPreparing:      2,
	StatusReadyForPickup: 3,
	StatusPickedUp:       4,
	StatusDelivered:      5,
	StatusCancelled:      6,
}

// ParseOrderStatus: ค่าแปลก ๆ หรือค่าว่างจาก upstream ให้ถือเป็น pending
// จะได้ไม่มี switch ไหนพังเพราะ status ใหม่ที่เราไม่รู้จัก
func ParseOrderStatus(s string) OrderStatus {
	st := OrderStatus(s)
	if _, ok := statusRank[st]; !ok {
		return StatusPending
	}
	return st
}

func (s OrderStatus) Known() bool {
	_, ok := statusRank[s]
	return ok
}

// Terminal แปลว่าจบแล้ว เลิก poll ได้
func (s OrderStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusCancelled
}

// Rank ใช้เรียงลำดับแสดงผล timeline
func (s OrderStatus) Rank() int { return statusRank[s] }

// CanTransition ตรวจก่อนยิง upstream ว่า transition นี้สมเหตุสมผลไหม
// (upstream ยังเป็นคนตัดสินจริง เราแค่กันคำขอที่เห็น ๆ ว่าผิด)
func CanTransition(from, to OrderStatus) bool {
	if from.Terminal() {
		return false
	}
	if to == StatusCancelled {
		return true
	}
	return to.Rank() == from.Rank()+1
}
