package pricing

import (
	"math"
	"strconv"
)

// ค่าคงที่เดียวกันทุกหน้าจอ (Cart / Checkout / Confirmation ต้องตรงกันเสมอ)
const (
	DeliveryFee = 40.0
	TaxRate     = 0.05
)

type Summary struct {
	Subtotal    float64 `json:"subtotal"`
	DeliveryFee float64 `json:"deliveryFee"`
	Tax         float64 `json:"tax"`
	Total       float64 `json:"total"`
}

// Summarize คำนวณสรุปยอดจาก subtotal ที่เดียว ห้าม controller คิดเอง
// ตะกร้าว่างไม่มีค่าส่ง — fee คิดเฉพาะตะกร้าที่มีของ
func Summarize(subtotal float64) Summary {
	if subtotal <= 0 {
		return Summary{}
	}
	tax := subtotal * TaxRate
	return Summary{
		Subtotal:    subtotal,
		DeliveryFee: DeliveryFee,
		Tax:         tax,
		Total:       subtotal + DeliveryFee + tax,
	}
}

// Display ปัดเป็นทศนิยม 2 ตำแหน่งเฉพาะตอนแสดงผล ค่าที่เก็บจริงไม่ปัด
func Display(v float64) string {
	return strconv.FormatFloat(math.Round(v*100)/100, 'f', 2, 64)
}

type DisplaySummary struct {
	Subtotal    string `json:"subtotal"`
	DeliveryFee string `json:"deliveryFee"`
	Tax         string `json:"tax"`
	Total       string `json:"total"`
}

func (s Summary) Displayed() DisplaySummary {
	return DisplaySummary{
		Subtotal:    Display(s.Subtotal),
		DeliveryFee: Display(s.DeliveryFee),
		Tax:         Display(s.Tax),
		Total:       Display(s.Total),
	}
}
