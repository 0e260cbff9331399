package services

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/entity"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/apperr"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/pricing"
	"github.com/imeshiperera12/FoodOrdering-sub000/repository"

	"gorm.io/gorm"
)

type CartService struct {
	DB   *gorm.DB
	Repo *repository.CartRepository
}

func NewCartService(db *gorm.DB, repo *repository.CartRepository) *CartService {
	return &CartService{DB: db, Repo: repo}
}

type AddItemIn struct {
	ItemID         string   `json:"id" binding:"required"`
	Name           string   `json:"name" binding:"required"`
	UnitPrice      float64  `json:"price" binding:"gte=0"`
	Qty            int      `json:"quantity"`
	Image          string   `json:"image"`
	Options        []string `json:"options"`
	RestaurantID   string   `json:"restaurantId" binding:"required"`
	RestaurantName string   `json:"restaurantName"`
	// Replace = ยอมทิ้งตะกร้าร้านเดิมแล้วเริ่มร้านใหม่ (ต้องตั้งใจส่งมาเอง)
	Replace bool `json:"replace"`
}

// Get คืนตะกร้าพร้อมสรุปยอดจาก pkg/pricing — ทุกหน้าจอใช้เลขชุดเดียวกัน
func (s *CartService) Get(userID string) (*entity.Cart, pricing.Summary, error) {
	c, err := s.Repo.GetCartWithItems(userID)
	if err != nil {
		return nil, pricing.Summary{}, apperr.Wrap(apperr.Server, "load cart", err)
	}
	return c, pricing.Summarize(c.Subtotal()), nil
}

// Add นโยบายข้ามร้าน: ตะกร้ามีของร้าน A อยู่ แล้วเพิ่มของร้าน B
//   - ไม่ส่ง replace → Conflict ให้หน้าบ้านถามผู้ใช้ก่อน
//   - ส่ง replace=true → ล้างตะกร้าแล้วเริ่มร้านใหม่
func (s *CartService) Add(userID string, in *AddItemIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.Repo.GetOrCreateCart(userID, in.RestaurantID, in.RestaurantName)
	if err != nil {
		return apperr.Wrap(apperr.Server, "load cart", err)
	}

	if c.RestaurantID != "" && c.RestaurantID != in.RestaurantID {
		if !in.Replace {
			return apperr.E(apperr.Conflict, "cart holds items from another restaurant")
		}
		if err := s.DB.Transaction(func(tx *gorm.DB) error {
			return s.Repo.ClearCart(tx, userID)
		}); err != nil {
			return apperr.Wrap(apperr.Server, "replace cart", err)
		}
		c.RestaurantID = ""
	}

	// ตะกร้ายังไม่ล็อกร้าน (ว่าง/เพิ่งถูกล้าง) → ตั้งร้านใหม่
	if c.RestaurantID == "" {
		if err := s.DB.Model(&entity.Cart{}).Where("id = ?", c.ID).
			Updates(map[string]any{"restaurant_id": in.RestaurantID, "restaurant_name": in.RestaurantName}).Error; err != nil {
			return apperr.Wrap(apperr.Server, "lock cart restaurant", err)
		}
	}

	line := &entity.CartItem{
		ItemID:    in.ItemID,
		Name:      in.Name,
		UnitPrice: in.UnitPrice,
		Qty:       in.Qty,
		Image:     in.Image,
		Options:   in.Options,
	}

	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpsertItem(tx, c.ID, line)
	}); err != nil {
		return apperr.Wrap(apperr.Server, "add cart item", err)
	}
	return nil
}

// UpdateQty: qty < 1 ปฏิเสธเฉย ๆ ไม่แตะ state (อยากลบให้เรียก Remove)
func (s *CartService) UpdateQty(userID, itemID string, qty int) error {
	if qty < 1 {
		return apperr.E(apperr.Validation, "quantity must be at least 1")
	}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.UpdateQty(tx, userID, itemID, qty)
	}); err != nil {
		return apperr.Wrap(apperr.Server, "update quantity", err)
	}
	return nil
}

func (s *CartService) RemoveItem(userID, itemID string) error {
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.RemoveItem(tx, userID, itemID)
	}); err != nil {
		return apperr.Wrap(apperr.Server, "remove cart item", err)
	}
	return nil
}

func (s *CartService) Clear(userID string) error {
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.ClearCart(tx, userID)
	}); err != nil {
		return apperr.Wrap(apperr.Server, "clear cart", err)
	}
	return nil
}
