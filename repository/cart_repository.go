package repository

import (
	"errors"

	"github.com/imeshiperera12/FoodOrdering-sub000/entity"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// คืน Cart เดิมของ user (ถ้าไม่มีก็คืน Cart ว่าง ๆ โดยไม่ error เพื่อให้หน้าบ้านแสดงได้)
func (r *CartRepository) GetCartWithItems(userID string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{UserID: userID}, nil
	}
	return &c, err
}

// สร้างหรืออ่าน Cart ของ user (ตั้งร้านให้ด้วยถ้าเพิ่งสร้าง)
func (r *CartRepository) GetOrCreateCart(userID, restaurantID, restaurantName string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("user_id = ?", userID).Preload("Items").First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{UserID: userID, RestaurantID: restaurantID, RestaurantName: restaurantName}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// เพิ่มหรือรวมบรรทัด: เมนูเดียวกัน (item_id เดียวกัน) ให้บวก Qty ไม่สร้างแถวใหม่
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND item_id = ?", cartID, row.ItemID).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// UpdateQty แค่ตั้งค่า (service ตรวจ qty >= 1 มาก่อนแล้ว)
// เงื่อนไข cart_id กันไม่ให้แก้ของ user อื่น
func (r *CartRepository) UpdateQty(tx *gorm.DB, userID, itemID string, qty int) error {
	return tx.Exec(`
		UPDATE cart_items
		   SET qty = ?
		 WHERE item_id = ?
		   AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)
	`, qty, itemID, userID).Error
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, userID, itemID string) error {
	if err := tx.
		Where("item_id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", itemID, userID).
		Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// ตะกร้าว่างแล้ว → ปลดล็อกร้าน
	return tx.Exec(`
		UPDATE carts SET restaurant_id = '', restaurant_name = ''
		 WHERE user_id = ?
		   AND NOT EXISTS (SELECT 1 FROM cart_items ci WHERE ci.cart_id = carts.id AND ci.deleted_at IS NULL)
	`, userID).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, userID string) error {
	var c entity.Cart
	if err := tx.Where("user_id = ?", userID).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	if err := tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error; err != nil {
		return err
	}
	// รีเซ็ตร้านของตะกร้าให้ว่าง เพื่อพร้อมรับร้านใหม่
	return tx.Model(&entity.Cart{}).Where("id = ?", c.ID).
		Updates(map[string]any{"restaurant_id": "", "restaurant_name": ""}).Error
}
