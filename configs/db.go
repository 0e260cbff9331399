package configs

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(source string) {
	database, err := gorm.Open(sqlite.Open(source), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {
	// gateway เก็บแค่ตะกร้า ส่วน domain อื่นเป็นของ service ปลายทาง
	db.AutoMigrate(
		&entity.Cart{}, &entity.CartItem{},
	)
}
