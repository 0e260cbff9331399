package controllers

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/clients"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/resp"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
)

// RestaurantController เป็น pass-through ไป restaurant service สำหรับหน้า browse
type RestaurantController struct{ Restaurants *clients.RestaurantsClient }

func NewRestaurantController(rc *clients.RestaurantsClient) *RestaurantController {
	return &RestaurantController{Restaurants: rc}
}

// GET /restaurants
func (ctl *RestaurantController) List(c *gin.Context) {
	list, err := ctl.Restaurants.List(c.Request.Context(), utils.BearerToken(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, list)
}

// GET /restaurants/:id — รวมเมนูของร้านสำหรับหน้าเลือกอาหาร
func (ctl *RestaurantController) Detail(c *gin.Context) {
	r, err := ctl.Restaurants.Get(c.Request.Context(), utils.BearerToken(c), c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, r)
}
