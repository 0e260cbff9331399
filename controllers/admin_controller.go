package controllers

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/clients"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/resp"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
)

// AdminController หน้าจอ admin เป็นแค่ view ของข้อมูลฝั่ง service ต่าง ๆ
type AdminController struct {
	Auth        *clients.AuthClient
	Payments    *clients.PaymentsClient
	Restaurants *clients.RestaurantsClient
}

func NewAdminController(auth *clients.AuthClient, payments *clients.PaymentsClient, restaurants *clients.RestaurantsClient) *AdminController {
	return &AdminController{Auth: auth, Payments: payments, Restaurants: restaurants}
}

// GET /admin/users
func (ctl *AdminController) Users(c *gin.Context) {
	users, err := ctl.Auth.ListUsers(c.Request.Context(), utils.BearerToken(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, users)
}

// GET /admin/payments
func (ctl *AdminController) ListPayments(c *gin.Context) {
	payments, err := ctl.Payments.List(c.Request.Context(), utils.BearerToken(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, payments)
}

// GET /admin/restaurants
func (ctl *AdminController) ListRestaurants(c *gin.Context) {
	list, err := ctl.Restaurants.List(c.Request.Context(), utils.BearerToken(c))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, list)
}
