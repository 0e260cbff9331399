package controllers

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/resp"
	"github.com/imeshiperera12/FoodOrdering-sub000/services"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController { return &OrderController{Svc: s} }

// GET /profile/orders
func (ctl *OrderController) ListForMe(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	token := utils.BearerToken(c)

	orders, err := ctl.Svc.ListForMe(c.Request.Context(), token, uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id — ใช้ทั้งหน้า detail และหน้า confirmation
func (ctl *OrderController) Detail(c *gin.Context) {
	token := utils.BearerToken(c)

	o, err := ctl.Svc.Detail(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"order":         o,
		"displayStatus": o.DisplayStatus(),
	})
}

type rateReq struct {
	Rating int    `json:"rating" binding:"required"`
	Review string `json:"review"`
}

// POST /orders/:id/rate
func (ctl *OrderController) Rate(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	token := utils.BearerToken(c)

	var req rateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.Rate(c.Request.Context(), token, uid, c.Param("id"), req.Rating, req.Review); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"rated": true})
}
