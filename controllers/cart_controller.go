package controllers

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/resp"
	"github.com/imeshiperera12/FoodOrdering-sub000/services"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (ctl *CartController) Get(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	cart, summary, err := ctl.Svc.Get(uid)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{
		"cart":    cart,
		"summary": summary,
		"display": summary.Displayed(),
	})
}

// POST /cart/items
func (ctl *CartController) AddItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req services.AddItemIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.Add(uid, &req); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Get(c)
}

type updateQtyReq struct {
	Quantity int `json:"quantity" binding:"required"`
}

// PATCH /cart/items/:itemId
func (ctl *CartController) UpdateQty(c *gin.Context) {
	uid := utils.CurrentUserID(c)

	var req updateQtyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.UpdateQty(uid, c.Param("itemId"), req.Quantity); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Get(c)
}

// DELETE /cart/items/:itemId
func (ctl *CartController) RemoveItem(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := ctl.Svc.RemoveItem(uid, c.Param("itemId")); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Get(c)
}

// DELETE /cart
func (ctl *CartController) Clear(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	if err := ctl.Svc.Clear(uid); err != nil {
		resp.Error(c, err)
		return
	}
	ctl.Get(c)
}
