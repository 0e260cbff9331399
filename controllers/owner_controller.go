package controllers

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/resp"
	"github.com/imeshiperera12/FoodOrdering-sub000/services"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
)

type OwnerController struct{ Svc *services.OrderService }

func NewOwnerController(s *services.OrderService) *OwnerController { return &OwnerController{Svc: s} }

// GET /partner/restaurant/orders?restaurantId=
func (ctl *OwnerController) Orders(c *gin.Context) {
	token := utils.BearerToken(c)
	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		resp.BadRequest(c, "restaurantId is required")
		return
	}

	orders, err := ctl.Svc.Orders.ListForRestaurant(c.Request.Context(), token, restaurantID)
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, orders)
}

func (ctl *OwnerController) transition(c *gin.Context, do func(ctx *gin.Context, token, restaurantID, orderID string) error) {
	token := utils.BearerToken(c)
	restaurantID := c.Query("restaurantId")
	if restaurantID == "" {
		resp.BadRequest(c, "restaurantId is required")
		return
	}
	if err := do(c, token, restaurantID, c.Param("id")); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// PATCH /partner/restaurant/orders/:id/confirm
func (ctl *OwnerController) Confirm(c *gin.Context) {
	ctl.transition(c, func(gc *gin.Context, token, rid, oid string) error {
		return ctl.Svc.OwnerConfirm(gc.Request.Context(), token, rid, oid)
	})
}

// PATCH /partner/restaurant/orders/:id/preparing
func (ctl *OwnerController) StartPreparing(c *gin.Context) {
	ctl.transition(c, func(gc *gin.Context, token, rid, oid string) error {
		return ctl.Svc.OwnerStartPreparing(gc.Request.Context(), token, rid, oid)
	})
}

// PATCH /partner/restaurant/orders/:id/ready
func (ctl *OwnerController) ReadyForPickup(c *gin.Context) {
	ctl.transition(c, func(gc *gin.Context, token, rid, oid string) error {
		return ctl.Svc.OwnerReadyForPickup(gc.Request.Context(), token, rid, oid)
	})
}

// PATCH /partner/restaurant/orders/:id/cancel
func (ctl *OwnerController) Cancel(c *gin.Context) {
	ctl.transition(c, func(gc *gin.Context, token, rid, oid string) error {
		return ctl.Svc.OwnerCancel(gc.Request.Context(), token, rid, oid)
	})
}
