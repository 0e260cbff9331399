package controllers

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/resp"
	"github.com/imeshiperera12/FoodOrdering-sub000/services"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
)

type CheckoutController struct{ Svc *services.CheckoutService }

func NewCheckoutController(s *services.CheckoutService) *CheckoutController {
	return &CheckoutController{Svc: s}
}

// POST /checkout
func (ctl *CheckoutController) PlaceOrder(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	token := utils.BearerToken(c)

	var req services.CheckoutIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	out, err := ctl.Svc.PlaceOrder(c.Request.Context(), token, uid, &req)
	if err != nil {
		if out != nil && out.OrderID != "" {
			// order สร้างแล้วแต่จ่ายเงินพัง — ส่ง orderId กลับไปให้ retry ได้
			resp.ErrorWithData(c, err, out)
			return
		}
		resp.Error(c, err)
		return
	}
	resp.Created(c, out)
}

// POST /orders/:id/pay
func (ctl *CheckoutController) RetryPayment(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	token := utils.BearerToken(c)

	out, err := ctl.Svc.RetryPayment(c.Request.Context(), token, uid, c.Param("id"))
	if err != nil {
		if out != nil && out.OrderID != "" {
			resp.ErrorWithData(c, err, out)
			return
		}
		resp.Error(c, err)
		return
	}
	resp.OK(c, out)
}
