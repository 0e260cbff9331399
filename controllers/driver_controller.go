package controllers

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/entity"
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/resp"
	"github.com/imeshiperera12/FoodOrdering-sub000/services"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
)

type DriverController struct{ Svc *services.DriverService }

func NewDriverController(s *services.DriverService) *DriverController {
	return &DriverController{Svc: s}
}

// pointer เพราะ 0 เป็นพิกัดจริง (เส้นศูนย์สูตร/เส้นเมริเดียน) ไม่ใช่ค่าว่าง
type reportLocationReq struct {
	Latitude  *float64 `json:"latitude" binding:"required"`
	Longitude *float64 `json:"longitude" binding:"required"`
}

// POST /partner/driver/location
func (ctl *DriverController) ReportLocation(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	token := utils.BearerToken(c)

	var req reportLocationReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := ctl.Svc.Report(c.Request.Context(), token, uid, *req.Latitude, *req.Longitude); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"reported": true})
}

type updateDeliveryReq struct {
	Status string `json:"status" binding:"required"` // picked_up | delivered
}

// PATCH /partner/driver/deliveries/:id/status
func (ctl *DriverController) UpdateDeliveryStatus(c *gin.Context) {
	token := utils.BearerToken(c)

	var req updateDeliveryReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	status := entity.OrderStatus(req.Status)
	if err := ctl.Svc.UpdateDeliveryStatus(c.Request.Context(), token, c.Param("id"), status); err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, gin.H{"status": status})
}

// DELETE /partner/driver/shift — ปิดกะ เลิกส่ง heartbeat
func (ctl *DriverController) EndShift(c *gin.Context) {
	uid := utils.CurrentUserID(c)
	ctl.Svc.StopShift(uid)
	resp.OK(c, gin.H{"ended": true})
}
