package controllers

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/resp"
	"github.com/imeshiperera12/FoodOrdering-sub000/services"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
)

type TrackingController struct{ Svc *services.TrackingService }

func NewTrackingController(s *services.TrackingService) *TrackingController {
	return &TrackingController{Svc: s}
}

// GET /orders/:id/track — snapshot ครั้งเดียว ไม่เปิด watcher
// หน้าเว็บที่อยากได้สด ๆ ต่อเนื่องให้ใช้ /ws/track/:orderId แทน
func (ctl *TrackingController) Snapshot(c *gin.Context) {
	token := utils.BearerToken(c)

	snap, err := ctl.Svc.Snapshot(c.Request.Context(), token, c.Param("id"))
	if err != nil {
		resp.Error(c, err)
		return
	}
	resp.OK(c, snap)
}
