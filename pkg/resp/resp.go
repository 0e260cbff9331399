package resp

import (
	"net/http"

	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/apperr"

	"github.com/gin-gonic/gin"
)

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "data": data})
}
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, gin.H{"ok": true, "data": data})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": msg})
}
func Forbidden(c *gin.Context, msg string) {
	c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": msg})
}

// Error แปลง error ที่ normalize แล้ว (pkg/apperr) เป็น HTTP status เดียวกันทั้งระบบ
func Error(c *gin.Context, err error) {
	c.JSON(statusOf(err), gin.H{"ok": false, "error": apperr.Message(err), "kind": apperr.KindOf(err).String()})
}

// ErrorWithData ใช้ตอน fail แบบมีของติดมือ เช่น จ่ายเงินพังแต่ order ถูกสร้างไปแล้ว
func ErrorWithData(c *gin.Context, err error, data any) {
	c.JSON(statusOf(err), gin.H{"ok": false, "error": apperr.Message(err), "kind": apperr.KindOf(err).String(), "data": data})
}

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.Network:
		return http.StatusBadGateway
	case apperr.Unauthorized:
		return http.StatusUnauthorized
	case apperr.NotFound:
		return http.StatusNotFound
	case apperr.Validation:
		return http.StatusBadRequest
	case apperr.Conflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
