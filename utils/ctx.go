package utils

import (
	"strings"

	"github.com/gin-gonic/gin"
)

func CurrentUserID(c *gin.Context) string {
	if v, ok := c.Get("userId"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// BearerToken คืน raw token จาก request เพื่อส่งต่อให้ upstream
// (gateway ไม่ mint token ใหม่ ใช้ของผู้ใช้ตรง ๆ)
func BearerToken(c *gin.Context) string {
	if t, ok := c.Get("bearerToken"); ok {
		if s, ok := t.(string); ok {
			return s
		}
	}
	h := c.GetHeader("Authorization")
	if strings.HasPrefix(h, "Bearer ") {
		return strings.TrimPrefix(h, "Bearer ")
	}
	return c.Query("token")
}
