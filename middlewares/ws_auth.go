// middlewares/ws_auth.go
package middlewares

import (
	"strings"

	"github.com/imeshiperera12/FoodOrdering-sub000/pkg/resp"
	"github.com/imeshiperera12/FoodOrdering-sub000/utils"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware ตรวจ JWT จากทั้ง query และ header
// (browser เปิด websocket ใส่ header เองไม่ได้ เลยต้องรับ ?token= ด้วย)
func WSAuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenStr string

		if t := c.Query("token"); t != "" {
			tokenStr = t
		} else {
			h := c.GetHeader("Authorization")
			if h != "" && strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}

		if tokenStr == "" {
			resp.Unauthorized(c, "missing token")
			c.Abort()
			return
		}

		claims, err := utils.ParseToken(tokenStr, secret)
		if err != nil {
			resp.Unauthorized(c, "invalid token")
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("role", claims.Role)
		c.Set("bearerToken", tokenStr)

		c.Next()
	}
}
