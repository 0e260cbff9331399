package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func corsRouter(origins ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORSMiddleware(origins))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func getWithOrigin(r *gin.Engine, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", origin)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	r := corsRouter("https://shop.example")

	w := getWithOrigin(r, "https://shop.example")
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "https://shop.example", w.Header().Get("Access-Control-Allow-Origin"))

	// origin แปลกหน้าไม่ได้ header กลับไป
	w = getWithOrigin(r, "https://evil.example")
	require.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSDefaultsToAllowAll(t *testing.T) {
	r := corsRouter("*")
	w := getWithOrigin(r, "https://anywhere.example")
	require.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
