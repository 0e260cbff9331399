package routes

import (
	"github.com/imeshiperera12/FoodOrdering-sub000/clients"
	"github.com/imeshiperera12/FoodOrdering-sub000/configs"
	"github.com/imeshiperera12/FoodOrdering-sub000/controllers"
	"github.com/imeshiperera12/FoodOrdering-sub000/middlewares"
	"github.com/imeshiperera12/FoodOrdering-sub000/repository"
	"github.com/imeshiperera12/FoodOrdering-sub000/services"
	"github.com/imeshiperera12/FoodOrdering-sub000/ws"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

// RegisterRoutes ประกอบ client/service/controller ทั้งหมดแล้วผูก route
// คืน cleanup สำหรับหยุด background loop (tracking watcher, driver heartbeat)
// ตอน shutdown
func RegisterRoutes(r *gin.Engine, cfg *configs.Config, db *gorm.DB, log zerolog.Logger) func() {
	r.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })

	// Upstream clients — base URL มาจาก config ทั้งหมด
	ordersCl := clients.NewOrdersClient(cfg.OrderServiceURL, cfg.UpstreamTimeout, log)
	paymentsCl := clients.NewPaymentsClient(cfg.PaymentServiceURL, cfg.UpstreamTimeout, log)
	deliveryCl := clients.NewDeliveryClient(cfg.DeliveryServiceURL, cfg.UpstreamTimeout, log)
	locationCl := clients.NewLocationClient(cfg.LocationServiceURL, cfg.UpstreamTimeout, log)
	authCl := clients.NewAuthClient(cfg.AuthServiceURL, cfg.UpstreamTimeout, log)
	restCl := clients.NewRestaurantsClient(cfg.RestaurantServiceURL, cfg.UpstreamTimeout, log)

	// Services
	cartRepo := repository.NewCartRepository(db)
	cartSvc := services.NewCartService(db, cartRepo)
	orderSvc := services.NewOrderService(ordersCl)
	checkoutSvc := services.NewCheckoutService(cartSvc, ordersCl, paymentsCl, log)
	trackingSvc := services.NewTrackingService(ordersCl, deliveryCl, locationCl, cfg.StatusPollEvery, cfg.LocationPollEvery, log)
	driverSvc := services.NewDriverService(locationCl, deliveryCl, cfg.DriverHeartbeatEvery, log)

	// Controllers
	cartCtrl := controllers.NewCartController(cartSvc)
	checkoutCtrl := controllers.NewCheckoutController(checkoutSvc)
	orderCtrl := controllers.NewOrderController(orderSvc)
	trackCtrl := controllers.NewTrackingController(trackingSvc)
	driverCtrl := controllers.NewDriverController(driverSvc)
	ownerCtrl := controllers.NewOwnerController(orderSvc)
	restCtrl := controllers.NewRestaurantController(restCl)
	favCtrl := controllers.NewFavoritesController(authCl)
	adminCtrl := controllers.NewAdminController(authCl, paymentsCl, restCl)

	// WebSocket hub สำหรับหน้าติดตาม order
	hub := ws.NewTrackHub(trackingSvc, log)
	go hub.Run()

	// Public/User browse
	r.GET("/restaurants", restCtrl.List)
	r.GET("/restaurants/:id", restCtrl.Detail)

	// Cart (customer)
	cart := r.Group("/cart", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		cart.GET("", cartCtrl.Get)
		cart.POST("/items", cartCtrl.AddItem)
		cart.PATCH("/items/:itemId", cartCtrl.UpdateQty)
		cart.DELETE("/items/:itemId", cartCtrl.RemoveItem)
		cart.DELETE("", cartCtrl.Clear)
	}

	// Orders (customer)
	u := r.Group("/", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		u.POST("/checkout", checkoutCtrl.PlaceOrder)
		u.GET("/orders/:id", orderCtrl.Detail)
		u.POST("/orders/:id/pay", checkoutCtrl.RetryPayment)
		u.POST("/orders/:id/rate", orderCtrl.Rate)
		u.GET("/orders/:id/track", trackCtrl.Snapshot)
	}

	// Profile
	profile := r.Group("/profile", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		profile.GET("/orders", orderCtrl.ListForMe)
	}

	// Favorites
	fav := r.Group("/favorites", middlewares.AuthMiddleware(cfg.JWTSecret))
	{
		fav.GET("", favCtrl.List)
		fav.POST("/:id", favCtrl.Add)
		fav.DELETE("/:id", favCtrl.Remove)
	}

	// Live tracking (token มากับ query ได้)
	r.GET("/ws/track/:orderId", middlewares.WSAuthMiddleware(cfg.JWTSecret), hub.ServeTracking)

	// Partner Restaurant (owner/admin)
	partnerRest := r.Group("/partner/restaurant", middlewares.AuthMiddleware(cfg.JWTSecret, "owner", "admin"))
	{
		partnerRest.GET("/orders", ownerCtrl.Orders) // ?restaurantId=
		partnerRest.PATCH("/orders/:id/confirm", ownerCtrl.Confirm)
		partnerRest.PATCH("/orders/:id/preparing", ownerCtrl.StartPreparing)
		partnerRest.PATCH("/orders/:id/ready", ownerCtrl.ReadyForPickup)
		partnerRest.PATCH("/orders/:id/cancel", ownerCtrl.Cancel)
	}

	// Partner Driver (rider/admin)
	partnerDriver := r.Group("/partner/driver", middlewares.AuthMiddleware(cfg.JWTSecret, "rider", "admin"))
	{
		partnerDriver.POST("/location", driverCtrl.ReportLocation)
		partnerDriver.PATCH("/deliveries/:id/status", driverCtrl.UpdateDeliveryStatus)
		partnerDriver.DELETE("/shift", driverCtrl.EndShift)
	}

	// Admin (admin only)
	admin := r.Group("/admin", middlewares.AuthMiddleware(cfg.JWTSecret, "admin"))
	{
		admin.GET("/users", adminCtrl.Users)
		admin.GET("/payments", adminCtrl.ListPayments)
		admin.GET("/restaurants", adminCtrl.ListRestaurants)
	}

	return func() {
		trackingSvc.Shutdown()
		driverSvc.Shutdown()
	}
}
