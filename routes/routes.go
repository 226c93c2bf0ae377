package routes

import (
	"net/http"
	"time"

	"handyhub/handlers"
	"handyhub/middleware"
	"handyhub/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterCatalogRoutes registers the read-only service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/services")
	{
		api.GET("", hb.ListServicesHandler)
		api.GET("/:id", hb.GetServiceHandler)
	}
}

// RegisterCartRoutes registers the shopping cart endpoints.
func RegisterCartRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/cart")
	{
		api.GET("", hb.GetCartHandler)
		api.POST("/items", hb.AddToCartHandler)
		api.PATCH("/items", hb.ChangeQuantityHandler)
		api.DELETE("/services/:serviceId", hb.RemoveServiceHandler)
	}
}

// RegisterCheckoutRoutes sets up the endpoints for the checkout workflow.
func RegisterCheckoutRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	checkoutGroup := r.Group("/api/checkout")
	{
		checkoutGroup.POST("/start", hb.StartCheckoutHandler)
		checkoutGroup.GET("", hb.GetCheckoutHandler)
		checkoutGroup.POST("/datetime", hb.SubmitDateTimeHandler)
		checkoutGroup.POST("/address", hb.SubmitAddressHandler)
		checkoutGroup.POST("/back", hb.CheckoutBackHandler)
		checkoutGroup.POST("/confirm", hb.ConfirmBookingHandler)
	}
}

// RegisterBookingRoutes registers the booking ledger endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookingsHandler)
		api.GET("/:id", hb.GetBookingHandler)
		api.POST("/:id/cancel", hb.CancelBookingHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm HandyHub",
			"stores":  utils.GetHealthStatus(),
		})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Client-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Client-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.ClientKeyMiddleware())

	RegisterCatalogRoutes(r, hb)
	RegisterCartRoutes(r, hb)
	RegisterCheckoutRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterHealthRoute(r)
}
