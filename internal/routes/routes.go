package routes

import (
	"altura_store/internal/handlers"
	"altura_store/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *handlers.API, rateLimit gin.HandlerFunc) {
	r.Use(cors.Default())

	api := r.Group("/api")
	api.Use(middleware.BodyLimit(), middleware.NoStore())
	if rateLimit != nil {
		api.Use(rateLimit)
	}

	api.GET("/health", a.Health)
	api.GET("/products", a.Products)
	api.POST("/checkout/stripe", a.CheckoutStripe)
	api.POST("/checkout/paypal", a.CheckoutPayPal)
	api.POST("/order/confirm", a.ConfirmOrder)
	api.POST("/whatsapp/send", a.SendWhatsApp)

	// Everything else is the generated storefront.
	r.NoRoute(a.ServeStatic)
}
