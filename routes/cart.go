package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/marrsDev/DS-CBNode/cart"
	cartControllers "github.com/marrsDev/DS-CBNode/controllers/cart"
	reportControllers "github.com/marrsDev/DS-CBNode/controllers/report"
	"github.com/marrsDev/DS-CBNode/middleware"
)

// SetupCartRoutes registers the "/api/cart" endpoints. Every route runs
// behind the cart session middleware so a cart id is always present.
func SetupCartRoutes(r *gin.Engine, cartService *cart.Service) {
	cartGroup := r.Group("/api/cart")
	cartGroup.Use(middleware.CartSession)
	{
		cartGroup.GET("", cartControllers.GetCart(cartService))
		cartGroup.POST("", cartControllers.AddToCart(cartService))
		cartGroup.PATCH("/:itemId/quantity", cartControllers.UpdateQuantity(cartService))
		cartGroup.DELETE("/:itemId", cartControllers.RemoveItem(cartService))
		cartGroup.DELETE("", cartControllers.ClearCart(cartService))
		cartGroup.POST("/new", cartControllers.NewCart(cartService))
		cartGroup.GET("/export", reportControllers.ExportCartToExcel(cartService))
	}
}
