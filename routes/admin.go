package routes

import (
	"github.com/gin-gonic/gin"

	configControllers "github.com/marrsDev/DS-CBNode/controllers/config"
	"github.com/marrsDev/DS-CBNode/middleware"
	"github.com/marrsDev/DS-CBNode/pricing"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-Key
// middleware.
func SetupAdminRoutes(r *gin.Engine, store *pricing.Store) {
	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		configAdmin := adminGroup.Group("/config")
		{
			configAdmin.GET("", configControllers.GetConfig(store))
			configAdmin.POST("/profile", configControllers.UpdateProfileConfig(store))
			configAdmin.POST("/glass", configControllers.SetGlassPrice(store))
			configAdmin.GET("/glass-price", configControllers.GetGlassPrice(store))
			configAdmin.GET("/ws", configControllers.ConfigWebSocketHandler)
		}
	}
}
