package routes

import (
	"github.com/gin-gonic/gin"

	calculationControllers "github.com/marrsDev/DS-CBNode/controllers/calculation"
	previewControllers "github.com/marrsDev/DS-CBNode/controllers/preview"
	"github.com/marrsDev/DS-CBNode/pricing"
)

// SetupCalculationRoutes registers the standalone pricing and preview
// endpoints. No cart identity is needed to price a configuration.
func SetupCalculationRoutes(r *gin.Engine, pricingService *pricing.Service) {
	r.POST("/api/calculate", calculationControllers.CalculateWindow(pricingService))
	r.GET("/api/window-preview", previewControllers.GetWindowPreview)
}
