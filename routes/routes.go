package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/marrsDev/DS-CBNode/cart"
	"github.com/marrsDev/DS-CBNode/pricing"
)

// SetupRoutes is the single entry-point that wires up the public API and
// admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, store *pricing.Store) {
	pricingService := pricing.NewService(store)
	cartService := cart.NewService(db, pricingService)

	// Public API (cart identity via signed cookie)
	SetupCartRoutes(r, cartService)
	SetupCalculationRoutes(r, pricingService)

	// Admin routes (API-key protected)
	SetupAdminRoutes(r, store)
}
