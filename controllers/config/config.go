package configControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marrsDev/DS-CBNode/models"
	"github.com/marrsDev/DS-CBNode/pricing"
)

type ProfileConfigInput struct {
	Color     string  `json:"color" binding:"required"`
	Surcharge float64 `json:"surcharge"`
}

type GlassPriceInput struct {
	Type      string  `json:"type" binding:"required"`
	Thickness string  `json:"thickness" binding:"required"`
	Price     float64 `json:"price" binding:"required"`
}

// GET /admin/config
func GetConfig(store *pricing.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, store.Snapshot())
	}
}

// POST /admin/config/profile
func UpdateProfileConfig(store *pricing.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProfileConfigInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		snapshot, err := store.SetProfileColour(input.Color, input.Surcharge)
		if err != nil {
			respondConfigError(c, err)
			return
		}

		broadcastConfig(snapshot)
		c.JSON(http.StatusOK, gin.H{
			"message": "Profile configuration updated successfully",
			"config":  snapshot,
		})
	}
}

// POST /admin/config/glass
func SetGlassPrice(store *pricing.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input GlassPriceInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		snapshot, err := store.SetGlassPrice(input.Type, input.Thickness, input.Price)
		if err != nil {
			respondConfigError(c, err)
			return
		}

		broadcastConfig(snapshot)
		c.JSON(http.StatusOK, gin.H{
			"message": "Glass price updated successfully",
			"config":  snapshot,
		})
	}
}

// GET /admin/config/glass-price?type=clear&thickness=5mm
func GetGlassPrice(store *pricing.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		glassType := c.Query("type")
		thickness := c.Query("thickness")
		if glassType == "" || thickness == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Both type and thickness parameters are required"})
			return
		}

		price, err := store.GetGlassPrice(glassType, thickness)
		if err != nil {
			respondConfigError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"glassType": glassType,
			"thickness": thickness,
			"price":     price,
		})
	}
}

func respondConfigError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var configErr *models.ConfigError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.As(err, &configErr):
		c.JSON(http.StatusNotFound, gin.H{"error": "No price configured for " + configErr.Key})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update configuration"})
	}
}
