package calculationControllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marrsDev/DS-CBNode/models"
	"github.com/marrsDev/DS-CBNode/pricing"
)

type CalculateInput struct {
	Height         float64 `json:"height" binding:"required"`
	Width          float64 `json:"width" binding:"required"`
	WindowType     string  `json:"windowType"`
	NoOfPanels     string  `json:"noOfPanels"`
	FixedPartition string  `json:"fixedPartition"`
	GlassType      string  `json:"glassType" binding:"required"`
	GlassThickness string  `json:"glassThickness" binding:"required"`
	ProfileColour  string  `json:"profileColour" binding:"required"`
}

// POST /api/calculate
//
// Prices a configuration without touching any cart. The window type can be
// given directly, or as the configurator's panel count + partition pair.
func CalculateWindow(svc *pricing.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input CalculateInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		windowType := input.WindowType
		if windowType == "" {
			resolved, ok := pricing.ResolveWindowType(input.NoOfPanels, input.FixedPartition)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown panel and partition combination"})
				return
			}
			windowType = resolved
		}

		quote, err := svc.PriceConfiguration(
			windowType, input.Height, input.Width,
			input.GlassType, input.GlassThickness, input.ProfileColour,
		)
		if err != nil {
			respondPricingError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":      true,
			"total":        quote.Total,
			"components":   quote.Components,
			"previewImage": quote.PreviewImage,
			"typeId":       quote.TypeCode,
		})
	}
}

func respondPricingError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var configErr *models.ConfigError
	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.As(err, &configErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Pricing configuration incomplete: " + configErr.Key})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Calculation failed"})
	}
}
