package previewControllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marrsDev/DS-CBNode/pricing"
)

// GET /api/window-preview?windowType=sliding&config=2-noPartition
//
// Display affordance only: an unknown combination answers 404 but still
// carries the fallback image so the client always has something to show.
func GetWindowPreview(c *gin.Context) {
	windowType := c.Query("windowType")
	config := c.Query("config")

	if windowType == "" || config == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing windowType or config parameters"})
		return
	}

	imageURL, typeCode, ok := pricing.LookupPreview(windowType, config)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":    "Preview image not found for the given configuration",
			"imageUrl": imageURL,
			"typeId":   "",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imageUrl": imageURL,
		"typeId":   typeCode,
	})
}
