package cartControllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/marrsDev/DS-CBNode/cart"
	"github.com/marrsDev/DS-CBNode/middleware"
	"github.com/marrsDev/DS-CBNode/models"
)

type MeasurementsInput struct {
	Height float64 `json:"height"`
	Width  float64 `json:"width"`
}

type AddItemInput struct {
	WindowType     string            `json:"windowType"`
	Measurements   MeasurementsInput `json:"measurements"`
	GlassType      string            `json:"glassType"`
	GlassThickness string            `json:"glassThickness"`
	ProfileColour  string            `json:"profileColour"`
	Quantity       int               `json:"quantity"`
}

// Delta is a pointer so an explicit zero still binds: delta=0 is a valid
// request that only refreshes the item's price.
type AdjustQuantityInput struct {
	Delta *int `json:"delta" binding:"required"`
}

// GET /api/cart
func GetCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		summary, err := svc.Summary(c.GetString(middleware.CartIDKey))
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// POST /api/cart
func AddToCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input AddItemInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		summary, err := svc.Add(c.GetString(middleware.CartIDKey), cart.AddInput{
			WindowType:     input.WindowType,
			Height:         input.Measurements.Height,
			Width:          input.Measurements.Width,
			GlassType:      input.GlassType,
			GlassThickness: input.GlassThickness,
			ProfileColour:  input.ProfileColour,
			Quantity:       input.Quantity,
		})
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusCreated, summary)
	}
}

// PATCH /api/cart/:itemId/quantity
func UpdateQuantity(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := parseItemID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		var input AdjustQuantityInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Delta value is required"})
			return
		}

		summary, err := svc.AdjustQuantity(c.GetString(middleware.CartIDKey), itemID, *input.Delta)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// DELETE /api/cart/:itemId
func RemoveItem(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		itemID, err := parseItemID(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid item id"})
			return
		}

		summary, err := svc.Remove(c.GetString(middleware.CartIDKey), itemID)
		if err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, summary)
	}
}

// DELETE /api/cart
func ClearCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.GetString(middleware.CartIDKey)); err != nil {
			respondCartError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Cart cleared successfully"})
	}
}

// POST /api/cart/new
//
// Clears the current cart and rotates the cart identity cookie.
func NewCart(svc *cart.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Clear(c.GetString(middleware.CartIDKey)); err != nil {
			respondCartError(c, err)
			return
		}

		newCartID, err := middleware.IssueCartCookie(c)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create new cart"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "New cart created", "cartId": newCartID})
	}
}

func parseItemID(c *gin.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	return uint(id), err
}

func respondCartError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	var configErr *models.ConfigError
	switch {
	case errors.Is(err, models.ErrCartItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Cart item not found"})
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message, "field": validationErr.Field})
	case errors.As(err, &configErr):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Pricing configuration incomplete: " + configErr.Key})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Cart operation failed"})
	}
}
