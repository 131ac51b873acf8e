package cart

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marrsDev/DS-CBNode/models"
	"github.com/marrsDev/DS-CBNode/pricing"
)

// Service owns the persisted cart line items. Every mutation is a single
// atomic write against one row (or one filtered update set); no operation
// needs a cross-row transaction.
type Service struct {
	db      *gorm.DB
	pricing *pricing.Service
}

func NewService(db *gorm.DB, pricingService *pricing.Service) *Service {
	return &Service{db: db, pricing: pricingService}
}

// AddInput is one window configuration to add to a cart.
type AddInput struct {
	WindowType     string
	Height         float64
	Width          float64
	GlassType      string
	GlassThickness string
	ProfileColour  string
	Quantity       int
}

func (in AddInput) validate() error {
	if in.WindowType == "" {
		return &models.ValidationError{Field: "windowType", Message: "is required"}
	}
	if in.Height == 0 || in.Width == 0 {
		return &models.ValidationError{Field: "measurements", Message: "height and width are required"}
	}
	if in.GlassType == "" {
		return &models.ValidationError{Field: "glassType", Message: "is required"}
	}
	if in.GlassThickness == "" {
		return &models.ValidationError{Field: "glassThickness", Message: "is required"}
	}
	if in.ProfileColour == "" {
		return &models.ValidationError{Field: "profileColour", Message: "is required"}
	}
	if in.Quantity < 0 {
		return &models.ValidationError{Field: "quantity", Message: "must not be negative"}
	}
	return nil
}

// Add prices the configuration and upserts it into the cart. When an active
// item with the identical configuration exists, its quantity is incremented
// and its unit price and breakdown are overwritten with the freshly computed
// values — including for previously added quantity. That price overwrite is
// deliberate: the stored price always reflects the pricing tables as of the
// most recent add, matching the store's no-isolation contract.
func (s *Service) Add(cartID string, in AddInput) (Summary, error) {
	if err := in.validate(); err != nil {
		return Summary{}, err
	}
	quantity := in.Quantity
	if quantity == 0 {
		quantity = 1
	}

	quote, err := s.pricing.PriceConfiguration(
		in.WindowType, in.Height, in.Width,
		in.GlassType, in.GlassThickness, in.ProfileColour,
	)
	if err != nil {
		return Summary{}, err
	}

	item := models.WindowItem{
		CartID:         cartID,
		Type:           in.WindowType,
		Height:         in.Height,
		Width:          in.Width,
		GlassType:      in.GlassType,
		GlassThickness: in.GlassThickness,
		ProfileColour:  in.ProfileColour,
		Quantity:       quantity,
		UnitPrice:      quote.Total,
		Components:     toJSONMap(quote.Components),
		Active:         true,
		AddedAt:        time.Now(),
	}

	// Single upsert against the partial unique index over the active
	// configuration tuple: concurrent adds of the same new configuration
	// merge instead of producing duplicate rows.
	err = s.db.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "cart_id"}, {Name: "type"}, {Name: "height"}, {Name: "width"},
			{Name: "glass_type"}, {Name: "glass_thickness"}, {Name: "profile_colour"},
		},
		TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "active"}}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"quantity":   gorm.Expr("window_items.quantity + excluded.quantity"),
			"unit_price": gorm.Expr("excluded.unit_price"),
			"components": gorm.Expr("excluded.components"),
		}),
	}).Create(&item).Error
	if err != nil {
		return Summary{}, err
	}

	return s.Summary(cartID)
}

// AdjustQuantity shifts an active item's quantity by delta, floored at 1.
// The item is re-priced against the current pricing tables on every call,
// so a zero delta still refreshes the stored price.
func (s *Service) AdjustQuantity(cartID string, itemID uint, delta int) (Summary, error) {
	var item models.WindowItem
	err := s.db.Where("id = ? AND cart_id = ? AND active", itemID, cartID).First(&item).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return Summary{}, models.ErrCartItemNotFound
		}
		return Summary{}, err
	}

	quantity := item.Quantity + delta
	if quantity < 1 {
		quantity = 1
	}

	quote, err := s.pricing.PriceConfiguration(
		item.Type, item.Height, item.Width,
		item.GlassType, item.GlassThickness, item.ProfileColour,
	)
	if err != nil {
		return Summary{}, err
	}

	err = s.db.Model(&item).Updates(map[string]interface{}{
		"quantity":   quantity,
		"unit_price": quote.Total,
		"components": toJSONMap(quote.Components),
	}).Error
	if err != nil {
		return Summary{}, err
	}

	return s.Summary(cartID)
}

// Remove soft-deletes an active item. The row is kept; only the active flag
// flips, and it never flips back.
func (s *Service) Remove(cartID string, itemID uint) (Summary, error) {
	result := s.db.Model(&models.WindowItem{}).
		Where("id = ? AND cart_id = ? AND active", itemID, cartID).
		Update("active", false)
	if result.Error != nil {
		return Summary{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Summary{}, models.ErrCartItemNotFound
	}

	return s.Summary(cartID)
}

// Clear soft-deletes every active item in the cart. Clearing an empty cart
// is a no-op, not an error.
func (s *Service) Clear(cartID string) error {
	return s.db.Model(&models.WindowItem{}).
		Where("cart_id = ? AND active", cartID).
		Update("active", false).Error
}

// ItemView is the cart line item as returned to callers, with the display
// metadata for its window type attached.
type ItemView struct {
	ID             uint               `json:"id"`
	Type           string             `json:"type"`
	TypeLabel      string             `json:"typeLabel"`
	TypeCode       string             `json:"typeId"`
	Height         float64            `json:"height"`
	Width          float64            `json:"width"`
	GlassType      string             `json:"glassType"`
	GlassThickness string             `json:"glassThickness"`
	ProfileColour  string             `json:"profileColour"`
	Quantity       int                `json:"quantity"`
	UnitPrice      float64            `json:"unitPrice"`
	Components     map[string]float64 `json:"components"`
	AddedAt        time.Time          `json:"addedAt"`
}

// Summary is a pure fold over the active items of a cart. It is recomputed
// on every read and never stored.
type Summary struct {
	Items           []ItemView         `json:"items"`
	GrandTotal      float64            `json:"grandTotal"`
	TotalItems      int                `json:"totalItems"`
	ComponentTotals map[string]float64 `json:"componentTotals"`
}

// Summary folds the cart's active items into totals. Component totals are a
// union across differently-shaped breakdowns: a key only some window types
// produce still aggregates over the items that have it.
func (s *Service) Summary(cartID string) (Summary, error) {
	var items []models.WindowItem
	err := s.db.Where("cart_id = ? AND active", cartID).
		Order("added_at DESC").
		Find(&items).Error
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Items:           make([]ItemView, 0, len(items)),
		ComponentTotals: make(map[string]float64),
	}
	for _, item := range items {
		components := fromJSONMap(item.Components)
		summary.GrandTotal += item.UnitPrice * float64(item.Quantity)
		summary.TotalItems += item.Quantity
		for name, cost := range components {
			summary.ComponentTotals[name] += cost * float64(item.Quantity)
		}

		summary.Items = append(summary.Items, ItemView{
			ID:             item.ID,
			Type:           item.Type,
			TypeLabel:      models.WindowTypeLabels[item.Type],
			TypeCode:       models.WindowTypeCodes[item.Type],
			Height:         item.Height,
			Width:          item.Width,
			GlassType:      item.GlassType,
			GlassThickness: item.GlassThickness,
			ProfileColour:  item.ProfileColour,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Components:     components,
			AddedAt:        item.AddedAt,
		})
	}
	return summary, nil
}

func toJSONMap(components map[string]float64) datatypes.JSONMap {
	out := make(datatypes.JSONMap, len(components))
	for name, cost := range components {
		out[name] = cost
	}
	return out
}

// fromJSONMap converts a stored component column back to costs. Values read
// through the database arrive as json.Number, values that never left memory
// are still float64.
func fromJSONMap(raw datatypes.JSONMap) map[string]float64 {
	out := make(map[string]float64, len(raw))
	for name, value := range raw {
		switch v := value.(type) {
		case float64:
			out[name] = v
		case json.Number:
			if f, err := v.Float64(); err == nil {
				out[name] = f
			}
		case int:
			out[name] = float64(v)
		}
	}
	return out
}
