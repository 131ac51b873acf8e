package models

import (
	"time"

	"gorm.io/datatypes"
)

// WindowItem is one configured window held in a cart. Items are never hard
// deleted: removal and cart clearing flip Active to false, and the row stays
// behind for history. An inactive item is terminal — re-adding the same
// configuration creates a fresh row.
//
// The partial unique index over the configuration tuple (active rows only)
// is what makes Add an atomic upsert: two concurrent adds of the same new
// configuration converge on a single merged row instead of near-duplicates.
type WindowItem struct {
	ID             uint              `gorm:"primaryKey;autoIncrement" json:"id"`
	CartID         string            `gorm:"not null;index:idx_window_items_cart_active;uniqueIndex:idx_window_items_active_config,where:active" json:"-"`
	Type           string            `gorm:"not null;uniqueIndex:idx_window_items_active_config" json:"type"`
	Height         float64           `gorm:"not null;uniqueIndex:idx_window_items_active_config" json:"height"`
	Width          float64           `gorm:"not null;uniqueIndex:idx_window_items_active_config" json:"width"`
	GlassType      string            `gorm:"not null;uniqueIndex:idx_window_items_active_config" json:"glassType"`
	GlassThickness string            `gorm:"not null;uniqueIndex:idx_window_items_active_config" json:"glassThickness"`
	ProfileColour  string            `gorm:"not null;uniqueIndex:idx_window_items_active_config" json:"profileColour"`
	Quantity       int               `gorm:"not null;default:1" json:"quantity"`
	UnitPrice      float64           `gorm:"not null" json:"unitPrice"`
	Components     datatypes.JSONMap `gorm:"type:jsonb" json:"components"`
	Active         bool              `gorm:"not null;default:true;index:idx_window_items_cart_active" json:"-"`
	AddedAt        time.Time         `json:"addedAt"`
}

func (WindowItem) TableName() string {
	return "window_items"
}
