package models

import "time"

// GlassPrice is one row of the glass pricing table: price per square metre
// for a (type, thickness) combination. Not every combination exists; a
// missing row means the combination cannot be quoted.
type GlassPrice struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	GlassType string  `gorm:"not null;uniqueIndex:idx_glass_price_key" json:"glassType"`
	Thickness string  `gorm:"not null;uniqueIndex:idx_glass_price_key" json:"thickness"`
	Price     float64 `gorm:"not null" json:"price"`
	UpdatedAt time.Time
}

// ProfileOption is one row of the profile colour table: a flat surcharge
// applied per window for powder-coating the aluminium profile.
type ProfileOption struct {
	ID        uint    `gorm:"primaryKey;autoIncrement" json:"id"`
	Colour    string  `gorm:"not null;uniqueIndex" json:"colour"`
	Surcharge float64 `gorm:"not null" json:"surcharge"`
	UpdatedAt time.Time
}
