package pricing

import (
	"log"
	"sync"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marrsDev/DS-CBNode/models"
)

// Store holds the live pricing tables: glass price per square metre keyed by
// (type, thickness), and the flat profile colour surcharge keyed by colour.
//
// The store is a single process-wide mutable table, not a ledger. Writes
// take effect immediately for every subsequent read, including reads from
// computations already in flight: last write wins, and there is no snapshot
// isolation. Callers that need the price at a moment in time must read it at
// that moment and accept that it may change afterwards. Do not "fix" this
// into snapshot semantics — recomputation on cart adjustments depends on
// reads observing the current table.
type Store struct {
	db *gorm.DB

	mu          sync.RWMutex
	glassPrices map[string]map[string]float64
	surcharges  map[string]float64
}

func NewStore(db *gorm.DB) *Store {
	return &Store{
		db:          db,
		glassPrices: make(map[string]map[string]float64),
		surcharges:  make(map[string]float64),
	}
}

// Load seeds the pricing tables with factory defaults when empty, then pulls
// every row into memory. Called once at boot before the store is shared.
func (s *Store) Load() error {
	var glassCount int64
	if err := s.db.Model(&models.GlassPrice{}).Count(&glassCount).Error; err != nil {
		return err
	}
	if glassCount == 0 {
		rows := defaultGlassPriceRows()
		if err := s.db.Create(&rows).Error; err != nil {
			return err
		}
		log.Printf("seeded %d default glass prices", len(rows))
	}

	var profileCount int64
	if err := s.db.Model(&models.ProfileOption{}).Count(&profileCount).Error; err != nil {
		return err
	}
	if profileCount == 0 {
		rows := defaultProfileOptionRows()
		if err := s.db.Create(&rows).Error; err != nil {
			return err
		}
		log.Printf("seeded %d default profile options", len(rows))
	}

	var glassRows []models.GlassPrice
	if err := s.db.Find(&glassRows).Error; err != nil {
		return err
	}
	var profileRows []models.ProfileOption
	if err := s.db.Find(&profileRows).Error; err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.glassPrices = make(map[string]map[string]float64)
	for _, row := range glassRows {
		if s.glassPrices[row.GlassType] == nil {
			s.glassPrices[row.GlassType] = make(map[string]float64)
		}
		s.glassPrices[row.GlassType][row.Thickness] = row.Price
	}
	s.surcharges = make(map[string]float64, len(profileRows))
	for _, row := range profileRows {
		s.surcharges[row.Colour] = row.Surcharge
	}
	return nil
}

// GetGlassPrice returns the current price per square metre for the pair.
// Unknown enumeration values are a validation failure; a pair the
// enumerations allow but the table lacks is a configuration problem.
func (s *Store) GetGlassPrice(glassType, thickness string) (float64, error) {
	if !models.IsGlassType(glassType) {
		return 0, &models.ValidationError{Field: "glassType", Message: "unknown glass type"}
	}
	if !models.IsGlassThickness(thickness) {
		return 0, &models.ValidationError{Field: "glassThickness", Message: "unknown glass thickness"}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	price, ok := s.glassPrices[glassType][thickness]
	if !ok {
		return 0, &models.ConfigError{Key: glassType + "/" + thickness}
	}
	return price, nil
}

// ProfileAdjustment returns the flat surcharge for a profile colour.
func (s *Store) ProfileAdjustment(colour string) (float64, error) {
	if !models.IsProfileColour(colour) {
		return 0, &models.ValidationError{Field: "profileColour", Message: "unknown profile colour"}
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	surcharge, ok := s.surcharges[colour]
	if !ok {
		return 0, &models.ConfigError{Key: "profile/" + colour}
	}
	return surcharge, nil
}

// SetGlassPrice updates the price for a (type, thickness) pair, writing
// through to the database before the in-memory table so a successful call is
// durable. Pairs absent from the table so far are created.
func (s *Store) SetGlassPrice(glassType, thickness string, price float64) (Snapshot, error) {
	if !models.IsGlassType(glassType) {
		return Snapshot{}, &models.ValidationError{Field: "glassType", Message: "unknown glass type"}
	}
	if !models.IsGlassThickness(thickness) {
		return Snapshot{}, &models.ValidationError{Field: "glassThickness", Message: "unknown glass thickness"}
	}
	if price <= 0 {
		return Snapshot{}, &models.ValidationError{Field: "price", Message: "must be positive"}
	}

	row := models.GlassPrice{GlassType: glassType, Thickness: thickness, Price: price}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "glass_type"}, {Name: "thickness"}},
		DoUpdates: clause.AssignmentColumns([]string{"price", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	if s.glassPrices[glassType] == nil {
		s.glassPrices[glassType] = make(map[string]float64)
	}
	s.glassPrices[glassType][thickness] = price
	s.mu.Unlock()

	return s.Snapshot(), nil
}

// SetProfileColour updates the surcharge for a profile colour.
func (s *Store) SetProfileColour(colour string, surcharge float64) (Snapshot, error) {
	if !models.IsProfileColour(colour) {
		return Snapshot{}, &models.ValidationError{Field: "colour", Message: "unknown profile colour"}
	}
	if surcharge < 0 {
		return Snapshot{}, &models.ValidationError{Field: "surcharge", Message: "must not be negative"}
	}

	row := models.ProfileOption{Colour: colour, Surcharge: surcharge}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "colour"}},
		DoUpdates: clause.AssignmentColumns([]string{"surcharge", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return Snapshot{}, err
	}

	s.mu.Lock()
	s.surcharges[colour] = surcharge
	s.mu.Unlock()

	return s.Snapshot(), nil
}

// Snapshot is a read-only copy of the pricing tables for reporting. It is a
// copy taken at call time, nothing more — it does not freeze prices for any
// later computation.
type Snapshot struct {
	GlassPrices       map[string]map[string]float64 `json:"glassPrices"`
	ProfileSurcharges map[string]float64            `json:"profileSurcharges"`
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		GlassPrices:       make(map[string]map[string]float64, len(s.glassPrices)),
		ProfileSurcharges: make(map[string]float64, len(s.surcharges)),
	}
	for glassType, byThickness := range s.glassPrices {
		inner := make(map[string]float64, len(byThickness))
		for thickness, price := range byThickness {
			inner[thickness] = price
		}
		snap.GlassPrices[glassType] = inner
	}
	for colour, surcharge := range s.surcharges {
		snap.ProfileSurcharges[colour] = surcharge
	}
	return snap
}
