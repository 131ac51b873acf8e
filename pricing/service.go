package pricing

import "github.com/marrsDev/DS-CBNode/models"

// Service composes a window type calculator with the live pricing store to
// produce a fully priced breakdown for one configuration.
type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Quote is the priced result for a single window configuration. The sum of
// the Components entries equals Total.
type Quote struct {
	WindowType   string             `json:"windowType"`
	TypeLabel    string             `json:"typeLabel"`
	TypeCode     string             `json:"typeId"`
	Total        float64            `json:"total"`
	Components   map[string]float64 `json:"components"`
	PreviewImage string             `json:"previewImage"`
}

// PriceConfiguration prices one window configuration against the current
// pricing tables. Glass prices are read at call time with no isolation: a
// concurrent table update between two calls yields two different quotes for
// the same configuration.
func (s *Service) PriceConfiguration(windowType string, height, width float64, glassType, glassThickness, profileColour string) (Quote, error) {
	calculator, ok := calculatorFor(windowType)
	if !ok {
		return Quote{}, &models.ValidationError{Field: "windowType", Message: "invalid window type"}
	}

	result, err := calculator.Calculate(height, width)
	if err != nil {
		return Quote{}, err
	}

	glassUnitPrice, err := s.store.GetGlassPrice(glassType, glassThickness)
	if err != nil {
		return Quote{}, err
	}
	glassCost := result.GlassArea() * glassUnitPrice

	surcharge, err := s.store.ProfileAdjustment(profileColour)
	if err != nil {
		return Quote{}, err
	}

	structural := result.StructuralTotal()
	installation := result.InstallationFee()
	total := structural + installation + glassCost + surcharge

	// The calculator's glass entry holds area; replace it with the priced
	// value so nothing is double-counted.
	components := result.Components()
	components["glass"] = glassCost
	components["installation"] = installation
	components["profileFinish"] = surcharge

	return Quote{
		WindowType:   windowType,
		TypeLabel:    models.WindowTypeLabels[windowType],
		TypeCode:     models.WindowTypeCodes[windowType],
		Total:        total,
		Components:   components,
		PreviewImage: PreviewImagePath(windowType),
	}, nil
}
