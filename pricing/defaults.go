package pricing

import "github.com/marrsDev/DS-CBNode/models"

// Factory-default pricing tables, used to seed the database the first time
// the service boots. Prices are per square metre of glass. The table is
// deliberately sparse: combinations the supplier does not stock have no
// entry and cannot be quoted.
var defaultGlassPrices = map[string]map[string]float64{
	"clear": {
		"4mm": 950, "5mm": 1150, "6mm": 1400, "8mm": 2100, "10mm": 2900,
		"6mmTuff": 3200, "8mmTuff": 4100, "10mmTuff": 5200,
	},
	"bronze": {
		"4mm": 1250, "5mm": 1450, "6mm": 1750, "8mm": 2500,
		"6mmTuff": 3600, "8mmTuff": 4500,
	},
	"grey": {
		"4mm": 1250, "5mm": 1450, "6mm": 1750, "8mm": 2500,
		"6mmTuff": 3600, "8mmTuff": 4500,
	},
	"green": {
		"5mm": 1500, "6mm": 1800, "8mm": 2600,
		"6mmTuff": 3700,
	},
	"blue": {
		"5mm": 1500, "6mm": 1800, "8mm": 2600,
		"6mmTuff": 3700,
	},
	"obscure": {
		"4mm": 1100, "5mm": 1300, "6mm": 1600,
	},
	"nashiji": {
		"4mm": 1200, "5mm": 1400,
	},
}

var defaultProfileSurcharges = map[string]float64{
	"white":     0,
	"silver":    0,
	"brown":     650,
	"black":     800,
	"grey":      650,
	"champagne": 850,
}

func defaultGlassPriceRows() []models.GlassPrice {
	var rows []models.GlassPrice
	for _, glassType := range models.GlassTypes {
		for _, thickness := range models.GlassThicknesses {
			if price, ok := defaultGlassPrices[glassType][thickness]; ok {
				rows = append(rows, models.GlassPrice{
					GlassType: glassType,
					Thickness: thickness,
					Price:     price,
				})
			}
		}
	}
	return rows
}

func defaultProfileOptionRows() []models.ProfileOption {
	var rows []models.ProfileOption
	for _, colour := range models.ProfileColours {
		rows = append(rows, models.ProfileOption{
			Colour:    colour,
			Surcharge: defaultProfileSurcharges[colour],
		})
	}
	return rows
}
