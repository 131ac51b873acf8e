package models

// WindowTypeLabels maps every supported window type key to its display label.
// The key set is closed: a key missing here is not a valid window type.
var WindowTypeLabels = map[string]string{
	"type1":  "Sliding window",
	"type2":  "Sliding window",
	"type3":  "Sliding window",
	"type4":  "Sliding window",
	"type5":  "Sliding window",
	"type6":  "Sliding window",
	"type7":  "Sliding window",
	"type8":  "Sliding window",
	"type9":  "Sliding window",
	"type10": "Sliding window",
	"type11": "Sliding window",
	"type12": "Sliding window",
	"type13": "Top-Hung window",
	"type14": "Top-Hung window",
	"type15": "Projecting - Custom Light Window",
	"type16": "Centre Hung window",
	"type17": "Sliding Awning Top",
	"type18": "Folding - 4 Panels",
	"type19": "Folding - 3 Panels",
}

// WindowTypeCodes maps window type keys to the short codes printed on quotes.
var WindowTypeCodes = map[string]string{
	"type1":  "#sw001",
	"type2":  "#sw002",
	"type3":  "#sw003",
	"type4":  "#sw004",
	"type5":  "#sw005",
	"type6":  "#sw006",
	"type7":  "#sw007",
	"type8":  "#sw008",
	"type9":  "#sw009",
	"type10": "#sw010",
	"type11": "#sw011",
	"type12": "#sw012",
	"type13": "#th013",
	"type14": "#th014",
	"type15": "#cw015",
	"type16": "#ch016",
	"type17": "#sw017",
	"type18": "#fd018",
	"type19": "#fd019",
}

var GlassTypes = []string{"clear", "bronze", "grey", "green", "blue", "obscure", "nashiji"}

var GlassThicknesses = []string{"4mm", "5mm", "6mm", "8mm", "10mm", "6mmTuff", "8mmTuff", "10mmTuff"}

var ProfileColours = []string{"white", "silver", "brown", "black", "grey", "champagne"}

func IsWindowType(key string) bool {
	_, ok := WindowTypeLabels[key]
	return ok
}

func IsGlassType(v string) bool { return contains(GlassTypes, v) }

func IsGlassThickness(v string) bool { return contains(GlassThicknesses, v) }

func IsProfileColour(v string) bool { return contains(ProfileColours, v) }

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
