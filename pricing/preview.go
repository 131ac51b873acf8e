package pricing

// Preview image lookups are a display affordance only. They never influence
// a price, and an unresolved combination falls back to the default image
// instead of failing the request.

// previewMap resolves a (page, panel/partition selection) pair to a preview
// image key.
var previewMap = map[string]map[string]string{
	"sliding": {
		"2-noPartition":      "type-1",
		"2-fixedTop":         "type-2",
		"2-fixedBottom":      "type-2",
		"2-doubleFixed":      "type-3",
		"3-noPartition":      "type-4",
		"3-fixedTop":         "type-5",
		"3-fixedBottom":      "type-5",
		"3-doubleFixed":      "type-6",
		"4-noPartition":      "type-7",
		"4-fixedTop":         "type-8",
		"4-fixedBottom":      "type-8",
		"4-doubleFixed":      "type-9",
		"2-openAbleTopFxBtm": "type-10",
		"3-openAbleTopFxBtm": "type-11",
		"4-openAbleTopFxBtm": "type-12",
		"2-openAbleTop":      "type-17",
	},
	"top-hung": {
		"singlePanel": "type-13",
		"doublePanel": "type-14",
		"customLight": "type-15",
		"centerHung":  "type-16",
	},
	"folding": {
		"folding4": "type-18",
		"folding3": "type-19",
	},
}

// typeCodes maps preview image keys to the short codes shown next to the
// preview.
var typeCodes = map[string]string{
	"type-1":  "#sw001",
	"type-2":  "#sw002",
	"type-3":  "#sw003",
	"type-4":  "#sw004",
	"type-5":  "#sw005",
	"type-6":  "#sw006",
	"type-7":  "#sw007",
	"type-8":  "#sw008",
	"type-9":  "#sw009",
	"type-10": "#sw010",
	"type-11": "#sw011",
	"type-12": "#sw012",
	"type-13": "#th013",
	"type-14": "#th014",
	"type-15": "#cw015",
	"type-16": "#ch016",
	"type-17": "#sw017",
	"type-18": "#fd018",
	"type-19": "#fd019",
}

// selectionToType resolves a sliding-page (panels, partition) selection to
// its window type key for pricing.
var selectionToType = map[string]string{
	"2-noPartition":      "type1",
	"2-fixedTop":         "type2",
	"2-fixedBottom":      "type2",
	"2-doubleFixed":      "type3",
	"3-noPartition":      "type4",
	"3-fixedTop":         "type5",
	"3-fixedBottom":      "type5",
	"3-doubleFixed":      "type6",
	"4-noPartition":      "type7",
	"4-fixedTop":         "type8",
	"4-fixedBottom":      "type8",
	"4-doubleFixed":      "type9",
	"2-openAbleTopFxBtm": "type10",
	"3-openAbleTopFxBtm": "type11",
	"4-openAbleTopFxBtm": "type12",
	"2-openAbleTop":      "type17",
}

// previewImages maps a window type key to its preview image key.
var previewImages = map[string]string{
	"type1":  "type-1",
	"type2":  "type-2",
	"type3":  "type-3",
	"type4":  "type-4",
	"type5":  "type-5",
	"type6":  "type-6",
	"type7":  "type-7",
	"type8":  "type-8",
	"type9":  "type-9",
	"type10": "type-10",
	"type11": "type-11",
	"type12": "type-12",
	"type13": "type-13",
	"type14": "type-14",
	"type15": "type-15",
	"type16": "type-16",
	"type17": "type-17",
	"type18": "type-18",
	"type19": "type-19",
}

const fallbackPreviewImage = "type-1"

// ResolveWindowType maps a panel count and partition style from the sliding
// configurator to a window type key.
func ResolveWindowType(noOfPanels, fixedPartition string) (string, bool) {
	t, ok := selectionToType[noOfPanels+"-"+fixedPartition]
	return t, ok
}

// PreviewImagePath returns the preview image URL for a window type, falling
// back to the default image for anything unresolved.
func PreviewImagePath(windowType string) string {
	key, ok := previewImages[windowType]
	if !ok {
		key = fallbackPreviewImage
	}
	return "/img/types/" + key + ".png"
}

// LookupPreview resolves the preview endpoint's (page, config) query to an
// image URL and type code. ok is false when the combination is unknown; the
// returned URL is then the fallback image.
func LookupPreview(windowType, config string) (imageURL, typeCode string, ok bool) {
	key, found := previewMap[windowType][config]
	if !found {
		return "/img/previewLabels/" + fallbackPreviewImage + ".png", "", false
	}
	return "/img/previewLabels/" + key + ".png", typeCodes[key], true
}
