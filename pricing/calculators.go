package pricing

import (
	"math"

	"github.com/marrsDev/DS-CBNode/models"
)

// Valid manufacturing range for a single dimension, in millimetres.
const (
	minDimension = 100
	maxDimension = 9999
)

// Aluminium section and hardware rates. Section rates are per metre of
// profile, hardware prices are per piece, installation is per square metre
// with a minimum callout fee.
const (
	frameRatePerM      = 980
	sashRatePerM       = 720
	trackRatePerM      = 840
	transomRatePerM    = 560
	interlockRatePerM  = 320
	beadingRatePerM    = 150
	glazingBarRatePerM = 280
	rollerSetPrice     = 480
	lockPrice          = 350
	hingePrice         = 220
	stayArmPrice       = 420
	pivotSetPrice      = 650
	dropBoltPrice      = 180
	installRatePerSqm  = 600
	minInstallFee      = 2000
)

// Breakdown maps a component name to its cost contribution for one unit of
// the configured window.
type Breakdown map[string]float64

// Calculation is the output of a window type calculator: structural
// component costs plus the glass area the orchestrator prices separately.
// Calculations are pure values; the same measurements always produce the
// same calculation.
type Calculation struct {
	components Breakdown
	glassArea  float64
	height     float64
	width      float64
}

// Components returns a copy of the breakdown with the glass area included
// under "glass". The entry holds square metres, not money; the orchestrator
// overwrites it with the priced value.
func (c Calculation) Components() Breakdown {
	out := make(Breakdown, len(c.components)+1)
	for k, v := range c.components {
		out[k] = v
	}
	out["glass"] = c.glassArea
	return out
}

// GlassArea returns the glazed area in square metres.
func (c Calculation) GlassArea() float64 {
	return c.glassArea
}

// StructuralTotal sums the structural component costs, excluding glass and
// installation.
func (c Calculation) StructuralTotal() float64 {
	var total float64
	for _, v := range c.components {
		total += v
	}
	return total
}

// InstallationFee is area-driven and floored at the minimum callout fee, so
// it never decreases when either dimension grows.
func (c Calculation) InstallationFee() float64 {
	fee := (c.height / 1000) * (c.width / 1000) * installRatePerSqm
	return math.Max(fee, minInstallFee)
}

// Calculator computes the bill of materials for one window type.
type Calculator interface {
	Calculate(height, width float64) (Calculation, error)
}

// Partition styles for sliding windows.
const (
	partitionNone            = "noPartition"
	partitionFixedTop        = "fixedTop"
	partitionFixedBottom     = "fixedBottom"
	partitionDoubleFixed     = "doubleFixed"
	partitionOpenTopFixedBtm = "openAbleTopFxBtm"
	partitionAwningTop       = "openAbleTop"
)

// windowTypes is the closed registry of calculators, one per window type
// key in models.WindowTypeLabels. Adding a type means adding exactly one
// entry here.
var windowTypes = map[string]Calculator{
	"type1":  slidingWindow{panels: 2, partition: partitionNone},
	"type2":  slidingWindow{panels: 2, partition: partitionFixedTop},
	"type3":  slidingWindow{panels: 2, partition: partitionDoubleFixed},
	"type4":  slidingWindow{panels: 3, partition: partitionNone},
	"type5":  slidingWindow{panels: 3, partition: partitionFixedTop},
	"type6":  slidingWindow{panels: 3, partition: partitionDoubleFixed},
	"type7":  slidingWindow{panels: 4, partition: partitionNone},
	"type8":  slidingWindow{panels: 4, partition: partitionFixedTop},
	"type9":  slidingWindow{panels: 4, partition: partitionDoubleFixed},
	"type10": slidingWindow{panels: 2, partition: partitionOpenTopFixedBtm},
	"type11": slidingWindow{panels: 3, partition: partitionOpenTopFixedBtm},
	"type12": slidingWindow{panels: 4, partition: partitionOpenTopFixedBtm},
	"type13": topHungWindow{panels: 1},
	"type14": topHungWindow{panels: 2},
	"type15": customLightWindow{},
	"type16": centreHungWindow{},
	"type17": slidingWindow{panels: 2, partition: partitionAwningTop},
	"type18": foldingDoor{panels: 4},
	"type19": foldingDoor{panels: 3},
}

// calculatorFor resolves the calculator for a window type key.
func calculatorFor(windowType string) (Calculator, bool) {
	c, ok := windowTypes[windowType]
	return c, ok
}

func validateMeasurements(height, width float64) error {
	if height < minDimension || height > maxDimension {
		return &models.ValidationError{Field: "height", Message: "must be between 100 and 9999"}
	}
	if width < minDimension || width > maxDimension {
		return &models.ValidationError{Field: "width", Message: "must be between 100 and 9999"}
	}
	return nil
}

// slidingWindow covers the twelve sliding variants plus the awning-top
// hybrid: n panels on a double track, optionally split by fixed or
// projecting sections above and below.
type slidingWindow struct {
	panels    int
	partition string
}

func (s slidingWindow) Calculate(height, width float64) (Calculation, error) {
	if err := validateMeasurements(height, width); err != nil {
		return Calculation{}, err
	}

	hm := height / 1000
	wm := width / 1000
	panels := float64(s.panels)
	panelWidth := wm / panels

	c := Breakdown{
		"frame":     2 * (hm + wm) * frameRatePerM,
		"track":     2 * wm * trackRatePerM,
		"sash":      panels * 2 * (hm + panelWidth) * sashRatePerM,
		"interlock": (panels - 1) * hm * interlockRatePerM,
		"beading":   panels * 2 * (hm + panelWidth) * beadingRatePerM,
		"rollers":   panels * rollerSetPrice,
		"locks":     lockPrice,
	}

	switch s.partition {
	case partitionFixedTop, partitionFixedBottom:
		c["transom"] = wm * transomRatePerM
	case partitionDoubleFixed:
		c["transom"] = 2 * wm * transomRatePerM
	case partitionOpenTopFixedBtm:
		c["transom"] = 2 * wm * transomRatePerM
		c["stays"] = 2 * stayArmPrice
	case partitionAwningTop:
		c["transom"] = wm * transomRatePerM
		c["stays"] = 2 * stayArmPrice
	}

	return Calculation{components: c, glassArea: hm * wm, height: height, width: width}, nil
}

// topHungWindow is an outward-projecting top-hinged window with one or two
// sashes on friction stays.
type topHungWindow struct {
	panels int
}

func (t topHungWindow) Calculate(height, width float64) (Calculation, error) {
	if err := validateMeasurements(height, width); err != nil {
		return Calculation{}, err
	}

	hm := height / 1000
	wm := width / 1000
	panels := float64(t.panels)
	panelWidth := wm / panels

	c := Breakdown{
		"frame":   2 * (hm + wm) * frameRatePerM,
		"sash":    panels * 2 * (hm + panelWidth) * sashRatePerM,
		"beading": panels * 2 * (hm + panelWidth) * beadingRatePerM,
		"stays":   panels * 2 * stayArmPrice,
		"locks":   panels * lockPrice,
	}
	if t.panels > 1 {
		c["mullion"] = hm * transomRatePerM
	}

	return Calculation{components: c, glassArea: hm * wm, height: height, width: width}, nil
}

// customLightWindow is a projecting window over a grid of fixed lights. The
// grid density follows the overall size, so the glazing bar cost grows in
// steps with the dimensions.
type customLightWindow struct{}

func (customLightWindow) Calculate(height, width float64) (Calculation, error) {
	if err := validateMeasurements(height, width); err != nil {
		return Calculation{}, err
	}

	hm := height / 1000
	wm := width / 1000
	cols := math.Ceil(wm / 0.6)
	rows := math.Ceil(hm / 0.45)

	c := Breakdown{
		"frame":       2 * (hm + wm) * frameRatePerM,
		"sash":        2 * (hm + wm) * sashRatePerM,
		"glazingBars": ((cols-1)*hm + (rows-1)*wm) * glazingBarRatePerM,
		"beading":     2 * (hm + wm) * beadingRatePerM,
		"stays":       2 * stayArmPrice,
		"locks":       lockPrice,
	}

	return Calculation{components: c, glassArea: hm * wm, height: height, width: width}, nil
}

// centreHungWindow pivots horizontally on a pair of centre pivots.
type centreHungWindow struct{}

func (centreHungWindow) Calculate(height, width float64) (Calculation, error) {
	if err := validateMeasurements(height, width); err != nil {
		return Calculation{}, err
	}

	hm := height / 1000
	wm := width / 1000

	c := Breakdown{
		"frame":   2 * (hm + wm) * frameRatePerM,
		"sash":    2 * (hm + wm) * sashRatePerM,
		"beading": 2 * (hm + wm) * beadingRatePerM,
		"pivots":  2 * pivotSetPrice,
		"locks":   lockPrice,
	}

	return Calculation{components: c, glassArea: hm * wm, height: height, width: width}, nil
}

// foldingDoor is a bi-fold set: every panel is sashed and hinged to the
// next, riding a top track with guide rollers on alternate panels.
type foldingDoor struct {
	panels int
}

func (f foldingDoor) Calculate(height, width float64) (Calculation, error) {
	if err := validateMeasurements(height, width); err != nil {
		return Calculation{}, err
	}

	hm := height / 1000
	wm := width / 1000
	panels := float64(f.panels)
	panelWidth := wm / panels

	c := Breakdown{
		"frame":     2 * (hm + wm) * frameRatePerM,
		"track":     2 * wm * trackRatePerM,
		"sash":      panels * 2 * (hm + panelWidth) * sashRatePerM,
		"beading":   panels * 2 * (hm + panelWidth) * beadingRatePerM,
		"hinges":    (panels - 1) * 3 * hingePrice,
		"rollers":   math.Ceil(panels/2) * rollerSetPrice,
		"dropBolts": 2 * dropBoltPrice,
		"locks":     lockPrice,
	}

	return Calculation{components: c, glassArea: hm * wm, height: height, width: width}, nil
}
