package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplianceCategory is the closed set of inventoried appliance and
// lighting types. Each category carries a fixed standby wattage that burns
// regardless of how many hours the appliance actively runs.
type ApplianceCategory string

const (
	// CategoryRefrigerator runs continuously; its draw is all active use.
	CategoryRefrigerator ApplianceCategory = "Refrigerator"
	// CategoryFreezer is a standalone chest or upright freezer.
	CategoryFreezer ApplianceCategory = "Freezer"
	// CategoryDishwasher is a built-in dishwasher.
	CategoryDishwasher ApplianceCategory = "Dishwasher"
	// CategoryOven is an electric range or wall oven.
	CategoryOven ApplianceCategory = "Oven/Range"
	// CategoryMicrowave keeps a clock and control board energized.
	CategoryMicrowave ApplianceCategory = "Microwave"
	// CategoryTelevision draws standby power for instant-on.
	CategoryTelevision ApplianceCategory = "Television"
	// CategoryComputer covers desktops and always-plugged laptops.
	CategoryComputer ApplianceCategory = "Computer"
	// CategoryGameConsole is the worst standby offender in most homes.
	CategoryGameConsole ApplianceCategory = "Game Console"
	// CategoryRouter runs around the clock by design.
	CategoryRouter ApplianceCategory = "Router/Modem"
	// CategorySpaceHeater is a portable resistance heater.
	CategorySpaceHeater ApplianceCategory = "Space Heater"
	// CategoryFan is a ceiling or box fan.
	CategoryFan ApplianceCategory = "Fan"
	// CategoryDehumidifier is a portable dehumidifier.
	CategoryDehumidifier ApplianceCategory = "Dehumidifier"
	// CategoryLEDBulb is LED lighting.
	CategoryLEDBulb ApplianceCategory = "LED Bulb"
	// CategoryCFLBulb is compact fluorescent lighting.
	CategoryCFLBulb ApplianceCategory = "CFL Bulb"
	// CategoryIncandescentBulb is legacy incandescent lighting.
	CategoryIncandescentBulb ApplianceCategory = "Incandescent Bulb"
	// CategoryOther is anything not covered above.
	CategoryOther ApplianceCategory = "Other"
)

// ApplianceCategories lists every category in declaration order.
var ApplianceCategories = []ApplianceCategory{
	CategoryRefrigerator,
	CategoryFreezer,
	CategoryDishwasher,
	CategoryOven,
	CategoryMicrowave,
	CategoryTelevision,
	CategoryComputer,
	CategoryGameConsole,
	CategoryRouter,
	CategorySpaceHeater,
	CategoryFan,
	CategoryDehumidifier,
	CategoryLEDBulb,
	CategoryCFLBulb,
	CategoryIncandescentBulb,
	CategoryOther,
}

// ParseApplianceCategory decodes a stored category, defaulting to Other.
func ParseApplianceCategory(s string) ApplianceCategory {
	for _, c := range ApplianceCategories {
		if ApplianceCategory(s) == c {
			return c
		}
	}
	return CategoryOther
}

// IsLighting reports whether the category is a bulb type. Lighting gets
// its own cost bucket in the energy profile.
func (c ApplianceCategory) IsLighting() bool {
	switch c {
	case CategoryLEDBulb, CategoryCFLBulb, CategoryIncandescentBulb:
		return true
	default:
		return false
	}
}

// PhantomWatts is the fixed standby draw for the category, independent of
// usage hours. Always-running categories (refrigerator, router) count
// their draw as active use instead and report 0 here, except the router
// whose "active hours" are rarely logged.
func (c ApplianceCategory) PhantomWatts() float64 {
	switch c {
	case CategoryMicrowave:
		return 3
	case CategoryDishwasher:
		return 1.5
	case CategoryOven:
		return 2
	case CategoryTelevision:
		return 4
	case CategoryComputer:
		return 5
	case CategoryGameConsole:
		return 10
	case CategoryRouter:
		return 6
	case CategoryDehumidifier:
		return 1
	case CategoryOther:
		return 1
	default:
		return 0
	}
}

// DetectionMethod records how an appliance entered the inventory. It is
// informational only; the math never branches on it.
type DetectionMethod string

const (
	// DetectionManual means the user typed it in.
	DetectionManual DetectionMethod = "manual"
	// DetectionCamera means the camera classifier suggested it.
	DetectionCamera DetectionMethod = "camera"
	// DetectionOCR means a label or bill scan produced it.
	DetectionOCR DetectionMethod = "ocr"
)

// ParseDetectionMethod decodes a stored method, defaulting to manual.
func ParseDetectionMethod(s string) DetectionMethod {
	switch DetectionMethod(s) {
	case DetectionManual, DetectionCamera, DetectionOCR:
		return DetectionMethod(s)
	default:
		return DetectionManual
	}
}

// hoursPerYear is used for phantom load, which draws around the clock.
const hoursPerYear = 8760

// Appliance is one inventoried appliance or bulb group.
type Appliance struct {
	CreatedAt   time.Time
	Name        string
	Category    ApplianceCategory
	Detection   DetectionMethod
	Wattage     float64
	HoursPerDay float64
	Quantity    int
	ID          uuid.UUID
	HomeID      uuid.UUID
	RoomID      uuid.UUID
}

// AnnualKWh is the active-use energy across the whole quantity.
func (a Appliance) AnnualKWh() float64 {
	return a.Wattage * a.HoursPerDay * 365.0 / 1000.0 * float64(a.Quantity)
}

// AnnualCost prices active use at the given electricity rate.
func (a Appliance) AnnualCost(rate float64) float64 {
	return a.AnnualKWh() * rate
}

// PhantomAnnualKWh is the always-on standby energy for the quantity,
// independent of usage hours.
func (a Appliance) PhantomAnnualKWh() float64 {
	return a.Category.PhantomWatts() * float64(a.Quantity) * hoursPerYear / 1000.0
}
