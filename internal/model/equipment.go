package model

import (
	"time"

	"github.com/google/uuid"
)

// EquipmentType identifies a piece of major home equipment. The set is
// closed: upgrade targets, efficiency units, and tax-credit eligibility are
// all keyed off it.
type EquipmentType string

const (
	// EquipmentCentralAC is a ducted central air conditioner (SEER).
	EquipmentCentralAC EquipmentType = "Central AC"
	// EquipmentHeatPump is an air-source heat pump (SEER).
	EquipmentHeatPump EquipmentType = "Heat Pump"
	// EquipmentFurnace is a gas furnace (AFUE %).
	EquipmentFurnace EquipmentType = "Furnace"
	// EquipmentWaterHeater is a tank water heater (UEF).
	EquipmentWaterHeater EquipmentType = "Water Heater"
	// EquipmentWaterHeaterTankless is an on-demand water heater (UEF).
	EquipmentWaterHeaterTankless EquipmentType = "Tankless Water Heater"
	// EquipmentWindowUnit is a window air conditioner (EER).
	EquipmentWindowUnit EquipmentType = "Window AC"
	// EquipmentThermostat is rated on a synthetic 0-15 savings-percent scale.
	EquipmentThermostat EquipmentType = "Thermostat"
	// EquipmentInsulation is attic insulation (R-value).
	EquipmentInsulation EquipmentType = "Insulation"
	// EquipmentWindows is the window assembly (U-factor, lower is better).
	EquipmentWindows EquipmentType = "Windows"
	// EquipmentWasher is a clothes washer (IMEF).
	EquipmentWasher EquipmentType = "Washer"
	// EquipmentDryer is a clothes dryer (CEF).
	EquipmentDryer EquipmentType = "Dryer"
)

// EquipmentTypes lists every type in declaration order.
var EquipmentTypes = []EquipmentType{
	EquipmentCentralAC,
	EquipmentHeatPump,
	EquipmentFurnace,
	EquipmentWaterHeater,
	EquipmentWaterHeaterTankless,
	EquipmentWindowUnit,
	EquipmentThermostat,
	EquipmentInsulation,
	EquipmentWindows,
	EquipmentWasher,
	EquipmentDryer,
}

// ParseEquipmentType decodes a stored type string. Unrecognized values
// return ok=false so callers can skip legacy rows rather than misprice them.
func ParseEquipmentType(s string) (EquipmentType, bool) {
	for _, t := range EquipmentTypes {
		if EquipmentType(s) == t {
			return t, true
		}
	}
	return "", false
}

// EfficiencyUnit returns the display unit for the type's efficiency metric.
func (t EquipmentType) EfficiencyUnit() string {
	switch t {
	case EquipmentCentralAC, EquipmentHeatPump:
		return "SEER"
	case EquipmentFurnace:
		return "% AFUE"
	case EquipmentWaterHeater, EquipmentWaterHeaterTankless:
		return "UEF"
	case EquipmentWindowUnit:
		return "EER"
	case EquipmentThermostat:
		return "% savings"
	case EquipmentInsulation:
		return "R-value"
	case EquipmentWindows:
		return "U-factor"
	case EquipmentWasher:
		return "IMEF"
	case EquipmentDryer:
		return "CEF"
	default:
		return ""
	}
}

// LowerIsBetter reports whether the type's efficiency metric is inverse
// scaled. Only window U-factor improves downward; every other metric
// improves upward.
func (t EquipmentType) LowerIsBetter() bool {
	return t == EquipmentWindows
}

// IsHVAC reports whether the type belongs to the HVAC cost bucket.
func (t EquipmentType) IsHVAC() bool {
	switch t {
	case EquipmentCentralAC, EquipmentHeatPump, EquipmentFurnace,
		EquipmentWindowUnit, EquipmentThermostat, EquipmentInsulation, EquipmentWindows:
		return true
	default:
		return false
	}
}

// IsWaterHeating reports whether the type belongs to the water-heating
// cost bucket.
func (t EquipmentType) IsWaterHeating() bool {
	return t == EquipmentWaterHeater || t == EquipmentWaterHeaterTankless
}

// AgeBracket buckets equipment age into the five ranges the efficiency
// table is keyed on.
type AgeBracket string

const (
	// AgeZeroToFive is 0-5 years old.
	AgeZeroToFive AgeBracket = "0-5 years"
	// AgeFiveToTen is 5-10 years old.
	AgeFiveToTen AgeBracket = "5-10 years"
	// AgeTenToFifteen is 10-15 years old.
	AgeTenToFifteen AgeBracket = "10-15 years"
	// AgeFifteenToTwenty is 15-20 years old.
	AgeFifteenToTwenty AgeBracket = "15-20 years"
	// AgeTwentyPlus is 20+ years old.
	AgeTwentyPlus AgeBracket = "20+ years"
)

// AgeBrackets lists the brackets youngest first.
var AgeBrackets = []AgeBracket{
	AgeZeroToFive,
	AgeFiveToTen,
	AgeTenToFifteen,
	AgeFifteenToTwenty,
	AgeTwentyPlus,
}

// ParseAgeBracket decodes a stored bracket string, defaulting to 10-15
// years, the middle of the table.
func ParseAgeBracket(s string) AgeBracket {
	for _, a := range AgeBrackets {
		if AgeBracket(s) == a {
			return a
		}
	}
	return AgeTenToFifteen
}

// Equipment is one logged piece of equipment in a home.
// EstimatedEfficiency is in the unit of the type's metric; the default
// comes from the age-bracket lookup but the user may override it with a
// nameplate value.
type Equipment struct {
	CreatedAt           time.Time
	Type                EquipmentType
	Age                 AgeBracket
	Notes               string
	EstimatedEfficiency float64
	ID                  uuid.UUID
	HomeID              uuid.UUID
}
