// Package efficiency holds the static equipment efficiency table and the
// annual operating-cost model built on it. The table maps (equipment type,
// age bracket) to an estimated efficiency, the current code minimum, the
// best unit on the market, and a typical installed upgrade cost. Values
// are point-in-time estimates, exhaustive over all 55 combinations, with
// no interpolation.
package efficiency

import "github.com/hearthaudit/hearth/internal/model"

// Spec is the efficiency lookup result for one (type, age) pair.
// Estimated varies by age; the other three fields are per-type constants.
type Spec struct {
	Estimated   float64
	CodeMinimum float64
	BestInClass float64
	UpgradeCost float64
}

// typeSpec is one equipment type's row template: estimated efficiency per
// age bracket (youngest first, matching model.AgeBrackets) plus the
// age-independent fields.
type typeSpec struct {
	byAge       [5]float64
	codeMinimum float64
	bestInClass float64
	upgradeCost float64
}

var table = map[model.EquipmentType]typeSpec{
	// SEER
	model.EquipmentCentralAC: {
		byAge:       [5]float64{15.0, 13.5, 12.5, 11.0, 9.0},
		codeMinimum: 15.2, bestInClass: 24.0, upgradeCost: 6000,
	},
	// SEER
	model.EquipmentHeatPump: {
		byAge:       [5]float64{18.0, 16.5, 14.0, 11.5, 9.0},
		codeMinimum: 15.2, bestInClass: 25.0, upgradeCost: 7500,
	},
	// AFUE %
	model.EquipmentFurnace: {
		byAge:       [5]float64{93, 88, 82, 75, 65},
		codeMinimum: 80, bestInClass: 98.5, upgradeCost: 4500,
	},
	// UEF
	model.EquipmentWaterHeater: {
		byAge:       [5]float64{0.67, 0.65, 0.60, 0.57, 0.50},
		codeMinimum: 0.64, bestInClass: 3.5, upgradeCost: 3500,
	},
	// UEF
	model.EquipmentWaterHeaterTankless: {
		byAge:       [5]float64{0.93, 0.90, 0.87, 0.85, 0.82},
		codeMinimum: 0.87, bestInClass: 0.97, upgradeCost: 3000,
	},
	// EER
	model.EquipmentWindowUnit: {
		byAge:       [5]float64{11.0, 10.0, 9.5, 9.0, 8.0},
		codeMinimum: 10.0, bestInClass: 15.0, upgradeCost: 800,
	},
	// Synthetic savings-percent scale: 0 manual, 7.5 programmable,
	// 12.5 smart.
	model.EquipmentThermostat: {
		byAge:       [5]float64{12.5, 7.5, 5.0, 0, 0},
		codeMinimum: 5.0, bestInClass: 15.0, upgradeCost: 225,
	},
	// R-value
	model.EquipmentInsulation: {
		byAge:       [5]float64{44, 38, 30, 19, 11},
		codeMinimum: 38, bestInClass: 60, upgradeCost: 2200,
	},
	// U-factor, lower is better; code minimum and best in class share
	// that direction.
	model.EquipmentWindows: {
		byAge:       [5]float64{0.27, 0.30, 0.40, 0.55, 1.1},
		codeMinimum: 0.30, bestInClass: 0.15, upgradeCost: 800,
	},
	// IMEF
	model.EquipmentWasher: {
		byAge:       [5]float64{2.2, 2.0, 1.8, 1.4, 1.0},
		codeMinimum: 1.84, bestInClass: 2.92, upgradeCost: 1200,
	},
	// CEF
	model.EquipmentDryer: {
		byAge:       [5]float64{3.7, 3.4, 3.1, 2.8, 2.5},
		codeMinimum: 3.01, bestInClass: 5.2, upgradeCost: 1000,
	},
}

func ageIndex(age model.AgeBracket) int {
	for i, a := range model.AgeBrackets {
		if a == age {
			return i
		}
	}
	// ParseAgeBracket already guards stored data; this covers a zero value.
	return 2
}

// Lookup returns the efficiency spec for the given type and age bracket.
func Lookup(t model.EquipmentType, age model.AgeBracket) Spec {
	ts := table[t]
	return Spec{
		Estimated:   ts.byAge[ageIndex(age)],
		CodeMinimum: ts.codeMinimum,
		BestInClass: ts.bestInClass,
		UpgradeCost: ts.upgradeCost,
	}
}
