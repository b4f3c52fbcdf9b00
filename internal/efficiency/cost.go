package efficiency

import "github.com/hearthaudit/hearth/internal/model"

// coolingFactor is btuPerSqFt x assumed full-load cooling hours / 1000:
// hot 30x1800, moderate 25x1100, cold 35x600.
func coolingFactor(zone model.ClimateZone) float64 {
	switch zone {
	case model.ClimateHot:
		return 54.0
	case model.ClimateCold:
		return 21.0
	default:
		return 27.5
	}
}

// heatingFactor drives the furnace and heat-pump heating formulas; the
// ordering inverts the cooling one.
func heatingFactor(zone model.ClimateZone) float64 {
	switch zone {
	case model.ClimateHot:
		return 200
	case model.ClimateCold:
		return 1000
	default:
		return 600
	}
}

// waterHeatingBaseline is the approximate annual water heating cost at
// UEF 1.0.
const waterHeatingBaseline = 400

// AnnualCost estimates the yearly operating cost of a piece of equipment.
// Cooling types use the electricity path, furnaces the gas path, water
// heaters a flat UEF-scaled baseline. Types without a direct cost model
// (thermostat, insulation, windows, washer, dryer) return 0; their value
// shows up through the upgrade savings formulas instead. A non-positive
// efficiency always yields 0 rather than a division blowup.
func AnnualCost(t model.EquipmentType, eff, homeSqFt float64, zone model.ClimateZone, electricityRate, gasRate float64) float64 {
	if eff <= 0 {
		return 0
	}
	switch t {
	case model.EquipmentCentralAC, model.EquipmentHeatPump, model.EquipmentWindowUnit:
		return homeSqFt * coolingFactor(zone) / eff * electricityRate
	case model.EquipmentFurnace:
		return homeSqFt * heatingFactor(zone) * gasRate / eff
	case model.EquipmentWaterHeater, model.EquipmentWaterHeaterTankless:
		return waterHeatingBaseline / eff
	default:
		return 0
	}
}

// HeatPumpHeatingCost estimates the annual heating cost of a heat pump at
// the given HSPF. It uses the same climate load basis as the furnace
// formula with HSPF x 10 as the AFUE-equivalent denominator, so
// electrification savings compare like for like.
func HeatPumpHeatingCost(hspf, homeSqFt float64, zone model.ClimateZone, electricityRate float64) float64 {
	if hspf <= 0 {
		return 0
	}
	return homeSqFt * heatingFactor(zone) * electricityRate / (hspf * 10)
}

// AnnualSavings is the cost delta from replacing current with target
// efficiency. Never negative, even when the target is worse.
func AnnualSavings(t model.EquipmentType, current, target, homeSqFt float64, zone model.ClimateZone) float64 {
	cur := AnnualCost(t, current, homeSqFt, zone, model.DefaultElectricityRate, model.DefaultGasRate)
	next := AnnualCost(t, target, homeSqFt, zone, model.DefaultElectricityRate, model.DefaultGasRate)
	if cur < next {
		return 0
	}
	return cur - next
}

// PaybackYears divides upgrade cost by annual savings. ok=false means the
// savings are non-positive and no payback is possible.
func PaybackYears(upgradeCost, annualSavings float64) (float64, bool) {
	if annualSavings <= 0 {
		return 0, false
	}
	return upgradeCost / annualSavings, true
}
