package report

import "github.com/hearthaudit/hearth/internal/model"

// BatterySynergy is an illustrative estimate of how the recommended
// upgrades shrink the home's base load, freeing battery capacity for
// grid export. Figures are rough; VPP program rates vary widely.
type BatterySynergy struct {
	CurrentBaseLoadKW    float64
	UpgradedBaseLoadKW   float64
	LoadReductionShare   float64
	ExportableGainKW     float64
	AnnualRevenueLowUSD  float64
	AnnualRevenueHighUSD float64
}

const (
	// An average home draws roughly 5 kW peak per 1500 sq ft.
	baseLoadKWPer1500SqFt = 5.0
	// Fallback savings ratio when the upgrades save nothing on paper.
	defaultSavingsRatio = 0.15
	// Envelope and HVAC upgrades trim load beyond their bill savings.
	insulationLoadBonus = 0.05
	hvacLoadBonus       = 0.08
	maxLoadReduction    = 0.5
	// VPP export revenue per freed kW, low and high program rates.
	revenuePerKWLow  = 50.0
	revenuePerKWHigh = 250.0
)

func estimateBatterySynergy(home model.Home, totalCurrentCost, totalSavings float64) *BatterySynergy {
	sqFt := home.ComputedTotalSqFt()
	if sqFt <= 0 {
		return nil
	}

	currentBase := sqFt * baseLoadKWPer1500SqFt / 1500

	savingsRatio := defaultSavingsRatio
	if totalSavings > 0 && totalCurrentCost > 0 {
		savingsRatio = totalSavings / totalCurrentCost
	}

	var bonus float64
	if hasEquipment(home, model.EquipmentInsulation) {
		bonus += insulationLoadBonus
	}
	if hasEquipment(home, model.EquipmentCentralAC) ||
		hasEquipment(home, model.EquipmentHeatPump) ||
		hasEquipment(home, model.EquipmentFurnace) {
		bonus += hvacLoadBonus
	}

	reduction := savingsRatio*0.6 + bonus
	if reduction > maxLoadReduction {
		reduction = maxLoadReduction
	}

	upgradedBase := currentBase * (1 - reduction)
	gain := currentBase - upgradedBase

	return &BatterySynergy{
		CurrentBaseLoadKW:    currentBase,
		UpgradedBaseLoadKW:   upgradedBase,
		LoadReductionShare:   reduction,
		ExportableGainKW:     gain,
		AnnualRevenueLowUSD:  gain * revenuePerKWLow,
		AnnualRevenueHighUSD: gain * revenuePerKWHigh,
	}
}

func hasEquipment(home model.Home, t model.EquipmentType) bool {
	for _, eq := range home.Equipment {
		if eq.Type == t {
			return true
		}
	}
	return false
}
