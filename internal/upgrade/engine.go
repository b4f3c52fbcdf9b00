// Package upgrade generates tiered replacement recommendations for logged
// equipment. Every equipment type yields exactly three options (Good,
// Better, Best) with cost ranges scaled to home size, annual savings from
// the efficiency model, payback periods, and federal tax credit amounts
// from the bundled credit table.
package upgrade

import (
	"fmt"

	"github.com/hearthaudit/hearth/internal/efficiency"
	"github.com/hearthaudit/hearth/internal/model"
)

// Tier ranks an upgrade option.
type Tier string

const (
	// TierGood is the budget, code-compliant option.
	TierGood Tier = "Good"
	// TierBetter is the mid-range option.
	TierBetter Tier = "Better"
	// TierBest is the premium or electrification option.
	TierBest Tier = "Best"
)

// Recommendation is one upgrade option. Payback fields are nil when the
// savings are non-positive and no payback exists. Recommendations are
// derived fresh per report and never persisted.
type Recommendation struct {
	PaybackYears          *float64
	EffectivePaybackYears *float64
	Tier                  Tier
	Title                 string
	UpgradeTarget         string
	Explanation           string
	TechnologyNote        string
	CostLow               float64
	CostHigh              float64
	AnnualSavings         float64
	TaxCreditAmount       float64
	TaxCreditEligible     bool
	AlreadyMeetsThisTier  bool
}

// defaultSqFt mirrors the profile fallback for unmeasured homes.
const defaultSqFt = 1500

// bestTierHSPF is the heating efficiency assumed for electrification
// (furnace or AC replaced by a cold-climate heat pump).
const bestTierHSPF = 13.0

// Generate returns the three-tier upgrade list for one piece of
// equipment. It is a pure function; a malformed record (zero efficiency)
// yields defined output with zero savings rather than an error.
func Generate(eq model.Equipment, zone model.ClimateZone, homeSqFt float64) []Recommendation {
	sqFt := homeSqFt
	if sqFt <= 0 {
		sqFt = defaultSqFt
	}
	current := eq.EstimatedEfficiency

	switch eq.Type {
	case model.EquipmentCentralAC:
		return centralAC(current, zone, sqFt)
	case model.EquipmentHeatPump:
		return heatPump(current, zone, sqFt)
	case model.EquipmentFurnace:
		return furnace(current, zone, sqFt)
	case model.EquipmentWaterHeater:
		return waterHeaterTank(current, sqFt)
	case model.EquipmentWaterHeaterTankless:
		return waterHeaterTankless(current, sqFt)
	case model.EquipmentWindowUnit:
		return windowUnit(current, zone, sqFt)
	case model.EquipmentThermostat:
		return thermostat(current, sqFt)
	case model.EquipmentInsulation:
		return insulation(current, sqFt)
	case model.EquipmentWindows:
		return windows(current, sqFt)
	case model.EquipmentWasher:
		return washer(current)
	case model.EquipmentDryer:
		return dryer(current)
	default:
		return nil
	}
}

// scaleCost interpolates a base cost range by home size: under 2000 sq ft
// stays near the base low, over 3000 sq ft approaches the base high,
// between them interpolates linearly.
func scaleCost(low, high, sqFt float64) (float64, float64) {
	t := (sqFt - 2000) / 1000
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	scaledLow := low + (high-low)*t*0.3
	scaledHigh := low + (high-low)*(0.3+t*0.7)
	return scaledLow, scaledHigh
}

// rec assembles one recommendation: average-cost payback, the credit from
// the measure key (empty key means not eligible; a zero cap in the table
// means uncapped), and the payback after the credit is applied.
func rec(tier Tier, title, target string, costLow, costHigh, annualSavings float64, explanation, creditMeasure, technologyNote string, alreadyMeets bool) Recommendation {
	avg := (costLow + costHigh) / 2

	var payback *float64
	if annualSavings > 0 {
		p := avg / annualSavings
		payback = &p
	}

	var creditAmount float64
	eligible := false
	if creditMeasure != "" {
		if table, err := Credits(); err == nil {
			if m, ok := table.Measure(creditMeasure); ok {
				eligible = true
				creditAmount = avg * table.CreditPercent
				if m.Cap > 0 && creditAmount > m.Cap {
					creditAmount = m.Cap
				}
			}
		}
	}

	effectivePayback := payback
	if payback != nil && creditAmount > 0 {
		effectiveCost := avg - creditAmount
		if effectiveCost < 0 {
			effectiveCost = 0
		}
		p := effectiveCost / annualSavings
		effectivePayback = &p
	}

	return Recommendation{
		Tier:                  tier,
		Title:                 title,
		UpgradeTarget:         target,
		CostLow:               costLow,
		CostHigh:              costHigh,
		AnnualSavings:         annualSavings,
		PaybackYears:          payback,
		Explanation:           explanation,
		TaxCreditEligible:     eligible,
		TaxCreditAmount:       creditAmount,
		EffectivePaybackYears: effectivePayback,
		TechnologyNote:        technologyNote,
		AlreadyMeetsThisTier:  alreadyMeets,
	}
}

func centralAC(current float64, zone model.ClimateZone, sqFt float64) []Recommendation {
	const goodTarget, betterTarget, bestTarget = 16.0, 20.0, 24.0

	gLow, gHigh := scaleCost(4000, 6500, sqFt)
	bLow, bHigh := scaleCost(6000, 9000, sqFt)
	bestLow, bestHigh := scaleCost(8000, 14000, sqFt)

	goodSavings := efficiency.AnnualSavings(model.EquipmentCentralAC, current, goodTarget, sqFt, zone)
	betterSavings := efficiency.AnnualSavings(model.EquipmentCentralAC, current, betterTarget, sqFt, zone)

	// Best tier swaps in a heat pump for both the AC and the gas furnace,
	// so it earns the cooling savings at the target SEER plus the heating
	// savings of leaving gas behind.
	coolingSavings := efficiency.AnnualSavings(model.EquipmentCentralAC, current, bestTarget, sqFt, zone)
	bestSavings := coolingSavings + electrificationHeatingSavings(80, zone, sqFt)

	return []Recommendation{
		rec(TierGood, "High-Efficiency Central AC", fmt.Sprintf("%.0f SEER", goodTarget),
			gLow, gHigh, goodSavings,
			"Replace with a code-compliant 16 SEER unit. Reliable, widely available, and the most cost-effective upgrade.",
			"central_ac",
			"Single-stage compressor. Standard refrigerant R-410A or R-454B. IRS 25C eligible up to $600.",
			current >= goodTarget),
		rec(TierBetter, "Variable-Speed Central AC", fmt.Sprintf("%.0f SEER", betterTarget),
			bLow, bHigh, betterSavings,
			"Variable-speed compressor runs at lower capacity most of the time, delivering better humidity control and quieter operation.",
			"central_ac",
			"Inverter-driven compressor. Brands: Carrier Infinity, Trane XV, Lennox XC. IRS 25C eligible.",
			current >= betterTarget),
		rec(TierBest, "Cold-Climate Heat Pump (replaces AC + Furnace)", fmt.Sprintf("%.0f SEER / 13 HSPF", bestTarget),
			bestLow, bestHigh, bestSavings,
			"Eliminates gas furnace entirely. A ducted heat pump handles both cooling and heating. Combined savings from removing gas bill plus higher cooling efficiency.",
			"heat_pump",
			"IRS 25D: 30% uncapped federal tax credit for heat pumps. Operates efficiently down to -15°F. Brands: Mitsubishi Hyper-Heat, Daikin Fit, Bosch IDS.",
			current >= bestTarget),
	}
}

// electrificationHeatingSavings is the heating-side delta of dropping a
// gas furnace at the given AFUE for a heat pump at the best-tier HSPF.
// Never negative.
func electrificationHeatingSavings(furnaceAFUE float64, zone model.ClimateZone, sqFt float64) float64 {
	furnaceCost := efficiency.AnnualCost(model.EquipmentFurnace, furnaceAFUE, sqFt, zone, model.DefaultElectricityRate, model.DefaultGasRate)
	hpCost := efficiency.HeatPumpHeatingCost(bestTierHSPF, sqFt, zone, model.DefaultElectricityRate)
	if furnaceCost <= hpCost {
		return 0
	}
	return furnaceCost - hpCost
}

func heatPump(current float64, zone model.ClimateZone, sqFt float64) []Recommendation {
	const goodTarget, betterTarget, bestTarget = 16.0, 20.0, 25.0

	gLow, gHigh := scaleCost(5000, 7500, sqFt)
	bLow, bHigh := scaleCost(7000, 10000, sqFt)
	bestLow, bestHigh := scaleCost(10000, 16000, sqFt)

	return []Recommendation{
		rec(TierGood, "Standard Heat Pump Upgrade", fmt.Sprintf("%.0f SEER", goodTarget),
			gLow, gHigh,
			efficiency.AnnualSavings(model.EquipmentHeatPump, current, goodTarget, sqFt, zone),
			"Replace with a current-code 16 SEER heat pump. Improved refrigerant and compressor technology.",
			"heat_pump",
			"IRS 25D: 30% federal credit for qualifying heat pumps. Standard single-stage.",
			current >= goodTarget),
		rec(TierBetter, "Variable-Speed Heat Pump", fmt.Sprintf("%.0f SEER", betterTarget),
			bLow, bHigh,
			efficiency.AnnualSavings(model.EquipmentHeatPump, current, betterTarget, sqFt, zone),
			"Inverter-driven compressor adjusts output continuously. Much better comfort and 30-40% lower operating cost vs. single-stage.",
			"heat_pump",
			"IRS 25D eligible. Brands: Carrier Greenspeed, Trane XV20i, Daikin DZ series.",
			current >= betterTarget),
		rec(TierBest, "Premium Cold-Climate Heat Pump", fmt.Sprintf("%.0f SEER / 13 HSPF", bestTarget),
			bestLow, bestHigh,
			efficiency.AnnualSavings(model.EquipmentHeatPump, current, bestTarget, sqFt, zone),
			"Top-tier cold-climate heat pump with enhanced vapor injection. Efficient heating down to -15°F without backup strips.",
			"heat_pump",
			"IRS 25D: 30% uncapped. Mitsubishi Hyper-Heat, Bosch IDS 2.0. ENERGY STAR Cold Climate certified.",
			current >= bestTarget),
	}
}

func furnace(current float64, zone model.ClimateZone, sqFt float64) []Recommendation {
	const goodTarget, betterTarget = 90.0, 96.0

	gLow, gHigh := scaleCost(2500, 4500, sqFt)
	bLow, bHigh := scaleCost(3500, 6000, sqFt)
	bestLow, bestHigh := scaleCost(8000, 14000, sqFt)

	goodSavings := efficiency.AnnualSavings(model.EquipmentFurnace, current, goodTarget, sqFt, zone)
	betterSavings := efficiency.AnnualSavings(model.EquipmentFurnace, current, betterTarget, sqFt, zone)
	bestSavings := electrificationHeatingSavings(current, zone, sqFt)

	return []Recommendation{
		rec(TierGood, "High-Efficiency Gas Furnace", fmt.Sprintf("%.0f%% AFUE", goodTarget),
			gLow, gHigh, goodSavings,
			"90% AFUE condensing furnace. Uses secondary heat exchanger to capture exhaust heat.",
			"",
			"Condensing furnace requires PVC venting (no masonry chimney). Standard in most new construction.",
			current >= goodTarget),
		rec(TierBetter, "Ultra-High-Efficiency Furnace", fmt.Sprintf("%.0f%% AFUE", betterTarget),
			bLow, bHigh, betterSavings,
			"96%+ AFUE modulating furnace with variable-speed blower. Near-zero heat loss from exhaust.",
			"furnace",
			"IRS 25C: up to $600 for 97%+ AFUE furnaces. Brands: Carrier 59MN7, Trane S9V2, Lennox SLP99V.",
			current >= betterTarget),
		rec(TierBest, "Electrify: Heat Pump (replace gas furnace)", "22 SEER / 13 HSPF heat pump",
			bestLow, bestHigh, bestSavings,
			"Fully electrify heating by replacing gas furnace with a ducted heat pump. Eliminates gas bill and qualifies for the largest federal credit.",
			"heat_pump",
			"IRS 25D: 30% uncapped federal tax credit. Also eliminates gas line/meter charges ($10-20/mo).",
			false),
	}
}

func waterHeaterTank(current, sqFt float64) []Recommendation {
	const goodTarget, betterTarget, bestTarget = 0.70, 0.95, 3.5

	gLow, gHigh := scaleCost(800, 1500, sqFt)
	bLow, bHigh := scaleCost(1500, 2500, sqFt)
	bestLow, bestHigh := scaleCost(2500, 4500, sqFt)

	goodSavings, betterSavings, bestSavings := waterHeatingSavings(current, goodTarget, betterTarget, bestTarget)

	return []Recommendation{
		rec(TierGood, "High-Efficiency Tank Water Heater", "0.70 UEF",
			gLow, gHigh, goodSavings,
			"ENERGY STAR certified tank with improved insulation and burner efficiency.",
			"",
			"Standard gas or electric tank. 40-50 gallon capacity typical for most homes.",
			current >= goodTarget),
		rec(TierBetter, "Condensing Tankless Water Heater", "0.95 UEF",
			bLow, bHigh, betterSavings,
			"On-demand heating with no standby losses. Condensing technology captures exhaust heat for ~95% efficiency.",
			"tankless_water_heater",
			"IRS 25C: up to $600. Brands: Rinnai RUR, Navien NPE, Rheem RTGH. Requires gas line upgrade in some cases.",
			current >= betterTarget),
		rec(TierBest, "Heat Pump Water Heater", "3.5 UEF",
			bestLow, bestHigh, bestSavings,
			"Uses heat pump technology to move heat from surrounding air into water. 3-4x more efficient than conventional tanks. Also dehumidifies the space.",
			"heat_pump_water_heater",
			"IRS 25D: 30% uncapped credit. Brands: Rheem ProTerra, A.O. Smith Voltex, Bradford White AeroTherm. Needs ~700 cu ft of air space.",
			current >= bestTarget),
	}
}

func waterHeaterTankless(current, sqFt float64) []Recommendation {
	const goodTarget, betterTarget, bestTarget = 0.90, 0.95, 3.5

	gLow, gHigh := scaleCost(1200, 2000, sqFt)
	bLow, bHigh := scaleCost(2000, 3000, sqFt)
	bestLow, bestHigh := scaleCost(2500, 4500, sqFt)

	goodSavings, betterSavings, bestSavings := waterHeatingSavings(current, goodTarget, betterTarget, bestTarget)

	return []Recommendation{
		rec(TierGood, "Updated Tankless Water Heater", "0.90 UEF",
			gLow, gHigh, goodSavings,
			"Newer non-condensing tankless with improved burner. Modest efficiency gain.",
			"", "",
			current >= goodTarget),
		rec(TierBetter, "Condensing Tankless Water Heater", "0.95 UEF",
			bLow, bHigh, betterSavings,
			"Condensing unit captures exhaust heat. Top gas efficiency available.",
			"tankless_water_heater",
			"IRS 25C: up to $600. Rinnai RUR199, Navien NPE-2 series.",
			current >= betterTarget),
		rec(TierBest, "Heat Pump Water Heater", "3.5 UEF",
			bestLow, bestHigh, bestSavings,
			"Switch from gas tankless to heat pump water heater. 3-4x more efficient, eliminates gas usage for water heating.",
			"heat_pump_water_heater",
			"IRS 25D: 30% uncapped. Fully electric, pairs well with solar panels.",
			current >= bestTarget),
	}
}

// waterHeatingSavings prices each tier against the flat $400-at-UEF-1.0
// baseline. A zero current efficiency is treated as the baseline cost so
// the result stays defined.
func waterHeatingSavings(current, good, better, best float64) (float64, float64, float64) {
	const baseline = 400.0
	currentCost := baseline
	if current > 0 {
		currentCost = baseline / current
	}
	savings := func(target float64) float64 {
		s := currentCost - baseline/target
		if s < 0 {
			return 0
		}
		return s
	}
	return savings(good), savings(better), savings(best)
}

func windowUnit(current float64, zone model.ClimateZone, sqFt float64) []Recommendation {
	const goodTarget, betterTarget, bestTarget = 12.0, 15.0, 22.0

	bestLow, bestHigh := scaleCost(3000, 5000, sqFt)

	return []Recommendation{
		rec(TierGood, "ENERGY STAR Window AC", fmt.Sprintf("%.0f EER", goodTarget),
			300, 600,
			efficiency.AnnualSavings(model.EquipmentWindowUnit, current, goodTarget, sqFt, zone),
			"Replace with an ENERGY STAR certified unit. Better compressor and fan motor.",
			"", "",
			current >= goodTarget),
		rec(TierBetter, "Premium Inverter Window AC", fmt.Sprintf("%.0f EER", betterTarget),
			500, 900,
			efficiency.AnnualSavings(model.EquipmentWindowUnit, current, betterTarget, sqFt, zone),
			"Inverter-driven window units (Midea U-Shape, LG Dual Inverter) are quieter and 30-40% more efficient.",
			"",
			"Inverter compressor runs at variable speed. Much quieter and more even temperature.",
			current >= betterTarget),
		rec(TierBest, "Ductless Mini-Split Heat Pump", fmt.Sprintf("%.0f SEER", bestTarget),
			bestLow, bestHigh,
			efficiency.AnnualSavings(model.EquipmentWindowUnit, current, bestTarget, sqFt, zone),
			"Replace window unit with a ductless mini-split. Provides both heating and cooling with dramatically better efficiency.",
			"heat_pump",
			"IRS 25D: 30% credit. Wall-mounted indoor unit + outdoor compressor. Brands: Mitsubishi, Fujitsu, Daikin.",
			current >= bestTarget),
	}
}

func thermostat(current, sqFt float64) []Recommendation {
	// Rough proxy for total annual HVAC spend; thermostat savings are a
	// percentage of it.
	annualHVACCost := sqFt * 2.5

	return []Recommendation{
		rec(TierGood, "Programmable Thermostat", "7-day programmable",
			30, 80, annualHVACCost*0.08,
			"Basic 7-day programmable thermostat. Set schedules for when you're home, away, and sleeping.",
			"",
			"Honeywell Home, Emerson Sensi. No WiFi required.",
			current >= 7.5),
		rec(TierBetter, "Smart Thermostat", "WiFi smart thermostat",
			120, 250, annualHVACCost*0.12,
			"WiFi-connected with app control, geofencing, and learning algorithms. Adapts to your schedule automatically.",
			"thermostat",
			"IRS 25C: up to $150. ecobee, Google Nest, Honeywell T9. Requires WiFi.",
			current >= 12.5),
		rec(TierBest, "Smart Thermostat with Room Sensors", "Multi-zone smart thermostat",
			200, 350, annualHVACCost*0.15,
			"Smart thermostat plus wireless room sensors. Averages temperature across rooms for true comfort. Eliminates hot/cold spots.",
			"thermostat",
			"IRS 25C: up to $150. ecobee Premium (includes air quality sensor), Honeywell T10 Pro.",
			current >= 15.0),
	}
}

func insulation(current, sqFt float64) []Recommendation {
	const goodTarget, betterTarget, bestTarget = 38.0, 49.0, 60.0

	// Per-square-foot installed costs by depth, attic area ~= home sq ft.
	gLow, gHigh := sqFt*1.5*0.8, sqFt*1.5*1.2
	bLow, bHigh := sqFt*2.5*0.8, sqFt*2.5*1.2
	bestLow, bestHigh := sqFt*4.0*0.8, sqFt*4.0*1.2

	// Insulation trims the whole HVAC load; savings scale with how far
	// the R-value moves toward the R-60 ceiling.
	annualHVACCost := sqFt * 2.5
	ratio := func(r float64) float64 {
		v := r / 60.0
		if v > 1 {
			return 1
		}
		return v
	}
	savings := func(target float64) float64 {
		s := (ratio(target) - ratio(current)) * annualHVACCost * 0.3
		if s < 0 {
			return 0
		}
		return s
	}

	return []Recommendation{
		rec(TierGood, "Blown-In Cellulose (R-38)", fmt.Sprintf("R-%.0f attic insulation", goodTarget),
			gLow, gHigh, savings(goodTarget),
			"Bring attic insulation to current code minimum. Blown-in cellulose is the most cost-effective option.",
			"insulation",
			"IRS 25C: 30% up to $1,200. Recycled newspaper-based material. DIY-friendly with rental blower.",
			current >= goodTarget),
		rec(TierBetter, "Deep Blown-In (R-49)", fmt.Sprintf("R-%.0f attic insulation", betterTarget),
			bLow, bHigh, savings(betterTarget),
			"Exceed code with deeper blown-in insulation. ENERGY STAR recommended for most climate zones.",
			"insulation",
			"IRS 25C: 30% up to $1,200. 16-18 inches of cellulose or fiberglass.",
			current >= betterTarget),
		rec(TierBest, "Spray Foam + Blown-In (R-60)", fmt.Sprintf("R-%.0f attic insulation", bestTarget),
			bestLow, bestHigh, savings(bestTarget),
			"Closed-cell spray foam at roof deck plus blown-in on attic floor. Creates a complete air seal and maximum R-value.",
			"insulation",
			"IRS 25C: 30% up to $1,200. Spray foam also acts as vapor barrier and air seal.",
			current >= bestTarget),
	}
}

func windows(current, sqFt float64) []Recommendation {
	// U-factor: lower is better, so tier checks invert.
	const goodTarget, betterTarget, bestTarget = 0.30, 0.22, 0.15

	windowCount := float64(int(sqFt / 150))
	if windowCount < 5 {
		windowCount = 5
	}

	gLow, gHigh := windowCount*600*0.8, windowCount*600*1.2
	bLow, bHigh := windowCount*900*0.8, windowCount*900*1.2
	bestLow, bestHigh := windowCount*1400*0.8, windowCount*1400*1.2

	// Windows carry roughly a quarter of envelope loss; savings follow
	// the U-factor reduction.
	annualHVACCost := sqFt * 2.5
	const windowShareOfLoss = 0.25
	savings := func(target float64) float64 {
		if current <= 0 {
			return 0
		}
		reduction := (current - target) / current
		if reduction < 0 {
			reduction = 0
		}
		return annualHVACCost * windowShareOfLoss * reduction
	}

	return []Recommendation{
		rec(TierGood, "Double-Pane Low-E Windows", fmt.Sprintf("U-%.2f", goodTarget),
			gLow, gHigh, savings(goodTarget),
			"Standard double-pane with Low-E coating and argon fill. Meets current energy code.",
			"windows",
			"IRS 25C: 30% up to $600 for ENERGY STAR certified windows. Most common upgrade.",
			current <= goodTarget),
		rec(TierBetter, "Triple-Pane Low-E Windows", fmt.Sprintf("U-%.2f", betterTarget),
			bLow, bHigh, savings(betterTarget),
			"Triple-pane with two Low-E coatings and argon or krypton fill. Dramatically reduces heat transfer and condensation.",
			"windows",
			"IRS 25C eligible. Brands: Andersen 400, Pella Lifestyle, Marvin Elevate.",
			current <= betterTarget),
		rec(TierBest, "Vacuum-Insulated or Quad-Pane Windows", fmt.Sprintf("U-%.2f", bestTarget),
			bestLow, bestHigh, savings(bestTarget),
			"Cutting-edge vacuum-insulated glass or quad-pane configuration. Near-wall insulation performance from a window.",
			"windows",
			"IRS 25C eligible. Emerging tech: LandVac, Pilkington Spacia. Limited availability but rapidly expanding.",
			current <= bestTarget),
	}
}

func washer(current float64) []Recommendation {
	const goodTarget, betterTarget, bestTarget = 2.0, 2.5, 2.92

	// Laundry electricity plus water runs $50-100/yr; scale against an
	// IMEF 2.0 reference machine.
	const baseline = 80.0
	currentCost := baseline
	if current > 0 {
		currentCost = baseline * (2.0 / current)
	}
	savings := func(target float64) float64 {
		s := currentCost - baseline*(2.0/target)
		if s < 0 {
			return 0
		}
		return s
	}

	return []Recommendation{
		rec(TierGood, "ENERGY STAR Washer", fmt.Sprintf("%.1f IMEF", goodTarget),
			600, 900, savings(goodTarget),
			"Standard ENERGY STAR front-load washer. Uses 25% less energy and 33% less water than non-certified.",
			"", "",
			current >= goodTarget),
		rec(TierBetter, "ENERGY STAR Most Efficient Washer", fmt.Sprintf("%.1f IMEF", betterTarget),
			900, 1300, savings(betterTarget),
			"Top-tier ENERGY STAR Most Efficient certified. Best water extraction reduces dryer time.",
			"",
			"Better spin extraction means clothes enter dryer with less moisture, saving dryer energy too.",
			current >= betterTarget),
		rec(TierBest, "Heat Pump Washer-Dryer Combo", fmt.Sprintf("%.1f IMEF + heat pump dry", bestTarget),
			1500, 2500, savings(bestTarget)+80, // combo also absorbs the dryer's bill
			"All-in-one heat pump washer-dryer. Eliminates separate dryer, uses 50% less total energy for laundry.",
			"",
			"LG WashTower, Samsung Bespoke AI. Single unit saves space and total energy.",
			current >= bestTarget),
	}
}

func dryer(current float64) []Recommendation {
	const goodTarget, betterTarget, bestTarget = 3.5, 4.0, 5.2

	const baseline = 100.0
	currentCost := baseline
	if current > 0 {
		currentCost = baseline * (3.0 / current)
	}
	savings := func(target float64) float64 {
		s := currentCost - baseline*(3.0/target)
		if s < 0 {
			return 0
		}
		return s
	}

	return []Recommendation{
		rec(TierGood, "ENERGY STAR Electric Dryer", fmt.Sprintf("%.1f CEF", goodTarget),
			500, 800, savings(goodTarget),
			"ENERGY STAR certified with moisture sensors to prevent over-drying.",
			"", "",
			current >= goodTarget),
		rec(TierBetter, "Ventless Heat Pump Dryer", fmt.Sprintf("%.1f CEF", betterTarget),
			800, 1200, savings(betterTarget),
			"Heat pump dryer uses 50% less energy than conventional. No external vent needed, so it installs anywhere.",
			"",
			"Recirculates heated air through a heat exchanger. Gentler on clothes, lower fire risk.",
			current >= betterTarget),
		rec(TierBest, "Premium Heat Pump Dryer", fmt.Sprintf("%.1f CEF", bestTarget),
			1100, 1800, savings(bestTarget),
			"Top-efficiency heat pump dryer with advanced moisture sensing and steam refresh cycles.",
			"",
			"Miele T1, LG DLHC5502, Samsung DV-HP. Longest cycle times but lowest operating cost.",
			current >= bestTarget),
	}
}
