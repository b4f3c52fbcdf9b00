// Package profile aggregates a home's equipment, appliances, and bills
// into the annual energy picture: a categorized cost breakdown, the top
// consumers, a bill-versus-estimate reconciliation, and a building
// envelope score.
package profile

import (
	"sort"

	"github.com/hearthaudit/hearth/internal/efficiency"
	"github.com/hearthaudit/hearth/internal/model"
)

// defaultSqFt floors the home size so a home with no measured rooms still
// produces non-degenerate cost estimates.
const defaultSqFt = 1500

// topConsumerFloor filters out trivial items from the top-consumer list.
const topConsumerFloor = 10

// standbyCategoryFloor keeps the Standby slice out of the breakdown until
// it is worth mentioning.
const standbyCategoryFloor = 5

// topConsumerLimit caps the ranked consumer list.
const topConsumerLimit = 5

// Category is one slice of the annual cost breakdown.
type Category struct {
	Name       string
	Icon       string
	AnnualCost float64
	Percentage float64
}

// Consumer is one entry in the ranked top-consumers list.
type Consumer struct {
	Name       string
	Icon       string
	Source     string // "equipment" or "appliance"
	AnnualCost float64
}

// BillComparison reconciles the audit estimate against real bills.
type BillComparison struct {
	AccuracyLabel      string
	BillAnnualKWh      float64
	EstimatedAnnualKWh float64
	GapPercentage      float64
}

// Profile is the aggregated annual energy picture for one home.
// BillComparison and EnvelopeScore are nil when the home lacks the data
// for them.
type Profile struct {
	BillComparison           *BillComparison
	EnvelopeScore            *EnvelopeScore
	Breakdown                []Category
	TopConsumers             []Consumer
	TotalEstimatedAnnualCost float64
	ElectricityRate          float64
}

// Generate builds the profile from a home snapshot. Aggregation is
// order-independent except the top-consumer sort, which breaks cost ties
// by name for stable output.
func Generate(home model.Home) Profile {
	rate := home.ActualElectricityRate()
	sqFt := home.ComputedTotalSqFt()
	if sqFt <= 0 {
		sqFt = defaultSqFt
	}

	var hvacCost, waterCost float64
	var consumers []Consumer

	for _, eq := range home.Equipment {
		cost := efficiency.AnnualCost(eq.Type, eq.EstimatedEfficiency, sqFt, home.ClimateZone, rate, model.DefaultGasRate)
		if cost <= 0 {
			continue
		}
		switch {
		case eq.Type.IsHVAC():
			hvacCost += cost
		case eq.Type.IsWaterHeating():
			waterCost += cost
		default:
			// Washer and dryer cost is tracked through the appliance
			// inventory, not here.
			continue
		}
		if cost > topConsumerFloor {
			consumers = append(consumers, Consumer{
				Name:       string(eq.Type),
				Icon:       equipmentIcon(eq.Type),
				AnnualCost: cost,
				Source:     "equipment",
			})
		}
	}

	var applianceCost, lightingCost float64
	for _, a := range home.Appliances {
		cost := a.AnnualCost(rate)
		if a.Category.IsLighting() {
			lightingCost += cost
		} else {
			applianceCost += cost
		}
		if cost > topConsumerFloor {
			consumers = append(consumers, Consumer{
				Name:       a.Name,
				Icon:       applianceIcon(a.Category),
				AnnualCost: cost,
				Source:     "appliance",
			})
		}
	}

	phantomCost := home.TotalPhantomAnnualKWh() * rate
	total := hvacCost + waterCost + applianceCost + lightingCost + phantomCost

	pct := func(cost float64) float64 {
		if total <= 0 {
			return 0
		}
		return cost / total * 100
	}

	var breakdown []Category
	if hvacCost > 0 {
		breakdown = append(breakdown, Category{Name: "HVAC", Icon: "❄️", AnnualCost: hvacCost, Percentage: pct(hvacCost)})
	}
	if waterCost > 0 {
		breakdown = append(breakdown, Category{Name: "Water Heating", Icon: "💧", AnnualCost: waterCost, Percentage: pct(waterCost)})
	}
	if applianceCost > 0 {
		breakdown = append(breakdown, Category{Name: "Appliances", Icon: "🔌", AnnualCost: applianceCost, Percentage: pct(applianceCost)})
	}
	if lightingCost > 0 {
		breakdown = append(breakdown, Category{Name: "Lighting", Icon: "💡", AnnualCost: lightingCost, Percentage: pct(lightingCost)})
	}
	if phantomCost > standbyCategoryFloor {
		breakdown = append(breakdown, Category{Name: "Standby", Icon: "🌙", AnnualCost: phantomCost, Percentage: pct(phantomCost)})
	}

	sort.SliceStable(consumers, func(i, j int) bool {
		if consumers[i].AnnualCost != consumers[j].AnnualCost {
			return consumers[i].AnnualCost > consumers[j].AnnualCost
		}
		return consumers[i].Name < consumers[j].Name
	})
	if len(consumers) > topConsumerLimit {
		consumers = consumers[:topConsumerLimit]
	}

	return Profile{
		TotalEstimatedAnnualCost: total,
		ElectricityRate:          rate,
		Breakdown:                breakdown,
		TopConsumers:             consumers,
		BillComparison:           compareBills(home, total, rate),
		EnvelopeScore:            ScoreEnvelope(home.Envelope),
	}
}

// compareBills converts the estimated cost back to kWh and measures the
// gap against the bill-derived annual usage. Returns nil without at least
// one usable bill. The conversion ignores gas equipment, which is close
// enough for a sanity label.
func compareBills(home model.Home, estimatedTotalCost, rate float64) *BillComparison {
	billKWh, ok := home.BillBasedAnnualKWh()
	if !ok || billKWh <= 0 {
		return nil
	}
	if rate <= 0 {
		return nil
	}
	estimatedKWh := estimatedTotalCost / rate
	if estimatedKWh <= 0 {
		return nil
	}

	gap := billKWh - estimatedKWh
	if gap < 0 {
		gap = -gap
	}
	gapPct := gap / billKWh * 100

	var label string
	switch {
	case gapPct < 10:
		label = "Excellent"
	case gapPct < 25:
		label = "Good"
	case gapPct < 40:
		label = "Fair"
	default:
		label = "Review Needed"
	}

	return &BillComparison{
		BillAnnualKWh:      billKWh,
		EstimatedAnnualKWh: estimatedKWh,
		GapPercentage:      gapPct,
		AccuracyLabel:      label,
	}
}

func equipmentIcon(t model.EquipmentType) string {
	switch {
	case t.IsWaterHeating():
		return "💧"
	case t == model.EquipmentFurnace:
		return "🔥"
	default:
		return "❄️"
	}
}

func applianceIcon(c model.ApplianceCategory) string {
	if c.IsLighting() {
		return "💡"
	}
	return "🔌"
}
