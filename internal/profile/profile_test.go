package profile

import (
	"math"
	"testing"
	"time"

	"github.com/hearthaudit/hearth/internal/model"
	"github.com/hearthaudit/hearth/internal/testutil"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestGenerateBreakdown(t *testing.T) {
	home := testutil.NewHomeBuilder("Breakdown House").
		WithEquipment(model.EquipmentCentralAC, model.AgeTwentyPlus, 9).
		WithEquipment(model.EquipmentWaterHeater, model.AgeTenToFifteen, 0.5).
		WithAppliance("Kitchen Fridge", model.CategoryRefrigerator, 150, 24, 1).
		WithAppliance("LED Bulbs", model.CategoryLEDBulb, 9, 3, 10).
		WithAppliance("Game Console", model.CategoryGameConsole, 30, 2, 1).
		Build()

	p := Generate(home)

	hvac := 1500 * 27.5 / 9 * 0.16
	water := 400 / 0.5
	fridge := 150 * 24 * 365 / 1000.0 * 0.16
	console := 30 * 2 * 365 / 1000.0 * 0.16
	lighting := 9 * 3 * 365 / 1000.0 * 10 * 0.16
	standby := 10 * 8760 / 1000.0 * 0.16
	total := hvac + water + fridge + console + lighting + standby

	if !almostEqual(p.TotalEstimatedAnnualCost, total) {
		t.Errorf("TotalEstimatedAnnualCost = %v, want %v", p.TotalEstimatedAnnualCost, total)
	}
	if p.ElectricityRate != model.DefaultElectricityRate {
		t.Errorf("ElectricityRate = %v, want default", p.ElectricityRate)
	}

	wantCategories := map[string]float64{
		"HVAC":          hvac,
		"Water Heating": water,
		"Appliances":    fridge + console,
		"Lighting":      lighting,
		"Standby":       standby,
	}
	if len(p.Breakdown) != len(wantCategories) {
		t.Fatalf("Breakdown has %d categories, want %d: %+v", len(p.Breakdown), len(wantCategories), p.Breakdown)
	}
	var pctSum float64
	for _, c := range p.Breakdown {
		want, ok := wantCategories[c.Name]
		if !ok {
			t.Errorf("unexpected category %q", c.Name)
			continue
		}
		if !almostEqual(c.AnnualCost, want) {
			t.Errorf("category %s cost = %v, want %v", c.Name, c.AnnualCost, want)
		}
		pctSum += c.Percentage
	}
	if !almostEqual(pctSum, 100) {
		t.Errorf("category percentages sum to %v, want 100", pctSum)
	}
}

func TestGenerateTopConsumers(t *testing.T) {
	home := testutil.NewHomeBuilder("Consumer House").
		WithEquipment(model.EquipmentWaterHeater, model.AgeTenToFifteen, 0.5).
		WithEquipment(model.EquipmentCentralAC, model.AgeTwentyPlus, 9).
		WithAppliance("Kitchen Fridge", model.CategoryRefrigerator, 150, 24, 1).
		WithAppliance("Nightlight", model.CategoryLEDBulb, 1, 8, 1). // under the floor
		Build()

	p := Generate(home)

	if len(p.TopConsumers) != 3 {
		t.Fatalf("TopConsumers has %d entries, want 3: %+v", len(p.TopConsumers), p.TopConsumers)
	}
	for i := 1; i < len(p.TopConsumers); i++ {
		if p.TopConsumers[i].AnnualCost > p.TopConsumers[i-1].AnnualCost {
			t.Errorf("TopConsumers not sorted: %v before %v",
				p.TopConsumers[i-1].AnnualCost, p.TopConsumers[i].AnnualCost)
		}
	}
	if p.TopConsumers[0].Name != string(model.EquipmentWaterHeater) {
		t.Errorf("top consumer = %q, want water heater", p.TopConsumers[0].Name)
	}
}

func TestGenerateTopConsumerLimit(t *testing.T) {
	b := testutil.NewHomeBuilder("Crowded House")
	for _, name := range []string{"Fridge", "Freezer", "Dryer Rack", "Server", "Aquarium", "Kiln", "Welder"} {
		b.WithAppliance(name, model.CategoryOther, 200, 8, 1)
	}
	p := Generate(b.Build())
	if len(p.TopConsumers) != 5 {
		t.Errorf("TopConsumers has %d entries, want capped at 5", len(p.TopConsumers))
	}
}

func TestGenerateUsesDefaultSqFtForUnmeasuredHomes(t *testing.T) {
	home := testutil.NewHomeBuilder("Unmeasured").
		WithSqFt(0).
		WithEquipment(model.EquipmentCentralAC, model.AgeTwentyPlus, 9).
		Build()
	p := Generate(home)
	want := 1500 * 27.5 / 9 * 0.16
	if !almostEqual(p.TotalEstimatedAnnualCost, want) {
		t.Errorf("TotalEstimatedAnnualCost = %v, want %v from the 1500 sq ft floor", p.TotalEstimatedAnnualCost, want)
	}
}

func TestGenerateBillComparisonLabels(t *testing.T) {
	// Water heater at 0.5 UEF costs $800/yr; at the default rate that is
	// an estimated 5000 kWh.
	tests := []struct {
		name      string
		billKWh   float64
		wantLabel string
	}{
		{"under 10 percent gap", 5000, "Excellent"},
		{"under 25 percent gap", 6000, "Good"},
		{"under 40 percent gap", 8000, "Fair"},
		{"large gap", 12000, "Review Needed"},
	}

	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := testutil.NewHomeBuilder("Billed House").
				WithEquipment(model.EquipmentWaterHeater, model.AgeTenToFifteen, 0.5).
				Build()
			home.Bills = []model.EnergyBill{{
				HomeID:      home.ID,
				PeriodStart: start,
				PeriodEnd:   start.AddDate(1, 0, 0),
				TotalKWh:    tt.billKWh,
				Rate:        model.DefaultElectricityRate,
			}}

			p := Generate(home)
			if p.BillComparison == nil {
				t.Fatal("BillComparison is nil with a usable bill")
			}
			if p.BillComparison.AccuracyLabel != tt.wantLabel {
				t.Errorf("AccuracyLabel = %q (gap %.1f%%), want %q",
					p.BillComparison.AccuracyLabel, p.BillComparison.GapPercentage, tt.wantLabel)
			}
		})
	}
}

func TestGenerateBillComparisonNilWithoutBills(t *testing.T) {
	home := testutil.NewHomeBuilder("No Bills").
		WithEquipment(model.EquipmentCentralAC, model.AgeTwentyPlus, 9).
		Build()
	if p := Generate(home); p.BillComparison != nil {
		t.Errorf("BillComparison = %+v, want nil", p.BillComparison)
	}
}

func TestGenerateEnvelopeScorePassthrough(t *testing.T) {
	home := testutil.NewHomeBuilder("Sealed House").
		WithEnvelope(model.EnvelopeInfo{
			AtticInsulation:  model.InsulationGood,
			WallInsulation:   model.InsulationGood,
			Basement:         "Full",
			AirSealing:       "Good",
			Weatherstripping: "Good",
		}).
		Build()
	p := Generate(home)
	if p.EnvelopeScore == nil || p.EnvelopeScore.Score != 100 {
		t.Errorf("EnvelopeScore = %+v, want perfect score", p.EnvelopeScore)
	}
}
