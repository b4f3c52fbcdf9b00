package rebate

import (
	"math"
	"strings"
	"testing"

	"github.com/hearthaudit/hearth/internal/model"
	"github.com/hearthaudit/hearth/internal/profile"
	"github.com/hearthaudit/hearth/internal/testutil"
)

func tipTitles(tips []Tip) []string {
	titles := make([]string, 0, len(tips))
	for _, tip := range tips {
		titles = append(titles, tip.Title)
	}
	return titles
}

func hasTip(tips []Tip, fragment string) bool {
	for _, tip := range tips {
		if strings.Contains(tip.Title, fragment) {
			return true
		}
	}
	return false
}

func TestQuickWinsEmptyHome(t *testing.T) {
	home := testutil.NewHomeBuilder("Bare House").Build()
	tips := QuickWins(home, profile.Generate(home))
	if len(tips) != 0 {
		t.Errorf("empty home produced tips: %v", tipTitles(tips))
	}
}

func TestQuickWinsSmartStrips(t *testing.T) {
	// Four game consoles burn 10W standby each: 350 kWh/yr, about $56 at
	// the default rate, which clears the $50 floor.
	home := testutil.NewHomeBuilder("Standby House").
		WithAppliance("Consoles", model.CategoryGameConsole, 150, 2, 4).
		Build()
	tips := QuickWins(home, profile.Generate(home))

	if !hasTip(tips, "smart power strips") {
		t.Fatalf("want a smart strip tip, got %v", tipTitles(tips))
	}
	phantomCost := 10.0 * 4 * 8760 / 1000 * model.DefaultElectricityRate
	for _, tip := range tips {
		if strings.Contains(tip.Title, "smart power strips") {
			if math.Abs(tip.EstimatedSavings-phantomCost*0.6) > 1e-6 {
				t.Errorf("smart strip savings = %v, want %v", tip.EstimatedSavings, phantomCost*0.6)
			}
		}
	}

	// One console is under the floor: no tip.
	small := testutil.NewHomeBuilder("Quiet House").
		WithAppliance("Console", model.CategoryGameConsole, 150, 2, 1).
		Build()
	if tips := QuickWins(small, profile.Generate(small)); hasTip(tips, "smart power strips") {
		t.Error("standby cost under the floor should not produce a tip")
	}
}

func TestQuickWinsLEDSwap(t *testing.T) {
	home := testutil.NewHomeBuilder("Edison House").
		WithAppliance("Hallway Bulbs", model.CategoryIncandescentBulb, 60, 3, 5).
		Build()
	tips := QuickWins(home, profile.Generate(home))

	if !hasTip(tips, "LED") {
		t.Fatalf("want an LED swap tip, got %v", tipTitles(tips))
	}
	perBulb := (60.0 - 9.0) * 3 * 365 / 1000 * model.DefaultElectricityRate
	for _, tip := range tips {
		if strings.Contains(tip.Title, "LED") {
			if math.Abs(tip.EstimatedSavings-perBulb*5) > 1e-6 {
				t.Errorf("LED savings = %v, want %v", tip.EstimatedSavings, perBulb*5)
			}
		}
	}
}

func TestQuickWinsDraftSealing(t *testing.T) {
	home := testutil.NewHomeBuilder("Drafty House").
		WithEquipment(model.EquipmentCentralAC, model.AgeTenToFifteen, 12.5).
		WithEnvelope(model.EnvelopeInfo{
			AtticInsulation:  model.InsulationGood,
			WallInsulation:   model.InsulationGood,
			Basement:         "Full",
			AirSealing:       "Fair",
			Weatherstripping: "Good",
		}).
		Build()
	prof := profile.Generate(home)
	tips := QuickWins(home, prof)

	if !hasTip(tips, "Seal drafts") {
		t.Fatalf("want a draft sealing tip, got %v", tipTitles(tips))
	}

	sealed := testutil.NewHomeBuilder("Tight House").
		WithEnvelope(model.EnvelopeInfo{
			AirSealing:       "Good",
			Weatherstripping: "Good",
		}).
		Build()
	if tips := QuickWins(sealed, profile.Generate(sealed)); hasTip(tips, "Seal drafts") {
		t.Error("well-sealed envelope should not produce a sealing tip")
	}
}

func TestQuickWinsThermostat(t *testing.T) {
	home := testutil.NewHomeBuilder("Manual House").
		WithEquipment(model.EquipmentThermostat, model.AgeFifteenToTwenty, 0).
		Build()
	if tips := QuickWins(home, profile.Generate(home)); !hasTip(tips, "thermostat") {
		t.Errorf("want a thermostat tip, got %v", tipTitles(tips))
	}

	smart := testutil.NewHomeBuilder("Smart House").
		WithEquipment(model.EquipmentThermostat, model.AgeZeroToFive, 12.5).
		Build()
	if tips := QuickWins(smart, profile.Generate(smart)); hasTip(tips, "thermostat") {
		t.Error("a smart thermostat should not produce a programming tip")
	}
}

func TestQuickWinsBillReview(t *testing.T) {
	bc := &profile.BillComparison{AccuracyLabel: "Review Needed", GapPercentage: 55}
	home := testutil.NewHomeBuilder("Puzzling House").Build()
	tips := QuickWins(home, profile.Profile{BillComparison: bc})
	if !hasTip(tips, "Re-check") {
		t.Errorf("want a review tip, got %v", tipTitles(tips))
	}
}
