package model

import (
	"math"
	"testing"
)

func completeHome() Home {
	return Home{
		Name:        "Full House",
		ClimateZone: ClimateModerate,
		Rooms:       []Room{{Name: "Living Room", SquareFootage: 300}},
		Equipment: []Equipment{
			{Type: EquipmentCentralAC},
			{Type: EquipmentWaterHeater},
		},
		Appliances: []Appliance{
			{Name: "Fridge", Category: CategoryRefrigerator, Quantity: 1},
			{Name: "Bulbs", Category: CategoryLEDBulb, Quantity: 10},
		},
		Envelope: &EnvelopeInfo{},
		Bills:    []EnergyBill{{TotalKWh: 500}},
	}
}

func TestBuildChecklistComplete(t *testing.T) {
	c := BuildChecklist(completeHome())
	for _, s := range AuditSteps {
		if !c.Completed[s] {
			t.Errorf("step %s should be complete", s)
		}
	}
	if _, ok := c.FirstIncomplete(); ok {
		t.Error("complete audit should have no incomplete step")
	}
	if got := c.ProgressPercent(); got != 100 {
		t.Errorf("ProgressPercent() = %v, want 100", got)
	}
}

func TestBuildChecklistEmpty(t *testing.T) {
	c := BuildChecklist(Home{})
	step, ok := c.FirstIncomplete()
	if !ok || step != StepHomeBasics {
		t.Errorf("FirstIncomplete() = %v, %v; want Home Basics", step, ok)
	}
	if got := c.ProgressPercent(); got != 0 {
		t.Errorf("ProgressPercent() = %v, want 0", got)
	}
}

func TestBuildChecklistPartial(t *testing.T) {
	home := Home{
		Name:        "Starter",
		ClimateZone: ClimateHot,
		Rooms:       []Room{{Name: "Bedroom", SquareFootage: 150}},
	}
	c := BuildChecklist(home)

	step, ok := c.FirstIncomplete()
	if !ok || step != StepHVAC {
		t.Errorf("FirstIncomplete() = %v, %v; want HVAC Equipment", step, ok)
	}
	want := 2.0 / float64(len(AuditSteps)) * 100
	if got := c.ProgressPercent(); math.Abs(got-want) > 1e-9 {
		t.Errorf("ProgressPercent() = %v, want %v", got, want)
	}
}

func TestChecklistDistinguishesLightingFromAppliances(t *testing.T) {
	home := Home{
		Name:        "Lit",
		ClimateZone: ClimateCold,
		Appliances: []Appliance{
			{Name: "Bulbs", Category: CategoryIncandescentBulb, Quantity: 6},
		},
	}
	c := BuildChecklist(home)
	if c.Completed[StepAppliances] {
		t.Error("bulbs alone should not complete the appliance step")
	}
	if !c.Completed[StepLighting] {
		t.Error("bulbs should complete the lighting step")
	}
}

func TestChecklistReviewRequiresEverything(t *testing.T) {
	home := completeHome()
	home.Bills = nil
	c := BuildChecklist(home)
	if c.Completed[StepReview] {
		t.Error("review should not complete while bills are missing")
	}
}
