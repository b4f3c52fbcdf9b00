package rebate

import (
	"testing"

	"github.com/hearthaudit/hearth/internal/model"
)

func TestForStateCoversEveryListedState(t *testing.T) {
	for _, state := range model.USStates {
		programs, err := ForState(state)
		if err != nil {
			t.Fatalf("ForState(%s) error: %v", state, err)
		}
		if len(programs) == 0 {
			t.Errorf("state %s has no rebate programs", state)
			continue
		}
		for _, p := range programs {
			if p.Title == "" || p.ProgramName == "" || p.Amount == "" || p.URL == "" {
				t.Errorf("%s program %q is missing fields: %+v", state, p.Title, p)
			}
		}
	}
}

func TestForStateUncoveredState(t *testing.T) {
	programs, err := ForState(model.USState("WY"))
	if err != nil {
		t.Fatalf("ForState(WY) error: %v", err)
	}
	if len(programs) != 0 {
		t.Errorf("uncovered state returned %d programs", len(programs))
	}
}

func TestProgramAppliesTo(t *testing.T) {
	heatPumpProgram := Program{Equipment: []string{"Heat Pump", "Central AC"}}
	generalProgram := Program{}

	tests := []struct {
		name    string
		program Program
		types   []model.EquipmentType
		want    bool
	}{
		{
			name:    "matching equipment",
			program: heatPumpProgram,
			types:   []model.EquipmentType{model.EquipmentHeatPump},
			want:    true,
		},
		{
			name:    "no matching equipment",
			program: heatPumpProgram,
			types:   []model.EquipmentType{model.EquipmentWasher},
			want:    false,
		},
		{
			name:    "empty home does not match targeted program",
			program: heatPumpProgram,
			types:   nil,
			want:    false,
		},
		{
			name:    "general program matches anything",
			program: generalProgram,
			types:   nil,
			want:    true,
		},
		{
			name:    "general program matches equipment too",
			program: generalProgram,
			types:   []model.EquipmentType{model.EquipmentDryer},
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.program.AppliesTo(tt.types); got != tt.want {
				t.Errorf("AppliesTo(%v) = %v, want %v", tt.types, got, tt.want)
			}
		})
	}
}

func TestMatchFiltersToHomeEquipment(t *testing.T) {
	all, err := ForState(model.StateCalifornia)
	if err != nil {
		t.Fatalf("ForState(CA) error: %v", err)
	}

	matched, err := Match(model.StateCalifornia, []model.EquipmentType{model.EquipmentHeatPump})
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	if len(matched) == 0 {
		t.Fatal("want at least one matching CA program for a heat pump home")
	}
	if len(matched) >= len(all) {
		// CA has programs targeted at other equipment, so filtering must
		// drop something.
		t.Errorf("matched %d of %d programs, want a strict subset", len(matched), len(all))
	}
	for _, p := range matched {
		if !p.AppliesTo([]model.EquipmentType{model.EquipmentHeatPump}) {
			t.Errorf("program %q does not apply to the home", p.Title)
		}
	}
}

func TestMatchIncludesGeneralPrograms(t *testing.T) {
	// A home with no logged equipment still sees whole-home programs.
	matched, err := Match(model.StateCalifornia, nil)
	if err != nil {
		t.Fatalf("Match error: %v", err)
	}
	found := false
	for _, p := range matched {
		if len(p.Equipment) == 0 {
			found = true
		} else {
			t.Errorf("program %q requires equipment but matched an empty home", p.Title)
		}
	}
	if !found {
		t.Error("want at least one general program for an empty home")
	}
}
