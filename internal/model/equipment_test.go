package model

import "testing"

func TestParseEquipmentType(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   EquipmentType
		wantOK bool
	}{
		{"central AC", "Central AC", EquipmentCentralAC, true},
		{"tankless", "Tankless Water Heater", EquipmentWaterHeaterTankless, true},
		{"unknown type", "Swamp Cooler", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseEquipmentType(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseEquipmentType(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseAgeBracket(t *testing.T) {
	if got := ParseAgeBracket("20+ years"); got != AgeTwentyPlus {
		t.Errorf("ParseAgeBracket(20+ years) = %v", got)
	}
	if got := ParseAgeBracket("ancient"); got != AgeTenToFifteen {
		t.Errorf("ParseAgeBracket fallback = %v, want middle bracket", got)
	}
}

func TestLowerIsBetter(t *testing.T) {
	for _, et := range EquipmentTypes {
		want := et == EquipmentWindows
		if got := et.LowerIsBetter(); got != want {
			t.Errorf("%s LowerIsBetter() = %v, want %v", et, got, want)
		}
	}
}

func TestEquipmentCostBuckets(t *testing.T) {
	hvac := []EquipmentType{
		EquipmentCentralAC, EquipmentHeatPump, EquipmentFurnace,
		EquipmentWindowUnit, EquipmentThermostat, EquipmentInsulation, EquipmentWindows,
	}
	for _, et := range hvac {
		if !et.IsHVAC() {
			t.Errorf("%s should be HVAC", et)
		}
		if et.IsWaterHeating() {
			t.Errorf("%s should not be water heating", et)
		}
	}
	for _, et := range []EquipmentType{EquipmentWaterHeater, EquipmentWaterHeaterTankless} {
		if !et.IsWaterHeating() || et.IsHVAC() {
			t.Errorf("%s should be water heating only", et)
		}
	}
	for _, et := range []EquipmentType{EquipmentWasher, EquipmentDryer} {
		if et.IsHVAC() || et.IsWaterHeating() {
			t.Errorf("%s should be in neither bucket", et)
		}
	}
}

func TestEfficiencyUnitIsTotal(t *testing.T) {
	for _, et := range EquipmentTypes {
		if et.EfficiencyUnit() == "" {
			t.Errorf("%s has no efficiency unit", et)
		}
	}
}

func TestParseClimateZone(t *testing.T) {
	if got := ParseClimateZone("Hot"); got != ClimateHot {
		t.Errorf("ParseClimateZone(Hot) = %v", got)
	}
	if got := ParseClimateZone("Tropical"); got != ClimateModerate {
		t.Errorf("ParseClimateZone fallback = %v, want Moderate", got)
	}
}

func TestParseInsulationQuality(t *testing.T) {
	if got := ParseInsulationQuality("Unknown"); got != InsulationUnknown {
		t.Errorf("ParseInsulationQuality(Unknown) = %v", got)
	}
	if got := ParseInsulationQuality("asbestos"); got != InsulationAverage {
		t.Errorf("ParseInsulationQuality fallback = %v, want Average", got)
	}
	if InsulationUnknown.Multiplier() != InsulationAverage.Multiplier() {
		t.Error("Unknown insulation should calculate as Average")
	}
}
