package thermal

import (
	"math"
	"testing"

	"github.com/hearthaudit/hearth/internal/model"
)

// standardWindow is the reference assembly: its heat gain is exactly
// direction x size with no U-factor scaling.
func standardWindow(dir model.CardinalDirection, size model.WindowSize) model.Window {
	return model.Window{
		Direction: dir,
		Size:      size,
		Pane:      model.PaneDouble,
		Frame:     model.FrameVinyl,
		Condition: model.ConditionGood,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestCalculateFullPipeline(t *testing.T) {
	windows := make([]model.Window, 5)
	for i := range windows {
		windows[i] = standardWindow(model.DirectionSouth, model.WindowMedium)
	}

	got := Calculate(LoadInput{
		SquareFootage: 2000,
		CeilingHeight: model.CeilingNine,
		ClimateZone:   model.ClimateHot,
		Insulation:    model.InsulationPoor,
		Windows:       windows,
	})

	base := 2000 * 1.12 * 30.0     // 67200
	windowGain := 5 * 150.0 * 20.0 // 15000
	subtotal := base + windowGain
	afterInsulation := subtotal * 1.30
	final := afterInsulation * 1.10

	if !almostEqual(got.BaseBTU, base) {
		t.Errorf("BaseBTU = %v, want %v", got.BaseBTU, base)
	}
	if !almostEqual(got.WindowHeatGain, windowGain) {
		t.Errorf("WindowHeatGain = %v, want %v", got.WindowHeatGain, windowGain)
	}
	if !almostEqual(got.Subtotal, subtotal) {
		t.Errorf("Subtotal = %v, want %v", got.Subtotal, subtotal)
	}
	if !almostEqual(got.InsulationAdjustment, afterInsulation-subtotal) {
		t.Errorf("InsulationAdjustment = %v, want %v", got.InsulationAdjustment, afterInsulation-subtotal)
	}
	if !almostEqual(got.AfterInsulation, afterInsulation) {
		t.Errorf("AfterInsulation = %v, want %v", got.AfterInsulation, afterInsulation)
	}
	if !almostEqual(got.SafetyBuffer, final-afterInsulation) {
		t.Errorf("SafetyBuffer = %v, want %v", got.SafetyBuffer, final-afterInsulation)
	}
	if !almostEqual(got.FinalBTU, final) {
		t.Errorf("FinalBTU = %v, want %v", got.FinalBTU, final)
	}
	if !almostEqual(got.Tonnage, final/12000) {
		t.Errorf("Tonnage = %v, want %v", got.Tonnage, final/12000)
	}
}

func TestCalculateBaseLoadByZoneAndCeiling(t *testing.T) {
	tests := []struct {
		name    string
		zone    model.ClimateZone
		ceiling model.CeilingHeight
		want    float64
	}{
		{"moderate 8ft", model.ClimateModerate, model.CeilingEight, 1000 * 1.0 * 25},
		{"hot 10ft", model.ClimateHot, model.CeilingTen, 1000 * 1.25 * 30},
		{"cold 12ft", model.ClimateCold, model.CeilingTwelve, 1000 * 1.5 * 35},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Calculate(LoadInput{
				SquareFootage: 1000,
				CeilingHeight: tt.ceiling,
				ClimateZone:   tt.zone,
				Insulation:    model.InsulationAverage,
			})
			if !almostEqual(got.BaseBTU, tt.want) {
				t.Errorf("BaseBTU = %v, want %v", got.BaseBTU, tt.want)
			}
		})
	}
}

func TestCalculateInsulationOrdering(t *testing.T) {
	in := LoadInput{
		SquareFootage: 1200,
		CeilingHeight: model.CeilingEight,
		ClimateZone:   model.ClimateModerate,
	}

	in.Insulation = model.InsulationGood
	good := Calculate(in).FinalBTU
	in.Insulation = model.InsulationAverage
	average := Calculate(in).FinalBTU
	in.Insulation = model.InsulationPoor
	poor := Calculate(in).FinalBTU

	if !(good < average && average < poor) {
		t.Errorf("want good < average < poor, got %v, %v, %v", good, average, poor)
	}

	in.Insulation = model.InsulationUnknown
	if unknown := Calculate(in).FinalBTU; !almostEqual(unknown, average) {
		t.Errorf("unknown insulation load = %v, want same as average %v", unknown, average)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	in := LoadInput{
		SquareFootage: 333,
		CeilingHeight: model.CeilingNine,
		ClimateZone:   model.ClimateHot,
		Insulation:    model.InsulationPoor,
		Windows:       []model.Window{standardWindow(model.DirectionWest, model.WindowLarge)},
	}
	if Calculate(in) != Calculate(in) {
		t.Error("identical inputs should produce identical breakdowns")
	}
}

func TestWindowHeatGainPercentage(t *testing.T) {
	b := Breakdown{WindowHeatGain: 2500, FinalBTU: 10000}
	if got := b.WindowHeatGainPercentage(); !almostEqual(got, 25) {
		t.Errorf("WindowHeatGainPercentage() = %v, want 25", got)
	}
	var zero Breakdown
	if got := zero.WindowHeatGainPercentage(); got != 0 {
		t.Errorf("zero breakdown percentage = %v, want 0", got)
	}
}

func TestCalculateRoomMatchesCalculate(t *testing.T) {
	room := model.Room{
		Name:          "Den",
		SquareFootage: 400,
		CeilingHeight: model.CeilingNine,
		ClimateZone:   model.ClimateCold,
		Insulation:    model.InsulationGood,
		Windows:       []model.Window{standardWindow(model.DirectionEast, model.WindowSmall)},
	}
	want := Calculate(LoadInput{
		SquareFootage: room.SquareFootage,
		CeilingHeight: room.CeilingHeight,
		ClimateZone:   room.ClimateZone,
		Insulation:    room.Insulation,
		Windows:       room.Windows,
	})
	if got := CalculateRoom(room); got != want {
		t.Errorf("CalculateRoom() = %+v, want %+v", got, want)
	}
}
