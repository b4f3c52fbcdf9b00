package grade

import (
	"math"
	"testing"

	"github.com/hearthaudit/hearth/internal/model"
)

func TestFromScore(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Letter
	}{
		{"top of scale", 100, A},
		{"A boundary", 85, A},
		{"just under A", 84.99, B},
		{"B boundary", 70, B},
		{"C boundary", 55, C},
		{"D boundary", 40, D},
		{"just under D", 39.99, F},
		{"zero", 0, F},
		{"negative clamps to F", -10, F},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromScore(tt.score); got != tt.want {
				t.Errorf("FromScore(%v) = %v, want %v", tt.score, got, tt.want)
			}
		})
	}
}

func TestEquipmentScore(t *testing.T) {
	tests := []struct {
		name          string
		equipmentType model.EquipmentType
		estimated     float64
		want          float64
	}{
		// Central AC: code minimum 15.2, best in class 24.0.
		{"best in class scores 95", model.EquipmentCentralAC, 24.0, 95},
		{"beyond best still 95", model.EquipmentCentralAC, 26.0, 95},
		{"code minimum scores 55", model.EquipmentCentralAC, 15.2, 55},
		{"midpoint interpolates", model.EquipmentCentralAC, 19.6, 75},
		// Windows: U-factor 0.30 code minimum, 0.15 best in class.
		{"windows best U-factor scores 95", model.EquipmentWindows, 0.15, 95},
		{"windows code minimum scores 55", model.EquipmentWindows, 0.30, 55},
		{"windows far below code floors at 20", model.EquipmentWindows, 0.45, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquipmentScore(tt.equipmentType, tt.estimated)
			if math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("EquipmentScore(%s, %v) = %v, want %v",
					tt.equipmentType, tt.estimated, got, tt.want)
			}
		})
	}
}

func TestEquipmentScoreBelowCodeDegrades(t *testing.T) {
	// Central AC slightly below code should land between 20 and 55.
	got := EquipmentScore(model.EquipmentCentralAC, 13.0)
	if got <= 20 || got >= 55 {
		t.Errorf("EquipmentScore(Central AC, 13) = %v, want between 20 and 55", got)
	}
}

func TestForEquipment(t *testing.T) {
	r := ForEquipment(model.Equipment{Type: model.EquipmentCentralAC, EstimatedEfficiency: 24.0})
	if r.Letter != A {
		t.Errorf("best-in-class unit graded %s, want A", r.Letter)
	}
	if r.Summary == "" {
		t.Error("want a non-empty summary")
	}
}

func TestForHome(t *testing.T) {
	t.Run("no equipment is defined as not graded", func(t *testing.T) {
		r := ForHome(model.Home{})
		if r.Letter != NotGraded {
			t.Errorf("Letter = %s, want NotGraded", r.Letter)
		}
		if r.Score != 0 {
			t.Errorf("Score = %v, want 0", r.Score)
		}
		if r.Summary == "" {
			t.Error("want a non-empty summary")
		}
	})

	t.Run("home grade is the mean equipment score", func(t *testing.T) {
		home := model.Home{Equipment: []model.Equipment{
			{Type: model.EquipmentCentralAC, EstimatedEfficiency: 24.0},
			{Type: model.EquipmentCentralAC, EstimatedEfficiency: 15.2},
		}}
		r := ForHome(home)
		want := (95.0 + 55.0) / 2
		if math.Abs(r.Score-want) > 1e-6 {
			t.Errorf("Score = %v, want %v", r.Score, want)
		}
		if r.Letter != B {
			t.Errorf("Letter = %s, want B", r.Letter)
		}
	})
}

func TestGradingIsTotal(t *testing.T) {
	// Any efficiency value for any type must produce a letter on the scale.
	letters := map[Letter]bool{A: true, B: true, C: true, D: true, F: true}
	for _, et := range model.EquipmentTypes {
		for _, eff := range []float64{-1, 0, 0.1, 1, 10, 100, 1000} {
			r := ForEquipment(model.Equipment{Type: et, EstimatedEfficiency: eff})
			if !letters[r.Letter] {
				t.Errorf("ForEquipment(%s, %v) produced letter %q", et, eff, r.Letter)
			}
		}
	}
}
