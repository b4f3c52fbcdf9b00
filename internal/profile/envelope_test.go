package profile

import (
	"testing"

	"github.com/hearthaudit/hearth/internal/grade"
	"github.com/hearthaudit/hearth/internal/model"
)

func TestScoreEnvelopeNilWhenUnassessed(t *testing.T) {
	if got := ScoreEnvelope(nil); got != nil {
		t.Errorf("ScoreEnvelope(nil) = %+v, want nil", got)
	}
}

func TestScoreEnvelope(t *testing.T) {
	tests := []struct {
		name        string
		env         model.EnvelopeInfo
		wantScore   float64
		wantGrade   grade.Letter
		wantWeakest string
	}{
		{
			name: "perfect envelope",
			env: model.EnvelopeInfo{
				AtticInsulation:  model.InsulationGood,
				WallInsulation:   model.InsulationGood,
				Basement:         "Full",
				AirSealing:       "Good",
				Weatherstripping: "Good",
			},
			wantScore:   100,
			wantGrade:   grade.A,
			wantWeakest: "",
		},
		{
			name: "poor attic drags the score and is named weakest",
			env: model.EnvelopeInfo{
				AtticInsulation:  model.InsulationPoor,
				WallInsulation:   model.InsulationGood,
				Basement:         "Full",
				AirSealing:       "Good",
				Weatherstripping: "Good",
			},
			wantScore:   85,
			wantGrade:   grade.A,
			wantWeakest: "Attic Insulation",
		},
		{
			name: "all-average envelope reports no weakest area",
			env: model.EnvelopeInfo{
				AtticInsulation:  model.InsulationAverage,
				WallInsulation:   model.InsulationAverage,
				Basement:         "Partial",
				AirSealing:       "Fair",
				Weatherstripping: "Fair",
			},
			wantScore:   60,
			wantGrade:   grade.C,
			wantWeakest: "",
		},
		{
			name: "tied worst factors report the first in questionnaire order",
			env: model.EnvelopeInfo{
				AtticInsulation:  model.InsulationPoor,
				WallInsulation:   model.InsulationGood,
				Basement:         "Full",
				AirSealing:       "Poor",
				Weatherstripping: "Good",
			},
			wantScore:   70,
			wantGrade:   grade.B,
			wantWeakest: "Attic Insulation",
		},
		{
			name: "unrecognized vocabulary scores as the worst tier",
			env: model.EnvelopeInfo{
				AtticInsulation:  model.InsulationGood,
				WallInsulation:   model.InsulationGood,
				Basement:         "crawlspace?",
				AirSealing:       "Good",
				Weatherstripping: "Good",
			},
			wantScore:   85,
			wantGrade:   grade.A,
			wantWeakest: "Basement Insulation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScoreEnvelope(&tt.env)
			if got == nil {
				t.Fatal("ScoreEnvelope returned nil for an assessed envelope")
			}
			if got.Score != tt.wantScore {
				t.Errorf("Score = %v, want %v", got.Score, tt.wantScore)
			}
			if got.Grade != tt.wantGrade {
				t.Errorf("Grade = %s, want %s", got.Grade, tt.wantGrade)
			}
			if got.WeakestArea != tt.wantWeakest {
				t.Errorf("WeakestArea = %q, want %q", got.WeakestArea, tt.wantWeakest)
			}
			if len(got.Details) != 5 {
				t.Errorf("Details has %d entries, want 5", len(got.Details))
			}
		})
	}
}
