package profile

import (
	"fmt"

	"github.com/hearthaudit/hearth/internal/grade"
	"github.com/hearthaudit/hearth/internal/model"
)

// Envelope factor scoring: five factors at up to 20 points each.
const (
	factorMax     = 20
	factorPartial = 12
	factorWorst   = 5
)

// EnvelopeScore is the 0-100 building envelope rating.
type EnvelopeScore struct {
	Grade       grade.Letter
	WeakestArea string // empty when every factor ties
	Details     []string
	Score       float64
}

// ScoreEnvelope rates the envelope questionnaire. Returns nil when the
// home never filled it out. The weakest area is the first factor, in
// questionnaire order, strictly below every factor before it; when all
// five tie, no weakest area is reported.
func ScoreEnvelope(env *model.EnvelopeInfo) *EnvelopeScore {
	if env == nil {
		return nil
	}

	factors := []struct {
		name  string
		label string
		score float64
	}{
		{"Attic Insulation", fmt.Sprintf("Attic: %s", env.AtticInsulation), insulationScore(env.AtticInsulation)},
		{"Wall Insulation", fmt.Sprintf("Walls: %s", env.WallInsulation), insulationScore(env.WallInsulation)},
		{"Basement Insulation", fmt.Sprintf("Basement: %s", env.Basement), basementScore(env.Basement)},
		{"Air Sealing", fmt.Sprintf("Air Sealing: %s", env.AirSealing), sealingScore(env.AirSealing)},
		{"Weatherstripping", fmt.Sprintf("Weatherstripping: %s", env.Weatherstripping), sealingScore(env.Weatherstripping)},
	}

	var total float64
	details := make([]string, 0, len(factors))
	weakest := ""
	weakestScore := -1.0
	allEqual := true

	for i, f := range factors {
		total += f.score
		details = append(details, f.label)
		if i > 0 && f.score != factors[0].score {
			allEqual = false
		}
		if weakestScore < 0 || f.score < weakestScore {
			weakest = f.name
			weakestScore = f.score
		}
	}
	if allEqual {
		weakest = ""
	}

	return &EnvelopeScore{
		Score:       total,
		Grade:       grade.FromScore(total),
		Details:     details,
		WeakestArea: weakest,
	}
}

func insulationScore(q model.InsulationQuality) float64 {
	switch q {
	case model.InsulationGood:
		return factorMax
	case model.InsulationPoor:
		return factorWorst
	default:
		// Average and the Unknown fallback.
		return factorPartial
	}
}

func basementScore(v string) float64 {
	switch v {
	case "Full":
		return factorMax
	case "Partial":
		return factorPartial
	default:
		return factorWorst
	}
}

func sealingScore(v string) float64 {
	switch v {
	case "Good":
		return factorMax
	case "Fair":
		return factorPartial
	default:
		return factorWorst
	}
}
