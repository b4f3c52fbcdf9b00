// Package grade maps computed efficiency metrics to letter grades. Every
// function here is pure and total: any input yields exactly one grade.
package grade

import (
	"fmt"

	"github.com/hearthaudit/hearth/internal/efficiency"
	"github.com/hearthaudit/hearth/internal/model"
)

// Letter is an A-F efficiency grade.
type Letter string

// The grade scale, best to worst. NotGraded is the defined result for a
// home with nothing gradeable, never an error.
const (
	A         Letter = "A"
	B         Letter = "B"
	C         Letter = "C"
	D         Letter = "D"
	F         Letter = "F"
	NotGraded Letter = "—"
)

// Result pairs a letter with a human-readable summary.
type Result struct {
	Letter  Letter
	Score   float64 // 0-100, 0 when NotGraded
	Summary string
}

// Score breakpoints shared with the envelope scorer.
const (
	minScoreA = 85
	minScoreB = 70
	minScoreC = 55
	minScoreD = 40
)

// FromScore maps a 0-100 score to a letter.
func FromScore(score float64) Letter {
	switch {
	case score >= minScoreA:
		return A
	case score >= minScoreB:
		return B
	case score >= minScoreC:
		return C
	case score >= minScoreD:
		return D
	default:
		return F
	}
}

// EquipmentScore rates one piece of equipment 0-100 against its type's
// code minimum and best in class. At or beyond best-in-class scores 95;
// at code minimum scores 55; between the two interpolates linearly; below
// code minimum degrades toward 20 in proportion to the shortfall. The
// comparison direction flips for inverse metrics (window U-factor).
func EquipmentScore(t model.EquipmentType, estimated float64) float64 {
	spec := efficiency.Lookup(t, model.AgeZeroToFive)
	codeMin, best := spec.CodeMinimum, spec.BestInClass

	// Normalize so higher is always better.
	eff, lo, hi := estimated, codeMin, best
	if t.LowerIsBetter() {
		eff, lo, hi = -estimated, -codeMin, -best
	}

	switch {
	case eff >= hi:
		return 95
	case eff >= lo:
		return 55 + (eff-lo)/(hi-lo)*40
	default:
		// Shortfall relative to the code minimum's magnitude.
		span := hi - lo
		if span <= 0 {
			return 20
		}
		short := (lo - eff) / span
		if short > 1 {
			short = 1
		}
		return 55 - short*35
	}
}

// ForEquipment grades one piece of equipment.
func ForEquipment(e model.Equipment) Result {
	score := EquipmentScore(e.Type, e.EstimatedEfficiency)
	letter := FromScore(score)
	return Result{
		Letter:  letter,
		Score:   score,
		Summary: equipmentSummary(e.Type, letter),
	}
}

func equipmentSummary(t model.EquipmentType, l Letter) string {
	unit := t.EfficiencyUnit()
	switch l {
	case A:
		return fmt.Sprintf("%s performs at or near the best available %s rating.", t, unit)
	case B:
		return fmt.Sprintf("%s is well above code minimum for its %s rating.", t, unit)
	case C:
		return fmt.Sprintf("%s meets code but trails current %s leaders.", t, unit)
	case D:
		return fmt.Sprintf("%s falls below today's code minimum %s rating.", t, unit)
	default:
		return fmt.Sprintf("%s is far below code minimum; replacement will pay for itself fastest here.", t)
	}
}

// ForHome grades a whole home as the mean of its equipment scores.
// A home with no equipment gets the defined NotGraded result.
func ForHome(h model.Home) Result {
	if len(h.Equipment) == 0 {
		return Result{
			Letter:  NotGraded,
			Summary: "Not enough data to grade yet. Log HVAC or water heating equipment to get a grade.",
		}
	}
	var sum float64
	for _, e := range h.Equipment {
		sum += EquipmentScore(e.Type, e.EstimatedEfficiency)
	}
	score := sum / float64(len(h.Equipment))
	letter := FromScore(score)
	return Result{
		Letter:  letter,
		Score:   score,
		Summary: homeSummary(letter),
	}
}

func homeSummary(l Letter) string {
	switch l {
	case A:
		return "Excellent. Your equipment is modern and efficient; upgrades here are about comfort, not payback."
	case B:
		return "Good shape overall. A couple of targeted upgrades would push you into the top tier."
	case C:
		return "About average. The prioritized upgrades below show where the money is going."
	case D:
		return "Below average. Several systems are past their efficient life; start with the shortest payback."
	default:
		return "Significant savings available. Aging equipment is costing you every month; the upgrade list below is ordered by payback."
	}
}
