// Package thermal computes the cooling load for a room using a simplified
// Manual J style estimate: floor area and volume, per-window solar gain,
// an insulation multiplier, and a fixed sizing safety factor.
package thermal

import "github.com/hearthaudit/hearth/internal/model"

// safetyFactor oversizes the final load by 10% per standard sizing
// practice.
const safetyFactor = 1.10

// btuPerTon converts BTU/hr to tons of cooling.
const btuPerTon = 12000

// LoadInput is the full set of room parameters the calculation reads.
// SquareFootage must be positive; form validation upstream enforces that.
type LoadInput struct {
	Windows       []model.Window
	SquareFootage float64
	CeilingHeight model.CeilingHeight
	ClimateZone   model.ClimateZone
	Insulation    model.InsulationQuality
}

// Breakdown carries every intermediate term of the calculation. Report
// views display each line, so none may be merged away.
type Breakdown struct {
	BaseBTU              float64
	WindowHeatGain       float64
	Subtotal             float64
	InsulationAdjustment float64
	AfterInsulation      float64
	SafetyBuffer         float64
	FinalBTU             float64
	Tonnage              float64
}

// WindowHeatGainPercentage is the share of the final load attributable to
// window gain, 0-100.
func (b Breakdown) WindowHeatGainPercentage() float64 {
	if b.FinalBTU <= 0 {
		return 0
	}
	return b.WindowHeatGain / b.FinalBTU * 100
}

// Calculate runs the fixed load pipeline. It is a pure function: identical
// inputs produce bit-identical output.
func Calculate(in LoadInput) Breakdown {
	base := in.SquareFootage * in.CeilingHeight.Factor() * in.ClimateZone.BTUPerSqFt()

	var windowGain float64
	for _, w := range in.Windows {
		windowGain += w.HeatGainBTU()
	}

	subtotal := base + windowGain

	afterInsulation := subtotal * in.Insulation.Multiplier()
	insulationAdjustment := afterInsulation - subtotal

	final := afterInsulation * safetyFactor
	safetyBuffer := final - afterInsulation

	return Breakdown{
		BaseBTU:              base,
		WindowHeatGain:       windowGain,
		Subtotal:             subtotal,
		InsulationAdjustment: insulationAdjustment,
		AfterInsulation:      afterInsulation,
		SafetyBuffer:         safetyBuffer,
		FinalBTU:             final,
		Tonnage:              final / btuPerTon,
	}
}

// CalculateRoom runs the pipeline over a stored room record.
func CalculateRoom(r model.Room) Breakdown {
	return Calculate(LoadInput{
		SquareFootage: r.SquareFootage,
		CeilingHeight: r.CeilingHeight,
		ClimateZone:   r.ClimateZone,
		Insulation:    r.Insulation,
		Windows:       r.Windows,
	})
}
