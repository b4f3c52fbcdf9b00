package model

// InsulationQuality rates a room or envelope surface. Unknown is a real
// state in stored data (the user skipped the question); it calculates as
// Average.
type InsulationQuality string

const (
	// InsulationUnknown means the quality was never assessed.
	InsulationUnknown InsulationQuality = "Unknown"
	// InsulationPoor is minimal or degraded insulation, typical of older homes.
	InsulationPoor InsulationQuality = "Poor"
	// InsulationAverage is standard builder-grade insulation.
	InsulationAverage InsulationQuality = "Average"
	// InsulationGood is high performance insulation, R-49+ attic.
	InsulationGood InsulationQuality = "Good"
)

// ParseInsulationQuality decodes a stored insulation string, mapping
// unrecognized values to Average per the legacy-data rule.
func ParseInsulationQuality(s string) InsulationQuality {
	switch InsulationQuality(s) {
	case InsulationUnknown, InsulationPoor, InsulationAverage, InsulationGood:
		return InsulationQuality(s)
	default:
		return InsulationAverage
	}
}

// Multiplier returns the load multiplier applied to the room subtotal.
// Unknown behaves as Average.
func (q InsulationQuality) Multiplier() float64 {
	switch q {
	case InsulationPoor:
		return 1.30
	case InsulationGood:
		return 0.85
	default:
		return 1.00
	}
}

// String implements fmt.Stringer.
func (q InsulationQuality) String() string { return string(q) }
