// Package model defines the audit domain records: homes, rooms, windows,
// equipment, appliances, and energy bills. All types are plain values; the
// calculation engines read them and return fresh results without mutating
// anything persisted.
package model

// ClimateZone is the coarse US climate bucket a home sits in.
type ClimateZone string

const (
	// ClimateHot covers the Desert Southwest, Gulf Coast, and Florida.
	ClimateHot ClimateZone = "Hot"
	// ClimateModerate covers the Mid-Atlantic, Pacific Coast, and Midwest.
	ClimateModerate ClimateZone = "Moderate"
	// ClimateCold covers the Northern US, Mountain West, and New England.
	ClimateCold ClimateZone = "Cold"
)

// ClimateZones lists every zone in declaration order.
var ClimateZones = []ClimateZone{ClimateHot, ClimateModerate, ClimateCold}

// ParseClimateZone decodes a stored zone string. Unrecognized values fall
// back to Moderate so legacy rows never break a calculation.
func ParseClimateZone(s string) ClimateZone {
	switch ClimateZone(s) {
	case ClimateHot, ClimateModerate, ClimateCold:
		return ClimateZone(s)
	default:
		return ClimateModerate
	}
}

// BTUPerSqFt returns the base cooling load factor for the zone.
func (z ClimateZone) BTUPerSqFt() float64 {
	switch z {
	case ClimateHot:
		return 30
	case ClimateCold:
		return 35
	default:
		return 25
	}
}

// String implements fmt.Stringer.
func (z ClimateZone) String() string { return string(z) }
