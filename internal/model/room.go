package model

import (
	"time"

	"github.com/google/uuid"
)

// CeilingHeight is one of the four supported ceiling heights in feet.
type CeilingHeight int

const (
	// CeilingEight is a standard 8 ft ceiling.
	CeilingEight CeilingHeight = 8
	// CeilingNine is a 9 ft ceiling.
	CeilingNine CeilingHeight = 9
	// CeilingTen is a 10 ft ceiling.
	CeilingTen CeilingHeight = 10
	// CeilingTwelve is a vaulted 12 ft ceiling.
	CeilingTwelve CeilingHeight = 12
)

// CeilingHeights lists the supported heights in ascending order.
var CeilingHeights = []CeilingHeight{CeilingEight, CeilingNine, CeilingTen, CeilingTwelve}

// ParseCeilingHeight maps a stored feet value to a supported height,
// defaulting to 8 ft.
func ParseCeilingHeight(feet int) CeilingHeight {
	switch CeilingHeight(feet) {
	case CeilingEight, CeilingNine, CeilingTen, CeilingTwelve:
		return CeilingHeight(feet)
	default:
		return CeilingEight
	}
}

// Factor returns the volume multiplier on the base load.
func (h CeilingHeight) Factor() float64 {
	switch h {
	case CeilingNine:
		return 1.12
	case CeilingTen:
		return 1.25
	case CeilingTwelve:
		return 1.50
	default:
		return 1.0
	}
}

// Room is one scanned or manually entered room. CalculatedBTU and
// CalculatedTonnage are a display cache only; they are recomputed from the
// other fields whenever anything changes and are never the source of truth.
type Room struct {
	CreatedAt         time.Time
	Name              string
	Windows           []Window
	SquareFootage     float64
	CalculatedBTU     float64
	CalculatedTonnage float64
	CeilingHeight     CeilingHeight
	ClimateZone       ClimateZone
	Insulation        InsulationQuality
	ID                uuid.UUID
	HomeID            uuid.UUID
	ScanWasUsed       bool
}
