package model

import "github.com/google/uuid"

// CardinalDirection is the compass direction a window faces.
type CardinalDirection string

const (
	// DirectionNorth gains the least solar heat.
	DirectionNorth CardinalDirection = "N"
	// DirectionSouth gains the most solar heat.
	DirectionSouth CardinalDirection = "S"
	// DirectionEast gains morning sun.
	DirectionEast CardinalDirection = "E"
	// DirectionWest gains strong afternoon sun.
	DirectionWest CardinalDirection = "W"
)

// ParseCardinalDirection decodes a stored direction, defaulting to South.
func ParseCardinalDirection(s string) CardinalDirection {
	switch CardinalDirection(s) {
	case DirectionNorth, DirectionSouth, DirectionEast, DirectionWest:
		return CardinalDirection(s)
	default:
		return DirectionSouth
	}
}

// BTUPerSqFt returns the solar heat gain factor for the direction.
func (d CardinalDirection) BTUPerSqFt() float64 {
	switch d {
	case DirectionSouth:
		return 150
	case DirectionWest:
		return 120
	case DirectionEast:
		return 100
	default:
		return 40
	}
}

// WindowSize is a coarse glazing-area bucket.
type WindowSize string

const (
	// WindowSmall is roughly 10 sq ft of glass.
	WindowSmall WindowSize = "Small"
	// WindowMedium is roughly 20 sq ft of glass.
	WindowMedium WindowSize = "Medium"
	// WindowLarge is roughly 35 sq ft of glass.
	WindowLarge WindowSize = "Large"
)

// ParseWindowSize decodes a stored size, defaulting to Medium.
func ParseWindowSize(s string) WindowSize {
	switch WindowSize(s) {
	case WindowSmall, WindowMedium, WindowLarge:
		return WindowSize(s)
	default:
		return WindowMedium
	}
}

// SqFt returns the nominal glazing area for the bucket.
func (s WindowSize) SqFt() float64 {
	switch s {
	case WindowSmall:
		return 10
	case WindowLarge:
		return 35
	default:
		return 20
	}
}

// PaneType is the glazing layer count. NotAssessed calculates as double
// pane so a partially-assessed window still yields a finite load.
type PaneType string

const (
	// PaneNotAssessed means the user has not counted the panes yet.
	PaneNotAssessed PaneType = "Not Assessed"
	// PaneSingle is one layer of glass, common pre-1980.
	PaneSingle PaneType = "Single"
	// PaneDouble is two layers with an air or gas gap.
	PaneDouble PaneType = "Double"
	// PaneTriple is three layers with dual gas gaps.
	PaneTriple PaneType = "Triple"
)

// ParsePaneType decodes a stored pane type, defaulting to NotAssessed.
func ParsePaneType(s string) PaneType {
	switch PaneType(s) {
	case PaneNotAssessed, PaneSingle, PaneDouble, PaneTriple:
		return PaneType(s)
	default:
		return PaneNotAssessed
	}
}

// UFactor returns the glazing heat transfer rate. Lower is better.
func (p PaneType) UFactor() float64 {
	switch p {
	case PaneSingle:
		return 1.10
	case PaneTriple:
		return 0.22
	default:
		// Double, and the NotAssessed fallback.
		return 0.30
	}
}

// Assessed reports whether the user actually answered the question.
func (p PaneType) Assessed() bool { return p != PaneNotAssessed }

// FrameMaterial is the window frame construction. Its thermal factor
// multiplies the glazing U-factor; higher means more heat transfer.
type FrameMaterial string

const (
	// FrameNotAssessed calculates as a neutral 1.0 factor.
	FrameNotAssessed FrameMaterial = "Not Assessed"
	// FrameAluminum is the worst thermal performer.
	FrameAluminum FrameMaterial = "Aluminum"
	// FrameWood is the traditional baseline.
	FrameWood FrameMaterial = "Wood"
	// FrameVinyl is the common modern default.
	FrameVinyl FrameMaterial = "Vinyl"
	// FrameFiberglass is a premium insulator.
	FrameFiberglass FrameMaterial = "Fiberglass"
	// FrameComposite is the best thermal performer.
	FrameComposite FrameMaterial = "Composite"
)

// ParseFrameMaterial decodes a stored frame material, defaulting to
// NotAssessed.
func ParseFrameMaterial(s string) FrameMaterial {
	switch FrameMaterial(s) {
	case FrameNotAssessed, FrameAluminum, FrameWood, FrameVinyl, FrameFiberglass, FrameComposite:
		return FrameMaterial(s)
	default:
		return FrameNotAssessed
	}
}

// ThermalFactor returns the frame multiplier on the glazing U-factor.
func (f FrameMaterial) ThermalFactor() float64 {
	switch f {
	case FrameAluminum:
		return 1.30
	case FrameWood:
		return 1.00
	case FrameVinyl:
		return 0.95
	case FrameFiberglass:
		return 0.92
	case FrameComposite:
		return 0.90
	default:
		return 1.00
	}
}

// Assessed reports whether the user actually answered the question.
func (f FrameMaterial) Assessed() bool { return f != FrameNotAssessed }

// WindowCondition rates seal and sash condition. The leakage factor
// multiplies the effective U-factor; higher means more air leakage.
type WindowCondition string

const (
	// ConditionNotAssessed calculates as a neutral 1.0 factor.
	ConditionNotAssessed WindowCondition = "Not Assessed"
	// ConditionGood seals tight with no drafts.
	ConditionGood WindowCondition = "Good"
	// ConditionFair has minor drafts or fogging.
	ConditionFair WindowCondition = "Fair"
	// ConditionPoor is drafty with visible gaps.
	ConditionPoor WindowCondition = "Poor"
)

// ParseWindowCondition decodes a stored condition, defaulting to
// NotAssessed.
func ParseWindowCondition(s string) WindowCondition {
	switch WindowCondition(s) {
	case ConditionNotAssessed, ConditionGood, ConditionFair, ConditionPoor:
		return WindowCondition(s)
	default:
		return ConditionNotAssessed
	}
}

// LeakageFactor returns the air leakage multiplier.
func (c WindowCondition) LeakageFactor() float64 {
	switch c {
	case ConditionFair:
		return 1.15
	case ConditionPoor:
		return 1.35
	default:
		return 1.00
	}
}

// Assessed reports whether the user actually answered the question.
func (c WindowCondition) Assessed() bool { return c != ConditionNotAssessed }

// standardUFactor is the reference assembly every window is scaled
// against: double pane, vinyl frame, good condition (0.30 * 0.95 * 1.00).
const standardUFactor = 0.285

// Window describes one assessed window in a room.
type Window struct {
	ID        uuid.UUID
	Direction CardinalDirection
	Size      WindowSize
	Pane      PaneType
	Frame     FrameMaterial
	Condition WindowCondition
}

// NewWindow returns a window with the common defaults: south facing,
// medium, double pane, vinyl frame, good condition.
func NewWindow() Window {
	return Window{
		ID:        uuid.New(),
		Direction: DirectionSouth,
		Size:      WindowMedium,
		Pane:      PaneDouble,
		Frame:     FrameVinyl,
		Condition: ConditionGood,
	}
}

// FullyAssessed reports whether pane, frame, and condition were all
// answered rather than defaulted.
func (w Window) FullyAssessed() bool {
	return w.Pane.Assessed() && w.Frame.Assessed() && w.Condition.Assessed()
}

// EffectiveUFactor combines glazing, frame, and condition into one heat
// transfer rate.
func (w Window) EffectiveUFactor() float64 {
	return w.Pane.UFactor() * w.Frame.ThermalFactor() * w.Condition.LeakageFactor()
}

// HeatGainBTU is the window's solar gain scaled by how its assembly
// compares to the standard double-pane vinyl reference. Always >= 0.
func (w Window) HeatGainBTU() float64 {
	base := w.Direction.BTUPerSqFt() * w.Size.SqFt()
	return base * (w.EffectiveUFactor() / standardUFactor)
}
