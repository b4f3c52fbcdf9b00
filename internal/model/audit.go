package model

// AuditStep is one stage of the guided audit flow, in the fixed order the
// checklist walks them.
type AuditStep string

const (
	// StepHomeBasics is the initial home questionnaire.
	StepHomeBasics AuditStep = "Home Basics"
	// StepRooms is room measurement or scanning.
	StepRooms AuditStep = "Rooms"
	// StepHVAC is HVAC equipment logging.
	StepHVAC AuditStep = "HVAC Equipment"
	// StepWaterHeating is water heater logging.
	StepWaterHeating AuditStep = "Water Heating"
	// StepAppliances is the appliance inventory.
	StepAppliances AuditStep = "Appliances"
	// StepLighting is the lighting audit.
	StepLighting AuditStep = "Lighting"
	// StepEnvelope is the envelope questionnaire.
	StepEnvelope AuditStep = "Envelope"
	// StepBills is utility bill upload.
	StepBills AuditStep = "Bills"
	// StepReview is the final report review.
	StepReview AuditStep = "Review"
)

// AuditSteps lists the steps in walk order. "First incomplete step"
// depends on this ordering, so it is fixed.
var AuditSteps = []AuditStep{
	StepHomeBasics,
	StepRooms,
	StepHVAC,
	StepWaterHeating,
	StepAppliances,
	StepLighting,
	StepEnvelope,
	StepBills,
	StepReview,
}

// AuditChecklist reports which steps a home has completed, derived purely
// from its data rather than stored flags.
type AuditChecklist struct {
	Completed map[AuditStep]bool
}

// BuildChecklist derives step completion from the home's collections.
// Review counts as complete once every other step is.
func BuildChecklist(h Home) AuditChecklist {
	done := map[AuditStep]bool{
		StepHomeBasics:   h.Name != "" && h.ClimateZone != "",
		StepRooms:        len(h.Rooms) > 0,
		StepHVAC:         hasAny(h.Equipment, EquipmentType.IsHVAC),
		StepWaterHeating: hasAny(h.Equipment, EquipmentType.IsWaterHeating),
		StepAppliances:   hasAppliance(h.Appliances, false),
		StepLighting:     hasAppliance(h.Appliances, true),
		StepEnvelope:     h.Envelope != nil,
		StepBills:        len(h.Bills) > 0,
	}
	review := true
	for _, s := range AuditSteps {
		if s == StepReview {
			continue
		}
		if !done[s] {
			review = false
			break
		}
	}
	done[StepReview] = review
	return AuditChecklist{Completed: done}
}

func hasAny(eq []Equipment, match func(EquipmentType) bool) bool {
	for _, e := range eq {
		if match(e.Type) {
			return true
		}
	}
	return false
}

func hasAppliance(apps []Appliance, lighting bool) bool {
	for _, a := range apps {
		if a.Category.IsLighting() == lighting {
			return true
		}
	}
	return false
}

// FirstIncomplete returns the first step, in walk order, that is not yet
// complete. ok=false means the audit is finished.
func (c AuditChecklist) FirstIncomplete() (AuditStep, bool) {
	for _, s := range AuditSteps {
		if !c.Completed[s] {
			return s, true
		}
	}
	return "", false
}

// ProgressPercent is the share of completed steps, 0-100.
func (c AuditChecklist) ProgressPercent() float64 {
	var n int
	for _, s := range AuditSteps {
		if c.Completed[s] {
			n++
		}
	}
	return float64(n) / float64(len(AuditSteps)) * 100
}
