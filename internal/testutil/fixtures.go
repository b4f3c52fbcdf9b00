package testutil

import (
	"github.com/google/uuid"

	"github.com/hearthaudit/hearth/internal/model"
)

// HomeBuilder assembles a home aggregate for tests. Zero-value fields
// get sensible defaults so tests only state what they care about.
type HomeBuilder struct {
	home model.Home
}

// NewHomeBuilder starts a builder with a 1500 sq ft moderate-climate
// home.
func NewHomeBuilder(name string) *HomeBuilder {
	return &HomeBuilder{home: model.Home{
		ID:          uuid.New(),
		Name:        name,
		ClimateZone: model.ClimateModerate,
		TotalSqFt:   1500,
	}}
}

// InState sets the two-letter state code.
func (b *HomeBuilder) InState(code string) *HomeBuilder {
	b.home.State = code
	return b
}

// InClimate sets the climate zone.
func (b *HomeBuilder) InClimate(zone model.ClimateZone) *HomeBuilder {
	b.home.ClimateZone = zone
	return b
}

// WithSqFt sets the manual square footage.
func (b *HomeBuilder) WithSqFt(sqft float64) *HomeBuilder {
	b.home.TotalSqFt = sqft
	return b
}

// WithRoom appends a room, stamping the home ID.
func (b *HomeBuilder) WithRoom(room model.Room) *HomeBuilder {
	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	room.HomeID = b.home.ID
	b.home.Rooms = append(b.home.Rooms, room)
	return b
}

// WithEquipment appends an equipment item, stamping the home ID.
func (b *HomeBuilder) WithEquipment(t model.EquipmentType, age model.AgeBracket, efficiency float64) *HomeBuilder {
	b.home.Equipment = append(b.home.Equipment, model.Equipment{
		ID:                  uuid.New(),
		HomeID:              b.home.ID,
		Type:                t,
		Age:                 age,
		EstimatedEfficiency: efficiency,
	})
	return b
}

// WithAppliance appends an appliance, stamping the home ID.
func (b *HomeBuilder) WithAppliance(name string, category model.ApplianceCategory, watts, hoursPerDay float64, quantity int) *HomeBuilder {
	b.home.Appliances = append(b.home.Appliances, model.Appliance{
		ID:          uuid.New(),
		HomeID:      b.home.ID,
		Name:        name,
		Category:    category,
		Detection:   model.DetectionManual,
		Wattage:     watts,
		HoursPerDay: hoursPerDay,
		Quantity:    quantity,
	})
	return b
}

// WithEnvelope sets the envelope assessment.
func (b *HomeBuilder) WithEnvelope(env model.EnvelopeInfo) *HomeBuilder {
	b.home.Envelope = &env
	return b
}

// Build returns the assembled home.
func (b *HomeBuilder) Build() model.Home {
	return b.home
}

// SimpleRoom returns a room with the given size and the builder's usual
// defaults: 8 ft ceiling, average insulation, moderate climate.
func SimpleRoom(name string, sqft float64, windows ...model.Window) model.Room {
	return model.Room{
		ID:            uuid.New(),
		Name:          name,
		SquareFootage: sqft,
		CeilingHeight: model.CeilingEight,
		ClimateZone:   model.ClimateModerate,
		Insulation:    model.InsulationAverage,
		Windows:       windows,
	}
}
