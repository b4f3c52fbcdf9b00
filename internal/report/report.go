// Package report assembles the full audit report for a home: room
// loads, equipment grades and operating costs, the energy profile,
// tiered upgrade recommendations with federal credits, state rebates,
// and quick-win tips.
package report

import (
	"github.com/hearthaudit/hearth/internal/efficiency"
	"github.com/hearthaudit/hearth/internal/grade"
	"github.com/hearthaudit/hearth/internal/model"
	"github.com/hearthaudit/hearth/internal/profile"
	"github.com/hearthaudit/hearth/internal/rebate"
	"github.com/hearthaudit/hearth/internal/thermal"
	"github.com/hearthaudit/hearth/internal/upgrade"
)

// RoomLoad pairs a room with its recomputed cooling load. Loads are
// always recalculated at report time; the cached values on the room are
// display hints only.
type RoomLoad struct {
	Room      model.Room
	Breakdown thermal.Breakdown
}

// EquipmentAssessment is one equipment item with its grade, estimated
// operating cost, and upgrade options.
type EquipmentAssessment struct {
	Equipment       model.Equipment
	Grade           grade.Result
	AnnualCost      float64
	Recommendations []upgrade.Recommendation
}

// Report is the complete audit output for one home.
type Report struct {
	Home           model.Home
	HomeGrade      grade.Result
	Rooms          []RoomLoad
	TotalBTU       float64
	TotalTonnage   float64
	Equipment      []EquipmentAssessment
	Profile        profile.Profile
	TaxCredits     upgrade.CreditTotals
	Rebates        []rebate.Program
	Tips           []rebate.Tip
	Checklist      model.AuditChecklist
	BatterySynergy *BatterySynergy
}

// Generate builds the report. It is deterministic for a given home
// snapshot. The only error source is the embedded rebate table, which
// can fail to parse only on a bad build.
func Generate(home model.Home) (Report, error) {
	r := Report{
		Home:      home,
		HomeGrade: grade.ForHome(home),
		Profile:   profile.Generate(home),
		Checklist: model.BuildChecklist(home),
	}

	for _, room := range home.Rooms {
		b := thermal.CalculateRoom(room)
		r.Rooms = append(r.Rooms, RoomLoad{Room: room, Breakdown: b})
		r.TotalBTU += b.FinalBTU
		r.TotalTonnage += b.Tonnage
	}

	sqFt := home.ComputedTotalSqFt()
	elecRate := home.ActualElectricityRate()
	var allRecs [][]upgrade.Recommendation
	var totalCurrentCost, totalSavings float64

	for _, eq := range home.Equipment {
		cost := efficiency.AnnualCost(eq.Type, eq.EstimatedEfficiency, sqFt, home.ClimateZone, elecRate, model.DefaultGasRate)
		recs := upgrade.Generate(eq, home.ClimateZone, sqFt)
		r.Equipment = append(r.Equipment, EquipmentAssessment{
			Equipment:       eq,
			Grade:           grade.ForEquipment(eq),
			AnnualCost:      cost,
			Recommendations: recs,
		})
		allRecs = append(allRecs, recs)
		totalCurrentCost += cost
		totalSavings += bestTierSavings(recs)
	}

	r.TaxCredits = upgrade.AggregateTaxCredits(allRecs)

	if state, ok := model.ParseUSState(home.State); ok {
		rebates, err := rebate.Match(state, equipmentTypes(home))
		if err != nil {
			return Report{}, err
		}
		r.Rebates = rebates
	}
	r.Tips = rebate.QuickWins(home, r.Profile)

	r.BatterySynergy = estimateBatterySynergy(home, totalCurrentCost, totalSavings)

	return r, nil
}

func bestTierSavings(recs []upgrade.Recommendation) float64 {
	for _, rec := range recs {
		if rec.Tier == upgrade.TierBest {
			return rec.AnnualSavings
		}
	}
	return 0
}

func equipmentTypes(home model.Home) []model.EquipmentType {
	var types []model.EquipmentType
	for _, eq := range home.Equipment {
		types = append(types, eq.Type)
	}
	return types
}
