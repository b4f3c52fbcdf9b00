package rebate

import (
	"fmt"

	"github.com/hearthaudit/hearth/internal/model"
	"github.com/hearthaudit/hearth/internal/profile"
)

// Tip is a low-cost or no-cost action surfaced alongside rebate
// programs. EstimatedSavings is annual and approximate.
type Tip struct {
	Title            string
	Detail           string
	EstimatedSavings float64
}

// phantomTipFloor is the annual standby cost below which smart power
// strips are not worth suggesting.
const phantomTipFloor = 50.0

// QuickWins derives cheap improvements from the audit data itself, as
// opposed to the capital upgrades the recommendation engine produces.
func QuickWins(home model.Home, prof profile.Profile) []Tip {
	var tips []Tip

	rate := home.ActualElectricityRate()
	phantomCost := home.TotalPhantomAnnualKWh() * rate
	if phantomCost > phantomTipFloor {
		tips = append(tips, Tip{
			Title:            "Add smart power strips",
			Detail:           fmt.Sprintf("Standby loads cost about $%.0f/yr. Smart strips cut power to idle electronics automatically.", phantomCost),
			EstimatedSavings: phantomCost * 0.6,
		})
	}

	if bulbs := incandescentCount(home); bulbs > 0 {
		// A 60W incandescent replaced by a 9W LED at 3 hours a day.
		perBulb := (60.0 - 9.0) * 3 * 365 / 1000 * rate
		tips = append(tips, Tip{
			Title:            "Swap incandescent bulbs for LEDs",
			Detail:           fmt.Sprintf("%d incandescent bulbs logged. LEDs use about 85%% less energy and last 15x longer.", bulbs),
			EstimatedSavings: perBulb * float64(bulbs),
		})
	}

	if env := home.Envelope; env != nil {
		if env.AirSealing != "Good" || env.Weatherstripping != "Good" {
			tips = append(tips, Tip{
				Title:            "Seal drafts and weatherstrip doors",
				Detail:           "Caulk, foam, and door sweeps are a weekend project that typically trims 5-10% off heating and cooling bills.",
				EstimatedSavings: prof.TotalEstimatedAnnualCost * 0.05,
			})
		}
	}

	for _, eq := range home.Equipment {
		if eq.Type == model.EquipmentThermostat && eq.EstimatedEfficiency < 7.5 {
			tips = append(tips, Tip{
				Title:  "Program your thermostat",
				Detail: "Setting back 7-10°F for 8 hours a day saves up to 10% on heating and cooling at no cost.",
			})
			break
		}
	}

	if bc := prof.BillComparison; bc != nil && bc.AccuracyLabel == "Review Needed" {
		tips = append(tips, Tip{
			Title:  "Re-check your audit inputs",
			Detail: fmt.Sprintf("The estimate differs from your bills by %.0f%%. Verify square footage, equipment ages, and appliance wattages.", bc.GapPercentage),
		})
	}

	return tips
}

func incandescentCount(home model.Home) int {
	n := 0
	for _, a := range home.Appliances {
		if a.Category == model.CategoryIncandescentBulb {
			n += a.Quantity
		}
	}
	return n
}
