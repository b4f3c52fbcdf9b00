package model

import (
	"time"

	"github.com/google/uuid"
)

// DefaultElectricityRate is used when a home has no bills to derive a real
// rate from, in $/kWh.
const DefaultElectricityRate = 0.16

// DefaultGasRate is the assumed gas price in $/therm.
const DefaultGasRate = 1.20

// HomeType is the dwelling category from onboarding.
type HomeType string

const (
	// HomeHouse is a detached single-family house.
	HomeHouse HomeType = "House"
	// HomeTownhouse is an attached townhouse.
	HomeTownhouse HomeType = "Townhouse"
	// HomeApartment is an apartment or condo.
	HomeApartment HomeType = "Apartment/Condo"
)

// ParseHomeType decodes a stored home type. Empty or unrecognized values
// return ok=false; legacy homes predate the field.
func ParseHomeType(s string) (HomeType, bool) {
	switch HomeType(s) {
	case HomeHouse, HomeTownhouse, HomeApartment:
		return HomeType(s), true
	default:
		return "", false
	}
}

// YearBuiltRange buckets construction year.
type YearBuiltRange string

const (
	// YearPre1970 is anything built before 1970.
	YearPre1970 YearBuiltRange = "Pre-1970"
	// Year1970to1989 covers 1970 through 1989.
	Year1970to1989 YearBuiltRange = "1970 to 1989"
	// Year1990to2005 covers 1990 through 2005.
	Year1990to2005 YearBuiltRange = "1990 to 2005"
	// Year2006to2015 covers 2006 through 2015.
	Year2006to2015 YearBuiltRange = "2006 to 2015"
	// Year2016Plus is 2016 or newer.
	Year2016Plus YearBuiltRange = "2016+"
)

// ParseYearBuiltRange decodes a stored range, defaulting to 1990 to 2005.
func ParseYearBuiltRange(s string) YearBuiltRange {
	switch YearBuiltRange(s) {
	case YearPre1970, Year1970to1989, Year1990to2005, Year2006to2015, Year2016Plus:
		return YearBuiltRange(s)
	default:
		return Year1990to2005
	}
}

// EnvelopeInfo captures the building-envelope questionnaire. Basement,
// air sealing, and weatherstripping use small fixed vocabularies stored as
// strings; unrecognized values score as the worst tier.
type EnvelopeInfo struct {
	AtticInsulation  InsulationQuality
	WallInsulation   InsulationQuality
	Basement         string // "Uninsulated", "Partial", "Full"
	AirSealing       string // "Good", "Fair", "Poor"
	Weatherstripping string // "Good", "Fair", "Poor"
	Notes            string
}

// BasementOptions is the vocabulary for EnvelopeInfo.Basement.
var BasementOptions = []string{"Uninsulated", "Partial", "Full"}

// SealingOptions is the vocabulary for air sealing and weatherstripping.
var SealingOptions = []string{"Good", "Fair", "Poor"}

// Home is the root aggregate for one audited home. Every numeric summary
// is derived from the child collections on demand; nothing aggregate is
// stored independently.
type Home struct {
	CreatedAt    time.Time
	UpdatedAt    time.Time
	Name         string
	Address      string
	State        string // two-letter USPS code, empty when unknown
	YearBuilt    YearBuiltRange
	ClimateZone  ClimateZone
	HomeType     HomeType // empty for legacy homes
	Rooms        []Room
	Equipment    []Equipment
	Appliances   []Appliance
	Bills        []EnergyBill
	Envelope     *EnvelopeInfo
	TotalSqFt    float64 // manual override; 0 means derive from rooms
	BedroomCount int
	ID           uuid.UUID
}

// ComputedTotalSqFt prefers the manual square footage and otherwise sums
// the rooms.
func (h Home) ComputedTotalSqFt() float64 {
	if h.TotalSqFt > 0 {
		return h.TotalSqFt
	}
	var total float64
	for _, r := range h.Rooms {
		total += r.SquareFootage
	}
	return total
}

// TotalBTU sums the cached room loads for display. Reports recompute from
// scratch instead of trusting this.
func (h Home) TotalBTU() float64 {
	var total float64
	for _, r := range h.Rooms {
		total += r.CalculatedBTU
	}
	return total
}

// TotalApplianceAnnualKWh sums active-use energy across all appliances.
func (h Home) TotalApplianceAnnualKWh() float64 {
	var total float64
	for _, a := range h.Appliances {
		total += a.AnnualKWh()
	}
	return total
}

// TotalPhantomAnnualKWh sums always-on standby energy across all
// appliances.
func (h Home) TotalPhantomAnnualKWh() float64 {
	var total float64
	for _, a := range h.Appliances {
		total += a.PhantomAnnualKWh()
	}
	return total
}

// BillBasedAnnualKWh averages the annualized usage of every usable bill.
// Returns ok=false when no bill annualizes cleanly.
func (h Home) BillBasedAnnualKWh() (float64, bool) {
	var sum float64
	var n int
	for _, b := range h.Bills {
		if kwh, ok := b.AnnualizedKWh(); ok {
			sum += kwh
			n++
		}
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// ActualElectricityRate averages the derived rate of every bill with a
// positive rate, falling back to DefaultElectricityRate.
func (h Home) ActualElectricityRate() float64 {
	var sum float64
	var n int
	for _, b := range h.Bills {
		if r := b.ComputedRate(); r > 0 {
			sum += r
			n++
		}
	}
	if n == 0 {
		return DefaultElectricityRate
	}
	return sum / float64(n)
}
