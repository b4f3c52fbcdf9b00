package model

import "strings"

// USState is a state with rebate coverage, stored as its USPS code.
type USState string

// States with rebate programs in the bundled table.
const (
	StateCalifornia    USState = "CA"
	StateTexas         USState = "TX"
	StateFlorida       USState = "FL"
	StateNewYork       USState = "NY"
	StatePennsylvania  USState = "PA"
	StateIllinois      USState = "IL"
	StateOhio          USState = "OH"
	StateGeorgia       USState = "GA"
	StateNorthCarolina USState = "NC"
	StateMichigan      USState = "MI"
	StateNewJersey     USState = "NJ"
	StateVirginia      USState = "VA"
	StateWashington    USState = "WA"
	StateArizona       USState = "AZ"
	StateMassachusetts USState = "MA"
)

var stateNames = map[USState]string{
	StateCalifornia:    "California",
	StateTexas:         "Texas",
	StateFlorida:       "Florida",
	StateNewYork:       "New York",
	StatePennsylvania:  "Pennsylvania",
	StateIllinois:      "Illinois",
	StateOhio:          "Ohio",
	StateGeorgia:       "Georgia",
	StateNorthCarolina: "North Carolina",
	StateMichigan:      "Michigan",
	StateNewJersey:     "New Jersey",
	StateVirginia:      "Virginia",
	StateWashington:    "Washington",
	StateArizona:       "Arizona",
	StateMassachusetts: "Massachusetts",
}

// USStates lists the covered states in alphabetical code order.
var USStates = []USState{
	StateArizona, StateCalifornia, StateFlorida, StateGeorgia,
	StateIllinois, StateMassachusetts, StateMichigan, StateNorthCarolina,
	StateNewJersey, StateNewYork, StateOhio, StatePennsylvania,
	StateTexas, StateVirginia, StateWashington,
}

// ParseUSState accepts a USPS code or full state name, case-insensitively.
// ok=false means the state has no rebate coverage (or the input was junk);
// the rebates section is simply omitted in that case.
func ParseUSState(s string) (USState, bool) {
	in := strings.TrimSpace(s)
	if code := USState(strings.ToUpper(in)); stateNames[code] != "" {
		return code, true
	}
	for code, name := range stateNames {
		if strings.EqualFold(name, in) {
			return code, true
		}
	}
	return "", false
}

// Name returns the full state name.
func (s USState) Name() string { return stateNames[s] }
