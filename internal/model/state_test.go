package model

import "testing"

func TestParseUSState(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		want   USState
		wantOK bool
	}{
		{"code", "CA", StateCalifornia, true},
		{"lowercase code", "nj", StateNewJersey, true},
		{"padded code", " WA ", StateWashington, true},
		{"full name", "Massachusetts", StateMassachusetts, true},
		{"full name case-insensitive", "north carolina", StateNorthCarolina, true},
		{"uncovered state", "WY", "", false},
		{"junk", "not a state", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseUSState(tt.input)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ParseUSState(%q) = %v, %v; want %v, %v", tt.input, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestUSStatesAllNamed(t *testing.T) {
	for _, s := range USStates {
		if s.Name() == "" {
			t.Errorf("state %s has no name", s)
		}
	}
	if len(USStates) != len(stateNames) {
		t.Errorf("USStates lists %d states, name table has %d", len(USStates), len(stateNames))
	}
}
