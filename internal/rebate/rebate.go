// Package rebate matches homes against a bundled table of state and
// utility rebate programs.
package rebate

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/hearthaudit/hearth/internal/model"
)

//go:embed rebates.yaml
var rebateYAML []byte

// Program is one rebate program. Amount is descriptive text, not a
// computed figure; terms vary by income, equipment model, and season.
type Program struct {
	Title       string   `yaml:"title"`
	ProgramName string   `yaml:"program"`
	Description string   `yaml:"description"`
	Amount      string   `yaml:"amount"`
	Equipment   []string `yaml:"equipment"`
	URL         string   `yaml:"url"`
}

// AppliesTo reports whether the program covers any of the given
// equipment types. A program with no equipment list applies to every
// home (whole-home and battery programs).
func (p Program) AppliesTo(types []model.EquipmentType) bool {
	if len(p.Equipment) == 0 {
		return true
	}
	for _, want := range p.Equipment {
		for _, have := range types {
			if model.EquipmentType(want) == have {
				return true
			}
		}
	}
	return false
}

type table struct {
	Version string               `yaml:"version"`
	States  map[string][]Program `yaml:"states"`
}

var (
	loadOnce sync.Once
	loaded   table
	loadErr  error
)

func load() (table, error) {
	loadOnce.Do(func() {
		loadErr = yaml.Unmarshal(rebateYAML, &loaded)
		if loadErr != nil {
			loadErr = fmt.Errorf("parsing rebate table: %w", loadErr)
		}
	})
	return loaded, loadErr
}

// ForState returns every program available in the given state, in table
// order. States without entries return an empty slice, not an error.
func ForState(state model.USState) ([]Program, error) {
	t, err := load()
	if err != nil {
		return nil, err
	}
	return t.States[string(state)], nil
}

// Match returns the programs in the given state that apply to a home
// with the given equipment. General programs always match.
func Match(state model.USState, types []model.EquipmentType) ([]Program, error) {
	all, err := ForState(state)
	if err != nil {
		return nil, err
	}
	var matched []Program
	for _, p := range all {
		if p.AppliesTo(types) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}
