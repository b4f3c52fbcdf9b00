package upgrade

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed taxcredits.yaml
var taxCreditYAML []byte

// CreditMeasure is one creditable measure from the configuration table.
// A Cap of 0 means the measure is uncapped (Section 25D).
type CreditMeasure struct {
	Section string  `yaml:"section"`
	Cap     float64 `yaml:"cap"`
}

// CreditSection describes one IRS credit section.
type CreditSection struct {
	Description string `yaml:"description"`
	Disclaimer  string `yaml:"disclaimer"`
}

// CreditTable is the versioned federal tax credit configuration. It is
// data, not logic: revising the program means editing the embedded YAML.
type CreditTable struct {
	Sections      map[string]CreditSection `yaml:"sections"`
	Measures      map[string]CreditMeasure `yaml:"measures"`
	Version       string                   `yaml:"version"`
	CreditPercent float64                  `yaml:"credit_percent"`
	AnnualCap25C  float64                  `yaml:"annual_cap_25c"`
}

var (
	creditTableOnce sync.Once
	creditTable     CreditTable
	creditTableErr  error
)

// Credits returns the bundled federal credit table, parsed once.
func Credits() (CreditTable, error) {
	creditTableOnce.Do(func() {
		creditTableErr = yaml.Unmarshal(taxCreditYAML, &creditTable)
		if creditTableErr != nil {
			creditTableErr = fmt.Errorf("failed to parse tax credit table: %w", creditTableErr)
		}
	})
	return creditTable, creditTableErr
}

// Measure looks up a measure key, returning ok=false for measures the
// table does not credit.
func (t CreditTable) Measure(key string) (CreditMeasure, bool) {
	m, ok := t.Measures[key]
	return m, ok
}

// CreditTotals aggregates the federal credits across a report.
type CreditTotals struct {
	Total25C   float64
	Total25D   float64
	GrandTotal float64
}

// AggregateTaxCredits sums the Best-tier credit of each equipment item's
// recommendation set. Section 25C credits sum and then cap at the annual
// limit; 25D credits are uncapped. A recommendation counts toward 25D
// when its title or technology note mentions a heat pump, solar, or
// geothermal system.
func AggregateTaxCredits(all [][]Recommendation) CreditTotals {
	table, err := Credits()
	if err != nil {
		return CreditTotals{}
	}

	var sum25C, sum25D float64
	for _, recs := range all {
		for _, rec := range recs {
			if rec.Tier != TierBest || !rec.TaxCreditEligible {
				continue
			}
			if isCleanEnergy(rec) {
				sum25D += rec.TaxCreditAmount
			} else {
				sum25C += rec.TaxCreditAmount
			}
		}
	}

	if sum25C > table.AnnualCap25C {
		sum25C = table.AnnualCap25C
	}
	return CreditTotals{
		Total25C:   sum25C,
		Total25D:   sum25D,
		GrandTotal: sum25C + sum25D,
	}
}

func isCleanEnergy(rec Recommendation) bool {
	if strings.Contains(rec.TechnologyNote, "25D") {
		return true
	}
	title := strings.ToLower(rec.Title)
	return strings.Contains(title, "heat pump") ||
		strings.Contains(title, "solar") ||
		strings.Contains(title, "geothermal")
}
