package model

import (
	"time"

	"github.com/google/uuid"
)

// EnergyBill is one uploaded utility bill. Rate is optional; when zero the
// effective rate derives from TotalCost / TotalKWh.
type EnergyBill struct {
	PeriodStart time.Time
	PeriodEnd   time.Time
	CreatedAt   time.Time
	Utility     string
	TotalKWh    float64
	TotalCost   float64
	Rate        float64
	ID          uuid.UUID
	HomeID      uuid.UUID
}

// ComputedRate returns the explicit rate when present, otherwise the
// cost-per-kWh derived from the bill, otherwise 0.
func (b EnergyBill) ComputedRate() float64 {
	if b.Rate > 0 {
		return b.Rate
	}
	if b.TotalKWh > 0 {
		return b.TotalCost / b.TotalKWh
	}
	return 0
}

// PeriodDays is the billing period length in whole days.
func (b EnergyBill) PeriodDays() float64 {
	return b.PeriodEnd.Sub(b.PeriodStart).Hours() / 24
}

// AnnualizedKWh projects the bill's usage to a full year. Returns ok=false
// when the period or usage is degenerate.
func (b EnergyBill) AnnualizedKWh() (float64, bool) {
	days := b.PeriodDays()
	if days <= 0 || b.TotalKWh <= 0 {
		return 0, false
	}
	return b.TotalKWh / days * 365.0, true
}
