package model

import (
	"math"
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestComputedTotalSqFt(t *testing.T) {
	tests := []struct {
		name string
		home Home
		want float64
	}{
		{
			name: "manual override wins",
			home: Home{TotalSqFt: 1800, Rooms: []Room{{SquareFootage: 200}}},
			want: 1800,
		},
		{
			name: "rooms sum when no override",
			home: Home{Rooms: []Room{{SquareFootage: 200}, {SquareFootage: 350}}},
			want: 550,
		},
		{
			name: "empty home",
			home: Home{},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.home.ComputedTotalSqFt(); got != tt.want {
				t.Errorf("ComputedTotalSqFt() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBillBasedAnnualKWh(t *testing.T) {
	tests := []struct {
		name   string
		home   Home
		want   float64
		wantOK bool
	}{
		{
			name:   "no bills",
			home:   Home{},
			wantOK: false,
		},
		{
			name: "degenerate bills are skipped",
			home: Home{Bills: []EnergyBill{
				{PeriodStart: day(0), PeriodEnd: day(0), TotalKWh: 500},
				{PeriodStart: day(0), PeriodEnd: day(30), TotalKWh: 0},
			}},
			wantOK: false,
		},
		{
			name: "usable bills average",
			home: Home{Bills: []EnergyBill{
				// 365-day periods so annualized usage equals the bill usage.
				{PeriodStart: day(0), PeriodEnd: day(365), TotalKWh: 6000},
				{PeriodStart: day(0), PeriodEnd: day(365), TotalKWh: 8000},
			}},
			want:   7000,
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.home.BillBasedAnnualKWh()
			if ok != tt.wantOK {
				t.Fatalf("BillBasedAnnualKWh() ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && math.Abs(got-tt.want) > 1e-6 {
				t.Errorf("BillBasedAnnualKWh() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestActualElectricityRate(t *testing.T) {
	tests := []struct {
		name string
		home Home
		want float64
	}{
		{
			name: "default without bills",
			home: Home{},
			want: DefaultElectricityRate,
		},
		{
			name: "explicit rates average",
			home: Home{Bills: []EnergyBill{{Rate: 0.10}, {Rate: 0.20}}},
			want: 0.15,
		},
		{
			name: "rate derived from cost over usage",
			home: Home{Bills: []EnergyBill{{TotalKWh: 1000, TotalCost: 180}}},
			want: 0.18,
		},
		{
			name: "unusable bills fall back to default",
			home: Home{Bills: []EnergyBill{{TotalKWh: 0, TotalCost: 100}}},
			want: DefaultElectricityRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.home.ActualElectricityRate()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ActualElectricityRate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTotalPhantomAnnualKWh(t *testing.T) {
	home := Home{Appliances: []Appliance{
		{Category: CategoryGameConsole, Quantity: 2}, // 10W standby each
		{Category: CategoryLEDBulb, Quantity: 20},    // no standby
	}}
	want := 10.0 * 2 * 8760 / 1000
	if got := home.TotalPhantomAnnualKWh(); math.Abs(got-want) > 1e-9 {
		t.Errorf("TotalPhantomAnnualKWh() = %v, want %v", got, want)
	}
}
