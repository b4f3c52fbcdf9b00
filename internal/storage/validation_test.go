package storage

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/hearthaudit/hearth/internal/model"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name      string
		str       string
		paramName string
		wantErr   bool
	}{
		{
			name:      "valid string",
			str:       "test",
			paramName: "param",
			wantErr:   false,
		},
		{
			name:      "empty string",
			str:       "",
			paramName: "param",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			str:       "   ",
			paramName: "param",
			wantErr:   true,
		},
		{
			name:      "string with spaces",
			str:       "  test  ",
			paramName: "param",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, tt.paramName)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateString() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateID(t *testing.T) {
	if err := validateID(uuid.New(), "id"); err != nil {
		t.Errorf("validateID() error for a real ID: %v", err)
	}
	if err := validateID(uuid.Nil, "id"); err == nil {
		t.Error("validateID() should reject the zero UUID")
	}
}

func TestValidateHome(t *testing.T) {
	tests := []struct {
		home    *model.Home
		name    string
		wantErr bool
	}{
		{
			name:    "valid home",
			home:    &model.Home{Name: "Maple Street", TotalSqFt: 1500},
			wantErr: false,
		},
		{
			name:    "nil home",
			home:    nil,
			wantErr: true,
		},
		{
			name:    "blank name",
			home:    &model.Home{Name: "   "},
			wantErr: true,
		},
		{
			name:    "negative square footage",
			home:    &model.Home{Name: "Maple Street", TotalSqFt: -100},
			wantErr: true,
		},
		{
			name:    "zero square footage is fine",
			home:    &model.Home{Name: "Maple Street"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateHome(tt.home)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateHome() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateRoom(t *testing.T) {
	homeID := uuid.New()
	tests := []struct {
		room    *model.Room
		name    string
		wantErr bool
	}{
		{
			name:    "valid room",
			room:    &model.Room{Name: "Bedroom", SquareFootage: 150, HomeID: homeID},
			wantErr: false,
		},
		{
			name:    "nil room",
			room:    nil,
			wantErr: true,
		},
		{
			name:    "blank name",
			room:    &model.Room{Name: "", SquareFootage: 150, HomeID: homeID},
			wantErr: true,
		},
		{
			name:    "zero square footage",
			room:    &model.Room{Name: "Bedroom", HomeID: homeID},
			wantErr: true,
		},
		{
			name:    "missing home ID",
			room:    &model.Room{Name: "Bedroom", SquareFootage: 150},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateRoom(tt.room)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateRoom() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateEquipment(t *testing.T) {
	homeID := uuid.New()
	tests := []struct {
		eq      *model.Equipment
		name    string
		wantErr bool
	}{
		{
			name:    "valid equipment",
			eq:      &model.Equipment{Type: model.EquipmentFurnace, HomeID: homeID},
			wantErr: false,
		},
		{
			name:    "unknown type",
			eq:      &model.Equipment{Type: "Swamp Cooler", HomeID: homeID},
			wantErr: true,
		},
		{
			name:    "missing home ID",
			eq:      &model.Equipment{Type: model.EquipmentFurnace},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateEquipment(tt.eq)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateEquipment() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateAppliance(t *testing.T) {
	homeID := uuid.New()
	tests := []struct {
		appliance *model.Appliance
		name      string
		wantErr   bool
	}{
		{
			name:      "valid appliance",
			appliance: &model.Appliance{Name: "Fridge", Quantity: 1, HomeID: homeID},
			wantErr:   false,
		},
		{
			name:      "zero quantity",
			appliance: &model.Appliance{Name: "Fridge", Quantity: 0, HomeID: homeID},
			wantErr:   true,
		},
		{
			name:      "blank name",
			appliance: &model.Appliance{Name: " ", Quantity: 1, HomeID: homeID},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateAppliance(tt.appliance)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateAppliance() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateBill(t *testing.T) {
	homeID := uuid.New()
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		bill    *model.EnergyBill
		name    string
		wantErr bool
	}{
		{
			name: "valid bill",
			bill: &model.EnergyBill{
				HomeID: homeID, PeriodStart: start, PeriodEnd: start.AddDate(0, 1, 0),
				TotalKWh: 500, TotalCost: 80,
			},
			wantErr: false,
		},
		{
			name: "inverted period",
			bill: &model.EnergyBill{
				HomeID: homeID, PeriodStart: start, PeriodEnd: start.AddDate(0, -1, 0),
				TotalKWh: 500,
			},
			wantErr: true,
		},
		{
			name: "negative usage",
			bill: &model.EnergyBill{
				HomeID: homeID, PeriodStart: start, PeriodEnd: start.AddDate(0, 1, 0),
				TotalKWh: -10,
			},
			wantErr: true,
		},
		{
			name: "missing home ID",
			bill: &model.EnergyBill{
				PeriodStart: start, PeriodEnd: start.AddDate(0, 1, 0), TotalKWh: 500,
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateBill(tt.bill)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateBill() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
