// Package storage provides the data persistence layer for the hearth
// application.
package storage

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/hearthaudit/hearth/internal/model"
)

// Validation errors.
var (
	ErrNilContext     = errors.New("context cannot be nil")
	ErrEmptyString    = errors.New("string parameter cannot be empty")
	ErrNilParameter   = errors.New("parameter cannot be nil")
	ErrNilID          = errors.New("id cannot be the zero UUID")
	ErrInvalidHome    = errors.New("invalid home")
	ErrInvalidRoom    = errors.New("invalid room")
	ErrInvalidBill    = errors.New("invalid energy bill")
	ErrHomeNotFound   = errors.New("home not found")
	ErrRoomNotFound   = errors.New("room not found")
	ErrRecordNotFound = errors.New("record not found")
)

// validateContext ensures the context is not nil.
func validateContext(ctx context.Context) error {
	if ctx == nil {
		return ErrNilContext
	}
	return nil
}

// validateString ensures a string parameter is not empty.
func validateString(s string, paramName string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("%w: %s", ErrEmptyString, paramName)
	}
	return nil
}

// validateID ensures a UUID is not the zero value.
func validateID(id uuid.UUID, paramName string) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: %s", ErrNilID, paramName)
	}
	return nil
}

func validateHome(h *model.Home) error {
	if h == nil {
		return fmt.Errorf("%w: home", ErrNilParameter)
	}
	if strings.TrimSpace(h.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidHome)
	}
	if h.TotalSqFt < 0 {
		return fmt.Errorf("%w: square footage cannot be negative", ErrInvalidHome)
	}
	return nil
}

func validateRoom(r *model.Room) error {
	if r == nil {
		return fmt.Errorf("%w: room", ErrNilParameter)
	}
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidRoom)
	}
	if r.SquareFootage <= 0 {
		return fmt.Errorf("%w: square footage must be positive", ErrInvalidRoom)
	}
	if err := validateID(r.HomeID, "homeID"); err != nil {
		return err
	}
	return nil
}

func validateEquipment(e *model.Equipment) error {
	if e == nil {
		return fmt.Errorf("%w: equipment", ErrNilParameter)
	}
	if _, ok := model.ParseEquipmentType(string(e.Type)); !ok {
		return fmt.Errorf("unknown equipment type %q", e.Type)
	}
	return validateID(e.HomeID, "homeID")
}

func validateAppliance(a *model.Appliance) error {
	if a == nil {
		return fmt.Errorf("%w: appliance", ErrNilParameter)
	}
	if strings.TrimSpace(a.Name) == "" {
		return fmt.Errorf("%w: name", ErrEmptyString)
	}
	if a.Quantity < 1 {
		return fmt.Errorf("appliance quantity must be at least 1, got %d", a.Quantity)
	}
	return validateID(a.HomeID, "homeID")
}

func validateBill(b *model.EnergyBill) error {
	if b == nil {
		return fmt.Errorf("%w: bill", ErrNilParameter)
	}
	if b.PeriodEnd.Before(b.PeriodStart) {
		return fmt.Errorf("%w: period end precedes start", ErrInvalidBill)
	}
	if b.TotalKWh < 0 || b.TotalCost < 0 {
		return fmt.Errorf("%w: usage and cost cannot be negative", ErrInvalidBill)
	}
	return validateID(b.HomeID, "homeID")
}
