// Package service defines the interfaces the CLI consumes, keeping
// command code independent of the SQLite implementation.
package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/hearthaudit/hearth/internal/model"
)

// Storage defines the contract for the persistence layer.
type Storage interface {
	// Home operations
	SaveHome(ctx context.Context, home *model.Home) error
	GetHome(ctx context.Context, id uuid.UUID) (*model.Home, error)
	ListHomes(ctx context.Context) ([]model.Home, error)
	DeleteHome(ctx context.Context, id uuid.UUID) error
	SaveEnvelope(ctx context.Context, homeID uuid.UUID, env *model.EnvelopeInfo) error

	// Room operations
	SaveRoom(ctx context.Context, room *model.Room) error
	ListRooms(ctx context.Context, homeID uuid.UUID) ([]model.Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error

	// Equipment operations
	SaveEquipment(ctx context.Context, eq *model.Equipment) error
	ListEquipment(ctx context.Context, homeID uuid.UUID) ([]model.Equipment, error)
	DeleteEquipment(ctx context.Context, id uuid.UUID) error

	// Appliance operations
	SaveAppliance(ctx context.Context, a *model.Appliance) error
	ListAppliances(ctx context.Context, homeID uuid.UUID) ([]model.Appliance, error)
	DeleteAppliance(ctx context.Context, id uuid.UUID) error

	// Bill operations
	SaveBill(ctx context.Context, b *model.EnergyBill) error
	SaveBills(ctx context.Context, bills []model.EnergyBill) error
	ListBills(ctx context.Context, homeID uuid.UUID) ([]model.EnergyBill, error)
	DeleteBill(ctx context.Context, id uuid.UUID) error

	// Database management
	Migrate(ctx context.Context) error
	Close() error
}
