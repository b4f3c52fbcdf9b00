package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthaudit/hearth/internal/model"
)

// SaveHome inserts or updates a home record. Child collections are
// managed by their own methods; this touches only the home row.
func (s *SQLiteStorage) SaveHome(ctx context.Context, home *model.Home) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateHome(home); err != nil {
		return err
	}

	if home.ID == uuid.Nil {
		home.ID = uuid.New()
	}
	now := time.Now()
	if home.CreatedAt.IsZero() {
		home.CreatedAt = now
	}
	home.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO homes (id, name, address, state, year_built, climate_zone, home_type, total_sqft, bedroom_count, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			address = excluded.address,
			state = excluded.state,
			year_built = excluded.year_built,
			climate_zone = excluded.climate_zone,
			home_type = excluded.home_type,
			total_sqft = excluded.total_sqft,
			bedroom_count = excluded.bedroom_count,
			updated_at = excluded.updated_at
	`, home.ID.String(), home.Name, home.Address, home.State, string(home.YearBuilt),
		string(home.ClimateZone), string(home.HomeType), home.TotalSqFt, home.BedroomCount,
		home.CreatedAt, home.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to save home: %w", err)
	}
	return nil
}

// GetHome loads a home with all of its collections: rooms with windows,
// equipment, appliances, bills, and the envelope assessment.
func (s *SQLiteStorage) GetHome(ctx context.Context, id uuid.UUID) (*model.Home, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(id, "id"); err != nil {
		return nil, err
	}

	var home model.Home
	var idStr, yearBuilt, climateZone, homeType string
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, address, state, year_built, climate_zone, home_type, total_sqft, bedroom_count, created_at, updated_at
		FROM homes WHERE id = ?
	`, id.String()).Scan(
		&idStr, &home.Name, &home.Address, &home.State, &yearBuilt, &climateZone,
		&homeType, &home.TotalSqFt, &home.BedroomCount, &home.CreatedAt, &home.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrHomeNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get home: %w", err)
	}
	home.ID = id
	home.YearBuilt = model.YearBuiltRange(yearBuilt)
	home.ClimateZone = model.ClimateZone(climateZone)
	home.HomeType = model.HomeType(homeType)

	if home.Rooms, err = s.listRooms(ctx, s.db, id); err != nil {
		return nil, err
	}
	if home.Equipment, err = s.listEquipment(ctx, s.db, id); err != nil {
		return nil, err
	}
	if home.Appliances, err = s.listAppliances(ctx, s.db, id); err != nil {
		return nil, err
	}
	if home.Bills, err = s.listBills(ctx, s.db, id); err != nil {
		return nil, err
	}
	if home.Envelope, err = s.getEnvelope(ctx, s.db, id); err != nil {
		return nil, err
	}

	return &home, nil
}

// ListHomes returns all homes newest first, without child collections.
func (s *SQLiteStorage) ListHomes(ctx context.Context) ([]model.Home, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, address, state, year_built, climate_zone, home_type, total_sqft, bedroom_count, created_at, updated_at
		FROM homes ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list homes: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var homes []model.Home
	for rows.Next() {
		var h model.Home
		var idStr, yearBuilt, climateZone, homeType string
		if err := rows.Scan(&idStr, &h.Name, &h.Address, &h.State, &yearBuilt, &climateZone,
			&homeType, &h.TotalSqFt, &h.BedroomCount, &h.CreatedAt, &h.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan home: %w", err)
		}
		if h.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("failed to parse home id: %w", err)
		}
		h.YearBuilt = model.YearBuiltRange(yearBuilt)
		h.ClimateZone = model.ClimateZone(climateZone)
		h.HomeType = model.HomeType(homeType)
		homes = append(homes, h)
	}
	return homes, rows.Err()
}

// DeleteHome removes a home; foreign keys cascade to all children.
func (s *SQLiteStorage) DeleteHome(ctx context.Context, id uuid.UUID) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM homes WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete home: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrHomeNotFound, id)
	}
	return nil
}

// SaveEnvelope inserts or replaces the envelope assessment for a home.
func (s *SQLiteStorage) SaveEnvelope(ctx context.Context, homeID uuid.UUID, env *model.EnvelopeInfo) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(homeID, "homeID"); err != nil {
		return err
	}
	if env == nil {
		return fmt.Errorf("%w: envelope", ErrNilParameter)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO envelopes (home_id, attic_insulation, wall_insulation, basement, air_sealing, weatherstripping, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(home_id) DO UPDATE SET
			attic_insulation = excluded.attic_insulation,
			wall_insulation = excluded.wall_insulation,
			basement = excluded.basement,
			air_sealing = excluded.air_sealing,
			weatherstripping = excluded.weatherstripping,
			notes = excluded.notes
	`, homeID.String(), string(env.AtticInsulation), string(env.WallInsulation),
		env.Basement, env.AirSealing, env.Weatherstripping, env.Notes)
	if err != nil {
		return fmt.Errorf("failed to save envelope: %w", err)
	}
	return nil
}

func (s *SQLiteStorage) getEnvelope(ctx context.Context, q queryable, homeID uuid.UUID) (*model.EnvelopeInfo, error) {
	var env model.EnvelopeInfo
	var attic, wall string
	err := q.QueryRowContext(ctx, `
		SELECT attic_insulation, wall_insulation, basement, air_sealing, weatherstripping, notes
		FROM envelopes WHERE home_id = ?
	`, homeID.String()).Scan(&attic, &wall, &env.Basement, &env.AirSealing, &env.Weatherstripping, &env.Notes)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil // not assessed yet
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get envelope: %w", err)
	}
	env.AtticInsulation = model.InsulationQuality(attic)
	env.WallInsulation = model.InsulationQuality(wall)
	return &env, nil
}
