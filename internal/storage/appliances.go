package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthaudit/hearth/internal/model"
)

// SaveAppliance inserts or updates one appliance record. RoomID may be
// the zero UUID for appliances not tied to a room.
func (s *SQLiteStorage) SaveAppliance(ctx context.Context, a *model.Appliance) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateAppliance(a); err != nil {
		return err
	}

	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now()
	}

	var roomID any
	if a.RoomID != uuid.Nil {
		roomID = a.RoomID.String()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO appliances (id, home_id, room_id, name, category, detection, wattage, hours_per_day, quantity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			room_id = excluded.room_id,
			name = excluded.name,
			category = excluded.category,
			detection = excluded.detection,
			wattage = excluded.wattage,
			hours_per_day = excluded.hours_per_day,
			quantity = excluded.quantity
	`, a.ID.String(), a.HomeID.String(), roomID, a.Name, string(a.Category),
		string(a.Detection), a.Wattage, a.HoursPerDay, a.Quantity, a.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save appliance: %w", err)
	}
	return nil
}

// ListAppliances returns a home's appliances, oldest first.
func (s *SQLiteStorage) ListAppliances(ctx context.Context, homeID uuid.UUID) ([]model.Appliance, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(homeID, "homeID"); err != nil {
		return nil, err
	}
	return s.listAppliances(ctx, s.db, homeID)
}

func (s *SQLiteStorage) listAppliances(ctx context.Context, q queryable, homeID uuid.UUID) ([]model.Appliance, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, room_id, name, category, detection, wattage, hours_per_day, quantity, created_at
		FROM appliances WHERE home_id = ? ORDER BY created_at
	`, homeID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list appliances: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.Appliance
	for rows.Next() {
		var a model.Appliance
		var idStr, category, detection string
		var roomID sql.NullString
		if err := rows.Scan(&idStr, &roomID, &a.Name, &category, &detection,
			&a.Wattage, &a.HoursPerDay, &a.Quantity, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan appliance: %w", err)
		}
		if a.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("failed to parse appliance id: %w", err)
		}
		if roomID.Valid {
			if a.RoomID, err = uuid.Parse(roomID.String); err != nil {
				return nil, fmt.Errorf("failed to parse appliance room id: %w", err)
			}
		}
		a.HomeID = homeID
		a.Category = model.ApplianceCategory(category)
		a.Detection = model.DetectionMethod(detection)
		result = append(result, a)
	}
	return result, rows.Err()
}

// DeleteAppliance removes one appliance record.
func (s *SQLiteStorage) DeleteAppliance(ctx context.Context, id uuid.UUID) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM appliances WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete appliance: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: appliance %s", ErrRecordNotFound, id)
	}
	return nil
}
