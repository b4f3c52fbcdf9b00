package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthaudit/hearth/internal/model"
)

// SaveEquipment inserts or updates one equipment record.
func (s *SQLiteStorage) SaveEquipment(ctx context.Context, eq *model.Equipment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateEquipment(eq); err != nil {
		return err
	}

	if eq.ID == uuid.Nil {
		eq.ID = uuid.New()
	}
	if eq.CreatedAt.IsZero() {
		eq.CreatedAt = time.Now()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO equipment (id, home_id, type, age, estimated_efficiency, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			type = excluded.type,
			age = excluded.age,
			estimated_efficiency = excluded.estimated_efficiency,
			notes = excluded.notes
	`, eq.ID.String(), eq.HomeID.String(), string(eq.Type), string(eq.Age),
		eq.EstimatedEfficiency, eq.Notes, eq.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save equipment: %w", err)
	}
	return nil
}

// ListEquipment returns a home's equipment, oldest first.
func (s *SQLiteStorage) ListEquipment(ctx context.Context, homeID uuid.UUID) ([]model.Equipment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(homeID, "homeID"); err != nil {
		return nil, err
	}
	return s.listEquipment(ctx, s.db, homeID)
}

func (s *SQLiteStorage) listEquipment(ctx context.Context, q queryable, homeID uuid.UUID) ([]model.Equipment, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, type, age, estimated_efficiency, notes, created_at
		FROM equipment WHERE home_id = ? ORDER BY created_at
	`, homeID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list equipment: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.Equipment
	for rows.Next() {
		var e model.Equipment
		var idStr, typ, age string
		if err := rows.Scan(&idStr, &typ, &age, &e.EstimatedEfficiency, &e.Notes, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan equipment: %w", err)
		}
		if e.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("failed to parse equipment id: %w", err)
		}
		e.HomeID = homeID
		e.Type = model.EquipmentType(typ)
		e.Age = model.AgeBracket(age)
		result = append(result, e)
	}
	return result, rows.Err()
}

// DeleteEquipment removes one equipment record.
func (s *SQLiteStorage) DeleteEquipment(ctx context.Context, id uuid.UUID) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM equipment WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete equipment: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: equipment %s", ErrRecordNotFound, id)
	}
	return nil
}
