package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthaudit/hearth/internal/model"
)

// SaveRoom inserts or updates a room and replaces its window list. The
// room row and the windows change together, so both happen in one
// transaction.
func (s *SQLiteStorage) SaveRoom(ctx context.Context, room *model.Room) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateRoom(room); err != nil {
		return err
	}

	if room.ID == uuid.Nil {
		room.ID = uuid.New()
	}
	if room.CreatedAt.IsZero() {
		room.CreatedAt = time.Now()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO rooms (id, home_id, name, square_footage, ceiling_height, climate_zone, insulation, calculated_btu, calculated_tonnage, scan_was_used, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			square_footage = excluded.square_footage,
			ceiling_height = excluded.ceiling_height,
			climate_zone = excluded.climate_zone,
			insulation = excluded.insulation,
			calculated_btu = excluded.calculated_btu,
			calculated_tonnage = excluded.calculated_tonnage,
			scan_was_used = excluded.scan_was_used
	`, room.ID.String(), room.HomeID.String(), room.Name, room.SquareFootage,
		int(room.CeilingHeight), string(room.ClimateZone), string(room.Insulation),
		room.CalculatedBTU, room.CalculatedTonnage, room.ScanWasUsed, room.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save room: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `DELETE FROM windows WHERE room_id = ?`, room.ID.String()); err != nil {
		return fmt.Errorf("failed to clear windows: %w", err)
	}
	for i := range room.Windows {
		w := &room.Windows[i]
		if w.ID == uuid.Nil {
			w.ID = uuid.New()
		}
		_, err = tx.ExecContext(ctx, `
			INSERT INTO windows (id, room_id, direction, size, pane, frame, condition)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, w.ID.String(), room.ID.String(), string(w.Direction), string(w.Size),
			string(w.Pane), string(w.Frame), string(w.Condition))
		if err != nil {
			return fmt.Errorf("failed to save window: %w", err)
		}
	}

	return tx.Commit()
}

// ListRooms returns a home's rooms with windows, oldest first.
func (s *SQLiteStorage) ListRooms(ctx context.Context, homeID uuid.UUID) ([]model.Room, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(homeID, "homeID"); err != nil {
		return nil, err
	}
	return s.listRooms(ctx, s.db, homeID)
}

func (s *SQLiteStorage) listRooms(ctx context.Context, q queryable, homeID uuid.UUID) ([]model.Room, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, name, square_footage, ceiling_height, climate_zone, insulation, calculated_btu, calculated_tonnage, scan_was_used, created_at
		FROM rooms WHERE home_id = ? ORDER BY created_at
	`, homeID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.Room
	for rows.Next() {
		var r model.Room
		var idStr, climateZone, insulation string
		var ceiling int
		if err := rows.Scan(&idStr, &r.Name, &r.SquareFootage, &ceiling, &climateZone,
			&insulation, &r.CalculatedBTU, &r.CalculatedTonnage, &r.ScanWasUsed, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan room: %w", err)
		}
		if r.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("failed to parse room id: %w", err)
		}
		r.HomeID = homeID
		r.CeilingHeight = model.CeilingHeight(ceiling)
		r.ClimateZone = model.ClimateZone(climateZone)
		r.Insulation = model.InsulationQuality(insulation)
		result = append(result, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range result {
		if result[i].Windows, err = s.listWindows(ctx, q, result[i].ID); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func (s *SQLiteStorage) listWindows(ctx context.Context, q queryable, roomID uuid.UUID) ([]model.Window, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, direction, size, pane, frame, condition
		FROM windows WHERE room_id = ? ORDER BY id
	`, roomID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list windows: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.Window
	for rows.Next() {
		var w model.Window
		var idStr, direction, size, pane, frame, condition string
		if err := rows.Scan(&idStr, &direction, &size, &pane, &frame, &condition); err != nil {
			return nil, fmt.Errorf("failed to scan window: %w", err)
		}
		if w.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("failed to parse window id: %w", err)
		}
		w.Direction = model.CardinalDirection(direction)
		w.Size = model.WindowSize(size)
		w.Pane = model.PaneType(pane)
		w.Frame = model.FrameMaterial(frame)
		w.Condition = model.WindowCondition(condition)
		result = append(result, w)
	}
	return result, rows.Err()
}

// DeleteRoom removes a room and its windows.
func (s *SQLiteStorage) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete room: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrRoomNotFound, id)
	}
	return nil
}
