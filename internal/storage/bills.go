package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/hearthaudit/hearth/internal/model"
)

// SaveBill inserts or updates one energy bill.
func (s *SQLiteStorage) SaveBill(ctx context.Context, b *model.EnergyBill) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateBill(b); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := saveBillTx(ctx, tx, b); err != nil {
		return err
	}
	return tx.Commit()
}

// SaveBills inserts a batch of bills in one transaction, as produced by
// CSV import. All bills are validated before any row is written.
func (s *SQLiteStorage) SaveBills(ctx context.Context, bills []model.EnergyBill) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	for i := range bills {
		if err := validateBill(&bills[i]); err != nil {
			return fmt.Errorf("bill at index %d: %w", i, err)
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range bills {
		if err := saveBillTx(ctx, tx, &bills[i]); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func saveBillTx(ctx context.Context, q queryable, b *model.EnergyBill) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}

	_, err := q.ExecContext(ctx, `
		INSERT INTO energy_bills (id, home_id, period_start, period_end, utility, total_kwh, total_cost, rate, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			period_start = excluded.period_start,
			period_end = excluded.period_end,
			utility = excluded.utility,
			total_kwh = excluded.total_kwh,
			total_cost = excluded.total_cost,
			rate = excluded.rate
	`, b.ID.String(), b.HomeID.String(), b.PeriodStart, b.PeriodEnd, b.Utility,
		b.TotalKWh, b.TotalCost, b.Rate, b.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to save bill: %w", err)
	}
	return nil
}

// ListBills returns a home's bills ordered by period start.
func (s *SQLiteStorage) ListBills(ctx context.Context, homeID uuid.UUID) ([]model.EnergyBill, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateID(homeID, "homeID"); err != nil {
		return nil, err
	}
	return s.listBills(ctx, s.db, homeID)
}

func (s *SQLiteStorage) listBills(ctx context.Context, q queryable, homeID uuid.UUID) ([]model.EnergyBill, error) {
	rows, err := q.QueryContext(ctx, `
		SELECT id, period_start, period_end, utility, total_kwh, total_cost, rate, created_at
		FROM energy_bills WHERE home_id = ? ORDER BY period_start
	`, homeID.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list bills: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var result []model.EnergyBill
	for rows.Next() {
		var b model.EnergyBill
		var idStr string
		if err := rows.Scan(&idStr, &b.PeriodStart, &b.PeriodEnd, &b.Utility,
			&b.TotalKWh, &b.TotalCost, &b.Rate, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan bill: %w", err)
		}
		if b.ID, err = uuid.Parse(idStr); err != nil {
			return nil, fmt.Errorf("failed to parse bill id: %w", err)
		}
		b.HomeID = homeID
		result = append(result, b)
	}
	return result, rows.Err()
}

// DeleteBill removes one bill record.
func (s *SQLiteStorage) DeleteBill(ctx context.Context, id uuid.UUID) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateID(id, "id"); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, `DELETE FROM energy_bills WHERE id = ?`, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete bill: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: bill %s", ErrRecordNotFound, id)
	}
	return nil
}
