package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
)

// ExpectedSchemaVersion is the latest schema version that the application
// expects. If the database cannot be migrated to this version, it's a
// fatal error.
const ExpectedSchemaVersion = 3

// Migration represents a database schema migration.
type Migration struct {
	Up          func(*sql.Tx) error
	Description string
	Version     int
}

var migrations = []Migration{
	{
		Version:     1,
		Description: "Initial schema",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS homes (
					id TEXT PRIMARY KEY,
					name TEXT NOT NULL,
					address TEXT,
					state TEXT,
					year_built TEXT,
					climate_zone TEXT NOT NULL,
					home_type TEXT,
					total_sqft REAL DEFAULT 0,
					bedroom_count INTEGER DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
				)`,

				`CREATE TABLE IF NOT EXISTS rooms (
					id TEXT PRIMARY KEY,
					home_id TEXT NOT NULL,
					name TEXT NOT NULL,
					square_footage REAL NOT NULL,
					ceiling_height INTEGER DEFAULT 8,
					climate_zone TEXT NOT NULL,
					insulation TEXT NOT NULL,
					calculated_btu REAL DEFAULT 0,
					calculated_tonnage REAL DEFAULT 0,
					scan_was_used INTEGER DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (home_id) REFERENCES homes(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_rooms_home ON rooms(home_id)`,

				`CREATE TABLE IF NOT EXISTS windows (
					id TEXT PRIMARY KEY,
					room_id TEXT NOT NULL,
					direction TEXT NOT NULL,
					size TEXT NOT NULL,
					pane TEXT NOT NULL,
					frame TEXT NOT NULL,
					condition TEXT NOT NULL,
					FOREIGN KEY (room_id) REFERENCES rooms(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_windows_room ON windows(room_id)`,

				`CREATE TABLE IF NOT EXISTS equipment (
					id TEXT PRIMARY KEY,
					home_id TEXT NOT NULL,
					type TEXT NOT NULL,
					age TEXT NOT NULL,
					estimated_efficiency REAL DEFAULT 0,
					notes TEXT,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (home_id) REFERENCES homes(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_equipment_home ON equipment(home_id)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     2,
		Description: "Add appliance inventory and energy bills",
		Up: func(tx *sql.Tx) error {
			queries := []string{
				`CREATE TABLE IF NOT EXISTS appliances (
					id TEXT PRIMARY KEY,
					home_id TEXT NOT NULL,
					room_id TEXT,
					name TEXT NOT NULL,
					category TEXT NOT NULL,
					detection TEXT DEFAULT 'manual',
					wattage REAL DEFAULT 0,
					hours_per_day REAL DEFAULT 0,
					quantity INTEGER DEFAULT 1,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (home_id) REFERENCES homes(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_appliances_home ON appliances(home_id)`,

				`CREATE TABLE IF NOT EXISTS energy_bills (
					id TEXT PRIMARY KEY,
					home_id TEXT NOT NULL,
					period_start DATETIME NOT NULL,
					period_end DATETIME NOT NULL,
					utility TEXT,
					total_kwh REAL NOT NULL,
					total_cost REAL NOT NULL,
					rate REAL DEFAULT 0,
					created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
					FOREIGN KEY (home_id) REFERENCES homes(id) ON DELETE CASCADE
				)`,
				`CREATE INDEX idx_bills_home_period ON energy_bills(home_id, period_start)`,
			}

			for _, query := range queries {
				if _, err := tx.Exec(query); err != nil {
					return fmt.Errorf("failed to execute query: %w", err)
				}
			}
			return nil
		},
	},
	{
		Version:     3,
		Description: "Add envelope assessments",
		Up: func(tx *sql.Tx) error {
			_, err := tx.Exec(`
				CREATE TABLE IF NOT EXISTS envelopes (
					home_id TEXT PRIMARY KEY,
					attic_insulation TEXT NOT NULL,
					wall_insulation TEXT NOT NULL,
					basement TEXT NOT NULL,
					air_sealing TEXT NOT NULL,
					weatherstripping TEXT NOT NULL,
					notes TEXT,
					FOREIGN KEY (home_id) REFERENCES homes(id) ON DELETE CASCADE
				)
			`)
			return err
		},
	},
}

// Migrate applies all pending database migrations.
func (s *SQLiteStorage) Migrate(ctx context.Context) error {
	if err := validateContext(ctx); err != nil {
		return err
	}

	var currentVersion int
	err := s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get schema version: %w", err)
	}

	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, txErr := s.db.BeginTx(ctx, nil)
		if txErr != nil {
			return fmt.Errorf("failed to begin transaction: %w", txErr)
		}

		if upErr := migration.Up(tx); upErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, upErr)
		}

		if _, execErr := tx.Exec(fmt.Sprintf("PRAGMA user_version = %d", migration.Version)); execErr != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to update schema version: %w", execErr)
		}

		if commitErr := tx.Commit(); commitErr != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, commitErr)
		}

		slog.Info("Applied migration",
			"version", migration.Version,
			"description", migration.Description)
	}

	var finalVersion int
	err = s.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&finalVersion)
	if err != nil {
		return fmt.Errorf("failed to verify final schema version: %w", err)
	}

	if finalVersion != ExpectedSchemaVersion {
		return fmt.Errorf("database schema version mismatch: expected %d, got %d", ExpectedSchemaVersion, finalVersion)
	}

	return nil
}
