package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/Jobenas/stm32bridge/internal/domain"
)

// Repository implements repository.SpecStore using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository at the given path, migrating the
// schema as needed
func New(dbPath string) (*Repository, error) {
	dsn := dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS specs (
		part_number TEXT PRIMARY KEY,
		family TEXT NOT NULL,
		core TEXT NOT NULL,
		flash_kb INTEGER NOT NULL,
		ram_kb INTEGER NOT NULL,
		data JSON NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_specs_family ON specs(family);
	`

	_, err := r.db.Exec(schema)
	return err
}

// specKey normalizes a part number into the primary key form
func specKey(partNumber string) string {
	return strings.ToUpper(strings.TrimSpace(partNumber))
}

// SaveSpec inserts or replaces the record for its part number
func (r *Repository) SaveSpec(ctx context.Context, spec *domain.MCUSpec) error {
	if err := spec.Validate(); err != nil {
		return fmt.Errorf("refusing to cache invalid record: %w", err)
	}

	data, err := json.Marshal(spec)
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO specs (part_number, family, core, flash_kb, ram_kb, data, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(part_number) DO UPDATE SET
			family = excluded.family,
			core = excluded.core,
			flash_kb = excluded.flash_kb,
			ram_kb = excluded.ram_kb,
			data = excluded.data,
			updated_at = CURRENT_TIMESTAMP
	`, specKey(spec.PartNumber), spec.Family, string(spec.Core), spec.FlashSizeKB, spec.RAMSizeKB, data)

	if err != nil {
		return fmt.Errorf("failed to upsert record: %w", err)
	}
	return nil
}

// GetSpec returns the record for a part number, or nil when absent
func (r *Repository) GetSpec(ctx context.Context, partNumber string) (*domain.MCUSpec, error) {
	row := specRow{}
	err := r.db.QueryRowContext(ctx, `
		SELECT `+specColumns+` FROM specs WHERE part_number = ?
	`, specKey(partNumber)).Scan(row.scanArgs()...)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query record: %w", err)
	}

	return row.toDomain()
}

// ListSpecs returns all cached records ordered by part number
func (r *Repository) ListSpecs(ctx context.Context) ([]*domain.MCUSpec, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+specColumns+` FROM specs ORDER BY part_number
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query records: %w", err)
	}
	defer rows.Close()

	var specs []*domain.MCUSpec
	for rows.Next() {
		row := specRow{}
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan record: %w", err)
		}
		spec, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating records: %w", err)
	}
	return specs, nil
}

// DeleteSpec removes the record for a part number
func (r *Repository) DeleteSpec(ctx context.Context, partNumber string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM specs WHERE part_number = ?`, specKey(partNumber))
	if err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	return nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
