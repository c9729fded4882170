package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/ritikas/giftpool/internal/models"
)

// CreateCoworker persists a new coworker to the database.
func (s *SQLiteStore) CreateCoworker(ctx context.Context, coworker *models.Coworker) error {
	// Generate ID if not set
	if coworker.ID == "" {
		coworker.ID = uuid.New().String()
	}
	if coworker.CreatedAt == 0 {
		coworker.CreatedAt = time.Now().Unix()
	}

	month, day := birthdayColumns(coworker.Birthday)

	_, err := s.db.ExecContext(ctx,
		"INSERT INTO coworkers (id, name, birth_month, birth_day, created_at) VALUES (?, ?, ?, ?, ?)",
		coworker.ID, coworker.Name, month, day, coworker.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert coworker: %w", err)
	}

	return nil
}

// GetCoworker retrieves a coworker by ID. Returns nil, nil when not found.
func (s *SQLiteStore) GetCoworker(ctx context.Context, id string) (*models.Coworker, error) {
	coworker := &models.Coworker{}
	var month, day sql.NullInt64

	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, birth_month, birth_day, created_at FROM coworkers WHERE id = ?",
		id,
	).Scan(&coworker.ID, &coworker.Name, &month, &day, &coworker.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get coworker: %w", err)
	}

	coworker.Birthday = birthdayFromColumns(month, day)
	return coworker, nil
}

// ListCoworkers retrieves all coworkers ordered by creation time.
func (s *SQLiteStore) ListCoworkers(ctx context.Context) ([]models.Coworker, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, birth_month, birth_day, created_at FROM coworkers ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list coworkers: %w", err)
	}
	defer rows.Close()

	var coworkers []models.Coworker
	for rows.Next() {
		var coworker models.Coworker
		var month, day sql.NullInt64

		if err := rows.Scan(&coworker.ID, &coworker.Name, &month, &day, &coworker.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan coworker: %w", err)
		}
		coworker.Birthday = birthdayFromColumns(month, day)
		coworkers = append(coworkers, coworker)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate coworkers: %w", err)
	}

	return coworkers, nil
}

// UpdateCoworker replaces the name and birthday of an existing coworker.
func (s *SQLiteStore) UpdateCoworker(ctx context.Context, coworker *models.Coworker) error {
	month, day := birthdayColumns(coworker.Birthday)

	res, err := s.db.ExecContext(ctx,
		"UPDATE coworkers SET name = ?, birth_month = ?, birth_day = ? WHERE id = ?",
		coworker.Name, month, day, coworker.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update coworker: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("coworker not found: %s", coworker.ID)
	}

	return nil
}

// DeleteCoworker removes the coworker record and strips the coworker out of
// every contribution entry that names it as recipient or contributor, in one
// transaction. Either everything applies or nothing does.
func (s *SQLiteStore) DeleteCoworker(ctx context.Context, id string) error {
	// Check if coworker exists
	var exists int
	err := s.db.QueryRowContext(ctx, "SELECT 1 FROM coworkers WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("coworker not found: %s", id)
	}
	if err != nil {
		return fmt.Errorf("failed to check coworker existence: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"DELETE FROM contribution_entries WHERE recipient_id = ? OR contributor_id = ?",
		id, id,
	)
	if err != nil {
		return fmt.Errorf("failed to delete contribution entries: %w", err)
	}

	_, err = tx.ExecContext(ctx, "DELETE FROM coworkers WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete coworker: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func birthdayColumns(birthday *models.Date) (interface{}, interface{}) {
	if birthday == nil {
		return nil, nil
	}
	return int(birthday.Month), birthday.Day
}

func birthdayFromColumns(month, day sql.NullInt64) *models.Date {
	if !month.Valid || !day.Valid {
		return nil
	}
	return &models.Date{Month: time.Month(month.Int64), Day: int(day.Int64)}
}
