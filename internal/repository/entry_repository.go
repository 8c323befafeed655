package repository

import (
	"database/sql"
	"fmt"

	"myfinances-be/internal/entities"
)

// EntryFilter holds optional search criteria for entries.
// Nil fields match any value; set fields must match exactly.
type EntryFilter struct {
	Description *string
	Month       *int
	Year        *int
	UserID      int64
}

// EntryRepository defines the interface for entry database operations
type EntryRepository interface {
	Create(entry *entities.Entry) (*entities.Entry, error)
	Update(entry *entities.Entry) (*entities.Entry, error)
	Delete(id int64) error
	FindByID(id int64) (*entities.Entry, error)
	FindByFilter(filter *EntryFilter) ([]*entities.Entry, error)
	SumByUserTypeAndStatus(userID int64, entryType entities.EntryType, status entities.EntryStatus) (float64, error)
}

type entryRepository struct {
	db *sql.DB
}

// NewEntryRepository creates a new entry repository
func NewEntryRepository(db *sql.DB) EntryRepository {
	return &entryRepository{db: db}
}

// Create inserts a new entry into the database
func (r *entryRepository) Create(entry *entities.Entry) (*entities.Entry, error) {
	query := `
		INSERT INTO entries (description, month, year, value, type, status, user_id, registration_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, description, month, year, value, type, status, user_id, registration_date
	`

	var saved entities.Entry
	err := r.db.QueryRow(query,
		entry.Description,
		entry.Month,
		entry.Year,
		entry.Value,
		entry.Type,
		entry.Status,
		entry.UserID,
		entry.RegistrationDate,
	).Scan(
		&saved.ID,
		&saved.Description,
		&saved.Month,
		&saved.Year,
		&saved.Value,
		&saved.Type,
		&saved.Status,
		&saved.UserID,
		&saved.RegistrationDate,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to create entry: %w", err)
	}

	return &saved, nil
}

// Update persists changes to an existing entry. The registration date is immutable.
func (r *entryRepository) Update(entry *entities.Entry) (*entities.Entry, error) {
	query := `
		UPDATE entries
		SET description = $1, month = $2, year = $3, value = $4, type = $5, status = $6, user_id = $7
		WHERE id = $8
		RETURNING id, description, month, year, value, type, status, user_id, registration_date
	`

	var saved entities.Entry
	err := r.db.QueryRow(query,
		entry.Description,
		entry.Month,
		entry.Year,
		entry.Value,
		entry.Type,
		entry.Status,
		entry.UserID,
		entry.ID,
	).Scan(
		&saved.ID,
		&saved.Description,
		&saved.Month,
		&saved.Year,
		&saved.Value,
		&saved.Type,
		&saved.Status,
		&saved.UserID,
		&saved.RegistrationDate,
	)

	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("entry not found")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update entry: %w", err)
	}

	return &saved, nil
}

// Delete removes an entry from the database
func (r *entryRepository) Delete(id int64) error {
	result, err := r.db.Exec(`DELETE FROM entries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("entry not found")
	}

	return nil
}

// FindByID finds an entry by ID. Returns nil without error when no entry exists.
func (r *entryRepository) FindByID(id int64) (*entities.Entry, error) {
	query := `
		SELECT id, description, month, year, value, type, status, user_id, registration_date
		FROM entries
		WHERE id = $1
	`

	var entry entities.Entry
	err := r.db.QueryRow(query, id).Scan(
		&entry.ID,
		&entry.Description,
		&entry.Month,
		&entry.Year,
		&entry.Value,
		&entry.Type,
		&entry.Status,
		&entry.UserID,
		&entry.RegistrationDate,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find entry: %w", err)
	}

	return &entry, nil
}

// FindByFilter retrieves all entries matching the set fields of the filter,
// ordered by id for stable results
func (r *entryRepository) FindByFilter(filter *EntryFilter) ([]*entities.Entry, error) {
	query := `
		SELECT id, description, month, year, value, type, status, user_id, registration_date
		FROM entries
		WHERE user_id = $1
	`
	args := []interface{}{filter.UserID}

	if filter.Description != nil {
		args = append(args, *filter.Description)
		query += fmt.Sprintf(" AND description = $%d", len(args))
	}
	if filter.Month != nil {
		args = append(args, *filter.Month)
		query += fmt.Sprintf(" AND month = $%d", len(args))
	}
	if filter.Year != nil {
		args = append(args, *filter.Year)
		query += fmt.Sprintf(" AND year = $%d", len(args))
	}

	query += " ORDER BY id"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to search entries: %w", err)
	}
	defer rows.Close()

	var entries []*entities.Entry
	for rows.Next() {
		var entry entities.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.Description,
			&entry.Month,
			&entry.Year,
			&entry.Value,
			&entry.Type,
			&entry.Status,
			&entry.UserID,
			&entry.RegistrationDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, &entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entries: %w", err)
	}

	return entries, nil
}

// SumByUserTypeAndStatus returns the total value of a user's entries with the
// given type and status, or zero when there are none
func (r *entryRepository) SumByUserTypeAndStatus(userID int64, entryType entities.EntryType, status entities.EntryStatus) (float64, error) {
	query := `
		SELECT COALESCE(SUM(value), 0)
		FROM entries
		WHERE user_id = $1 AND type = $2 AND status = $3
	`

	var total float64
	if err := r.db.QueryRow(query, userID, entryType, status).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to sum entries: %w", err)
	}

	return total, nil
}
