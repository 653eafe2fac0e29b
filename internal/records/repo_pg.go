package records

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres with per-row inserts and queries.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new record. A duplicate ID is silently ignored to keep
// the store contract.
func (r *PGRepo) Create(ctx context.Context, record Record) error {
	const query = `
INSERT INTO improvement_records (
    id, user_id, original_text, job_description, improved_content, cover_letter_snippet, created_at
) VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO NOTHING`

	_, err := r.DB.ExecContext(ctx, query,
		record.ID,
		record.UserID,
		record.OriginalText,
		record.JobDescription,
		record.ImprovedContent,
		record.CoverLetterSnippet,
		record.CreatedAt,
	)
	return err
}

// GetByID returns the record with the given ID if it belongs to the user.
func (r *PGRepo) GetByID(ctx context.Context, userID, recordID string) (Record, error) {
	const query = `
SELECT id, user_id, original_text, job_description, improved_content, cover_letter_snippet, created_at
FROM improvement_records
WHERE id = $1 AND user_id = $2
LIMIT 1`

	var record Record
	err := r.DB.QueryRowContext(ctx, query, recordID, userID).Scan(
		&record.ID,
		&record.UserID,
		&record.OriginalText,
		&record.JobDescription,
		&record.ImprovedContent,
		&record.CoverLetterSnippet,
		&record.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return record, nil
}

// ListByUser returns the user's records, newest first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	const query = `
SELECT id, user_id, original_text, job_description, improved_content, cover_letter_snippet, created_at
FROM improvement_records
WHERE user_id = $1
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]Record, 0)
	for rows.Next() {
		var record Record
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.OriginalText,
			&record.JobDescription,
			&record.ImprovedContent,
			&record.CoverLetterSnippet,
			&record.CreatedAt,
		); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

var _ Repo = (*PGRepo)(nil)
