package requests

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new intake record.
func (r *PGRepo) Create(ctx context.Context, req Request) error {
	const query = `
INSERT INTO user_requests (id, email, linkedin_url, status, created_at)
VALUES ($1, $2, $3, $4, $5)`
	_, err := r.DB.ExecContext(ctx, query, req.ID, req.Email, req.LinkedInURL, req.Status, req.CreatedAt)
	return err
}

// List returns records ordered newest first. A non-positive limit
// returns all records.
func (r *PGRepo) List(ctx context.Context, limit, offset int) ([]Request, error) {
	const base = `
SELECT id, email, linkedin_url, status, created_at
FROM user_requests
ORDER BY created_at DESC`

	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = r.DB.QueryContext(ctx, base+` LIMIT $1 OFFSET $2`, limit, offset)
	} else {
		rows, err = r.DB.QueryContext(ctx, base)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var req Request
		if err := rows.Scan(&req.ID, &req.Email, &req.LinkedInURL, &req.Status, &req.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	return out, rows.Err()
}

// UpdateStatus sets the status verbatim and returns the updated record.
func (r *PGRepo) UpdateStatus(ctx context.Context, id, status string) (Request, error) {
	const query = `
UPDATE user_requests
SET status = $1
WHERE id = $2
RETURNING id, email, linkedin_url, status, created_at`
	var req Request
	err := r.DB.QueryRowContext(ctx, query, status, id).Scan(
		&req.ID,
		&req.Email,
		&req.LinkedInURL,
		&req.Status,
		&req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Request{}, ErrNotFound
		}
		return Request{}, err
	}
	return req, nil
}

var _ Repo = (*PGRepo)(nil)
