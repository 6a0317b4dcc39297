package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"resumewise-backend/internal/resume"
)

// PGRepo implements Repo using Postgres. Content and design are stored as
// JSONB so the document shape travels as one snapshot.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new resume snapshot.
func (r *PGRepo) Create(ctx context.Context, res resume.Resume) error {
	const query = `
INSERT INTO resumes (id, user_id, title, template_id, content, design, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	content, design, err := marshalDocument(res)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, query,
		res.ID,
		res.UserID,
		res.Title,
		res.TemplateID,
		content,
		design,
		res.Metadata.CreatedAt,
		res.Metadata.UpdatedAt,
	)
	return err
}

// GetByID returns the resume if owned by userID.
func (r *PGRepo) GetByID(ctx context.Context, userID, resumeID string) (resume.Resume, error) {
	const query = `
SELECT id, user_id, title, template_id, content, design, created_at, updated_at
FROM resumes
WHERE id = $1 AND user_id = $2
LIMIT 1`
	row := r.DB.QueryRowContext(ctx, query, resumeID, userID)
	res, err := scanResume(row)
	if errors.Is(err, sql.ErrNoRows) {
		return resume.Resume{}, ErrNotFound
	}
	return res, err
}

// ListByUser returns the user's resumes newest-updated first.
func (r *PGRepo) ListByUser(ctx context.Context, userID string) ([]resume.Resume, error) {
	const query = `
SELECT id, user_id, title, template_id, content, design, created_at, updated_at
FROM resumes
WHERE user_id = $1
ORDER BY updated_at DESC, id ASC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// Save overwrites the stored snapshot; last write wins.
func (r *PGRepo) Save(ctx context.Context, res resume.Resume) error {
	const query = `
UPDATE resumes
SET title = $3, template_id = $4, content = $5, design = $6, updated_at = $7
WHERE id = $1 AND user_id = $2`

	content, design, err := marshalDocument(res)
	if err != nil {
		return err
	}
	result, err := r.DB.ExecContext(ctx, query,
		res.ID,
		res.UserID,
		res.Title,
		res.TemplateID,
		content,
		design,
		res.Metadata.UpdatedAt,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the resume if owned by userID.
func (r *PGRepo) Delete(ctx context.Context, userID, resumeID string) error {
	result, err := r.DB.ExecContext(ctx, `DELETE FROM resumes WHERE id = $1 AND user_id = $2`, resumeID, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (resume.Resume, error) {
	var res resume.Resume
	var content, design []byte
	err := row.Scan(
		&res.ID,
		&res.UserID,
		&res.Title,
		&res.TemplateID,
		&content,
		&design,
		&res.Metadata.CreatedAt,
		&res.Metadata.UpdatedAt,
	)
	if err != nil {
		return resume.Resume{}, err
	}
	if err := json.Unmarshal(content, &res.Content); err != nil {
		return resume.Resume{}, fmt.Errorf("decode resume content %s: %w", res.ID, err)
	}
	if err := json.Unmarshal(design, &res.Design); err != nil {
		return resume.Resume{}, fmt.Errorf("decode resume design %s: %w", res.ID, err)
	}
	return res, nil
}

func marshalDocument(res resume.Resume) (content, design []byte, err error) {
	content, err = json.Marshal(res.Content)
	if err != nil {
		return nil, nil, fmt.Errorf("encode resume content %s: %w", res.ID, err)
	}
	design, err = json.Marshal(res.Design)
	if err != nil {
		return nil, nil, fmt.Errorf("encode resume design %s: %w", res.ID, err)
	}
	return content, design, nil
}
