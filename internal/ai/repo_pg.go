package ai

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGReportsRepo implements ReportsRepo using Postgres.
type PGReportsRepo struct {
	DB *sql.DB
}

// Create inserts a new report.
func (r *PGReportsRepo) Create(ctx context.Context, report ATSReport) error {
	resultPayload, err := json.Marshal(report.Result)
	if err != nil {
		return err
	}
	_, err = r.DB.ExecContext(ctx, `
INSERT INTO ats_reports (id, user_id, file_name, storage_key, score, result, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		report.ID, report.UserID, report.FileName, report.StorageKey,
		report.Score, resultPayload, report.CreatedAt)
	return err
}

// GetByID returns a report owned by the user.
func (r *PGReportsRepo) GetByID(ctx context.Context, userID, reportID string) (ATSReport, error) {
	row := r.DB.QueryRowContext(ctx, `
SELECT id, user_id, file_name, storage_key, score, result, created_at
FROM ats_reports
WHERE id = $1 AND user_id = $2`, reportID, userID)
	report, err := scanReport(row)
	if errors.Is(err, sql.ErrNoRows) {
		return ATSReport{}, ErrReportNotFound
	}
	if err != nil {
		return ATSReport{}, err
	}
	return report, nil
}

// ListByUser returns the user's reports, newest first.
func (r *PGReportsRepo) ListByUser(ctx context.Context, userID string) ([]ATSReport, error) {
	rows, err := r.DB.QueryContext(ctx, `
SELECT id, user_id, file_name, storage_key, score, result, created_at
FROM ats_reports
WHERE user_id = $1
ORDER BY created_at DESC, id ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ATSReport, 0)
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, report)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (ATSReport, error) {
	var report ATSReport
	var resultPayload []byte
	if err := row.Scan(&report.ID, &report.UserID, &report.FileName, &report.StorageKey,
		&report.Score, &resultPayload, &report.CreatedAt); err != nil {
		return ATSReport{}, err
	}
	if len(resultPayload) > 0 {
		if err := json.Unmarshal(resultPayload, &report.Result); err != nil {
			return ATSReport{}, err
		}
	}
	return report, nil
}
