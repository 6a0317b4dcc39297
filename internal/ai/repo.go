package ai

import "context"

// ReportsRepo persists ATS reports.
type ReportsRepo interface {
	Create(ctx context.Context, report ATSReport) error
	GetByID(ctx context.Context, userID, reportID string) (ATSReport, error)
	ListByUser(ctx context.Context, userID string) ([]ATSReport, error)
}
