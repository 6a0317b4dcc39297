package ai

import (
	"context"
	"sort"
	"sync"
)

// MemoryReportsRepo stores ATS reports in memory and is safe for concurrent use.
type MemoryReportsRepo struct {
	mu   sync.RWMutex
	byID map[string]ATSReport
}

// NewMemoryReportsRepo constructs a MemoryReportsRepo.
func NewMemoryReportsRepo() *MemoryReportsRepo {
	return &MemoryReportsRepo{byID: make(map[string]ATSReport)}
}

// Create stores the report.
func (r *MemoryReportsRepo) Create(ctx context.Context, report ATSReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byID[report.ID] = report
	return nil
}

// GetByID returns a report owned by the user.
func (r *MemoryReportsRepo) GetByID(ctx context.Context, userID, reportID string) (ATSReport, error) {
	if err := ctx.Err(); err != nil {
		return ATSReport{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.byID[reportID]
	if !ok || report.UserID != userID {
		return ATSReport{}, ErrReportNotFound
	}
	return report, nil
}

// ListByUser returns the user's reports, newest first.
func (r *MemoryReportsRepo) ListByUser(ctx context.Context, userID string) ([]ATSReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]ATSReport, 0)
	for _, report := range r.byID {
		if report.UserID == userID {
			out = append(out, report)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}
