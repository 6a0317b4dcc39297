package resumes

import (
	"context"
	"errors"

	"resumewise-backend/internal/resume"
)

var (
	// ErrNotFound means no resume with that id is owned by the user.
	ErrNotFound = errors.New("resume not found")
)

// Repo defines persistence operations for resume documents. Save submits a
// complete snapshot; conflict resolution is last-write-wins at the store.
type Repo interface {
	Create(ctx context.Context, r resume.Resume) error
	GetByID(ctx context.Context, userID, resumeID string) (resume.Resume, error)
	ListByUser(ctx context.Context, userID string) ([]resume.Resume, error)
	Save(ctx context.Context, r resume.Resume) error
	Delete(ctx context.Context, userID, resumeID string) error
}
