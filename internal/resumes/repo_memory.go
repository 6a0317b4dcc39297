package resumes

import (
	"context"
	"sort"
	"sync"

	"resumewise-backend/internal/resume"
)

// MemoryRepo is an in-memory implementation of Repo used when no database
// is configured and in tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]resume.Resume // resumeID -> resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]resume.Resume)}
}

// Create stores a new resume snapshot.
func (r *MemoryRepo) Create(ctx context.Context, res resume.Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[res.ID] = res.Clone()
	return nil
}

// GetByID returns the resume if it exists and is owned by userID.
func (r *MemoryRepo) GetByID(ctx context.Context, userID, resumeID string) (resume.Resume, error) {
	if err := ctx.Err(); err != nil {
		return resume.Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.data[resumeID]
	if !ok || res.UserID != userID {
		return resume.Resume{}, ErrNotFound
	}
	return res.Clone(), nil
}

// ListByUser returns the user's resumes newest-updated first.
func (r *MemoryRepo) ListByUser(ctx context.Context, userID string) ([]resume.Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]resume.Resume, 0)
	for _, res := range r.data {
		if res.UserID == userID {
			out = append(out, res.Clone())
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Metadata.UpdatedAt.Equal(out[j].Metadata.UpdatedAt) {
			return out[i].Metadata.UpdatedAt.After(out[j].Metadata.UpdatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Save overwrites the stored snapshot; last write wins.
func (r *MemoryRepo) Save(ctx context.Context, res resume.Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[res.ID]
	if !ok || existing.UserID != res.UserID {
		return ErrNotFound
	}
	r.data[res.ID] = res.Clone()
	return nil
}

// Delete removes the resume if owned by userID.
func (r *MemoryRepo) Delete(ctx context.Context, userID, resumeID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[resumeID]
	if !ok || existing.UserID != userID {
		return ErrNotFound
	}
	delete(r.data, resumeID)
	return nil
}
