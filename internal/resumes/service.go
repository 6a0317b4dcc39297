package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"resumewise-backend/internal/render"
	"resumewise-backend/internal/resume"
	"resumewise-backend/internal/shared/metrics"
	"resumewise-backend/internal/templates"
)

var (
	// ErrTemplateLocked means the template is premium and the user's
	// subscription tier does not grant it.
	ErrTemplateLocked = errors.New("template requires a pro subscription")
)

// TierSource reports a user's subscription tier. The billing package
// provides the real one.
type TierSource interface {
	TierFor(ctx context.Context, userID string) (string, error)
}

// Service contains business logic for resume documents. Edits run through
// the pure editing engine; the service owns loading, snapshotting and
// persistence around them.
type Service struct {
	Repo    Repo
	Billing TierSource
	Now     func() time.Time
}

func (s *Service) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Create makes a new resume for the user: a blank default, or a clone of
// the seeded sample when sample is true.
func (s *Service) Create(ctx context.Context, userID string, sample bool) (resume.Resume, error) {
	now := s.now()
	var res resume.Resume
	if sample {
		res = resume.Sample(userID, now)
	} else {
		res = resume.NewDefault(userID, now)
	}
	if err := s.Repo.Create(ctx, res); err != nil {
		return resume.Resume{}, err
	}
	return res, nil
}

// Get loads one resume owned by the user.
func (s *Service) Get(ctx context.Context, userID, resumeID string) (resume.Resume, error) {
	return s.Repo.GetByID(ctx, userID, resumeID)
}

// List returns the user's resumes newest-updated first.
func (s *Service) List(ctx context.Context, userID string) ([]resume.Resume, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// ApplyEdits decodes an ordered batch of edit commands and applies it
// atomically: any failure leaves the stored resume untouched. The saved
// value is a snapshot taken after the whole batch succeeds.
func (s *Service) ApplyEdits(ctx context.Context, userID, resumeID string, rawCmds []json.RawMessage) (resume.Resume, error) {
	cmds := make([]resume.Command, 0, len(rawCmds))
	for _, raw := range rawCmds {
		cmd, err := resume.DecodeCommand(raw)
		if err != nil {
			return resume.Resume{}, err
		}
		cmds = append(cmds, cmd)
	}

	current, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return resume.Resume{}, err
	}

	updated, err := resume.ApplyAll(current, cmds, s.now())
	if err != nil {
		return resume.Resume{}, err
	}
	if err := s.Repo.Save(ctx, updated.Clone()); err != nil {
		return resume.Resume{}, err
	}
	metrics.AddResumeEditsApplied(len(cmds))
	return updated, nil
}

// SetTemplate switches the resume's template. Unknown templates are an
// error; premium templates require the pro tier. Content is untouched.
func (s *Service) SetTemplate(ctx context.Context, userID, resumeID, templateID string) (resume.Resume, error) {
	tpl, err := templates.Get(templateID)
	if err != nil {
		return resume.Resume{}, err
	}

	tier := templates.TierFree
	if s.Billing != nil {
		tier, err = s.Billing.TierFor(ctx, userID)
		if err != nil {
			return resume.Resume{}, err
		}
	}
	if !templates.IsAccessible(tpl, tier) {
		return resume.Resume{}, ErrTemplateLocked
	}

	current, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return resume.Resume{}, err
	}
	updated, err := resume.SetTemplate(current, templateID, templates.Exists)
	if err != nil {
		return resume.Resume{}, err
	}
	updated.Metadata.UpdatedAt = s.now()
	if err := s.Repo.Save(ctx, updated.Clone()); err != nil {
		return resume.Resume{}, err
	}
	return updated, nil
}

// Layout renders the resume under its current template.
func (s *Service) Layout(ctx context.Context, userID, resumeID string) (render.LayoutDescription, error) {
	res, err := s.Repo.GetByID(ctx, userID, resumeID)
	if err != nil {
		return render.LayoutDescription{}, err
	}
	tpl, err := templates.Get(res.TemplateID)
	if err != nil {
		return render.LayoutDescription{}, err
	}
	return render.Render(res, tpl), nil
}

// Delete removes the resume from the store.
func (s *Service) Delete(ctx context.Context, userID, resumeID string) error {
	return s.Repo.Delete(ctx, userID, resumeID)
}
