package resumes

import (
	"encoding/json"
	"time"

	"resumewise-backend/internal/resume"
)

type summaryResponse struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	TemplateID string    `json:"templateId"`
	UpdatedAt  time.Time `json:"updatedAt"`
	CreatedAt  time.Time `json:"createdAt"`
}

func toSummary(res resume.Resume) summaryResponse {
	return summaryResponse{
		ID:         res.ID,
		Title:      res.Title,
		TemplateID: res.TemplateID,
		UpdatedAt:  res.Metadata.UpdatedAt,
		CreatedAt:  res.Metadata.CreatedAt,
	}
}

type createRequest struct {
	Sample bool `json:"sample"`
}

type editsRequest struct {
	Edits []json.RawMessage `json:"edits"`
}

type setTemplateRequest struct {
	TemplateID string `json:"templateId"`
}
