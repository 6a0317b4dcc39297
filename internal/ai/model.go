package ai

import "time"

// ATSReport is a persisted ATS analysis for an uploaded resume file.
type ATSReport struct {
	ID         string         `json:"id"`
	UserID     string         `json:"-"`
	FileName   string         `json:"fileName"`
	StorageKey string         `json:"-"`
	Score      float64        `json:"score"`
	Result     map[string]any `json:"result"`
	CreatedAt  time.Time      `json:"createdAt"`
}
