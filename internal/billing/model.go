package billing

import "time"

// Tier names. Free accounts can only use free templates; pro accounts
// unlock premium templates and higher AI quotas.
const (
	TierFree = "free"
	TierPro  = "pro"
)

// Subscription is a user's current plan.
type Subscription struct {
	UserID    string    `json:"-"`
	Tier      string    `json:"tier"`
	UpdatedAt time.Time `json:"updatedAt"`
}
