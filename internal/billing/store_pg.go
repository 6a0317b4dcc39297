package billing

import (
	"context"
	"database/sql"
	"errors"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed subscription store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

func (s *pgStore) Get(ctx context.Context, userID string) (Subscription, error) {
	var sub Subscription
	err := s.DB.QueryRowContext(ctx, `
SELECT user_id, tier, updated_at FROM subscriptions WHERE user_id = $1`, userID).
		Scan(&sub.UserID, &sub.Tier, &sub.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Subscription{UserID: userID, Tier: TierFree}, nil
	}
	if err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

func (s *pgStore) Set(ctx context.Context, sub Subscription) error {
	_, err := s.DB.ExecContext(ctx, `
INSERT INTO subscriptions (user_id, tier, updated_at)
VALUES ($1, $2, $3)
ON CONFLICT (user_id) DO UPDATE SET tier = EXCLUDED.tier, updated_at = EXCLUDED.updated_at`,
		sub.UserID, sub.Tier, sub.UpdatedAt)
	return err
}
