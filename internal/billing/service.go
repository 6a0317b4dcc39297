package billing

import (
	"context"
	"time"
)

type store interface {
	Get(ctx context.Context, userID string) (Subscription, error)
	Set(ctx context.Context, sub Subscription) error
}

// PaymentGateway confirms an upgrade payment. The local implementation
// accepts every charge; a real processor would sit behind this.
type PaymentGateway interface {
	Charge(ctx context.Context, userID string, card CardDetails) error
}

// CardDetails carries the payment form fields. They are validated for
// shape only and never stored.
type CardDetails struct {
	Number string `json:"cardNumber"`
	Expiry string `json:"expiry"`
	CVC    string `json:"cvc"`
	Name   string `json:"nameOnCard"`
}

// Service manages subscription state via an underlying store.
type Service struct {
	store   store
	gateway PaymentGateway
}

// NewService constructs a Service with an in-memory store.
func NewService(gateway PaymentGateway) *Service {
	return &Service{store: newMemoryStore(), gateway: gateway}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store, gateway PaymentGateway) *Service {
	return &Service{store: pgStore, gateway: gateway}
}

// Get returns the user's subscription, defaulting to the free tier.
func (s *Service) Get(ctx context.Context, userID string) (Subscription, error) {
	return s.store.Get(ctx, userID)
}

// TierFor returns just the tier name for a user.
func (s *Service) TierFor(ctx context.Context, userID string) (string, error) {
	sub, err := s.store.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	return sub.Tier, nil
}

// Upgrade charges the payment gateway and moves the user to pro.
func (s *Service) Upgrade(ctx context.Context, userID string, card CardDetails) (Subscription, error) {
	sub, err := s.store.Get(ctx, userID)
	if err != nil {
		return Subscription{}, err
	}
	if sub.Tier == TierPro {
		return Subscription{}, ErrAlreadyPro
	}
	if err := s.gateway.Charge(ctx, userID, card); err != nil {
		return Subscription{}, err
	}
	sub = Subscription{UserID: userID, Tier: TierPro, UpdatedAt: time.Now().UTC()}
	if err := s.store.Set(ctx, sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}

// Downgrade returns the user to the free tier. Dev-only surface.
func (s *Service) Downgrade(ctx context.Context, userID string) (Subscription, error) {
	sub := Subscription{UserID: userID, Tier: TierFree, UpdatedAt: time.Now().UTC()}
	if err := s.store.Set(ctx, sub); err != nil {
		return Subscription{}, err
	}
	return sub, nil
}
