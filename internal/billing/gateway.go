package billing

import (
	"context"
	"strings"
)

// MockGateway simulates a payment processor. Any card with a non-empty
// number and CVC is accepted.
type MockGateway struct{}

// Charge validates the card shape and accepts the payment.
func (MockGateway) Charge(ctx context.Context, userID string, card CardDetails) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if strings.TrimSpace(card.Number) == "" || strings.TrimSpace(card.CVC) == "" {
		return ErrPaymentDeclined
	}
	return nil
}
