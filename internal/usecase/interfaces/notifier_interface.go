package interfaces

import (
	"context"
	"guytogo/internal/domain/entities"
)

// INotifier informs users out-of-band (email).
//
// Callers treat every error as non-fatal: a failed notification never undoes
// or fails the operation that triggered it.
type INotifier interface {
	NotifyDecision(ctx context.Context, identity entities.Identity, request entities.PaymentRequest, status entities.SubscriptionStatus) error
	NotifyWelcome(ctx context.Context, identity entities.Identity) error
	NotifyProductAlert(ctx context.Context, product entities.Product, recipients []entities.Identity) error
}
