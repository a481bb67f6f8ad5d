package interfaces

import (
	"context"
	"errors"
	"guytogo/internal/domain/entities"
)

// ErrStatusConflict is returned by UpdateStatus when the request exists but its
// current status is not the expected one.
var ErrStatusConflict = errors.New("payment request status conflict")

// IPaymentRequestRepository is the request ledger.
//
// The ledger is append-only except for a single status transition:
//   - Create appends a new request (no deduplication)
//   - UpdateStatus replaces the status field only, as a compare-and-set from `from` to `to`
//
// Missing records are reported as a zero-value PaymentRequest (empty ID).

type IPaymentRequestRepository interface {
	Create(ctx context.Context, r entities.PaymentRequest) (entities.PaymentRequest, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRequest, error)
	List(ctx context.Context) ([]entities.PaymentRequest, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.PaymentRequest, error)
	UpdateStatus(ctx context.Context, id string, from, to entities.SubscriptionStatus) (entities.PaymentRequest, error)
}
