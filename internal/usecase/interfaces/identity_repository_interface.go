package interfaces

import (
	"context"
	"errors"
	"guytogo/internal/domain/entities"
)

// ErrDuplicateEmail is returned by Create and Upsert when another identity
// already holds the email (compared by entities.EmailKey).
var ErrDuplicateEmail = errors.New("email already registered")

// IIdentityRepository abstracts persistence for Identity.
//
// Lookups return a zero-value Identity (empty ID) when nothing matches.
// The grant methods are the only writes the entitlement flow performs and must
// be safe under concurrent decisions for the same user:
//   - GrantSubscription applies status only when seq is newer than the stored sequence
//   - GrantProducts performs an atomic set union
//
// Create and Upsert enforce one identity per email atomically.

type IIdentityRepository interface {
	Create(ctx context.Context, i entities.Identity) (entities.Identity, error)
	GetByID(ctx context.Context, id string) (entities.Identity, error)
	GetByEmail(ctx context.Context, email string) (entities.Identity, error)
	Upsert(ctx context.Context, i entities.Identity) (entities.Identity, error)
	List(ctx context.Context) ([]entities.Identity, error)
	GrantSubscription(ctx context.Context, id string, status entities.SubscriptionStatus, seq int64) (entities.Identity, error)
	GrantProducts(ctx context.Context, id string, productIDs []string) (entities.Identity, error)
}
