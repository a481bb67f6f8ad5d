package usecase

import (
	"context"
	"errors"
	"fmt"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"log"
	"strings"
)

var (
	ErrPaymentRequestAlreadyResolved = errors.New("payment request already resolved")
	ErrInvalidOutcome                = errors.New("invalid decision outcome")
)

// DecisionOutcome is the administrator verdict on a payment request.
type DecisionOutcome string

const (
	DecisionApprove DecisionOutcome = "approve"
	DecisionDecline DecisionOutcome = "decline"
)

func (o DecisionOutcome) Valid() bool {
	return o == DecisionApprove || o == DecisionDecline
}

// TargetStatus maps a kind and an outcome to the terminal ledger status.
func TargetStatus(kind entities.PaymentKind, outcome DecisionOutcome) entities.SubscriptionStatus {
	if outcome == DecisionDecline {
		return entities.SubscriptionStatusRejected
	}
	return kind.ApprovedStatus()
}

// IEntitlementUseCase converts administrator decisions into entitlements.
//
// Requested behavior:
//   - PENDING -> ACTIVE (subscription approved) | APPROVED (order approved) | REJECTED (declined).
//   - Approval grants subscription access or adds the ordered product ids to the user.
//   - Deciding a request that is no longer PENDING fails with ErrPaymentRequestAlreadyResolved.

type IEntitlementUseCase interface {
	Decide(ctx context.Context, requestID string, outcome DecisionOutcome) (entities.PaymentRequest, error)
}

type EntitlementUseCase struct {
	requests   interfaces.IPaymentRequestRepository
	identities interfaces.IIdentityRepository
	sequencer  interfaces.IDecisionSequencer
	notifier   interfaces.INotifier
	metrics    interfaces.IWorkflowMetrics
}

var _ IEntitlementUseCase = (*EntitlementUseCase)(nil)

func NewEntitlementUseCase(
	requests interfaces.IPaymentRequestRepository,
	identities interfaces.IIdentityRepository,
	sequencer interfaces.IDecisionSequencer,
	notifier interfaces.INotifier,
	metrics interfaces.IWorkflowMetrics,
) *EntitlementUseCase {
	return &EntitlementUseCase{
		requests:   requests,
		identities: identities,
		sequencer:  sequencer,
		notifier:   notifier,
		metrics:    metricsOrNoop(metrics),
	}
}

// Decide resolves a PENDING request.
//
// The status compare-and-set is the only gate for the grant, so concurrent
// decisions on one request apply at most one grant. When the user is gone the
// ledger update stands and the updated request is returned together with
// ErrIdentityNotFound.
func (u *EntitlementUseCase) Decide(ctx context.Context, requestID string, outcome DecisionOutcome) (entities.PaymentRequest, error) {
	requestID = strings.TrimSpace(requestID)
	if requestID == "" {
		return entities.PaymentRequest{}, ErrInvalidPaymentRequestID
	}
	if !outcome.Valid() {
		return entities.PaymentRequest{}, ErrInvalidOutcome
	}
	log.Printf("[entitlement][usecase] decide start request_id=%s outcome=%s", requestID, outcome)

	req, err := u.requests.GetByID(ctx, requestID)
	if err != nil {
		log.Printf("[entitlement][usecase] failed loading request request_id=%s err=%v", requestID, err)
		return entities.PaymentRequest{}, err
	}
	if req.ID == "" {
		log.Printf("[entitlement][usecase] request not found request_id=%s", requestID)
		return entities.PaymentRequest{}, ErrPaymentRequestNotFound
	}
	if req.Status.IsTerminal() {
		log.Printf("[entitlement][usecase] request already resolved request_id=%s status=%s", req.ID, req.Status)
		return entities.PaymentRequest{}, ErrPaymentRequestAlreadyResolved
	}

	target := TargetStatus(req.Kind, outcome)
	updated, err := u.requests.UpdateStatus(ctx, req.ID, entities.SubscriptionStatusPending, target)
	if err != nil {
		if errors.Is(err, interfaces.ErrStatusConflict) {
			log.Printf("[entitlement][usecase] lost status race request_id=%s target=%s", req.ID, target)
			return entities.PaymentRequest{}, ErrPaymentRequestAlreadyResolved
		}
		log.Printf("[entitlement][usecase] ledger update failed request_id=%s err=%v", req.ID, err)
		return entities.PaymentRequest{}, err
	}
	if updated.ID == "" {
		return entities.PaymentRequest{}, ErrPaymentRequestNotFound
	}
	u.metrics.DecisionApplied(updated.Kind, target)
	log.Printf("[entitlement][usecase] ledger updated request_id=%s kind=%s status=%s", updated.ID, updated.Kind, target)

	var identity entities.Identity
	if outcome == DecisionApprove {
		identity, err = u.grant(ctx, updated)
		if err != nil {
			log.Printf("[entitlement][usecase] grant failed request_id=%s user_id=%s err=%v", updated.ID, updated.UserID, err)
			return updated, err
		}
	} else {
		identity, err = u.identities.GetByID(ctx, updated.UserID)
		if err != nil {
			log.Printf("[entitlement][usecase] failed loading identity for notification user_id=%s err=%v", updated.UserID, err)
			identity = entities.Identity{}
		}
	}

	if identity.ID != "" {
		u.notify(ctx, identity, updated, target)
	} else {
		log.Printf("[entitlement][usecase] no identity to notify request_id=%s user_id=%s", updated.ID, updated.UserID)
	}

	log.Printf("[entitlement][usecase] decide success request_id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *EntitlementUseCase) grant(ctx context.Context, r entities.PaymentRequest) (entities.Identity, error) {
	var (
		identity entities.Identity
		err      error
	)
	switch r.Kind {
	case entities.PaymentKindSubscription:
		if u.sequencer == nil {
			return entities.Identity{}, errors.New("decision sequencer not configured")
		}
		seq, seqErr := u.sequencer.Next(ctx)
		if seqErr != nil {
			return entities.Identity{}, fmt.Errorf("next decision sequence: %w", seqErr)
		}
		identity, err = u.identities.GrantSubscription(ctx, r.UserID, entities.SubscriptionStatusActive, seq)
	case entities.PaymentKindOrder:
		ids := r.ProductIDs()
		if len(ids) == 0 {
			identity, err = u.identities.GetByID(ctx, r.UserID)
		} else {
			identity, err = u.identities.GrantProducts(ctx, r.UserID, ids)
		}
	default:
		return entities.Identity{}, fmt.Errorf("unknown payment kind %q", r.Kind)
	}
	if err != nil {
		return entities.Identity{}, err
	}
	if identity.ID == "" {
		return entities.Identity{}, ErrIdentityNotFound
	}
	log.Printf("[entitlement][usecase] grant applied user_id=%s kind=%s subscription=%s products=%d", identity.ID, r.Kind, identity.SubscriptionStatus, len(identity.PurchasedProductIDs))
	return identity, nil
}

func (u *EntitlementUseCase) notify(ctx context.Context, identity entities.Identity, r entities.PaymentRequest, status entities.SubscriptionStatus) {
	if u.notifier == nil {
		return
	}
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf("[entitlement][notify] notifier panic request_id=%s recovered=%v", r.ID, rec)
			u.metrics.NotificationFailed("decision")
		}
	}()
	if err := u.notifier.NotifyDecision(context.WithoutCancel(ctx), identity, r, status); err != nil {
		log.Printf("[entitlement][notify] notification failed request_id=%s user_id=%s err=%v", r.ID, identity.ID, err)
		u.metrics.NotificationFailed("decision")
	}
}
