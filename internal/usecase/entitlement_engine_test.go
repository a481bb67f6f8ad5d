package usecase_test

import (
	"context"
	"errors"
	"sort"
	"sync"
	"testing"

	"guytogo/internal/adapter/persistence/memory"
	"guytogo/internal/domain/entities"
	"guytogo/internal/infrastructure/sequence"
	"guytogo/internal/usecase"
	"guytogo/internal/usecase/interfaces"
)

type engine struct {
	store     *memory.Store
	payments  *usecase.PaymentRequestUseCase
	decisions *usecase.EntitlementUseCase
}

type panicNotifier struct{}

func (panicNotifier) NotifyDecision(context.Context, entities.Identity, entities.PaymentRequest, entities.SubscriptionStatus) error {
	panic("mail server on fire")
}
func (panicNotifier) NotifyWelcome(context.Context, entities.Identity) error { return nil }
func (panicNotifier) NotifyProductAlert(context.Context, entities.Product, []entities.Identity) error {
	return nil
}

type failingNotifier struct{ panicNotifier }

func (failingNotifier) NotifyDecision(context.Context, entities.Identity, entities.PaymentRequest, entities.SubscriptionStatus) error {
	return errors.New("smtp unreachable")
}

func newEngine(t *testing.T, notifier interfaces.INotifier) *engine {
	t.Helper()
	ctx := context.Background()
	store := memory.NewStore()

	for _, p := range []entities.Product{
		{ID: "P1", Title: "CSEC Maths", Price: 5000, ResourceType: entities.ResourceTypePDF},
		{ID: "P2", Title: "Grade 7 Science", Price: 2500, ResourceType: entities.ResourceTypePDF},
	} {
		if _, err := store.Products().Create(ctx, p); err != nil {
			t.Fatalf("seed product: %v", err)
		}
	}
	if _, err := store.Identities().Create(ctx, entities.Identity{
		ID:                 "U",
		Email:              "u@test.com",
		Name:               "User U",
		Role:               entities.RoleTeacher,
		SubscriptionStatus: entities.SubscriptionStatusNone,
	}); err != nil {
		t.Fatalf("seed identity: %v", err)
	}

	return &engine{
		store:     store,
		payments:  usecase.NewPaymentRequestUseCase(store.PaymentRequests(), store.Identities(), store.Products(), nil, nil, 0),
		decisions: usecase.NewEntitlementUseCase(store.PaymentRequests(), store.Identities(), sequence.NewMemorySequencer(), notifier, nil),
	}
}

var claim = usecase.TransactionDetails{TransactionID: "MMG-1", SenderName: "User U", SenderPhone: "592-600-0000"}

func (e *engine) order(t *testing.T, ids ...string) entities.PaymentRequest {
	t.Helper()
	lines := make([]usecase.OrderLine, 0, len(ids))
	for _, id := range ids {
		lines = append(lines, usecase.OrderLine{ProductID: id, Quantity: 1})
	}
	r, err := e.payments.SubmitOrder(context.Background(), "U", lines, claim)
	if err != nil {
		t.Fatalf("submit order: %v", err)
	}
	return r
}

func (e *engine) identity(t *testing.T) entities.Identity {
	t.Helper()
	u, err := e.store.Identities().GetByID(context.Background(), "U")
	if err != nil || u.ID == "" {
		t.Fatalf("load identity: %+v err=%v", u, err)
	}
	return u
}

func sortedIDs(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

func equalIDs(a, b []string) bool {
	a, b = sortedIDs(a), sortedIDs(b)
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestEngine_ApproveSubscription(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()

	r, err := e.payments.SubmitSubscriptionPayment(ctx, "U", claim)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if r.Status != entities.SubscriptionStatusPending || r.Amount != usecase.DefaultSubscriptionPrice {
		t.Fatalf("unexpected submitted request: %+v", r)
	}

	got, err := e.decisions.Decide(ctx, r.ID, usecase.DecisionApprove)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if got.Status != entities.SubscriptionStatusActive {
		t.Fatalf("expected request ACTIVE, got %s", got.Status)
	}
	if u := e.identity(t); u.SubscriptionStatus != entities.SubscriptionStatusActive {
		t.Fatalf("expected identity ACTIVE, got %s", u.SubscriptionStatus)
	}
}

func TestEngine_DeclineOrderLeavesOwnershipUnchanged(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()

	r := e.order(t, "P1", "P2")
	got, err := e.decisions.Decide(ctx, r.ID, usecase.DecisionDecline)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if got.Status != entities.SubscriptionStatusRejected {
		t.Fatalf("expected REJECTED, got %s", got.Status)
	}
	if u := e.identity(t); len(u.PurchasedProductIDs) != 0 {
		t.Fatalf("expected no owned products, got %v", u.PurchasedProductIDs)
	}
}

func TestEngine_ApproveOrderUnionsWithoutDuplicates(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()

	if _, err := e.store.Identities().GrantProducts(ctx, "U", []string{"P1"}); err != nil {
		t.Fatalf("pre-grant: %v", err)
	}
	r := e.order(t, "P1", "P2")

	got, err := e.decisions.Decide(ctx, r.ID, usecase.DecisionApprove)
	if err != nil {
		t.Fatalf("decide: %v", err)
	}
	if got.Status != entities.SubscriptionStatusApproved {
		t.Fatalf("expected APPROVED, got %s", got.Status)
	}
	if u := e.identity(t); !equalIDs(u.PurchasedProductIDs, []string{"P1", "P2"}) {
		t.Fatalf("expected {P1, P2}, got %v", u.PurchasedProductIDs)
	}
}

func TestEngine_SecondDecisionIsRejected(t *testing.T) {
	for _, outcome := range []usecase.DecisionOutcome{usecase.DecisionApprove, usecase.DecisionDecline} {
		t.Run(string(outcome), func(t *testing.T) {
			e := newEngine(t, nil)
			ctx := context.Background()
			r := e.order(t, "P2")

			first, err := e.decisions.Decide(ctx, r.ID, usecase.DecisionApprove)
			if err != nil {
				t.Fatalf("first decide: %v", err)
			}
			before := e.identity(t)

			_, err = e.decisions.Decide(ctx, r.ID, outcome)
			if !errors.Is(err, usecase.ErrPaymentRequestAlreadyResolved) {
				t.Fatalf("expected ErrPaymentRequestAlreadyResolved, got %v", err)
			}

			stored, _ := e.store.PaymentRequests().GetByID(ctx, r.ID)
			if stored.Status != first.Status {
				t.Fatalf("status changed: %s -> %s", first.Status, stored.Status)
			}
			if after := e.identity(t); !equalIDs(before.PurchasedProductIDs, after.PurchasedProductIDs) {
				t.Fatalf("entitlements changed: %v -> %v", before.PurchasedProductIDs, after.PurchasedProductIDs)
			}
		})
	}
}

func TestEngine_ConcurrentDecisionsGrantOnce(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()
	r, err := e.payments.SubmitSubscriptionPayment(ctx, "U", claim)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		wins     int
		resolved int
	)
	for i := 0; i < 16; i++ {
		outcome := usecase.DecisionApprove
		if i%2 == 1 {
			outcome = usecase.DecisionDecline
		}
		wg.Add(1)
		go func(o usecase.DecisionOutcome) {
			defer wg.Done()
			_, err := e.decisions.Decide(ctx, r.ID, o)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				wins++
			case errors.Is(err, usecase.ErrPaymentRequestAlreadyResolved):
				resolved++
			default:
				t.Errorf("unexpected err: %v", err)
			}
		}(outcome)
	}
	wg.Wait()

	if wins != 1 || resolved != 15 {
		t.Fatalf("expected exactly one winner, got wins=%d resolved=%d", wins, resolved)
	}

	stored, _ := e.store.PaymentRequests().GetByID(ctx, r.ID)
	u := e.identity(t)
	switch stored.Status {
	case entities.SubscriptionStatusActive:
		if u.SubscriptionStatus != entities.SubscriptionStatusActive {
			t.Fatalf("approved request but identity is %s", u.SubscriptionStatus)
		}
	case entities.SubscriptionStatusRejected:
		if u.SubscriptionStatus != entities.SubscriptionStatusNone {
			t.Fatalf("declined request but identity is %s", u.SubscriptionStatus)
		}
	default:
		t.Fatalf("unexpected terminal status %s", stored.Status)
	}
}

func TestEngine_KindStatusCorrespondence(t *testing.T) {
	cases := []struct {
		kind    entities.PaymentKind
		outcome usecase.DecisionOutcome
		want    entities.SubscriptionStatus
	}{
		{entities.PaymentKindSubscription, usecase.DecisionApprove, entities.SubscriptionStatusActive},
		{entities.PaymentKindOrder, usecase.DecisionApprove, entities.SubscriptionStatusApproved},
		{entities.PaymentKindSubscription, usecase.DecisionDecline, entities.SubscriptionStatusRejected},
		{entities.PaymentKindOrder, usecase.DecisionDecline, entities.SubscriptionStatusRejected},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind)+"_"+string(tc.outcome), func(t *testing.T) {
			e := newEngine(t, nil)
			ctx := context.Background()

			var r entities.PaymentRequest
			if tc.kind == entities.PaymentKindOrder {
				r = e.order(t, "P1")
			} else {
				var err error
				if r, err = e.payments.SubmitSubscriptionPayment(ctx, "U", claim); err != nil {
					t.Fatalf("submit: %v", err)
				}
			}

			got, err := e.decisions.Decide(ctx, r.ID, tc.outcome)
			if err != nil {
				t.Fatalf("decide: %v", err)
			}
			if got.Status != tc.want {
				t.Fatalf("expected %s, got %s", tc.want, got.Status)
			}
		})
	}
}

func TestEngine_UnknownRequestChangesNothing(t *testing.T) {
	e := newEngine(t, nil)
	ctx := context.Background()
	pending := e.order(t, "P1")
	before := e.identity(t)

	_, err := e.decisions.Decide(ctx, "does-not-exist", usecase.DecisionApprove)
	if !errors.Is(err, usecase.ErrPaymentRequestNotFound) {
		t.Fatalf("expected ErrPaymentRequestNotFound, got %v", err)
	}

	all, _ := e.store.PaymentRequests().List(ctx)
	if len(all) != 1 || all[0].ID != pending.ID || all[0].Status != entities.SubscriptionStatusPending {
		t.Fatalf("ledger changed: %+v", all)
	}
	after := e.identity(t)
	if after.SubscriptionStatus != before.SubscriptionStatus || !equalIDs(after.PurchasedProductIDs, before.PurchasedProductIDs) {
		t.Fatalf("identity changed: %+v -> %+v", before, after)
	}
}

func TestEngine_NotifierFailureIsIsolated(t *testing.T) {
	for name, n := range map[string]interfaces.INotifier{
		"panic": panicNotifier{},
		"error": failingNotifier{},
	} {
		t.Run(name, func(t *testing.T) {
			e := newEngine(t, n)
			ctx := context.Background()
			r := e.order(t, "P1", "P2")

			got, err := e.decisions.Decide(ctx, r.ID, usecase.DecisionApprove)
			if err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			if got.Status != entities.SubscriptionStatusApproved {
				t.Fatalf("expected APPROVED, got %s", got.Status)
			}
			if u := e.identity(t); !equalIDs(u.PurchasedProductIDs, []string{"P1", "P2"}) {
				t.Fatalf("grant missing: %v", u.PurchasedProductIDs)
			}
		})
	}
}
