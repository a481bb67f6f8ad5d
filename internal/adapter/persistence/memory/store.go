// Package memory is an in-process storage driver. State lives for the lifetime
// of the process; it backs local runs and tests.
package memory

import (
	"context"
	"errors"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"sync"
	"time"
)

var ErrDuplicateID = errors.New("item already exists")

// Store keeps every table in maps guarded by a single mutex, so each
// repository call is atomic with respect to the others.
type Store struct {
	mu              sync.Mutex
	identities      map[string]entities.Identity
	products        map[string]entities.Product
	paymentRequests map[string]entities.PaymentRequest
	lessonPlans     map[string]entities.LessonPlan
}

var _ interfaces.IRepositoryManager = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		identities:      make(map[string]entities.Identity),
		products:        make(map[string]entities.Product),
		paymentRequests: make(map[string]entities.PaymentRequest),
		lessonPlans:     make(map[string]entities.LessonPlan),
	}
}

func (s *Store) Identities() interfaces.IIdentityRepository {
	return identityRepository{s}
}

func (s *Store) Products() interfaces.IProductRepository {
	return productRepository{s}
}

func (s *Store) PaymentRequests() interfaces.IPaymentRequestRepository {
	return paymentRequestRepository{s}
}

func (s *Store) LessonPlans() interfaces.ILessonPlanRepository {
	return lessonPlanRepository{s}
}

type identityRepository struct{ s *Store }

func (r identityRepository) Create(_ context.Context, i entities.Identity) (entities.Identity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.identities[i.ID]; ok {
		return entities.Identity{}, ErrDuplicateID
	}
	if r.emailHeldByOther(i.Email, i.ID) {
		return entities.Identity{}, interfaces.ErrDuplicateEmail
	}
	i = cloneIdentity(i)
	r.s.identities[i.ID] = i
	return cloneIdentity(i), nil
}

func (r identityRepository) GetByID(_ context.Context, id string) (entities.Identity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return cloneIdentity(r.s.identities[id]), nil
}

func (r identityRepository) GetByEmail(_ context.Context, email string) (entities.Identity, error) {
	key := entities.EmailKey(email)
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, i := range r.s.identities {
		if entities.EmailKey(i.Email) == key {
			return cloneIdentity(i), nil
		}
	}
	return entities.Identity{}, nil
}

// Upsert mirrors the DynamoDB driver: profile fields are replaced, owned
// products are merged and subscription fields are kept when present.
func (r identityRepository) Upsert(_ context.Context, i entities.Identity) (entities.Identity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.emailHeldByOther(i.Email, i.ID) {
		return entities.Identity{}, interfaces.ErrDuplicateEmail
	}
	cur, ok := r.s.identities[i.ID]
	next := cloneIdentity(i)
	if ok {
		next.PurchasedProductIDs = entities.UnionProductIDs(cur.PurchasedProductIDs, i.PurchasedProductIDs)
		next.SubscriptionStatus = cur.SubscriptionStatus
		next.SubscriptionSeq = cur.SubscriptionSeq
		next.CreatedAt = cur.CreatedAt
		if cur.JoinedAt != nil {
			next.JoinedAt = cur.JoinedAt
		}
	}
	if next.SubscriptionStatus == "" {
		next.SubscriptionStatus = entities.SubscriptionStatusNone
	}
	r.s.identities[next.ID] = next
	return cloneIdentity(next), nil
}

// emailHeldByOther must be called with the store mutex held.
func (r identityRepository) emailHeldByOther(email, id string) bool {
	key := entities.EmailKey(email)
	if key == "" {
		return false
	}
	for _, i := range r.s.identities {
		if i.ID != id && entities.EmailKey(i.Email) == key {
			return true
		}
	}
	return false
}

func (r identityRepository) List(_ context.Context) ([]entities.Identity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Identity, 0, len(r.s.identities))
	for _, i := range r.s.identities {
		out = append(out, cloneIdentity(i))
	}
	return out, nil
}

func (r identityRepository) GrantSubscription(_ context.Context, id string, status entities.SubscriptionStatus, seq int64) (entities.Identity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.identities[id]
	if !ok {
		return entities.Identity{}, nil
	}
	if seq > cur.SubscriptionSeq {
		cur.SubscriptionStatus = status
		cur.SubscriptionSeq = seq
		cur.UpdatedAt = time.Now().UTC()
		r.s.identities[id] = cur
	}
	return cloneIdentity(cur), nil
}

func (r identityRepository) GrantProducts(_ context.Context, id string, productIDs []string) (entities.Identity, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.identities[id]
	if !ok {
		return entities.Identity{}, nil
	}
	cur.PurchasedProductIDs = entities.UnionProductIDs(cur.PurchasedProductIDs, productIDs)
	cur.UpdatedAt = time.Now().UTC()
	r.s.identities[id] = cur
	return cloneIdentity(cur), nil
}

type productRepository struct{ s *Store }

func (r productRepository) Create(_ context.Context, p entities.Product) (entities.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; ok {
		return entities.Product{}, ErrDuplicateID
	}
	r.s.products[p.ID] = p
	return p, nil
}

func (r productRepository) GetByID(_ context.Context, id string) (entities.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return r.s.products[id], nil
}

func (r productRepository) List(_ context.Context) ([]entities.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.Product, 0, len(r.s.products))
	for _, p := range r.s.products {
		out = append(out, p)
	}
	return out, nil
}

func (r productRepository) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return false, nil
	}
	delete(r.s.products, id)
	return true, nil
}

type paymentRequestRepository struct{ s *Store }

func (r paymentRequestRepository) Create(_ context.Context, p entities.PaymentRequest) (entities.PaymentRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.paymentRequests[p.ID]; ok {
		return entities.PaymentRequest{}, ErrDuplicateID
	}
	p = clonePaymentRequest(p)
	r.s.paymentRequests[p.ID] = p
	return clonePaymentRequest(p), nil
}

func (r paymentRequestRepository) GetByID(_ context.Context, id string) (entities.PaymentRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return clonePaymentRequest(r.s.paymentRequests[id]), nil
}

func (r paymentRequestRepository) List(_ context.Context) ([]entities.PaymentRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.PaymentRequest, 0, len(r.s.paymentRequests))
	for _, p := range r.s.paymentRequests {
		out = append(out, clonePaymentRequest(p))
	}
	return out, nil
}

func (r paymentRequestRepository) ListByUserID(_ context.Context, userID string) ([]entities.PaymentRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.PaymentRequest, 0)
	for _, p := range r.s.paymentRequests {
		if p.UserID == userID {
			out = append(out, clonePaymentRequest(p))
		}
	}
	return out, nil
}

func (r paymentRequestRepository) UpdateStatus(_ context.Context, id string, from, to entities.SubscriptionStatus) (entities.PaymentRequest, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	cur, ok := r.s.paymentRequests[id]
	if !ok {
		return entities.PaymentRequest{}, nil
	}
	if cur.Status != from {
		return entities.PaymentRequest{}, interfaces.ErrStatusConflict
	}
	cur.Status = to
	r.s.paymentRequests[id] = cur
	return clonePaymentRequest(cur), nil
}

type lessonPlanRepository struct{ s *Store }

func (r lessonPlanRepository) Create(_ context.Context, p entities.LessonPlan) (entities.LessonPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lessonPlans[p.ID]; ok {
		return entities.LessonPlan{}, ErrDuplicateID
	}
	r.s.lessonPlans[p.ID] = p
	return p, nil
}

func (r lessonPlanRepository) ListByUserID(_ context.Context, userID string) ([]entities.LessonPlan, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := make([]entities.LessonPlan, 0)
	for _, p := range r.s.lessonPlans {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r lessonPlanRepository) Delete(_ context.Context, id string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.lessonPlans[id]; !ok {
		return false, nil
	}
	delete(r.s.lessonPlans, id)
	return true, nil
}

func cloneIdentity(i entities.Identity) entities.Identity {
	if i.ID == "" {
		return entities.Identity{}
	}
	i.PurchasedProductIDs = append([]string{}, i.PurchasedProductIDs...)
	if i.JoinedAt != nil {
		joined := *i.JoinedAt
		i.JoinedAt = &joined
	}
	return i
}

func clonePaymentRequest(p entities.PaymentRequest) entities.PaymentRequest {
	if len(p.Items) > 0 {
		p.Items = append([]entities.OrderItem(nil), p.Items...)
	}
	return p
}
