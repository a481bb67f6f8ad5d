package usecase

import (
	"context"
	"errors"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrPaymentRequestNotFound    = errors.New("payment request not found")
	ErrInvalidPaymentRequestID   = errors.New("invalid payment request id")
	ErrEmptyOrder                = errors.New("order has no items")
	ErrInvalidQuantity           = errors.New("invalid item quantity")
	ErrInvalidAmount             = errors.New("invalid amount")
	ErrInvalidTransactionDetails = errors.New("invalid transaction details")
	ErrPaymentGatewayUnavailable = errors.New("payment gateway not configured")
)

// DefaultSubscriptionPrice is the yearly subscription amount.
const DefaultSubscriptionPrice int64 = 12000

// TransactionDetails is what the payer claims about the out-of-band transfer.
// None of it is verified at submission time.
type TransactionDetails struct {
	TransactionID string
	SenderName    string
	SenderPhone   string
}

// OrderLine references a catalog product by id.
type OrderLine struct {
	ProductID string
	Quantity  int
}

// IPaymentRequestUseCase is the submission side of the request ledger.
//
// Requested behavior:
//   - Users submit ORDER and SUBSCRIPTION payment claims; each becomes a PENDING request.
//   - Administrators list requests (newest first) and may look a claim up at the provider.

type IPaymentRequestUseCase interface {
	SubmitOrder(ctx context.Context, userID string, lines []OrderLine, details TransactionDetails) (entities.PaymentRequest, error)
	SubmitSubscriptionPayment(ctx context.Context, userID string, details TransactionDetails) (entities.PaymentRequest, error)
	ListPending(ctx context.Context) ([]entities.PaymentRequest, error)
	ListAll(ctx context.Context) ([]entities.PaymentRequest, error)
	ListMine(ctx context.Context, userID string) ([]entities.PaymentRequest, error)
	GetByID(ctx context.Context, id string) (entities.PaymentRequest, error)
	Verify(ctx context.Context, id string) (interfaces.PaymentLookup, error)
}

type PaymentRequestUseCase struct {
	repo              interfaces.IPaymentRequestRepository
	identities        interfaces.IIdentityRepository
	products          interfaces.IProductRepository
	gateway           interfaces.IPaymentGateway
	metrics           interfaces.IWorkflowMetrics
	subscriptionPrice int64
	now               func() time.Time
}

var _ IPaymentRequestUseCase = (*PaymentRequestUseCase)(nil)

func NewPaymentRequestUseCase(
	repo interfaces.IPaymentRequestRepository,
	identities interfaces.IIdentityRepository,
	products interfaces.IProductRepository,
	gateway interfaces.IPaymentGateway,
	metrics interfaces.IWorkflowMetrics,
	subscriptionPrice int64,
) *PaymentRequestUseCase {
	if subscriptionPrice <= 0 {
		subscriptionPrice = DefaultSubscriptionPrice
	}
	return &PaymentRequestUseCase{
		repo:              repo,
		identities:        identities,
		products:          products,
		gateway:           gateway,
		metrics:           metricsOrNoop(metrics),
		subscriptionPrice: subscriptionPrice,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (u *PaymentRequestUseCase) SubmitOrder(ctx context.Context, userID string, lines []OrderLine, details TransactionDetails) (entities.PaymentRequest, error) {
	log.Printf("[payment][usecase] submit-order start user_id=%s lines=%d", userID, len(lines))
	details, err := normalizeDetails(details)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	lines, err = mergeOrderLines(lines)
	if err != nil {
		return entities.PaymentRequest{}, err
	}

	actor, err := u.loadActor(ctx, userID)
	if err != nil {
		return entities.PaymentRequest{}, err
	}

	items := make([]entities.OrderItem, 0, len(lines))
	var amount int64
	for _, line := range lines {
		p, err := u.products.GetByID(ctx, line.ProductID)
		if err != nil {
			log.Printf("[payment][usecase] failed loading product product_id=%s err=%v", line.ProductID, err)
			return entities.PaymentRequest{}, err
		}
		if p.ID == "" {
			log.Printf("[payment][usecase] product not found product_id=%s", line.ProductID)
			return entities.PaymentRequest{}, ErrProductNotFound
		}
		items = append(items, entities.OrderItem{
			ProductID:    p.ID,
			Title:        p.Title,
			Price:        p.Price,
			Category:     p.Category,
			ResourceType: p.ResourceType,
			Quantity:     line.Quantity,
		})
		amount += p.Price * int64(line.Quantity)
	}
	if amount <= 0 {
		log.Printf("[payment][usecase] invalid order amount user_id=%s amount=%d", actor.ID, amount)
		return entities.PaymentRequest{}, ErrInvalidAmount
	}

	return u.submit(ctx, actor, entities.PaymentKindOrder, amount, items, details)
}

func (u *PaymentRequestUseCase) SubmitSubscriptionPayment(ctx context.Context, userID string, details TransactionDetails) (entities.PaymentRequest, error) {
	log.Printf("[payment][usecase] submit-subscription start user_id=%s", userID)
	details, err := normalizeDetails(details)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	actor, err := u.loadActor(ctx, userID)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	return u.submit(ctx, actor, entities.PaymentKindSubscription, u.subscriptionPrice, nil, details)
}

func (u *PaymentRequestUseCase) submit(
	ctx context.Context,
	actor entities.Identity,
	kind entities.PaymentKind,
	amount int64,
	items []entities.OrderItem,
	details TransactionDetails,
) (entities.PaymentRequest, error) {
	r := entities.PaymentRequest{
		ID:            uuid.NewString(),
		UserID:        actor.ID,
		UserName:      actor.Name,
		UserEmail:     actor.Email,
		Kind:          kind,
		Amount:        amount,
		TransactionID: details.TransactionID,
		SenderName:    details.SenderName,
		SenderPhone:   details.SenderPhone,
		SubmittedAt:   u.now(),
		Status:        entities.SubscriptionStatusPending,
		Items:         items,
	}

	created, err := u.repo.Create(ctx, r)
	if err != nil {
		log.Printf("[payment][usecase] ledger create failed user_id=%s kind=%s err=%v", actor.ID, kind, err)
		return entities.PaymentRequest{}, err
	}
	u.metrics.RequestSubmitted(kind)
	log.Printf("[payment][usecase] submit success request_id=%s user_id=%s kind=%s amount=%d", created.ID, actor.ID, kind, amount)
	return created, nil
}

func (u *PaymentRequestUseCase) loadActor(ctx context.Context, userID string) (entities.Identity, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Identity{}, ErrInvalidIdentityID
	}
	actor, err := u.identities.GetByID(ctx, userID)
	if err != nil {
		log.Printf("[payment][usecase] failed loading identity user_id=%s err=%v", userID, err)
		return entities.Identity{}, err
	}
	if actor.ID == "" {
		return entities.Identity{}, ErrIdentityNotFound
	}
	return actor, nil
}

func normalizeDetails(d TransactionDetails) (TransactionDetails, error) {
	d.TransactionID = strings.TrimSpace(d.TransactionID)
	d.SenderName = strings.TrimSpace(d.SenderName)
	d.SenderPhone = strings.TrimSpace(d.SenderPhone)
	if d.TransactionID == "" || d.SenderName == "" || d.SenderPhone == "" {
		return TransactionDetails{}, ErrInvalidTransactionDetails
	}
	return d, nil
}

// mergeOrderLines validates lines and folds repeated products into one line.
func mergeOrderLines(lines []OrderLine) ([]OrderLine, error) {
	if len(lines) == 0 {
		return nil, ErrEmptyOrder
	}
	index := make(map[string]int, len(lines))
	out := make([]OrderLine, 0, len(lines))
	for _, l := range lines {
		id := strings.TrimSpace(l.ProductID)
		if id == "" {
			return nil, ErrInvalidProductID
		}
		if l.Quantity < 1 {
			return nil, ErrInvalidQuantity
		}
		if i, ok := index[id]; ok {
			out[i].Quantity += l.Quantity
			continue
		}
		index[id] = len(out)
		out = append(out, OrderLine{ProductID: id, Quantity: l.Quantity})
	}
	return out, nil
}

func (u *PaymentRequestUseCase) ListPending(ctx context.Context) ([]entities.PaymentRequest, error) {
	all, err := u.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	pending := make([]entities.PaymentRequest, 0, len(all))
	for _, r := range all {
		if r.Status == entities.SubscriptionStatusPending {
			pending = append(pending, r)
		}
	}
	return pending, nil
}

func (u *PaymentRequestUseCase) ListAll(ctx context.Context) ([]entities.PaymentRequest, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(all)
	return all, nil
}

func (u *PaymentRequestUseCase) ListMine(ctx context.Context, userID string) ([]entities.PaymentRequest, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidIdentityID
	}
	mine, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	sortNewestFirst(mine)
	return mine, nil
}

func (u *PaymentRequestUseCase) GetByID(ctx context.Context, id string) (entities.PaymentRequest, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PaymentRequest{}, ErrInvalidPaymentRequestID
	}

	r, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.PaymentRequest{}, err
	}
	if r.ID == "" {
		return entities.PaymentRequest{}, ErrPaymentRequestNotFound
	}
	return r, nil
}

// Verify looks the claimed transaction up at the payment provider. It never
// changes the request.
func (u *PaymentRequestUseCase) Verify(ctx context.Context, id string) (interfaces.PaymentLookup, error) {
	r, err := u.GetByID(ctx, id)
	if err != nil {
		return interfaces.PaymentLookup{}, err
	}
	if u.gateway == nil {
		log.Printf("[payment][usecase] gateway not configured request_id=%s", r.ID)
		return interfaces.PaymentLookup{}, ErrPaymentGatewayUnavailable
	}
	lookup, err := u.gateway.LookupPayment(ctx, r.TransactionID)
	if err != nil {
		log.Printf("[payment][usecase] gateway lookup failed request_id=%s transaction_id=%s err=%v", r.ID, r.TransactionID, err)
		return interfaces.PaymentLookup{}, err
	}
	log.Printf("[payment][usecase] gateway lookup request_id=%s found=%t provider_status=%s", r.ID, lookup.Found, lookup.ProviderStatus)
	return lookup, nil
}

func sortNewestFirst(rs []entities.PaymentRequest) {
	sort.SliceStable(rs, func(i, j int) bool {
		return rs[i].SubmittedAt.After(rs[j].SubmittedAt)
	})
}
