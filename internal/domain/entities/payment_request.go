package entities

import "time"

// PaymentKind distinguishes the two request flows.
type PaymentKind string

const (
	PaymentKindSubscription PaymentKind = "SUBSCRIPTION"
	PaymentKindOrder        PaymentKind = "ORDER"
)

// Valid reports whether k is a known kind.
func (k PaymentKind) Valid() bool {
	return k == PaymentKindSubscription || k == PaymentKindOrder
}

// ApprovedStatus is the terminal status an approval moves a request of kind k to.
func (k PaymentKind) ApprovedStatus() SubscriptionStatus {
	if k == PaymentKindSubscription {
		return SubscriptionStatusActive
	}
	return SubscriptionStatusApproved
}

// OrderItem is a product snapshot taken when the order was submitted.
type OrderItem struct {
	ProductID    string       `json:"product_id"`
	Title        string       `json:"title"`
	Price        int64        `json:"price"`
	Category     string       `json:"category"`
	ResourceType ResourceType `json:"resource_type"`
	Quantity     int          `json:"quantity"`
}

// PaymentRequest is a claimed out-of-band payment awaiting verification.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (user_id-index): user_id
//
// UserName and UserEmail are a snapshot of the submitter and are kept as an
// audit trail even if the identity is later renamed or deleted. Status moves
// from PENDING exactly once; no other field changes after creation.
type PaymentRequest struct {
	ID            string             `json:"id"`
	UserID        string             `json:"user_id"`
	UserName      string             `json:"user_name"`
	UserEmail     string             `json:"user_email"`
	Kind          PaymentKind        `json:"kind"`
	Amount        int64              `json:"amount"`
	TransactionID string             `json:"transaction_id"`
	SenderName    string             `json:"sender_name"`
	SenderPhone   string             `json:"sender_phone"`
	SubmittedAt   time.Time          `json:"submitted_at"`
	Status        SubscriptionStatus `json:"status"`
	Items         []OrderItem        `json:"items,omitempty"`
}

// ProductIDs returns the ids of the ordered items.
func (r PaymentRequest) ProductIDs() []string {
	ids := make([]string, 0, len(r.Items))
	for _, it := range r.Items {
		ids = append(ids, it.ProductID)
	}
	return ids
}
