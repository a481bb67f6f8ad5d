package response

import (
	"encoding/json"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	"time"
)

type OrderItemResponse struct {
	ProductID    string `json:"product_id"`
	Title        string `json:"title"`
	Price        int64  `json:"price"`
	Category     string `json:"category"`
	ResourceType string `json:"resource_type"`
	Quantity     int    `json:"quantity"`
}

type PaymentRequestResponse struct {
	ID            string              `json:"id"`
	UserID        string              `json:"user_id"`
	UserName      string              `json:"user_name"`
	UserEmail     string              `json:"user_email"`
	Kind          string              `json:"kind"`
	Amount        int64               `json:"amount"`
	TransactionID string              `json:"transaction_id"`
	SenderName    string              `json:"sender_name"`
	SenderPhone   string              `json:"sender_phone"`
	SubmittedAt   time.Time           `json:"submitted_at"`
	Status        string              `json:"status"`
	Items         []OrderItemResponse `json:"items,omitempty"`
}

func FromPaymentRequest(r entities.PaymentRequest) PaymentRequestResponse {
	var items []OrderItemResponse
	for _, it := range r.Items {
		items = append(items, OrderItemResponse{
			ProductID:    it.ProductID,
			Title:        it.Title,
			Price:        it.Price,
			Category:     it.Category,
			ResourceType: string(it.ResourceType),
			Quantity:     it.Quantity,
		})
	}
	return PaymentRequestResponse{
		ID:            r.ID,
		UserID:        r.UserID,
		UserName:      r.UserName,
		UserEmail:     r.UserEmail,
		Kind:          string(r.Kind),
		Amount:        r.Amount,
		TransactionID: r.TransactionID,
		SenderName:    r.SenderName,
		SenderPhone:   r.SenderPhone,
		SubmittedAt:   r.SubmittedAt,
		Status:        string(r.Status),
		Items:         items,
	}
}

func FromPaymentRequests(list []entities.PaymentRequest) []PaymentRequestResponse {
	out := make([]PaymentRequestResponse, 0, len(list))
	for _, r := range list {
		out = append(out, FromPaymentRequest(r))
	}
	return out
}

// PaymentVerificationResponse is advisory; it never changes the request.
type PaymentVerificationResponse struct {
	RequestID        string          `json:"request_id"`
	TransactionID    string          `json:"transaction_id"`
	Found            bool            `json:"found"`
	ProviderStatus   string          `json:"provider_status,omitempty"`
	StatusDetail     string          `json:"status_detail,omitempty"`
	Amount           float64         `json:"amount,omitempty"`
	ProviderResponse json.RawMessage `json:"provider_response,omitempty"`
}

func FromPaymentLookup(r entities.PaymentRequest, l interfaces.PaymentLookup) PaymentVerificationResponse {
	return PaymentVerificationResponse{
		RequestID:        r.ID,
		TransactionID:    r.TransactionID,
		Found:            l.Found,
		ProviderStatus:   l.ProviderStatus,
		StatusDetail:     l.StatusDetail,
		Amount:           l.Amount,
		ProviderResponse: l.ProviderResponse,
	}
}
