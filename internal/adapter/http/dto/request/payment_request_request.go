package request

import "guytogo/internal/usecase"

// TransactionRequest is the payer's claim about an MMG transfer.
type TransactionRequest struct {
	TransactionID string `json:"transaction_id" binding:"required"`
	SenderName    string `json:"sender_name" binding:"required"`
	SenderPhone   string `json:"sender_phone" binding:"required"`
}

func (r TransactionRequest) ToDetails() usecase.TransactionDetails {
	return usecase.TransactionDetails{
		TransactionID: r.TransactionID,
		SenderName:    r.SenderName,
		SenderPhone:   r.SenderPhone,
	}
}

type OrderItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	Quantity  int    `json:"quantity"`
}

type OrderRequest struct {
	Items []OrderItemRequest `json:"items" binding:"required"`
	TransactionRequest
}

// ToLines treats an omitted quantity as one unit. Negative quantities are
// passed through so the use case rejects them.
func (r OrderRequest) ToLines() []usecase.OrderLine {
	lines := make([]usecase.OrderLine, 0, len(r.Items))
	for _, it := range r.Items {
		qty := it.Quantity
		if qty == 0 {
			qty = 1
		}
		lines = append(lines, usecase.OrderLine{ProductID: it.ProductID, Quantity: qty})
	}
	return lines
}

type SubscriptionPaymentRequest struct {
	TransactionRequest
}
