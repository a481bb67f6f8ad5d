package interfaces

import (
	"context"
	"encoding/json"
)

// PaymentLookup is what the provider reports for a claimed transaction.
type PaymentLookup struct {
	Found            bool
	ProviderStatus   string
	StatusDetail     string
	Amount           float64
	ProviderResponse json.RawMessage
}

// IPaymentGateway abstracts external payment providers (e.g. Mercado Pago).
//
// Lookups are advisory: an administrator still decides every request.
type IPaymentGateway interface {
	LookupPayment(ctx context.Context, transactionID string) (PaymentLookup, error)
}
