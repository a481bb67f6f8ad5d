package payments

import (
	"context"
	"encoding/json"
	"errors"
	"guytogo/internal/usecase/interfaces"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/mperror"
	"github.com/mercadopago/sdk-go/pkg/payment"
)

var ErrMissingMercadoPagoAccessToken = errors.New("missing MERCADOPAGO_ACCESS_TOKEN")
var ErrMercadoPagoGatewayNotConfigured = errors.New("mercado pago gateway not configured")

// MercadoPagoGateway looks claimed transactions up at Mercado Pago. It never
// creates or captures payments.
type MercadoPagoGateway struct {
	client   payment.Client
	mockMode bool
}

var _ interfaces.IPaymentGateway = (*MercadoPagoGateway)(nil)

func NewMercadoPagoGateway(accessToken string) (*MercadoPagoGateway, error) {
	if isPaymentGatewayMockEnabled() {
		log.Printf("[payment][gateway] mock mode enabled")
		return &MercadoPagoGateway{mockMode: true}, nil
	}

	if accessToken == "" {
		log.Printf("[payment][gateway] missing MERCADOPAGO_ACCESS_TOKEN")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Printf("[payment][gateway] failed creating sdk config err=%v", err)
		return nil, err
	}
	log.Printf("[payment][gateway] Mercado Pago client initialized")

	return &MercadoPagoGateway{client: payment.NewClient(cfg)}, nil
}

// LookupPayment fetches the provider record for transactionID. Identifiers the
// provider cannot know (non-numeric, unknown) are reported as not found.
func (g *MercadoPagoGateway) LookupPayment(ctx context.Context, transactionID string) (interfaces.PaymentLookup, error) {
	transactionID = strings.TrimSpace(transactionID)

	if g != nil && g.mockMode {
		return mockLookup(transactionID)
	}

	if g == nil || g.client == nil {
		log.Printf("[payment][gateway] gateway not configured")
		return interfaces.PaymentLookup{}, ErrMercadoPagoGatewayNotConfigured
	}

	id, err := strconv.Atoi(transactionID)
	if err != nil || id <= 0 {
		log.Printf("[payment][gateway] lookup skipped non-numeric transaction_id=%q", transactionID)
		return interfaces.PaymentLookup{Found: false}, nil
	}

	log.Printf("[payment][gateway] lookup start transaction_id=%d", id)
	resp, err := g.client.Get(ctx, id)
	if err != nil {
		var respErr *mperror.ResponseError
		if errors.As(err, &respErr) && respErr.StatusCode == http.StatusNotFound {
			log.Printf("[payment][gateway] lookup not found transaction_id=%d", id)
			return interfaces.PaymentLookup{Found: false}, nil
		}
		log.Printf("[payment][gateway] sdk get failed err=%v", err)
		return interfaces.PaymentLookup{}, err
	}

	b, err := json.Marshal(resp)
	if err != nil {
		log.Printf("[payment][gateway] response marshal failed err=%v", err)
		return interfaces.PaymentLookup{}, err
	}
	log.Printf("[payment][gateway] lookup success transaction_id=%d provider_status=%s", resp.ID, resp.Status)

	return interfaces.PaymentLookup{
		Found:            true,
		ProviderStatus:   resp.Status,
		StatusDetail:     resp.StatusDetail,
		Amount:           resp.TransactionAmount,
		ProviderResponse: b,
	}, nil
}

func mockLookup(transactionID string) (interfaces.PaymentLookup, error) {
	log.Printf("[payment][gateway] mock lookup transaction_id=%q", transactionID)
	if transactionID == "" {
		return interfaces.PaymentLookup{Found: false}, nil
	}
	b, err := json.Marshal(map[string]any{
		"id":            transactionID,
		"status":        "approved",
		"status_detail": "accredited",
		"date_approved": time.Now().UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return interfaces.PaymentLookup{}, err
	}
	return interfaces.PaymentLookup{
		Found:            true,
		ProviderStatus:   "approved",
		StatusDetail:     "accredited",
		ProviderResponse: b,
	}, nil
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
