package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
)

func TestNewMercadoPagoGateway(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")

		_, err := NewMercadoPagoGateway("")
		if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
			t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
		}
	})

	t.Run("mock mode ignores token", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "true")

		g, err := NewMercadoPagoGateway("")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !g.mockMode {
			t.Fatalf("expected mock mode")
		}
	})
}

func TestMercadoPagoGateway_LookupPayment(t *testing.T) {
	t.Run("mock lookup", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}

		got, err := g.LookupPayment(context.Background(), " MMG-123 ")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.Found || got.ProviderStatus != "approved" {
			t.Fatalf("unexpected lookup: %+v", got)
		}
		var body map[string]any
		if err := json.Unmarshal(got.ProviderResponse, &body); err != nil {
			t.Fatalf("invalid provider response: %v", err)
		}
		if body["id"] != "MMG-123" {
			t.Fatalf("expected echoed id, got %v", body["id"])
		}
	})

	t.Run("mock lookup empty id", func(t *testing.T) {
		g := &MercadoPagoGateway{mockMode: true}
		got, err := g.LookupPayment(context.Background(), "")
		if err != nil || got.Found {
			t.Fatalf("expected not found, got %+v err=%v", got, err)
		}
	})

	t.Run("not configured", func(t *testing.T) {
		var g *MercadoPagoGateway
		_, err := g.LookupPayment(context.Background(), "123")
		if !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
			t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
		}
	})
}

func TestIsPaymentGatewayMockEnabled(t *testing.T) {
	for _, v := range []string{"1", "true", "YES", " on ", "mock"} {
		t.Setenv("PAYMENT_GATEWAY_MOCK", v)
		if !isPaymentGatewayMockEnabled() {
			t.Fatalf("expected mock enabled for %q", v)
		}
	}
	t.Setenv("PAYMENT_GATEWAY_MOCK", "off")
	t.Setenv("MERCADOPAGO_MOCK", "")
	if isPaymentGatewayMockEnabled() {
		t.Fatalf("expected mock disabled")
	}
}
