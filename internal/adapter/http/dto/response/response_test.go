package response

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase"
	"guytogo/internal/usecase/interfaces"
)

func TestFromIdentity(t *testing.T) {
	res := FromIdentity(entities.Identity{
		ID:                 "u-1",
		Email:              "ann@test.com",
		Role:               entities.RoleTeacher,
		SubscriptionStatus: entities.SubscriptionStatusNone,
		PasswordHash:       "$2a$12$secret",
	})
	if res.PurchasedProductIDs == nil || len(res.PurchasedProductIDs) != 0 {
		t.Fatalf("expected empty owned list, got %v", res.PurchasedProductIDs)
	}
	b, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(b), "secret") {
		t.Fatalf("password hash leaked: %s", b)
	}
}

func TestFromProfile(t *testing.T) {
	res := FromProfile(usecase.Profile{
		Identity:              entities.Identity{ID: "u-1", SubscriptionStatus: entities.SubscriptionStatusNone},
		EffectiveSubscription: entities.SubscriptionStatusPending,
	})
	if res.SubscriptionStatus != "NONE" || res.EffectiveSubscriptionStatus != "PENDING" {
		t.Fatalf("unexpected profile: %+v", res)
	}
}

func TestFromProduct_HidesFileURL(t *testing.T) {
	p := entities.Product{ID: "p-1", FileURL: "https://files/p-1.pdf", ResourceType: entities.ResourceTypePDF}
	if FromProduct(p).FileURL != "" {
		t.Fatalf("catalog view must not expose the file url")
	}
	lib := FromLibrary([]entities.Product{p})
	if len(lib) != 1 || lib[0].FileURL != "https://files/p-1.pdf" {
		t.Fatalf("library must expose the file url: %+v", lib)
	}
}

func TestFromPaymentRequest(t *testing.T) {
	now := time.Now().UTC()
	res := FromPaymentRequest(entities.PaymentRequest{
		ID:          "r-1",
		Kind:        entities.PaymentKindOrder,
		Amount:      7500,
		Status:      entities.SubscriptionStatusPending,
		SubmittedAt: now,
		Items:       []entities.OrderItem{{ProductID: "p1", Title: "Kit", Price: 7500, Quantity: 1, ResourceType: entities.ResourceTypeLink}},
	})
	if res.Kind != "ORDER" || res.Status != "PENDING" || res.Amount != 7500 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].ResourceType != "LINK" {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if !res.SubmittedAt.Equal(now) {
		t.Fatalf("unexpected date: %v", res.SubmittedAt)
	}
}

func TestFromPaymentLookup(t *testing.T) {
	res := FromPaymentLookup(
		entities.PaymentRequest{ID: "r-1", TransactionID: "123"},
		interfaces.PaymentLookup{Found: true, ProviderStatus: "approved", ProviderResponse: json.RawMessage(`{"id":123}`)},
	)
	if !res.Found || res.RequestID != "r-1" || res.TransactionID != "123" || res.ProviderStatus != "approved" {
		t.Fatalf("unexpected verification: %+v", res)
	}
}

func TestFromLessonPlans(t *testing.T) {
	res := FromLessonPlans([]entities.LessonPlan{{ID: "lp-1", Subject: "Maths", Content: "<h2>x</h2>"}})
	if len(res) != 1 || res[0].ID != "lp-1" || res[0].Content != "<h2>x</h2>" {
		t.Fatalf("unexpected plans: %+v", res)
	}
}
