package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"guytogo/internal/adapter/http/handlers/mocks"
	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newDecisionRouter(uc *mocks.MockIEntitlementUseCase) *gin.Engine {
	h := NewDecisionHandler(uc)
	r := gin.New()
	r.POST("/v1/admin/payment-requests/:id/approve", h.Approve)
	r.POST("/v1/admin/payment-requests/:id/decline", h.Decline)
	return r
}

func TestDecisionHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEntitlementUseCase(ctrl)
		uc.EXPECT().Decide(gomock.Any(), "r-1", usecase.DecisionApprove).
			Return(entities.PaymentRequest{ID: "r-1", Kind: entities.PaymentKindSubscription, Status: entities.SubscriptionStatusActive}, nil)

		w := doJSON(newDecisionRouter(uc), http.MethodPost, "/v1/admin/payment-requests/r-1/approve", "")
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if w.Code != http.StatusOK || body["status"] != "ACTIVE" {
			t.Fatalf("unexpected response: %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("decline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEntitlementUseCase(ctrl)
		uc.EXPECT().Decide(gomock.Any(), "r-1", usecase.DecisionDecline).
			Return(entities.PaymentRequest{ID: "r-1", Status: entities.SubscriptionStatusRejected}, nil)

		if w := doJSON(newDecisionRouter(uc), http.MethodPost, "/v1/admin/payment-requests/r-1/decline", ""); w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("already resolved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEntitlementUseCase(ctrl)
		uc.EXPECT().Decide(gomock.Any(), "r-1", usecase.DecisionApprove).
			Return(entities.PaymentRequest{}, usecase.ErrPaymentRequestAlreadyResolved)

		w := doJSON(newDecisionRouter(uc), http.MethodPost, "/v1/admin/payment-requests/r-1/approve", "")
		if w.Code != http.StatusConflict || errorCode(t, w) != "PAYMENT_REQUEST_ALREADY_RESOLVED" {
			t.Fatalf("expected 409, got %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEntitlementUseCase(ctrl)
		uc.EXPECT().Decide(gomock.Any(), "r-9", usecase.DecisionDecline).
			Return(entities.PaymentRequest{}, usecase.ErrPaymentRequestNotFound)

		if w := doJSON(newDecisionRouter(uc), http.MethodPost, "/v1/admin/payment-requests/r-9/decline", ""); w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("resolved but user gone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIEntitlementUseCase(ctrl)
		uc.EXPECT().Decide(gomock.Any(), "r-1", usecase.DecisionApprove).
			Return(entities.PaymentRequest{ID: "r-1", Status: entities.SubscriptionStatusApproved}, usecase.ErrIdentityNotFound)

		w := doJSON(newDecisionRouter(uc), http.MethodPost, "/v1/admin/payment-requests/r-1/approve", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body struct {
			Code    string         `json:"code"`
			Request map[string]any `json:"request"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid json: %v", err)
		}
		if body.Code != "USER_NOT_FOUND" || body.Request["status"] != "APPROVED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
