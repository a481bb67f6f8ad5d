package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"
	mock_interfaces "guytogo/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var validDetails = TransactionDetails{TransactionID: " tx-9 ", SenderName: "Ann", SenderPhone: "600-0000"}

func TestPaymentRequestUseCase_SubmitOrder_Validations(t *testing.T) {
	cases := []struct {
		name    string
		lines   []OrderLine
		details TransactionDetails
		want    error
	}{
		{"missing transaction id", []OrderLine{{ProductID: "p1", Quantity: 1}}, TransactionDetails{SenderName: "a", SenderPhone: "1"}, ErrInvalidTransactionDetails},
		{"missing sender phone", []OrderLine{{ProductID: "p1", Quantity: 1}}, TransactionDetails{TransactionID: "t", SenderName: "a", SenderPhone: " "}, ErrInvalidTransactionDetails},
		{"empty order", nil, validDetails, ErrEmptyOrder},
		{"zero quantity", []OrderLine{{ProductID: "p1", Quantity: 0}}, validDetails, ErrInvalidQuantity},
		{"blank product id", []OrderLine{{ProductID: " ", Quantity: 1}}, validDetails, ErrInvalidProductID},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			uc := NewPaymentRequestUseCase(nil, nil, nil, nil, nil, 0)
			_, err := uc.SubmitOrder(context.Background(), "u-1", tc.lines, tc.details)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentRequestUseCase_SubmitOrder(t *testing.T) {
	t.Run("unknown actor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identities := mock_interfaces.NewMockIIdentityRepository(ctrl)
		uc := NewPaymentRequestUseCase(nil, identities, nil, nil, nil, 0)

		identities.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Identity{}, nil)

		_, err := uc.SubmitOrder(context.Background(), "u-1", []OrderLine{{ProductID: "p1", Quantity: 1}}, validDetails)
		if !errors.Is(err, ErrIdentityNotFound) {
			t.Fatalf("expected ErrIdentityNotFound, got %v", err)
		}
	})

	t.Run("unknown product", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identities := mock_interfaces.NewMockIIdentityRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewPaymentRequestUseCase(nil, identities, products, nil, nil, 0)

		identities.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Identity{ID: "u-1"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "nope").Return(entities.Product{}, nil)

		_, err := uc.SubmitOrder(context.Background(), "u-1", []OrderLine{{ProductID: "nope", Quantity: 1}}, validDetails)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("free products are rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		identities := mock_interfaces.NewMockIIdentityRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewPaymentRequestUseCase(nil, identities, products, nil, nil, 0)

		identities.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Identity{ID: "u-1"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "free").Return(entities.Product{ID: "free", Price: 0}, nil)

		_, err := uc.SubmitOrder(context.Background(), "u-1", []OrderLine{{ProductID: "free", Quantity: 1}}, validDetails)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("success merges lines and snapshots products", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRequestRepository(ctrl)
		identities := mock_interfaces.NewMockIIdentityRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		metrics := mock_interfaces.NewMockIWorkflowMetrics(ctrl)
		uc := NewPaymentRequestUseCase(repo, identities, products, nil, metrics, 0)

		identities.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Identity{ID: "u-1", Name: "Ann", Email: "ann@test.com"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Title: "Kit", Price: 5000, ResourceType: entities.ResourceTypePDF}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p3").Return(entities.Product{ID: "p3", Title: "Worksheets", Price: 1500}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.PaymentRequest) (entities.PaymentRequest, error) {
			return r, nil
		})
		metrics.EXPECT().RequestSubmitted(entities.PaymentKindOrder)

		got, err := uc.SubmitOrder(context.Background(), "u-1", []OrderLine{
			{ProductID: "p1", Quantity: 1},
			{ProductID: "p3", Quantity: 1},
			{ProductID: "p1", Quantity: 1},
		}, validDetails)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.ID == "" || got.Status != entities.SubscriptionStatusPending || got.Kind != entities.PaymentKindOrder {
			t.Fatalf("unexpected request: %+v", got)
		}
		if got.Amount != 11500 {
			t.Fatalf("expected amount 11500, got %d", got.Amount)
		}
		if len(got.Items) != 2 || got.Items[0].Quantity != 2 || got.Items[0].Title != "Kit" {
			t.Fatalf("unexpected items: %+v", got.Items)
		}
		if got.TransactionID != "tx-9" || got.UserName != "Ann" || got.UserEmail != "ann@test.com" {
			t.Fatalf("unexpected snapshot: %+v", got)
		}
	})

	t.Run("repository error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRequestRepository(ctrl)
		identities := mock_interfaces.NewMockIIdentityRepository(ctrl)
		products := mock_interfaces.NewMockIProductRepository(ctrl)
		uc := NewPaymentRequestUseCase(repo, identities, products, nil, nil, 0)

		identities.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Identity{ID: "u-1"}, nil)
		products.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Product{ID: "p1", Price: 5000}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.PaymentRequest{}, errors.New("db"))

		_, err := uc.SubmitOrder(context.Background(), "u-1", []OrderLine{{ProductID: "p1", Quantity: 1}}, validDetails)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestPaymentRequestUseCase_SubmitSubscriptionPayment(t *testing.T) {
	t.Run("uses configured price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRequestRepository(ctrl)
		identities := mock_interfaces.NewMockIIdentityRepository(ctrl)
		uc := NewPaymentRequestUseCase(repo, identities, nil, nil, nil, 9000)

		identities.EXPECT().GetByID(gomock.Any(), "u-1").Return(entities.Identity{ID: "u-1"}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, r entities.PaymentRequest) (entities.PaymentRequest, error) {
			return r, nil
		})

		got, err := uc.SubmitSubscriptionPayment(context.Background(), "u-1", validDetails)
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if got.Kind != entities.PaymentKindSubscription || got.Amount != 9000 || len(got.Items) != 0 {
			t.Fatalf("unexpected request: %+v", got)
		}
	})

	t.Run("default price", func(t *testing.T) {
		uc := NewPaymentRequestUseCase(nil, nil, nil, nil, nil, 0)
		if uc.subscriptionPrice != DefaultSubscriptionPrice {
			t.Fatalf("expected default price, got %d", uc.subscriptionPrice)
		}
	})

	t.Run("blank user", func(t *testing.T) {
		uc := NewPaymentRequestUseCase(nil, nil, nil, nil, nil, 0)
		_, err := uc.SubmitSubscriptionPayment(context.Background(), " ", validDetails)
		if !errors.Is(err, ErrInvalidIdentityID) {
			t.Fatalf("expected ErrInvalidIdentityID, got %v", err)
		}
	})
}

func TestPaymentRequestUseCase_Listing(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	stored := []entities.PaymentRequest{
		{ID: "old", SubmittedAt: t0, Status: entities.SubscriptionStatusPending},
		{ID: "done", SubmittedAt: t0.Add(time.Hour), Status: entities.SubscriptionStatusApproved},
		{ID: "new", SubmittedAt: t0.Add(2 * time.Hour), Status: entities.SubscriptionStatusPending},
	}

	t.Run("pending newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRequestRepository(ctrl)
		uc := NewPaymentRequestUseCase(repo, nil, nil, nil, nil, 0)
		repo.EXPECT().List(gomock.Any()).Return(append([]entities.PaymentRequest(nil), stored...), nil)

		got, err := uc.ListPending(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 2 || got[0].ID != "new" || got[1].ID != "old" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("all newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRequestRepository(ctrl)
		uc := NewPaymentRequestUseCase(repo, nil, nil, nil, nil, 0)
		repo.EXPECT().List(gomock.Any()).Return(append([]entities.PaymentRequest(nil), stored...), nil)

		got, err := uc.ListAll(context.Background())
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 3 || got[0].ID != "new" || got[2].ID != "old" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("mine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRequestRepository(ctrl)
		uc := NewPaymentRequestUseCase(repo, nil, nil, nil, nil, 0)
		repo.EXPECT().ListByUserID(gomock.Any(), "u-1").Return([]entities.PaymentRequest{stored[0], stored[2]}, nil)

		got, err := uc.ListMine(context.Background(), "u-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if len(got) != 2 || got[0].ID != "new" {
			t.Fatalf("unexpected order: %+v", got)
		}
	})

	t.Run("list error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRequestRepository(ctrl)
		uc := NewPaymentRequestUseCase(repo, nil, nil, nil, nil, 0)
		repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db"))

		if _, err := uc.ListPending(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestPaymentRequestUseCase_GetByIDAndVerify(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRequestRepository(ctrl)
		uc := NewPaymentRequestUseCase(repo, nil, nil, nil, nil, 0)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.PaymentRequest{}, nil)

		_, err := uc.GetByID(context.Background(), "r-1")
		if !errors.Is(err, ErrPaymentRequestNotFound) {
			t.Fatalf("expected ErrPaymentRequestNotFound, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRequestRepository(ctrl)
		uc := NewPaymentRequestUseCase(repo, nil, nil, nil, nil, 0)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.PaymentRequest{ID: "r-1", TransactionID: "tx"}, nil)

		_, err := uc.Verify(context.Background(), "r-1")
		if !errors.Is(err, ErrPaymentGatewayUnavailable) {
			t.Fatalf("expected ErrPaymentGatewayUnavailable, got %v", err)
		}
	})

	t.Run("lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIPaymentRequestRepository(ctrl)
		gateway := mock_interfaces.NewMockIPaymentGateway(ctrl)
		uc := NewPaymentRequestUseCase(repo, nil, nil, gateway, nil, 0)
		repo.EXPECT().GetByID(gomock.Any(), "r-1").Return(entities.PaymentRequest{ID: "r-1", TransactionID: "123"}, nil)
		gateway.EXPECT().LookupPayment(gomock.Any(), "123").Return(interfaces.PaymentLookup{Found: true, ProviderStatus: "approved"}, nil)

		got, err := uc.Verify(context.Background(), "r-1")
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !got.Found || got.ProviderStatus != "approved" {
			t.Fatalf("unexpected lookup: %+v", got)
		}
	})
}
