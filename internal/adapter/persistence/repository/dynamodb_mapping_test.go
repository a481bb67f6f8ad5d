package repository

import (
	"errors"
	"testing"
	"time"

	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityItem_StoresProductsAsStringSet(t *testing.T) {
	joined := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	i := entities.Identity{
		ID:                  "u-1",
		Email:               "Ann@Test.com",
		Name:                "Ann",
		Role:                entities.RoleTeacher,
		SubscriptionStatus:  entities.SubscriptionStatusActive,
		SubscriptionSeq:     3,
		PurchasedProductIDs: []string{"p1", "p2", "p1"},
		JoinedAt:            &joined,
		PasswordHash:        "hash",
		CreatedAt:           joined,
		UpdatedAt:           joined,
	}

	av, err := attributevalue.MarshalMap(toIdentityItem(i))
	require.NoError(t, err)

	emailKey, ok := av["email_key"].(*types.AttributeValueMemberS)
	require.True(t, ok)
	assert.Equal(t, "ann@test.com", emailKey.Value)

	pids, ok := av["purchased_product_ids"].(*types.AttributeValueMemberSS)
	require.True(t, ok, "purchased_product_ids must be a string set")
	assert.ElementsMatch(t, []string{"p1", "p2"}, pids.Value)

	got, err := identityFromAttributes(av)
	require.NoError(t, err)
	assert.Equal(t, "Ann@Test.com", got.Email)
	assert.Equal(t, int64(3), got.SubscriptionSeq)
	assert.Equal(t, "hash", got.PasswordHash)
	require.NotNil(t, got.JoinedAt)
	assert.True(t, got.JoinedAt.Equal(joined))
}

func TestIdentityItem_EmptyProductsAreOmitted(t *testing.T) {
	av, err := attributevalue.MarshalMap(toIdentityItem(entities.Identity{ID: "u-1", Email: "a@b.gy"}))
	require.NoError(t, err)

	_, present := av["purchased_product_ids"]
	assert.False(t, present)

	got, err := identityFromAttributes(av)
	require.NoError(t, err)
	assert.NotNil(t, got.PurchasedProductIDs)
	assert.Empty(t, got.PurchasedProductIDs)
	assert.Equal(t, entities.SubscriptionStatusNone, got.SubscriptionStatus)
	assert.Nil(t, got.JoinedAt)

	// Signup writes an explicit empty slice.
	av, err = attributevalue.MarshalMap(toIdentityItem(entities.Identity{ID: "u-2", Email: "c@d.gy", PurchasedProductIDs: []string{}}))
	require.NoError(t, err)
	_, present = av["purchased_product_ids"]
	assert.False(t, present)
}

func TestIdentityFromAttributes_Empty(t *testing.T) {
	got, err := identityFromAttributes(nil)
	require.NoError(t, err)
	assert.Equal(t, "", got.ID)
}

func TestPaymentRequestItem_KeepsOrderSnapshot(t *testing.T) {
	submitted := time.Date(2026, 3, 4, 5, 6, 7, 8, time.UTC)
	r := entities.PaymentRequest{
		ID:            "r-1",
		UserID:        "u-1",
		UserName:      "Ann",
		UserEmail:     "ann@test.com",
		Kind:          entities.PaymentKindOrder,
		Amount:        6500,
		TransactionID: "tx",
		SenderName:    "Ann",
		SenderPhone:   "600",
		SubmittedAt:   submitted,
		Status:        entities.SubscriptionStatusPending,
		Items: []entities.OrderItem{
			{ProductID: "p1", Title: "Kit", Price: 5000, Category: "Exam Prep", ResourceType: entities.ResourceTypePDF, Quantity: 1},
			{ProductID: "p3", Title: "Sheets", Price: 1500, Quantity: 1},
		},
	}

	av, err := attributevalue.MarshalMap(toPaymentRequestItem(r))
	require.NoError(t, err)

	got, err := paymentRequestFromAttributes(av)
	require.NoError(t, err)
	assert.Equal(t, r.Items, got.Items)
	assert.True(t, got.SubmittedAt.Equal(submitted))
	assert.Equal(t, r.Amount, got.Amount)
	assert.Equal(t, entities.PaymentKindOrder, got.Kind)
}

func TestPaymentRequestItem_SubscriptionHasNoItems(t *testing.T) {
	av, err := attributevalue.MarshalMap(toPaymentRequestItem(entities.PaymentRequest{
		ID:     "r-2",
		Kind:   entities.PaymentKindSubscription,
		Status: entities.SubscriptionStatusPending,
	}))
	require.NoError(t, err)

	_, present := av["items"]
	assert.False(t, present)
}

func TestProductAndLessonPlanItems(t *testing.T) {
	created := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	p := entities.Product{ID: "p1", Title: "Kit", Price: 5000, ResourceType: entities.ResourceTypeLink, CreatedAt: created}
	assert.Equal(t, p, fromProductItem(toProductItem(p)))

	lp := entities.LessonPlan{ID: "lp-1", UserID: "u-1", Subject: "Math", Content: "<p/>", GeneratedAt: created}
	assert.Equal(t, lp, fromLessonPlanItem(toLessonPlanItem(lp)))
}

func TestEmailClaim(t *testing.T) {
	assert.Equal(t, "email#ann@test.com", emailClaimID(" Ann@Test.com"))

	repo := &IdentityDynamoRepository{tableName: "identities"}
	put, err := repo.claimEmail("Ann@Test.com", "u-1")
	require.NoError(t, err)
	assert.Equal(t, &types.AttributeValueMemberS{Value: "email#ann@test.com"}, put.Item["id"])
	assert.Equal(t, &types.AttributeValueMemberS{Value: "u-1"}, put.Item["owner_id"])
	_, hasKey := put.Item["email_key"]
	assert.False(t, hasKey)

	del := repo.releaseEmail("ann@test.com", "u-1")
	assert.Equal(t, &types.AttributeValueMemberS{Value: "email#ann@test.com"}, del.Key["id"])
}

func TestEmailClaimError(t *testing.T) {
	taken := &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
		{Code: aws.String("ConditionalCheckFailed")},
		{Code: aws.String("None")},
	}}
	assert.ErrorIs(t, emailClaimError(taken), interfaces.ErrDuplicateEmail)

	idClash := &types.TransactionCanceledException{CancellationReasons: []types.CancellationReason{
		{Code: aws.String("None")},
		{Code: aws.String("ConditionalCheckFailed")},
	}}
	assert.NotErrorIs(t, emailClaimError(idClash), interfaces.ErrDuplicateEmail)

	other := errors.New("throttled")
	assert.Equal(t, other, emailClaimError(other))
}

func TestGetenvDefault(t *testing.T) {
	t.Setenv("PRODUCTS_TABLE", "")
	assert.Equal(t, "products", getenvDefault("PRODUCTS_TABLE", defaultProductsTableName))
	t.Setenv("PRODUCTS_TABLE", "catalog-dev")
	assert.Equal(t, "catalog-dev", NewProductDynamoRepository(nil).tableName)
}
