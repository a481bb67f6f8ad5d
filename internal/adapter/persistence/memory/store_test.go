package memory

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"guytogo/internal/domain/entities"
	"guytogo/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIdentityRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Identities()

	_, err := repo.Create(ctx, entities.Identity{ID: "u-1", Email: "Ann@Test.com", SubscriptionStatus: entities.SubscriptionStatusNone})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Identity{ID: "u-1"})
	assert.ErrorIs(t, err, ErrDuplicateID)

	got, err := repo.GetByEmail(ctx, " ann@test.COM ")
	require.NoError(t, err)
	assert.Equal(t, "u-1", got.ID)

	missing, err := repo.GetByID(ctx, "nope")
	require.NoError(t, err)
	assert.Equal(t, "", missing.ID)

	granted, err := repo.GrantProducts(ctx, "u-1", []string{"p1", "p2"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, granted.PurchasedProductIDs)

	granted, err = repo.GrantProducts(ctx, "u-1", []string{"p2", "p3"})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2", "p3"}, granted.PurchasedProductIDs)

	none, err := repo.GrantProducts(ctx, "ghost", []string{"p1"})
	require.NoError(t, err)
	assert.Equal(t, "", none.ID)
}

func TestIdentityRepository_OneIdentityPerEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Identities()

	_, err := repo.Create(ctx, entities.Identity{ID: "u-1", Email: "ann@test.com"})
	require.NoError(t, err)
	_, err = repo.Create(ctx, entities.Identity{ID: "u-2", Email: " ANN@test.com"})
	assert.ErrorIs(t, err, interfaces.ErrDuplicateEmail)

	_, err = repo.Create(ctx, entities.Identity{ID: "u-2", Email: "bob@test.com"})
	require.NoError(t, err)
	_, err = repo.Upsert(ctx, entities.Identity{ID: "u-2", Email: "Ann@Test.com"})
	assert.ErrorIs(t, err, interfaces.ErrDuplicateEmail)

	kept, err := repo.Upsert(ctx, entities.Identity{ID: "u-1", Name: "Ann", Email: "ann@test.com"})
	require.NoError(t, err)
	assert.Equal(t, "Ann", kept.Name)

	bob, err := repo.GetByEmail(ctx, "bob@test.com")
	require.NoError(t, err)
	assert.Equal(t, "u-2", bob.ID)
}

func TestIdentityRepository_ConcurrentCreateSameEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Identities()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for n := 0; n < 16; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, err := repo.Create(ctx, entities.Identity{ID: fmt.Sprintf("u-%d", n), Email: "ann@test.com"})
			if err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}(n)
	}
	wg.Wait()

	assert.Equal(t, 1, created)
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestIdentityRepository_GrantSubscriptionOrdering(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Identities()
	_, err := repo.Create(ctx, entities.Identity{ID: "u-1", SubscriptionStatus: entities.SubscriptionStatusNone})
	require.NoError(t, err)

	got, err := repo.GrantSubscription(ctx, "u-1", entities.SubscriptionStatusActive, 5)
	require.NoError(t, err)
	assert.Equal(t, entities.SubscriptionStatusActive, got.SubscriptionStatus)

	got, err = repo.GrantSubscription(ctx, "u-1", entities.SubscriptionStatusRejected, 4)
	require.NoError(t, err)
	assert.Equal(t, entities.SubscriptionStatusActive, got.SubscriptionStatus, "older decision must not win")
	assert.Equal(t, int64(5), got.SubscriptionSeq)
}

func TestIdentityRepository_UpsertKeepsEntitlements(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Identities()
	_, err := repo.Create(ctx, entities.Identity{ID: "u-1", Name: "Ann", SubscriptionStatus: entities.SubscriptionStatusNone})
	require.NoError(t, err)
	_, err = repo.GrantProducts(ctx, "u-1", []string{"p1"})
	require.NoError(t, err)
	_, err = repo.GrantSubscription(ctx, "u-1", entities.SubscriptionStatusActive, 1)
	require.NoError(t, err)

	got, err := repo.Upsert(ctx, entities.Identity{ID: "u-1", Name: "Ann Marie", SubscriptionStatus: entities.SubscriptionStatusNone})
	require.NoError(t, err)
	assert.Equal(t, "Ann Marie", got.Name)
	assert.Equal(t, []string{"p1"}, got.PurchasedProductIDs)
	assert.Equal(t, entities.SubscriptionStatusActive, got.SubscriptionStatus)
}

func TestIdentityRepository_ConcurrentProductGrants(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().Identities()
	_, err := repo.Create(ctx, entities.Identity{ID: "u-1"})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for n := 0; n < 20; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			_, _ = repo.GrantProducts(ctx, "u-1", []string{fmt.Sprintf("p%d", n)})
		}(n)
	}
	wg.Wait()

	got, err := repo.GetByID(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, got.PurchasedProductIDs, 20)
}

func TestPaymentRequestRepository_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().PaymentRequests()
	_, err := repo.Create(ctx, entities.PaymentRequest{ID: "r-1", UserID: "u-1", Status: entities.SubscriptionStatusPending})
	require.NoError(t, err)

	updated, err := repo.UpdateStatus(ctx, "r-1", entities.SubscriptionStatusPending, entities.SubscriptionStatusApproved)
	require.NoError(t, err)
	assert.Equal(t, entities.SubscriptionStatusApproved, updated.Status)

	_, err = repo.UpdateStatus(ctx, "r-1", entities.SubscriptionStatusPending, entities.SubscriptionStatusRejected)
	assert.ErrorIs(t, err, interfaces.ErrStatusConflict)

	missing, err := repo.UpdateStatus(ctx, "r-9", entities.SubscriptionStatusPending, entities.SubscriptionStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, "", missing.ID)

	mine, err := repo.ListByUserID(ctx, "u-1")
	require.NoError(t, err)
	assert.Len(t, mine, 1)
}

func TestPaymentRequestRepository_ReadsAreCopies(t *testing.T) {
	ctx := context.Background()
	repo := NewStore().PaymentRequests()
	_, err := repo.Create(ctx, entities.PaymentRequest{ID: "r-1", Items: []entities.OrderItem{{ProductID: "p1", Quantity: 1}}})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, "r-1")
	require.NoError(t, err)
	got.Items[0].ProductID = "changed"

	again, err := repo.GetByID(ctx, "r-1")
	require.NoError(t, err)
	assert.Equal(t, "p1", again.Items[0].ProductID)
}

func TestProductAndLessonPlanRepositories(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	_, err := store.Products().Create(ctx, entities.Product{ID: "p1", Title: "Kit"})
	require.NoError(t, err)
	deleted, err := store.Products().Delete(ctx, "p1")
	require.NoError(t, err)
	assert.True(t, deleted)
	deleted, err = store.Products().Delete(ctx, "p1")
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = store.LessonPlans().Create(ctx, entities.LessonPlan{ID: "lp-1", UserID: "u-1"})
	require.NoError(t, err)
	_, err = store.LessonPlans().Create(ctx, entities.LessonPlan{ID: "lp-2", UserID: "u-2"})
	require.NoError(t, err)
	plans, err := store.LessonPlans().ListByUserID(ctx, "u-1")
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, "lp-1", plans[0].ID)
}
