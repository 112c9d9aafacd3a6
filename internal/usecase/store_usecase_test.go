package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swipemall/internal/domain/entity"
	"swipemall/pkg/errors"
)

func newStoreFixture() (*StoreUseCase, *fakeStoreRepo, *fakeUserRepo, *fakeProductRepo, *fakeFollowRepo) {
	storeRepo := newFakeStoreRepo()
	userRepo := newFakeUserRepo()
	productRepo := newFakeProductRepo()
	followRepo := newFakeFollowRepo()
	uc := NewStoreUseCase(storeRepo, userRepo, productRepo, followRepo)
	return uc, storeRepo, userRepo, productRepo, followRepo
}

func validStoreInput() CreateStoreInput {
	return CreateStoreInput{
		Name:        "Alpha",
		Slug:        "alpha",
		Description: "Streetwear and sneakers",
		OwnerID:     "owner-1",
	}
}

func TestCreateStoreWithExistingOwner(t *testing.T) {
	uc, _, userRepo, _, _ := newStoreFixture()
	userRepo.add(&entity.User{ID: "owner-1", Name: "Dana", Role: "store_owner"})

	store, err := uc.CreateStore(context.Background(), validStoreInput())
	require.NoError(t, err)

	assert.Equal(t, "alpha", store.Slug)
	assert.Equal(t, "owner-1", store.OwnerID)
}

func TestCreateStoreNormalizesSlug(t *testing.T) {
	uc, _, userRepo, _, _ := newStoreFixture()
	userRepo.add(&entity.User{ID: "owner-1"})

	input := validStoreInput()
	input.Slug = "  ALPHA "
	store, err := uc.CreateStore(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "alpha", store.Slug)
}

func TestCreateStoreDuplicateSlugConflicts(t *testing.T) {
	uc, storeRepo, userRepo, _, _ := newStoreFixture()
	userRepo.add(&entity.User{ID: "owner-1"})
	storeRepo.add(&entity.Store{ID: "store-1", Slug: "alpha", Name: "Alpha"})

	_, err := uc.CreateStore(context.Background(), validStoreInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestCreateStoreWithInlineOwnerDetails(t *testing.T) {
	uc, _, userRepo, _, _ := newStoreFixture()

	input := validStoreInput()
	input.OwnerID = ""
	input.OwnerDetails = &OwnerDetails{Name: "Dana", PhoneNumber: "+15551230001"}

	store, err := uc.CreateStore(context.Background(), input)
	require.NoError(t, err)
	require.NotEmpty(t, store.OwnerID)

	owner, err := userRepo.GetByID(context.Background(), store.OwnerID)
	require.NoError(t, err)
	assert.Equal(t, "store_owner", owner.Role)
	assert.True(t, owner.NeedsPasswordReset)
	assert.NotEmpty(t, owner.Password)
}

func TestCreateStoreInlineOwnerDuplicatePhone(t *testing.T) {
	uc, _, userRepo, _, _ := newStoreFixture()
	userRepo.add(&entity.User{ID: "user-1", PhoneNumber: "+15551230001"})

	input := validStoreInput()
	input.OwnerID = ""
	input.OwnerDetails = &OwnerDetails{Name: "Dana", PhoneNumber: "+15551230001"}

	_, err := uc.CreateStore(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestCreateStoreWithoutAnyOwner(t *testing.T) {
	uc, _, _, _, _ := newStoreFixture()

	input := validStoreInput()
	input.OwnerID = ""

	_, err := uc.CreateStore(context.Background(), input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestGetStoreBlockedLooksAbsentAndOwnerStripped(t *testing.T) {
	uc, storeRepo, _, _, _ := newStoreFixture()
	storeRepo.add(&entity.Store{ID: "store-1", Slug: "alpha", Name: "Alpha", OwnerID: "owner-1"})
	storeRepo.add(&entity.Store{ID: "store-2", Slug: "beta", Name: "Beta", IsBlocked: true})

	store, err := uc.GetStore(context.Background(), "alpha")
	require.NoError(t, err)
	assert.Empty(t, store.OwnerID)

	_, err = uc.GetStore(context.Background(), "beta")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListStoresSearchMatchesSubstring(t *testing.T) {
	uc, storeRepo, _, _, _ := newStoreFixture()
	storeRepo.add(&entity.Store{ID: "store-1", Slug: "sneaker-hub", Name: "Sneaker Hub"})
	storeRepo.add(&entity.Store{ID: "store-2", Slug: "hat-house", Name: "Hat House"})

	stores, err := uc.ListStores(context.Background(), StoreListParams{Search: "sneaker"})
	require.NoError(t, err)

	require.Len(t, stores, 1)
	assert.Equal(t, "sneaker-hub", stores[0].Slug)
	assert.Empty(t, stores[0].OwnerID)
}

func TestUpdateStoreAuthorization(t *testing.T) {
	uc, storeRepo, _, _, _ := newStoreFixture()
	storeRepo.add(&entity.Store{ID: "store-1", Slug: "alpha", Name: "Alpha", OwnerID: "owner-1"})

	_, err := uc.UpdateStore(context.Background(), "alpha", "intruder", "user", UpdateStoreInput{
		Name: "Hijacked",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))

	updated, err := uc.UpdateStore(context.Background(), "alpha", "owner-1", "store_owner", UpdateStoreInput{
		Name: "Alpha Prime",
	})
	require.NoError(t, err)
	assert.Equal(t, "Alpha Prime", updated.Name)

	// Admins bypass the ownership check.
	updated, err = uc.UpdateStore(context.Background(), "alpha", "admin-1", "admin", UpdateStoreInput{
		Location: "Jakarta",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jakarta", updated.Location)
}

func TestSetVerifiedToggle(t *testing.T) {
	uc, storeRepo, _, _, _ := newStoreFixture()
	storeRepo.add(&entity.Store{ID: "store-1", Slug: "alpha", Name: "Alpha"})

	store, err := uc.SetVerified(context.Background(), "alpha", true)
	require.NoError(t, err)
	assert.True(t, store.IsVerified)

	store, err = uc.SetVerified(context.Background(), "alpha", false)
	require.NoError(t, err)
	assert.False(t, store.IsVerified)
}

func TestStoreAnalyticsCountsProductsAndRecentFollows(t *testing.T) {
	uc, storeRepo, _, productRepo, followRepo := newStoreFixture()
	storeRepo.add(&entity.Store{ID: "store-1", Slug: "alpha", Name: "Alpha", OwnerID: "owner-1", TotalFollowers: 2})

	now := time.Now()
	productRepo.add(activeProduct("p1", "store-1", "alpha", "shoes", 50, now))
	inactive := activeProduct("p2", "store-1", "alpha", "shoes", 50, now)
	inactive.Status = entity.ProductStatusInactive
	productRepo.add(inactive)

	require.NoError(t, followRepo.Create(context.Background(), &entity.UserFollow{
		UserID: "user-1", StoreID: "store-1", CreatedAt: now.Add(-time.Hour),
	}))
	require.NoError(t, followRepo.Create(context.Background(), &entity.UserFollow{
		UserID: "user-2", StoreID: "store-1", CreatedAt: now.Add(-14 * 24 * time.Hour),
	}))

	analytics, err := uc.Analytics(context.Background(), "alpha", "owner-1", "store_owner")
	require.NoError(t, err)

	assert.Equal(t, 2, analytics.TotalProducts)
	assert.Equal(t, 1, analytics.ActiveProducts)
	assert.Equal(t, 2, analytics.TotalFollowers)
	// Only the follow within the last 7 days counts as recent.
	assert.Equal(t, 1, analytics.RecentFollowers)
}

func TestFollowerAnalyticsDailyGrowth(t *testing.T) {
	uc, storeRepo, _, _, followRepo := newStoreFixture()
	storeRepo.add(&entity.Store{ID: "store-1", Slug: "alpha", Name: "Alpha", OwnerID: "owner-1", TotalFollowers: 3})

	now := time.Now()
	yesterday := now.Add(-24 * time.Hour)
	require.NoError(t, followRepo.Create(context.Background(), &entity.UserFollow{
		UserID: "user-1", StoreID: "store-1", CreatedAt: now,
	}))
	require.NoError(t, followRepo.Create(context.Background(), &entity.UserFollow{
		UserID: "user-2", StoreID: "store-1", CreatedAt: yesterday,
	}))
	require.NoError(t, followRepo.Create(context.Background(), &entity.UserFollow{
		UserID: "user-3", StoreID: "store-1", CreatedAt: yesterday,
	}))

	analytics, err := uc.FollowerAnalytics(context.Background(), "alpha", "owner-1", "store_owner", "7d")
	require.NoError(t, err)

	assert.Equal(t, "7d", analytics.Period)
	assert.Equal(t, 3, analytics.Gained)
	assert.Equal(t, 1, analytics.DailyGrowth[now.Format("2006-01-02")])
	assert.Equal(t, 2, analytics.DailyGrowth[yesterday.Format("2006-01-02")])

	_, err = uc.FollowerAnalytics(context.Background(), "alpha", "owner-1", "store_owner", "1y")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))
}

func TestFollowerAnalyticsForbiddenForStrangers(t *testing.T) {
	uc, storeRepo, _, _, _ := newStoreFixture()
	storeRepo.add(&entity.Store{ID: "store-1", Slug: "alpha", Name: "Alpha", OwnerID: "owner-1"})

	_, err := uc.FollowerAnalytics(context.Background(), "alpha", "intruder", "user", "7d")
	require.Error(t, err)
	assert.True(t, errors.Is(err, "FORBIDDEN"))
}
