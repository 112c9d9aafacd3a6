package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
)

// In-memory repository fakes mirroring the Firestore implementations'
// semantics, including the conditional composite-id inserts.

type fakeSwipeRepo struct {
	mu     sync.Mutex
	swipes map[string]*entity.Swipe
}

func newFakeSwipeRepo() *fakeSwipeRepo {
	return &fakeSwipeRepo{swipes: map[string]*entity.Swipe{}}
}

func (r *fakeSwipeRepo) Create(ctx context.Context, swipe *entity.Swipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := fmt.Sprintf("%s_%s", swipe.UserID, swipe.ProductID)
	if _, exists := r.swipes[id]; exists {
		return errors.Conflict("Product already swiped")
	}

	swipe.ID = id
	if swipe.CreatedAt.IsZero() {
		swipe.CreatedAt = time.Now()
	}
	copied := *swipe
	r.swipes[id] = &copied
	return nil
}

func (r *fakeSwipeRepo) ListByUser(ctx context.Context, userID string, filter repository.SwipeFilter, limit, offset int) ([]*entity.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Swipe
	for _, swipe := range r.swipes {
		if swipe.UserID != userID {
			continue
		}
		if filter.Action != "" && swipe.Action != filter.Action {
			continue
		}
		if filter.CategorySlug != "" && swipe.CategorySlug != filter.CategorySlug {
			continue
		}
		if filter.StoreSlug != "" && swipe.StoreSlug != filter.StoreSlug {
			continue
		}
		matched = append(matched, swipe)
	}

	sortSwipesNewestFirst(matched)
	return paginate(matched, limit, offset), nil
}

func (r *fakeSwipeRepo) ListByUserSince(ctx context.Context, userID string, since time.Time) ([]*entity.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Swipe
	for _, swipe := range r.swipes {
		if swipe.UserID == userID && !swipe.CreatedAt.Before(since) {
			matched = append(matched, swipe)
		}
	}
	sortSwipesNewestFirst(matched)
	return matched, nil
}

func (r *fakeSwipeRepo) ListRecentLikes(ctx context.Context, userID string, limit int) ([]*entity.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Swipe
	for _, swipe := range r.swipes {
		if swipe.UserID == userID && swipe.Action == entity.SwipeActionLike {
			matched = append(matched, swipe)
		}
	}
	sortSwipesNewestFirst(matched)
	return paginate(matched, limit, 0), nil
}

func sortSwipesNewestFirst(swipes []*entity.Swipe) {
	sort.SliceStable(swipes, func(i, j int) bool {
		return swipes[i].CreatedAt.After(swipes[j].CreatedAt)
	})
}

type fakeProductRepo struct {
	mu       sync.Mutex
	products map[string]*entity.Product
	nextID   int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) add(product *entity.Product) *entity.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product.ID == "" {
		r.nextID++
		product.ID = fmt.Sprintf("product-%03d", r.nextID)
	}
	copied := *product
	r.products[product.ID] = &copied
	return product
}

func (r *fakeProductRepo) Create(ctx context.Context, product *entity.Product) error {
	r.add(product)
	return nil
}

func (r *fakeProductRepo) GetByID(ctx context.Context, id string) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, errors.NotFound("Product", nil)
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) GetMany(ctx context.Context, ids []string) (map[string]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := map[string]*entity.Product{}
	for _, id := range ids {
		if product, ok := r.products[id]; ok {
			copied := *product
			found[id] = &copied
		}
	}
	return found, nil
}

func (r *fakeProductRepo) List(ctx context.Context, filter repository.ProductFilter, limit, offset int) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Product
	for _, product := range r.products {
		if filter.Status != "" && product.Status != filter.Status {
			continue
		}
		if filter.CategorySlug != "" && product.CategorySlug != filter.CategorySlug {
			continue
		}
		if filter.StoreSlug != "" && product.StoreSlug != filter.StoreSlug {
			continue
		}
		if filter.StoreID != "" && product.StoreID != filter.StoreID {
			continue
		}
		copied := *product
		matched = append(matched, &copied)
	}

	sortProductsNewestFirst(matched)
	return paginate(matched, limit, offset), nil
}

func (r *fakeProductRepo) ListPending(ctx context.Context, limit, offset int) ([]*entity.Product, error) {
	pending, err := r.List(ctx, repository.ProductFilter{Status: entity.ProductStatusPending}, 0, 0)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].CreatedAt.Before(pending[j].CreatedAt)
	})
	return paginate(pending, limit, offset), nil
}

func (r *fakeProductRepo) ListByStoreSince(ctx context.Context, storeID string, since time.Time, limit int) ([]*entity.Product, error) {
	all, err := r.List(ctx, repository.ProductFilter{StoreID: storeID}, 0, 0)
	if err != nil {
		return nil, err
	}
	var matched []*entity.Product
	for _, product := range all {
		if !product.CreatedAt.Before(since) {
			matched = append(matched, product)
		}
	}
	return paginate(matched, limit, 0), nil
}

func (r *fakeProductRepo) ListByStoreIDs(ctx context.Context, storeIDs []string, limit int) ([]*entity.Product, error) {
	wanted := map[string]bool{}
	for _, id := range storeIDs {
		wanted[id] = true
	}

	all, err := r.List(ctx, repository.ProductFilter{Status: entity.ProductStatusActive}, 0, 0)
	if err != nil {
		return nil, err
	}
	var matched []*entity.Product
	for _, product := range all {
		if wanted[product.StoreID] {
			matched = append(matched, product)
		}
	}
	return paginate(matched, limit, 0), nil
}

func (r *fakeProductRepo) CountByStore(ctx context.Context, storeID string) (int, int, error) {
	all, err := r.List(ctx, repository.ProductFilter{StoreID: storeID}, 0, 0)
	if err != nil {
		return 0, 0, err
	}
	active := 0
	for _, product := range all {
		if product.Status == entity.ProductStatusActive {
			active++
		}
	}
	return len(all), active, nil
}

func (r *fakeProductRepo) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.products[product.ID]; !ok {
		return errors.NotFound("Product", nil)
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	for path, value := range fields {
		switch path {
		case "status":
			product.Status = value.(string)
		case "isApproved":
			product.IsApproved = value.(bool)
		case "rejectionReason":
			product.RejectionReason = value.(string)
		}
	}
	return nil
}

func (r *fakeProductRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.products, id)
	return nil
}

func (r *fakeProductRepo) IncrementViews(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if product, ok := r.products[id]; ok {
		product.TotalViews++
	}
	return nil
}

func (r *fakeProductRepo) ApplySwipe(ctx context.Context, id string, action string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return errors.NotFound("Product", nil)
	}
	if action == entity.SwipeActionLike {
		product.TotalLikes++
	} else {
		product.TotalDislikes++
	}
	return nil
}

func (r *fakeProductRepo) HasActiveInCategory(ctx context.Context, storeID, categorySlug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, product := range r.products {
		if product.StoreID == storeID && product.CategorySlug == categorySlug && product.Status == entity.ProductStatusActive {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeProductRepo) AnyInCategory(ctx context.Context, categorySlug string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, product := range r.products {
		if product.CategorySlug == categorySlug {
			return true, nil
		}
	}
	return false, nil
}

type fakeStoreRepo struct {
	mu     sync.Mutex
	stores map[string]*entity.Store
	nextID int
}

func newFakeStoreRepo() *fakeStoreRepo {
	return &fakeStoreRepo{stores: map[string]*entity.Store{}}
}

func (r *fakeStoreRepo) add(store *entity.Store) *entity.Store {
	r.mu.Lock()
	defer r.mu.Unlock()

	if store.ID == "" {
		r.nextID++
		store.ID = fmt.Sprintf("store-%03d", r.nextID)
	}
	copied := *store
	r.stores[store.ID] = &copied
	return store
}

func (r *fakeStoreRepo) Create(ctx context.Context, store *entity.Store) error {
	r.add(store)
	return nil
}

func (r *fakeStoreRepo) GetByID(ctx context.Context, id string) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[id]
	if !ok {
		return nil, errors.NotFound("Store", nil)
	}
	copied := *store
	return &copied, nil
}

func (r *fakeStoreRepo) GetBySlug(ctx context.Context, slug string) (*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, store := range r.stores {
		if store.Slug == slug {
			copied := *store
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Store", nil)
}

func (r *fakeStoreRepo) GetBySlugOrID(ctx context.Context, identifier string) (*entity.Store, error) {
	if store, err := r.GetByID(ctx, identifier); err == nil {
		return store, nil
	}
	return r.GetBySlug(ctx, identifier)
}

func (r *fakeStoreRepo) List(ctx context.Context, verifiedOnly bool, limit, offset int) ([]*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Store
	for _, store := range r.stores {
		if store.IsBlocked {
			continue
		}
		if verifiedOnly && !store.IsVerified {
			continue
		}
		copied := *store
		matched = append(matched, &copied)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Slug < matched[j].Slug
	})
	return paginate(matched, limit, offset), nil
}

func (r *fakeStoreRepo) ListByFollowers(ctx context.Context, limit int) ([]*entity.Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Store
	for _, store := range r.stores {
		if !store.IsVerified {
			continue
		}
		copied := *store
		matched = append(matched, &copied)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].TotalFollowers != matched[j].TotalFollowers {
			return matched[i].TotalFollowers > matched[j].TotalFollowers
		}
		return matched[i].Slug < matched[j].Slug
	})
	return paginate(matched, limit, 0), nil
}

func (r *fakeStoreRepo) Update(ctx context.Context, store *entity.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.stores[store.ID]; !ok {
		return errors.NotFound("Store", nil)
	}
	copied := *store
	r.stores[store.ID] = &copied
	return nil
}

func (r *fakeStoreRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[id]
	if !ok {
		return errors.NotFound("Store", nil)
	}
	for path, value := range fields {
		switch path {
		case "name":
			store.Name = value.(string)
		case "description":
			store.Description = value.(string)
		case "location":
			store.Location = value.(string)
		case "logoImage":
			store.LogoImage = value.(string)
		case "isVerified":
			store.IsVerified = value.(bool)
		}
	}
	return nil
}

func (r *fakeStoreRepo) IncrementFollowers(ctx context.Context, id string, delta int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	store, ok := r.stores[id]
	if !ok {
		return errors.NotFound("Store", nil)
	}
	store.TotalFollowers += delta
	return nil
}

type fakeCategoryRepo struct {
	mu         sync.Mutex
	categories map[string]*entity.Category
	nextID     int
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: map[string]*entity.Category{}}
}

func (r *fakeCategoryRepo) add(category *entity.Category) *entity.Category {
	r.mu.Lock()
	defer r.mu.Unlock()

	if category.ID == "" {
		r.nextID++
		category.ID = fmt.Sprintf("category-%03d", r.nextID)
	}
	copied := *category
	r.categories[category.ID] = &copied
	return category
}

func (r *fakeCategoryRepo) Create(ctx context.Context, category *entity.Category) error {
	r.add(category)
	return nil
}

func (r *fakeCategoryRepo) GetByID(ctx context.Context, id string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, errors.NotFound("Category", nil)
	}
	copied := *category
	return &copied, nil
}

func (r *fakeCategoryRepo) GetBySlug(ctx context.Context, slug string) (*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, category := range r.categories {
		if category.Slug == slug {
			copied := *category
			return &copied, nil
		}
	}
	return nil, errors.NotFound("Category", nil)
}

func (r *fakeCategoryRepo) GetBySlugOrID(ctx context.Context, identifier string) (*entity.Category, error) {
	if category, err := r.GetByID(ctx, identifier); err == nil {
		return category, nil
	}
	return r.GetBySlug(ctx, identifier)
}

func (r *fakeCategoryRepo) List(ctx context.Context, activeOnly bool) ([]*entity.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.Category
	for _, category := range r.categories {
		if activeOnly && !category.IsActive {
			continue
		}
		copied := *category
		matched = append(matched, &copied)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Name < matched[j].Name
	})
	return matched, nil
}

func (r *fakeCategoryRepo) Update(ctx context.Context, category *entity.Category) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.categories[category.ID]; !ok {
		return errors.NotFound("Category", nil)
	}
	copied := *category
	r.categories[category.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.categories, id)
	return nil
}

type fakeFollowRepo struct {
	mu      sync.Mutex
	follows map[string]*entity.UserFollow
}

func newFakeFollowRepo() *fakeFollowRepo {
	return &fakeFollowRepo{follows: map[string]*entity.UserFollow{}}
}

func (r *fakeFollowRepo) Create(ctx context.Context, follow *entity.UserFollow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := fmt.Sprintf("%s_%s", follow.UserID, follow.StoreID)
	if _, exists := r.follows[id]; exists {
		return errors.Conflict("Already following this store")
	}

	follow.ID = id
	if follow.CreatedAt.IsZero() {
		follow.CreatedAt = time.Now()
	}
	copied := *follow
	r.follows[id] = &copied
	return nil
}

func (r *fakeFollowRepo) Get(ctx context.Context, userID, storeID string) (*entity.UserFollow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	follow, ok := r.follows[fmt.Sprintf("%s_%s", userID, storeID)]
	if !ok {
		return nil, errors.NotFound("Follow", nil)
	}
	copied := *follow
	return &copied, nil
}

func (r *fakeFollowRepo) Delete(ctx context.Context, userID, storeID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := fmt.Sprintf("%s_%s", userID, storeID)
	if _, ok := r.follows[id]; !ok {
		return errors.NotFound("Follow", nil)
	}
	delete(r.follows, id)
	return nil
}

func (r *fakeFollowRepo) ListByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.UserFollow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.UserFollow
	for _, follow := range r.follows {
		if follow.UserID == userID {
			copied := *follow
			matched = append(matched, &copied)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, limit, offset), nil
}

func (r *fakeFollowRepo) ListStoreIDsByUser(ctx context.Context, userID string) ([]string, error) {
	follows, err := r.ListByUser(ctx, userID, 0, 0)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(follows))
	for _, follow := range follows {
		ids = append(ids, follow.StoreID)
	}
	return ids, nil
}

func (r *fakeFollowRepo) ListByStore(ctx context.Context, storeID string, limit, offset int) ([]*entity.UserFollow, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.UserFollow
	for _, follow := range r.follows {
		if follow.StoreID == storeID {
			copied := *follow
			matched = append(matched, &copied)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CreatedAt.After(matched[j].CreatedAt)
	})
	return paginate(matched, limit, offset), nil
}

func (r *fakeFollowRepo) CountByStore(ctx context.Context, storeID string) (int, error) {
	follows, err := r.ListByStore(ctx, storeID, 0, 0)
	if err != nil {
		return 0, err
	}
	return len(follows), nil
}

func (r *fakeFollowRepo) ListByStoreSince(ctx context.Context, storeID string, since time.Time) ([]*entity.UserFollow, error) {
	follows, err := r.ListByStore(ctx, storeID, 0, 0)
	if err != nil {
		return nil, err
	}
	var matched []*entity.UserFollow
	for _, follow := range follows {
		if !follow.CreatedAt.Before(since) {
			matched = append(matched, follow)
		}
	}
	return matched, nil
}

type fakeSearchHistoryRepo struct {
	mu      sync.Mutex
	entries map[string]*entity.SearchHistoryEntry
	nextID  int
}

func newFakeSearchHistoryRepo() *fakeSearchHistoryRepo {
	return &fakeSearchHistoryRepo{entries: map[string]*entity.SearchHistoryEntry{}}
}

func (r *fakeSearchHistoryRepo) Create(ctx context.Context, entry *entity.SearchHistoryEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if entry.ID == "" {
		r.nextID++
		entry.ID = fmt.Sprintf("history-%03d", r.nextID)
	}
	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = time.Now()
	}
	copied := *entry
	r.entries[entry.ID] = &copied
	return nil
}

func (r *fakeSearchHistoryRepo) GetByID(ctx context.Context, id string) (*entity.SearchHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entry, ok := r.entries[id]
	if !ok {
		return nil, errors.NotFound("Search history item", nil)
	}
	copied := *entry
	return &copied, nil
}

func (r *fakeSearchHistoryRepo) ListByUser(ctx context.Context, userID string, limit int) ([]*entity.SearchHistoryEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matched []*entity.SearchHistoryEntry
	for _, entry := range r.entries {
		if entry.UserID == userID {
			copied := *entry
			matched = append(matched, &copied)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if !matched[i].CreatedAt.Equal(matched[j].CreatedAt) {
			return matched[i].CreatedAt.After(matched[j].CreatedAt)
		}
		return matched[i].ID > matched[j].ID
	})
	return paginate(matched, limit, 0), nil
}

func (r *fakeSearchHistoryRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.entries, id)
	return nil
}

func (r *fakeSearchHistoryRepo) DeleteAllByUser(ctx context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	deleted := 0
	for id, entry := range r.entries {
		if entry.UserID == userID {
			delete(r.entries, id)
			deleted++
		}
	}
	return deleted, nil
}

type fakeUserRepo struct {
	mu     sync.Mutex
	users  map[string]*entity.User
	nextID int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) add(user *entity.User) *entity.User {
	r.mu.Lock()
	defer r.mu.Unlock()

	if user.ID == "" {
		r.nextID++
		user.ID = fmt.Sprintf("user-%03d", r.nextID)
	}
	copied := *user
	r.users[user.ID] = &copied
	return user
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.add(user)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, errors.NotFound("User", nil)
	}
	copied := *user
	return &copied, nil
}

func (r *fakeUserRepo) GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.PhoneNumber == phoneNumber {
			copied := *user
			return &copied, nil
		}
	}
	return nil, errors.NotFound("User", nil)
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; !ok {
		return errors.NotFound("User", nil)
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *fakeUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	for path, value := range fields {
		switch path {
		case "name":
			user.Name = value.(string)
		case "email":
			user.Email = value.(string)
		case "password":
			user.Password = value.(string)
		case "resetCode":
			user.ResetCode = value.(string)
		case "resetCodeExpiry":
			if expiry, ok := value.(time.Time); ok {
				user.ResetCodeExpiry = &expiry
			} else {
				user.ResetCodeExpiry = nil
			}
		case "needsPasswordReset":
			user.NeedsPasswordReset = value.(bool)
		}
	}
	return nil
}

func (r *fakeUserRepo) SetPreferences(ctx context.Context, id string, prefs *entity.UserPreferences) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	copied := *prefs
	user.Preferences = &copied
	return nil
}

func (r *fakeUserRepo) TouchLastActive(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return errors.NotFound("User", nil)
	}
	user.LastActiveAt = time.Now()
	return nil
}

func paginate[T any](items []T, limit, offset int) []T {
	if offset > 0 {
		if offset >= len(items) {
			return nil
		}
		items = items[offset:]
	}
	if limit > 0 && len(items) > limit {
		items = items[:limit]
	}
	return items
}

func activeProduct(id, storeID, storeSlug, categorySlug string, price float64, createdAt time.Time) *entity.Product {
	return &entity.Product{
		ID:           id,
		Name:         strings.ReplaceAll(id, "-", " "),
		Status:       entity.ProductStatusActive,
		Price:        price,
		StoreID:      storeID,
		StoreSlug:    storeSlug,
		CategorySlug: categorySlug,
		CreatedAt:    createdAt,
	}
}
