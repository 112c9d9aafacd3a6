package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/pkg/errors"
)

type StoreUseCase struct {
	storeRepo   repository.StoreRepository
	userRepo    repository.UserRepository
	productRepo repository.ProductRepository
	followRepo  repository.FollowRepository
}

func NewStoreUseCase(
	storeRepo repository.StoreRepository,
	userRepo repository.UserRepository,
	productRepo repository.ProductRepository,
	followRepo repository.FollowRepository,
) *StoreUseCase {
	return &StoreUseCase{
		storeRepo:   storeRepo,
		userRepo:    userRepo,
		productRepo: productRepo,
		followRepo:  followRepo,
	}
}

type OwnerDetails struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,e164"`
}

type CreateStoreInput struct {
	Name           string        `json:"name" validate:"required,min=2,max=100"`
	Slug           string        `json:"slug" validate:"required,min=2,max=60"`
	Description    string        `json:"description" validate:"required"`
	Location       string        `json:"location"`
	LogoImage      string        `json:"logoImage" validate:"omitempty,url"`
	WhatsappNumber string        `json:"whatsappNumber"`
	InstagramPage  string        `json:"instagramPage"`
	Website        string        `json:"website" validate:"omitempty,url"`
	OwnerID        string        `json:"ownerId"`
	OwnerDetails   *OwnerDetails `json:"ownerDetails"`
}

// CreateStore registers a store on behalf of an owner. The owner is either
// an existing user (by id) or a new account created with a temporary
// password that must be reset on first login.
func (u *StoreUseCase) CreateStore(ctx context.Context, input CreateStoreInput) (*entity.Store, error) {
	slug := strings.ToLower(strings.TrimSpace(input.Slug))

	if _, err := u.storeRepo.GetBySlug(ctx, slug); err == nil {
		return nil, errors.Conflict("Store slug is already in use")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	ownerID, err := u.resolveOwner(ctx, input)
	if err != nil {
		return nil, err
	}

	store := &entity.Store{
		Name:           input.Name,
		Slug:           slug,
		Description:    input.Description,
		Location:       input.Location,
		LogoImage:      input.LogoImage,
		WhatsappNumber: input.WhatsappNumber,
		InstagramPage:  input.InstagramPage,
		Website:        input.Website,
		OwnerID:        ownerID,
	}

	if err := u.storeRepo.Create(ctx, store); err != nil {
		return nil, err
	}

	return store, nil
}

func (u *StoreUseCase) resolveOwner(ctx context.Context, input CreateStoreInput) (string, error) {
	if input.OwnerID != "" {
		owner, err := u.userRepo.GetByID(ctx, input.OwnerID)
		if err != nil {
			return "", err
		}
		return owner.ID, nil
	}

	if input.OwnerDetails == nil {
		return "", errors.BadRequest("Either ownerId or ownerDetails is required", nil)
	}

	if _, err := u.userRepo.GetByPhoneNumber(ctx, input.OwnerDetails.PhoneNumber); err == nil {
		return "", errors.Conflict("Owner phone number is already registered")
	} else if !errors.Is(err, "NOT_FOUND") {
		return "", err
	}

	tempPassword, err := GenerateTempPassword()
	if err != nil {
		return "", errors.Internal("Failed to generate temporary password", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcryptCost)
	if err != nil {
		return "", errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	owner := &entity.User{
		Name:               input.OwnerDetails.Name,
		PhoneNumber:        input.OwnerDetails.PhoneNumber,
		Password:           string(hashed),
		Role:               "store_owner",
		IsActive:           true,
		NeedsPasswordReset: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := u.userRepo.Create(ctx, owner); err != nil {
		return "", err
	}

	return owner.ID, nil
}

type StoreListParams struct {
	VerifiedOnly bool
	Search       string
	Limit        int
	Offset       int
}

func (u *StoreUseCase) ListStores(ctx context.Context, params StoreListParams) ([]*entity.Store, error) {
	// Text search is matched in memory, so fetch a wider window first.
	limit := params.Limit
	offset := params.Offset
	if params.Search != "" {
		limit = searchFetchSize
		offset = 0
	}

	stores, err := u.storeRepo.List(ctx, params.VerifiedOnly, limit, offset)
	if err != nil {
		return nil, err
	}

	if params.Search == "" {
		return u.publicStores(stores), nil
	}

	query := strings.ToLower(strings.TrimSpace(params.Search))
	matched := []*entity.Store{}
	for _, store := range stores {
		if containsFold(query, store.Name, store.Slug, store.Description, store.Location) {
			matched = append(matched, store)
		}
		if params.Limit > 0 && len(matched) == params.Limit {
			break
		}
	}

	return u.publicStores(matched), nil
}

// GetStore resolves a store by slug or id for public consumption. Blocked
// stores are indistinguishable from missing ones.
func (u *StoreUseCase) GetStore(ctx context.Context, identifier string) (*entity.Store, error) {
	store, err := u.storeRepo.GetBySlugOrID(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if store.IsBlocked {
		return nil, errors.NotFound("Store", nil)
	}

	return publicStore(store), nil
}

type UpdateStoreInput struct {
	Name           string `json:"name" validate:"omitempty,min=2,max=100"`
	Description    string `json:"description"`
	Location       string `json:"location"`
	LogoImage      string `json:"logoImage" validate:"omitempty,url"`
	WhatsappNumber string `json:"whatsappNumber"`
	InstagramPage  string `json:"instagramPage"`
	Website        string `json:"website" validate:"omitempty,url"`
}

func (u *StoreUseCase) UpdateStore(ctx context.Context, identifier, userID, role string, input UpdateStoreInput) (*entity.Store, error) {
	store, err := u.authorizeOwner(ctx, identifier, userID, role)
	if err != nil {
		return nil, err
	}

	fields := map[string]interface{}{}
	if input.Name != "" {
		fields["name"] = input.Name
	}
	if input.Description != "" {
		fields["description"] = input.Description
	}
	if input.Location != "" {
		fields["location"] = input.Location
	}
	if input.LogoImage != "" {
		fields["logoImage"] = input.LogoImage
	}
	if input.WhatsappNumber != "" {
		fields["whatsappNumber"] = input.WhatsappNumber
	}
	if input.InstagramPage != "" {
		fields["instagramPage"] = input.InstagramPage
	}
	if input.Website != "" {
		fields["website"] = input.Website
	}

	if len(fields) > 0 {
		if err := u.storeRepo.UpdateFields(ctx, store.ID, fields); err != nil {
			return nil, err
		}
	}

	return u.storeRepo.GetByID(ctx, store.ID)
}

func (u *StoreUseCase) SetVerified(ctx context.Context, identifier string, verified bool) (*entity.Store, error) {
	store, err := u.storeRepo.GetBySlugOrID(ctx, identifier)
	if err != nil {
		return nil, err
	}

	err = u.storeRepo.UpdateFields(ctx, store.ID, map[string]interface{}{
		"isVerified": verified,
	})
	if err != nil {
		return nil, err
	}

	return u.storeRepo.GetByID(ctx, store.ID)
}

type StoreAnalytics struct {
	StoreID         string `json:"store_id"`
	TotalProducts   int    `json:"total_products"`
	ActiveProducts  int    `json:"active_products"`
	TotalFollowers  int    `json:"total_followers"`
	TotalClicks     int    `json:"total_clicks"`
	RecentFollowers int    `json:"recent_followers"`
}

func (u *StoreUseCase) Analytics(ctx context.Context, identifier, userID, role string) (*StoreAnalytics, error) {
	store, err := u.authorizeOwner(ctx, identifier, userID, role)
	if err != nil {
		return nil, err
	}

	total, active, err := u.productRepo.CountByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	recentFollows, err := u.followRepo.ListByStoreSince(ctx, store.ID, time.Now().Add(-7*24*time.Hour))
	if err != nil {
		return nil, err
	}

	return &StoreAnalytics{
		StoreID:         store.ID,
		TotalProducts:   total,
		ActiveProducts:  active,
		TotalFollowers:  store.TotalFollowers,
		TotalClicks:     store.TotalClicks,
		RecentFollowers: len(recentFollows),
	}, nil
}

type StoreDashboard struct {
	Store          *entity.Store     `json:"store"`
	TotalProducts  int               `json:"total_products"`
	ActiveProducts int               `json:"active_products"`
	RecentProducts []*entity.Product `json:"recent_products"`
}

func (u *StoreUseCase) Dashboard(ctx context.Context, identifier, userID, role string) (*StoreDashboard, error) {
	store, err := u.authorizeOwner(ctx, identifier, userID, role)
	if err != nil {
		return nil, err
	}

	total, active, err := u.productRepo.CountByStore(ctx, store.ID)
	if err != nil {
		return nil, err
	}

	recent, err := u.productRepo.ListByStoreSince(ctx, store.ID, time.Now().Add(-30*24*time.Hour), 10)
	if err != nil {
		return nil, err
	}

	return &StoreDashboard{
		Store:          store,
		TotalProducts:  total,
		ActiveProducts: active,
		RecentProducts: recent,
	}, nil
}

func (u *StoreUseCase) ListFollowers(ctx context.Context, identifier, userID, role string, limit, offset int) ([]*entity.UserFollow, error) {
	store, err := u.authorizeOwner(ctx, identifier, userID, role)
	if err != nil {
		return nil, err
	}

	return u.followRepo.ListByStore(ctx, store.ID, limit, offset)
}

type FollowerAnalytics struct {
	Period         string         `json:"period"`
	TotalFollowers int            `json:"total_followers"`
	Gained         int            `json:"gained"`
	DailyGrowth    map[string]int `json:"daily_growth"`
}

var followerAnalyticsPeriods = map[string]time.Duration{
	"7d":  7 * 24 * time.Hour,
	"30d": 30 * 24 * time.Hour,
	"90d": 90 * 24 * time.Hour,
}

func (u *StoreUseCase) FollowerAnalytics(ctx context.Context, identifier, userID, role, period string) (*FollowerAnalytics, error) {
	window, ok := followerAnalyticsPeriods[period]
	if !ok {
		return nil, errors.BadRequest("Period must be one of: 7d, 30d, 90d", nil)
	}

	store, err := u.authorizeOwner(ctx, identifier, userID, role)
	if err != nil {
		return nil, err
	}

	follows, err := u.followRepo.ListByStoreSince(ctx, store.ID, time.Now().Add(-window))
	if err != nil {
		return nil, err
	}

	daily := map[string]int{}
	for _, follow := range follows {
		daily[follow.CreatedAt.Format("2006-01-02")]++
	}

	return &FollowerAnalytics{
		Period:         period,
		TotalFollowers: store.TotalFollowers,
		Gained:         len(follows),
		DailyGrowth:    daily,
	}, nil
}

func (u *StoreUseCase) authorizeOwner(ctx context.Context, identifier, userID, role string) (*entity.Store, error) {
	store, err := u.storeRepo.GetBySlugOrID(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if role != "admin" && store.OwnerID != userID {
		return nil, errors.Forbidden("You do not manage this store", nil)
	}

	return store, nil
}

// publicStore strips fields the public surface must not expose.
func publicStore(store *entity.Store) *entity.Store {
	scrubbed := *store
	scrubbed.OwnerID = ""
	return &scrubbed
}

func (u *StoreUseCase) publicStores(stores []*entity.Store) []*entity.Store {
	scrubbed := make([]*entity.Store, 0, len(stores))
	for _, store := range stores {
		scrubbed = append(scrubbed, publicStore(store))
	}
	return scrubbed
}
