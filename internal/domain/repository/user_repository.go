package repository

import (
	"context"

	"swipemall/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByPhoneNumber(ctx context.Context, phoneNumber string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	SetPreferences(ctx context.Context, id string, prefs *entity.UserPreferences) error
	TouchLastActive(ctx context.Context, id string) error
}
