package usecase

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"math/big"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"swipemall/internal/domain/entity"
	"swipemall/internal/domain/repository"
	"swipemall/internal/infrastructure/auth"
	"swipemall/pkg/errors"
	"swipemall/pkg/logger"
)

const (
	bcryptCost      = 12
	resetCodeExpiry = 10 * time.Minute
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	tokenManager *auth.TokenManager
}

func NewAuthUseCase(userRepo repository.UserRepository, tokenManager *auth.TokenManager) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		tokenManager: tokenManager,
	}
}

type RegisterInput struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	PhoneNumber string `json:"phoneNumber" validate:"required,e164"`
	Password    string `json:"password" validate:"required,min=8"`
	Email       string `json:"email" validate:"omitempty,email"`
}

type AuthResponse struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func (u *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResponse, error) {
	_, err := u.userRepo.GetByPhoneNumber(ctx, input.PhoneNumber)
	if err == nil {
		return nil, errors.Conflict("Phone number is already registered")
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		Name:         input.Name,
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
		Password:     string(hashed),
		Role:         "user",
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
		LastActiveAt: now,
	}

	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := u.tokenManager.GenerateUserToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, Token: token}, nil
}

type LoginInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Password    string `json:"password" validate:"required"`
}

func (u *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthResponse, error) {
	user, err := u.userRepo.GetByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("Invalid phone number or password", nil)
		}
		return nil, err
	}

	if user.IsBlocked {
		return nil, errors.Forbidden("This account has been blocked", nil)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, errors.Unauthorized("Invalid phone number or password", nil)
	}

	if err := u.userRepo.TouchLastActive(ctx, user.ID); err != nil {
		logger.Warn("Failed to touch last active for user %s: %v", user.ID, err)
	}

	token, err := u.tokenManager.GenerateUserToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &AuthResponse{User: user, Token: token}, nil
}

func (u *AuthUseCase) Logout(ctx context.Context, userID string) error {
	return u.userRepo.TouchLastActive(ctx, userID)
}

func (u *AuthUseCase) GetProfile(ctx context.Context, userID string) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

type UpdateProfileInput struct {
	Name         string `json:"name" validate:"omitempty,min=2,max=100"`
	Email        string `json:"email" validate:"omitempty,email"`
	ProfileImage string `json:"profileImage" validate:"omitempty,url"`
}

func (u *AuthUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, error) {
	fields := map[string]interface{}{}
	if input.Name != "" {
		fields["name"] = input.Name
	}
	if input.Email != "" {
		fields["email"] = input.Email
	}
	if input.ProfileImage != "" {
		fields["profileImage"] = input.ProfileImage
	}

	if len(fields) > 0 {
		if err := u.userRepo.UpdateFields(ctx, userID, fields); err != nil {
			return nil, err
		}
	}

	return u.userRepo.GetByID(ctx, userID)
}

// RequestPasswordReset issues a short-lived 6-digit code. Delivery (SMS) is
// out of band; the code is logged in development.
func (u *AuthUseCase) RequestPasswordReset(ctx context.Context, phoneNumber string) error {
	user, err := u.userRepo.GetByPhoneNumber(ctx, phoneNumber)
	if err != nil {
		// Do not reveal whether the phone number is registered.
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}

	code, err := generateResetCode()
	if err != nil {
		return errors.Internal("Failed to generate reset code", err)
	}

	expiry := time.Now().Add(resetCodeExpiry)
	err = u.userRepo.UpdateFields(ctx, user.ID, map[string]interface{}{
		"resetCode":       code,
		"resetCodeExpiry": expiry,
	})
	if err != nil {
		return err
	}

	logger.Debug("Password reset code for %s: %s", phoneNumber, code)
	return nil
}

type ConfirmPasswordResetInput struct {
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Code        string `json:"code" validate:"required,len=6"`
	NewPassword string `json:"newPassword" validate:"required,min=8"`
}

func (u *AuthUseCase) ConfirmPasswordReset(ctx context.Context, input ConfirmPasswordResetInput) error {
	user, err := u.userRepo.GetByPhoneNumber(ctx, input.PhoneNumber)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return errors.BadRequest("Invalid or expired reset code", nil)
		}
		return err
	}

	if user.ResetCode == "" || user.ResetCode != input.Code ||
		user.ResetCodeExpiry == nil || time.Now().After(*user.ResetCodeExpiry) {
		return errors.BadRequest("Invalid or expired reset code", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcryptCost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}

	return u.userRepo.UpdateFields(ctx, user.ID, map[string]interface{}{
		"password":           string(hashed),
		"resetCode":          "",
		"resetCodeExpiry":    nil,
		"needsPasswordReset": false,
	})
}

type GuestSessionResponse struct {
	GuestID string `json:"guest_id"`
	Token   string `json:"token"`
}

// CreateGuestSession mints a 30-day token for an anonymous browser.
func (u *AuthUseCase) CreateGuestSession(ctx context.Context) (*GuestSessionResponse, error) {
	guestID := uuid.NewString()

	token, err := u.tokenManager.GenerateGuestToken(guestID)
	if err != nil {
		return nil, err
	}

	return &GuestSessionResponse{GuestID: guestID, Token: token}, nil
}

// ConvertGuest upgrades a guest session into a full account.
func (u *AuthUseCase) ConvertGuest(ctx context.Context, guestID string, input RegisterInput) (*AuthResponse, error) {
	response, err := u.Register(ctx, input)
	if err != nil {
		return nil, err
	}

	logger.Info("Guest %s converted to user %s", guestID, response.User.ID)
	return response, nil
}

// GenerateTempPassword returns a random password for accounts created on an
// owner's behalf; the owner resets it on first login.
func GenerateTempPassword() (string, error) {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
