package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/pkg/jwt"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
)

type AuthServiceImpl struct {
	db            *database.DB
	userRepo      user.UserRepository
	leaveTypeRepo leave.LeaveTypeRepository
	jwtService    jwt.Service
}

func NewAuthService(db *database.DB, userRepo user.UserRepository, leaveTypeRepo leave.LeaveTypeRepository, jwtService jwt.Service) user.AuthService {
	return &AuthServiceImpl{
		db:            db,
		userRepo:      userRepo,
		leaveTypeRepo: leaveTypeRepo,
		jwtService:    jwtService,
	}
}

// Login implements user.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req user.LoginRequest) (user.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return user.TokenResponse{}, err
	}

	userData, err := a.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return user.TokenResponse{}, user.ErrInvalidCredentials
		}
		return user.TokenResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return user.TokenResponse{}, user.ErrInvalidCredentials
	}

	if !userData.IsActive {
		return user.TokenResponse{}, user.ErrAccountDeactivated
	}

	token, expiresAt, err := a.jwtService.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return user.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	return user.TokenResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user.ToResponse(userData),
	}, nil
}

// Register implements user.AuthService. Admin-only at the router; seeds
// the leave balance map from the active leave-type catalog.
func (a *AuthServiceImpl) Register(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	role := user.RoleEmployee
	if req.Role != "" {
		parsed, err := user.ParseRole(req.Role)
		if err != nil {
			return user.UserResponse{}, fmt.Errorf("parse role: %w", err)
		}
		role = parsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	joiningDate := time.Now()
	if req.JoiningDate != "" {
		joiningDate, _ = time.Parse("2006-01-02", req.JoiningDate)
	}

	// Seed balances from the active catalog; codes outside the catalog
	// never enter the map.
	activeTypes, err := a.leaveTypeRepo.List(ctx, true)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to list active leave types: %w", err)
	}
	balance := make(map[string]float64, len(activeTypes))
	for _, lt := range activeTypes {
		balance[lt.Code] = lt.DefaultDays
	}

	created, err := a.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         role,
		Department:   req.Department,
		Designation:  req.Designation,
		JoiningDate:  joiningDate,
		LeaveBalance: balance,
		IsActive:     true,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return user.UserResponse{}, user.ErrEmailExists
		}
		return user.UserResponse{}, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(created), nil
}

// GetProfile implements user.AuthService.
func (a *AuthServiceImpl) GetProfile(ctx context.Context, userID string) (user.UserResponse, error) {
	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(userData), nil
}

// UpdateProfile implements user.AuthService. Only the self-service
// fields are touched; role and balances are unreachable from here.
func (a *AuthServiceImpl) UpdateProfile(ctx context.Context, userID string, req user.UpdateProfileRequest) (user.UserResponse, error) {
	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		userData.Name = *req.Name
	}
	if req.Phone != nil {
		userData.Phone = *req.Phone
	}
	if req.Address != nil {
		userData.Address = *req.Address
	}
	if req.ProfileImage != nil {
		userData.ProfileImage = *req.ProfileImage
	}
	if req.EmergencyContact != nil {
		userData.EmergencyContact = *req.EmergencyContact
	}

	if err := a.userRepo.Update(ctx, userData); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update profile: %w", err)
	}
	return user.ToResponse(userData), nil
}

// ChangePassword implements user.AuthService.
func (a *AuthServiceImpl) ChangePassword(ctx context.Context, userID string, req user.ChangePasswordRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	userData, err := a.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.CurrentPassword)); err != nil {
		return user.ErrWrongCurrentPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.userRepo.UpdatePassword(ctx, userID, string(hash)); err != nil {
		return fmt.Errorf("failed to update password: %w", err)
	}
	return nil
}
