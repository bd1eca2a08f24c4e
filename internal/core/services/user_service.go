package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/defterpro/defter_backend/internal/apperrors"
	"github.com/defterpro/defter_backend/internal/core/domain"
	portsrepo "github.com/defterpro/defter_backend/internal/core/ports/repositories"
	portssvc "github.com/defterpro/defter_backend/internal/core/ports/services"
	"github.com/defterpro/defter_backend/internal/dto"
	"github.com/defterpro/defter_backend/internal/middleware"
	"github.com/defterpro/defter_backend/internal/utils"
	"github.com/google/uuid"
)

// UserService handles user management and authentication.
type UserService struct {
	userRepo portsrepo.UserRepositoryFacade
}

// NewUserService creates a new UserService.
func NewUserService(userRepo portsrepo.UserRepositoryFacade) portssvc.UserSvcFacade {
	return &UserService{userRepo: userRepo}
}

// Ensure UserService implements the portssvc.UserSvcFacade interface
var _ portssvc.UserSvcFacade = (*UserService)(nil)

func (s *UserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	role := domain.UserRole(req.Role)
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %s", apperrors.ErrValidation, req.Role)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	now := time.Now()
	user := domain.User{
		UserID:       uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		IsActive:     true,
		Timestamps:   domain.Timestamps{CreatedAt: now, UpdatedAt: now},
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		logger.Error("Failed to save user", slog.String("error", err.Error()), slog.String("username", req.Username))
		return nil, err
	}

	logger.Info("User created", slog.String("user_id", user.UserID), slog.String("role", string(role)))
	return &user, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.userRepo.FindUserByID(ctx, userID)
}

func (s *UserService) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.userRepo.FindUserByUsername(ctx, username)
}

func (s *UserService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	return s.userRepo.FindUsers(ctx, limit, offset)
}

// AuthenticateUser verifies credentials and records the login time.
// Inactive accounts are rejected even with a correct password.
func (s *UserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		logger.Error("Failed to look up user for login", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}

	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		return nil, fmt.Errorf("%w: account disabled", apperrors.ErrForbidden)
	}

	now := time.Now()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		// Login still succeeds; the timestamp is informational.
		logger.Warn("Failed to record last login", slog.String("error", err.Error()), slog.String("user_id", user.UserID))
	} else {
		user.LastLoginAt = &now
	}

	return user, nil
}

func (s *UserService) ToggleUserActive(ctx context.Context, userID string, requestingUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == requestingUserID {
		return nil, apperrors.ErrSelfDeactivate
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.IsActive = !user.IsActive
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to toggle user active flag", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, err
	}

	logger.Info("User active flag toggled", slog.String("user_id", userID), slog.Bool("is_active", user.IsActive))
	return user, nil
}

func (s *UserService) ChangeUserRole(ctx context.Context, userID string, role domain.UserRole, requestingUserID string) (*domain.User, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == requestingUserID {
		return nil, apperrors.ErrSelfRoleChange
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("%w: unknown role %s", apperrors.ErrValidation, role)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Role = role
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to change user role", slog.String("error", err.Error()), slog.String("user_id", userID))
		return nil, err
	}

	logger.Info("User role changed", slog.String("user_id", userID), slog.String("role", string(role)))
	return user, nil
}

func (s *UserService) ResetUserPassword(ctx context.Context, userID string, newPassword string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return err
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		logger.Error("Failed to hash password", slog.String("error", err.Error()))
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.PasswordHash = hash
	user.UpdatedAt = time.Now()
	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		logger.Error("Failed to reset password", slog.String("error", err.Error()), slog.String("user_id", userID))
		return err
	}

	logger.Info("User password reset", slog.String("user_id", userID))
	return nil
}

func (s *UserService) DeleteUser(ctx context.Context, userID string, requestingUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if userID == requestingUserID {
		return apperrors.ErrSelfDelete
	}

	if err := s.userRepo.DeleteUser(ctx, userID); err != nil {
		return err
	}

	logger.Info("User deleted", slog.String("user_id", userID))
	return nil
}

// EnsureBootstrapAdmin creates the initial admin account on an empty user
// table so a fresh deployment can be logged into.
func (s *UserService) EnsureBootstrapAdmin(ctx context.Context, username, email, password string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	count, err := s.userRepo.CountUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}
	if count > 0 {
		return nil
	}

	_, err = s.CreateUser(ctx, dto.CreateUserRequest{
		Username: username,
		Email:    email,
		Password: password,
		Role:     string(domain.RoleAdmin),
	})
	if err != nil {
		return fmt.Errorf("failed to create bootstrap admin: %w", err)
	}

	logger.Info("Bootstrap admin created", slog.String("username", username))
	return nil
}
