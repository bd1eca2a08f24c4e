package services

import (
	"context"

	"github.com/defterpro/defter_backend/internal/core/domain"
	"github.com/defterpro/defter_backend/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// GetUserByUsername retrieves a user by username.
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)

	// ListUsers retrieves a paginated list of users.
	ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser creates a new user.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// ToggleUserActive flips a user's active flag. Users cannot disable themselves.
	ToggleUserActive(ctx context.Context, userID string, requestingUserID string) (*domain.User, error)

	// ChangeUserRole changes a user's role. Users cannot change their own role.
	ChangeUserRole(ctx context.Context, userID string, role domain.UserRole, requestingUserID string) (*domain.User, error)

	// ResetUserPassword replaces a user's password.
	ResetUserPassword(ctx context.Context, userID string, newPassword string) error

	// EnsureBootstrapAdmin creates the initial admin account when no users exist.
	EnsureBootstrapAdmin(ctx context.Context, username, email, password string) error
}

// UserLifecycleSvc defines operations for managing user lifecycle
type UserLifecycleSvc interface {
	// DeleteUser removes a user. Users cannot delete themselves.
	DeleteUser(ctx context.Context, userID string, requestingUserID string) error
}

// UserAuthSvc defines operations for user authentication
type UserAuthSvc interface {
	// AuthenticateUser authenticates a user with username and password.
	AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	UserLifecycleSvc
	UserAuthSvc
}
