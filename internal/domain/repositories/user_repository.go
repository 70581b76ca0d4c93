package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/kimdohyun-dev/actionlog/internal/domain/entities"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *entities.User) error

	// FindByID finds a user by ID
	FindByID(ctx context.Context, id uuid.UUID) (*entities.User, error)

	// FindByLoginID finds a user by login id
	FindByLoginID(ctx context.Context, loginID string) (*entities.User, error)

	// ExistsByLoginID reports whether a user with the login id exists
	ExistsByLoginID(ctx context.Context, loginID string) (bool, error)

	// ExistsByEmail reports whether a user with the email exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}
