package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/kimdohyun-dev/actionlog/internal/domain/entities"
)

// SummaryRepository defines the interface for summary data access
type SummaryRepository interface {
	// Create persists a new summary; the store assigns id and created_at
	Create(ctx context.Context, summary *entities.Summary) error

	// FindByID finds a summary by id
	FindByID(ctx context.Context, id int64) (*entities.Summary, error)

	// ListByUser returns all summaries owned by the user, newest first
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Summary, error)

	// Delete removes a summary by id
	Delete(ctx context.Context, id int64) error
}
