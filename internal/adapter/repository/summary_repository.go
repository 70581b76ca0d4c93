package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/kimdohyun-dev/actionlog/internal/domain/entities"
)

// SummaryRepository implements the summary repository interface using GORM
type SummaryRepository struct {
	db *gorm.DB
}

// NewSummaryRepository creates a new summary repository
func NewSummaryRepository(db *gorm.DB) *SummaryRepository {
	return &SummaryRepository{
		db: db,
	}
}

// Create persists a new summary
func (r *SummaryRepository) Create(ctx context.Context, summary *entities.Summary) error {
	if err := r.db.WithContext(ctx).Create(summary).Error; err != nil {
		return fmt.Errorf("failed to create summary: %w", err)
	}
	return nil
}

// FindByID finds a summary by id
func (r *SummaryRepository) FindByID(ctx context.Context, id int64) (*entities.Summary, error) {
	var summary entities.Summary
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&summary).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, entities.ErrSummaryNotFound
		}
		return nil, fmt.Errorf("failed to find summary by id: %w", err)
	}
	return &summary, nil
}

// ListByUser returns all summaries owned by the user, newest first
func (r *SummaryRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Summary, error) {
	var summaries []*entities.Summary
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC, id DESC").
		Find(&summaries).Error; err != nil {
		return nil, fmt.Errorf("failed to list summaries: %w", err)
	}
	return summaries, nil
}

// Delete removes a summary by id
func (r *SummaryRepository) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&entities.Summary{}, id)
	if res.Error != nil {
		return fmt.Errorf("failed to delete summary: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return entities.ErrSummaryNotFound
	}
	return nil
}
