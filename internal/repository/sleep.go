package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"healthtrack/internal/models"
)

type SleepRepository struct {
	db *gorm.DB
}

func NewSleepRepository(db *gorm.DB) *SleepRepository {
	return &SleepRepository{db: db}
}

func (r *SleepRepository) Create(ctx context.Context, entry *models.SleepEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *SleepRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*models.SleepEntry, error) {
	var entry models.SleepEntry
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *SleepRepository) ListByUser(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.SleepEntry, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if !from.IsZero() {
		query = query.Where("wake_time >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("wake_time <= ?", to)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var entries []models.SleepEntry
	err := query.Order("wake_time DESC").Find(&entries).Error
	return entries, err
}

func (r *SleepRepository) Update(ctx context.Context, entry *models.SleepEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *SleepRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.SleepEntry{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
