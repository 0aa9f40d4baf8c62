package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"healthtrack/internal/models"
)

type ReadingRepository struct {
	db *gorm.DB
}

func NewReadingRepository(db *gorm.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

func (r *ReadingRepository) Create(ctx context.Context, reading *models.BloodPressureReading) error {
	return r.db.WithContext(ctx).Create(reading).Error
}

func (r *ReadingRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*models.BloodPressureReading, error) {
	var reading models.BloodPressureReading
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&reading).Error
	if err != nil {
		return nil, err
	}
	return &reading, nil
}

// ListByUser возвращает измерения пользователя за период, новые первыми.
// Нулевые границы периода не фильтруют; limit <= 0 означает без ограничения.
func (r *ReadingRepository) ListByUser(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.BloodPressureReading, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if !from.IsZero() {
		query = query.Where("measured_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("measured_at <= ?", to)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var readings []models.BloodPressureReading
	err := query.Order("measured_at DESC").Find(&readings).Error
	return readings, err
}

func (r *ReadingRepository) Update(ctx context.Context, reading *models.BloodPressureReading) error {
	return r.db.WithContext(ctx).Save(reading).Error
}

func (r *ReadingRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.BloodPressureReading{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
