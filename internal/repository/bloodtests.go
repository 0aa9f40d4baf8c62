package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"healthtrack/internal/models"
)

type BloodTestRepository struct {
	db *gorm.DB
}

func NewBloodTestRepository(db *gorm.DB) *BloodTestRepository {
	return &BloodTestRepository{db: db}
}

func (r *BloodTestRepository) Create(ctx context.Context, test *models.BloodTestResult) error {
	return r.db.WithContext(ctx).Create(test).Error
}

func (r *BloodTestRepository) GetByID(ctx context.Context, userID string, id uuid.UUID) (*models.BloodTestResult, error) {
	var test models.BloodTestResult
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&test).Error
	if err != nil {
		return nil, err
	}
	return &test, nil
}

func (r *BloodTestRepository) ListByUser(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.BloodTestResult, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if !from.IsZero() {
		query = query.Where("taken_at >= ?", from)
	}
	if !to.IsZero() {
		query = query.Where("taken_at <= ?", to)
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var tests []models.BloodTestResult
	err := query.Order("taken_at DESC").Find(&tests).Error
	return tests, err
}

func (r *BloodTestRepository) Update(ctx context.Context, test *models.BloodTestResult) error {
	return r.db.WithContext(ctx).Save(test).Error
}

func (r *BloodTestRepository) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&models.BloodTestResult{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
