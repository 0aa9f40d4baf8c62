package models

import (
	"time"

	"github.com/google/uuid"
)

// BloodPressureReading одно измерение артериального давления
type BloodPressureReading struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;index"`
	Systolic   int       `json:"systolic" gorm:"not null"`
	Diastolic  int       `json:"diastolic" gorm:"not null"`
	Pulse      *int      `json:"pulse,omitempty"`
	Notes      string    `json:"notes" gorm:"type:text"`
	MeasuredAt time.Time `json:"measured_at" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`
}

func (BloodPressureReading) TableName() string {
	return "bp_readings"
}

// ReadingRequest данные для создания или обновления измерения
type ReadingRequest struct {
	Systolic   int       `json:"systolic" binding:"required,min=1,max=400"`
	Diastolic  int       `json:"diastolic" binding:"required,min=1,max=300"`
	Pulse      *int      `json:"pulse,omitempty" binding:"omitempty,min=1,max=300"`
	Notes      string    `json:"notes" binding:"max=2000"`
	MeasuredAt time.Time `json:"measured_at" binding:"required"`
}

// ReadingResponse измерение вместе с категорией по активному гайдлайну
type ReadingResponse struct {
	BloodPressureReading
	Category      string `json:"category,omitempty"`
	CategoryLabel string `json:"category_label,omitempty"`
	CategoryColor string `json:"category_color,omitempty"`
}
