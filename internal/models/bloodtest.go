package models

import (
	"time"

	"github.com/google/uuid"
)

// BloodTestResult результат анализа крови с набором маркеров
type BloodTestResult struct {
	ID      uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID  string    `json:"user_id" gorm:"type:uuid;not null;index"`
	TakenAt time.Time `json:"taken_at" gorm:"not null;index"`
	Lab     string    `json:"lab" gorm:"type:varchar(255)"`
	Notes   string    `json:"notes" gorm:"type:text"`

	// Маркеры сериализуются в JSONB — состав панели у каждой лаборатории свой
	Markers []BloodMarker `json:"markers" gorm:"serializer:json;type:jsonb"`

	CreatedAt time.Time `json:"created_at"`
}

func (BloodTestResult) TableName() string {
	return "blood_tests"
}

// BloodMarker одно значение маркера внутри панели
type BloodMarker struct {
	Name    string   `json:"name"`
	Value   float64  `json:"value"`
	Unit    string   `json:"unit"`
	RefLow  *float64 `json:"ref_low,omitempty"`
	RefHigh *float64 `json:"ref_high,omitempty"`
	Flagged bool     `json:"flagged"`
}

type BloodTestRequest struct {
	TakenAt time.Time     `json:"taken_at" binding:"required"`
	Lab     string        `json:"lab" binding:"max=255"`
	Notes   string        `json:"notes" binding:"max=2000"`
	Markers []BloodMarker `json:"markers" binding:"required,min=1,dive"`
}
