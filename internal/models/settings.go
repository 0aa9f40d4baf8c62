package models

import "time"

// UserSettings пользовательские настройки, одна строка на пользователя
type UserSettings struct {
	UserID       string    `json:"user_id" gorm:"type:uuid;primaryKey"`
	GuidelineKey string    `json:"guideline_key" gorm:"type:varchar(64);not null"`
	WeightUnit   string    `json:"weight_unit" gorm:"type:varchar(8);not null;default:'kg'"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (UserSettings) TableName() string {
	return "user_settings"
}

type SettingsRequest struct {
	GuidelineKey string `json:"guideline_key" binding:"required,max=64"`
	WeightUnit   string `json:"weight_unit" binding:"omitempty,oneof=kg lb"`
}
