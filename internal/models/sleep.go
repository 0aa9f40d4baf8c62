package models

import (
	"time"

	"github.com/google/uuid"
)

// SleepEntry одна ночь сна
type SleepEntry struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserID     string    `json:"user_id" gorm:"type:uuid;not null;index"`
	BedTime    time.Time `json:"bed_time" gorm:"not null"`
	WakeTime   time.Time `json:"wake_time" gorm:"not null;index"`
	Quality    int       `json:"quality" gorm:"not null"` // субъективная оценка 1-5
	Awakenings int       `json:"awakenings" gorm:"not null;default:0"`
	Notes      string    `json:"notes" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}

func (SleepEntry) TableName() string {
	return "sleep_entries"
}

// Duration returns time asleep in hours.
func (e SleepEntry) Duration() float64 {
	return e.WakeTime.Sub(e.BedTime).Hours()
}

type SleepRequest struct {
	BedTime    time.Time `json:"bed_time" binding:"required"`
	WakeTime   time.Time `json:"wake_time" binding:"required"`
	Quality    int       `json:"quality" binding:"required,min=1,max=5"`
	Awakenings int       `json:"awakenings" binding:"min=0,max=50"`
	Notes      string    `json:"notes" binding:"max=2000"`
}

// SleepResponse запись сна вместе с расчётным скором
type SleepResponse struct {
	SleepEntry
	DurationHours float64 `json:"duration_hours"`
	Score         int     `json:"score"`
}
