package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"

	"healthtrack/internal/bp"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

var ErrUnknownGuideline = errors.New("unknown guideline key")

type SettingsService struct {
	r *repository.SettingsRepository
}

func NewSettingsService(r *repository.SettingsRepository) *SettingsService {
	return &SettingsService{r: r}
}

// Get возвращает настройки пользователя; при отсутствии строки — дефолты
func (s *SettingsService) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	settings, err := s.r.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.UserSettings{
				UserID:       userID,
				GuidelineKey: bp.DefaultKey,
				WeightUnit:   "kg",
			}, nil
		}
		return nil, err
	}
	return settings, nil
}

func (s *SettingsService) Update(ctx context.Context, userID string, req *models.SettingsRequest) (*models.UserSettings, error) {
	// Незнакомый ключ гайдлайна отклоняем на записи, чтобы в хранилище не
	// попала преференция, которую резолвер не сможет применить
	if _, ok := bp.Get(req.GuidelineKey); !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownGuideline, req.GuidelineKey)
	}

	settings, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.GuidelineKey = req.GuidelineKey
	if req.WeightUnit != "" {
		settings.WeightUnit = req.WeightUnit
	}
	settings.UpdatedAt = time.Now().UTC()

	if err := s.r.Upsert(ctx, settings); err != nil {
		slog.Error("Failed to save settings", "error", err, "user_id", userID)
		return nil, errors.New("failed to save settings")
	}

	return settings, nil
}

// ActiveGuidelineKey returns the guideline the user's data should be
// classified under. A stored key that the registry no longer knows falls back
// to the default — unlike the resolver, which reports unknown keys as
// unclassifiable, display paths always need a working scheme.
func (s *SettingsService) ActiveGuidelineKey(ctx context.Context, userID string) string {
	settings, err := s.Get(ctx, userID)
	if err != nil {
		slog.Warn("Failed to load settings, using default guideline", "error", err, "user_id", userID)
		return bp.DefaultKey
	}

	key := resolveGuidelineKey(settings.GuidelineKey)
	if key != settings.GuidelineKey {
		slog.Warn("Stored guideline key is unknown, using default",
			"guideline", settings.GuidelineKey,
			"user_id", userID,
		)
	}
	return key
}

// resolveGuidelineKey сводит сохранённую преференцию к рабочему ключу:
// пустой или устаревший ключ превращается в дефолтный
func resolveGuidelineKey(stored string) string {
	if _, ok := bp.Get(stored); !ok {
		return bp.DefaultKey
	}
	return stored
}
