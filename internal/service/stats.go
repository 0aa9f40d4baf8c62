package service

import (
	"context"
	"time"

	"healthtrack/internal/analytics"
	"healthtrack/internal/bp"
	"healthtrack/internal/repository"
)

type StatsService struct {
	readings *repository.ReadingRepository
	sleep    *repository.SleepRepository
	settings *SettingsService
}

func NewStatsService(readings *repository.ReadingRepository, sleep *repository.SleepRepository, settings *SettingsService) *StatsService {
	return &StatsService{
		readings: readings,
		sleep:    sleep,
		settings: settings,
	}
}

// CategoryCount строка распределения с метаданными для отрисовки
type CategoryCount struct {
	Category string `json:"category"`
	Label    string `json:"label"`
	Color    string `json:"color"`
	Count    int    `json:"count"`
}

type BPStatsResponse struct {
	Guideline     string              `json:"guideline"`
	GuidelineName string              `json:"guideline_name"`
	From          *time.Time          `json:"from,omitempty"`
	To            *time.Time          `json:"to,omitempty"`
	Summary       analytics.BPSummary `json:"summary"`
	Categories    []CategoryCount     `json:"categories"`
}

type SleepStatsResponse struct {
	From    *time.Time             `json:"from,omitempty"`
	To      *time.Time             `json:"to,omitempty"`
	Summary analytics.SleepSummary `json:"summary"`
}

func (s *StatsService) BPStats(ctx context.Context, userID string, from, to time.Time) (*BPStatsResponse, error) {
	readings, err := s.readings.ListByUser(ctx, userID, from, to, 0)
	if err != nil {
		return nil, err
	}

	// Репозиторий отдаёт новые первыми; тренд считаем по хронологии
	for i, j := 0, len(readings)-1; i < j; i, j = i+1, j-1 {
		readings[i], readings[j] = readings[j], readings[i]
	}

	guidelineKey := s.settings.ActiveGuidelineKey(ctx, userID)
	guideline, _ := bp.Get(guidelineKey)

	summary := analytics.CalculateBPSummary(readings, guidelineKey)

	// Категории в порядке возрастания тяжести, включая пустые —
	// клиенту так проще рисовать легенду
	categories := make([]CategoryCount, 0, len(guideline.Categories))
	for _, c := range guideline.Categories {
		info := bp.Info(c.Key)
		categories = append(categories, CategoryCount{
			Category: c.Key,
			Label:    info.Label,
			Color:    info.Color,
			Count:    summary.Distribution[c.Key],
		})
	}

	response := &BPStatsResponse{
		Guideline:     guidelineKey,
		GuidelineName: guideline.Name,
		Summary:       summary,
		Categories:    categories,
	}
	if !from.IsZero() {
		response.From = &from
	}
	if !to.IsZero() {
		response.To = &to
	}
	return response, nil
}

func (s *StatsService) SleepStats(ctx context.Context, userID string, from, to time.Time) (*SleepStatsResponse, error) {
	entries, err := s.sleep.ListByUser(ctx, userID, from, to, 0)
	if err != nil {
		return nil, err
	}

	response := &SleepStatsResponse{
		Summary: analytics.CalculateSleepSummary(entries),
	}
	if !from.IsZero() {
		response.From = &from
	}
	if !to.IsZero() {
		response.To = &to
	}
	return response, nil
}
