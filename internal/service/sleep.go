package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"healthtrack/internal/analytics"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

var ErrInvalidSleepWindow = errors.New("wake time must be after bed time")

type SleepService struct {
	r *repository.SleepRepository
}

func NewSleepService(r *repository.SleepRepository) *SleepService {
	return &SleepService{r: r}
}

func validateSleepWindow(req *models.SleepRequest) error {
	if !req.WakeTime.After(req.BedTime) {
		return ErrInvalidSleepWindow
	}
	// Больше суток в кровати — почти наверняка перепутанные даты
	if req.WakeTime.Sub(req.BedTime) > 24*time.Hour {
		return ErrInvalidSleepWindow
	}
	return nil
}

func (s *SleepService) Create(ctx context.Context, userID string, req *models.SleepRequest) (*models.SleepResponse, error) {
	if err := validateSleepWindow(req); err != nil {
		return nil, err
	}

	entry := &models.SleepEntry{
		UserID:     userID,
		BedTime:    req.BedTime.UTC(),
		WakeTime:   req.WakeTime.UTC(),
		Quality:    req.Quality,
		Awakenings: req.Awakenings,
		Notes:      req.Notes,
	}

	if err := s.r.Create(ctx, entry); err != nil {
		slog.Error("Failed to create sleep entry", "error", err, "user_id", userID)
		return nil, errors.New("failed to create sleep entry")
	}

	return sleepResponse(entry), nil
}

func (s *SleepService) Get(ctx context.Context, userID string, id uuid.UUID) (*models.SleepResponse, error) {
	entry, err := s.r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return sleepResponse(entry), nil
}

func (s *SleepService) List(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.SleepResponse, error) {
	entries, err := s.r.ListByUser(ctx, userID, from, to, limit)
	if err != nil {
		return nil, err
	}

	responses := make([]models.SleepResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, *sleepResponse(&entries[i]))
	}
	return responses, nil
}

func (s *SleepService) Update(ctx context.Context, userID string, id uuid.UUID, req *models.SleepRequest) (*models.SleepResponse, error) {
	if err := validateSleepWindow(req); err != nil {
		return nil, err
	}

	entry, err := s.r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	entry.BedTime = req.BedTime.UTC()
	entry.WakeTime = req.WakeTime.UTC()
	entry.Quality = req.Quality
	entry.Awakenings = req.Awakenings
	entry.Notes = req.Notes

	if err := s.r.Update(ctx, entry); err != nil {
		slog.Error("Failed to update sleep entry", "error", err, "entry_id", id)
		return nil, errors.New("failed to update sleep entry")
	}

	return sleepResponse(entry), nil
}

func (s *SleepService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.r.Delete(ctx, userID, id)
}

func sleepResponse(entry *models.SleepEntry) *models.SleepResponse {
	return &models.SleepResponse{
		SleepEntry:    *entry,
		DurationHours: entry.Duration(),
		Score:         analytics.SleepScore(*entry),
	}
}
