package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"healthtrack/internal/bp"
	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

// Физиологические пределы для измерений давления; значения за пределами
// считаем ошибкой ввода или артефактом устройства
const (
	maxSystolic  = 400
	maxDiastolic = 300
)

var ErrInvalidReading = errors.New("reading is outside physiological limits")

type ReadingService struct {
	r        *repository.ReadingRepository
	settings *SettingsService
}

func NewReadingService(r *repository.ReadingRepository, settings *SettingsService) *ReadingService {
	return &ReadingService{r: r, settings: settings}
}

func validateReading(systolic, diastolic int) error {
	if systolic <= 0 || systolic > maxSystolic {
		return ErrInvalidReading
	}
	if diastolic <= 0 || diastolic > maxDiastolic {
		return ErrInvalidReading
	}
	if systolic <= diastolic {
		return ErrInvalidReading
	}
	return nil
}

func (s *ReadingService) Create(ctx context.Context, userID string, req *models.ReadingRequest) (*models.ReadingResponse, error) {
	if err := validateReading(req.Systolic, req.Diastolic); err != nil {
		return nil, err
	}

	reading := &models.BloodPressureReading{
		UserID:     userID,
		Systolic:   req.Systolic,
		Diastolic:  req.Diastolic,
		Pulse:      req.Pulse,
		Notes:      req.Notes,
		MeasuredAt: req.MeasuredAt.UTC(),
	}

	if err := s.r.Create(ctx, reading); err != nil {
		slog.Error("Failed to create reading", "error", err, "user_id", userID)
		return nil, errors.New("failed to create reading")
	}

	return s.toResponse(ctx, userID, reading), nil
}

func (s *ReadingService) Get(ctx context.Context, userID string, id uuid.UUID) (*models.ReadingResponse, error) {
	reading, err := s.r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(ctx, userID, reading), nil
}

func (s *ReadingService) List(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.ReadingResponse, error) {
	readings, err := s.r.ListByUser(ctx, userID, from, to, limit)
	if err != nil {
		return nil, err
	}

	guidelineKey := s.settings.ActiveGuidelineKey(ctx, userID)

	responses := make([]models.ReadingResponse, 0, len(readings))
	for i := range readings {
		responses = append(responses, *annotate(&readings[i], guidelineKey))
	}
	return responses, nil
}

func (s *ReadingService) Update(ctx context.Context, userID string, id uuid.UUID, req *models.ReadingRequest) (*models.ReadingResponse, error) {
	if err := validateReading(req.Systolic, req.Diastolic); err != nil {
		return nil, err
	}

	reading, err := s.r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	reading.Systolic = req.Systolic
	reading.Diastolic = req.Diastolic
	reading.Pulse = req.Pulse
	reading.Notes = req.Notes
	reading.MeasuredAt = req.MeasuredAt.UTC()

	if err := s.r.Update(ctx, reading); err != nil {
		slog.Error("Failed to update reading", "error", err, "reading_id", id)
		return nil, errors.New("failed to update reading")
	}

	return s.toResponse(ctx, userID, reading), nil
}

func (s *ReadingService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.r.Delete(ctx, userID, id)
}

func (s *ReadingService) toResponse(ctx context.Context, userID string, reading *models.BloodPressureReading) *models.ReadingResponse {
	return annotate(reading, s.settings.ActiveGuidelineKey(ctx, userID))
}

// annotate прикрепляет к измерению категорию по активному гайдлайну.
// Пустая категория остаётся пустой: «ещё не классифицируемо» для UI.
func annotate(reading *models.BloodPressureReading, guidelineKey string) *models.ReadingResponse {
	response := &models.ReadingResponse{BloodPressureReading: *reading}

	if category := bp.Classify(reading.Systolic, reading.Diastolic, guidelineKey); category != "" {
		info := bp.Info(category)
		response.Category = category
		response.CategoryLabel = info.Label
		response.CategoryColor = info.Color
	}

	return response
}
