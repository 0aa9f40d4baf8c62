package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"healthtrack/internal/models"
	"healthtrack/internal/repository"
)

type BloodTestService struct {
	r *repository.BloodTestRepository
}

func NewBloodTestService(r *repository.BloodTestRepository) *BloodTestService {
	return &BloodTestService{r: r}
}

// flagMarkers отмечает маркеры, вышедшие за референсные границы
func flagMarkers(markers []models.BloodMarker) []models.BloodMarker {
	for i := range markers {
		m := &markers[i]
		m.Flagged = false
		if m.RefLow != nil && m.Value < *m.RefLow {
			m.Flagged = true
		}
		if m.RefHigh != nil && m.Value > *m.RefHigh {
			m.Flagged = true
		}
	}
	return markers
}

func (s *BloodTestService) Create(ctx context.Context, userID string, req *models.BloodTestRequest) (*models.BloodTestResult, error) {
	test := &models.BloodTestResult{
		UserID:  userID,
		TakenAt: req.TakenAt.UTC(),
		Lab:     req.Lab,
		Notes:   req.Notes,
		Markers: flagMarkers(req.Markers),
	}

	if err := s.r.Create(ctx, test); err != nil {
		slog.Error("Failed to create blood test", "error", err, "user_id", userID)
		return nil, errors.New("failed to create blood test")
	}

	return test, nil
}

func (s *BloodTestService) Get(ctx context.Context, userID string, id uuid.UUID) (*models.BloodTestResult, error) {
	return s.r.GetByID(ctx, userID, id)
}

func (s *BloodTestService) List(ctx context.Context, userID string, from, to time.Time, limit int) ([]models.BloodTestResult, error) {
	return s.r.ListByUser(ctx, userID, from, to, limit)
}

func (s *BloodTestService) Update(ctx context.Context, userID string, id uuid.UUID, req *models.BloodTestRequest) (*models.BloodTestResult, error) {
	test, err := s.r.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	test.TakenAt = req.TakenAt.UTC()
	test.Lab = req.Lab
	test.Notes = req.Notes
	test.Markers = flagMarkers(req.Markers)

	if err := s.r.Update(ctx, test); err != nil {
		slog.Error("Failed to update blood test", "error", err, "test_id", id)
		return nil, errors.New("failed to update blood test")
	}

	return test, nil
}

func (s *BloodTestService) Delete(ctx context.Context, userID string, id uuid.UUID) error {
	return s.r.Delete(ctx, userID, id)
}
