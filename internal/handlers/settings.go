package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack/internal/bp"
	"healthtrack/internal/models"
	"healthtrack/internal/service"
)

type SettingsHandlers struct {
	s *service.SettingsService
}

func NewSettingsHandlers(settingsService *service.SettingsService) *SettingsHandlers {
	return &SettingsHandlers{s: settingsService}
}

// GET /api/v1/settings
func (h *SettingsHandlers) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	settings, err := h.s.Get(c, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// PUT /api/v1/settings
func (h *SettingsHandlers) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	settings, err := h.s.Update(c, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrUnknownGuideline) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, settings)
}

// GET /api/v1/guidelines
//
// Полные таблицы порогов отдаются клиенту, чтобы фронтенд рисовал
// референсные зоны, не дублируя логику резолвера
func (h *SettingsHandlers) ListGuidelines(c *gin.Context) {
	type guidelineView struct {
		Key         string           `json:"key"`
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Default     bool             `json:"default"`
		Thresholds  []bp.ThresholdRow `json:"thresholds"`
	}

	views := make([]guidelineView, 0, len(bp.Keys()))
	for _, key := range bp.Keys() {
		guideline, _ := bp.Get(key)
		views = append(views, guidelineView{
			Key:         guideline.Key,
			Name:        guideline.Name,
			Description: guideline.Description,
			Default:     key == bp.DefaultKey,
			Thresholds:  bp.Table(key),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"guidelines": views,
		"default":    bp.DefaultKey,
	})
}
