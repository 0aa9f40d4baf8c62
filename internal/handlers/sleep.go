package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack/internal/models"
	"healthtrack/internal/service"
)

type SleepHandlers struct {
	s *service.SleepService
}

func NewSleepHandlers(sleepService *service.SleepService) *SleepHandlers {
	return &SleepHandlers{s: sleepService}
}

// POST /api/v1/sleep
func (h *SleepHandlers) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.SleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.s.Create(c, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSleepWindow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, entry)
}

// GET /api/v1/sleep
func (h *SleepHandlers) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, to, limit, ok := parsePeriod(c)
	if !ok {
		return
	}

	entries, err := h.s.List(c, userID, from, to, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// GET /api/v1/sleep/:id
func (h *SleepHandlers) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	entry, err := h.s.Get(c, userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// PUT /api/v1/sleep/:id
func (h *SleepHandlers) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.SleepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.s.Update(c, userID, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSleepWindow) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, entry)
}

// DELETE /api/v1/sleep/:id
func (h *SleepHandlers) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.s.Delete(c, userID, id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Sleep entry deleted"})
}
