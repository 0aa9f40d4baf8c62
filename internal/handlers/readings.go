package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack/internal/models"
	"healthtrack/internal/service"
)

type ReadingHandlers struct {
	s *service.ReadingService
}

func NewReadingHandlers(readingService *service.ReadingService) *ReadingHandlers {
	return &ReadingHandlers{s: readingService}
}

// POST /api/v1/readings
func (h *ReadingHandlers) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.ReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading, err := h.s.Create(c, userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReading) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, reading)
}

// GET /api/v1/readings
func (h *ReadingHandlers) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, to, limit, ok := parsePeriod(c)
	if !ok {
		return
	}

	readings, err := h.s.List(c, userID, from, to, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"readings": readings,
		"count":    len(readings),
	})
}

// GET /api/v1/readings/:id
func (h *ReadingHandlers) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reading, err := h.s.Get(c, userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reading)
}

// PUT /api/v1/readings/:id
func (h *ReadingHandlers) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.ReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	reading, err := h.s.Update(c, userID, id, &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidReading) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, reading)
}

// DELETE /api/v1/readings/:id
func (h *ReadingHandlers) Delete(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"message": "Reading deleted"})
}
