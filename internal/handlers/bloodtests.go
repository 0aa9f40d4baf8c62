package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack/internal/models"
	"healthtrack/internal/service"
)

type BloodTestHandlers struct {
	s *service.BloodTestService
}

func NewBloodTestHandlers(bloodTestService *service.BloodTestService) *BloodTestHandlers {
	return &BloodTestHandlers{s: bloodTestService}
}

// POST /api/v1/bloodtests
func (h *BloodTestHandlers) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req models.BloodTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	test, err := h.s.Create(c, userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, test)
}

// GET /api/v1/bloodtests
func (h *BloodTestHandlers) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, to, limit, ok := parsePeriod(c)
	if !ok {
		return
	}

	tests, err := h.s.List(c, userID, from, to, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tests": tests,
		"count": len(tests),
	})
}

// GET /api/v1/bloodtests/:id
func (h *BloodTestHandlers) Get(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	test, err := h.s.Get(c, userID, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, test)
}

// PUT /api/v1/bloodtests/:id
func (h *BloodTestHandlers) Update(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req models.BloodTestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	test, err := h.s.Update(c, userID, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, test)
}

// DELETE /api/v1/bloodtests/:id
func (h *BloodTestHandlers) Delete(c *gin.Context) {
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

	c.JSON(http.StatusOK, gin.H{"message": "Blood test deleted"})
}
