package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"healthtrack/internal/service"
)

type StatsHandlers struct {
	s *service.StatsService
}

func NewStatsHandlers(statsService *service.StatsService) *StatsHandlers {
	return &StatsHandlers{s: statsService}
}

// GET /api/v1/stats/bp
func (h *StatsHandlers) BPStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, to, _, ok := parsePeriod(c)
	if !ok {
		return
	}

	stats, err := h.s.BPStats(c, userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GET /api/v1/stats/sleep
func (h *StatsHandlers) SleepStats(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, to, _, ok := parsePeriod(c)
	if !ok {
		return
	}

	stats, err := h.s.SleepStats(c, userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}
