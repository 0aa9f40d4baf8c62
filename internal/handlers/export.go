package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healthtrack/internal/service"
)

type ExportHandlers struct {
	s *service.ExportService
}

func NewExportHandlers(exportService *service.ExportService) *ExportHandlers {
	return &ExportHandlers{s: exportService}
}

// GET /api/v1/export/readings.csv
func (h *ExportHandlers) ReadingsCSV(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, to, _, ok := parsePeriod(c)
	if !ok {
		return
	}

	data, err := h.s.ReadingsCSV(c, userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	filename := "readings-" + time.Now().UTC().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

// GET /api/v1/export/report.md
func (h *ExportHandlers) Report(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	from, to, _, ok := parsePeriod(c)
	if !ok {
		return
	}

	data, err := h.s.Report(c, userID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/markdown; charset=utf-8", data)
}
