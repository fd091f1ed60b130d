package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classtrack/attendance-backend/internal/response"
	"github.com/classtrack/attendance-backend/internal/service"
)

// StatsHandler serves the organization-wide snapshot.
type StatsHandler struct {
	attendanceService *service.AttendanceService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(attendanceService *service.AttendanceService) *StatsHandler {
	return &StatsHandler{attendanceService: attendanceService}
}

// GetStatistics godoc
// GET /api/v1/statistics
// Aggregates today's records against the roster size.
func (h *StatsHandler) GetStatistics(c *gin.Context) {
	snap, err := h.attendanceService.Snapshot(c.Request.Context(), time.Now().UTC())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, snap)
}
