package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classtrack/attendance-backend/internal/response"
	"github.com/classtrack/attendance-backend/internal/service"
)

// ExportHandler streams filtered attendance history as a CSV attachment.
type ExportHandler struct {
	attendanceService *service.AttendanceService
	defaultWindowDays int
}

// NewExportHandler creates a new ExportHandler.
func NewExportHandler(attendanceService *service.AttendanceService, defaultWindowDays int) *ExportHandler {
	return &ExportHandler{
		attendanceService: attendanceService,
		defaultWindowDays: defaultWindowDays,
	}
}

// ExportCSV godoc
// GET /api/v1/attendance/export?days=&class=&status=&date_from=&date_to=
// Without an explicit date range the export covers the trailing window of
// days ending today (default 30). Rows stream straight from the database,
// so large ranges never buffer in memory.
func (h *ExportHandler) ExportCSV(c *gin.Context) {
	params := service.FilterParams{
		ClassName: c.Query("class"),
		Status:    c.Query("status"),
		DateFrom:  c.Query("date_from"),
		DateTo:    c.Query("date_to"),
	}

	filter, err := h.attendanceService.ParseFilter(params)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidStatus):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidStatus,
				map[string]string{"detail": err.Error()})
		case errors.Is(err, service.ErrInvalidDate):
			response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidDate,
				map[string]string{"detail": err.Error()})
		default:
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		}
		return
	}

	// Apply the trailing-window default only when the caller gave no
	// explicit bounds.
	if filter.DateFrom == nil && filter.DateTo == nil {
		days := h.defaultWindowDays
		if raw := c.Query("days"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n < 0 {
				response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
					map[string]string{"days": "must be a non-negative integer"})
				return
			}
			days = n
		}
		now := time.Now().UTC()
		to := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
		from := to.AddDate(0, 0, -days)
		filter.DateFrom = &from
		filter.DateTo = &to
	}

	filename := fmt.Sprintf("attendance_%s.csv", time.Now().UTC().Format("20060102"))
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)

	if err := h.attendanceService.ExportCSV(c.Request.Context(), c.Writer, filter); err != nil {
		// Headers may already be on the wire; all we can do is abort.
		_ = c.Error(err)
		c.Abort()
	}
}
