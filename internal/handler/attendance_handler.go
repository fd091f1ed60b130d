package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/classtrack/attendance-backend/internal/model"
	"github.com/classtrack/attendance-backend/internal/response"
	"github.com/classtrack/attendance-backend/internal/service"
	"github.com/classtrack/attendance-backend/internal/validator"
)

// AttendanceHandler handles the ledger's operation surface: marking,
// deletion, per-date and per-student listings, and filtered queries.
// "Now" is resolved exactly once per request here and passed down.
type AttendanceHandler struct {
	attendanceService *service.AttendanceService
	defaultWindowDays int
}

// NewAttendanceHandler creates a new AttendanceHandler.
func NewAttendanceHandler(attendanceService *service.AttendanceService, defaultWindowDays int) *AttendanceHandler {
	return &AttendanceHandler{
		attendanceService: attendanceService,
		defaultWindowDays: defaultWindowDays,
	}
}

// MarkAttendance godoc
// POST /api/v1/attendance
// Creates today's record for the student, or overwrites it if one exists.
// Responds 201 on create and 200 on overwrite.
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var req model.MarkAttendanceRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	rec, created, err := h.attendanceService.Mark(c.Request.Context(), req, time.Now().UTC())
	if err != nil {
		h.failAttendance(c, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	response.Success(c, status, gin.H{"record": rec})
}

// DeleteAttendance godoc
// DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) DeleteAttendance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.attendanceService.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrRecordNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrRecordNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "attendance record deleted successfully"})
}

// GetAttendanceByDate godoc
// GET /api/v1/attendance/date/:date
func (h *AttendanceHandler) GetAttendanceByDate(c *gin.Context) {
	dateText := c.Param("date")

	records, err := h.attendanceService.ListByDate(c.Request.Context(), dateText)
	if err != nil {
		h.failAttendance(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"date":    dateText,
		"records": records,
		"count":   len(records),
	})
}

// GetStudentAttendance godoc
// GET /api/v1/students/:id/attendance?days=30
// Returns the student's records over a trailing window plus statistics.
func (h *AttendanceHandler) GetStudentAttendance(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

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

	student, records, stats, err := h.attendanceService.StudentHistory(c.Request.Context(), id, days, time.Now().UTC())
	if err != nil {
		h.failAttendance(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"student":     student,
		"period_days": days,
		"statistics":  stats,
		"records":     records,
		"count":       len(records),
	})
}

// FilterAttendance godoc
// GET /api/v1/attendance?class=&status=&date_from=&date_to=
// All filters optional; absent means unconstrained. Results are date
// descending.
func (h *AttendanceHandler) FilterAttendance(c *gin.Context) {
	params := service.FilterParams{
		ClassName: c.Query("class"),
		Status:    c.Query("status"),
		DateFrom:  c.Query("date_from"),
		DateTo:    c.Query("date_to"),
	}

	filter, err := h.attendanceService.ParseFilter(params)
	if err != nil {
		h.failAttendance(c, err)
		return
	}

	records, err := h.attendanceService.ListFiltered(c.Request.Context(), filter)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"filters": gin.H{
			"class":     params.ClassName,
			"status":    params.Status,
			"date_from": params.DateFrom,
			"date_to":   params.DateTo,
		},
		"results": records,
		"count":   len(records),
	})
}

// failAttendance maps service sentinels onto HTTP error responses. The
// validation sentinels carry the offending value, so those reply with the
// full error text.
func (h *AttendanceHandler) failAttendance(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrInvalidStatus):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidStatus,
			map[string]string{"detail": err.Error()})
	case errors.Is(err, service.ErrInvalidDate):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidDate,
			map[string]string{"detail": err.Error()})
	case errors.Is(err, service.ErrInvalidTime):
		response.FailWithFields(c, http.StatusBadRequest, response.ErrInvalidTime,
			map[string]string{"detail": err.Error()})
	case errors.Is(err, service.ErrStudentNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrStudentNotFound)
	case errors.Is(err, service.ErrRecordNotFound):
		response.Fail(c, http.StatusNotFound, response.ErrRecordNotFound)
	default:
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
	}
}
