package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtrack/attendance-backend/internal/model"
)

func TestParseFilter_AllEmpty(t *testing.T) {
	s := &AttendanceService{}

	f, err := s.ParseFilter(FilterParams{})

	require.NoError(t, err)
	assert.Nil(t, f.ClassName)
	assert.Nil(t, f.Status)
	assert.Nil(t, f.DateFrom)
	assert.Nil(t, f.DateTo)
}

func TestParseFilter_AllSet(t *testing.T) {
	s := &AttendanceService{}

	f, err := s.ParseFilter(FilterParams{
		ClassName: "10-A",
		Status:    "present",
		DateFrom:  "2026-03-01",
		DateTo:    "2026-03-31",
	})

	require.NoError(t, err)
	require.NotNil(t, f.ClassName)
	assert.Equal(t, "10-A", *f.ClassName)
	require.NotNil(t, f.Status)
	assert.Equal(t, model.StatusPresent, *f.Status)
	require.NotNil(t, f.DateFrom)
	assert.Equal(t, time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), *f.DateFrom)
	require.NotNil(t, f.DateTo)
	assert.Equal(t, time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC), *f.DateTo)
}

func TestParseFilter_MalformedDate(t *testing.T) {
	s := &AttendanceService{}

	_, err := s.ParseFilter(FilterParams{DateFrom: "2024/13/40"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDate))
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
	assert.Contains(t, err.Error(), "2024/13/40")
}

func TestParseFilter_MalformedDateTo(t *testing.T) {
	s := &AttendanceService{}

	_, err := s.ParseFilter(FilterParams{DateTo: "31-03-2026"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDate))
}

func TestParseFilter_RejectsUnpaddedDate(t *testing.T) {
	// time.Parse alone would accept "2026-3-4"; the wire form requires
	// zero padding.
	s := &AttendanceService{}

	_, err := s.ParseFilter(FilterParams{DateFrom: "2026-3-4"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidDate))
	assert.Contains(t, err.Error(), "2026-3-4")
}

func TestMark_RejectsUnpaddedCheckInTime(t *testing.T) {
	s := &AttendanceService{}

	_, _, err := s.Mark(context.Background(), model.MarkAttendanceRequest{
		StudentID:   1,
		Status:      "present",
		CheckInTime: "9:5",
	}, time.Date(2026, 8, 30, 9, 5, 0, 0, time.UTC))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTime))
	assert.Contains(t, err.Error(), "9:5")
}

func TestMark_RejectsOutOfRangeCheckInTime(t *testing.T) {
	s := &AttendanceService{}

	_, _, err := s.Mark(context.Background(), model.MarkAttendanceRequest{
		StudentID:   1,
		Status:      "present",
		CheckInTime: "24:00",
	}, time.Date(2026, 8, 30, 9, 5, 0, 0, time.UTC))

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidTime))
}

func TestParseFilter_UnknownStatus(t *testing.T) {
	s := &AttendanceService{}

	_, err := s.ParseFilter(FilterParams{Status: "holiday"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidStatus))
	assert.Contains(t, err.Error(), "holiday")
}

func TestParseFilter_SubsetIndependence(t *testing.T) {
	// The filter is a predicate set: the same inputs always yield the same
	// predicate no matter which subset is present.
	s := &AttendanceService{}

	both, err := s.ParseFilter(FilterParams{ClassName: "10-A", Status: "present"})
	require.NoError(t, err)

	classOnly, err := s.ParseFilter(FilterParams{ClassName: "10-A"})
	require.NoError(t, err)
	statusOnly, err := s.ParseFilter(FilterParams{Status: "present"})
	require.NoError(t, err)

	assert.Equal(t, *classOnly.ClassName, *both.ClassName)
	assert.Equal(t, *statusOnly.Status, *both.Status)
	assert.Nil(t, both.DateFrom)
	assert.Nil(t, both.DateTo)
}

func TestTruncateToDate(t *testing.T) {
	now := time.Date(2026, 8, 30, 14, 45, 12, 999, time.UTC)

	date := truncateToDate(now)

	assert.Equal(t, time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC), date)
}
