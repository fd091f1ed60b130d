package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/classtrack/attendance-backend/internal/model"
)

func records(statuses ...model.AttendanceStatus) []model.AttendanceRecord {
	recs := make([]model.AttendanceRecord, len(statuses))
	for i, s := range statuses {
		recs[i] = model.AttendanceRecord{ID: i + 1, Status: s}
	}
	return recs
}

func TestComputeStudentStats(t *testing.T) {
	recs := records(
		model.StatusPresent, model.StatusPresent, model.StatusPresent, model.StatusPresent,
		model.StatusPresent, model.StatusPresent, model.StatusPresent,
		model.StatusAbsent, model.StatusAbsent,
		model.StatusLate,
	)

	stats := ComputeStudentStats(recs)

	assert.Equal(t, 10, stats.TotalDays)
	assert.Equal(t, 7, stats.Present)
	assert.Equal(t, 2, stats.Absent)
	assert.Equal(t, 1, stats.Late)
	assert.Equal(t, 70.00, stats.Percentage)
}

func TestComputeStudentStats_Empty(t *testing.T) {
	stats := ComputeStudentStats(nil)

	assert.Equal(t, 0, stats.TotalDays)
	assert.Equal(t, 0, stats.Present)
	assert.Equal(t, 0, stats.Absent)
	assert.Equal(t, 0, stats.Late)
	assert.Equal(t, 0.00, stats.Percentage)
}

func TestComputeStudentStats_Rounding(t *testing.T) {
	stats := ComputeStudentStats(records(model.StatusPresent, model.StatusAbsent, model.StatusAbsent))
	assert.Equal(t, 33.33, stats.Percentage)

	stats = ComputeStudentStats(records(model.StatusPresent, model.StatusPresent, model.StatusAbsent))
	assert.Equal(t, 66.67, stats.Percentage)
}

func TestComputeStudentStats_PercentageBounds(t *testing.T) {
	all := records(model.StatusPresent, model.StatusPresent)
	assert.Equal(t, 100.00, ComputeStudentStats(all).Percentage)

	none := records(model.StatusAbsent, model.StatusLate)
	assert.Equal(t, 0.00, ComputeStudentStats(none).Percentage)
}

func TestComputeOrgSnapshot(t *testing.T) {
	today := records(
		model.StatusPresent, model.StatusPresent, model.StatusPresent,
		model.StatusAbsent,
		model.StatusLate,
	)

	snap, clamped := ComputeOrgSnapshot(8, today)

	assert.False(t, clamped)
	assert.Equal(t, 8, snap.TotalStudents)
	assert.Equal(t, 3, snap.PresentToday)
	assert.Equal(t, 1, snap.AbsentToday)
	assert.Equal(t, 1, snap.LateToday)
	assert.Equal(t, 3, snap.NotMarked)
	assert.Equal(t, 37.50, snap.AttendanceRate)
}

func TestComputeOrgSnapshot_EmptyRoster(t *testing.T) {
	snap, clamped := ComputeOrgSnapshot(0, nil)

	assert.False(t, clamped)
	assert.Equal(t, 0, snap.NotMarked)
	assert.Equal(t, 0.00, snap.AttendanceRate)
}

func TestComputeOrgSnapshot_ClampsNotMarked(t *testing.T) {
	// More records than students is a data-integrity anomaly: it must be
	// reported, never a negative count.
	today := records(model.StatusPresent, model.StatusPresent, model.StatusPresent)

	snap, clamped := ComputeOrgSnapshot(2, today)

	assert.True(t, clamped)
	assert.Equal(t, 0, snap.NotMarked)
	assert.GreaterOrEqual(t, snap.NotMarked, 0)
}
