package service

import (
	"math"

	"github.com/classtrack/attendance-backend/internal/model"
)

// ComputeStudentStats summarizes an already-fetched record set for one
// student. The caller decides the window; this only counts what it is given.
// Percentage is present/total*100 rounded to two decimals, 0 for an empty
// window.
func ComputeStudentStats(records []model.AttendanceRecord) model.StudentStats {
	stats := model.StudentStats{TotalDays: len(records)}

	for _, rec := range records {
		switch rec.Status {
		case model.StatusPresent:
			stats.Present++
		case model.StatusAbsent:
			stats.Absent++
		case model.StatusLate:
			stats.Late++
		}
	}

	if stats.TotalDays > 0 {
		stats.Percentage = roundTwo(float64(stats.Present) / float64(stats.TotalDays) * 100)
	}
	return stats
}

// ComputeOrgSnapshot aggregates one day's records against the roster size.
// NotMarked never goes negative: a day with more records than students is a
// data-integrity anomaly, reported via the clamped flag rather than a crash.
func ComputeOrgSnapshot(totalStudents int, todayRecords []model.AttendanceRecord) (snap model.OrgSnapshot, clamped bool) {
	snap.TotalStudents = totalStudents

	for _, rec := range todayRecords {
		switch rec.Status {
		case model.StatusPresent:
			snap.PresentToday++
		case model.StatusAbsent:
			snap.AbsentToday++
		case model.StatusLate:
			snap.LateToday++
		}
	}

	snap.NotMarked = totalStudents - len(todayRecords)
	if snap.NotMarked < 0 {
		snap.NotMarked = 0
		clamped = true
	}

	if totalStudents > 0 {
		snap.AttendanceRate = roundTwo(float64(snap.PresentToday) / float64(totalStudents) * 100)
	}
	return snap, clamped
}

func roundTwo(f float64) float64 {
	return math.Round(f*100) / 100
}
