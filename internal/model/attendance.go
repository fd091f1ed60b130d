package model

import "time"

// Wire formats for calendar dates and check-in times. Both are validated
// strictly on input; anything else is rejected, never coerced.
const (
	DateLayout = "2006-01-02"
	TimeLayout = "15:04"
)

// AttendanceStatus is the closed set of per-day statuses.
type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "present"
	StatusAbsent  AttendanceStatus = "absent"
	StatusLate    AttendanceStatus = "late"
)

// Valid reports whether s is one of the permitted statuses.
func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate:
		return true
	}
	return false
}

// AttendanceRecord is one student's status on one calendar date, joined with
// the roster fields callers render alongside it. Date and CheckInTime carry
// the wire text forms (YYYY-MM-DD, HH:MM) produced by the database.
type AttendanceRecord struct {
	ID          int              `json:"id"`
	StudentID   int              `json:"student_id"`
	StudentName string           `json:"student_name"`
	RollNo      string           `json:"roll_no"`
	ClassName   string           `json:"class_name"`
	Date        string           `json:"date"`
	Status      AttendanceStatus `json:"status"`
	CheckInTime *string          `json:"check_in_time"`
	Remark      *string          `json:"remarks"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// MarkAttendanceRequest is the payload for marking today's attendance.
type MarkAttendanceRequest struct {
	StudentID   int    `json:"student_id" binding:"required"`
	Status      string `json:"status" binding:"required"`
	CheckInTime string `json:"check_in_time" binding:"omitempty"`
	Remark      string `json:"remarks" binding:"omitempty,max=255"`
}

// StudentStats summarizes one student's records over a trailing window.
type StudentStats struct {
	TotalDays  int     `json:"total_days"`
	Present    int     `json:"present"`
	Absent     int     `json:"absent"`
	Late       int     `json:"late"`
	Percentage float64 `json:"attendance_percentage"`
}

// OrgSnapshot is the organization-wide aggregate for one calendar day.
type OrgSnapshot struct {
	Date           string  `json:"date"`
	TotalStudents  int     `json:"total_students"`
	PresentToday   int     `json:"present_today"`
	AbsentToday    int     `json:"absent_today"`
	LateToday      int     `json:"late_today"`
	NotMarked      int     `json:"not_marked"`
	AttendanceRate float64 `json:"attendance_rate"`
}
