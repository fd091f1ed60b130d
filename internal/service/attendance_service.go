package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"

	"github.com/classtrack/attendance-backend/internal/model"
	"github.com/classtrack/attendance-backend/internal/repository"
)

var (
	ErrInvalidStatus   = errors.New("invalid status: must be one of present, absent, late")
	ErrInvalidDate     = errors.New("invalid date: expected format YYYY-MM-DD")
	ErrInvalidTime     = errors.New("invalid check-in time: expected format HH:MM")
	ErrStudentNotFound = errors.New("student not found")
	ErrRecordNotFound  = errors.New("attendance record not found")
)

// AttendanceService owns the ledger's business rules: status validation,
// student existence, check-in defaulting and the shared filter parsing.
// The current date/time always arrives from the caller so nothing here
// reads the ambient clock.
type AttendanceService struct {
	attendanceRepo *repository.AttendanceRepository
	studentRepo    *repository.StudentRepository
	log            zerolog.Logger
}

// NewAttendanceService creates a new AttendanceService.
func NewAttendanceService(
	attendanceRepo *repository.AttendanceRepository,
	studentRepo *repository.StudentRepository,
	log zerolog.Logger,
) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
		log:            log.With().Str("component", "attendance_service").Logger(),
	}
}

// Mark records a student's status for the calendar date of now. The first
// mark creates the record; any later mark for the same day overwrites it in
// place. The returned flag reports whether a new record was created.
func (s *AttendanceService) Mark(ctx context.Context, req model.MarkAttendanceRequest, now time.Time) (*model.AttendanceRecord, bool, error) {
	status := model.AttendanceStatus(req.Status)
	if !status.Valid() {
		return nil, false, fmt.Errorf("%w: got %q", ErrInvalidStatus, req.Status)
	}

	checkIn := req.CheckInTime
	if checkIn == "" {
		checkIn = now.Format(model.TimeLayout)
	} else if err := validateCheckIn(checkIn); err != nil {
		return nil, false, err
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		if isNoRows(err) {
			return nil, false, ErrStudentNotFound
		}
		return nil, false, err
	}

	var remark *string
	if req.Remark != "" {
		remark = &req.Remark
	}

	date := truncateToDate(now)
	rec, created, err := s.attendanceRepo.Upsert(ctx, req.StudentID, date, status, checkIn, remark)
	if err != nil {
		// The student can be deleted between the existence check above and
		// the insert; the FK catches that window.
		if errors.Is(err, repository.ErrStudentMissing) {
			return nil, false, ErrStudentNotFound
		}
		return nil, false, err
	}

	s.log.Debug().
		Int("student_id", req.StudentID).
		Str("date", rec.Date).
		Str("status", string(status)).
		Bool("created", created).
		Msg("attendance marked")

	return rec, created, nil
}

// Delete removes a record unconditionally.
func (s *AttendanceService) Delete(ctx context.Context, id int) error {
	if err := s.attendanceRepo.Delete(ctx, id); err != nil {
		if isNoRows(err) {
			return ErrRecordNotFound
		}
		return err
	}
	return nil
}

// ListByDate returns all records for one calendar date given in wire form.
func (s *AttendanceService) ListByDate(ctx context.Context, dateText string) ([]model.AttendanceRecord, error) {
	date, err := parseDate(dateText)
	if err != nil {
		return nil, err
	}
	return s.attendanceRepo.ListByDate(ctx, date)
}

// StudentHistory returns one student's records over the trailing window of
// days ending today, newest first, together with the computed statistics.
func (s *AttendanceService) StudentHistory(ctx context.Context, studentID, days int, today time.Time) (*model.Student, []model.AttendanceRecord, model.StudentStats, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		if isNoRows(err) {
			return nil, nil, model.StudentStats{}, ErrStudentNotFound
		}
		return nil, nil, model.StudentStats{}, err
	}

	to := truncateToDate(today)
	from := to.AddDate(0, 0, -days)

	records, err := s.attendanceRepo.ListByStudent(ctx, studentID, from, to)
	if err != nil {
		return nil, nil, model.StudentStats{}, err
	}

	return student, records, ComputeStudentStats(records), nil
}

// Snapshot computes the organization-wide aggregate for today. The roster
// count and the day's records are read in one transaction so concurrent
// marks cannot skew the percentages between the two reads.
func (s *AttendanceService) Snapshot(ctx context.Context, today time.Time) (model.OrgSnapshot, error) {
	date := truncateToDate(today)

	total, todayRecords, err := s.attendanceRepo.SnapshotByDate(ctx, date)
	if err != nil {
		return model.OrgSnapshot{}, err
	}

	snap, clamped := ComputeOrgSnapshot(total, todayRecords)
	if clamped {
		s.log.Warn().
			Int("total_students", total).
			Int("today_records", len(todayRecords)).
			Msg("more attendance records than students for today")
	}
	snap.Date = date.Format(model.DateLayout)
	return snap, nil
}

// FilterParams carries the raw optional filter inputs as received on the
// wire. Empty string means "no constraint".
type FilterParams struct {
	ClassName string
	Status    string
	DateFrom  string
	DateTo    string
}

// ParseFilter validates the raw inputs into the predicate set shared by the
// query and export paths. Malformed dates and unknown statuses are rejected
// here, before any row is touched.
func (s *AttendanceService) ParseFilter(p FilterParams) (repository.AttendanceFilter, error) {
	var f repository.AttendanceFilter

	if p.ClassName != "" {
		f.ClassName = &p.ClassName
	}
	if p.Status != "" {
		status := model.AttendanceStatus(p.Status)
		if !status.Valid() {
			return f, fmt.Errorf("%w: got %q", ErrInvalidStatus, p.Status)
		}
		f.Status = &status
	}
	if p.DateFrom != "" {
		from, err := parseDate(p.DateFrom)
		if err != nil {
			return f, err
		}
		f.DateFrom = &from
	}
	if p.DateTo != "" {
		to, err := parseDate(p.DateTo)
		if err != nil {
			return f, err
		}
		f.DateTo = &to
	}
	return f, nil
}

// ListFiltered returns the records matching the filter, date descending.
func (s *AttendanceService) ListFiltered(ctx context.Context, f repository.AttendanceFilter) ([]model.AttendanceRecord, error) {
	return s.attendanceRepo.ListFiltered(ctx, f)
}

// ExportCSV streams the filtered result set to w as CSV, header first, in
// the order the filter delivers it. Rows flow straight from the database
// cursor to the writer.
func (s *AttendanceService) ExportCSV(ctx context.Context, w io.Writer, f repository.AttendanceFilter) error {
	ew, err := newExportWriter(w)
	if err != nil {
		return err
	}

	if err := s.attendanceRepo.StreamFiltered(ctx, f, ew.write); err != nil {
		return err
	}
	return ew.flush()
}

// parseDate accepts only the exact zero-padded wire form. time.Parse alone
// is too lenient: it takes "2026-3-4" for "2006-01-02", so the parsed value
// is rendered back and compared against the input.
func parseDate(text string) (time.Time, error) {
	date, err := time.Parse(model.DateLayout, text)
	if err != nil || date.Format(model.DateLayout) != text {
		return time.Time{}, fmt.Errorf("%w: got %q", ErrInvalidDate, text)
	}
	return date, nil
}

// validateCheckIn enforces the exact zero-padded HH:MM form, same
// round-trip check as parseDate.
func validateCheckIn(text string) error {
	parsed, err := time.Parse(model.TimeLayout, text)
	if err != nil || parsed.Format(model.TimeLayout) != text {
		return fmt.Errorf("%w: got %q", ErrInvalidTime, text)
	}
	return nil
}

// truncateToDate drops the time-of-day component, keeping only the calendar
// date resolved at the request boundary.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
