package service

import (
	"encoding/csv"
	"io"

	"github.com/classtrack/attendance-backend/internal/model"
)

// exportPlaceholder marks absent optional fields in exported rows.
const exportPlaceholder = "-"

// exportHeader is the fixed column order of the tabular export.
var exportHeader = []string{"Roll No.", "Student Name", "Class", "Date", "Status", "Check-in Time", "Remarks"}

// exportWriter renders attendance records as CSV rows. The header goes out
// on construction so even an empty result set produces a valid file.
type exportWriter struct {
	cw *csv.Writer
}

func newExportWriter(w io.Writer) (*exportWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return nil, err
	}
	return &exportWriter{cw: cw}, nil
}

func (e *exportWriter) write(rec model.AttendanceRecord) error {
	return e.cw.Write(exportRow(rec))
}

func (e *exportWriter) flush() error {
	e.cw.Flush()
	return e.cw.Error()
}

func exportRow(rec model.AttendanceRecord) []string {
	checkIn := exportPlaceholder
	if rec.CheckInTime != nil {
		checkIn = *rec.CheckInTime
	}
	remark := exportPlaceholder
	if rec.Remark != nil && *rec.Remark != "" {
		remark = *rec.Remark
	}
	return []string{
		rec.RollNo,
		rec.StudentName,
		rec.ClassName,
		rec.Date,
		string(rec.Status),
		checkIn,
		remark,
	}
}
