package service

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/classtrack/attendance-backend/internal/model"
)

func TestExportWriter_EmptySetStillHasHeader(t *testing.T) {
	var buf bytes.Buffer

	ew, err := newExportWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, ew.flush())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, exportHeader, rows[0])
}

func TestExportWriter_RowOrderPreserved(t *testing.T) {
	var buf bytes.Buffer

	ew, err := newExportWriter(&buf)
	require.NoError(t, err)

	checkIn := "08:15"
	remark := "traffic"
	first := model.AttendanceRecord{
		RollNo: "R001", StudentName: "Aiden Clarke", ClassName: "10-A",
		Date: "2026-03-02", Status: model.StatusLate,
		CheckInTime: &checkIn, Remark: &remark,
	}
	second := model.AttendanceRecord{
		RollNo: "R002", StudentName: "Bella Hart", ClassName: "10-B",
		Date: "2026-03-01", Status: model.StatusPresent,
	}

	require.NoError(t, ew.write(first))
	require.NoError(t, ew.write(second))
	require.NoError(t, ew.flush())

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"R001", "Aiden Clarke", "10-A", "2026-03-02", "late", "08:15", "traffic"}, rows[1])
	assert.Equal(t, []string{"R002", "Bella Hart", "10-B", "2026-03-01", "present", "-", "-"}, rows[2])
}

func TestExportRow_Placeholders(t *testing.T) {
	rec := model.AttendanceRecord{
		RollNo: "R003", StudentName: "Caleb Moore", ClassName: "11-A",
		Date: "2026-02-28", Status: model.StatusAbsent,
	}

	row := exportRow(rec)

	assert.Equal(t, "-", row[5])
	assert.Equal(t, "-", row[6])
}

func TestExportRow_EmptyRemarkUsesPlaceholder(t *testing.T) {
	empty := ""
	rec := model.AttendanceRecord{
		RollNo: "R004", StudentName: "Daisy Nguyen", ClassName: "10-A",
		Date: "2026-02-28", Status: model.StatusPresent, Remark: &empty,
	}

	assert.Equal(t, "-", exportRow(rec)[6])
}
