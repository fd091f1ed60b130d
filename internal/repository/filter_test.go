package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/classtrack/attendance-backend/internal/model"
)

func TestWhereClause_Unconstrained(t *testing.T) {
	where, args := AttendanceFilter{}.whereClause(1)

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestWhereClause_SingleCondition(t *testing.T) {
	class := "10-A"
	where, args := AttendanceFilter{ClassName: &class}.whereClause(1)

	assert.Equal(t, " WHERE s.class_name = $1", where)
	assert.Equal(t, []any{"10-A"}, args)
}

func TestWhereClause_AllConditions(t *testing.T) {
	class := "10-A"
	status := model.StatusPresent
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	f := AttendanceFilter{ClassName: &class, Status: &status, DateFrom: &from, DateTo: &to}
	where, args := f.whereClause(1)

	assert.Equal(t,
		" WHERE s.class_name = $1 AND a.status = $2 AND a.date >= $3 AND a.date <= $4",
		where)
	assert.Equal(t, []any{"10-A", "present", from, to}, args)
}

func TestWhereClause_ArgNumberingFollowsStartIdx(t *testing.T) {
	status := model.StatusLate
	where, args := AttendanceFilter{Status: &status}.whereClause(3)

	assert.Equal(t, " WHERE a.status = $3", where)
	assert.Len(t, args, 1)
}

func TestWhereClause_SkipsAbsentFields(t *testing.T) {
	// An absent filter means "no constraint", never "match nothing".
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	where, args := AttendanceFilter{DateFrom: &from}.whereClause(1)

	assert.Equal(t, " WHERE a.date >= $1", where)
	assert.Equal(t, []any{from}, args)
}
