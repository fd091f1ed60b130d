package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttendanceStatus_Valid(t *testing.T) {
	assert.True(t, StatusPresent.Valid())
	assert.True(t, StatusAbsent.Valid())
	assert.True(t, StatusLate.Valid())

	assert.False(t, AttendanceStatus("").Valid())
	assert.False(t, AttendanceStatus("holiday").Valid())
	assert.False(t, AttendanceStatus("Present").Valid())
	assert.False(t, AttendanceStatus("PRESENT").Valid())
}
