package repository

import (
	"strconv"
	"strings"
	"time"

	"github.com/classtrack/attendance-backend/internal/model"
)

// AttendanceFilter is the conjunctive predicate set shared by the filtered
// query endpoint and the export path. A nil field means "no constraint";
// the composed predicate does not depend on which fields are set first.
type AttendanceFilter struct {
	ClassName *string
	Status    *model.AttendanceStatus
	DateFrom  *time.Time
	DateTo    *time.Time
}

// whereClause renders the filter as a SQL WHERE fragment (empty string when
// unconstrained) plus its positional arguments, numbering from startIdx.
// Class matches exactly against the roster label; an unknown label simply
// selects zero rows.
func (f AttendanceFilter) whereClause(startIdx int) (string, []any) {
	var conds []string
	var args []any
	idx := startIdx

	if f.ClassName != nil {
		conds = append(conds, "s.class_name = $"+strconv.Itoa(idx))
		args = append(args, *f.ClassName)
		idx++
	}
	if f.Status != nil {
		conds = append(conds, "a.status = $"+strconv.Itoa(idx))
		args = append(args, string(*f.Status))
		idx++
	}
	if f.DateFrom != nil {
		conds = append(conds, "a.date >= $"+strconv.Itoa(idx))
		args = append(args, *f.DateFrom)
		idx++
	}
	if f.DateTo != nil {
		conds = append(conds, "a.date <= $"+strconv.Itoa(idx))
		args = append(args, *f.DateTo)
		idx++
	}

	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}
