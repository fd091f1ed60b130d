package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classtrack/attendance-backend/internal/model"
)

// ErrStudentMissing reports an upsert against a student that no longer
// exists. The existence check and the insert are separate statements, so a
// concurrent roster delete can land between them; the FK turns that race
// into this sentinel instead of a generic failure.
var ErrStudentMissing = errors.New("student does not exist")

// recordColumns is the joined projection every ledger query returns. Date
// and check-in are rendered to their wire text forms by the database so no
// timezone arithmetic happens in Go.
const recordColumns = `
	a.id, a.student_id, s.name, s.roll_no, s.class_name,
	to_char(a.date, 'YYYY-MM-DD'), a.status,
	to_char(a.check_in_time, 'HH24:MI'), a.remarks,
	a.created_at, a.updated_at`

// AttendanceRepository is the sole writer of attendance state. The
// UNIQUE (student_id, date) constraint backs the one-record-per-day rule.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository creates a new AttendanceRepository.
func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Upsert atomically creates or overwrites the record for (studentID, date).
// A concurrent insert for the same pair lands on the conflict arm instead of
// failing, so exactly one row survives and the last committed writer wins.
// The returned flag reports whether a new row was inserted.
func (r *AttendanceRepository) Upsert(
	ctx context.Context,
	studentID int,
	date time.Time,
	status model.AttendanceStatus,
	checkIn string,
	remark *string,
) (*model.AttendanceRecord, bool, error) {
	rec := &model.AttendanceRecord{}
	var created bool

	// xmax = 0 only holds for freshly inserted tuples, which distinguishes
	// the insert arm from the update arm without a second round trip.
	err := r.pool.QueryRow(ctx,
		`WITH upserted AS (
			INSERT INTO attendance_records (student_id, date, status, check_in_time, remarks)
			VALUES ($1, $2, $3, $4::time, $5)
			ON CONFLICT (student_id, date) DO UPDATE
			SET status = EXCLUDED.status,
			    check_in_time = EXCLUDED.check_in_time,
			    remarks = EXCLUDED.remarks,
			    updated_at = CURRENT_TIMESTAMP
			RETURNING id, student_id, date, status, check_in_time, remarks,
			          created_at, updated_at, (xmax = 0) AS inserted
		)
		SELECT `+recordColumns+`, a.inserted
		FROM upserted a
		JOIN students s ON s.id = a.student_id`,
		studentID, date, string(status), checkIn, remark,
	).Scan(
		&rec.ID, &rec.StudentID, &rec.StudentName, &rec.RollNo, &rec.ClassName,
		&rec.Date, &rec.Status, &rec.CheckInTime, &rec.Remark,
		&rec.CreatedAt, &rec.UpdatedAt, &created,
	)
	if err != nil {
		return nil, false, mapStudentFKErr(err)
	}
	return rec, created, nil
}

// mapStudentFKErr translates a student foreign-key violation into
// ErrStudentMissing.
func mapStudentFKErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return ErrStudentMissing
	}
	return err
}

// SnapshotByDate reads the roster size and the day's records inside one
// read-only repeatable-read transaction, so both come from the same
// database snapshot even while marks and roster writes land concurrently.
func (r *AttendanceRepository) SnapshotByDate(ctx context.Context, date time.Time) (int, []model.AttendanceRecord, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return 0, nil, err
	}
	defer tx.Rollback(ctx)

	var total int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&total); err != nil {
		return 0, nil, err
	}

	rows, err := tx.Query(ctx,
		`SELECT `+recordColumns+`
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id
		 WHERE a.date = $1`, date)
	if err != nil {
		return 0, nil, err
	}
	defer rows.Close()

	records, err := scanRecords(rows)
	if err != nil {
		return 0, nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, nil, err
	}
	return total, records, nil
}

// Delete removes a record unconditionally. Returns pgx.ErrNoRows when the
// record does not exist.
func (r *AttendanceRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// ListByDate returns all records for one calendar date. Order is not part
// of the contract.
func (r *AttendanceRepository) ListByDate(ctx context.Context, date time.Time) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+`
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id
		 WHERE a.date = $1`, date)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListByStudent returns one student's records within the inclusive window,
// newest first.
func (r *AttendanceRepository) ListByStudent(ctx context.Context, studentID int, from, to time.Time) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+`
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id
		 WHERE a.student_id = $1 AND a.date >= $2 AND a.date <= $3
		 ORDER BY a.date DESC`, studentID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// ListFiltered returns all records matching the filter, date descending
// with insertion order breaking ties. Consumers rely on this ordering.
func (r *AttendanceRepository) ListFiltered(ctx context.Context, f AttendanceFilter) ([]model.AttendanceRecord, error) {
	where, args := f.whereClause(1)

	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+`
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id`+where+`
		 ORDER BY a.date DESC, a.id ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanRecords(rows)
}

// StreamFiltered walks the filtered result set row by row in the same order
// as ListFiltered, invoking fn for each record without materializing the
// whole set. The export path uses this to bound memory on large ranges.
func (r *AttendanceRepository) StreamFiltered(ctx context.Context, f AttendanceFilter, fn func(model.AttendanceRecord) error) error {
	where, args := f.whereClause(1)

	rows, err := r.pool.Query(ctx,
		`SELECT `+recordColumns+`
		 FROM attendance_records a
		 JOIN students s ON s.id = a.student_id`+where+`
		 ORDER BY a.date DESC, a.id ASC`, args...)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return err
		}
		if err := fn(rec); err != nil {
			return err
		}
	}
	return rows.Err()
}

func scanRecord(rows pgx.Rows) (model.AttendanceRecord, error) {
	var rec model.AttendanceRecord
	err := rows.Scan(
		&rec.ID, &rec.StudentID, &rec.StudentName, &rec.RollNo, &rec.ClassName,
		&rec.Date, &rec.Status, &rec.CheckInTime, &rec.Remark,
		&rec.CreatedAt, &rec.UpdatedAt,
	)
	return rec, err
}

func scanRecords(rows pgx.Rows) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
