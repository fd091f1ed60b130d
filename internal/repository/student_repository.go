package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/classtrack/attendance-backend/internal/model"
)

var (
	ErrDuplicateRollNo = errors.New("student with this roll number already exists")
	ErrDuplicateEmail  = errors.New("student with this email already exists")
)

const studentColumns = `id, roll_no, name, class_name, email, phone, created_at, updated_at`

// StudentRepository handles roster data access.
type StudentRepository struct {
	pool *pgxpool.Pool
}

// NewStudentRepository creates a new StudentRepository.
func NewStudentRepository(pool *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{pool: pool}
}

// GetByID retrieves a student by ID.
func (r *StudentRepository) GetByID(ctx context.Context, id int) (*model.Student, error) {
	s := &model.Student{}
	err := r.pool.QueryRow(ctx,
		`SELECT `+studentColumns+` FROM students WHERE id = $1`, id,
	).Scan(&s.ID, &s.RollNo, &s.Name, &s.ClassName, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// List retrieves the whole roster ordered by roll number.
func (r *StudentRepository) List(ctx context.Context) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students ORDER BY roll_no`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// Search finds students whose name or roll number contains the term,
// case-insensitive.
func (r *StudentRepository) Search(ctx context.Context, term string) ([]model.Student, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT `+studentColumns+` FROM students
		 WHERE name ILIKE '%' || $1 || '%' OR roll_no ILIKE '%' || $1 || '%'
		 ORDER BY roll_no`, term)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanStudents(rows)
}

// DistinctClasses lists the distinct class labels present on the roster.
func (r *StudentRepository) DistinctClasses(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT DISTINCT class_name FROM students ORDER BY class_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var classes []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		classes = append(classes, c)
	}
	return classes, rows.Err()
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, s *model.Student) error {
	err := r.pool.QueryRow(ctx,
		`INSERT INTO students (roll_no, name, class_name, email, phone)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, created_at, updated_at`,
		s.RollNo, s.Name, s.ClassName, s.Email, s.Phone,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return mapDuplicateErr(err)
	}
	return nil
}

// Update modifies roster fields; nil arguments keep the current value.
func (r *StudentRepository) Update(ctx context.Context, id int, name, className, email, phone *string) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE students
		 SET name = COALESCE($1, name),
		     class_name = COALESCE($2, class_name),
		     email = COALESCE($3, email),
		     phone = COALESCE($4, phone),
		     updated_at = CURRENT_TIMESTAMP
		 WHERE id = $5`,
		name, className, email, phone, id,
	)
	if err != nil {
		return mapDuplicateErr(err)
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// Delete removes a student. Attendance history goes with it via the
// ON DELETE CASCADE constraint.
func (r *StudentRepository) Delete(ctx context.Context, id int) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func scanStudents(rows pgx.Rows) ([]model.Student, error) {
	var students []model.Student
	for rows.Next() {
		var s model.Student
		if err := rows.Scan(&s.ID, &s.RollNo, &s.Name, &s.ClassName, &s.Email, &s.Phone, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

// mapDuplicateErr translates unique-violation errors into the matching
// sentinel by constraint name.
func mapDuplicateErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "students_roll_no_key":
			return ErrDuplicateRollNo
		case "students_email_key":
			return ErrDuplicateEmail
		}
	}
	return err
}
