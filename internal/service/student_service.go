package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/classtrack/attendance-backend/internal/model"
	"github.com/classtrack/attendance-backend/internal/repository"
)

// StudentService handles roster business logic.
type StudentService struct {
	studentRepo *repository.StudentRepository
}

// NewStudentService creates a new StudentService.
func NewStudentService(studentRepo *repository.StudentRepository) *StudentService {
	return &StudentService{studentRepo: studentRepo}
}

// GetByID retrieves a student by ID.
func (s *StudentService) GetByID(ctx context.Context, id int) (*model.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return student, nil
}

// List retrieves the whole roster.
func (s *StudentService) List(ctx context.Context) ([]model.Student, error) {
	return s.studentRepo.List(ctx)
}

// Search finds students by name or roll number substring.
func (s *StudentService) Search(ctx context.Context, term string) ([]model.Student, error) {
	return s.studentRepo.Search(ctx, term)
}

// Create adds a student to the roster.
func (s *StudentService) Create(ctx context.Context, req model.CreateStudentRequest) (*model.Student, error) {
	student := &model.Student{
		RollNo:    req.RollNo,
		Name:      req.Name,
		ClassName: req.ClassName,
		Email:     req.Email,
		Phone:     req.Phone,
	}
	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}
	return student, nil
}

// Update modifies roster fields; omitted fields keep their current value.
func (s *StudentService) Update(ctx context.Context, id int, req model.UpdateStudentRequest) (*model.Student, error) {
	err := s.studentRepo.Update(ctx, id, req.Name, req.ClassName, req.Email, req.Phone)
	if err != nil {
		if isNoRows(err) {
			return nil, ErrStudentNotFound
		}
		return nil, err
	}
	return s.GetByID(ctx, id)
}

// Delete removes a student and, through the cascade, their entire
// attendance history.
func (s *StudentService) Delete(ctx context.Context, id int) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		if isNoRows(err) {
			return ErrStudentNotFound
		}
		return err
	}
	return nil
}

func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
