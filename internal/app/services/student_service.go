package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/app/models/dto"
	"github.com/mgdelacruz/regisys/internal/pkg/validation"
)

// StudentStore is the persistence contract the student service depends on.
// *repositories.StudentRepository satisfies it; tests substitute a stub.
type StudentStore interface {
	GetAll(ctx context.Context) ([]*models.Student, error)
	GetByID(ctx context.Context, id int64) (*models.Student, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, id int64, student *models.Student) error
	Delete(ctx context.Context, id int64) error
	Summary(ctx context.Context) (*models.StudentSummary, error)
}

// StudentService handles student record operations
type StudentService interface {
	ListStudents(ctx context.Context) ([]*models.Student, error)
	GetStudent(ctx context.Context, id int64) (*models.Student, error)
	CreateStudent(ctx context.Context, payload dto.StudentPayload) (*models.Student, error)
	UpdateStudent(ctx context.Context, id int64, payload dto.StudentPayload) (*models.Student, error)
	DeleteStudent(ctx context.Context, id int64) error
	GetSummary(ctx context.Context) (*models.StudentSummary, error)
}

type studentService struct {
	store  StudentStore
	logger zerolog.Logger
}

// NewStudentService creates a new student service instance
func NewStudentService(store StudentStore, logger zerolog.Logger) StudentService {
	return &studentService{
		store:  store,
		logger: logger,
	}
}

// ListStudents returns all student records, newest update first
func (s *studentService) ListStudents(ctx context.Context) ([]*models.Student, error) {
	return s.store.GetAll(ctx)
}

// GetStudent returns a single student record by id
func (s *studentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	return s.store.GetByID(ctx, id)
}

// CreateStudent validates and normalizes the payload, then persists it
func (s *studentService) CreateStudent(ctx context.Context, payload dto.StudentPayload) (*models.Student, error) {
	student, err := validation.ParseStudentPayload(payload)
	if err != nil {
		return nil, err
	}

	if err := s.store.Create(ctx, student); err != nil {
		return nil, err
	}

	s.logger.Info().
		Int64("id", student.ID).
		Str("studentNumber", student.StudentNumber).
		Msg("Student created")

	return student, nil
}

// UpdateStudent validates and normalizes the payload, then replaces every
// field of the record. Create and update share the same validation path.
func (s *studentService) UpdateStudent(ctx context.Context, id int64, payload dto.StudentPayload) (*models.Student, error) {
	student, err := validation.ParseStudentPayload(payload)
	if err != nil {
		return nil, err
	}

	if err := s.store.Update(ctx, id, student); err != nil {
		return nil, err
	}

	student.ID = id
	s.logger.Info().
		Int64("id", id).
		Str("studentNumber", student.StudentNumber).
		Msg("Student updated")

	return student, nil
}

// DeleteStudent removes a student record by id
func (s *studentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info().Int64("id", id).Msg("Student deleted")
	return nil
}

// GetSummary aggregates the students table for the dashboard
func (s *studentService) GetSummary(ctx context.Context) (*models.StudentSummary, error) {
	return s.store.Summary(ctx)
}
