package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/pkg/apperrors"
	"github.com/mgdelacruz/regisys/internal/pkg/dberrors"
)

// studentNumberConstraint is the unique constraint backing student numbers.
// The repository translates violations of it into a typed conflict so nothing
// above this layer sees store error codes.
const studentNumberConstraint = "students_student_number_key"

// studentColumns is the column list shared by every student SELECT
const studentColumns = `
	id,
	student_number,
	first_name,
	last_name,
	email,
	COALESCE(contact_number, ''),
	program,
	year_level,
	TO_CHAR(admission_date, 'YYYY-MM-DD'),
	status,
	updated_at
`

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

func scanStudent(row pgx.Row) (*models.Student, error) {
	var student models.Student
	err := row.Scan(
		&student.ID,
		&student.StudentNumber,
		&student.FirstName,
		&student.LastName,
		&student.Email,
		&student.ContactNumber,
		&student.Program,
		&student.YearLevel,
		&student.AdmissionDate,
		&student.Status,
		&student.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &student, nil
}

// GetAll retrieves all student records, most recently updated first
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students ORDER BY updated_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing students: %w", err)
	}
	defer rows.Close()

	var students []*models.Student
	for rows.Next() {
		student, err := scanStudent(rows)
		if err != nil {
			return nil, err
		}
		students = append(students, student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// GetByID retrieves a student record by ID
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.Student, error) {
	query := `SELECT ` + studentColumns + ` FROM students WHERE id = $1`

	student, err := scanStudent(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	return student, nil
}

// Create inserts a new student record and fills in the generated id.
// A duplicate student number surfaces as apperrors.ErrStudentNumberExists.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (
			student_number, first_name, last_name, email, contact_number,
			program, year_level, admission_date, status
		)
		VALUES ($1, $2, $3, $4, NULLIF($5, ''), $6, $7, $8, $9)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		student.StudentNumber,
		student.FirstName,
		student.LastName,
		student.Email,
		student.ContactNumber,
		student.Program,
		student.YearLevel,
		student.AdmissionDate,
		student.Status,
	).Scan(&student.ID)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentNumberConstraint) {
			return apperrors.ErrStudentNumberExists
		}
		return fmt.Errorf("error creating student: %w", err)
	}

	return nil
}

// Update replaces every column of a student record. Zero rows affected means
// the id does not exist. Conflict mapping matches Create.
func (r *StudentRepository) Update(ctx context.Context, id int64, student *models.Student) error {
	query := `
		UPDATE students
		SET
			student_number = $1,
			first_name = $2,
			last_name = $3,
			email = $4,
			contact_number = NULLIF($5, ''),
			program = $6,
			year_level = $7,
			admission_date = $8,
			status = $9,
			updated_at = NOW()
		WHERE id = $10
	`

	cmdTag, err := r.db.Exec(ctx, query,
		student.StudentNumber,
		student.FirstName,
		student.LastName,
		student.Email,
		student.ContactNumber,
		student.Program,
		student.YearLevel,
		student.AdmissionDate,
		student.Status,
		id,
	)

	if err != nil {
		if dberrors.IsDuplicateConstraintError(err, studentNumberConstraint) {
			return apperrors.ErrStudentNumberExists
		}
		return fmt.Errorf("error updating student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Delete removes a student record by ID
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrStudentNotFound
	}

	return nil
}

// Summary aggregates the students table: total count, per-status breakdown,
// and the five largest programs by headcount.
func (r *StudentRepository) Summary(ctx context.Context) (*models.StudentSummary, error) {
	summary := &models.StudentSummary{
		StatusBreakdown: []models.StatusCount{},
		TopPrograms:     []models.ProgramCount{},
	}

	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&summary.Total); err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	statusRows, err := r.db.Query(ctx, `SELECT status, COUNT(*) FROM students GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("error grouping statuses: %w", err)
	}
	defer statusRows.Close()

	for statusRows.Next() {
		var sc models.StatusCount
		if err := statusRows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, err
		}
		summary.StatusBreakdown = append(summary.StatusBreakdown, sc)
	}
	if err := statusRows.Err(); err != nil {
		return nil, err
	}

	programRows, err := r.db.Query(ctx, `
		SELECT program, COUNT(*) AS count
		FROM students
		GROUP BY program
		ORDER BY count DESC
		LIMIT 5
	`)
	if err != nil {
		return nil, fmt.Errorf("error ranking programs: %w", err)
	}
	defer programRows.Close()

	for programRows.Next() {
		var pc models.ProgramCount
		if err := programRows.Scan(&pc.Program, &pc.Count); err != nil {
			return nil, err
		}
		summary.TopPrograms = append(summary.TopPrograms, pc)
	}
	if err := programRows.Err(); err != nil {
		return nil, err
	}

	return summary, nil
}
