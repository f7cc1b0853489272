package models

import (
	"strings"
	"time"
)

// StudentStatus defines the enrollment status of a student record
type StudentStatus string

const (
	StatusEnrolled  StudentStatus = "enrolled"
	StatusLeave     StudentStatus = "leave"
	StatusGraduated StudentStatus = "graduated"
	StatusInactive  StudentStatus = "inactive"
)

// NormalizeStatus folds an arbitrary status string into a known StudentStatus.
// Anything outside the known set becomes StatusEnrolled.
func NormalizeStatus(status string) StudentStatus {
	s := StudentStatus(strings.ToLower(strings.TrimSpace(status)))
	switch s {
	case StatusEnrolled, StatusLeave, StatusGraduated, StatusInactive:
		return s
	default:
		return StatusEnrolled
	}
}

// Student defines the student model based on the 'students' table
type Student struct {
	ID            int64         `json:"id" db:"id" example:"1"`                                   // Unique identifier for the student record
	StudentNumber string        `json:"studentNumber" db:"student_number" example:"2025-0001"`    // Unique student number assigned by the registrar
	FirstName     string        `json:"firstName" db:"first_name" example:"Juan"`                 // Student's first name
	LastName      string        `json:"lastName" db:"last_name" example:"Dela Cruz"`              // Student's last name
	Email         string        `json:"email" db:"email" example:"juan@school.edu"`               // Student's email address (stored lowercased)
	ContactNumber string        `json:"contactNumber" db:"contact_number" example:"09171234567"`  // Contact number, may be empty
	Program       string        `json:"program" db:"program" example:"BS Computer Science"`       // Academic program
	YearLevel     int           `json:"yearLevel" db:"year_level" example:"2"`                    // Year level, 1 to 6
	AdmissionDate string        `json:"admissionDate" db:"admission_date" example:"2025-06-15"`   // Admission date, normalized to YYYY-MM-DD
	Status        StudentStatus `json:"status" db:"status" example:"enrolled"`                    // Enrollment status
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at" example:"2025-06-15T10:00:00Z"` // Refreshed by the store on every mutation
}

// StatusCount is one row of the per-status breakdown in the summary
type StatusCount struct {
	Status StudentStatus `json:"status"`
	Count  int64         `json:"count"`
}

// ProgramCount is one row of the top-programs ranking in the summary
type ProgramCount struct {
	Program string `json:"program"`
	Count   int64  `json:"count"`
}

// StudentSummary aggregates the students table for the dashboard
type StudentSummary struct {
	Total           int64          `json:"total"`
	StatusBreakdown []StatusCount  `json:"statusBreakdown"`
	TopPrograms     []ProgramCount `json:"topPrograms"`
}
