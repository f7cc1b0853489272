// Package validation turns untrusted student payloads into canonical records.
package validation

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/app/models/dto"
	"github.com/mgdelacruz/regisys/internal/pkg/apperrors"
)

// Rejection messages, part of the API contract with the portal client
const (
	MsgFieldsRequired = "All fields are required."
	MsgInvalidEmail   = "Please provide a valid school email address."
	MsgInvalidYear    = "Year level must be a number between 1 and 6."
	MsgInvalidDate    = "Admission date is invalid."
)

// emailPattern requires one non-whitespace local part, an @, and a dot
// somewhere in the domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// admissionDateLayouts are the accepted input formats, tried in order.
// Output is always normalized to the first layout.
var admissionDateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
}

const (
	minYearLevel = 1
	maxYearLevel = 6
)

// ParseStudentPayload validates and normalizes a raw student payload. It is
// side-effect-free and shared by the create and update paths. Checks run in a
// fixed order and the first failure wins. On success every string field is
// trimmed, email and status are lowercased, the admission date is normalized
// to YYYY-MM-DD, and an unrecognized status silently becomes "enrolled".
func ParseStudentPayload(body dto.StudentPayload) (*models.Student, error) {
	studentNumber := strings.TrimSpace(body.StudentNumber)
	firstName := strings.TrimSpace(body.FirstName)
	lastName := strings.TrimSpace(body.LastName)
	email := strings.ToLower(strings.TrimSpace(body.Email))
	contactNumber := strings.TrimSpace(body.ContactNumber)
	program := strings.TrimSpace(body.Program)
	admissionDate := strings.TrimSpace(body.AdmissionDate)
	status := strings.ToLower(strings.TrimSpace(body.Status))

	if studentNumber == "" || firstName == "" || lastName == "" ||
		program == "" || status == "" || email == "" || admissionDate == "" {
		return nil, apperrors.NewValidationError(MsgFieldsRequired)
	}

	if !emailPattern.MatchString(email) {
		return nil, apperrors.NewValidationError(MsgInvalidEmail)
	}

	yearLevel, ok := parseYearLevel(body.YearLevel)
	if !ok || yearLevel < minYearLevel || yearLevel > maxYearLevel {
		return nil, apperrors.NewValidationError(MsgInvalidYear)
	}

	normalizedDate, ok := parseAdmissionDate(admissionDate)
	if !ok {
		return nil, apperrors.NewValidationError(MsgInvalidDate)
	}

	return &models.Student{
		StudentNumber: studentNumber,
		FirstName:     firstName,
		LastName:      lastName,
		Email:         email,
		ContactNumber: contactNumber,
		Program:       program,
		YearLevel:     yearLevel,
		AdmissionDate: normalizedDate,
		Status:        models.NormalizeStatus(status),
	}, nil
}

// parseYearLevel coerces the year level from the forms the client sends:
// a JSON number, a numeric string, or an int when called in-process.
func parseYearLevel(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}

// parseAdmissionDate parses a date string against the accepted layouts and
// normalizes it to YYYY-MM-DD.
func parseAdmissionDate(raw string) (string, bool) {
	for _, layout := range admissionDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}
