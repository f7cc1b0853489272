package validation

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/app/models/dto"
	"github.com/mgdelacruz/regisys/internal/pkg/apperrors"
)

func validPayload() dto.StudentPayload {
	return dto.StudentPayload{
		StudentNumber: "2025-0001",
		FirstName:     "  Juan ",
		LastName:      "Dela Cruz",
		Email:         " Juan@School.EDU ",
		ContactNumber: "09171234567",
		Program:       "BS Computer Science",
		YearLevel:     float64(2), // JSON numbers decode to float64
		AdmissionDate: "2025-06-15",
		Status:        "Enrolled",
	}
}

func TestParseStudentPayload_Normalizes(t *testing.T) {
	student, err := ParseStudentPayload(validPayload())
	require.NoError(t, err)

	require.Equal(t, "2025-0001", student.StudentNumber)
	require.Equal(t, "Juan", student.FirstName)
	require.Equal(t, "Dela Cruz", student.LastName)
	require.Equal(t, "juan@school.edu", student.Email)
	require.Equal(t, "BS Computer Science", student.Program)
	require.Equal(t, 2, student.YearLevel)
	require.Equal(t, "2025-06-15", student.AdmissionDate)
	require.Equal(t, models.StatusEnrolled, student.Status)
}

func TestParseStudentPayload_Idempotent(t *testing.T) {
	first, err := ParseStudentPayload(validPayload())
	require.NoError(t, err)

	// Feeding the normalized output back through must not change anything
	second, err := ParseStudentPayload(dto.StudentPayload{
		StudentNumber: first.StudentNumber,
		FirstName:     first.FirstName,
		LastName:      first.LastName,
		Email:         first.Email,
		ContactNumber: first.ContactNumber,
		Program:       first.Program,
		YearLevel:     first.YearLevel,
		AdmissionDate: first.AdmissionDate,
		Status:        string(first.Status),
	})
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestParseStudentPayload_RequiredFields(t *testing.T) {
	fields := []func(*dto.StudentPayload){
		func(p *dto.StudentPayload) { p.StudentNumber = "   " },
		func(p *dto.StudentPayload) { p.FirstName = "" },
		func(p *dto.StudentPayload) { p.LastName = "" },
		func(p *dto.StudentPayload) { p.Program = "" },
		func(p *dto.StudentPayload) { p.Status = "" },
		func(p *dto.StudentPayload) { p.Email = "" },
		func(p *dto.StudentPayload) { p.AdmissionDate = "" },
	}

	for _, blank := range fields {
		payload := validPayload()
		blank(&payload)
		_, err := ParseStudentPayload(payload)
		require.ErrorIs(t, err, apperrors.ErrValidationFailed)
		require.EqualError(t, err, MsgFieldsRequired)
	}
}

func TestParseStudentPayload_ContactNumberOptional(t *testing.T) {
	payload := validPayload()
	payload.ContactNumber = ""

	student, err := ParseStudentPayload(payload)
	require.NoError(t, err)
	require.Empty(t, student.ContactNumber)
}

func TestParseStudentPayload_Email(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"student@school.edu", true},
		{"abc", false},
		{"a@b", false},
		{"a b@c.d", false},
		{"@school.edu", false},
		{"student@.edu", false},
	}

	for _, tc := range cases {
		payload := validPayload()
		payload.Email = tc.email
		_, err := ParseStudentPayload(payload)
		if tc.ok {
			require.NoError(t, err, "email %q", tc.email)
		} else {
			require.EqualError(t, err, MsgInvalidEmail, "email %q", tc.email)
		}
	}
}

func TestParseStudentPayload_YearLevel(t *testing.T) {
	cases := []struct {
		name string
		year any
		ok   bool
	}{
		{"lower bound", float64(1), true},
		{"upper bound", float64(6), true},
		{"numeric string", "3", true},
		{"zero", float64(0), false},
		{"seven", float64(7), false},
		{"fractional", 2.5, false},
		{"word", "two", false},
		{"missing", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			payload.YearLevel = tc.year
			_, err := ParseStudentPayload(payload)
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.EqualError(t, err, MsgInvalidYear)
			}
		})
	}
}

func TestParseStudentPayload_AdmissionDate(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{"iso", "2025-06-15", "2025-06-15", true},
		{"slashes", "2025/06/15", "2025-06-15", true},
		{"us style", "06/15/2025", "2025-06-15", true},
		{"rfc3339", "2025-06-15T08:30:00Z", "2025-06-15", true},
		{"nonsense", "not-a-date", "", false},
		{"bad month", "2025-13-01", "", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			payload := validPayload()
			payload.AdmissionDate = tc.in
			student, err := ParseStudentPayload(payload)
			if tc.ok {
				require.NoError(t, err)
				require.Equal(t, tc.want, student.AdmissionDate)
			} else {
				require.EqualError(t, err, MsgInvalidDate)
			}
		})
	}
}

func TestParseStudentPayload_UnknownStatusCoerced(t *testing.T) {
	payload := validPayload()
	payload.Status = "withdrawn"

	student, err := ParseStudentPayload(payload)
	require.NoError(t, err)
	require.Equal(t, models.StatusEnrolled, student.Status)
}

func TestParseStudentPayload_KnownStatusesKept(t *testing.T) {
	for _, status := range []string{"enrolled", "LEAVE", "Graduated", "inactive"} {
		payload := validPayload()
		payload.Status = status
		student, err := ParseStudentPayload(payload)
		require.NoError(t, err)
		require.Equal(t, models.NormalizeStatus(status), student.Status)
	}
}
