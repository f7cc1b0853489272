package dto

// StudentPayload is the raw body of POST /students and PUT /students/:id.
// Fields are untrusted; the validation package turns a payload into a
// normalized models.Student or a rejection. YearLevel is `any` because the
// portal client has historically sent it as either a JSON number or a
// numeric string.
type StudentPayload struct {
	StudentNumber string `json:"studentNumber"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	ContactNumber string `json:"contactNumber"`
	Program       string `json:"program"`
	YearLevel     any    `json:"yearLevel"`
	AdmissionDate string `json:"admissionDate"`
	Status        string `json:"status"`
}
