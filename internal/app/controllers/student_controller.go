package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/mgdelacruz/regisys/internal/app/models"
	"github.com/mgdelacruz/regisys/internal/app/models/dto"
	"github.com/mgdelacruz/regisys/internal/app/services"
	"github.com/mgdelacruz/regisys/internal/middleware"
)

// StudentController handles student record endpoints
type StudentController struct {
	studentService services.StudentService
}

// NewStudentController creates a new StudentController
func NewStudentController(studentService services.StudentService) *StudentController {
	return &StudentController{
		studentService: studentService,
	}
}

// parseID extracts a numeric id path parameter, answering 400 on garbage
func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Student ID must be a valid number"))
		return 0, false
	}
	return id, true
}

// ListStudents returns all students
// @Summary List students
// @Description Retrieves all student records, most recently updated first
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Student
// @Failure 500 {object} dto.StatusResponse
// @Router /students [get]
func (ctrl *StudentController) ListStudents(c *gin.Context) {
	students, err := ctrl.studentService.ListStudents(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	// The client expects a bare array, never null
	if students == nil {
		students = []*models.Student{}
	}
	c.JSON(http.StatusOK, students)
}

// GetStudent returns one student by id
// @Summary Get student
// @Description Retrieves a single student record
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} models.Student
// @Failure 404 {object} dto.StatusResponse
// @Router /students/{id} [get]
func (ctrl *StudentController) GetStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	student, err := ctrl.studentService.GetStudent(c.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, student)
}

// CreateStudent validates and creates a student record
// @Summary Create student
// @Description Validates the payload and inserts a new student record
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.StudentPayload true "Student fields"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.StatusResponse "Validation failure"
// @Failure 409 {object} dto.StatusResponse "Duplicate student number"
// @Router /students [post]
func (ctrl *StudentController) CreateStudent(c *gin.Context) {
	var payload dto.StudentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if _, err := ctrl.studentService.CreateStudent(c.Request.Context(), payload); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Student added successfully"))
}

// UpdateStudent validates and fully replaces a student record
// @Summary Update student
// @Description Validates the payload and overwrites every field of the record
// @Tags students
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.StudentPayload true "Student fields"
// @Success 200 {object} dto.StatusResponse
// @Failure 400 {object} dto.StatusResponse "Validation failure"
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Failure 409 {object} dto.StatusResponse "Duplicate student number"
// @Router /students/{id} [put]
func (ctrl *StudentController) UpdateStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var payload dto.StudentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}

	if _, err := ctrl.studentService.UpdateStudent(c.Request.Context(), id, payload); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Student updated successfully"))
}

// DeleteStudent removes a student record
// @Summary Delete student
// @Tags students
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Success 200 {object} dto.StatusResponse
// @Failure 404 {object} dto.StatusResponse "Student not found"
// @Router /students/{id} [delete]
func (ctrl *StudentController) DeleteStudent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctrl.studentService.DeleteStudent(c.Request.Context(), id); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.OK("Student deleted successfully"))
}

// GetSummary returns aggregate statistics over the students table
// @Summary Student summary
// @Description Total count, per-status breakdown, and top five programs
// @Tags students
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StudentSummary
// @Failure 500 {object} dto.StatusResponse
// @Router /students/summary [get]
func (ctrl *StudentController) GetSummary(c *gin.Context) {
	summary, err := ctrl.studentService.GetSummary(c.Request.Context())
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}
