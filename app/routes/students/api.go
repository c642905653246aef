package students

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/database"
	"github.com/smucherusystems/Student-registration-system/app/models"
	"github.com/smucherusystems/Student-registration-system/app/routes/respond"
	"github.com/smucherusystems/Student-registration-system/app/validation"
)

type studentRequest struct {
	Name    string `json:"name" form:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" form:"email" validate:"required,email"`
	Phone   string `json:"phone" form:"phone" validate:"required,min=10,max=15"`
	Course  string `json:"course" form:"course" validate:"required,max=100"`
	Gender  string `json:"gender" form:"gender" validate:"required,oneof=male female other"`
	Address string `json:"address" form:"address"`
}

// RegisterStudentAPI creates a student record
func RegisterStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respond.BadRequest(c, err.Error())
	}

	student := &models.Student{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Course:  req.Course,
		Gender:  models.Gender(req.Gender),
		Address: req.Address,
	}
	if err := database.CreateStudent(db, student); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":    true,
		"message":    "Student registered successfully",
		"student_id": student.ID,
	})
}

// GetStudentsAPI returns all students, newest first
func GetStudentsAPI(c *fiber.Ctx, db *sql.DB) error {
	students, err := database.GetStudents(db)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"students": students,
		"count":    len(students),
	})
}

func GetStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return respond.BadRequest(c, "Valid student ID is required")
	}

	student, err := database.GetStudentByID(db, int64(studentID))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"student": student,
	})
}

func UpdateStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return respond.BadRequest(c, "Valid student ID is required")
	}

	var req studentRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respond.BadRequest(c, err.Error())
	}

	student := &models.Student{
		ID:      int64(studentID),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Course:  req.Course,
		Gender:  models.Gender(req.Gender),
		Address: req.Address,
	}
	if err := database.UpdateStudent(db, student); err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student updated successfully",
		"student": student,
	})
}

// DeleteStudentAPI removes a student along with every dependent fee,
// attendance, and grade row.
func DeleteStudentAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("id")
	if err != nil || studentID <= 0 {
		return respond.BadRequest(c, "Valid student ID is required")
	}

	if err := database.DeleteStudent(db, int64(studentID)); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Student record deleted successfully",
	})
}
