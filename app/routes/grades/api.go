package grades

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/database"
	"github.com/smucherusystems/Student-registration-system/app/models"
	"github.com/smucherusystems/Student-registration-system/app/routes/respond"
	"github.com/smucherusystems/Student-registration-system/app/services"
	"github.com/smucherusystems/Student-registration-system/app/validation"
)

type gradeRequest struct {
	StudentID   int64   `json:"student_id" form:"student_id" validate:"required,gt=0"`
	SubjectName string  `json:"subject_name" form:"subject_name" validate:"required,max=100"`
	Marks       float64 `json:"marks" form:"marks" validate:"gte=0"`
	MaxMarks    float64 `json:"max_marks" form:"max_marks" validate:"required,gt=0"`
	ExamType    string  `json:"exam_type" form:"exam_type" validate:"required,max=50"`
	ExamDate    string  `json:"exam_date" form:"exam_date" validate:"required"`
}

// AddGradeAPI records an exam score for a student
func AddGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	var req gradeRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respond.BadRequest(c, err.Error())
	}

	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return respond.BadRequest(c, "Invalid exam date format (use YYYY-MM-DD)")
	}

	grade := &models.Grade{
		StudentID:   req.StudentID,
		SubjectName: req.SubjectName,
		Marks:       req.Marks,
		MaxMarks:    req.MaxMarks,
		ExamType:    req.ExamType,
		ExamDate:    examDate,
	}
	if err := database.AddGrade(db, grade); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":  true,
		"message":  "Grade added successfully",
		"grade_id": grade.ID,
	})
}

// UpdateGradeAPI replaces every field of an existing entry.
func UpdateGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	gradeID, err := c.ParamsInt("id")
	if err != nil || gradeID <= 0 {
		return respond.BadRequest(c, "Valid grade ID is required")
	}

	var req gradeRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respond.BadRequest(c, err.Error())
	}

	examDate, err := time.Parse("2006-01-02", req.ExamDate)
	if err != nil {
		return respond.BadRequest(c, "Invalid exam date format (use YYYY-MM-DD)")
	}

	grade := &models.Grade{
		ID:          int64(gradeID),
		SubjectName: req.SubjectName,
		Marks:       req.Marks,
		MaxMarks:    req.MaxMarks,
		ExamType:    req.ExamType,
		ExamDate:    examDate,
	}
	if err := database.UpdateGrade(db, grade); err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Grade updated successfully",
		"grade":   grade,
	})
}

func DeleteGradeAPI(c *fiber.Ctx, db *sql.DB) error {
	gradeID, err := c.ParamsInt("id")
	if err != nil || gradeID <= 0 {
		return respond.BadRequest(c, "Valid grade ID is required")
	}

	if err := database.DeleteGrade(db, int64(gradeID)); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Grade deleted successfully",
	})
}

// GetStudentGradesAPI returns a student's entries plus the weighted summary.
func GetStudentGradesAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID <= 0 {
		return respond.BadRequest(c, "Valid student ID is required")
	}

	student, err := database.GetStudentByID(db, int64(studentID))
	if err != nil {
		return respond.Error(c, err)
	}

	gradeRows, err := database.GetGradesByStudent(db, student.ID)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"student": fiber.Map{"id": student.ID, "name": student.Name},
		"grades":  gradeRows,
		"summary": services.SummarizeGrades(gradeRows),
	})
}

func GetAllGradesAPI(c *fiber.Ctx, db *sql.DB) error {
	gradeRows, err := database.GetAllGrades(db)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"grades":  gradeRows,
		"count":   len(gradeRows),
	})
}

// GetClassRankingAPI ranks students by weighted average percentage,
// optionally scoped to one course. Students without grades are left out.
func GetClassRankingAPI(c *fiber.Ctx, db *sql.DB) error {
	ranks, err := database.GetClassRanking(db, c.Query("course"))
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success":  true,
		"rankings": ranks,
		"count":    len(ranks),
	})
}
