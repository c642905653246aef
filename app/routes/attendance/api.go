package attendance

import (
	"database/sql"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/smucherusystems/Student-registration-system/app/database"
	"github.com/smucherusystems/Student-registration-system/app/models"
	"github.com/smucherusystems/Student-registration-system/app/routes/auth"
	"github.com/smucherusystems/Student-registration-system/app/routes/respond"
	"github.com/smucherusystems/Student-registration-system/app/services"
	"github.com/smucherusystems/Student-registration-system/app/validation"
)

type markRequest struct {
	StudentID      int64  `json:"student_id" form:"student_id" validate:"required,gt=0"`
	AttendanceDate string `json:"attendance_date" form:"attendance_date" validate:"required"`
	Status         string `json:"status" form:"status" validate:"required,oneof=present absent late excused"`
	Notes          string `json:"notes" form:"notes"`
}

// MarkAttendanceAPI records the day's mark for a student. A second mark for
// the same (student, date) slot comes back as a 409; update is the right path.
func MarkAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	var req markRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respond.BadRequest(c, err.Error())
	}

	date, err := time.Parse("2006-01-02", req.AttendanceDate)
	if err != nil {
		return respond.BadRequest(c, "Invalid date format (use YYYY-MM-DD)")
	}

	mark := &models.Attendance{
		StudentID:      req.StudentID,
		AttendanceDate: date,
		Status:         models.AttendanceStatus(req.Status),
		Notes:          req.Notes,
		MarkedBy:       auth.CallerName(c),
	}
	if err := database.MarkAttendance(db, mark); err != nil {
		return respond.Error(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":       true,
		"message":       "Attendance marked successfully",
		"attendance_id": mark.ID,
	})
}

type updateMarkRequest struct {
	Status string `json:"status" form:"status" validate:"required,oneof=present absent late excused"`
	Notes  string `json:"notes" form:"notes"`
}

// UpdateAttendanceAPI overwrites status/notes of an existing mark; the date
// stays as it was.
func UpdateAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	attendanceID, err := c.ParamsInt("id")
	if err != nil || attendanceID <= 0 {
		return respond.BadRequest(c, "Valid attendance ID is required")
	}

	var req updateMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return respond.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&req); err != nil {
		return respond.BadRequest(c, err.Error())
	}

	if err := database.UpdateAttendance(db, int64(attendanceID), models.AttendanceStatus(req.Status), req.Notes); err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success": true,
		"message": "Attendance updated successfully",
	})
}

func parseOptionalDate(c *fiber.Ctx, name string) (*time.Time, error) {
	value := c.Query(name)
	if value == "" {
		return nil, nil
	}
	date, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &date, nil
}

// GetStudentAttendanceAPI returns a student's marks plus the derived
// statistics, optionally windowed by start_date/end_date.
func GetStudentAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID <= 0 {
		return respond.BadRequest(c, "Valid student ID is required")
	}

	startDate, err := parseOptionalDate(c, "start_date")
	if err != nil {
		return respond.BadRequest(c, "Invalid start date format (use YYYY-MM-DD)")
	}
	endDate, err := parseOptionalDate(c, "end_date")
	if err != nil {
		return respond.BadRequest(c, "Invalid end date format (use YYYY-MM-DD)")
	}

	student, err := database.GetStudentByID(db, int64(studentID))
	if err != nil {
		return respond.Error(c, err)
	}

	records, err := database.GetAttendanceByStudent(db, student.ID, startDate, endDate)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"success":    true,
		"student":    fiber.Map{"id": student.ID, "name": student.Name},
		"attendance": records,
		"statistics": services.TallyAttendance(records),
		"date_range": fiber.Map{
			"start_date": c.Query("start_date"),
			"end_date":   c.Query("end_date"),
		},
	})
}

// GetAllAttendanceAPI returns every mark with student info, optionally
// filtered by date and status.
func GetAllAttendanceAPI(c *fiber.Ctx, db *sql.DB) error {
	date, err := parseOptionalDate(c, "attendance_date")
	if err != nil {
		return respond.BadRequest(c, "Invalid date format (use YYYY-MM-DD)")
	}

	status := c.Query("status")
	if status != "" && !models.ValidAttendanceStatus(status) {
		return respond.BadRequest(c, "Valid status is required (present, absent, late, or excused)")
	}

	records, err := database.GetAllAttendance(db, date, status)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"attendance": records,
		"count":      len(records),
	})
}

func GetStatisticsAPI(c *fiber.Ctx, db *sql.DB) error {
	stats, err := database.GetAttendanceStatistics(db)
	if err != nil {
		return respond.Error(c, err)
	}
	return c.JSON(fiber.Map{
		"success":    true,
		"statistics": stats,
	})
}

// GetCalendarAPI renders the month grid for a student. Month and year
// default to the current month when missing or out of range.
func GetCalendarAPI(c *fiber.Ctx, db *sql.DB) error {
	studentID, err := c.ParamsInt("studentId")
	if err != nil || studentID <= 0 {
		return respond.BadRequest(c, "Valid student ID is required")
	}

	student, err := database.GetStudentByID(db, int64(studentID))
	if err != nil {
		return respond.Error(c, err)
	}

	month, _ := strconv.Atoi(c.Query("month"))
	year, _ := strconv.Atoi(c.Query("year"))
	month, year = services.NormalizeMonthYear(month, year, time.Now())

	records, err := database.GetAttendanceForMonth(db, student.ID, month, year)
	if err != nil {
		return respond.Error(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"student":  fiber.Map{"id": student.ID, "name": student.Name},
		"calendar": services.BuildCalendar(month, year, records),
	})
}
