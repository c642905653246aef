package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/smucherusystems/Student-registration-system/app/models"
	"github.com/smucherusystems/Student-registration-system/app/services"
)

// MarkAttendance inserts the day's mark for a student. The store's unique
// constraint on (student_id, attendance_date) decides duplicates, so two
// racing marks for the same slot resolve deterministically: one row, one
// DuplicateMarkError.
func MarkAttendance(db *sql.DB, mark *models.Attendance) error {
	if err := StudentExists(db, mark.StudentID); err != nil {
		return err
	}

	query := `INSERT INTO attendance (student_id, attendance_date, status, notes, marked_by)
			  VALUES ($1, $2, $3, $4, $5)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		mark.StudentID, mark.AttendanceDate, mark.Status, mark.Notes, mark.MarkedBy,
	).Scan(&mark.ID, &mark.CreatedAt, &mark.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &services.DuplicateMarkError{
				StudentID: mark.StudentID,
				Date:      mark.AttendanceDate.Format("2006-01-02"),
			}
		}
		return fmt.Errorf("failed to mark attendance: %w", err)
	}
	return nil
}

// UpdateAttendance overwrites the status and notes of an existing mark. The
// date never changes through this path.
func UpdateAttendance(db *sql.DB, attendanceID int64, status models.AttendanceStatus, notes string) error {
	result, err := db.Exec(
		`UPDATE attendance SET status = $1, notes = $2, updated_at = NOW() WHERE id = $3`,
		status, notes, attendanceID,
	)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &services.NotFoundError{Resource: "attendance record", ID: attendanceID}
	}
	return nil
}

// GetAttendanceByStudent returns a student's marks, newest first, optionally
// limited to a date range.
func GetAttendanceByStudent(db *sql.DB, studentID int64, startDate, endDate *time.Time) ([]models.Attendance, error) {
	query := `SELECT id, student_id, attendance_date, status, notes, marked_by, created_at, updated_at
			  FROM attendance WHERE student_id = $1`
	args := []interface{}{studentID}

	if startDate != nil {
		args = append(args, *startDate)
		query += fmt.Sprintf(" AND attendance_date >= $%d", len(args))
	}
	if endDate != nil {
		args = append(args, *endDate)
		query += fmt.Sprintf(" AND attendance_date <= $%d", len(args))
	}
	query += " ORDER BY attendance_date DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Attendance
	for rows.Next() {
		var a models.Attendance
		err := rows.Scan(&a.ID, &a.StudentID, &a.AttendanceDate, &a.Status,
			&a.Notes, &a.MarkedBy, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetAllAttendance returns every mark with student info, optionally filtered
// by a single date and status.
func GetAllAttendance(db *sql.DB, date *time.Time, status string) ([]models.Attendance, error) {
	query := `SELECT a.id, a.student_id, a.attendance_date, a.status, a.notes, a.marked_by,
			  a.created_at, a.updated_at, s.name, s.course
			  FROM attendance a
			  INNER JOIN students s ON a.student_id = s.id`
	var args []interface{}
	var conditions []string

	if date != nil {
		args = append(args, *date)
		conditions = append(conditions, fmt.Sprintf("a.attendance_date = $%d", len(args)))
	}
	if status != "" {
		args = append(args, status)
		conditions = append(conditions, fmt.Sprintf("a.status = $%d", len(args)))
	}
	for i, cond := range conditions {
		if i == 0 {
			query += " WHERE " + cond
		} else {
			query += " AND " + cond
		}
	}
	query += " ORDER BY a.attendance_date DESC, s.name ASC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Attendance
	for rows.Next() {
		var a models.Attendance
		err := rows.Scan(&a.ID, &a.StudentID, &a.AttendanceDate, &a.Status, &a.Notes,
			&a.MarkedBy, &a.CreatedAt, &a.UpdatedAt, &a.StudentName, &a.Course)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetAttendanceForMonth returns a student's marks within one calendar month,
// oldest first, for calendar rendering.
func GetAttendanceForMonth(db *sql.DB, studentID int64, month, year int) ([]models.Attendance, error) {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	lastDay := firstDay.AddDate(0, 1, -1)

	query := `SELECT id, student_id, attendance_date, status, notes, marked_by, created_at, updated_at
			  FROM attendance
			  WHERE student_id = $1 AND attendance_date >= $2 AND attendance_date <= $3
			  ORDER BY attendance_date ASC`
	rows, err := db.Query(query, studentID, firstDay, lastDay)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []models.Attendance
	for rows.Next() {
		var a models.Attendance
		err := rows.Scan(&a.ID, &a.StudentID, &a.AttendanceDate, &a.Status,
			&a.Notes, &a.MarkedBy, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// GlobalAttendanceStats holds the dashboard-level attendance rollup.
type GlobalAttendanceStats struct {
	StudentsWithAttendance int `json:"total_students_with_attendance"`
	models.AttendanceStats
}

// GetAttendanceStatistics computes the global tallies in one aggregate query.
func GetAttendanceStatistics(db *sql.DB) (*GlobalAttendanceStats, error) {
	query := `SELECT
				COUNT(DISTINCT student_id),
				COUNT(*),
				COUNT(*) FILTER (WHERE status = 'present'),
				COUNT(*) FILTER (WHERE status = 'absent'),
				COUNT(*) FILTER (WHERE status = 'late'),
				COUNT(*) FILTER (WHERE status = 'excused')
			  FROM attendance`

	s := &GlobalAttendanceStats{}
	err := db.QueryRow(query).Scan(
		&s.StudentsWithAttendance, &s.TotalDays,
		&s.PresentCount, &s.AbsentCount, &s.LateCount, &s.ExcusedCount,
	)
	if err != nil {
		return nil, err
	}
	s.AttendedDays = s.PresentCount + s.LateCount
	s.Percentage = services.AttendancePercentage(s.AttendedDays, s.TotalDays)
	return s, nil
}
