package database

import (
	"database/sql"
	"fmt"

	"github.com/smucherusystems/Student-registration-system/app/models"
	"github.com/smucherusystems/Student-registration-system/app/services"
)

// AddGrade inserts an exam score after checking the marks invariants.
func AddGrade(db *sql.DB, grade *models.Grade) error {
	if err := services.ValidateGradeEntry(grade.SubjectName, grade.Marks, grade.MaxMarks, grade.ExamType); err != nil {
		return err
	}
	if err := StudentExists(db, grade.StudentID); err != nil {
		return err
	}

	query := `INSERT INTO grades (student_id, subject_name, marks, max_marks, exam_type, exam_date)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		grade.StudentID, grade.SubjectName, grade.Marks, grade.MaxMarks,
		grade.ExamType, grade.ExamDate,
	).Scan(&grade.ID, &grade.CreatedAt, &grade.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to add grade: %w", err)
	}
	grade.Percentage = services.GradePercentage(grade.Marks, grade.MaxMarks)
	return nil
}

// UpdateGrade replaces every field of an entry. The marks invariant is
// re-checked so a replace can never leave marks above max_marks.
func UpdateGrade(db *sql.DB, grade *models.Grade) error {
	if err := services.ValidateGradeEntry(grade.SubjectName, grade.Marks, grade.MaxMarks, grade.ExamType); err != nil {
		return err
	}

	query := `UPDATE grades
			  SET subject_name = $1, marks = $2, max_marks = $3, exam_type = $4, exam_date = $5, updated_at = NOW()
			  WHERE id = $6
			  RETURNING updated_at`
	err := db.QueryRow(query,
		grade.SubjectName, grade.Marks, grade.MaxMarks, grade.ExamType, grade.ExamDate, grade.ID,
	).Scan(&grade.UpdatedAt)
	if err == sql.ErrNoRows {
		return &services.NotFoundError{Resource: "grade", ID: grade.ID}
	}
	if err != nil {
		return err
	}
	grade.Percentage = services.GradePercentage(grade.Marks, grade.MaxMarks)
	return nil
}

// DeleteGrade removes an entry.
func DeleteGrade(db *sql.DB, gradeID int64) error {
	result, err := db.Exec(`DELETE FROM grades WHERE id = $1`, gradeID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &services.NotFoundError{Resource: "grade", ID: gradeID}
	}
	return nil
}

func scanGradeRows(rows *sql.Rows, withStudent bool) ([]models.Grade, error) {
	var grades []models.Grade
	for rows.Next() {
		var g models.Grade
		dest := []interface{}{
			&g.ID, &g.StudentID, &g.SubjectName, &g.Marks, &g.MaxMarks,
			&g.ExamType, &g.ExamDate, &g.CreatedAt, &g.UpdatedAt,
		}
		if withStudent {
			dest = append(dest, &g.StudentName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		g.Percentage = services.GradePercentage(g.Marks, g.MaxMarks)
		grades = append(grades, g)
	}
	return grades, rows.Err()
}

// GetGradesByStudent returns a student's entries, newest exam first.
func GetGradesByStudent(db *sql.DB, studentID int64) ([]models.Grade, error) {
	query := `SELECT id, student_id, subject_name, marks, max_marks, exam_type, exam_date, created_at, updated_at
			  FROM grades
			  WHERE student_id = $1
			  ORDER BY exam_date DESC, created_at DESC`
	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGradeRows(rows, false)
}

// GetAllGrades returns every entry with its student's name.
func GetAllGrades(db *sql.DB) ([]models.Grade, error) {
	query := `SELECT g.id, g.student_id, g.subject_name, g.marks, g.max_marks,
			  g.exam_type, g.exam_date, g.created_at, g.updated_at, s.name
			  FROM grades g
			  INNER JOIN students s ON g.student_id = s.id
			  ORDER BY g.exam_date DESC, g.created_at DESC`
	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanGradeRows(rows, true)
}

// GetClassRanking ranks students in a course by weighted average percentage.
// Students without a single grade entry never appear. The course filter is
// optional; empty ranks across all courses.
func GetClassRanking(db *sql.DB, course string) ([]models.ClassRank, error) {
	query := `SELECT s.id, s.name, s.course,
			  ROUND(SUM(g.marks) / SUM(g.max_marks) * 100, 2)
			  FROM students s
			  INNER JOIN grades g ON g.student_id = s.id`
	var args []interface{}
	if course != "" {
		query += " WHERE s.course = $1"
		args = append(args, course)
	}
	query += ` GROUP BY s.id, s.name, s.course
			  HAVING COUNT(g.id) > 0
			  ORDER BY 4 DESC, s.name ASC`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ranks []models.ClassRank
	for rows.Next() {
		var r models.ClassRank
		err := rows.Scan(&r.StudentID, &r.StudentName, &r.Course, &r.AveragePercentage)
		if err != nil {
			return nil, err
		}
		ranks = append(ranks, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return services.RankStudents(ranks), nil
}
