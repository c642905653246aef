package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/smucherusystems/Student-registration-system/app/models"
	"github.com/smucherusystems/Student-registration-system/app/services"
)

// uniqueViolation is the postgres error code for a unique constraint breach.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// CreateStudent registers a new student. A duplicate email surfaces as a
// validation error rather than a bare constraint failure.
func CreateStudent(db *sql.DB, student *models.Student) error {
	query := `INSERT INTO students (name, email, phone, course, gender, address)
			  VALUES ($1, $2, $3, $4, $5, $6)
			  RETURNING id, created_at, updated_at`

	err := db.QueryRow(query,
		student.Name, student.Email, student.Phone,
		student.Course, student.Gender, student.Address,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return &services.ValidationError{Field: "email", Message: "already registered"}
		}
		return fmt.Errorf("failed to create student: %w", err)
	}
	return nil
}

// GetStudents returns all students, newest first.
func GetStudents(db *sql.DB) ([]models.Student, error) {
	query := `SELECT id, name, email, phone, course, gender, address, created_at, updated_at
			  FROM students ORDER BY created_at DESC`

	rows, err := db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var students []models.Student
	for rows.Next() {
		var s models.Student
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.Course, &s.Gender,
			&s.Address, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, err
		}
		students = append(students, s)
	}
	return students, rows.Err()
}

func GetStudentByID(db *sql.DB, studentID int64) (*models.Student, error) {
	s := &models.Student{}
	query := `SELECT id, name, email, phone, course, gender, address, created_at, updated_at
			  FROM students WHERE id = $1`

	err := db.QueryRow(query, studentID).Scan(
		&s.ID, &s.Name, &s.Email, &s.Phone, &s.Course, &s.Gender,
		&s.Address, &s.CreatedAt, &s.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &services.NotFoundError{Resource: "student", ID: studentID}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// StudentExists checks the id without loading the row.
func StudentExists(db *sql.DB, studentID int64) error {
	var id int64
	err := db.QueryRow(`SELECT id FROM students WHERE id = $1`, studentID).Scan(&id)
	if err == sql.ErrNoRows {
		return &services.NotFoundError{Resource: "student", ID: studentID}
	}
	return err
}

// UpdateStudent overwrites a student's profile fields.
func UpdateStudent(db *sql.DB, student *models.Student) error {
	query := `UPDATE students
			  SET name = $1, email = $2, phone = $3, course = $4, gender = $5, address = $6, updated_at = NOW()
			  WHERE id = $7
			  RETURNING updated_at`

	err := db.QueryRow(query,
		student.Name, student.Email, student.Phone,
		student.Course, student.Gender, student.Address, student.ID,
	).Scan(&student.UpdatedAt)
	if err == sql.ErrNoRows {
		return &services.NotFoundError{Resource: "student", ID: student.ID}
	}
	if err != nil && isUniqueViolation(err) {
		return &services.ValidationError{Field: "email", Message: "already registered"}
	}
	return err
}

// DeleteStudent removes a student. The fee, fee_payments, attendance, and
// grade rows go with it through the ON DELETE CASCADE constraints.
func DeleteStudent(db *sql.DB, studentID int64) error {
	result, err := db.Exec(`DELETE FROM students WHERE id = $1`, studentID)
	if err != nil {
		return err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return &services.NotFoundError{Resource: "student", ID: studentID}
	}
	return nil
}
