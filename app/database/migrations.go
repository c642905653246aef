package database

import (
	"database/sql"
	"log"
)

// RunMigrations creates or updates the schema. Safe to re-run: every
// statement is guarded with IF NOT EXISTS.
//
// The store-level constraints here back the engine invariants: cascade
// deletes from students, 0 <= paid_amount <= assigned_amount on fees, and the
// one-mark-per-student-per-day uniqueness on attendance that turns the
// concurrent duplicate-mark race into a deterministic reject.
func RunMigrations(db *sql.DB) error {
	log.Println("Running database migrations...")

	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			email VARCHAR(100) NOT NULL UNIQUE,
			password VARCHAR(255) NOT NULL,
			first_name VARCHAR(50) NOT NULL,
			last_name VARCHAR(50) NOT NULL,
			is_active BOOLEAN NOT NULL DEFAULT true,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS students (
			id BIGSERIAL PRIMARY KEY,
			name VARCHAR(100) NOT NULL,
			email VARCHAR(100) NOT NULL UNIQUE,
			phone VARCHAR(15) NOT NULL,
			course VARCHAR(100) NOT NULL,
			gender VARCHAR(10) NOT NULL CHECK (gender IN ('male', 'female', 'other')),
			address TEXT NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fees (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			fee_type VARCHAR(100) NOT NULL,
			assigned_amount NUMERIC(10,2) NOT NULL CHECK (assigned_amount > 0),
			paid_amount NUMERIC(10,2) NOT NULL DEFAULT 0
				CHECK (paid_amount >= 0 AND paid_amount <= assigned_amount),
			due_date DATE NOT NULL,
			payment_date DATE,
			status VARCHAR(10) NOT NULL DEFAULT 'pending'
				CHECK (status IN ('pending', 'partial', 'paid', 'overdue')),
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS fee_payments (
			id BIGSERIAL PRIMARY KEY,
			fee_id BIGINT NOT NULL REFERENCES fees(id) ON DELETE CASCADE,
			amount NUMERIC(10,2) NOT NULL CHECK (amount > 0),
			payment_date DATE NOT NULL,
			recorded_by VARCHAR(100) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS attendance (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			attendance_date DATE NOT NULL,
			status VARCHAR(10) NOT NULL CHECK (status IN ('present', 'absent', 'late', 'excused')),
			notes TEXT NOT NULL DEFAULT '',
			marked_by VARCHAR(100) NOT NULL DEFAULT '',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT attendance_student_date_key UNIQUE (student_id, attendance_date)
		)`,
		`CREATE TABLE IF NOT EXISTS grades (
			id BIGSERIAL PRIMARY KEY,
			student_id BIGINT NOT NULL REFERENCES students(id) ON DELETE CASCADE,
			subject_name VARCHAR(100) NOT NULL,
			marks NUMERIC(6,2) NOT NULL CHECK (marks >= 0),
			max_marks NUMERIC(6,2) NOT NULL CHECK (max_marks > 0),
			exam_type VARCHAR(50) NOT NULL,
			exam_date DATE NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			CONSTRAINT grades_marks_within_max CHECK (marks <= max_marks)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_student_id ON fees(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_fees_status ON fees(status)`,
		`CREATE INDEX IF NOT EXISTS idx_fee_payments_fee_id ON fee_payments(fee_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_student_id ON attendance(student_id)`,
		`CREATE INDEX IF NOT EXISTS idx_attendance_date ON attendance(attendance_date)`,
		`CREATE INDEX IF NOT EXISTS idx_grades_student_id ON grades(student_id)`,
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			log.Printf("Migration failed: %v", err)
			return err
		}
	}

	log.Println("Database migrations completed successfully")
	return nil
}
