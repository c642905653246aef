package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/smucherusystems/Student-registration-system/app/models"
	"github.com/smucherusystems/Student-registration-system/app/services"
)

// dateOnly truncates a timestamp to its calendar day, which is the
// granularity every due-date comparison runs at.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// AssignFee creates a fee with nothing paid. The initial status comes from
// the due date: overdue when already past, pending otherwise.
func AssignFee(db *sql.DB, fee *models.Fee) error {
	if err := services.ValidateFeeAssignment(fee.FeeType, fee.AssignedAmount); err != nil {
		return err
	}
	if err := StudentExists(db, fee.StudentID); err != nil {
		return err
	}

	fee.PaidAmount = 0
	fee.Status = services.InitialFeeStatus(fee.DueDate, dateOnly(time.Now().UTC()))

	query := `INSERT INTO fees (student_id, fee_type, assigned_amount, paid_amount, due_date, status)
			  VALUES ($1, $2, $3, 0, $4, $5)
			  RETURNING id, created_at, updated_at`
	err := db.QueryRow(query,
		fee.StudentID, fee.FeeType, fee.AssignedAmount, fee.DueDate, fee.Status,
	).Scan(&fee.ID, &fee.CreatedAt, &fee.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to assign fee: %w", err)
	}
	fee.Balance = services.Round2(fee.AssignedAmount)
	return nil
}

// RecordPayment applies a payment to a fee inside a transaction. The fee row
// is locked before the overpayment check so two racing payments cannot both
// validate against the same stale balance. On success the running
// paid_amount, last payment date, and derived status land on the fee row and
// the payment itself is appended to fee_payments.
func RecordPayment(db *sql.DB, feeID int64, amount float64, paymentDate time.Time, recordedBy string) (*models.Fee, error) {
	tx, err := db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	fee := &models.Fee{}
	var lastPayment sql.NullTime
	query := `SELECT id, student_id, fee_type, assigned_amount, paid_amount, due_date, payment_date, status, created_at, updated_at
			  FROM fees WHERE id = $1 FOR UPDATE`
	err = tx.QueryRow(query, feeID).Scan(
		&fee.ID, &fee.StudentID, &fee.FeeType, &fee.AssignedAmount, &fee.PaidAmount,
		&fee.DueDate, &lastPayment, &fee.Status, &fee.CreatedAt, &fee.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &services.NotFoundError{Resource: "fee", ID: feeID}
	}
	if err != nil {
		return nil, err
	}

	newPaid, balance, status, err := services.ApplyPayment(
		fee.AssignedAmount, fee.PaidAmount, amount, fee.DueDate, dateOnly(time.Now().UTC()))
	if err != nil {
		return nil, err
	}

	update := `UPDATE fees SET paid_amount = $1, payment_date = $2, status = $3, updated_at = NOW()
			   WHERE id = $4
			   RETURNING updated_at`
	if err := tx.QueryRow(update, newPaid, paymentDate, status, feeID).Scan(&fee.UpdatedAt); err != nil {
		return nil, fmt.Errorf("failed to update fee: %w", err)
	}

	insert := `INSERT INTO fee_payments (fee_id, amount, payment_date, recorded_by)
			   VALUES ($1, $2, $3, $4)`
	if _, err := tx.Exec(insert, feeID, amount, paymentDate, recordedBy); err != nil {
		return nil, fmt.Errorf("failed to record payment event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	fee.PaidAmount = newPaid
	fee.Balance = balance
	fee.Status = status
	fee.PaymentDate = &paymentDate
	return fee, nil
}

func scanFeeRows(rows *sql.Rows, withStudent bool) ([]models.Fee, error) {
	var fees []models.Fee
	for rows.Next() {
		var f models.Fee
		var lastPayment sql.NullTime
		dest := []interface{}{
			&f.ID, &f.StudentID, &f.FeeType, &f.AssignedAmount, &f.PaidAmount,
			&f.DueDate, &lastPayment, &f.Status, &f.CreatedAt, &f.UpdatedAt,
		}
		if withStudent {
			dest = append(dest, &f.StudentName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		if lastPayment.Valid {
			t := lastPayment.Time
			f.PaymentDate = &t
		}
		f.Balance = services.Round2(f.AssignedAmount - f.PaidAmount)
		fees = append(fees, f)
	}
	return fees, rows.Err()
}

// GetFeesByStudent returns a student's fees, optionally narrowed by status
// and a fee-type substring.
func GetFeesByStudent(db *sql.DB, studentID int64, status, feeType string) ([]models.Fee, error) {
	query := `SELECT id, student_id, fee_type, assigned_amount, paid_amount, due_date, payment_date, status, created_at, updated_at
			  FROM fees WHERE student_id = $1`
	args := []interface{}{studentID}

	if status != "" {
		args = append(args, status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if feeType != "" {
		args = append(args, "%"+feeType+"%")
		query += fmt.Sprintf(" AND fee_type ILIKE $%d", len(args))
	}
	query += " ORDER BY due_date DESC, created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeeRows(rows, false)
}

// GetAllFees returns every fee with its student's name, optionally narrowed
// by status.
func GetAllFees(db *sql.DB, status string) ([]models.Fee, error) {
	query := `SELECT f.id, f.student_id, f.fee_type, f.assigned_amount, f.paid_amount,
			  f.due_date, f.payment_date, f.status, f.created_at, f.updated_at, s.name
			  FROM fees f
			  INNER JOIN students s ON f.student_id = s.id`
	var args []interface{}
	if status != "" {
		query += " WHERE f.status = $1"
		args = append(args, status)
	}
	query += " ORDER BY f.due_date DESC, f.created_at DESC"

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanFeeRows(rows, true)
}

// GetFeeSummary computes the global fee rollup in one aggregate query.
func GetFeeSummary(db *sql.DB) (*models.FeeSummary, error) {
	query := `SELECT
				COUNT(*),
				COALESCE(SUM(assigned_amount), 0),
				COALESCE(SUM(paid_amount), 0),
				COALESCE(SUM(assigned_amount - paid_amount), 0),
				COUNT(*) FILTER (WHERE status = 'pending'),
				COUNT(*) FILTER (WHERE status = 'partial'),
				COUNT(*) FILTER (WHERE status = 'paid'),
				COUNT(*) FILTER (WHERE status = 'overdue')
			  FROM fees`

	s := &models.FeeSummary{}
	err := db.QueryRow(query).Scan(
		&s.TotalFees, &s.TotalAssigned, &s.TotalPaid, &s.TotalOutstanding,
		&s.PendingCount, &s.PartialCount, &s.PaidCount, &s.OverdueCount,
	)
	if err != nil {
		return nil, err
	}
	s.TotalAssigned = services.Round2(s.TotalAssigned)
	s.TotalPaid = services.Round2(s.TotalPaid)
	s.TotalOutstanding = services.Round2(s.TotalOutstanding)
	return s, nil
}

// RecomputeFeeStatuses normalizes the derived status column against the
// canonical definition, for one fee or the whole table. Idempotent: only rows
// whose stored status drifted from the computed one are touched.
func RecomputeFeeStatuses(db *sql.DB, feeID *int64) (int64, error) {
	const derived = `CASE
		WHEN paid_amount >= assigned_amount THEN 'paid'
		WHEN paid_amount > 0 THEN 'partial'
		WHEN due_date < CURRENT_DATE THEN 'overdue'
		ELSE 'pending'
	END`

	query := `UPDATE fees SET status = ` + derived + `, updated_at = NOW()
			  WHERE status IS DISTINCT FROM ` + derived
	var args []interface{}
	if feeID != nil {
		if err := feeExists(db, *feeID); err != nil {
			return 0, err
		}
		query += " AND id = $1"
		args = append(args, *feeID)
	}

	result, err := db.Exec(query, args...)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func feeExists(db *sql.DB, feeID int64) error {
	var id int64
	err := db.QueryRow(`SELECT id FROM fees WHERE id = $1`, feeID).Scan(&id)
	if err == sql.ErrNoRows {
		return &services.NotFoundError{Resource: "fee", ID: feeID}
	}
	return err
}

// GetOutstandingBalance sums a student's unpaid amounts.
func GetOutstandingBalance(db *sql.DB, studentID int64) (float64, error) {
	var balance float64
	query := `SELECT COALESCE(SUM(assigned_amount - paid_amount), 0) FROM fees WHERE student_id = $1`
	if err := db.QueryRow(query, studentID).Scan(&balance); err != nil {
		return 0, err
	}
	return services.Round2(balance), nil
}

// GetFeePaymentsByStudent returns every payment event against a student's
// fees, newest first.
func GetFeePaymentsByStudent(db *sql.DB, studentID int64) ([]models.FeePayment, error) {
	query := `SELECT p.id, p.fee_id, p.amount, p.payment_date, p.recorded_by, p.created_at
			  FROM fee_payments p
			  INNER JOIN fees f ON p.fee_id = f.id
			  WHERE f.student_id = $1
			  ORDER BY p.payment_date DESC, p.created_at DESC`

	rows, err := db.Query(query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var payments []models.FeePayment
	for rows.Next() {
		var p models.FeePayment
		err := rows.Scan(&p.ID, &p.FeeID, &p.Amount, &p.PaymentDate, &p.RecordedBy, &p.CreatedAt)
		if err != nil {
			return nil, err
		}
		payments = append(payments, p)
	}
	return payments, rows.Err()
}
