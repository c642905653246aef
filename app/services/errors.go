package services

import "fmt"

// NotFoundError reports an absent student, fee, attendance, or grade row.
type NotFoundError struct {
	Resource string
	ID       int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Resource, e.ID)
}

// ValidationError reports a missing, malformed, or out-of-range field along
// with the constraint it violated.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// InvariantViolation reports input that would break a data-model invariant
// (marks above max_marks, non-positive assigned amount). Always caught before
// any write.
type InvariantViolation struct {
	Message string
}

func (e *InvariantViolation) Error() string {
	return e.Message
}

// DuplicateMarkError reports an attendance mark that already exists for the
// (student, date) slot. The caller should use the update operation instead.
type DuplicateMarkError struct {
	StudentID int64
	Date      string
}

func (e *DuplicateMarkError) Error() string {
	return fmt.Sprintf("attendance already marked for student %d on %s", e.StudentID, e.Date)
}

// OverpaymentError reports a payment that would push paid_amount above
// assigned_amount. It carries the amounts the caller needs to react.
type OverpaymentError struct {
	AssignedAmount     float64
	PaidAmount         float64
	OutstandingBalance float64
	AttemptedPayment   float64
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment of %.2f exceeds outstanding balance of %.2f", e.AttemptedPayment, e.OutstandingBalance)
}
