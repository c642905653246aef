package models

import "time"

// Fee represents one assigned charge for a student. Status and balance are
// derived from the amount columns and due date; they are never authoritative
// on their own.
type Fee struct {
	ID             int64      `json:"id"`
	StudentID      int64      `json:"student_id"`
	FeeType        string     `json:"fee_type"`
	AssignedAmount float64    `json:"assigned_amount"`
	PaidAmount     float64    `json:"paid_amount"`
	Balance        float64    `json:"outstanding_balance"`
	DueDate        time.Time  `json:"due_date"`
	PaymentDate    *time.Time `json:"payment_date,omitempty"`
	Status         FeeStatus  `json:"status"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	StudentName string `json:"student_name,omitempty"`
}

// FeePayment is one append-only payment event against a fee. The fee row keeps
// the running paid_amount and last payment date; this table keeps the full
// history so the timeline never collapses partial payments.
type FeePayment struct {
	ID          int64     `json:"id"`
	FeeID       int64     `json:"fee_id"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"payment_date"`
	RecordedBy  string    `json:"recorded_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FeeSummary holds the rollup totals across a set of fees.
type FeeSummary struct {
	TotalFees        int     `json:"total_fees"`
	TotalAssigned    float64 `json:"total_assigned"`
	TotalPaid        float64 `json:"total_paid"`
	TotalOutstanding float64 `json:"total_outstanding"`
	PendingCount     int     `json:"pending_count"`
	PartialCount     int     `json:"partial_count"`
	PaidCount        int     `json:"paid_count"`
	OverdueCount     int     `json:"overdue_count"`
}

// TimelineEvent is one entry in a student's reconstructed payment history.
type TimelineEvent struct {
	Type        string    `json:"type"` // assignment, payment, status_change
	Date        time.Time `json:"date"`
	FeeID       int64     `json:"fee_id"`
	FeeType     string    `json:"fee_type"`
	Amount      float64   `json:"amount,omitempty"`
	DueDate     string    `json:"due_date,omitempty"`
	Status      FeeStatus `json:"status,omitempty"`
	Description string    `json:"description"`
}
