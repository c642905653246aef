package services

import (
	"math"
	"sort"
	"time"

	"github.com/smucherusystems/Student-registration-system/app/models"
)

// Round2 rounds a monetary amount to two decimals.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// FeeStatus is the canonical derivation of a fee's status from its amounts
// and due date. Every code path that touches status must agree with it, and
// re-running it is always a no-op on already-normalized rows.
func FeeStatus(assigned, paid float64, dueDate, today time.Time) models.FeeStatus {
	switch {
	case paid >= assigned:
		return models.FeePaid
	case paid > 0:
		return models.FeePartial
	case dueDate.Before(today):
		return models.FeeOverdue
	default:
		return models.FeePending
	}
}

// InitialFeeStatus derives the status of a freshly assigned fee: overdue when
// the due date is already strictly in the past, pending otherwise.
func InitialFeeStatus(dueDate, today time.Time) models.FeeStatus {
	return FeeStatus(0, 0, dueDate, today)
}

// ValidateFeeAssignment checks the assign-fee invariants before any write.
func ValidateFeeAssignment(feeType string, assignedAmount float64) error {
	if feeType == "" || len(feeType) > 100 {
		return &ValidationError{Field: "fee_type", Message: "required and must be at most 100 characters"}
	}
	if assignedAmount <= 0 {
		return &InvariantViolation{Message: "assigned amount must be greater than 0"}
	}
	return nil
}

// ApplyPayment computes the fee state after a payment. It rejects
// non-positive amounts and any payment that would push paid_amount above
// assigned_amount, returning the balances the caller needs to react.
func ApplyPayment(assigned, paid, payment float64, dueDate, today time.Time) (newPaid, balance float64, status models.FeeStatus, err error) {
	if payment <= 0 {
		return 0, 0, "", &ValidationError{Field: "payment_amount", Message: "must be greater than 0"}
	}
	newPaid = Round2(paid + payment)
	if newPaid > assigned {
		return 0, 0, "", &OverpaymentError{
			AssignedAmount:     assigned,
			PaidAmount:         paid,
			OutstandingBalance: Round2(assigned - paid),
			AttemptedPayment:   payment,
		}
	}
	balance = Round2(assigned - newPaid)
	return newPaid, balance, FeeStatus(assigned, newPaid, dueDate, today), nil
}

// SummarizeFees tallies totals and per-status counts across a set of fees.
func SummarizeFees(fees []models.Fee) models.FeeSummary {
	var s models.FeeSummary
	s.TotalFees = len(fees)
	for _, f := range fees {
		s.TotalAssigned += f.AssignedAmount
		s.TotalPaid += f.PaidAmount
		s.TotalOutstanding += f.AssignedAmount - f.PaidAmount
		switch f.Status {
		case models.FeePending:
			s.PendingCount++
		case models.FeePartial:
			s.PartialCount++
		case models.FeePaid:
			s.PaidCount++
		case models.FeeOverdue:
			s.OverdueCount++
		}
	}
	s.TotalAssigned = Round2(s.TotalAssigned)
	s.TotalPaid = Round2(s.TotalPaid)
	s.TotalOutstanding = Round2(s.TotalOutstanding)
	return s
}

// BuildTimeline reconstructs a student's payment history from their fees and
// payment events, most recent first. Each fee contributes an assignment event
// at creation, one payment event per recorded payment, and a status_change
// event when the row was touched after creation.
func BuildTimeline(fees []models.Fee, payments []models.FeePayment) []models.TimelineEvent {
	feesByID := make(map[int64]models.Fee, len(fees))
	timeline := make([]models.TimelineEvent, 0, len(fees)+len(payments))

	for _, f := range fees {
		feesByID[f.ID] = f
		timeline = append(timeline, models.TimelineEvent{
			Type:        "assignment",
			Date:        f.CreatedAt,
			FeeID:       f.ID,
			FeeType:     f.FeeType,
			Amount:      Round2(f.AssignedAmount),
			DueDate:     f.DueDate.Format("2006-01-02"),
			Description: "Fee assigned",
		})
		if !f.UpdatedAt.Equal(f.CreatedAt) {
			timeline = append(timeline, models.TimelineEvent{
				Type:        "status_change",
				Date:        f.UpdatedAt,
				FeeID:       f.ID,
				FeeType:     f.FeeType,
				Status:      f.Status,
				Description: "Status updated to " + string(f.Status),
			})
		}
	}

	for _, p := range payments {
		f := feesByID[p.FeeID]
		timeline = append(timeline, models.TimelineEvent{
			Type:        "payment",
			Date:        p.PaymentDate,
			FeeID:       p.FeeID,
			FeeType:     f.FeeType,
			Amount:      Round2(p.Amount),
			Status:      f.Status,
			Description: "Payment recorded",
		})
	}

	sort.SliceStable(timeline, func(i, j int) bool {
		return timeline[i].Date.After(timeline[j].Date)
	})
	return timeline
}
