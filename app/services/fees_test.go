package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smucherusystems/Student-registration-system/app/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestFeeStatus(t *testing.T) {
	today := date(2026, time.March, 15)

	tests := []struct {
		name     string
		assigned float64
		paid     float64
		dueDate  time.Time
		want     models.FeeStatus
	}{
		{"fully paid", 500, 500, date(2026, time.April, 1), models.FeePaid},
		{"paid wins over past due date", 500, 500, date(2026, time.January, 1), models.FeePaid},
		{"partial", 500, 100, date(2026, time.April, 1), models.FeePartial},
		{"partial wins over past due date", 500, 100, date(2026, time.January, 1), models.FeePartial},
		{"unpaid past due", 500, 0, date(2026, time.March, 14), models.FeeOverdue},
		{"unpaid due today is pending", 500, 0, today, models.FeePending},
		{"unpaid future due", 500, 0, date(2026, time.April, 1), models.FeePending},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FeeStatus(tt.assigned, tt.paid, tt.dueDate, today))
		})
	}
}

func TestFeeStatusIdempotent(t *testing.T) {
	today := date(2026, time.March, 15)
	due := date(2026, time.January, 1)

	first := FeeStatus(500, 100, due, today)
	second := FeeStatus(500, 100, due, today)
	assert.Equal(t, first, second)
}

func TestInitialFeeStatus(t *testing.T) {
	today := date(2026, time.March, 15)

	assert.Equal(t, models.FeePending, InitialFeeStatus(date(2026, time.April, 1), today))
	assert.Equal(t, models.FeePending, InitialFeeStatus(today, today))
	assert.Equal(t, models.FeeOverdue, InitialFeeStatus(date(2026, time.March, 1), today))
}

func TestValidateFeeAssignment(t *testing.T) {
	assert.NoError(t, ValidateFeeAssignment("Tuition", 500))

	err := ValidateFeeAssignment("", 500)
	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "fee_type", vErr.Field)

	err = ValidateFeeAssignment("Tuition", 0)
	var iErr *InvariantViolation
	require.ErrorAs(t, err, &iErr)

	err = ValidateFeeAssignment("Tuition", -10)
	require.ErrorAs(t, err, &iErr)
}

func TestApplyPayment(t *testing.T) {
	today := date(2026, time.March, 15)
	due := date(2026, time.April, 1)

	newPaid, balance, status, err := ApplyPayment(500, 0, 200, due, today)
	require.NoError(t, err)
	assert.Equal(t, 200.0, newPaid)
	assert.Equal(t, 300.0, balance)
	assert.Equal(t, models.FeePartial, status)

	newPaid, balance, status, err = ApplyPayment(500, 200, 300, due, today)
	require.NoError(t, err)
	assert.Equal(t, 500.0, newPaid)
	assert.Equal(t, 0.0, balance)
	assert.Equal(t, models.FeePaid, status)
}

func TestApplyPaymentRejectsOverpayment(t *testing.T) {
	today := date(2026, time.March, 15)
	due := date(2026, time.April, 1)

	_, _, _, err := ApplyPayment(500, 400, 200, due, today)
	var opErr *OverpaymentError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, 500.0, opErr.AssignedAmount)
	assert.Equal(t, 400.0, opErr.PaidAmount)
	assert.Equal(t, 100.0, opErr.OutstandingBalance)
	assert.Equal(t, 200.0, opErr.AttemptedPayment)
}

func TestApplyPaymentRejectsNonPositiveAmount(t *testing.T) {
	today := date(2026, time.March, 15)
	due := date(2026, time.April, 1)

	var vErr *ValidationError
	_, _, _, err := ApplyPayment(500, 0, 0, due, today)
	require.ErrorAs(t, err, &vErr)

	_, _, _, err = ApplyPayment(500, 0, -50, due, today)
	require.ErrorAs(t, err, &vErr)
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 0.3, Round2(0.1+0.2))
	assert.Equal(t, 66.67, Round2(100.0/150.0*100))
	assert.Equal(t, 100.0, Round2(100))
}

func TestSummarizeFees(t *testing.T) {
	fees := []models.Fee{
		{AssignedAmount: 500, PaidAmount: 500, Status: models.FeePaid},
		{AssignedAmount: 300, PaidAmount: 100, Status: models.FeePartial},
		{AssignedAmount: 200, PaidAmount: 0, Status: models.FeeOverdue},
		{AssignedAmount: 150, PaidAmount: 0, Status: models.FeePending},
	}

	s := SummarizeFees(fees)
	assert.Equal(t, 4, s.TotalFees)
	assert.Equal(t, 1150.0, s.TotalAssigned)
	assert.Equal(t, 600.0, s.TotalPaid)
	assert.Equal(t, 550.0, s.TotalOutstanding)
	assert.Equal(t, 1, s.PaidCount)
	assert.Equal(t, 1, s.PartialCount)
	assert.Equal(t, 1, s.OverdueCount)
	assert.Equal(t, 1, s.PendingCount)
}

func TestSummarizeFeesEmpty(t *testing.T) {
	s := SummarizeFees(nil)
	assert.Equal(t, 0, s.TotalFees)
	assert.Equal(t, 0.0, s.TotalAssigned)
	assert.Equal(t, 0.0, s.TotalOutstanding)
}

func TestBuildTimeline(t *testing.T) {
	created := date(2026, time.January, 10)
	updated := date(2026, time.February, 5)

	fees := []models.Fee{
		{
			ID:             1,
			FeeType:        "Tuition",
			AssignedAmount: 500,
			DueDate:        date(2026, time.March, 1),
			Status:         models.FeePartial,
			CreatedAt:      created,
			UpdatedAt:      updated,
		},
	}
	payments := []models.FeePayment{
		{ID: 1, FeeID: 1, Amount: 100, PaymentDate: date(2026, time.January, 20)},
		{ID: 2, FeeID: 1, Amount: 50, PaymentDate: date(2026, time.February, 5)},
	}

	timeline := BuildTimeline(fees, payments)
	require.Len(t, timeline, 4)

	// Most recent first
	for i := 1; i < len(timeline); i++ {
		assert.False(t, timeline[i].Date.After(timeline[i-1].Date),
			"timeline must be sorted newest first")
	}

	types := make(map[string]int)
	for _, ev := range timeline {
		types[ev.Type]++
	}
	assert.Equal(t, 1, types["assignment"])
	assert.Equal(t, 2, types["payment"])
	assert.Equal(t, 1, types["status_change"])
}

func TestBuildTimelineUntouchedFeeHasNoStatusChange(t *testing.T) {
	created := date(2026, time.January, 10)

	fees := []models.Fee{
		{ID: 1, FeeType: "Library", AssignedAmount: 50, DueDate: date(2026, time.March, 1),
			Status: models.FeePending, CreatedAt: created, UpdatedAt: created},
	}

	timeline := BuildTimeline(fees, nil)
	require.Len(t, timeline, 1)
	assert.Equal(t, "assignment", timeline[0].Type)
}
