package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smucherusystems/Student-registration-system/app/models"
)

func TestAttendancePercentage(t *testing.T) {
	assert.Equal(t, 0.0, AttendancePercentage(0, 0))
	assert.Equal(t, 100.0, AttendancePercentage(5, 5))
	assert.Equal(t, 75.0, AttendancePercentage(3, 4))
	assert.Equal(t, 66.67, AttendancePercentage(2, 3))
}

func TestTallyAttendance(t *testing.T) {
	records := []models.Attendance{
		{Status: models.Present},
		{Status: models.Present},
		{Status: models.Absent},
		{Status: models.Late},
	}

	s := TallyAttendance(records)
	assert.Equal(t, 4, s.TotalDays)
	assert.Equal(t, 2, s.PresentCount)
	assert.Equal(t, 1, s.AbsentCount)
	assert.Equal(t, 1, s.LateCount)
	assert.Equal(t, 0, s.ExcusedCount)
	// Present and late both count as attended
	assert.Equal(t, 3, s.AttendedDays)
	assert.Equal(t, 75.0, s.Percentage)
}

func TestTallyAttendanceEmpty(t *testing.T) {
	s := TallyAttendance(nil)
	assert.Equal(t, 0, s.TotalDays)
	assert.Equal(t, 0.0, s.Percentage)
}

func TestTallyAttendanceExcusedNotAttended(t *testing.T) {
	records := []models.Attendance{
		{Status: models.Present},
		{Status: models.Excused},
	}

	s := TallyAttendance(records)
	assert.Equal(t, 1, s.AttendedDays)
	assert.Equal(t, 50.0, s.Percentage)
}

func TestNormalizeMonthYear(t *testing.T) {
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)

	month, year := NormalizeMonthYear(3, 2025, now)
	assert.Equal(t, 3, month)
	assert.Equal(t, 2025, year)

	month, year = NormalizeMonthYear(0, 2025, now)
	assert.Equal(t, 8, month)

	month, year = NormalizeMonthYear(13, 2025, now)
	assert.Equal(t, 8, month)

	month, year = NormalizeMonthYear(3, 1999, now)
	assert.Equal(t, 2026, year)

	month, year = NormalizeMonthYear(3, 2101, now)
	assert.Equal(t, 2026, year)
}

func TestBuildCalendar(t *testing.T) {
	// October 2025 has 31 days and starts on a Wednesday
	records := []models.Attendance{
		{AttendanceDate: date(2025, time.October, 1), Status: models.Present},
		{AttendanceDate: date(2025, time.October, 2), Status: models.Absent, Notes: "sick"},
	}

	cal := BuildCalendar(10, 2025, records)
	assert.Equal(t, 10, cal.Month)
	assert.Equal(t, 2025, cal.Year)
	assert.Equal(t, "October", cal.MonthName)
	assert.Equal(t, 31, cal.DaysInMonth)
	assert.Equal(t, 3, cal.FirstDayOfWeek)

	// 3 leading empty cells plus one cell per day
	require.Len(t, cal.Days, 34)
	for i := 0; i < 3; i++ {
		assert.True(t, cal.Days[i].IsEmpty)
	}

	first := cal.Days[3]
	assert.Equal(t, 1, first.Day)
	assert.Equal(t, "2025-10-01", first.Date)
	assert.Equal(t, "present", first.Status)

	second := cal.Days[4]
	assert.Equal(t, "absent", second.Status)
	assert.Equal(t, "sick", second.Notes)

	// Unmarked day renders as an ordinary cell without status
	third := cal.Days[5]
	assert.False(t, third.IsEmpty)
	assert.Equal(t, 3, third.Day)
	assert.Empty(t, third.Status)

	assert.Equal(t, 2, cal.Statistics.TotalDays)
	assert.Equal(t, 50.0, cal.Statistics.Percentage)
}

func TestBuildCalendarMonthStartingSunday(t *testing.T) {
	// March 2026 starts on a Sunday, so no leading empty cells
	cal := BuildCalendar(3, 2026, nil)
	assert.Equal(t, 0, cal.FirstDayOfWeek)
	assert.Len(t, cal.Days, 31)
	assert.Equal(t, 1, cal.Days[0].Day)
}

func TestBuildCalendarFebruaryLeapYear(t *testing.T) {
	cal := BuildCalendar(2, 2028, nil)
	assert.Equal(t, 29, cal.DaysInMonth)

	cal = BuildCalendar(2, 2026, nil)
	assert.Equal(t, 28, cal.DaysInMonth)
}
