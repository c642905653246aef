package services

import (
	"fmt"
	"time"

	"github.com/smucherusystems/Student-registration-system/app/models"
)

// AttendancePercentage derives the percentage from attended and total day
// counts. No marked days yields 0, not an error.
func AttendancePercentage(attended, total int) float64 {
	if total == 0 {
		return 0
	}
	return Round2(float64(attended) / float64(total) * 100)
}

// TallyAttendance counts per-status totals and the derived percentage across
// a set of marks. Present and late count as attended.
func TallyAttendance(records []models.Attendance) models.AttendanceStats {
	var s models.AttendanceStats
	s.TotalDays = len(records)
	for _, r := range records {
		switch r.Status {
		case models.Present:
			s.PresentCount++
		case models.Absent:
			s.AbsentCount++
		case models.Late:
			s.LateCount++
		case models.Excused:
			s.ExcusedCount++
		}
	}
	s.AttendedDays = s.PresentCount + s.LateCount
	s.Percentage = AttendancePercentage(s.AttendedDays, s.TotalDays)
	return s
}

// NormalizeMonthYear substitutes the current month/year for missing or
// out-of-range values (month outside [1,12], year outside [2000,2100]).
func NormalizeMonthYear(month, year int, now time.Time) (int, int) {
	if month < 1 || month > 12 {
		month = int(now.Month())
	}
	if year < 2000 || year > 2100 {
		year = now.Year()
	}
	return month, year
}

// BuildCalendar produces the month grid for a student's marks: leading empty
// cells equal to the weekday index of the first day (0=Sunday), then one cell
// per calendar day, plus month-scoped statistics. Pure function of its inputs;
// records are expected to already be scoped to the month.
func BuildCalendar(month, year int, records []models.Attendance) models.AttendanceCalendar {
	firstDay := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()
	firstWeekday := int(firstDay.Weekday())

	byDate := make(map[string]models.Attendance, len(records))
	for _, r := range records {
		byDate[r.AttendanceDate.Format("2006-01-02")] = r
	}

	days := make([]models.CalendarDay, 0, firstWeekday+daysInMonth)
	for i := 0; i < firstWeekday; i++ {
		days = append(days, models.CalendarDay{IsEmpty: true})
	}
	for day := 1; day <= daysInMonth; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		cell := models.CalendarDay{Day: day, Date: date}
		if mark, ok := byDate[date]; ok {
			cell.Status = string(mark.Status)
			cell.Notes = mark.Notes
		}
		days = append(days, cell)
	}

	return models.AttendanceCalendar{
		Month:          month,
		Year:           year,
		MonthName:      firstDay.Month().String(),
		DaysInMonth:    daysInMonth,
		FirstDayOfWeek: firstWeekday,
		Days:           days,
		Statistics:     TallyAttendance(records),
	}
}
