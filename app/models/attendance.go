package models

import "time"

// Attendance is one student's mark for one calendar day. The store enforces
// at most one row per (student_id, attendance_date).
type Attendance struct {
	ID             int64            `json:"id"`
	StudentID      int64            `json:"student_id"`
	AttendanceDate time.Time        `json:"attendance_date"`
	Status         AttendanceStatus `json:"status"`
	Notes          string           `json:"notes,omitempty"`
	MarkedBy       string           `json:"marked_by,omitempty"`
	CreatedAt      time.Time        `json:"created_at"`
	UpdatedAt      time.Time        `json:"updated_at"`

	StudentName string `json:"student_name,omitempty"`
	Course      string `json:"course,omitempty"`
}

// AttendanceStats tallies marks and the derived percentage. Present and late
// count as attended; absent and excused count only toward the total.
type AttendanceStats struct {
	TotalDays    int     `json:"total_days"`
	PresentCount int     `json:"present_count"`
	AbsentCount  int     `json:"absent_count"`
	LateCount    int     `json:"late_count"`
	ExcusedCount int     `json:"excused_count"`
	AttendedDays int     `json:"attended_count"`
	Percentage   float64 `json:"attendance_percentage"`
}

// CalendarDay is one cell of a month grid. Leading placeholder cells carry
// IsEmpty=true so the first day lines up under its weekday.
type CalendarDay struct {
	Day     int    `json:"day,omitempty"`
	Date    string `json:"date,omitempty"`
	Status  string `json:"status,omitempty"`
	Notes   string `json:"notes,omitempty"`
	IsEmpty bool   `json:"is_empty"`
}

// AttendanceCalendar is the month grid plus month-scoped statistics.
type AttendanceCalendar struct {
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	MonthName      string          `json:"month_name"`
	DaysInMonth    int             `json:"days_in_month"`
	FirstDayOfWeek int             `json:"first_day_of_week"`
	Days           []CalendarDay   `json:"calendar_days"`
	Statistics     AttendanceStats `json:"statistics"`
}
