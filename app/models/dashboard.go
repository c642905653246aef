package models

// DashboardStats aggregates read-only rollups across the three engines.
type DashboardStats struct {
	TotalStudents          int         `json:"total_students"`
	FeeSummary             *FeeSummary `json:"fee_summary"`
	OverallAttendance      float64     `json:"overall_attendance_percentage"`
	AverageGradePercentage float64     `json:"average_grade_percentage"`
}

// MetricBlock is one domain's slice of a student profile. Absent underlying
// data leaves Available false and Data nil rather than failing the profile.
type MetricBlock struct {
	Available bool        `json:"available"`
	Data      interface{} `json:"data"`
}

// StudentMetrics is the cross-engine profile for one student.
type StudentMetrics struct {
	Grades        MetricBlock `json:"grades"`
	Attendance    MetricBlock `json:"attendance"`
	Fees          MetricBlock `json:"fees"`
	OverallStatus string      `json:"overall_status"` // complete, partial, incomplete
}
