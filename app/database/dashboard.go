package database

import (
	"database/sql"
	"log"
	"time"

	"github.com/smucherusystems/Student-registration-system/app/models"
	"github.com/smucherusystems/Student-registration-system/app/services"
)

// GetDashboardStats produces the cross-engine rollup for the admin dashboard.
// Each block is computed independently so one empty or broken domain does not
// take the whole dashboard down with it.
func GetDashboardStats(db *sql.DB) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	if err := db.QueryRow(`SELECT COUNT(*) FROM students`).Scan(&stats.TotalStudents); err != nil {
		return nil, err
	}

	feeSummary, err := GetFeeSummary(db)
	if err != nil {
		log.Printf("Dashboard fee summary unavailable: %v", err)
		feeSummary = &models.FeeSummary{}
	}
	stats.FeeSummary = feeSummary

	attendanceStats, err := GetAttendanceStatistics(db)
	if err != nil {
		log.Printf("Dashboard attendance statistics unavailable: %v", err)
	} else {
		stats.OverallAttendance = attendanceStats.Percentage
	}

	var avgGrade sql.NullFloat64
	err = db.QueryRow(
		`SELECT SUM(marks) / NULLIF(SUM(max_marks), 0) * 100 FROM grades`,
	).Scan(&avgGrade)
	if err != nil {
		log.Printf("Dashboard grade average unavailable: %v", err)
	} else if avgGrade.Valid {
		stats.AverageGradePercentage = services.Round2(avgGrade.Float64)
	}

	return stats, nil
}

type gradeMetrics struct {
	TotalSubjects     int     `json:"total_subjects"`
	TotalMarks        float64 `json:"total_marks"`
	TotalMaxMarks     float64 `json:"total_max_marks"`
	AveragePercentage float64 `json:"average_percentage"`
}

type attendanceMetrics struct {
	TotalDays    int     `json:"total_days"`
	AttendedDays int     `json:"attended_days"`
	PresentDays  int     `json:"present_days"`
	AbsentDays   int     `json:"absent_days"`
	Percentage   float64 `json:"attendance_percentage"`
}

type feeMetrics struct {
	TotalFees          int     `json:"total_fees"`
	TotalAssigned      float64 `json:"total_assigned"`
	TotalPaid          float64 `json:"total_paid"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	PaidCount          int     `json:"paid_count"`
	OverdueCount       int     `json:"overdue_count"`
	PaymentPercentage  float64 `json:"payment_percentage"`
}

// GetStudentMetrics builds the cross-engine profile for one student,
// optionally windowed to a date range. A domain with no rows stays
// unavailable; the overall status reflects how many domains have data.
func GetStudentMetrics(db *sql.DB, studentID int64, startDate, endDate *time.Time) (*models.StudentMetrics, error) {
	if err := StudentExists(db, studentID); err != nil {
		return nil, err
	}

	metrics := &models.StudentMetrics{OverallStatus: "incomplete"}
	available := 0

	var gm gradeMetrics
	var gradeAvg sql.NullFloat64
	gradeQuery := `SELECT COUNT(*), COALESCE(SUM(marks), 0), COALESCE(SUM(max_marks), 0),
				   SUM(marks) / NULLIF(SUM(max_marks), 0) * 100
				   FROM grades WHERE student_id = $1`
	gradeArgs := []interface{}{studentID}
	if startDate != nil && endDate != nil {
		gradeQuery += " AND exam_date BETWEEN $2 AND $3"
		gradeArgs = append(gradeArgs, *startDate, *endDate)
	}
	err := db.QueryRow(gradeQuery, gradeArgs...).Scan(&gm.TotalSubjects, &gm.TotalMarks, &gm.TotalMaxMarks, &gradeAvg)
	if err != nil {
		log.Printf("Student %d grade metrics unavailable: %v", studentID, err)
	} else if gm.TotalSubjects > 0 {
		if gradeAvg.Valid {
			gm.AveragePercentage = services.Round2(gradeAvg.Float64)
		}
		metrics.Grades = models.MetricBlock{Available: true, Data: gm}
		available++
	}

	var am attendanceMetrics
	attQuery := `SELECT COUNT(*),
				 COUNT(*) FILTER (WHERE status IN ('present', 'late')),
				 COUNT(*) FILTER (WHERE status = 'present'),
				 COUNT(*) FILTER (WHERE status = 'absent')
				 FROM attendance WHERE student_id = $1`
	attArgs := []interface{}{studentID}
	if startDate != nil && endDate != nil {
		attQuery += " AND attendance_date BETWEEN $2 AND $3"
		attArgs = append(attArgs, *startDate, *endDate)
	}
	err = db.QueryRow(attQuery, attArgs...).Scan(&am.TotalDays, &am.AttendedDays, &am.PresentDays, &am.AbsentDays)
	if err != nil {
		log.Printf("Student %d attendance metrics unavailable: %v", studentID, err)
	} else if am.TotalDays > 0 {
		am.Percentage = services.AttendancePercentage(am.AttendedDays, am.TotalDays)
		metrics.Attendance = models.MetricBlock{Available: true, Data: am}
		available++
	}

	var fm feeMetrics
	feeQuery := `SELECT COUNT(*),
				 COALESCE(SUM(assigned_amount), 0),
				 COALESCE(SUM(paid_amount), 0),
				 COALESCE(SUM(assigned_amount - paid_amount), 0),
				 COUNT(*) FILTER (WHERE status = 'paid'),
				 COUNT(*) FILTER (WHERE status = 'overdue')
				 FROM fees WHERE student_id = $1`
	feeArgs := []interface{}{studentID}
	if startDate != nil && endDate != nil {
		feeQuery += " AND due_date BETWEEN $2 AND $3"
		feeArgs = append(feeArgs, *startDate, *endDate)
	}
	err = db.QueryRow(feeQuery, feeArgs...).Scan(
		&fm.TotalFees, &fm.TotalAssigned, &fm.TotalPaid, &fm.OutstandingBalance,
		&fm.PaidCount, &fm.OverdueCount,
	)
	if err != nil {
		log.Printf("Student %d fee metrics unavailable: %v", studentID, err)
	} else if fm.TotalFees > 0 {
		fm.TotalAssigned = services.Round2(fm.TotalAssigned)
		fm.TotalPaid = services.Round2(fm.TotalPaid)
		fm.OutstandingBalance = services.Round2(fm.OutstandingBalance)
		if fm.TotalAssigned > 0 {
			fm.PaymentPercentage = services.Round2(fm.TotalPaid / fm.TotalAssigned * 100)
		}
		metrics.Fees = models.MetricBlock{Available: true, Data: fm}
		available++
	}

	switch available {
	case 3:
		metrics.OverallStatus = "complete"
	case 0:
		metrics.OverallStatus = "incomplete"
	default:
		metrics.OverallStatus = "partial"
	}
	return metrics, nil
}
