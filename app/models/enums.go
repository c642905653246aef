package models

// FeeStatus defines the derived status values for a fee.
type FeeStatus string

const (
	FeePending FeeStatus = "pending"
	FeePartial FeeStatus = "partial"
	FeePaid    FeeStatus = "paid"
	FeeOverdue FeeStatus = "overdue"
)

// ValidFeeStatus reports whether s is one of the known fee statuses.
func ValidFeeStatus(s string) bool {
	switch FeeStatus(s) {
	case FeePending, FeePartial, FeePaid, FeeOverdue:
		return true
	}
	return false
}

// AttendanceStatus defines the possible status values for attendance.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
	Late    AttendanceStatus = "late"
	Excused AttendanceStatus = "excused"
)

// ValidAttendanceStatus reports whether s is one of the known attendance statuses.
func ValidAttendanceStatus(s string) bool {
	switch AttendanceStatus(s) {
	case Present, Absent, Late, Excused:
		return true
	}
	return false
}

// Gender defines the possible gender values for a student.
type Gender string

const (
	Male   Gender = "male"
	Female Gender = "female"
	Other  Gender = "other"
)
