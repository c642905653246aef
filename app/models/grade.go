package models

import "time"

// Grade is one exam score for a student. Percentage is always derived from
// marks/max_marks, never stored.
type Grade struct {
	ID          int64     `json:"id"`
	StudentID   int64     `json:"student_id"`
	SubjectName string    `json:"subject_name"`
	Marks       float64   `json:"marks"`
	MaxMarks    float64   `json:"max_marks"`
	ExamType    string    `json:"exam_type"`
	ExamDate    time.Time `json:"exam_date"`
	Percentage  float64   `json:"percentage"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	StudentName string `json:"student_name,omitempty"`
}

// GradeSummary is a student's aggregate across all entries. The average is
// weighted by max_marks: sum(marks)/sum(max_marks)x100, not a mean of
// per-entry percentages.
type GradeSummary struct {
	GradeCount        int     `json:"grade_count"`
	TotalMarks        float64 `json:"total_marks"`
	TotalMaxMarks     float64 `json:"total_max_marks"`
	AveragePercentage float64 `json:"average_percentage"`
}

// ClassRank is one row of a course ranking. Students with no grade entries
// are not ranked at all.
type ClassRank struct {
	Rank              int     `json:"rank"`
	StudentID         int64   `json:"student_id"`
	StudentName       string  `json:"student_name"`
	Course            string  `json:"course"`
	AveragePercentage float64 `json:"average_percentage"`
}
