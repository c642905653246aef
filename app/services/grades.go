package services

import (
	"sort"

	"github.com/smucherusystems/Student-registration-system/app/models"
)

// GradePercentage derives the per-entry percentage from marks and max marks.
func GradePercentage(marks, maxMarks float64) float64 {
	if maxMarks <= 0 {
		return 0
	}
	return Round2(marks / maxMarks * 100)
}

// ValidateGradeEntry checks the grade invariants before any write.
func ValidateGradeEntry(subjectName string, marks, maxMarks float64, examType string) error {
	if subjectName == "" || len(subjectName) > 100 {
		return &ValidationError{Field: "subject_name", Message: "required and must be at most 100 characters"}
	}
	if examType == "" || len(examType) > 50 {
		return &ValidationError{Field: "exam_type", Message: "required and must be at most 50 characters"}
	}
	if marks < 0 {
		return &InvariantViolation{Message: "marks cannot be negative"}
	}
	if maxMarks <= 0 {
		return &InvariantViolation{Message: "max marks must be greater than 0"}
	}
	if marks > maxMarks {
		return &InvariantViolation{Message: "marks cannot exceed max marks"}
	}
	return nil
}

// SummarizeGrades aggregates a student's entries. The average is weighted by
// max_marks (sum of marks over sum of max marks), which diverges from a
// simple mean of per-entry percentages whenever entries carry different
// max_marks.
func SummarizeGrades(grades []models.Grade) models.GradeSummary {
	var s models.GradeSummary
	s.GradeCount = len(grades)
	for _, g := range grades {
		s.TotalMarks += g.Marks
		s.TotalMaxMarks += g.MaxMarks
	}
	if s.TotalMaxMarks > 0 {
		s.AveragePercentage = Round2(s.TotalMarks / s.TotalMaxMarks * 100)
	}
	return s
}

// RankStudents orders course rankings by weighted average, descending, and
// assigns 1-based ranks. Callers pass only students that have at least one
// grade entry; ties keep their incoming order.
func RankStudents(rows []models.ClassRank) []models.ClassRank {
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].AveragePercentage > rows[j].AveragePercentage
	})
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
