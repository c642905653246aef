package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smucherusystems/Student-registration-system/app/models"
)

func TestGradePercentage(t *testing.T) {
	assert.Equal(t, 90.0, GradePercentage(90, 100))
	assert.Equal(t, 20.0, GradePercentage(10, 50))
	assert.Equal(t, 66.67, GradePercentage(2, 3))
	assert.Equal(t, 0.0, GradePercentage(10, 0))
}

func TestValidateGradeEntry(t *testing.T) {
	assert.NoError(t, ValidateGradeEntry("Mathematics", 85, 100, "midterm"))
	// Marks equal to max marks is a valid boundary
	assert.NoError(t, ValidateGradeEntry("Mathematics", 100, 100, "final"))

	var vErr *ValidationError
	require.ErrorAs(t, ValidateGradeEntry("", 85, 100, "midterm"), &vErr)
	assert.Equal(t, "subject_name", vErr.Field)

	require.ErrorAs(t, ValidateGradeEntry("Mathematics", 85, 100, ""), &vErr)
	assert.Equal(t, "exam_type", vErr.Field)

	var iErr *InvariantViolation
	require.ErrorAs(t, ValidateGradeEntry("Mathematics", -1, 100, "midterm"), &iErr)
	require.ErrorAs(t, ValidateGradeEntry("Mathematics", 85, 0, "midterm"), &iErr)
	require.ErrorAs(t, ValidateGradeEntry("Mathematics", 101, 100, "midterm"), &iErr)
}

func TestSummarizeGradesWeightedAverage(t *testing.T) {
	grades := []models.Grade{
		{Marks: 90, MaxMarks: 100},
		{Marks: 10, MaxMarks: 50},
	}

	s := SummarizeGrades(grades)
	assert.Equal(t, 2, s.GradeCount)
	assert.Equal(t, 100.0, s.TotalMarks)
	assert.Equal(t, 150.0, s.TotalMaxMarks)
	// Weighted by max marks: 100/150, not the simple mean of 90% and 20%
	assert.Equal(t, 66.67, s.AveragePercentage)
}

func TestSummarizeGradesEmpty(t *testing.T) {
	s := SummarizeGrades(nil)
	assert.Equal(t, 0, s.GradeCount)
	assert.Equal(t, 0.0, s.AveragePercentage)
}

func TestRankStudents(t *testing.T) {
	rows := []models.ClassRank{
		{StudentID: 1, StudentName: "Aisha", AveragePercentage: 72.5},
		{StudentID: 2, StudentName: "Brian", AveragePercentage: 91.0},
		{StudentID: 3, StudentName: "Chloe", AveragePercentage: 85.0},
	}

	ranked := RankStudents(rows)
	require.Len(t, ranked, 3)
	assert.Equal(t, int64(2), ranked[0].StudentID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, int64(3), ranked[1].StudentID)
	assert.Equal(t, 2, ranked[1].Rank)
	assert.Equal(t, int64(1), ranked[2].StudentID)
	assert.Equal(t, 3, ranked[2].Rank)
}

func TestRankStudentsTiesKeepIncomingOrder(t *testing.T) {
	rows := []models.ClassRank{
		{StudentID: 1, AveragePercentage: 80.0},
		{StudentID: 2, AveragePercentage: 80.0},
	}

	ranked := RankStudents(rows)
	assert.Equal(t, int64(1), ranked[0].StudentID)
	assert.Equal(t, int64(2), ranked[1].StudentID)
	assert.Equal(t, 1, ranked[0].Rank)
	assert.Equal(t, 2, ranked[1].Rank)
}

func TestRankStudentsEmpty(t *testing.T) {
	assert.Empty(t, RankStudents(nil))
}
