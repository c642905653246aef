package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smucherusystems/Student-registration-system/app/models"
)

func TestStructValidStudent(t *testing.T) {
	student := models.Student{
		Name:   "Amina Okello",
		Email:  "amina@example.com",
		Phone:  "0700123456",
		Course: "Computer Science",
		Gender: models.Female,
	}
	assert.NoError(t, Struct(&student))
}

func TestStructMissingRequiredFields(t *testing.T) {
	err := Struct(&models.Student{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name is required")
	assert.Contains(t, err.Error(), "email is required")
}

func TestStructInvalidEmail(t *testing.T) {
	student := models.Student{
		Name:   "Amina Okello",
		Email:  "not-an-email",
		Phone:  "0700123456",
		Course: "Computer Science",
		Gender: models.Female,
	}
	err := Struct(&student)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "email must be a valid email address")
}

func TestStructPhoneTooShort(t *testing.T) {
	student := models.Student{
		Name:   "Amina Okello",
		Email:  "amina@example.com",
		Phone:  "070",
		Course: "Computer Science",
		Gender: models.Female,
	}
	err := Struct(&student)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "phone must be at least 10 characters")
}

func TestStructInvalidGender(t *testing.T) {
	student := models.Student{
		Name:   "Amina Okello",
		Email:  "amina@example.com",
		Phone:  "0700123456",
		Course: "Computer Science",
		Gender: "unknown",
	}
	err := Struct(&student)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "gender must be one of")
}
