package models

import "time"

// Student is the identity anchor every fee, attendance, and grade row hangs off.
// Deleting a student cascades to all dependent rows at the store level.
type Student struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name" validate:"required,min=2,max=100"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone" validate:"required,min=10,max=15"`
	Course    string    `json:"course" validate:"required,max=100"`
	Gender    Gender    `json:"gender" validate:"required,oneof=male female other"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
