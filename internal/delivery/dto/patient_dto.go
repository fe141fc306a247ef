package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreatePatientRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Notes       string `json:"notes"`
}

// UpdatePatientRequest carries the full editable field set; the edit
// screen always submits every field it shows.
type UpdatePatientRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	Phone       string `json:"phone" validate:"required,max=20"`
	Email       string `json:"email" validate:"omitempty,email"`
	Address     string `json:"address"`
	DateOfBirth string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
	Gender      string `json:"gender" validate:"omitempty,oneof=M F"`
	Notes       string `json:"notes"`
}

type PatientResponse struct {
	ID          uuid.UUID `json:"id"`
	PatientCode string    `json:"patient_code"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	Email       string    `json:"email,omitempty"`
	Address     string    `json:"address,omitempty"`
	DateOfBirth string    `json:"date_of_birth,omitempty"`
	Gender      string    `json:"gender,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
