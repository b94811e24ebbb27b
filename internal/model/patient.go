package model

import "time"

type Patient struct {
	ID          string    `db:"patient_id" json:"patient_id"`
	FirstName   string    `db:"first_name" json:"first_name"`
	LastName    string    `db:"last_name" json:"last_name"`
	DateOfBirth string    `db:"date_of_birth" json:"date_of_birth"`
	Address     string    `db:"address" json:"address"`
	PhoneNumber string    `db:"phone_number" json:"phone_number"`
	Email       string    `db:"email" json:"email"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// PatientRequest is the create and update body. Every field is required.
type PatientRequest struct {
	FirstName   string `json:"first_name" validate:"notblank"`
	LastName    string `json:"last_name" validate:"notblank"`
	DateOfBirth string `json:"date_of_birth" validate:"notblank"`
	Address     string `json:"address" validate:"notblank"`
	PhoneNumber string `json:"phone_number" validate:"notblank"`
	Email       string `json:"email" validate:"notblank"`
}

func (r *PatientRequest) ToPatient() *Patient {
	return &Patient{
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		Address:     r.Address,
		PhoneNumber: r.PhoneNumber,
		Email:       r.Email,
	}
}
