package model

import "time"

// Appointment links a clinician and a patient. The ids are soft
// references and are not checked against the other tables.
type Appointment struct {
	ID                  string    `db:"appointment_id" json:"appointment_id"`
	ClinicianID         string    `db:"clinician_id" json:"clinician_id"`
	PatientID           string    `db:"patient_id" json:"patient_id"`
	AppointmentDateTime string    `db:"appointment_datetime" json:"appointment_datetime"`
	AppointmentPurpose  string    `db:"appointment_purpose" json:"appointment_purpose"`
	CreatedAt           time.Time `db:"created_at" json:"created_at"`
	UpdatedAt           time.Time `db:"updated_at" json:"updated_at"`
}

// AppointmentWithNames carries display names of both parties. A name is
// nil when the referenced row no longer exists.
type AppointmentWithNames struct {
	Appointment
	ClinicianFullName *string `db:"clinician_full_name" json:"clinician_full_name,omitempty"`
	PatientFullName   *string `db:"patient_full_name" json:"patient_full_name,omitempty"`
}

type AppointmentRequest struct {
	ClinicianID         string `json:"clinician_id" validate:"notblank"`
	PatientID           string `json:"patient_id" validate:"notblank"`
	AppointmentDateTime string `json:"appointment_datetime" validate:"notblank"`
	AppointmentPurpose  string `json:"appointment_purpose" validate:"notblank"`
}

func (r *AppointmentRequest) ToAppointment() *Appointment {
	return &Appointment{
		ClinicianID:         r.ClinicianID,
		PatientID:           r.PatientID,
		AppointmentDateTime: r.AppointmentDateTime,
		AppointmentPurpose:  r.AppointmentPurpose,
	}
}
