package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/totallife/clinical-api/internal/model"
)

const appointmentColumns = `appointment_id, clinician_id, patient_id, appointment_datetime, appointment_purpose, created_at, updated_at`

func (r *appointmentRepository) Create(ctx context.Context, appointment *model.Appointment) (created *model.Appointment, err error) {
	defer func(start time.Time) { r.observe("appointment_create", start, err) }(time.Now())

	query := `
		INSERT INTO appointments (appointment_id, clinician_id, patient_id, appointment_datetime, appointment_purpose)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + appointmentColumns

	var out model.Appointment
	err = r.db.GetContext(ctx, &out, query,
		uuid.NewString(),
		appointment.ClinicianID,
		appointment.PatientID,
		appointment.AppointmentDateTime,
		appointment.AppointmentPurpose,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	return &out, nil
}

func (r *appointmentRepository) Get(ctx context.Context, id string) (a *model.Appointment, err error) {
	defer func(start time.Time) { r.observe("appointment_get", start, err) }(time.Now())

	query := `SELECT ` + appointmentColumns + ` FROM appointments WHERE appointment_id = $1`
	var appointment model.Appointment
	if err = r.db.GetContext(ctx, &appointment, query, id); err != nil {
		return nil, notFound(err)
	}
	return &appointment, nil
}

func (r *appointmentRepository) Update(ctx context.Context, appointment *model.Appointment) (updated *model.Appointment, err error) {
	defer func(start time.Time) { r.observe("appointment_update", start, err) }(time.Now())

	query := `
		UPDATE appointments
		SET clinician_id = $1, patient_id = $2, appointment_datetime = $3,
			appointment_purpose = $4, updated_at = NOW()
		WHERE appointment_id = $5
		RETURNING ` + appointmentColumns

	var out model.Appointment
	err = r.db.GetContext(ctx, &out, query,
		appointment.ClinicianID,
		appointment.PatientID,
		appointment.AppointmentDateTime,
		appointment.AppointmentPurpose,
		appointment.ID,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *appointmentRepository) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { r.observe("appointment_delete", start, err) }(time.Now())

	if _, err = r.db.ExecContext(ctx, `DELETE FROM appointments WHERE appointment_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	return nil
}

func (r *appointmentRepository) List(ctx context.Context) (list []*model.Appointment, err error) {
	defer func(start time.Time) { r.observe("appointment_list", start, err) }(time.Now())

	appointments := []*model.Appointment{}
	query := `SELECT ` + appointmentColumns + ` FROM appointments ORDER BY created_at, appointment_id`
	if err = r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

// ListWithNames returns every appointment with the full names of both
// parties. Left joins keep appointments whose clinician or patient is gone.
func (r *appointmentRepository) ListWithNames(ctx context.Context) (list []*model.AppointmentWithNames, err error) {
	defer func(start time.Time) { r.observe("appointment_list_with_names", start, err) }(time.Now())

	query := `
		SELECT
			a.appointment_id, a.clinician_id, a.patient_id, a.appointment_datetime,
			a.appointment_purpose, a.created_at, a.updated_at,
			c.first_name || ' ' || c.last_name AS clinician_full_name,
			p.first_name || ' ' || p.last_name AS patient_full_name
		FROM appointments a
		LEFT JOIN clinician c ON a.clinician_id = c.clinician_id
		LEFT JOIN patient p ON a.patient_id = p.patient_id
		ORDER BY a.created_at, a.appointment_id
	`

	appointments := []*model.AppointmentWithNames{}
	if err = r.db.SelectContext(ctx, &appointments, query); err != nil {
		return nil, fmt.Errorf("failed to list appointments with names: %w", err)
	}
	return appointments, nil
}
