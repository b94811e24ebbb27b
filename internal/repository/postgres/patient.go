package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/totallife/clinical-api/internal/model"
)

const patientColumns = `patient_id, first_name, last_name, date_of_birth, address, phone_number, email, created_at, updated_at`

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) (created *model.Patient, err error) {
	defer func(start time.Time) { r.observe("patient_create", start, err) }(time.Now())

	query := `
		INSERT INTO patient (patient_id, first_name, last_name, date_of_birth, address, phone_number, email)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + patientColumns

	var out model.Patient
	err = r.db.GetContext(ctx, &out, query,
		uuid.NewString(),
		patient.FirstName,
		patient.LastName,
		patient.DateOfBirth,
		patient.Address,
		patient.PhoneNumber,
		patient.Email,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	return &out, nil
}

func (r *patientRepository) Get(ctx context.Context, id string) (p *model.Patient, err error) {
	defer func(start time.Time) { r.observe("patient_get", start, err) }(time.Now())

	query := `SELECT ` + patientColumns + ` FROM patient WHERE patient_id = $1`
	var patient model.Patient
	if err = r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, notFound(err)
	}
	return &patient, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) (updated *model.Patient, err error) {
	defer func(start time.Time) { r.observe("patient_update", start, err) }(time.Now())

	query := `
		UPDATE patient
		SET first_name = $1, last_name = $2, date_of_birth = $3, address = $4,
			phone_number = $5, email = $6, updated_at = NOW()
		WHERE patient_id = $7
		RETURNING ` + patientColumns

	var out model.Patient
	err = r.db.GetContext(ctx, &out, query,
		patient.FirstName,
		patient.LastName,
		patient.DateOfBirth,
		patient.Address,
		patient.PhoneNumber,
		patient.Email,
		patient.ID,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *patientRepository) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { r.observe("patient_delete", start, err) }(time.Now())

	if _, err = r.db.ExecContext(ctx, `DELETE FROM patient WHERE patient_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	return nil
}

func (r *patientRepository) List(ctx context.Context) (list []*model.Patient, err error) {
	defer func(start time.Time) { r.observe("patient_list", start, err) }(time.Now())

	patients := []*model.Patient{}
	query := `SELECT ` + patientColumns + ` FROM patient ORDER BY created_at, patient_id`
	if err = r.db.SelectContext(ctx, &patients, query); err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}
