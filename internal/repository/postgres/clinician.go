package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/totallife/clinical-api/internal/model"
)

const clinicianColumns = `clinician_id, first_name, last_name, npi_number, state, profile, created_at, updated_at`

func (r *clinicianRepository) Create(ctx context.Context, clinician *model.Clinician) (created *model.Clinician, err error) {
	defer func(start time.Time) { r.observe("clinician_create", start, err) }(time.Now())

	query := `
		INSERT INTO clinician (clinician_id, first_name, last_name, npi_number, state, profile)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + clinicianColumns

	var out model.Clinician
	err = r.db.GetContext(ctx, &out, query,
		uuid.NewString(),
		clinician.FirstName,
		clinician.LastName,
		clinician.NPINumber,
		clinician.State,
		clinician.Profile,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create clinician: %w", err)
	}
	return &out, nil
}

func (r *clinicianRepository) Get(ctx context.Context, id string) (c *model.Clinician, err error) {
	defer func(start time.Time) { r.observe("clinician_get", start, err) }(time.Now())

	query := `SELECT ` + clinicianColumns + ` FROM clinician WHERE clinician_id = $1`
	var clinician model.Clinician
	if err = r.db.GetContext(ctx, &clinician, query, id); err != nil {
		return nil, notFound(err)
	}
	return &clinician, nil
}

func (r *clinicianRepository) Update(ctx context.Context, clinician *model.Clinician) (updated *model.Clinician, err error) {
	defer func(start time.Time) { r.observe("clinician_update", start, err) }(time.Now())

	query := `
		UPDATE clinician
		SET first_name = $1, last_name = $2, npi_number = $3, state = $4, profile = $5, updated_at = NOW()
		WHERE clinician_id = $6
		RETURNING ` + clinicianColumns

	var out model.Clinician
	err = r.db.GetContext(ctx, &out, query,
		clinician.FirstName,
		clinician.LastName,
		clinician.NPINumber,
		clinician.State,
		clinician.Profile,
		clinician.ID,
	)
	if err != nil {
		return nil, notFound(err)
	}
	return &out, nil
}

func (r *clinicianRepository) Delete(ctx context.Context, id string) (err error) {
	defer func(start time.Time) { r.observe("clinician_delete", start, err) }(time.Now())

	if _, err = r.db.ExecContext(ctx, `DELETE FROM clinician WHERE clinician_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete clinician: %w", err)
	}
	return nil
}

func (r *clinicianRepository) List(ctx context.Context) (list []*model.Clinician, err error) {
	defer func(start time.Time) { r.observe("clinician_list", start, err) }(time.Now())

	clinicians := []*model.Clinician{}
	query := `SELECT ` + clinicianColumns + ` FROM clinician ORDER BY created_at, clinician_id`
	if err = r.db.SelectContext(ctx, &clinicians, query); err != nil {
		return nil, fmt.Errorf("failed to list clinicians: %w", err)
	}
	return clinicians, nil
}
