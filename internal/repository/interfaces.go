package repository

import (
	"context"
	"errors"

	"github.com/totallife/clinical-api/internal/model"
)

// ErrNotFound is returned when a lookup by id matches no row
var ErrNotFound = errors.New("record not found")

// All repository interfaces in one file
type (
	ClinicianRepository interface {
		Create(ctx context.Context, clinician *model.Clinician) (*model.Clinician, error)
		Get(ctx context.Context, id string) (*model.Clinician, error)
		Update(ctx context.Context, clinician *model.Clinician) (*model.Clinician, error)
		Delete(ctx context.Context, id string) error
		List(ctx context.Context) ([]*model.Clinician, error)
	}

	PatientRepository interface {
		Create(ctx context.Context, patient *model.Patient) (*model.Patient, error)
		Get(ctx context.Context, id string) (*model.Patient, error)
		Update(ctx context.Context, patient *model.Patient) (*model.Patient, error)
		Delete(ctx context.Context, id string) error
		List(ctx context.Context) ([]*model.Patient, error)
	}

	AppointmentRepository interface {
		Create(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
		Get(ctx context.Context, id string) (*model.Appointment, error)
		Update(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
		Delete(ctx context.Context, id string) error
		List(ctx context.Context) ([]*model.Appointment, error)
		ListWithNames(ctx context.Context) ([]*model.AppointmentWithNames, error)
	}
)
