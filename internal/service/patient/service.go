package patient

import (
	"context"
	"fmt"

	"github.com/totallife/clinical-api/internal/model"
	"github.com/totallife/clinical-api/internal/repository"
	"github.com/totallife/clinical-api/internal/service/event"
	"github.com/totallife/clinical-api/pkg/validator"
)

type PatientService interface {
	Validate(req *model.PatientRequest) []string
	CreatePatient(ctx context.Context, patient *model.Patient) (*model.Patient, error)
	GetPatient(ctx context.Context, id string) (*model.Patient, error)
	ListPatients(ctx context.Context) ([]*model.Patient, error)
	UpdatePatient(ctx context.Context, id string, patient *model.Patient) (*model.Patient, error)
	DeletePatient(ctx context.Context, id string) error
}

type Service struct {
	repo      repository.PatientRepository
	validator validator.Validator
	events    event.Emitter
}

func NewService(repo repository.PatientRepository, v validator.Validator, events event.Emitter) *Service {
	return &Service{
		repo:      repo,
		validator: v,
		events:    events,
	}
}

func (s *Service) Validate(req *model.PatientRequest) []string {
	return validator.Messages(s.validator.Validate(req))
}

func (s *Service) CreatePatient(ctx context.Context, patient *model.Patient) (*model.Patient, error) {
	created, err := s.repo.Create(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("failed to create patient: %w", err)
	}
	s.events.Emit(ctx, model.EventPatientCreated, created.ID, created)
	return created, nil
}

func (s *Service) GetPatient(ctx context.Context, id string) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}
	return patient, nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	patients, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list patients: %w", err)
	}
	return patients, nil
}

func (s *Service) UpdatePatient(ctx context.Context, id string, patient *model.Patient) (*model.Patient, error) {
	patient.ID = id
	updated, err := s.repo.Update(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("failed to update patient: %w", err)
	}
	s.events.Emit(ctx, model.EventPatientUpdated, updated.ID, updated)
	return updated, nil
}

func (s *Service) DeletePatient(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	s.events.Emit(ctx, model.EventPatientDeleted, id, nil)
	return nil
}
