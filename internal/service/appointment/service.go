package appointment

import (
	"context"
	"fmt"

	"github.com/totallife/clinical-api/internal/model"
	"github.com/totallife/clinical-api/internal/repository"
	"github.com/totallife/clinical-api/internal/service/event"
	"github.com/totallife/clinical-api/pkg/validator"
)

type AppointmentService interface {
	Validate(req *model.AppointmentRequest) []string
	CreateAppointment(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*model.Appointment, error)
	ListAppointments(ctx context.Context) ([]*model.AppointmentWithNames, error)
	UpdateAppointment(ctx context.Context, id string, appointment *model.Appointment) (*model.Appointment, error)
	DeleteAppointment(ctx context.Context, id string) error
}

// Service does not check that the referenced clinician and patient
// exist. Appointments outlive both.
type Service struct {
	repo      repository.AppointmentRepository
	validator validator.Validator
	events    event.Emitter
}

func NewService(repo repository.AppointmentRepository, v validator.Validator, events event.Emitter) *Service {
	return &Service{
		repo:      repo,
		validator: v,
		events:    events,
	}
}

func (s *Service) Validate(req *model.AppointmentRequest) []string {
	return validator.Messages(s.validator.Validate(req))
}

func (s *Service) CreateAppointment(ctx context.Context, appointment *model.Appointment) (*model.Appointment, error) {
	created, err := s.repo.Create(ctx, appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to create appointment: %w", err)
	}
	s.events.Emit(ctx, model.EventAppointmentCreated, created.ID, created)
	return created, nil
}

func (s *Service) GetAppointment(ctx context.Context, id string) (*model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get appointment: %w", err)
	}
	return appointment, nil
}

// ListAppointments returns every appointment with the display names of
// its clinician and patient where those still exist.
func (s *Service) ListAppointments(ctx context.Context) ([]*model.AppointmentWithNames, error) {
	appointments, err := s.repo.ListWithNames(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list appointments: %w", err)
	}
	return appointments, nil
}

func (s *Service) UpdateAppointment(ctx context.Context, id string, appointment *model.Appointment) (*model.Appointment, error) {
	appointment.ID = id
	updated, err := s.repo.Update(ctx, appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to update appointment: %w", err)
	}
	s.events.Emit(ctx, model.EventAppointmentUpdated, updated.ID, updated)
	return updated, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete appointment: %w", err)
	}
	s.events.Emit(ctx, model.EventAppointmentDeleted, id, nil)
	return nil
}
