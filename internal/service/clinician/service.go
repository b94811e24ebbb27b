package clinician

import (
	"context"
	"fmt"

	"github.com/totallife/clinical-api/internal/model"
	"github.com/totallife/clinical-api/internal/npi"
	"github.com/totallife/clinical-api/internal/repository"
	"github.com/totallife/clinical-api/internal/service/event"
)

type Service interface {
	// Validate returns the messages that block saving c. A non-nil error
	// means the registry could not be consulted.
	Validate(ctx context.Context, c *model.Clinician) ([]string, error)

	Create(ctx context.Context, c *model.Clinician) (*model.Clinician, error)
	Get(ctx context.Context, id string) (*model.Clinician, error)
	List(ctx context.Context) ([]*model.Clinician, error)
	Update(ctx context.Context, id string, c *model.Clinician) (*model.Clinician, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo     repository.ClinicianRepository
	registry npi.Verifier
	events   event.Emitter
}

func NewService(repo repository.ClinicianRepository, registry npi.Verifier, events event.Emitter) Service {
	return &service{
		repo:     repo,
		registry: registry,
		events:   events,
	}
}

func (s *service) Validate(ctx context.Context, c *model.Clinician) ([]string, error) {
	report := CheckFields(c)

	// The registry is consulted even when the structural checks failed,
	// so a single response lists every problem.
	ok, err := s.registry.Verify(ctx, npi.Query{
		Number:    c.NPINumber,
		FirstName: c.FirstName,
		LastName:  c.LastName,
		State:     c.State,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to verify clinician: %w", err)
	}

	return report.Messages(ok), nil
}

func (s *service) Create(ctx context.Context, c *model.Clinician) (*model.Clinician, error) {
	created, err := s.repo.Create(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to create clinician: %w", err)
	}
	s.events.Emit(ctx, model.EventClinicianCreated, created.ID, created)
	return created, nil
}

func (s *service) Get(ctx context.Context, id string) (*model.Clinician, error) {
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get clinician: %w", err)
	}
	return c, nil
}

func (s *service) List(ctx context.Context) ([]*model.Clinician, error) {
	clinicians, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list clinicians: %w", err)
	}
	return clinicians, nil
}

func (s *service) Update(ctx context.Context, id string, c *model.Clinician) (*model.Clinician, error) {
	c.ID = id
	updated, err := s.repo.Update(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("failed to update clinician: %w", err)
	}
	s.events.Emit(ctx, model.EventClinicianUpdated, updated.ID, updated)
	return updated, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete clinician: %w", err)
	}
	s.events.Emit(ctx, model.EventClinicianDeleted, id, nil)
	return nil
}
