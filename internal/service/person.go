package service

//go:generate mockgen -source=person.go -destination=mocks/person.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/deppfellow/persons-api/internal/errs"
	"github.com/deppfellow/persons-api/internal/model"
	"github.com/deppfellow/persons-api/internal/repository"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// PersonRepository is the storage the person service depends on.
// *repository.PersonRepository implements it.
type PersonRepository interface {
	Create(ctx context.Context, p *model.Person) (*model.Person, error)
	FindByNationalID(ctx context.Context, nationalID string) (*model.Person, error)
	Update(ctx context.Context, p *model.Person) (*model.Person, error)
	Delete(ctx context.Context, nationalID string) (*model.Person, error)
	List(ctx context.Context) ([]model.Person, error)
}

// RegistrationNotifier is told about every newly registered person.
type RegistrationNotifier interface {
	NotifyPersonRegistered(ctx context.Context, p *model.Person) error
}

type PersonService struct {
	repo     PersonRepository
	notifier RegistrationNotifier
	logger   *zerolog.Logger
}

// NewPersonService builds the service. notifier may be nil.
func NewPersonService(repo PersonRepository, notifier RegistrationNotifier, logger *zerolog.Logger) *PersonService {
	return &PersonService{
		repo:     repo,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *PersonService) List(ctx context.Context) ([]model.Person, error) {
	return s.repo.List(ctx)
}

// Search answers 404 with a null data field when nothing matches.
func (s *PersonService) Search(ctx context.Context, nationalID string) (*model.Person, error) {
	person, err := s.repo.FindByNationalID(ctx, nationalID)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, errs.NewNotFoundError(notFoundMessage(nationalID), nil).WithoutMessage()
		}
		return nil, err
	}

	return person, nil
}

// Register stores a new person and, when a notifier is configured, queues the
// welcome email. A failed enqueue is logged; the person is already stored.
func (s *PersonService) Register(ctx context.Context, payload *model.PersonPayload) (*model.Person, error) {
	person, err := payload.ToPerson()
	if err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, person)
	if err != nil {
		return nil, err
	}

	if s.notifier != nil {
		if err := s.notifier.NotifyPersonRegistered(ctx, created); err != nil {
			s.requestLogger(ctx).Error().
				Err(err).
				Str("national_id", created.NationalID).
				Msg("failed to enqueue person registered notification")
		}
	}

	return created, nil
}

// Update overwrites every field except national_id, which selects the row.
func (s *PersonService) Update(ctx context.Context, payload *model.PersonPayload) (*model.Person, error) {
	person, err := payload.ToPerson()
	if err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, person)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return nil, errs.NewNotFoundError(notFoundMessage(person.NationalID), nil)
		}
		return nil, err
	}

	return updated, nil
}

// Delete returns the confirmation message placed in the response data.
func (s *PersonService) Delete(ctx context.Context, nationalID string) (string, error) {
	deleted, err := s.repo.Delete(ctx, nationalID)
	if err != nil {
		if errors.Is(err, repository.ErrPersonNotFound) {
			return "", errs.NewNotFoundError(notFoundMessage(nationalID), nil)
		}
		return "", err
	}

	return fmt.Sprintf("person with national_id %s was deleted", deleted.NationalID), nil
}

// requestLogger prefers the request-scoped logger carried by ctx.
func (s *PersonService) requestLogger(ctx context.Context) *zerolog.Logger {
	if logger := zerolog.Ctx(ctx); logger.GetLevel() != zerolog.Disabled {
		return logger
	}

	return s.logger
}

func notFoundMessage(nationalID string) string {
	return fmt.Sprintf("no person with national_id %s", nationalID)
}
