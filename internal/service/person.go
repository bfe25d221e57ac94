package service

import (
	"context"
	"errors"

	"github.com/forgo/phonebook/internal/model"
	"github.com/forgo/phonebook/internal/repository"
)

// PersonRepository defines the interface for person storage
type PersonRepository interface {
	List(ctx context.Context) ([]*model.Person, error)
	GetByID(ctx context.Context, id string) (*model.Person, error)
	Create(ctx context.Context, in *model.PersonInput) (*model.Person, error)
	Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Person, error)
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// PersonService handles phonebook business logic
type PersonService struct {
	personRepo    PersonRepository
	requireNumber bool
}

// PersonServiceConfig holds configuration for the person service
type PersonServiceConfig struct {
	PersonRepo PersonRepository
	// RequireNumber rejects creates without a number. When false a missing
	// number is stored as the empty string.
	RequireNumber bool
}

// NewPersonService creates a new person service
func NewPersonService(cfg PersonServiceConfig) *PersonService {
	return &PersonService{
		personRepo:    cfg.PersonRepo,
		requireNumber: cfg.RequireNumber,
	}
}

// ListPeople retrieves every person
func (s *PersonService) ListPeople(ctx context.Context) ([]*model.Person, error) {
	people, err := s.personRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if people == nil {
		people = []*model.Person{}
	}
	return people, nil
}

// GetPerson retrieves a single person
func (s *PersonService) GetPerson(ctx context.Context, id string) (*model.Person, error) {
	person, err := s.personRepo.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// CreatePerson validates the request and stores a new person
func (s *PersonService) CreatePerson(ctx context.Context, req *model.PersonRequest) (*model.Person, error) {
	in, err := req.Normalize(s.requireNumber)
	if err != nil {
		return nil, err
	}
	return s.personRepo.Create(ctx, in)
}

// ValidatePersonID returns ErrMalformattedID when id cannot name a person.
func ValidatePersonID(id string) error {
	return mapRepoError(repository.ValidateID(id))
}

// UpdatePerson merges the fields present in the request into an existing person.
// A malformed id is reported before anything in the request is looked at.
func (s *PersonService) UpdatePerson(ctx context.Context, id string, req *model.PersonRequest) (*model.Person, error) {
	if err := ValidatePersonID(id); err != nil {
		return nil, err
	}

	updates, err := req.Updates()
	if err != nil {
		return nil, err
	}

	person, err := s.personRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, mapRepoError(err)
	}
	if person == nil {
		return nil, ErrPersonNotFound
	}
	return person, nil
}

// DeletePerson removes a person. Removing an absent person succeeds.
func (s *PersonService) DeletePerson(ctx context.Context, id string) error {
	return mapRepoError(s.personRepo.Delete(ctx, id))
}

// CountPeople returns the number of stored persons
func (s *PersonService) CountPeople(ctx context.Context) (int, error) {
	return s.personRepo.Count(ctx)
}

// Ping reports whether the store is reachable
func (s *PersonService) Ping(ctx context.Context) error {
	return s.personRepo.Ping(ctx)
}

func mapRepoError(err error) error {
	if errors.Is(err, repository.ErrMalformedID) {
		return ErrMalformattedID
	}
	return err
}
