package fixtures

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"testing"
	"time"

	"github.com/forgo/phonebook/internal/database"
	"github.com/forgo/phonebook/internal/model"
	"github.com/forgo/phonebook/internal/repository"
)

// Factory creates test entities in the database
type Factory struct {
	people *repository.PersonRepository
}

// New creates a new fixture factory
func New(db database.Database) *Factory {
	return &Factory{people: repository.NewPersonRepository(db)}
}

// randomID generates a random hex ID
func randomID() string {
	b := make([]byte, 4)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// PersonOpts customizes person creation
type PersonOpts struct {
	Name   string
	Number string
}

// WithName overrides the generated name.
func WithName(name string) func(*PersonOpts) {
	return func(o *PersonOpts) { o.Name = name }
}

// WithNumber overrides the generated number.
func WithNumber(number string) func(*PersonOpts) {
	return func(o *PersonOpts) { o.Number = number }
}

// CreatePerson stores a person with a unique name and returns it.
func (f *Factory) CreatePerson(t *testing.T, opts ...func(*PersonOpts)) *model.Person {
	t.Helper()

	o := &PersonOpts{
		Name:   fmt.Sprintf("Person %s", randomID()),
		Number: "040-123456",
	}
	for _, fn := range opts {
		fn(o)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	person, err := f.people.Create(ctx, &model.PersonInput{Name: &o.Name, Number: &o.Number})
	if err != nil {
		t.Fatalf("fixtures: failed to create person: %v", err)
	}
	return person
}

// CreatePeople stores n people with generated names.
func (f *Factory) CreatePeople(t *testing.T, n int) []*model.Person {
	t.Helper()

	out := make([]*model.Person, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, f.CreatePerson(t))
	}
	return out
}
