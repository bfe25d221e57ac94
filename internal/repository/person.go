package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/surrealdb/surrealdb.go/pkg/models"

	"github.com/forgo/phonebook/internal/database"
	"github.com/forgo/phonebook/internal/model"
)

// PersonTable is the SurrealDB table holding phonebook entries
const PersonTable = "person"

// ErrMalformedID indicates an id that cannot be a person record key.
var ErrMalformedID = errors.New("malformed record id")

// PersonRepository handles person data access
type PersonRepository struct {
	db    database.Database
	newID func() (uuid.UUID, error)
}

// NewPersonRepository creates a new person repository
func NewPersonRepository(db database.Database) *PersonRepository {
	return &PersonRepository{db: db, newID: uuid.NewV7}
}

// List retrieves every person in insertion order
func (r *PersonRepository) List(ctx context.Context) ([]*model.Person, error) {
	query := `SELECT * FROM person ORDER BY id`

	results, err := r.db.Query(ctx, query, nil)
	if err != nil {
		return nil, err
	}

	return parsePeopleResult(results)
}

// GetByID retrieves a person by ID. It returns nil when no such person exists.
func (r *PersonRepository) GetByID(ctx context.Context, id string) (*model.Person, error) {
	rid, err := personRecordID(id)
	if err != nil {
		return nil, err
	}

	query := `SELECT * FROM $id`
	vars := map[string]interface{}{"id": rid}

	result, err := r.db.QueryOne(ctx, query, vars)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return parsePersonResult(result)
}

// Create inserts a new person under a freshly assigned id
func (r *PersonRepository) Create(ctx context.Context, in *model.PersonInput) (*model.Person, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	key, err := r.newID()
	if err != nil {
		return nil, fmt.Errorf("assigning person id: %w", err)
	}
	person := in.Person(key.String())

	query := `CREATE $id CONTENT $content`
	vars := map[string]interface{}{
		"id": models.RecordID{Table: PersonTable, ID: person.ID},
		"content": map[string]interface{}{
			"name":   person.Name,
			"number": person.Number,
		},
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, classifyWriteError(err)
	}

	created, err := database.FirstRecord(result)
	if err != nil {
		return nil, err
	}
	return parsePersonResult(created)
}

// Update merges the given fields into an existing person and returns the
// stored result. It returns nil when no such person exists.
func (r *PersonRepository) Update(ctx context.Context, id string, updates map[string]interface{}) (*model.Person, error) {
	rid, err := personRecordID(id)
	if err != nil {
		return nil, err
	}
	if len(updates) == 0 {
		return r.GetByID(ctx, id)
	}
	if name, ok := updates[model.FieldName]; ok && name == nil {
		return nil, &model.ValidationError{Errors: []model.FieldError{{Field: model.FieldName, Message: "name is required"}}}
	}

	// The WHERE clause keeps UPDATE from creating a missing record.
	query := `UPDATE person MERGE $updates WHERE id = $id RETURN AFTER`
	vars := map[string]interface{}{
		"id":      rid,
		"updates": updates,
	}

	result, err := r.db.Query(ctx, query, vars)
	if err != nil {
		return nil, classifyWriteError(err)
	}

	updated, err := database.FirstRecord(result)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return parsePersonResult(updated)
}

// Delete removes a person. Deleting an absent person is not an error.
func (r *PersonRepository) Delete(ctx context.Context, id string) error {
	rid, err := personRecordID(id)
	if err != nil {
		return err
	}

	query := `DELETE $id`
	return r.db.Execute(ctx, query, map[string]interface{}{"id": rid})
}

// Count counts every stored person
func (r *PersonRepository) Count(ctx context.Context) (int, error) {
	query := `SELECT count() AS count FROM person GROUP ALL`

	result, err := r.db.QueryOne(ctx, query, nil)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}

	return extractCount(result), nil
}

// Ping checks that the underlying store answers
func (r *PersonRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

// ValidateID reports ErrMalformedID for an id that can never name a person.
func ValidateID(id string) error {
	_, err := personRecordID(id)
	return err
}

// Helper functions

// personRecordID turns an API id into a record id. Person ids are UUIDs;
// a "person:" prefix is tolerated.
func personRecordID(id string) (models.RecordID, error) {
	key, err := uuid.Parse(trimTable(id, PersonTable))
	if err != nil {
		return models.RecordID{}, fmt.Errorf("%w: %q", ErrMalformedID, id)
	}
	return models.RecordID{Table: PersonTable, ID: key.String()}, nil
}

func parsePersonResult(result interface{}) (*model.Person, error) {
	if result == nil {
		return nil, database.ErrNotFound
	}

	data, ok := result.(map[string]interface{})
	if !ok {
		return nil, errors.New("unexpected result format")
	}

	return &model.Person{
		ID:     extractRecordKey(data["id"]),
		Name:   getString(data, "name"),
		Number: getString(data, "number"),
	}, nil
}

func parsePeopleResult(results []interface{}) ([]*model.Person, error) {
	people := make([]*model.Person, 0)

	for _, result := range results {
		resp, ok := result.(map[string]interface{})
		if !ok {
			continue
		}
		if status, ok := resp["status"].(string); !ok || status != "OK" {
			continue
		}
		resultData, ok := resp["result"].([]interface{})
		if !ok {
			continue
		}
		for _, item := range resultData {
			person, err := parsePersonResult(item)
			if err != nil {
				return nil, err
			}
			people = append(people, person)
		}
	}

	return people, nil
}
