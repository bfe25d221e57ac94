// Package repository implements the data access layer for the phonebook.
//
// PersonRepository is the store adapter: it exposes find-all, find-by-id,
// insert, update-by-id, delete-by-id and count over the SurrealDB person
// table and knows nothing about HTTP.
//
// # Query Patterns
//
//   - Record ids are passed as models.RecordID variables, never formatted into SurrealQL
//   - Person keys are UUIDv7 strings assigned on insert, so ORDER BY id is insertion order
//   - Ids that do not parse as UUIDs fail with ErrMalformedID before any query runs
//
// # Example Usage
//
//	repo := NewPersonRepository(db)
//	person, err := repo.GetByID(ctx, "0192a7c4-5e0b-7c1e-9f3a-2b1d6c8e4f00")
//	if errors.Is(err, ErrMalformedID) {
//	    // Handle malformed id
//	}
//	if person == nil {
//	    // Handle not found
//	}
package repository
