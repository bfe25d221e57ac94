// Package fixtures provides test data factories for e2e testing.
//
// Each factory method creates entities with sensible defaults while allowing
// customization via option functions. Entities are stored through the
// repository so they look exactly like API-created records.
//
// Usage:
//
//	f := fixtures.New(tdb.DB)
//	arto := f.CreatePerson(t, fixtures.WithName("Arto Hellas"))
//	others := f.CreatePeople(t, 3)
//
// Test data is cleaned up when the test database is closed.
package fixtures
