// Package service implements the business logic layer for the phonebook.
//
// PersonService sits between the HTTP handlers and the store adapter. It
// normalizes request bodies, decides whether a missing number is an error
// and translates adapter outcomes into the sentinel errors of errors.go.
//
// # Service Pattern
//
//   - Constructor function (NewPersonService) accepts a config struct with repository dependencies
//   - The repository interface is declared here so tests can supply function-field mocks
//   - A nil record from the repository becomes ErrPersonNotFound
//   - repository.ErrMalformedID becomes ErrMalformattedID
//
// # Example Usage
//
//	svc := NewPersonService(PersonServiceConfig{
//	    PersonRepo:    repository.NewPersonRepository(db),
//	    RequireNumber: true,
//	})
//	person, err := svc.CreatePerson(ctx, &model.PersonRequest{
//	    Name:   model.Some("Ada Lovelace"),
//	    Number: model.Some("39-44-5323523"),
//	})
package service
