// Package handler provides HTTP request handlers for the phonebook API.
//
// # Handler Pattern
//
//   - Constructor function (NewXxxHandler) accepts the service the handler depends on
//   - RegisterRoutes wires the handler's patterns into a *http.ServeMux
//   - Response helpers from response.go standardize output format
//   - Service errors go through MapServiceError in error_mapper.go
//
// # Response Format
//
// Successful person responses are bare JSON objects or arrays. Every error
// body is a single-field object:
//
//	{"error": "malformatted id"}
//
// The one exception is a missing person, which is a 404 with an empty body.
// Requests that match no route get {"error": "unknown endpoint"}.
//
// # Example Usage
//
//	router := handler.NewRouter(handler.RouterConfig{
//	    PersonService:  personService,
//	    Metrics:        metrics.NewSet(),
//	    AllowedOrigins: []string{"*"},
//	})
package handler
