// Package model defines the phonebook entity, request types and the
// validation rules applied before anything reaches the store.
//
// # Request Validation
//
// Create and update bodies decode into PersonRequest. Its fields are
// OptionalString values so that an absent key can be told apart from an
// empty string or an explicit null:
//
//	var req model.PersonRequest
//	_ = json.Unmarshal([]byte(`{"name":""}`), &req)
//	_, err := req.Normalize(true) // *MissingFieldError{Field: "number"}
//
// Normalize only checks presence. The store-layer rule (every stored person
// has a name) lives in PersonInput.Validate and surfaces as *ValidationError.
//
// # Error Types
//
// Every error response has the same JSON shape, defined in errors.go:
//
//	type ErrorResponse struct {
//	    Status  int    `json:"-"`
//	    Message string `json:"error"`
//	}
package model
