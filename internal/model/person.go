package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Person represents one phonebook entry
type Person struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Number string `json:"number"`
}

// Field names used in requests and validation messages
const (
	FieldName   = "name"
	FieldNumber = "number"
)

// OptionalString is a JSON string field that records whether the key was
// present in the request body at all. A present null leaves Value nil.
type OptionalString struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked when the key is present. Strings and numbers
// are accepted; booleans, arrays and objects are not.
func (o *OptionalString) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(data, []byte("null")) {
		o.Value = nil
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		o.Value = &s
		return nil
	}
	// Numbers are stored as their shortest decimal text, 123 -> "123"
	var n float64
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	s = strconv.FormatFloat(n, 'f', -1, 64)
	o.Value = &s
	return nil
}

// MarshalJSON writes the value or null.
func (o OptionalString) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Some returns a present, non-null OptionalString.
func Some(s string) OptionalString {
	return OptionalString{Set: true, Value: &s}
}

// Null returns a present OptionalString holding JSON null.
func Null() OptionalString {
	return OptionalString{Set: true}
}

// PersonRequest is the body of create and update requests.
type PersonRequest struct {
	Name   OptionalString `json:"name"`
	Number OptionalString `json:"number"`
}

// PersonInput is a normalized create request. A nil Name means the client
// sent an explicit null, which the store-layer rules reject.
type PersonInput struct {
	Name   *string
	Number *string
}

// MissingFieldError reports a required request field that was absent.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return e.Field + " missing"
}

// ValidationError is raised by the store-layer rules on a Person.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "person validation failed"
	}
	msg := fmt.Sprintf("person validation failed: %s", e.Errors[0].Message)
	if len(e.Errors) > 1 {
		msg = fmt.Sprintf("%s (and %d more errors)", msg, len(e.Errors)-1)
	}
	return msg
}

// Normalize checks the required fields of a create request. Only absence
// counts as missing; empty strings pass and values are returned untouched.
// With requireNumber false a missing number becomes the empty string.
func (r *PersonRequest) Normalize(requireNumber bool) (*PersonInput, error) {
	if !r.Name.Set {
		return nil, &MissingFieldError{Field: FieldName}
	}

	number := r.Number.Value
	if !r.Number.Set {
		if requireNumber {
			return nil, &MissingFieldError{Field: FieldNumber}
		}
		empty := ""
		number = &empty
	}

	return &PersonInput{Name: r.Name.Value, Number: number}, nil
}

// Validate checks the rules every persisted person must satisfy.
func (in *PersonInput) Validate() error {
	var errs []FieldError
	if in.Name == nil {
		errs = append(errs, FieldError{Field: FieldName, Message: "name is required"})
	}
	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Person builds the entity for the given id. Validate must have passed.
func (in *PersonInput) Person(id string) *Person {
	p := &Person{ID: id}
	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Number != nil {
		p.Number = *in.Number
	}
	return p
}

// Updates returns the fields of a partial update as a merge document.
// A present null name is rejected since every stored person keeps a name.
func (r *PersonRequest) Updates() (map[string]interface{}, error) {
	updates := make(map[string]interface{}, 2)

	if r.Name.Set {
		if r.Name.Value == nil {
			return nil, &ValidationError{Errors: []FieldError{{Field: FieldName, Message: "name is required"}}}
		}
		updates[FieldName] = *r.Name.Value
	}
	if r.Number.Set {
		number := ""
		if r.Number.Value != nil {
			number = *r.Number.Value
		}
		updates[FieldNumber] = number
	}

	return updates, nil
}
