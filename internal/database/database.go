// Package database provides the database abstraction layer for the phonebook.
//
// The Database interface hides the SurrealDB client so that repositories only
// deal with SurrealQL strings and variables.
//
// # Interface Design
//
// The Database interface provides three query methods:
//   - Query: Returns every statement result (for SELECT queries returning lists)
//   - QueryOne: Returns a single record (for SELECT by ID)
//   - Execute: No return value (for mutations whose output is not needed)
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrNotFound: Record does not exist
//   - ErrConnection: Database connection issues
//   - ErrQuery: Query execution failures
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrNotFound) {
//	    // Handle missing record
//	}
//
// # Usage Example
//
//	db := database.NewSurrealDB(cfg)
//	db.Connect(ctx)
//	defer db.Close()
//
//	result, err := db.QueryOne(ctx, "SELECT * FROM $id", map[string]interface{}{"id": recordID})
package database

import (
	"context"
	"errors"
)

// Standard errors for database operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrConnection indicates a failure to connect to or communicate with the database.
	ErrConnection = errors.New("database connection error")

	// ErrQuery indicates a query execution failure (syntax error, failed field assertion, etc.).
	ErrQuery = errors.New("query error")
)

// Database defines the interface for database operations
type Database interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// Query executes a query and returns results
	Query(ctx context.Context, query string, vars map[string]interface{}) ([]interface{}, error)

	// QueryOne executes a query and returns a single result
	QueryOne(ctx context.Context, query string, vars map[string]interface{}) (interface{}, error)

	// Execute runs a query without returning results (for mutations)
	Execute(ctx context.Context, query string, vars map[string]interface{}) error
}

// Config holds database configuration
type Config struct {
	// URL is a full endpoint such as ws://db:8000. When empty the endpoint
	// is built from Host and Port.
	URL       string
	Host      string
	Port      string
	User      string
	Password  string
	Namespace string
	Database  string
}

// Endpoint returns the websocket endpoint to dial.
func (c Config) Endpoint() string {
	if c.URL != "" {
		return c.URL
	}
	return "ws://" + c.Host + ":" + c.Port
}
