// Package helpers provides common test utilities for e2e testing.
//
// NewAPI wires the real router, service and repository over a test
// database. Requests are built with NewRequest and sent with Do:
//
//	api := helpers.NewAPI(t, tdb.DB, true)
//	rr := helpers.NewRequest(t, http.MethodPost, "/api/persons").
//	    WithBody(map[string]string{"name": "Arto Hellas", "number": "040-123456"}).
//	    Do(api)
//	helpers.AssertStatus(t, rr, http.StatusOK)
//
// Error responses are checked with AssertErrorBody, which decodes the
// {"error": "..."} body.
package helpers
