package helpers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/VictoriaMetrics/metrics"

	"github.com/forgo/phonebook/internal/database"
	"github.com/forgo/phonebook/internal/handler"
	"github.com/forgo/phonebook/internal/repository"
	"github.com/forgo/phonebook/internal/service"
)

// ============================================================================
// API Helpers
// ============================================================================

// NewAPI assembles the full router over db, the same way the server does.
func NewAPI(t *testing.T, db database.Database, requireNumber bool) http.Handler {
	t.Helper()

	svc := service.NewPersonService(service.PersonServiceConfig{
		PersonRepo:    repository.NewPersonRepository(db),
		RequireNumber: requireNumber,
	})
	return handler.NewRouter(handler.RouterConfig{
		PersonService:  svc,
		Metrics:        metrics.NewSet(),
		AllowedOrigins: []string{"*"},
	})
}

// ============================================================================
// HTTP Request Helpers
// ============================================================================

// RequestBuilder helps construct HTTP requests for testing
type RequestBuilder struct {
	t       *testing.T
	method  string
	path    string
	body    interface{}
	raw     *string
	headers map[string]string
}

// NewRequest creates a new request builder
func NewRequest(t *testing.T, method, path string) *RequestBuilder {
	t.Helper()
	return &RequestBuilder{
		t:       t,
		method:  method,
		path:    path,
		headers: make(map[string]string),
	}
}

// WithBody sets the request body (will be JSON encoded)
func (rb *RequestBuilder) WithBody(body interface{}) *RequestBuilder {
	rb.body = body
	return rb
}

// WithRawBody sends body verbatim as JSON.
func (rb *RequestBuilder) WithRawBody(body string) *RequestBuilder {
	rb.raw = &body
	return rb
}

// WithHeader adds a header to the request
func (rb *RequestBuilder) WithHeader(key, value string) *RequestBuilder {
	rb.headers[key] = value
	return rb
}

// Build creates the HTTP request
func (rb *RequestBuilder) Build() *http.Request {
	rb.t.Helper()

	var bodyReader io.Reader
	switch {
	case rb.raw != nil:
		bodyReader = strings.NewReader(*rb.raw)
	case rb.body != nil:
		bodyBytes, err := json.Marshal(rb.body)
		if err != nil {
			rb.t.Fatalf("helpers: failed to marshal body: %v", err)
		}
		bodyReader = bytes.NewReader(bodyBytes)
	}

	req := httptest.NewRequest(rb.method, rb.path, bodyReader)

	if bodyReader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for k, v := range rb.headers {
		req.Header.Set(k, v)
	}

	return req
}

// Do sends the request to h and returns the recorded response.
func (rb *RequestBuilder) Do(h http.Handler) *httptest.ResponseRecorder {
	rb.t.Helper()

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, rb.Build())
	return rr
}

// ============================================================================
// Response Assertion Helpers
// ============================================================================

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, resp *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if resp.Code != expected {
		t.Errorf("expected status %d, got %d. Body: %s", expected, resp.Code, resp.Body.String())
	}
}

// AssertErrorBody checks for a {"error": message} response with the given status.
func AssertErrorBody(t *testing.T, resp *httptest.ResponseRecorder, expectedStatus int, message string) {
	t.Helper()

	AssertStatus(t, resp, expectedStatus)

	var body struct {
		Error string `json:"error"`
	}
	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, &body); err != nil {
		t.Fatalf("failed to decode error body: %v. Body: %s", err, string(bodyBytes))
	}

	if message != "" && body.Error != message {
		t.Errorf("expected error %q, got %q", message, body.Error)
	}
}

// AssertEmptyBody checks that the response carries no body at all.
func AssertEmptyBody(t *testing.T, resp *httptest.ResponseRecorder) {
	t.Helper()
	if resp.Body.Len() != 0 {
		t.Errorf("expected empty body, got %q", resp.Body.String())
	}
}

// DecodeResponse decodes the response body into the given struct
func DecodeResponse(t *testing.T, resp *httptest.ResponseRecorder, v interface{}) {
	t.Helper()

	bodyBytes := resp.Body.Bytes()
	if err := json.Unmarshal(bodyBytes, v); err != nil {
		t.Fatalf("failed to decode response: %v. Body: %s", err, string(bodyBytes))
	}
}

// ============================================================================
// Database Assertion Helpers
// ============================================================================

// CountPeople returns the number of stored people, read straight from db.
func CountPeople(t *testing.T, db database.Database) int {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	n, err := repository.NewPersonRepository(db).Count(ctx)
	if err != nil {
		t.Fatalf("failed to count people: %v", err)
	}
	return n
}

// ============================================================================
// Pointer Helpers
// ============================================================================

// StringPtr returns a pointer to s
func StringPtr(s string) *string {
	return &s
}
