package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/forgo/phonebook/internal/model"
)

// InfoTimeLayout renders the server time the way browsers print a Date
const InfoTimeLayout = "Mon Jan 02 2006 15:04:05 GMT-0700 (MST)"

// InfoHandler serves the greeting, info and health pages
type InfoHandler struct {
	personService PersonService
	now           func() time.Time
}

// NewInfoHandler creates a new info handler
func NewInfoHandler(personService PersonService) *InfoHandler {
	return &InfoHandler{personService: personService, now: time.Now}
}

// RegisterRoutes registers the info routes and the unknown endpoint fallback
func (h *InfoHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /info", h.Info)
	mux.HandleFunc("GET /health", h.Health)

	// Anything no other pattern claims
	mux.HandleFunc("/", UnknownEndpoint)
}

// Root handles GET /
func (h *InfoHandler) Root(w http.ResponseWriter, r *http.Request) {
	WriteHTML(w, "<h1>Hello World!</h1>")
}

// Info handles GET /info
func (h *InfoHandler) Info(w http.ResponseWriter, r *http.Request) {
	count, err := h.personService.CountPeople(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteHTML(w, fmt.Sprintf("<p>Phonebook has info for %d people</p><p>%s</p>",
		count, h.now().Format(InfoTimeLayout)))
}

// Health handles GET /health
func (h *InfoHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.personService.Ping(r.Context()); err != nil {
		WriteError(w, model.NewServiceUnavailableError("database unavailable"))
		return
	}

	WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// UnknownEndpoint answers requests that match no route
func UnknownEndpoint(w http.ResponseWriter, r *http.Request) {
	WriteError(w, model.NewUnknownEndpointError())
}
