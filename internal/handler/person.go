package handler

import (
	"context"
	"net/http"

	"github.com/forgo/phonebook/internal/model"
	"github.com/forgo/phonebook/internal/service"
)

// PersonService defines the phonebook operations the handlers depend on
type PersonService interface {
	ListPeople(ctx context.Context) ([]*model.Person, error)
	GetPerson(ctx context.Context, id string) (*model.Person, error)
	CreatePerson(ctx context.Context, req *model.PersonRequest) (*model.Person, error)
	UpdatePerson(ctx context.Context, id string, req *model.PersonRequest) (*model.Person, error)
	DeletePerson(ctx context.Context, id string) error
	CountPeople(ctx context.Context) (int, error)
	Ping(ctx context.Context) error
}

// PersonHandler handles /api/persons requests
type PersonHandler struct {
	personService PersonService
}

// NewPersonHandler creates a new person handler
func NewPersonHandler(personService PersonService) *PersonHandler {
	return &PersonHandler{personService: personService}
}

// RegisterRoutes registers person routes
func (h *PersonHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/persons", h.ListPeople)
	mux.HandleFunc("POST /api/persons", h.CreatePerson)
	mux.HandleFunc("GET /api/persons/{id}", h.GetPerson)
	mux.HandleFunc("PUT /api/persons/{id}", h.UpdatePerson)
	mux.HandleFunc("DELETE /api/persons/{id}", h.DeletePerson)
}

// ListPeople handles GET /api/persons
func (h *PersonHandler) ListPeople(w http.ResponseWriter, r *http.Request) {
	people, err := h.personService.ListPeople(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, people)
}

// GetPerson handles GET /api/persons/{id}
func (h *PersonHandler) GetPerson(w http.ResponseWriter, r *http.Request) {
	person, err := h.personService.GetPerson(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, person)
}

// CreatePerson handles POST /api/persons
func (h *PersonHandler) CreatePerson(w http.ResponseWriter, r *http.Request) {
	var req model.PersonRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError(model.MsgMalformattedBody))
		return
	}

	person, err := h.personService.CreatePerson(r.Context(), &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, person)
}

// UpdatePerson handles PUT /api/persons/{id}
func (h *PersonHandler) UpdatePerson(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	// The id is checked before the body so a bad id always wins
	if err := service.ValidatePersonID(id); err != nil {
		writeServiceError(w, r, err)
		return
	}

	var req model.PersonRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError(model.MsgMalformattedBody))
		return
	}

	person, err := h.personService.UpdatePerson(r.Context(), id, &req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, person)
}

// DeletePerson handles DELETE /api/persons/{id}
func (h *PersonHandler) DeletePerson(w http.ResponseWriter, r *http.Request) {
	if err := h.personService.DeletePerson(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}

	WriteNoContent(w)
}
