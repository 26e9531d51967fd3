package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medgrid/measure-console-api/api/handlers/search"
	"github.com/medgrid/measure-console-api/config"
	"github.com/medgrid/measure-console-api/models"
	"github.com/medgrid/measure-console-api/upstream"
)

// People exported for testing purposes
type People struct {
	Service upstream.PersonService
	Cache   *upstream.Catalog
}

func personID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["person_id"])
}

// PeopleHandler returns the person list with the optional case-insensitive
// substring name filter applied
func (h People) PeopleHandler(w http.ResponseWriter, r *http.Request) {
	people, err := h.list(r)
	if err != nil {
		config.ErrorStatus("failed to get people", http.StatusBadGateway, w, err)
		return
	}
	people = search.FilterPeople(people, r.URL.Query().Get("search"))

	now := time.Now()
	views := make([]models.PersonView, 0, len(people))
	for _, p := range people {
		views = append(views, models.NewPersonView(p, now))
	}

	b, err := json.Marshal(views)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (h People) list(r *http.Request) ([]models.Person, error) {
	if h.Cache != nil {
		return h.Cache.People(r.Context())
	}
	return h.Service.List(r.Context())
}

// PersonByIDHandler returns a single person by ID
func (h People) PersonByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := personID(r)
	if err != nil {
		config.ErrorStatus("invalid person id", http.StatusBadRequest, w, err)
		return
	}

	person, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if upstream.IsNotFound(err) {
			config.ErrorStatus("person does not exist", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to get person by ID", http.StatusBadGateway, w, err)
		return
	}

	b, err := json.Marshal(models.NewPersonView(*person, time.Now()))
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func validatePersonRequest(req *models.PersonRequest) error {
	req.Normalize()
	if req.Name == "" {
		return fmt.Errorf("name is required")
	}
	if req.DateOfBirth == "" {
		return fmt.Errorf("date of birth is required")
	}
	if !models.ValidWireDate(req.DateOfBirth) {
		return fmt.Errorf("date of birth must be YYYY-MM-DD")
	}
	switch req.Gender {
	case models.GenderMale, models.GenderFemale, models.GenderBoth:
		return nil
	}
	return fmt.Errorf("gender must be male, female or both")
}

// CreatePersonHandler creates a person and echoes it back when the upstream
// returned a single normalized record, otherwise returns the reloaded list
func (h People) CreatePersonHandler(w http.ResponseWriter, r *http.Request) {
	var req models.PersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validatePersonRequest(&req); err != nil {
		config.ErrorStatus("invalid person", http.StatusBadRequest, w, err)
		return
	}

	created, err := h.Service.Create(r.Context(), req)
	if err != nil {
		config.ErrorStatus("failed to create person", http.StatusBadGateway, w, err)
		return
	}
	h.invalidate()
	h.writeMutationResponse(w, r, created, http.StatusCreated)
}

// UpdatePersonHandler patches a person by ID
func (h People) UpdatePersonHandler(w http.ResponseWriter, r *http.Request) {
	id, err := personID(r)
	if err != nil {
		config.ErrorStatus("invalid person id", http.StatusBadRequest, w, err)
		return
	}

	var req models.PersonRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validatePersonRequest(&req); err != nil {
		config.ErrorStatus("invalid person", http.StatusBadRequest, w, err)
		return
	}

	updated, err := h.Service.Update(r.Context(), id, req)
	if err != nil {
		if upstream.IsNotFound(err) {
			config.ErrorStatus("person does not exist", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to update person", http.StatusBadGateway, w, err)
		return
	}
	h.invalidate()
	h.writeMutationResponse(w, r, updated, http.StatusOK)
}

// DeletePersonHandler deletes a person by ID. The confirmation step is
// explicit: without confirm=true nothing is issued upstream.
func (h People) DeletePersonHandler(w http.ResponseWriter, r *http.Request) {
	id, err := personID(r)
	if err != nil {
		config.ErrorStatus("invalid person id", http.StatusBadRequest, w, err)
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		config.ErrorStatus("deletion requires confirmation", http.StatusBadRequest, w, fmt.Errorf("confirm=true not set"))
		return
	}

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if upstream.IsNotFound(err) {
			config.ErrorStatus("person does not exist", http.StatusNotFound, w, err)
			return
		}
		config.ErrorStatus("failed to delete person", http.StatusBadGateway, w, err)
		return
	}
	h.invalidate()
	w.WriteHeader(http.StatusNoContent)
}

func (h People) invalidate() {
	if h.Cache != nil {
		h.Cache.InvalidatePeople()
	}
}

// writeMutationResponse returns the single normalized person when the
// upstream echoed one; otherwise it falls back to the reloaded full list
func (h People) writeMutationResponse(w http.ResponseWriter, r *http.Request, person *models.Person, status int) {
	now := time.Now()
	resp := models.PeopleMutationResponse{}
	if person != nil {
		v := models.NewPersonView(*person, now)
		resp.Person = &v
	} else {
		people, err := h.list(r)
		if err != nil {
			zap.S().With(err).Warn("reload after person write failed")
			people = []models.Person{}
		}
		resp.People = make([]models.PersonView, 0, len(people))
		for _, p := range people {
			resp.People = append(resp.People, models.NewPersonView(p, now))
		}
	}

	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(status)
	w.Write(b)
}
