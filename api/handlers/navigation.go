package handlers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/medgrid/measure-console-api/config"
	"github.com/medgrid/measure-console-api/models"
)

// NavStore holds the single last-viewed-person convenience slot. It is the
// only client-side state the console keeps; written on navigation to a
// person, read at sidebar render.
type NavStore struct {
	mu           sync.RWMutex
	lastPersonID *int
}

// NewNavStore initializes an empty slot
func NewNavStore() *NavStore {
	return &NavStore{}
}

// Set records the last viewed person
func (s *NavStore) Set(personID int) {
	s.mu.Lock()
	s.lastPersonID = &personID
	s.mu.Unlock()
}

// Get returns the last viewed person id, or nil when none was recorded
func (s *NavStore) Get() *int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.lastPersonID == nil {
		return nil
	}
	id := *s.lastPersonID
	return &id
}

// Navigation serves the static shell descriptor
type Navigation struct {
	Store *NavStore
}

// navSections is the static sidebar: the people list plus the collapsible
// forms section
func navSections() []models.NavSection {
	return []models.NavSection{
		{
			Title: "People",
			Items: []models.NavItem{
				{Label: "People", Path: "/people"},
			},
		},
		{
			Title:       "Forms",
			Collapsible: true,
			Items: []models.NavItem{
				{Label: "Indicator", Path: "/forms/indicator"},
				{Label: "Transcript", Path: "/forms/transcript"},
				{Label: "Units & Reasons", Path: "/forms/units-reasons"},
			},
		},
	}
}

// NavigationHandler returns the sidebar descriptor plus the last-viewed slot
func (h Navigation) NavigationHandler(w http.ResponseWriter, r *http.Request) {
	resp := models.NavResponse{
		Sections:     navSections(),
		LastPersonID: h.Store.Get(),
	}
	b, err := json.Marshal(resp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LastPersonHandler returns only the last-viewed slot
func (h Navigation) LastPersonHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(struct {
		LastPersonID *int `json:"lastPersonId"`
	}{LastPersonID: h.Store.Get()})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// SetLastPersonHandler writes the slot explicitly
func (h Navigation) SetLastPersonHandler(w http.ResponseWriter, r *http.Request) {
	var req struct {
		PersonID int `json:"personId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	h.Store.Set(req.PersonID)
	w.WriteHeader(http.StatusNoContent)
}
