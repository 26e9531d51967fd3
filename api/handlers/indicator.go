package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/medgrid/measure-console-api/config"
	"github.com/medgrid/measure-console-api/models"
	"github.com/medgrid/measure-console-api/upstream"
)

// Indicator exported for testing purposes
type Indicator struct {
	Service upstream.IndicatorService
	Catalog upstream.CatalogService
	Cache   *upstream.Catalog
}

func validGender(g string) bool {
	switch g {
	case models.GenderMale, models.GenderFemale, models.GenderBoth:
		return true
	}
	return false
}

// CreateIndicatorHandler creates an indicator definition. Names are shaped
// per field alphabet before validation; all mandatory fields must be present.
func (h Indicator) CreateIndicatorHandler(w http.ResponseWriter, r *http.Request) {
	var ind models.Indicator
	if err := json.NewDecoder(r.Body).Decode(&ind); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	ind.EngName = strings.TrimSpace(StripCyrillic(ind.EngName))
	ind.RusName = strings.TrimSpace(KeepCyrillic(ind.RusName))

	if ind.EngName == "" {
		config.ErrorStatus("english name is required", http.StatusBadRequest, w, fmt.Errorf("engName empty after shaping"))
		return
	}
	if ind.RusName == "" {
		config.ErrorStatus("russian name is required", http.StatusBadRequest, w, fmt.Errorf("rusName empty after shaping"))
		return
	}
	if !validGender(ind.Gender) {
		config.ErrorStatus("gender must be male, female or both", http.StatusBadRequest, w, fmt.Errorf("got %q", ind.Gender))
		return
	}
	if ind.Units == "" {
		config.ErrorStatus("units are required", http.StatusBadRequest, w, fmt.Errorf("units empty"))
		return
	}

	if err := h.Service.Create(r.Context(), ind); err != nil {
		upstreamError(w, "failed to create indicator", err)
		return
	}
	if h.Cache != nil {
		h.Cache.InvalidateGroups()
	}

	b, _ := json.Marshal(models.MessageResponse{Message: "indicator created"})
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// UnitsHandler returns the unit vocabulary, sorted for stable display
func (h Indicator) UnitsHandler(w http.ResponseWriter, r *http.Request) {
	units, err := h.units(r)
	if err != nil {
		config.ErrorStatus("failed to get units", http.StatusBadGateway, w, err)
		return
	}
	if len(units) == 0 {
		units = []models.Named{}
	}
	b, err := json.Marshal(units)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (h Indicator) units(r *http.Request) ([]models.Named, error) {
	if h.Cache != nil {
		return h.Cache.Units(r.Context())
	}
	return h.Catalog.Units(r.Context())
}

// CreateUnitHandler accepts either a plain-text body or {"name": "..."} and
// always forwards plain text so a JSON-stringified name never lands upstream
func (h Indicator) CreateUnitHandler(w http.ResponseWriter, r *http.Request) {
	name, err := namedBody(r)
	if err != nil {
		config.ErrorStatus("failed to read request body", http.StatusBadRequest, w, err)
		return
	}
	if name == "" {
		config.ErrorStatus("unit name is required", http.StatusBadRequest, w, fmt.Errorf("empty name"))
		return
	}

	if err := h.Catalog.CreateUnit(r.Context(), name); err != nil {
		upstreamError(w, "failed to create unit", err)
		return
	}
	if h.Cache != nil {
		h.Cache.InvalidateUnits()
	}

	b, _ := json.Marshal(models.MessageResponse{Message: "unit created"})
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// DeleteUnitHandler removes a unit after explicit confirmation
func (h Indicator) DeleteUnitHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["unit_id"])
	if err != nil {
		config.ErrorStatus("invalid unit id", http.StatusBadRequest, w, err)
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		config.ErrorStatus("deletion requires confirmation", http.StatusBadRequest, w, fmt.Errorf("confirm=true not set"))
		return
	}

	if err := h.Catalog.DeleteUnit(r.Context(), id); err != nil {
		upstreamError(w, "failed to delete unit", err)
		return
	}
	if h.Cache != nil {
		h.Cache.InvalidateUnits()
	}
	w.WriteHeader(http.StatusNoContent)
}

// namedBody extracts a vocabulary value from a request carrying either plain
// text or a {"name": "..."} object
func namedBody(r *http.Request) (string, error) {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	defer r.Body.Close()

	s := strings.TrimSpace(string(raw))
	if strings.HasPrefix(s, "{") {
		var wrapped struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(raw, &wrapped); err == nil {
			return strings.TrimSpace(wrapped.Name), nil
		}
	}
	return strings.Trim(s, `"`), nil
}
