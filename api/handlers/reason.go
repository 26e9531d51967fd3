package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/medgrid/measure-console-api/config"
	"github.com/medgrid/measure-console-api/models"
	"github.com/medgrid/measure-console-api/upstream"
)

// Reason exported for testing purposes
type Reason struct {
	Catalog upstream.CatalogService
	Cache   *upstream.Catalog
}

// ReasonsHandler returns the reason vocabulary, sorted for stable display
func (h Reason) ReasonsHandler(w http.ResponseWriter, r *http.Request) {
	reasons, err := h.reasons(r)
	if err != nil {
		config.ErrorStatus("failed to get reasons", http.StatusBadGateway, w, err)
		return
	}
	if len(reasons) == 0 {
		reasons = []models.Named{}
	}
	b, err := json.Marshal(reasons)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

func (h Reason) reasons(r *http.Request) ([]models.Named, error) {
	if h.Cache != nil {
		return h.Cache.Reasons(r.Context())
	}
	return h.Catalog.Reasons(r.Context())
}

// CreateReasonHandler accepts either plain text or {"name": "..."} and always
// forwards plain text
func (h Reason) CreateReasonHandler(w http.ResponseWriter, r *http.Request) {
	name, err := namedBody(r)
	if err != nil {
		config.ErrorStatus("failed to read request body", http.StatusBadRequest, w, err)
		return
	}
	if name == "" {
		config.ErrorStatus("reason name is required", http.StatusBadRequest, w, fmt.Errorf("empty name"))
		return
	}

	if err := h.Catalog.CreateReason(r.Context(), name); err != nil {
		upstreamError(w, "failed to create reason", err)
		return
	}
	if h.Cache != nil {
		h.Cache.InvalidateReasons()
	}

	b, _ := json.Marshal(models.MessageResponse{Message: "reason created"})
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}

// DeleteReasonHandler removes a reason after explicit confirmation
func (h Reason) DeleteReasonHandler(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["reason_id"])
	if err != nil {
		config.ErrorStatus("invalid reason id", http.StatusBadRequest, w, err)
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		config.ErrorStatus("deletion requires confirmation", http.StatusBadRequest, w, fmt.Errorf("confirm=true not set"))
		return
	}

	if err := h.Catalog.DeleteReason(r.Context(), id); err != nil {
		upstreamError(w, "failed to delete reason", err)
		return
	}
	if h.Cache != nil {
		h.Cache.InvalidateReasons()
	}
	w.WriteHeader(http.StatusNoContent)
}
