package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/medgrid/measure-console-api/config"
	"github.com/medgrid/measure-console-api/models"
	"github.com/medgrid/measure-console-api/upstream"
)

// Catalog serves the indicator-group catalog read models
type Catalog struct {
	Cache *upstream.Catalog
}

// GroupsHandler returns the group catalog
func (h Catalog) GroupsHandler(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Cache.Groups(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get groups", http.StatusBadGateway, w, err)
		return
	}
	if len(groups) == 0 {
		groups = []models.Group{}
	}
	b, err := json.Marshal(groups)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// IndicatorOptionsHandler returns the flattened, sorted measurement-entry
// form options
func (h Catalog) IndicatorOptionsHandler(w http.ResponseWriter, r *http.Request) {
	options, err := h.Cache.IndicatorOptions(r.Context())
	if err != nil {
		config.ErrorStatus("failed to get indicator options", http.StatusBadGateway, w, err)
		return
	}
	if len(options) == 0 {
		options = []models.IndicatorOption{}
	}
	b, err := json.Marshal(options)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
