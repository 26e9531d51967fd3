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

// Measure exported for testing purposes
type Measure struct {
	Service upstream.MeasureService
	Hub     *Hub
}

func measureID(r *http.Request) (int, error) {
	return strconv.Atoi(mux.Vars(r)["measure_id"])
}

func validateMeasureRequest(req *models.MeasureRequest) error {
	if req.Name == "" {
		return fmt.Errorf("indicator name is required")
	}
	if req.Units == "" {
		return fmt.Errorf("units are required")
	}
	if req.RegDate == "" {
		return fmt.Errorf("date is required")
	}
	if !models.ValidWireDate(req.RegDate) {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}
	return nil
}

// reload refetches the whole measures payload after a write so the response
// carries the server-computed status and range fields the console cannot
// derive itself
func (h Measure) reload(w http.ResponseWriter, r *http.Request, personID, status int) {
	blocks, err := h.Service.Measures(r.Context(), personID)
	if err != nil {
		config.ErrorStatus("failed to reload measures", http.StatusBadGateway, w, err)
		return
	}
	b, err := json.Marshal(models.MeasuresResponse{Blocks: blocks})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(status)
	w.Write(b)

	if h.Hub != nil {
		h.Hub.NotifyPerson(personID)
	}
}

// CreateMeasureHandler records a new measurement and returns the reloaded
// payload
func (h Measure) CreateMeasureHandler(w http.ResponseWriter, r *http.Request) {
	id, err := personID(r)
	if err != nil {
		config.ErrorStatus("invalid person id", http.StatusBadRequest, w, err)
		return
	}

	var req models.MeasureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validateMeasureRequest(&req); err != nil {
		config.ErrorStatus("invalid measure", http.StatusBadRequest, w, err)
		return
	}

	if err := h.Service.Create(r.Context(), id, req); err != nil {
		upstreamError(w, "failed to create measure", err)
		return
	}
	h.reload(w, r, id, http.StatusCreated)
}

// UpdateMeasureHandler patches a measurement by id and returns the reloaded
// payload
func (h Measure) UpdateMeasureHandler(w http.ResponseWriter, r *http.Request) {
	pid, err := personID(r)
	if err != nil {
		config.ErrorStatus("invalid person id", http.StatusBadRequest, w, err)
		return
	}
	mid, err := measureID(r)
	if err != nil {
		config.ErrorStatus("invalid measure id", http.StatusBadRequest, w, err)
		return
	}

	var req models.MeasureRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if err := validateMeasureRequest(&req); err != nil {
		config.ErrorStatus("invalid measure", http.StatusBadRequest, w, err)
		return
	}

	if err := h.Service.Update(r.Context(), pid, mid, req); err != nil {
		upstreamError(w, "failed to update measure", err)
		return
	}
	h.reload(w, r, pid, http.StatusOK)
}

// DeleteMeasureHandler removes a measurement. The confirmation step is
// explicit: without confirm=true nothing is issued upstream.
func (h Measure) DeleteMeasureHandler(w http.ResponseWriter, r *http.Request) {
	pid, err := personID(r)
	if err != nil {
		config.ErrorStatus("invalid person id", http.StatusBadRequest, w, err)
		return
	}
	mid, err := measureID(r)
	if err != nil {
		config.ErrorStatus("invalid measure id", http.StatusBadRequest, w, err)
		return
	}
	if r.URL.Query().Get("confirm") != "true" {
		config.ErrorStatus("deletion requires confirmation", http.StatusBadRequest, w, fmt.Errorf("confirm=true not set"))
		return
	}

	if err := h.Service.Delete(r.Context(), pid, mid); err != nil {
		upstreamError(w, "failed to delete measure", err)
		return
	}
	h.reload(w, r, pid, http.StatusOK)
}

// DecryptHandler returns the percentage breakdown for a person and date as
// pie slices
func (h Measure) DecryptHandler(w http.ResponseWriter, r *http.Request) {
	id, err := personID(r)
	if err != nil {
		config.ErrorStatus("invalid person id", http.StatusBadRequest, w, err)
		return
	}
	date := r.URL.Query().Get("date")
	if !models.ValidWireDate(date) {
		config.ErrorStatus("date must be YYYY-MM-DD", http.StatusBadRequest, w, fmt.Errorf("got %q", date))
		return
	}

	slices, err := h.Service.Decrypt(r.Context(), id, date)
	if err != nil {
		upstreamError(w, "failed to get decrypt breakdown", err)
		return
	}

	b, err := json.Marshal(models.DecryptResponse{Date: date, Slices: slices})
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// upstreamError writes the right status for an upstream failure, surfacing
// the server's own message when it sent one
func upstreamError(w http.ResponseWriter, message string, err error) {
	if upstream.IsNotFound(err) {
		config.ErrorStatus(message, http.StatusNotFound, w, err)
		return
	}
	if m := upstream.Message(err); m != "" {
		config.ErrorStatus(fmt.Sprintf("%s: %s", message, m), http.StatusBadGateway, w, err)
		return
	}
	config.ErrorStatus(message, http.StatusBadGateway, w, err)
}
