package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/medgrid/measure-console-api/config"
	"github.com/medgrid/measure-console-api/models"
	"github.com/medgrid/measure-console-api/upstream"
)

// Transcript exported for testing purposes
type Transcript struct {
	Service upstream.TranscriptService
}

// CreateTranscriptHandler creates a transcription rule mapping an indicator
// and gender onto its raise/fall reason sets
func (h Transcript) CreateTranscriptHandler(w http.ResponseWriter, r *http.Request) {
	var tr models.Transcript
	if err := json.NewDecoder(r.Body).Decode(&tr); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}

	tr.Name = strings.TrimSpace(StripCyrillic(tr.Name))
	if tr.Name == "" {
		config.ErrorStatus("name is required", http.StatusBadRequest, w, fmt.Errorf("name empty after shaping"))
		return
	}
	if !validGender(tr.Gender) {
		config.ErrorStatus("gender must be male, female or both", http.StatusBadRequest, w, fmt.Errorf("got %q", tr.Gender))
		return
	}
	if tr.RaisesIds == nil {
		tr.RaisesIds = []int{}
	}
	if tr.FallsIds == nil {
		tr.FallsIds = []int{}
	}

	if err := h.Service.Create(r.Context(), tr); err != nil {
		upstreamError(w, "failed to create transcript", err)
		return
	}

	b, _ := json.Marshal(models.MessageResponse{Message: "transcript created"})
	w.WriteHeader(http.StatusCreated)
	w.Write(b)
}
