package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/medgrid/measure-console-api/models"
	"github.com/medgrid/measure-console-api/upstream/mocks"
)

func TestReasonsHandler(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Reasons", mock.Anything).Return([]models.Named{
		{ID: 1, Name: "воспаление"},
		{ID: 2, Name: "жалоба"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reasons", nil)
	rr := httptest.NewRecorder()
	Reason{Catalog: catalog}.ReasonsHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var reasons []models.Named
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &reasons))
	assert.Len(t, reasons, 2)
}

func TestReasonsHandlerUpstreamFailure(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("Reasons", mock.Anything).Return(nil, errors.New("connection refused"))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/reasons", nil)
	rr := httptest.NewRecorder()
	Reason{Catalog: catalog}.ReasonsHandler(rr, req)

	assert.Equal(t, http.StatusBadGateway, rr.Code)
}

func TestCreateReasonHandlerForwardsPlain(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("CreateReason", mock.Anything, "повышенная нагрузка").Return(nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/reasons", strings.NewReader(`{"name": "повышенная нагрузка"}`))
	rr := httptest.NewRecorder()
	Reason{Catalog: catalog}.CreateReasonHandler(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
	catalog.AssertCalled(t, "CreateReason", mock.Anything, "повышенная нагрузка")
}

func TestDeleteReasonHandlerConfirmGate(t *testing.T) {
	catalog := &mocks.CatalogService{}
	catalog.On("DeleteReason", mock.Anything, 5).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/reasons/5", nil)
	req = mux.SetURLVars(req, map[string]string{"reason_id": "5"})
	rr := httptest.NewRecorder()
	Reason{Catalog: catalog}.DeleteReasonHandler(rr, req)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	catalog.AssertNotCalled(t, "DeleteReason", mock.Anything, mock.Anything)

	req = httptest.NewRequest(http.MethodDelete, "/api/v1/reasons/5?confirm=true", nil)
	req = mux.SetURLVars(req, map[string]string{"reason_id": "5"})
	rr = httptest.NewRecorder()
	Reason{Catalog: catalog}.DeleteReasonHandler(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
}
