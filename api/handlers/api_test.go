package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/medgrid/measure-console-api/config"
)

func TestHealthCheckHandler(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	healthCheckHandler(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"alive": true}`, rr.Body.String())
}

func TestInitializeRequiresUpstreamURL(t *testing.T) {
	a := App{Config: config.Config{}}

	err := a.Initialize()
	assert.EqualError(t, err, "upstream url is not set")
}
