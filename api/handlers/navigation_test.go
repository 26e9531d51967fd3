package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medgrid/measure-console-api/models"
)

func TestNavigationHandlerSections(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/navigation", nil)
	rr := httptest.NewRecorder()
	Navigation{Store: NewNavStore()}.NavigationHandler(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp models.NavResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	require.Len(t, resp.Sections, 2)
	assert.Equal(t, "People", resp.Sections[0].Title)
	assert.False(t, resp.Sections[0].Collapsible)
	assert.Equal(t, "Forms", resp.Sections[1].Title)
	assert.True(t, resp.Sections[1].Collapsible)
	assert.Len(t, resp.Sections[1].Items, 3)
	assert.Nil(t, resp.LastPersonID)
}

func TestLastPersonRoundTrip(t *testing.T) {
	store := NewNavStore()
	nav := Navigation{Store: store}

	rr := httptest.NewRecorder()
	nav.LastPersonHandler(rr, httptest.NewRequest(http.MethodGet, "/api/v1/navigation/last-person", nil))
	assert.JSONEq(t, `{"lastPersonId": null}`, rr.Body.String())

	rr = httptest.NewRecorder()
	nav.SetLastPersonHandler(rr, httptest.NewRequest(http.MethodPut, "/api/v1/navigation/last-person", strings.NewReader(`{"personId": 12}`)))
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = httptest.NewRecorder()
	nav.LastPersonHandler(rr, httptest.NewRequest(http.MethodGet, "/api/v1/navigation/last-person", nil))
	assert.JSONEq(t, `{"lastPersonId": 12}`, rr.Body.String())
}

func TestNavStoreOverwrite(t *testing.T) {
	store := NewNavStore()
	store.Set(1)
	store.Set(9)

	got := store.Get()
	require.NotNil(t, got)
	assert.Equal(t, 9, *got)
}
