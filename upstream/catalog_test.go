package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const groupsPayload = `[
	{
		"id": 1,
		"groupName": "Биохимия",
		"indicators": [
			{"name": "АЛТ", "units": ["ед/л", ""]},
			{"name": "АСТ", "units": ["ед/л"]}
		]
	},
	{
		"groupName": "Гормоны",
		"indicators": [{"name": "ТТГ", "units": ["мкМЕ/мл"]}]
	}
]`

func TestCatalogServiceGroups(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/groups", r.URL.Path)
		w.Write([]byte(groupsPayload))
	}))
	defer srv.Close()

	svc := NewCatalogService(NewClient(srv.URL, 5*time.Second))
	groups, err := svc.Groups(context.Background())
	require.NoError(t, err)

	require.Len(t, groups, 2)
	assert.Equal(t, 1, groups[0].ID)
	// missing ids fall back to the list position
	assert.Equal(t, 2, groups[1].ID)
	// blank units are dropped
	assert.Equal(t, []string{"ед/л"}, groups[0].Indicators[0].Units)
}

func TestCatalogServiceIndicatorOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(groupsPayload))
	}))
	defer srv.Close()

	svc := NewCatalogService(NewClient(srv.URL, 5*time.Second))
	options, err := svc.IndicatorOptions(context.Background())
	require.NoError(t, err)

	require.Len(t, options, 3)
	keys := make([]string, 0, len(options))
	for _, o := range options {
		keys = append(keys, o.Key)
	}
	assert.Contains(t, keys, "Биохимия||АЛТ")
	assert.Contains(t, keys, "Гормоны||ТТГ")

	for _, o := range options {
		if o.Key == "Биохимия||АЛТ" {
			assert.Equal(t, "Биохимия · АЛТ", o.Label)
			assert.Equal(t, "АЛТ", o.Name)
			assert.Equal(t, []string{"ед/л"}, o.Units)
		}
	}
}

func TestCatalogServiceUnitsSorted(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`["ммоль/л", "г/л", "ед/л"]`))
	}))
	defer srv.Close()

	svc := NewCatalogService(NewClient(srv.URL, 5*time.Second))
	units, err := svc.Units(context.Background())
	require.NoError(t, err)

	require.Len(t, units, 3)
	assert.Equal(t, "г/л", units[0].Name)
	assert.Equal(t, "ед/л", units[1].Name)
	assert.Equal(t, "ммоль/л", units[2].Name)
}

func TestCatalogServiceCreateUnitTrims(t *testing.T) {
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		buf := make([]byte, 64)
		n, _ := r.Body.Read(buf)
		gotBody = string(buf[:n])
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	svc := NewCatalogService(NewClient(srv.URL, 5*time.Second))
	require.NoError(t, svc.CreateUnit(context.Background(), "  мг/л  "))
	assert.Equal(t, "мг/л", gotBody)
}
