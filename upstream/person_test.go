package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medgrid/measure-console-api/models"
)

func TestPersonServiceGet(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/people/7", r.URL.Path)
		w.Write([]byte(`{"id": 7, "name": "Иванов", "gender": "male", "dateOfBirth": "1980-01-01"}`))
	}))
	defer srv.Close()

	svc := NewPersonService(NewClient(srv.URL, 5*time.Second))
	person, err := svc.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "Иванов", person.Name)
}

func TestPersonServiceGetAmbiguousPayload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "name": "A"}, {"id": 2, "name": "B"}]`))
	}))
	defer srv.Close()

	svc := NewPersonService(NewClient(srv.URL, 5*time.Second))
	_, err := svc.Get(context.Background(), 7)
	assert.True(t, IsNotFound(err))
}

func TestPersonServiceCreateEchoedRecord(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.Write([]byte(`{"id": 4, "name": "Новая", "gender": "female", "dateOfBirth": "2000-05-05"}`))
	}))
	defer srv.Close()

	svc := NewPersonService(NewClient(srv.URL, 5*time.Second))
	created, err := svc.Create(context.Background(), models.PersonRequest{
		Name: "Новая", Gender: models.GenderFemale, DateOfBirth: "2000-05-05",
	})
	require.NoError(t, err)
	require.NotNil(t, created)
	assert.Equal(t, 4, created.ID)
}

func TestPersonServiceCreateListEchoMeansReload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"id": 1, "name": "A"}, {"id": 2, "name": "B"}]`))
	}))
	defer srv.Close()

	svc := NewPersonService(NewClient(srv.URL, 5*time.Second))
	created, err := svc.Create(context.Background(), models.PersonRequest{
		Name: "X", Gender: models.GenderMale, DateOfBirth: "2000-05-05",
	})
	require.NoError(t, err)
	assert.Nil(t, created)
}
