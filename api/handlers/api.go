package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/medgrid/measure-console-api/api"
	"github.com/medgrid/measure-console-api/api/scheduler"
	"github.com/medgrid/measure-console-api/config"
	"github.com/medgrid/measure-console-api/models"
	"github.com/medgrid/measure-console-api/upstream"
)

// App stores the router and the upstream services, so it can be reused
type App struct {
	Router *mux.Router
	Config config.Config

	client    *upstream.Client
	cache     *upstream.Catalog
	hub       *Hub
	nav       *NavStore
	scheduler *scheduler.Scheduler
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	people := upstream.NewPersonService(a.client)
	measures := upstream.NewMeasureService(a.client)
	catalog := upstream.NewCatalogService(a.client)
	indicators := upstream.NewIndicatorService(a.client)
	transcripts := upstream.NewTranscriptService(a.client)

	p := People{Service: people, Cache: a.cache}
	g := Grid{People: people, Measures: measures, Nav: a.nav}
	m := Measure{Service: measures, Hub: a.hub}
	ind := Indicator{Service: indicators, Catalog: catalog, Cache: a.cache}
	tr := Transcript{Service: transcripts}
	re := Reason{Catalog: catalog, Cache: a.cache}
	cat := Catalog{Cache: a.cache}
	nav := Navigation{Store: a.nav}

	r := mux.NewRouter()

	// healthchex
	r.HandleFunc("/health", healthCheckHandler)

	// websocket endpoint stays outside the JSON middleware chain so the
	// connection can be hijacked
	r.HandleFunc("/ws/people/{person_id}", a.hub.ServeWS)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()
	apiCreate.Use(api.Middleware, api.MetricsMiddleware, api.TimeoutMiddleware(a.Config.RequestTimeout))

	apiCreate.HandleFunc("/people", p.PeopleHandler).Methods("GET")
	apiCreate.HandleFunc("/people", p.CreatePersonHandler).Methods("POST")
	apiCreate.HandleFunc("/people/{person_id}", p.PersonByIDHandler).Methods("GET")
	apiCreate.HandleFunc("/people/{person_id}", p.UpdatePersonHandler).Methods("PATCH")
	apiCreate.HandleFunc("/people/{person_id}", p.DeletePersonHandler).Methods("DELETE")

	apiCreate.HandleFunc("/people/{person_id}/grid", g.GridHandler).Methods("GET")
	apiCreate.HandleFunc("/people/{person_id}/measures", m.CreateMeasureHandler).Methods("POST")
	apiCreate.HandleFunc("/people/{person_id}/measures/{measure_id}", m.UpdateMeasureHandler).Methods("PATCH")
	apiCreate.HandleFunc("/people/{person_id}/measures/{measure_id}", m.DeleteMeasureHandler).Methods("DELETE")
	apiCreate.HandleFunc("/people/{person_id}/decrypt", m.DecryptHandler).Methods("GET")

	apiCreate.HandleFunc("/groups", cat.GroupsHandler).Methods("GET")
	apiCreate.HandleFunc("/indicator-options", cat.IndicatorOptionsHandler).Methods("GET")

	apiCreate.HandleFunc("/indicators", ind.CreateIndicatorHandler).Methods("POST")
	apiCreate.HandleFunc("/indicators/units", ind.UnitsHandler).Methods("GET")
	apiCreate.HandleFunc("/indicators/units", ind.CreateUnitHandler).Methods("POST")
	apiCreate.HandleFunc("/indicators/units/{unit_id}", ind.DeleteUnitHandler).Methods("DELETE")

	apiCreate.HandleFunc("/transcripts", tr.CreateTranscriptHandler).Methods("POST")

	apiCreate.HandleFunc("/reasons", re.ReasonsHandler).Methods("GET")
	apiCreate.HandleFunc("/reasons", re.CreateReasonHandler).Methods("POST")
	apiCreate.HandleFunc("/reasons/{reason_id}", re.DeleteReasonHandler).Methods("DELETE")

	apiCreate.HandleFunc("/navigation", nav.NavigationHandler).Methods("GET")
	apiCreate.HandleFunc("/navigation/last-person", nav.LastPersonHandler).Methods("GET")
	apiCreate.HandleFunc("/navigation/last-person", nav.SetLastPersonHandler).Methods("PUT")

	apiCreate.HandleFunc("/metrics", metricsHandler).Methods("GET")

	// console assets hosted at "/"
	r.PathPrefix("/").Handler(http.StripPrefix("/", http.FileServer(http.Dir("./docs/"))))
	return r
}

// Initialize is invoked by main to build the upstream client and create a router
func (a *App) Initialize() error {
	if a.Config.UpstreamURL == "" {
		return fmt.Errorf("upstream url is not set")
	}

	a.client = upstream.NewClient(a.Config.UpstreamURL, a.Config.RequestTimeout)
	a.cache = upstream.NewCatalog(
		upstream.NewPersonService(a.client),
		upstream.NewCatalogService(a.client),
		a.Config.CacheTTL,
	)
	a.hub = NewHub()
	a.nav = NewNavStore()

	a.scheduler = scheduler.New(a.cache, a.Config.RefreshSpec)
	if err := a.scheduler.Start(); err != nil {
		zap.S().With(err).Error("failed to start catalog refresh scheduler")
		return err
	}
	zap.S().Info("measure-console-api is wired to the upstream")

	a.initializeRoutes()
	return nil
}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	b, _ := json.Marshal(models.HealthCheckResponse{
		Alive: true,
	})
	_, _ = io.WriteString(w, string(b))
}

func metricsHandler(w http.ResponseWriter, r *http.Request) {
	b, err := json.Marshal(api.Snapshot())
	if err != nil {
		config.ErrorStatus("failed to marshal metrics", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}
