// Package docs Measure Console API.
//
// Documentation of the measurement console API.
//
//     Schemes: https
//     BasePath: /
//     Version: 1.0.0
//
//     Consumes:
//     - application/json
//
//     Produces:
//     - application/json
//
// swagger:meta
package docs

import (
	"github.com/medgrid/measure-console-api/models"
)

// swagger:route GET /health health healthEndpointID
// Lists the healthchex of the web service api.
// responses:
//   200: healthResponse

// Shows the current health of the api. true means it is alive, false means it is not.
// swagger:response healthResponse
type healthResponseWrapper struct {
	// in:body
	Body models.HealthCheckResponse
}

// swagger:route GET /api/v1/people people peopleEndpointID
// Lists every person with the optional name filter applied.
// responses:
//   200: peopleResponse

// The person list with display ages derived from each date of birth.
// swagger:response peopleResponse
type peopleResponseWrapper struct {
	// in:body
	Body []models.PersonView
}

// swagger:route GET /api/v1/people/{person_id}/grid grid gridEndpointID
// Returns the pivoted measurement table for one person, group and column page.
// responses:
//   200: gridResponse

// The grid view model: group tabs, date columns and indicator rows.
// swagger:response gridResponse
type gridResponseWrapper struct {
	// in:body
	Body models.GridView
}

// swagger:route POST /api/v1/people/{person_id}/measures measures createMeasureEndpointID
// Records a measurement and returns the reloaded payload.
// responses:
//   201: measuresResponse

// The full reloaded measures payload with server-computed statuses.
// swagger:response measuresResponse
type measuresResponseWrapper struct {
	// in:body
	Body models.MeasuresResponse
}

// swagger:route GET /api/v1/people/{person_id}/decrypt decrypt decryptEndpointID
// Returns the percentage breakdown for a person and date.
// responses:
//   200: decryptResponse

// The pie-chart slices of the breakdown.
// swagger:response decryptResponse
type decryptResponseWrapper struct {
	// in:body
	Body models.DecryptResponse
}

// swagger:route GET /api/v1/navigation navigation navigationEndpointID
// Returns the sidebar descriptor and the last-viewed-person slot.
// responses:
//   200: navigationResponse

// The static shell descriptor.
// swagger:response navigationResponse
type navigationResponseWrapper struct {
	// in:body
	Body models.NavResponse
}
