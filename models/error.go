package models

// MessageResponse is the plain acknowledgement envelope for writes
type MessageResponse struct {
	Message string `json:"message"`
}

// HealthCheckResponse returns the health check response build
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
