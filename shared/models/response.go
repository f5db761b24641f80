package models

import "time"

// ErrorResponse - стандартная структура для ответа об ошибке в формате JSON.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is returned by the health endpoints of every service.
type HealthResponse struct {
	Status    string    `json:"status"`
	Service   string    `json:"service"`
	Timestamp time.Time `json:"timestamp"`
}

// NewHealthResponse reports a healthy service at the current UTC time.
func NewHealthResponse(service string) HealthResponse {
	return HealthResponse{
		Status:    "healthy",
		Service:   service,
		Timestamp: time.Now().UTC(),
	}
}
