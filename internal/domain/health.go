package domain

import "time"

const (
	HealthStatusHealthy   = "healthy"
	HealthStatusUnhealthy = "unhealthy"

	DatabaseConnected    = "connected"
	DatabaseDisconnected = "disconnected"
)

// DatabaseInfo é o resultado da consulta de verificação no banco
type DatabaseInfo struct {
	CurrentTime time.Time
	Version     string
}

type HealthStatus struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
	Error     string    `json:"error,omitempty"`
}

func (h HealthStatus) Healthy() bool {
	return h.Status == HealthStatusHealthy
}
