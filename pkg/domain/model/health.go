package model

// HealthStatus is the health check response. Repository is the owner/repo
// this instance serves, empty when the server was started without one.
type HealthStatus struct {
	Status     string `json:"status"`
	Service    string `json:"service"`
	Version    string `json:"version"`
	Repository string `json:"repository,omitempty"`
}
