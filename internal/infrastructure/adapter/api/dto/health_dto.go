package dto

// HealthResponse reports service and database health
type HealthResponse struct {
	Status   string `json:"status"`
	Database any    `json:"database,omitempty"`
}
