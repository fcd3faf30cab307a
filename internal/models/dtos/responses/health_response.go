package responses

import "time"

// ComponentHealth is one dependency's entry in the health report.
type ComponentHealth struct {
	Status  string `json:"status"`
	Details string `json:"details"`
}

type HealthResponse struct {
	Status     string                     `json:"status"`
	Components map[string]ComponentHealth `json:"components"`
	UpSince    time.Time                  `json:"up_since"`
	Uptime     string                     `json:"uptime"`
}
