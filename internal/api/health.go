package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"football-club/matchday/internal/db/repositories"
	"football-club/matchday/internal/models/dtos/responses"
)

// HealthCheckHandler handles GET /healthCheck. It pings the store and reports
// notification counts per status as a liveness signal for the scheduler.
func HealthCheckHandler(audience *repositories.AudienceRepo, upSince time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		components := make(map[string]responses.ComponentHealth)

		dbStatus := "ok"
		dbDetails := "Entity store connected"
		if err := audience.Ping(ctx); err != nil {
			dbStatus = "down"
			dbDetails = err.Error()
		}
		components["database"] = responses.ComponentHealth{
			Status:  dbStatus,
			Details: dbDetails,
		}

		if dbStatus == "ok" {
			notifStatus := "ok"
			var details string
			counts, err := audience.CountNotificationsByStatus(ctx)
			if err != nil {
				notifStatus = "down"
				details = err.Error()
			} else {
				parts := make([]string, 0, len(counts))
				for _, c := range counts {
					parts = append(parts, fmt.Sprintf("%s=%d", c.Status, c.Total))
				}
				details = strings.Join(parts, " ")
			}
			components["notifications"] = responses.ComponentHealth{
				Status:  notifStatus,
				Details: details,
			}
		}

		overallStatus := "ok"
		for _, svc := range components {
			if svc.Status != "ok" {
				overallStatus = "down"
				break
			}
		}

		now := time.Now()
		uptime := now.Sub(upSince).Round(time.Second).String()

		resp := responses.HealthResponse{
			Components: components,
			Status:     overallStatus,
			UpSince:    upSince.UTC(),
			Uptime:     uptime,
		}
		w.Header().Set("Content-Type", "application/json")
		if overallStatus != "ok" {
			w.WriteHeader(http.StatusServiceUnavailable)
		}
		_ = json.NewEncoder(w).Encode(resp)
	}
}
