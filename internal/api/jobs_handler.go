package api

import (
	"net/http"
	"time"

	"football-club/matchday/internal/auth"
	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/jobs"
	"football-club/matchday/internal/logging"
	"football-club/matchday/internal/models/dtos/responses"
)

// JobsHandler handles manual job triggering endpoints
type JobsHandler struct {
	jobs *jobs.Jobs
}

// NewJobsHandler creates a new jobs handler
func NewJobsHandler(j *jobs.Jobs) *JobsHandler {
	return &JobsHandler{
		jobs: j,
	}
}

// TriggerDeadlinePass handles POST /api/v1/jobs/deadline/run. The pass is the
// same one the ticker runs and shares its lock.
func (h *JobsHandler) TriggerDeadlinePass() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		triggeredBy := auth.GetUserClaims(r.Context()).MemberID()

		logging.Info("[JobsHandler] Deadline pass manually triggered", "job", constants.JobDeadlineScheduler, "member_id", triggeredBy)

		summary, err := h.jobs.Deadline.RunOnce(r.Context())
		if err != nil {
			logging.Error("[JobsHandler] Deadline pass failed", "job", constants.JobDeadlineScheduler, "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Failed to run deadline pass")
			return
		}

		respondWithSuccess(w, http.StatusOK, &responses.SchedulerPassResponse{
			Scanned:     summary.Scanned,
			Created:     summary.Created,
			Failed:      summary.Failed,
			Skipped:     summary.Skipped,
			TriggeredBy: triggeredBy,
			TriggeredAt: start.UTC(),
			DurationMs:  time.Since(start).Milliseconds(),
		})
	}
}

// TriggerMembershipExpiry handles POST /api/v1/jobs/membership-expiry/run
func (h *JobsHandler) TriggerMembershipExpiry() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.jobs.Expiry.Run(r.Context()); err != nil {
			logging.Error("[JobsHandler] Membership expiry failed", "job", constants.JobMembershipExpiry, "error", err.Error())
			respondWithError(w, http.StatusInternalServerError, "Failed to expire memberships")
			return
		}
		respondWithSuccess(w, http.StatusOK, &JobInfo{Name: constants.JobMembershipExpiry, Status: "completed"})
	}
}

// GetJobStatus handles GET /api/v1/jobs/status
func (h *JobsHandler) GetJobStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondWithSuccess(w, http.StatusOK, &JobStatusData{
			Jobs: []JobInfo{
				{
					Name:        constants.JobDeadlineScheduler,
					Description: "Creates milestone notifications for matches whose deadlines have passed",
					Schedule:    "Every " + h.jobs.Deadline.Interval().String(),
					Status:      "running",
				},
				{
					Name:        constants.JobMembershipExpiry,
					Description: "Expires memberships past their expiry date",
					Schedule:    "Every " + h.jobs.Expiry.Interval().String(),
					Status:      "running",
				},
			},
		})
	}
}

type JobStatusData struct {
	Jobs []JobInfo `json:"jobs"`
}

type JobInfo struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Schedule    string `json:"schedule,omitempty"`
	Status      string `json:"status"`
}
