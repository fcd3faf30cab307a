package jobs

import (
	"context"
	"time"

	"football-club/matchday/internal/common"
	"football-club/matchday/internal/metrics"
	"football-club/matchday/internal/services"
)

// Jobs groups the background jobs owned by the process lifecycle.
type Jobs struct {
	Deadline *DeadlineJob
	Expiry   *MembershipExpiryJob
}

type Config struct {
	Deadline       DeadlineJobConfig
	ExpiryInterval time.Duration
}

// InitializeJobs builds the scheduler and the membership expiry job. Nothing
// runs until Start.
func InitializeJobs(
	matches SchedulableMatches,
	notifier MilestoneNotifier,
	memberships MembershipExpirer,
	clock services.Clock,
	lock *common.PassLock,
	metricsReg *metrics.MetricsRegistry,
	cfg Config,
) *Jobs {
	return &Jobs{
		Deadline: NewDeadlineJob(matches, notifier, clock, lock, metricsReg, cfg.Deadline),
		Expiry:   NewMembershipExpiryJob(memberships, metricsReg, cfg.ExpiryInterval),
	}
}

// Start launches every job in the background.
func (j *Jobs) Start(ctx context.Context) {
	j.Deadline.Start(ctx)
	j.Expiry.Start(ctx)
}

// Stop stops every job and waits for in-flight runs.
func (j *Jobs) Stop() {
	j.Deadline.Stop()
	j.Expiry.Stop()
}
