package jobs

import (
	"context"
	"fmt"
	"time"

	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/logging"
	"football-club/matchday/internal/metrics"
)

type MembershipExpirer interface {
	ExpireDue(ctx context.Context) (int64, error)
}

// MembershipExpiryJob moves ACTIVE memberships past their expiry to EXPIRED.
type MembershipExpiryJob struct {
	memberships MembershipExpirer
	metrics     *metrics.MetricsRegistry

	runner periodic
}

func NewMembershipExpiryJob(memberships MembershipExpirer, metricsReg *metrics.MetricsRegistry, interval time.Duration) *MembershipExpiryJob {
	if interval <= 0 {
		interval = time.Hour
	}
	j := &MembershipExpiryJob{memberships: memberships, metrics: metricsReg}
	j.runner = periodic{name: constants.JobMembershipExpiry, interval: interval, run: j.Run}
	return j
}

func (j *MembershipExpiryJob) Start(ctx context.Context) { j.runner.start(ctx) }

func (j *MembershipExpiryJob) Stop() { j.runner.stop() }

func (j *MembershipExpiryJob) Interval() time.Duration { return j.runner.interval }

func (j *MembershipExpiryJob) Run(ctx context.Context) error {
	start := time.Now()

	n, err := j.memberships.ExpireDue(ctx)
	if err != nil {
		return fmt.Errorf("failed to expire memberships: %w", err)
	}

	if j.metrics != nil {
		j.metrics.MembershipsExpiredTotal.Add(float64(n))
		j.metrics.JobDuration.WithLabelValues(constants.JobMembershipExpiry).Observe(time.Since(start).Seconds())
	}
	if n > 0 {
		logging.Info("[MembershipExpiryJob] Memberships expired", "job", constants.JobMembershipExpiry, "count", n)
	}
	return nil
}
