package jobs

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"football-club/matchday/internal/common"
	"football-club/matchday/internal/constants"
	"football-club/matchday/internal/logging"
	"football-club/matchday/internal/metrics"
	models "football-club/matchday/internal/models/gorm"
	"football-club/matchday/internal/services"

	"golang.org/x/sync/errgroup"
)

type SchedulableMatches interface {
	ListSchedulable(ctx context.Context) ([]models.Match, error)
}

// MilestoneNotifier creates the notification of a due milestone unless one exists.
type MilestoneNotifier interface {
	EnsurePending(ctx context.Context, match *models.Match, nType constants.NotificationType) (*models.Notification, bool, error)
}

type DeadlineJobConfig struct {
	Interval     time.Duration
	MatchTimeout time.Duration
	Concurrency  int
}

// PassSummary reports one scheduler pass.
type PassSummary struct {
	Scanned int  `json:"scanned"`
	Created int  `json:"created"`
	Failed  int  `json:"failed"`
	Skipped bool `json:"skipped"`
}

// DeadlineJob detects milestones that have come due and creates their
// notifications. The check is level triggered, so missed ticks are caught up
// on the next pass.
type DeadlineJob struct {
	matches  SchedulableMatches
	notifier MilestoneNotifier
	clock    services.Clock
	lock     *common.PassLock
	metrics  *metrics.MetricsRegistry
	cfg      DeadlineJobConfig

	runner periodic
}

func NewDeadlineJob(
	matches SchedulableMatches,
	notifier MilestoneNotifier,
	clock services.Clock,
	lock *common.PassLock,
	metricsReg *metrics.MetricsRegistry,
	cfg DeadlineJobConfig,
) *DeadlineJob {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.MatchTimeout <= 0 {
		cfg.MatchTimeout = 30 * time.Second
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}

	j := &DeadlineJob{
		matches:  matches,
		notifier: notifier,
		clock:    clock,
		lock:     lock,
		metrics:  metricsReg,
		cfg:      cfg,
	}
	j.runner = periodic{
		name:     constants.JobDeadlineScheduler,
		interval: cfg.Interval,
		run: func(ctx context.Context) error {
			_, err := j.RunOnce(ctx)
			return err
		},
	}
	return j
}

// Start runs a pass immediately and then every interval.
func (j *DeadlineJob) Start(ctx context.Context) { j.runner.start(ctx) }

// Stop waits for the in-flight pass to finish.
func (j *DeadlineJob) Stop() { j.runner.stop() }

func (j *DeadlineJob) Interval() time.Duration { return j.cfg.Interval }

// DueMilestones lists the milestones of m whose trigger time is at or before now.
func DueMilestones(m *models.Match, now time.Time) []constants.NotificationType {
	var due []constants.NotificationType
	if !m.PollingStartAt.After(now) {
		due = append(due, constants.NotificationPollingStart)
	}
	if m.SoftDeadlineAt != nil && !m.SoftDeadlineAt.After(now) {
		due = append(due, constants.NotificationSoftDeadline)
	}
	if !m.HardDeadlineAt.After(now) {
		due = append(due, constants.NotificationHardDeadline)
	}
	return due
}

// RunOnce performs one pass. A failing match is logged and skipped; only a
// failure to list matches fails the pass.
func (j *DeadlineJob) RunOnce(ctx context.Context) (PassSummary, error) {
	var summary PassSummary

	// The unique (match_id, type) index keeps passes idempotent, so an
	// unreachable lock backend fails open instead of stalling notifications.
	if j.lock != nil {
		acquired, err := j.lock.TryAcquire(constants.JobDeadlineScheduler, j.lockTTL())
		switch {
		case err != nil:
			logging.Error("[DeadlineJob] Pass lock unavailable, running unlocked",
				"job", constants.JobDeadlineScheduler,
				"error", err.Error(),
			)
		case !acquired:
			logging.Info("[DeadlineJob] Another pass is running, skipping", "job", constants.JobDeadlineScheduler)
			summary.Skipped = true
			return summary, nil
		default:
			defer j.lock.Release(constants.JobDeadlineScheduler)
		}
	}

	start := time.Now()
	now := j.clock.Now()

	matches, err := j.matches.ListSchedulable(ctx)
	if err != nil {
		return summary, fmt.Errorf("failed to list schedulable matches: %w", err)
	}
	summary.Scanned = len(matches)

	var created, failed atomic.Int64
	var g errgroup.Group
	g.SetLimit(j.cfg.Concurrency)

	for i := range matches {
		match := &matches[i]
		g.Go(func() error {
			n, err := j.processMatch(ctx, match, now)
			created.Add(int64(n))
			if err != nil {
				failed.Add(1)
				logging.Error("[DeadlineJob] Match processing failed",
					"job", constants.JobDeadlineScheduler,
					"match_id", match.ID,
					"error", err.Error(),
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	summary.Created = int(created.Load())
	summary.Failed = int(failed.Load())

	if j.metrics != nil {
		j.metrics.SchedulerRunDuration.Observe(time.Since(start).Seconds())
		j.metrics.SchedulerMatchesScanned.Add(float64(summary.Scanned))
		j.metrics.SchedulerMatchFailures.Add(float64(summary.Failed))
	}

	logging.Info("[DeadlineJob] Pass completed",
		"job", constants.JobDeadlineScheduler,
		"scanned", summary.Scanned,
		"created", summary.Created,
		"failed", summary.Failed,
		"duration", time.Since(start).Truncate(time.Millisecond).String(),
	)
	return summary, nil
}

// processMatch handles one match within its own time budget.
func (j *DeadlineJob) processMatch(ctx context.Context, match *models.Match, now time.Time) (int, error) {
	mctx, cancel := context.WithTimeout(ctx, j.cfg.MatchTimeout)
	defer cancel()

	created := 0
	for _, nType := range DueMilestones(match, now) {
		if err := mctx.Err(); err != nil {
			return created, fmt.Errorf("%s: %w", nType, err)
		}

		n, isNew, err := j.notifier.EnsurePending(mctx, match, nType)
		if err != nil {
			return created, fmt.Errorf("%s: %w", nType, err)
		}
		if !isNew {
			continue
		}

		created++
		if j.metrics != nil {
			j.metrics.NotificationsCreated.WithLabelValues(nType.String()).Inc()
		}
		logging.Info("[DeadlineJob] Notification created",
			"job", constants.JobDeadlineScheduler,
			"match_id", match.ID,
			"type", nType.String(),
			"notification_id", n.ID,
		)
	}
	return created, nil
}

// lockTTL bounds how long a crashed pass can block the next one.
func (j *DeadlineJob) lockTTL() time.Duration {
	return j.cfg.Interval
}
