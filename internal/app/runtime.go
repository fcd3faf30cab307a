package app

import (
	"fmt"

	"football-club/matchday/internal/api"
	"football-club/matchday/internal/common"
	"football-club/matchday/internal/config"
	"football-club/matchday/internal/db"
	"football-club/matchday/internal/events"
	"football-club/matchday/internal/jobs"
	"football-club/matchday/internal/logging"
	"football-club/matchday/internal/metrics"
	"football-club/matchday/internal/providers"
	"football-club/matchday/internal/security"
	"football-club/matchday/internal/services"

	"github.com/jmoiron/sqlx"
	"gorm.io/gorm"
)

// Runtime is the wired process: stores, delivery, events, services and jobs.
// Both the server and the CLI build one.
type Runtime struct {
	Config config.Config
	ORM    *gorm.DB
	SQL    *sqlx.DB
	Deps   *api.Dependencies
	Jobs   *jobs.Jobs

	cache     common.CacheInterface
	publisher events.Publisher
}

// Open connects every backing service named in cfg. The caller owns Close.
func Open(cfg config.Config, metricsReg *metrics.MetricsRegistry) (*Runtime, error) {
	if cfg.EncryptionKey != "" {
		key, err := cfg.EncryptionKeyBytes()
		if err != nil {
			return nil, err
		}
		security.Configure(security.NewBox(key))
	} else {
		logging.Warn("ENCRYPTION_KEY not set, chat tokens are stored in plaintext")
	}

	orm, err := db.InitORM(cfg.DBDriver, cfg.DBDSN)
	if err != nil {
		return nil, err
	}
	if err := db.Migrate(orm); err != nil {
		return nil, err
	}
	sqlDB, err := db.InitSQLX(cfg.DBDriver, cfg.DBDSN, orm)
	if err != nil {
		return nil, err
	}

	rt := &Runtime{Config: cfg, ORM: orm, SQL: sqlDB}

	// The pass lock lives in redis when several replicas share a database.
	if cfg.RedisAddr != "" {
		rt.cache = common.NewRedisCacheService(common.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword))
	} else {
		rt.cache = common.NewCacheService(300, 600)
	}

	sender, err := providers.NewSender(&cfg)
	if err != nil {
		rt.Close()
		return nil, err
	}

	if cfg.AMQPURL != "" {
		pub, err := events.NewAMQPPublisher(cfg.AMQPURL, cfg.AMQPExchange)
		if err != nil {
			rt.Close()
			return nil, fmt.Errorf("failed to connect to AMQP: %w", err)
		}
		rt.publisher = pub
	} else {
		rt.publisher = events.NoopPublisher{}
	}

	clock := services.SystemClock{}
	rt.Deps = api.InitDependencies(api.Infrastructure{
		ORM:               orm,
		SQL:               sqlDB,
		Sender:            sender,
		Events:            rt.publisher,
		Clock:             clock,
		Metrics:           metricsReg,
		DisplayLoc:        cfg.DisplayLocation(),
		VoteURL:           cfg.VoteURL,
		EligibilityBypass: cfg.EligibilityBypassTypes,
	})

	rt.Jobs = jobs.InitializeJobs(
		rt.Deps.Repo.Matches,
		rt.Deps.Services.Notifications,
		rt.Deps.Services.Memberships,
		clock,
		common.NewPassLock(rt.cache),
		metricsReg,
		jobs.Config{
			Deadline: jobs.DeadlineJobConfig{
				Interval:     cfg.SchedulerInterval,
				MatchTimeout: cfg.SchedulerMatchTimeout,
				Concurrency:  cfg.SchedulerConcurrency,
			},
			ExpiryInterval: cfg.MembershipExpiryInterval,
		},
	)
	return rt, nil
}

// Close releases connections in reverse order of Open.
func (rt *Runtime) Close() {
	if rt.publisher != nil {
		if err := rt.publisher.Close(); err != nil {
			logging.Warn("Failed to close event publisher", "error", err.Error())
		}
	}
	if rt.cache != nil {
		_ = rt.cache.Close()
	}
	if rt.SQL != nil && rt.Config.DBDriver == "postgres" {
		_ = rt.SQL.Close()
	}
	if rt.ORM != nil {
		if sqlDB, err := rt.ORM.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}
