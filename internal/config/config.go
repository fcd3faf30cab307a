package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"time"
	_ "time/tzdata"

	"football-club/matchday/internal/constants"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// DevJWTSecret is the development fallback for JWT_SECRET. Production refuses it.
const DevJWTSecret = "dev-secret-change-me"

type Config struct {
	AppEnv   string `envconfig:"APP_ENV" default:"development"`
	HTTPAddr string `envconfig:"HTTP_ADDR" default:":8080"`
	// Display zone for rendered messages. Storage is always UTC.
	Timezone string `envconfig:"TIMEZONE" default:"Asia/Seoul"`

	// DB
	DBDriver string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBDSN    string `envconfig:"DB_DSN" default:"file:matchday.db?_foreign_keys=on"`

	// Scheduler
	SchedulerInterval        time.Duration `envconfig:"SCHEDULER_INTERVAL" default:"5m"`
	SchedulerMatchTimeout    time.Duration `envconfig:"SCHEDULER_MATCH_TIMEOUT" default:"30s"`
	SchedulerConcurrency     int           `envconfig:"SCHEDULER_CONCURRENCY" default:"4"`
	MembershipExpiryInterval time.Duration `envconfig:"MEMBERSHIP_EXPIRY_INTERVAL" default:"1h"`

	// Redis is optional; without it the pass lock is in-memory.
	RedisAddr     string `envconfig:"REDIS_ADDR"`
	RedisPassword string `envconfig:"REDIS_PASSWORD"`

	// AMQP is optional; without it events are dropped.
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"matchday.events"`

	// Security
	JWTSecret     string `envconfig:"JWT_SECRET" default:"dev-secret-change-me"`
	EncryptionKey string `envconfig:"ENCRYPTION_KEY"`

	// Membership types that may vote while still PENDING, comma separated.
	// Empty means only ACTIVE memberships vote.
	EligibilityBypassTypes []constants.MembershipType `envconfig:"ELIGIBILITY_BYPASS_TYPES"`

	// Delivery
	DeliveryProvider string `envconfig:"DELIVERY_PROVIDER" default:"log"`
	KakaoAPIURL      string `envconfig:"KAKAO_API_URL" default:"https://kapi.kakao.com/v2/api/talk/memo/default/send"`
	DashboardURL     string `envconfig:"DASHBOARD_URL" default:"https://football-club-beta.vercel.app/dashboard"`
	VoteURL          string `envconfig:"VOTE_URL" default:"https://football-club-beta.vercel.app/"`
	SlackToken       string `envconfig:"SLACK_TOKEN"`
	SlackChannel     string `envconfig:"SLACK_CHANNEL"`

	// Vote rate limit per member
	VoteRatePerSecond float64 `envconfig:"VOTE_RATE_PER_SECOND" default:"1"`
	VoteRateBurst     int     `envconfig:"VOTE_RATE_BURST" default:"5"`
}

// Load reads an optional .env file and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}

	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("failed to process env: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) Validate() error {
	switch c.DBDriver {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}

	switch c.DeliveryProvider {
	case "kakao", "log":
	case "slack":
		if c.SlackToken == "" {
			return errors.New("SLACK_TOKEN is required for the slack provider")
		}
	default:
		return fmt.Errorf("unsupported DELIVERY_PROVIDER %q", c.DeliveryProvider)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid TIMEZONE %q: %w", c.Timezone, err)
	}

	if c.EncryptionKey != "" {
		if _, err := c.EncryptionKeyBytes(); err != nil {
			return err
		}
	}

	if c.AppEnv == "production" && (c.JWTSecret == "" || c.JWTSecret == DevJWTSecret) {
		return errors.New("JWT_SECRET must be set in production")
	}

	for _, t := range c.EligibilityBypassTypes {
		if !t.Valid() {
			return fmt.Errorf("invalid ELIGIBILITY_BYPASS_TYPES entry %q", t)
		}
	}

	if c.SchedulerInterval <= 0 {
		return errors.New("SCHEDULER_INTERVAL must be positive")
	}
	if c.SchedulerConcurrency < 1 {
		return errors.New("SCHEDULER_CONCURRENCY must be at least 1")
	}
	return nil
}

// EncryptionKeyBytes decodes ENCRYPTION_KEY, a 64 character hex string.
func (c Config) EncryptionKeyBytes() ([32]byte, error) {
	var key [32]byte
	raw, err := hex.DecodeString(c.EncryptionKey)
	if err != nil {
		return key, fmt.Errorf("invalid ENCRYPTION_KEY: %w", err)
	}
	if len(raw) != len(key) {
		return key, fmt.Errorf("invalid ENCRYPTION_KEY: want %d bytes, got %d", len(key), len(raw))
	}
	copy(key[:], raw)
	return key, nil
}

// DisplayLocation returns the zone messages are rendered in.
func (c Config) DisplayLocation() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
