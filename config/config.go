package config

import (
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func New() (*Config, error) {
	var Config Config
	err := godotenv.Load(".env")
	if err != nil {
		logrus.Error("Error can't get the environment variables by file")
	}
	if err := env.Parse(&Config); err != nil {
		logrus.Fatalf("Error initializing: %s", err.Error())
		os.Exit(1)
	}
	return &Config, nil
}

type Config struct {
	APP
	DB
	Kafka
	Ledger
	Verification
	Reservation
}

type DB struct {
	HOST     string `env:"DB_HOST"`
	USER     string `env:"DB_USER"`
	PASSWORD string `env:"DB_PASSWORD"`
	NAME     string `env:"DB_NAME"`
	PORT     string `env:"DB_PORT"`
	SSLMODE  string `env:"DB_SSLMODE"`
}

type APP struct {
	PORT string `env:"APP_PORT" envDefault:"8080"`
}

type Kafka struct {
	Brokers           string `env:"KAFKA_BROKERS" envDefault:"localhost:9092"`
	MintConsumerGroup string `env:"KAFKA_MINT_GROUP_ID" envDefault:"mint-service"`
	PublishTopics     string `env:"KAFKA_PUBLISH_TOPICS" envDefault:"verifications.completed,reservations.terminal,mint.dlq"`
	SubscriberTopics  string `env:"KAFKA_SUBSCRIBER_TOPICS" envDefault:"settlements.detected"`

	RetryMaxAttempts int           `env:"KAFKA_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"KAFKA_RETRY_BASE_DELAY" envDefault:"100ms"`
	RetryMaxDelay    time.Duration `env:"KAFKA_RETRY_MAX_DELAY" envDefault:"10s"`
	RetryJitter      bool          `env:"KAFKA_RETRY_JITTER" envDefault:"true"`
}

type Ledger struct {
	PrimaryURL   string        `env:"LEDGER_PRIMARY_URL" envDefault:"http://localhost:9200"`
	SecondaryURL string        `env:"LEDGER_SECONDARY_URL" envDefault:"http://localhost:9201"`
	FetchTimeout time.Duration `env:"LEDGER_FETCH_TIMEOUT" envDefault:"45s"`
}

type Verification struct {
	CacheTTL        time.Duration `env:"VERIFICATION_CACHE_TTL" envDefault:"5m"`
	RateLimit       int           `env:"VERIFICATION_RATE_LIMIT" envDefault:"10"`
	RateLimitWindow time.Duration `env:"VERIFICATION_RATE_WINDOW" envDefault:"60s"`
}

type Reservation struct {
	TTL           time.Duration `env:"RESERVATION_TTL" envDefault:"10m"`
	GracePeriod   time.Duration `env:"RESERVATION_GRACE_PERIOD" envDefault:"30s"`
	TotalSlots    int           `env:"RESERVATION_TOTAL_SLOTS" envDefault:"100"`
	SweepInterval time.Duration `env:"RESERVATION_SWEEP_INTERVAL" envDefault:"15s"`

	RetryMaxAttempts int           `env:"RESERVATION_RETRY_MAX_ATTEMPTS" envDefault:"5"`
	RetryBaseDelay   time.Duration `env:"RESERVATION_RETRY_BASE_DELAY" envDefault:"1s"`
	RetryMaxDelay    time.Duration `env:"RESERVATION_RETRY_MAX_DELAY" envDefault:"30s"`
}

type RetryConfig struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

func (k Kafka) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: k.RetryMaxAttempts,
		BaseDelay:   k.RetryBaseDelay,
		MaxDelay:    k.RetryMaxDelay,
		Jitter:      k.RetryJitter,
	}
}

func (r Reservation) GetRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: r.RetryMaxAttempts,
		BaseDelay:   r.RetryBaseDelay,
		MaxDelay:    r.RetryMaxDelay,
	}
}
