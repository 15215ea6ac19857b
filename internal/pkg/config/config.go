package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/pflag"
)

type (
	Log struct {
		Level string `envconfig:"LOG_LEVEL" default:"info"`
	}

	HTTPServer struct {
		Port             string        `envconfig:"PORT" required:"true"`
		RequestTimeout   time.Duration `envconfig:"MIDDLEWARE_REQUEST_TIMEOUT" default:"5s"`
		RateLimiterQPS   int           `envconfig:"MIDDLEWARE_RATE_LIMIT_QPS" default:"100"`
		RateLimiterBurst int           `envconfig:"MIDDLEWARE_RATE_LIMIT_BURST" default:"50"`
		PprofEnabled     bool          `envconfig:"PPROF_ENABLED" default:"false"`
		PprofPort        string        `envconfig:"PPROF_PORT"`
	}

	Database struct {
		Host     string `envconfig:"POSTGRES_HOST" required:"true"`
		Port     string `envconfig:"POSTGRES_PORT" default:"5432"`
		User     string `envconfig:"POSTGRES_USER" required:"true"`
		Password string `envconfig:"POSTGRES_PASSWORD" required:"true"`
		DBName   string `envconfig:"POSTGRES_DB" required:"true"`
		SSLMode  string `envconfig:"POSTGRES_SSLMODE" default:"disable"`
		// MigrateOnStart applies embedded goose migrations before serving.
		MigrateOnStart bool `envconfig:"POSTGRES_MIGRATE_ON_START" default:"false"`
	}

	Auth struct {
		JWTSecret string `envconfig:"JWT_SECRET" required:"true"`
		JWTIssuer string `envconfig:"JWT_ISSUER"`
	}

	Lifecycle struct {
		// OfferTTL is how long a direct offer may wait for the targeted
		// transporter.
		OfferTTL time.Duration `envconfig:"LIFECYCLE_OFFER_TTL" default:"48h"`
	}

	Tasks struct {
		StaleOffersInterval time.Duration `envconfig:"BACKGROUND_STALE_OFFERS_INTERVAL" default:"1m"`
	}

	UserDirectory struct {
		GRPCHost       string        `envconfig:"USER_DIRECTORY_GRPC_HOST" required:"true"`
		RequestTimeout time.Duration `envconfig:"USER_DIRECTORY_REQUEST_TIMEOUT" default:"2s"`
	}

	Kafka struct {
		PortHealthcheck string   `envconfig:"KAFKA_HTTP_HEALTHCHECK_PORT" default:"8081"`
		Brokers         []string `envconfig:"KAFKA_BROKERS" required:"true"`
		LifecycleTopic  string   `envconfig:"KAFKA_LIFECYCLE_TOPIC" default:"delivery.lifecycle"`
		RatingTopic     string   `envconfig:"KAFKA_RATING_TOPIC" default:"transporter.rating.changed"`
		ConsumerGroup   string   `envconfig:"KAFKA_CONSUMER_GROUP" default:"deliveryhub-rating"`
		Sarama          Sarama
		Handlers        KafkaHandlers
	}

	Sarama struct {
		Version                   string `envconfig:"KAFKA_SARAMA_VERSION" default:"3.6.0"`
		ConsumerOffsetsAutocommit bool   `envconfig:"KAFKA_SARAMA_OFFSETS_AUTOCOMMIT" default:"true"`
	}

	KafkaHandlers struct {
		RatingChanged RatingChanged
	}

	RatingChanged struct {
		ProcessTimeout time.Duration `envconfig:"KAFKA_HANDLER_RATING_CHANGED_PROCESS_TIMEOUT" default:"5s"`
	}

	Config struct {
		Log           Log
		Server        HTTPServer
		Database      Database
		Auth          Auth
		Lifecycle     Lifecycle
		Tasks         Tasks
		UserDirectory UserDirectory
		Kafka         Kafka
	}
)

// Load reads the environment, then lets command line flags override it.
func Load() (*Config, error) {
	return LoadArgs(os.Args[1:])
}

func LoadArgs(args []string) (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := applyFlags(&cfg, args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	for i := range cfg.Kafka.Brokers {
		cfg.Kafka.Brokers[i] = strings.TrimSpace(cfg.Kafka.Brokers[i])
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return &cfg, nil
}

func applyFlags(cfg *Config, args []string) error {
	fs := pflag.NewFlagSet("deliveryhub", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&cfg.Server.Port, "port", "p", cfg.Server.Port, "HTTP port to listen on")
	fs.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "zap log level")
	fs.BoolVar(&cfg.Database.MigrateOnStart, "migrate", cfg.Database.MigrateOnStart, "apply migrations before serving")

	return fs.Parse(args)
}

// validateConfig checks constraints envconfig tags cannot express.
func validateConfig(cfg *Config) error {
	if cfg.Server.RequestTimeout <= 0 {
		return errors.New("MIDDLEWARE_REQUEST_TIMEOUT must be positive")
	}
	if cfg.Server.RateLimiterQPS <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_QPS must be positive")
	}
	if cfg.Server.RateLimiterBurst <= 0 {
		return errors.New("MIDDLEWARE_RATE_LIMIT_BURST must be positive")
	}
	if cfg.Server.PprofEnabled && cfg.Server.PprofPort == "" {
		return errors.New("PPROF_PORT is required when PPROF_ENABLED is set")
	}

	if len(cfg.Auth.JWTSecret) < 32 {
		return errors.New("JWT_SECRET must be at least 32 bytes")
	}

	if cfg.Lifecycle.OfferTTL <= 0 {
		return errors.New("LIFECYCLE_OFFER_TTL must be positive")
	}
	if cfg.Tasks.StaleOffersInterval <= 0 {
		return errors.New("BACKGROUND_STALE_OFFERS_INTERVAL must be positive")
	}

	if len(cfg.Kafka.Brokers) == 0 || cfg.Kafka.Brokers[0] == "" {
		return errors.New("KAFKA_BROKERS is required")
	}
	if cfg.Kafka.Handlers.RatingChanged.ProcessTimeout <= 0 {
		return errors.New("KAFKA_HANDLER_RATING_CHANGED_PROCESS_TIMEOUT must be positive")
	}

	return nil
}
