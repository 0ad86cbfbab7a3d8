package config

import (
	"errors"
	"time"

	"github.com/caarlos0/env/v11"
)

type TrackerServiceConfig struct {
	ServiceName        string        `env:"SERVICE_NAME"         envDefault:"tracker-service"`
	Host               string        `env:"HOST"                 envDefault:"0.0.0.0"`
	Port               int           `env:"PORT"                 envDefault:"5000"`
	GRPCHealthPort     int           `env:"GRPC_HEALTH_PORT"     envDefault:"0"`
	LogLevel           string        `env:"LOG_LEVEL"            envDefault:"info"`
	LogPretty          bool          `env:"LOG_PRETTY"           envDefault:"false"`
	RequestTimeout     time.Duration `env:"REQUEST_TIMEOUT"      envDefault:"30s"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT"     envDefault:"10s"`
	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"                envSeparator:","`

	Mongo  MongoConfig  `envPrefix:"MONGO_"`
	Token  TokenConfig  `envPrefix:"JWT_"`
	Consul ConsulConfig `envPrefix:"CONSUL_"`
	Google GoogleConfig `envPrefix:"GOOGLE_"`
}

type MongoConfig struct {
	URI            string        `env:"URI"`
	Database       string        `env:"DATABASE"        envDefault:"opportunity_tracker"`
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"10s"`
}

type TokenConfig struct {
	Secret    string        `env:"SECRET"`
	Issuer    string        `env:"ISSUER"     envDefault:"opportunity-tracker"`
	ExpiresIn time.Duration `env:"EXPIRES_IN" envDefault:"168h"`
}

// ConsulConfig is optional; an empty Address disables registration.
type ConsulConfig struct {
	Address        string `env:"ADDRESS"`
	ServiceAddress string `env:"SERVICE_ADDRESS"`
}

// GoogleConfig is optional; an empty ClientID disables Google sign-in.
type GoogleConfig struct {
	ClientID string `env:"CLIENT_ID"`
}

func NewTrackerServiceConfig() (*TrackerServiceConfig, error) {
	cfg, err := env.ParseAs[TrackerServiceConfig]()
	if err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *TrackerServiceConfig) validate() error {
	if c.Mongo.URI == "" {
		return errors.New("missing MONGO_URI environment variable")
	}

	if c.Token.Secret == "" {
		return errors.New("missing JWT_SECRET environment variable")
	}

	if c.Port <= 0 {
		return errors.New("invalid PORT environment variable")
	}

	if c.Token.ExpiresIn <= 0 {
		return errors.New("invalid JWT_EXPIRES_IN environment variable")
	}

	return nil
}
