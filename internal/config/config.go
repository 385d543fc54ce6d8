package config

import (
	"fmt"
	"net"
	"strconv"
	"time"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	DriverPQ  = "postgres"
	DriverPgx = "pgx"
)

type Config struct {
	Env      string `env:"ENV" env-default:"prod"`
	HTTP     HTTPConfig
	Postgres PostgresConfig
	WS       WSConfig
}

type HTTPConfig struct {
	Host            string        `env:"HTTP_HOST" env-default:""`
	Port            string        `env:"APIPORT" env-default:"5000"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"5s"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" env-default:"5s"`
}

func (c HTTPConfig) Addr() string {
	return net.JoinHostPort(c.Host, c.Port)
}

type PostgresConfig struct {
	Driver       string `env:"DB_DRIVER" env-default:"postgres"`
	Host         string `env:"DB_HOST" env-required:"true"`
	Port         int    `env:"DB_PORT" env-default:"5432"`
	User         string `env:"DB_USER" env-required:"true"`
	Password     string `env:"DB_PASSWORD" env-required:"true"`
	Database     string `env:"DB_NAME" env-required:"true"`
	SSLMode      string `env:"DB_SSL_MODE" env-default:"disable"`
	MaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	InitSchema   bool   `env:"DB_INIT_SCHEMA" env-default:"false"`
}

// DSN is a keyword/value connection string understood by both lib/pq and pgx.
func (c PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, strconv.Itoa(c.Port), c.User, c.Password, c.Database, c.SSLMode)
}

type WSConfig struct {
	ConnectLimit  int           `env:"WS_CONNECT_LIMIT" env-default:"5"`
	ConnectWindow time.Duration `env:"WS_CONNECT_WINDOW" env-default:"1s"`
}

func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %s", c.Env)
	}
	switch c.Postgres.Driver {
	case DriverPQ, DriverPgx:
	default:
		return fmt.Errorf("unknown db driver: %s", c.Postgres.Driver)
	}
	if c.Postgres.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.Postgres.MaxOpenConns)
	}
	if c.WS.ConnectLimit < 1 || c.WS.ConnectWindow <= 0 {
		return fmt.Errorf("websocket connect limit and window must be positive")
	}
	return nil
}
