package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"DiunsoloRentaCar"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"diunsolo"`

		MaxOpenConns int `envconfig:"DB_MAX_OPEN_CONNS" default:"25"`
		MaxIdleConns int `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Documents struct {
		// Dir is where generated PDF artifacts are published.
		Dir     string `envconfig:"DOCUMENTS_DIR" default:"./artifacts"`
		BaseURL string `envconfig:"DOCUMENTS_BASE_URL"`

		QueueSize     int           `envconfig:"DOCUMENTS_QUEUE_SIZE" default:"64"`
		RenderTimeout time.Duration `envconfig:"DOCUMENTS_RENDER_TIMEOUT" default:"30s"`
	}

	Scheduler struct {
		RetryFailedGenerations string        `envconfig:"SCHED_RETRY_GENERATIONS" default:"*/5 * * * *"`
		ReconcileAvailability  string        `envconfig:"SCHED_RECONCILE_AVAILABILITY" default:"2 * * * *"`
		JobTimeout             time.Duration `envconfig:"SCHED_JOB_TIMEOUT" default:"2m"`
		PendingGrace           time.Duration `envconfig:"SCHED_PENDING_GRACE" default:"10m"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
