package boot

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Env    string `env:"ENV,default=dev"`
	Server struct {
		Port        string `env:"PORT,default=3000"`
		MetricsPort string `env:"METRICS_PORT,default=8081"`
	}
	Store struct {
		DatabaseURL string `env:"DATABASE_URL,default=file:userpoint.db"`
	}
	Auth struct {
		SecretKey string `env:"SECRET_KEY,required"`
	}
}

func Load() (*Config, error) {
	config := &Config{}
	if err := envconfig.Process(context.Background(), config); err != nil {
		return nil, fmt.Errorf("parsing env vars: %w", err)
	}
	return config, nil
}

func (c *Config) DatabaseURL() string {
	return c.Store.DatabaseURL
}

func (c *Config) IsProduction() bool {
	return c.Env == "prod"
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "dev"
}
