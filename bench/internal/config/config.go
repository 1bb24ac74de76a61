package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	BaseURL            string        `env:"BASE_URL" envDefault:"http://localhost:3000"`
	SeedUsers          int           `env:"SEED_USERS" envDefault:"200"`
	SeedWorkers        int           `env:"SEED_WORKERS" envDefault:"0"`
	Rate               int           `env:"RATE" envDefault:"500"`
	Duration           time.Duration `env:"DURATION" envDefault:"30s"`
	OrderRatio         float64       `env:"ORDER_RATIO" envDefault:"0.3"`
	MetricsRatio       float64       `env:"METRICS_RATIO" envDefault:"0.05"`
	BenchType          string        `env:"BENCH_TYPE" envDefault:"mixed"`
	MaxOrderItems      int           `env:"MAX_ORDER_ITEMS" envDefault:"3"`
	Connections        int           `env:"CONNECTIONS" envDefault:"10000"`
	InsecureSkipVerify bool          `env:"INSECURE_SKIP_VERIFY" envDefault:"false"`
	SeedTimeout        time.Duration `env:"SEED_TIMEOUT" envDefault:"30s"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
